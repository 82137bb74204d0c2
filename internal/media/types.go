// Package media holds the assets moved through a mux run and the plan that
// pairs them.
package media

import "time"

// Recognized extensions (lowercase, with leading dot).
const (
	VideoExt     = ".mp4"
	WebVTTExt    = ".vtt"
	SubRipExt    = ".srt"
	ConvertedExt = SubRipExt
)

// State is the lifecycle position of an asset.
type State int

const (
	Discovered State = iota
	Renamed
	Converted
	Muxed
	Deleted
)

func (s State) String() string {
	switch s {
	case Discovered:
		return "discovered"
	case Renamed:
		return "renamed"
	case Converted:
		return "converted"
	case Muxed:
		return "muxed"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// VideoAsset is a video file and its temporary ordinal name.
type VideoAsset struct {
	Original string
	Temp     string
	State    State
}

// SubtitleAsset is a subtitle file, its temporary name and the name of the
// converted SubRip file derived from the original name.
type SubtitleAsset struct {
	Original  string
	Temp      string
	Converted string
	State     State
}

// Pair binds the Nth video to the Nth subtitle. Output is the muxed file
// name, always the video's original name.
type Pair struct {
	Ordinal  int
	Video    *VideoAsset
	Subtitle *SubtitleAsset
	Output   string
}

// Intermediates lists the files a successful mux leaves behind for removal.
func (p Pair) Intermediates() []string {
	return []string{p.Video.Temp, p.Subtitle.Temp, p.Subtitle.Converted}
}

// Plan is the ordered set of pairs for one directory.
type Plan struct {
	Dir   string
	Pairs []Pair
}

// Empty reports whether there is nothing to do.
func (p Plan) Empty() bool {
	return len(p.Pairs) == 0
}

// Outcome is what happened to one pair during a run.
type Outcome struct {
	Pair     Pair
	State    State
	Duration time.Duration
}

// Report summarizes a run.
type Report struct {
	Dir      string
	DryRun   bool
	Outcomes []Outcome
	Started  time.Time
	Finished time.Time
}

// Completed counts pairs whose intermediates were removed.
func (r Report) Completed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.State == Deleted {
			n++
		}
	}
	return n
}
