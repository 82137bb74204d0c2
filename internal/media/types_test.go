package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	assert.Equal(t, "discovered", Discovered.String())
	assert.Equal(t, "converted", Converted.String())
	assert.Equal(t, "deleted", Deleted.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestPairIntermediates(t *testing.T) {
	p := Pair{
		Video:    &VideoAsset{Original: "movie.mp4", Temp: "0.mp4"},
		Subtitle: &SubtitleAsset{Original: "movie.vtt", Temp: "0.vtt", Converted: "movie.srt"},
		Output:   "movie.mp4",
	}

	assert.Equal(t, []string{"0.mp4", "0.vtt", "movie.srt"}, p.Intermediates())
}

func TestReportCompleted(t *testing.T) {
	r := Report{Outcomes: []Outcome{{State: Deleted}, {State: Muxed}, {State: Deleted}}}
	assert.Equal(t, 2, r.Completed())
	assert.True(t, Plan{}.Empty())
}
