// Package scanner discovers video and subtitle files in a directory and
// turns them into an ordered mux plan.
package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/mux-flow/internal/media"
)

var (
	ErrCountMismatch = errors.New("video and subtitle counts differ")
	ErrNameCollision = errors.New("derived file name collides")
)

var subtitleExtensions = map[string]bool{
	media.WebVTTExt: true,
	media.SubRipExt: true,
}

// Inventory is the classified, sorted listing of one directory.
type Inventory struct {
	Dir       string
	Videos    []string
	Subtitles []string
	// Other holds every remaining entry name, directories included, so
	// planning can avoid clobbering them.
	Other []string
}

// Scan lists dir (non-recursively) and partitions regular files by
// extension. Both groups are sorted by name.
func Scan(dir string) (Inventory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Inventory{}, fmt.Errorf("read dir: %w", err)
	}

	inv := Inventory{Dir: dir}
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() {
			inv.Other = append(inv.Other, name)
			continue
		}

		ext := strings.ToLower(filepath.Ext(name))
		switch {
		case ext == media.VideoExt:
			inv.Videos = append(inv.Videos, name)
		case subtitleExtensions[ext]:
			inv.Subtitles = append(inv.Subtitles, name)
		default:
			inv.Other = append(inv.Other, name)
		}
	}

	sort.Strings(inv.Videos)
	sort.Strings(inv.Subtitles)
	sort.Strings(inv.Other)
	return inv, nil
}

// CheckCounts fails when the two groups cannot be paired one to one.
func (inv Inventory) CheckCounts() error {
	if len(inv.Videos) != len(inv.Subtitles) {
		return fmt.Errorf("%w: %d videos, %d subtitles", ErrCountMismatch, len(inv.Videos), len(inv.Subtitles))
	}
	return nil
}
