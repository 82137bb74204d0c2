package processor

import (
	"context"

	"github.com/nguyentantai21042004/mux-flow/internal/media"
)

// Processor defines the interface for a directory mux run
type Processor interface {
	// Process pairs, renames, converts and muxes every video/subtitle pair in
	// dir. The report covers the pairs reached before any error.
	Process(ctx context.Context, dir string) (media.Report, error)
}
