package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/mux-flow/internal/media"
)

// renameAll moves every video, then every subtitle, to its ordinal name
func (p *implProcessor) renameAll(ctx context.Context, plan media.Plan, outcomes []media.Outcome) error {
	for i, pair := range plan.Pairs {
		if err := p.rename(ctx, plan.Dir, pair.Video.Original, pair.Video.Temp); err != nil {
			return fmt.Errorf("rename video %s: %w", pair.Video.Original, err)
		}
		pair.Video.State = media.Renamed
		outcomes[i].State = media.Renamed
	}

	for _, pair := range plan.Pairs {
		if err := p.rename(ctx, plan.Dir, pair.Subtitle.Original, pair.Subtitle.Temp); err != nil {
			return fmt.Errorf("rename subtitle %s: %w", pair.Subtitle.Original, err)
		}
		pair.Subtitle.State = media.Renamed
	}

	return nil
}

func (p *implProcessor) rename(ctx context.Context, dir, from, to string) error {
	p.logger.Debug(ctx, "Renaming %s -> %s", from, to)

	if from == to {
		return nil
	}
	if err := p.renameFile(filepath.Join(dir, from), filepath.Join(dir, to)); err != nil {
		return err
	}
	return nil
}

// removeIntermediates deletes the temp video, temp subtitle and converted
// subtitle of a muxed pair. Any failure is fatal.
func (p *implProcessor) removeIntermediates(ctx context.Context, dir string, pair media.Pair) error {
	p.logger.Info(ctx, "Removing source files...")

	for _, name := range pair.Intermediates() {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("remove %s: %w", name, err)
		}
		p.logger.Debug(ctx, "Removed %s", name)
	}

	pair.Video.State = media.Deleted
	pair.Subtitle.State = media.Deleted
	p.logger.Info(ctx, "Removed source files!")
	return nil
}
