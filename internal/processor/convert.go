package processor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/nguyentantai21042004/mux-flow/internal/media"
)

// convertAll transcodes every renamed subtitle into its SubRip name
func (p *implProcessor) convertAll(ctx context.Context, plan media.Plan, outcomes []media.Outcome) error {
	for i, pair := range plan.Pairs {
		if err := p.convert(ctx, plan.Dir, pair.Subtitle); err != nil {
			return fmt.Errorf("convert %s: %w", pair.Subtitle.Original, err)
		}
		outcomes[i].State = media.Converted
	}
	return nil
}

func (p *implProcessor) convert(ctx context.Context, dir string, sub *media.SubtitleAsset) error {
	p.logger.Info(ctx, "Converting subtitles %s...", sub.Original)

	args := p.convertArgs(filepath.Join(dir, sub.Temp), filepath.Join(dir, sub.Converted))
	if err := p.executor.Run(ctx, dir, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return err
	}

	sub.State = media.Converted
	p.logger.Info(ctx, "Successfully converted %s subtitles!", sub.Original)
	return nil
}

// convertArgs lets ffmpeg pick the encoder from the target extension.
// -nostdin keeps an unexpected overwrite prompt from blocking the run.
func (p *implProcessor) convertArgs(src, dst string) []string {
	return []string{
		"-hide_banner",
		"-nostdin",
		"-i", src,
		dst,
	}
}
