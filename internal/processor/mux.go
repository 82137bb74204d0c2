package processor

import (
	"context"
	"path/filepath"

	"github.com/nguyentantai21042004/mux-flow/internal/media"
)

// mux combines a pair into one container named after the original video
func (p *implProcessor) mux(ctx context.Context, dir, outDir string, pair media.Pair) error {
	p.logger.Info(ctx, "Muxing %s + %s...", pair.Video.Original, pair.Subtitle.Original)

	args := p.muxArgs(
		filepath.Join(dir, pair.Video.Temp),
		filepath.Join(dir, pair.Subtitle.Converted),
		filepath.Join(outDir, pair.Output),
	)

	p.logger.Debug(ctx, "FFmpeg command in dir %s: %s %v", dir, p.cfg.FFmpeg.BinaryPath, args)

	if err := p.executor.Run(ctx, dir, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return err
	}

	pair.Video.State = media.Muxed
	pair.Subtitle.State = media.Muxed
	p.logger.Info(ctx, "Successfully muxed %s!", pair.Output)
	return nil
}

// muxArgs builds the ffmpeg arguments for one pair.
// -c:v/-c:a copy: keep the source streams untouched
// -c:s: re-encode the SubRip track into a codec the container accepts
// -metadata:s:a:0 / s:s:0: tag the first audio and subtitle streams
func (p *implProcessor) muxArgs(videoPath, subtitlePath, outputPath string) []string {
	lang := "language=" + p.cfg.FFmpeg.Language
	return []string{
		"-hide_banner",
		"-nostdin",
		"-i", videoPath,
		"-i", subtitlePath,
		"-c:v", "copy",
		"-c:a", "copy",
		"-c:s", p.cfg.FFmpeg.SubtitleCodec,
		"-metadata:s:a:0", lang,
		"-metadata:s:s:0", lang,
		outputPath,
	}
}
