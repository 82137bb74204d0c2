package processor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/mux-flow/internal/media"
	"github.com/nguyentantai21042004/mux-flow/internal/scanner"
)

// Process orchestrates the whole run: scan, plan, rename, convert, mux
func (p *implProcessor) Process(ctx context.Context, dir string) (report media.Report, err error) {
	report = media.Report{DryRun: p.cfg.DryRun, Started: time.Now()}
	defer func() { report.Finished = time.Now() }()

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return report, fmt.Errorf("resolve dir: %w", err)
	}
	report.Dir = absDir

	p.logger.Info(ctx, "Starting muxer in %s", absDir)

	inv, err := scanner.Scan(absDir)
	if err != nil {
		return report, fmt.Errorf("scan: %w", err)
	}
	p.logger.Info(ctx, "Found %d video(s) and %d subtitle(s)", len(inv.Videos), len(inv.Subtitles))

	plan, err := scanner.Plan(inv)
	if err != nil {
		return report, fmt.Errorf("plan: %w", err)
	}
	if plan.Empty() {
		p.logger.Info(ctx, "Nothing to mux")
		return report, nil
	}

	report.Outcomes = make([]media.Outcome, len(plan.Pairs))
	for i, pair := range plan.Pairs {
		report.Outcomes[i] = media.Outcome{Pair: pair, State: media.Discovered}
	}

	outDir := p.outputDir(absDir)
	if outDir != absDir {
		if err := checkOutputs(outDir, plan); err != nil {
			return report, fmt.Errorf("plan: %w", err)
		}
	}

	if p.cfg.DryRun {
		p.describe(ctx, plan, outDir)
		return report, nil
	}

	if outDir != absDir {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return report, fmt.Errorf("create output dir %s: %w", outDir, err)
		}
	}

	// Step 1: Give every asset its ordinal name
	if err := p.renameAll(ctx, plan, report.Outcomes); err != nil {
		return report, err
	}

	// Step 2: Convert subtitles to SubRip
	if err := p.convertAll(ctx, plan, report.Outcomes); err != nil {
		return report, err
	}

	// Step 3: Mux each pair and drop its intermediates
	for i, pair := range plan.Pairs {
		start := time.Now()

		if err := p.mux(ctx, plan.Dir, outDir, pair); err != nil {
			return report, fmt.Errorf("mux %s: %w", pair.Output, err)
		}
		report.Outcomes[i].State = media.Muxed

		if err := p.removeIntermediates(ctx, plan.Dir, pair); err != nil {
			return report, fmt.Errorf("cleanup %s: %w", pair.Output, err)
		}
		report.Outcomes[i].State = media.Deleted
		report.Outcomes[i].Duration = time.Since(start)
	}

	p.logger.Info(ctx, "Completed all muxing! %d pair(s) in %s", len(plan.Pairs), time.Since(report.Started).Round(time.Millisecond))
	return report, nil
}

func (p *implProcessor) outputDir(sourceDir string) string {
	if p.cfg.Paths.Output == "" || p.cfg.InPlace() {
		return sourceDir
	}
	if abs, err := filepath.Abs(p.cfg.Paths.Output); err == nil {
		return abs
	}
	return p.cfg.Paths.Output
}

// checkOutputs rejects a plan whose outputs already exist in a separate
// output directory. The source listing only covers in-place outputs.
func checkOutputs(outDir string, plan media.Plan) error {
	for _, pair := range plan.Pairs {
		target := filepath.Join(outDir, pair.Output)
		_, err := os.Lstat(target)
		if err == nil {
			return fmt.Errorf("%w: %s (for %s) already exists", scanner.ErrNameCollision, target, pair.Video.Original)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", target, err)
		}
	}
	return nil
}

// describe logs what a real run would do without touching the directory.
func (p *implProcessor) describe(ctx context.Context, plan media.Plan, outDir string) {
	p.logger.Warn(ctx, "DRY RUN: no files will be changed")
	for _, pair := range plan.Pairs {
		v, s := pair.Video, pair.Subtitle
		p.logger.Info(ctx, "[%d] rename %s -> %s", pair.Ordinal, v.Original, v.Temp)
		p.logger.Info(ctx, "[%d] rename %s -> %s", pair.Ordinal, s.Original, s.Temp)
		p.logger.Info(ctx, "[%d] %s %v", pair.Ordinal, p.cfg.FFmpeg.BinaryPath,
			p.convertArgs(filepath.Join(plan.Dir, s.Temp), filepath.Join(plan.Dir, s.Converted)))
		p.logger.Info(ctx, "[%d] %s %v", pair.Ordinal, p.cfg.FFmpeg.BinaryPath,
			p.muxArgs(filepath.Join(plan.Dir, v.Temp), filepath.Join(plan.Dir, s.Converted), filepath.Join(outDir, pair.Output)))
		p.logger.Info(ctx, "[%d] remove %v", pair.Ordinal, pair.Intermediates())
	}
}
