package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/mov2mp4/internal/config"
	"github.com/backmassage/mov2mp4/internal/display"
	"github.com/backmassage/mov2mp4/internal/ffmpeg"
	"github.com/backmassage/mov2mp4/internal/logging"
)

// Run is the top-level batch entry point. It resolves the batch, verifies
// ffmpeg is available, processes each request sequentially, and returns
// aggregate stats. The returned error covers only pre-spawn failures
// (resolution, validation, missing ffmpeg); per-file conversion failures
// are recorded in the stats and never abort the remaining batch.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	batch, err := Resolve(cfg)
	if err != nil {
		return stats, err
	}
	if len(batch) == 0 {
		log.Warn("No .mov files found in %s", cfg.Input)
		return stats, nil
	}

	// Fail fast before any work if ffmpeg is missing.
	if err := ffmpeg.LookPath(); err != nil {
		return stats, err
	}

	stats.Total = len(batch)
	logBatchHeader(cfg, log, &stats)

	for i, req := range batch {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processFile(ctx, cfg, log, req, &stats)
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// processFile handles one request: skip-existing check, output directory
// creation, dry-run short-circuit, and the blocking ffmpeg invocation.
func processFile(ctx context.Context, cfg *config.Config, log *logging.Logger, req Request, stats *RunStats) {
	basename := filepath.Base(req.Input)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)

	fi, err := os.Stat(req.Input)
	if err != nil {
		log.Error("File not found: %s", req.Input)
		stats.Failed++
		return
	}

	if !cfg.Force {
		if _, err := os.Stat(req.Output); err == nil {
			log.Warn("Skip (exists): %s", filepath.Base(req.Output))
			stats.Skipped++
			return
		}
	}

	args := ffmpeg.Build(cfg, req.Input, req.Output)

	action := "Converting"
	if cfg.CopyStreams {
		action = "Remuxing"
	}
	log.Info("%s: %s -> %s", action, basename, filepath.Base(req.Output))
	log.Debug("Command: %s", strings.Join(args, " "))

	if cfg.DryRun {
		log.Info("[DRY] Would run: %s", strings.Join(args, " "))
		stats.Converted++
		return
	}

	if err := os.MkdirAll(filepath.Dir(req.Output), 0o755); err != nil {
		log.Error("Cannot create output directory: %v", err)
		stats.Failed++
		return
	}

	start := time.Now()
	result := ffmpeg.Execute(ctx, args)
	if !result.OK() {
		log.Error("Conversion failed: %s: %v", req.Input, result.Err)
		os.Remove(req.Output)
		stats.Failed++
		return
	}

	inSize := fi.Size()
	var outSize int64
	if outInfo, err := os.Stat(req.Output); err == nil {
		outSize = outInfo.Size()
	}

	ratio := int64(100)
	if inSize > 0 {
		ratio = outSize * 100 / inSize
	}

	stats.TotalInputBytes += inSize
	stats.TotalOutputBytes += outSize
	stats.Converted++

	log.Info("Done in %ds (%d%% of original): %s",
		int(time.Since(start).Seconds()), ratio, filepath.Base(req.Output))
}

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	if stats.Total > 1 {
		log.Info("Found %d files", stats.Total)
	}
	if cfg.CopyStreams {
		log.Info("Mode: stream copy (no re-encode)")
	} else {
		log.Info("Mode: H.264 + AAC (CRF %d, preset %s, audio %s)",
			cfg.CRF, cfg.Preset, cfg.AudioBitrate)
	}
	if cfg.DryRun {
		log.Warn("DRY RUN — nothing will be written")
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	if stats.Total <= 1 && !cfg.DryRun && stats.Failed == 0 {
		return
	}
	log.Info("Done: %d converted, %d skipped, %d failed",
		stats.Converted, stats.Skipped, stats.Failed)

	if cfg.DryRun || stats.TotalInputBytes == 0 {
		return
	}

	saved := stats.SpaceSaved()
	if saved >= 0 {
		log.Info("Space saved: %s (input %s -> output %s)",
			display.FormatBytes(saved),
			display.FormatBytes(stats.TotalInputBytes),
			display.FormatBytes(stats.TotalOutputBytes))
	} else {
		log.Warn("Output grew by %s (input %s -> output %s)",
			display.FormatBytes(-saved),
			display.FormatBytes(stats.TotalInputBytes),
			display.FormatBytes(stats.TotalOutputBytes))
	}
}
