// Command mov2mp4 converts .mov media files to web-friendly .mp4 by driving
// an external ffmpeg binary. It parses flags, validates configuration, and
// either runs system diagnostics (--check) or the conversion pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/backmassage/mov2mp4/internal/check"
	"github.com/backmassage/mov2mp4/internal/config"
	"github.com/backmassage/mov2mp4/internal/display"
	"github.com/backmassage/mov2mp4/internal/ffmpeg"
	"github.com/backmassage/mov2mp4/internal/logging"
	"github.com/backmassage/mov2mp4/internal/pipeline"
	"github.com/backmassage/mov2mp4/internal/term"
)

// version and commit are injected at build time via -ldflags. When built
// with plain "go build" these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// Run-outcome sentinels used only for exit-code mapping.
var (
	errConversionsFailed = errors.New("one or more conversions failed")
	errCheckFailed       = errors.New("system check failed")
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	// The passthrough tail is split off before cobra sees the argv, so
	// ffmpeg flags after --extra are never interpreted as our own.
	cfg := config.Default()
	args, extra := config.SplitExtra(argv)
	cfg.ExtraArgs = extra

	root := newRootCmd(&cfg)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mov2mp4: %v\n", err)
		return exitCode(err)
	}
	return 0
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mov2mp4 [flags] <input> [--extra <ffmpeg args...>]",
		Short: "Convert .mov files to web-friendly .mp4 (H.264 + AAC) via ffmpeg",
		Long: `mov2mp4 converts .mov files to .mp4 by invoking ffmpeg. The input may be a
single file or a directory (optionally recursed with -r); outputs are written
alongside the inputs with the extension replaced by .mp4.

Everything after --extra is forwarded verbatim to ffmpeg, after all generated
arguments, giving it final override power.`,
		Version:       version + " (" + commit + ")",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Input = filepath.Clean(args[0])
			}
			cfg.CRFSet = cmd.Flags().Changed("crf")
			cfg.PresetSet = cmd.Flags().Changed("preset")
			return execute(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.Output, "output", "o", "", "explicit output path (single-file mode only)")
	f.IntVar(&cfg.CRF, "crf", cfg.CRF, "x264 CRF quality (18-23 is a typical range)")
	f.StringVar(&cfg.Preset, "preset", cfg.Preset, "x264 preset (ultrafast..placebo)")
	f.BoolVar(&cfg.CopyStreams, "copy", false, "stream copy (-c copy) instead of re-encoding")
	f.BoolVarP(&cfg.Recursive, "recursive", "r", false, "recurse into subdirectories when input is a directory")
	f.StringVar(&cfg.AudioBitrate, "audio-bitrate", cfg.AudioBitrate, "AAC audio bitrate (e.g. 192k)")
	f.BoolVarP(&cfg.Force, "force", "f", false, "overwrite existing output files")
	f.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "print the ffmpeg command without running it")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output")
	f.StringVar((*string)(&cfg.ColorMode), "color", string(cfg.ColorMode), "colored logs: auto|always|never")
	f.StringVarP(&cfg.LogFile, "log", "l", "", "append logs to file")
	f.BoolVarP(&cfg.CheckOnly, "check", "c", false, "run system diagnostics and exit")

	return cmd
}

// execute is the post-parse entry: validate, set up logging and signal
// handling, then run diagnostics or the pipeline.
func execute(parent context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner(term.ColorsEnabled(cfg.ColorMode))

	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return errCheckFailed
		}
		return nil
	}

	// Cancel the context on SIGINT/SIGTERM so the pipeline stops after the
	// current file. ffmpeg receives the terminal's SIGINT directly as well.
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, aborting after current file")
		cancel()
	}()

	stats, err := pipeline.Run(ctx, cfg, log)
	if err != nil {
		return err
	}
	if stats.Failed > 0 {
		return errConversionsFailed
	}
	return nil
}

// exitCode maps a run error onto the process exit status: 127 when ffmpeg
// is missing, 1 for failed conversions, 2 for usage and validation errors.
func exitCode(err error) int {
	var convErr *ffmpeg.ConversionError
	switch {
	case errors.Is(err, ffmpeg.ErrExecutableNotFound):
		return 127
	case errors.Is(err, errConversionsFailed),
		errors.Is(err, errCheckFailed),
		errors.As(err, &convErr):
		return 1
	default:
		return 2
	}
}
