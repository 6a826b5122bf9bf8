// Package cmd holds the one-shot CLI subcommands.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/smazurov/recordscreen/internal/config"
	"github.com/smazurov/recordscreen/internal/ffmpeg"
	"github.com/smazurov/recordscreen/internal/logging"
	"github.com/smazurov/recordscreen/internal/recorder"
)

// recordFlags mirrors ffmpeg.Options as plain flag values. Whether a flag
// was actually set on the command line decides pointer vs nil, so an
// explicit `--fps 0` suppresses -r while an omitted flag gets the default.
type recordFlags struct {
	logLevel    string
	inputFormat string
	resolution  string
	fps         int
	videoFilter string
	videoCodec  string
	pixelFormat string
	rotate      int
	hostname    string
	display     string
	protocol    string
	username    string
	password    string
	port        int
	pathname    string
	search      string
}

// options converts set flags into recording options.
func (f *recordFlags) options(flags *pflag.FlagSet) ffmpeg.Options {
	opts := ffmpeg.Options{
		LogLevel:    f.logLevel,
		Resolution:  f.resolution,
		VideoFilter: f.videoFilter,
		VideoCodec:  f.videoCodec,
		Rotate:      f.rotate,
		Username:    f.username,
		Password:    f.password,
		Pathname:    f.pathname,
		Search:      f.search,
	}
	if flags.Changed("input-format") {
		opts.InputFormat = &f.inputFormat
	}
	if flags.Changed("fps") {
		opts.FPS = &f.fps
	}
	if flags.Changed("pixel-format") {
		opts.PixelFormat = &f.pixelFormat
	}
	if flags.Changed("hostname") {
		opts.Hostname = &f.hostname
	}
	if flags.Changed("display") {
		opts.Display = &f.display
	}
	if flags.Changed("protocol") {
		opts.Protocol = &f.protocol
	}
	if flags.Changed("port") {
		opts.Port = &f.port
	}
	return opts
}

// CreateRecordCmd creates the record command.
func CreateRecordCmd() *cobra.Command {
	var configFile string
	var duration time.Duration
	var logJSON bool
	var flags recordFlags

	cmd := &cobra.Command{
		Use:   "record [output-path]",
		Short: "Record the screen to a file",
		Long: `Spawns a single ffmpeg recording to the given output path and waits for it ` +
			`to finish. Ctrl-C or --duration stops the recording cleanly; a rotation ` +
			`hint adds a metadata fixup pass after ffmpeg exits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath := args[0]

			loggingConfig := logging.Config{
				Level:  "info",
				Format: "text",
			}
			if logJSON {
				loggingConfig.Format = "json"
			}
			logging.Initialize(loggingConfig)
			logger := logging.GetLogger("record")

			defaults, err := config.LoadDefaults(configFile)
			if err != nil {
				logger.Error("Failed to load defaults file", "error", err, "config", configFile)
				os.Exit(1)
			}
			opts := ffmpeg.Merge(flags.options(cmd.Flags()), defaults)

			logger.Info("Starting recording", "output", outputPath)
			rec := recorder.Start(outputPath, opts, logging.GetLogger("ffmpeg"))

			// A signal or an elapsed duration both resolve to a single
			// Cancel; extra Cancels after exit are no-ops.
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			var timerCh <-chan time.Time
			if duration > 0 {
				timer := time.NewTimer(duration)
				defer timer.Stop()
				timerCh = timer.C
			}

			go func() {
				select {
				case sig := <-sigCh:
					logger.Info("Stopping recording", "signal", sig.String())
					rec.Cancel()
				case <-timerCh:
					logger.Info("Recording duration elapsed", "duration", duration)
					rec.Cancel()
				case <-rec.Done():
				}
			}()

			if _, err := rec.Wait(context.Background()); err != nil {
				logger.Error("Recording failed", "error", err)
				os.Exit(1)
			}

			logger.Info("Recording finished", "state", string(rec.State()), "output", outputPath)

			probeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if result, probeErr := ffmpeg.Probe(probeCtx, outputPath); probeErr != nil {
				logger.Warn("Failed to probe output file", "error", probeErr)
			} else {
				attrs := []any{"duration_s", result.DurationSeconds()}
				if rotation := result.Rotation(); rotation != 0 {
					attrs = append(attrs, "rotation", rotation)
				}
				logger.Info("Output file details", attrs...)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "recordscreen.toml", "Path to defaults file")
	cmd.Flags().DurationVar(&duration, "duration", 0, "Stop the recording after this long (0 records until interrupted)")
	cmd.Flags().BoolVar(&logJSON, "log-json", false, "Use JSON log format")

	cmd.Flags().StringVar(&flags.logLevel, "loglevel", "", "ffmpeg -loglevel value")
	cmd.Flags().StringVar(&flags.inputFormat, "input-format", ffmpeg.DefaultInputFormat, "ffmpeg input format, empty omits -f")
	cmd.Flags().StringVar(&flags.resolution, "resolution", "", "Capture size as WIDTHxHEIGHT")
	cmd.Flags().IntVar(&flags.fps, "fps", ffmpeg.DefaultFPS, "Frames per second, 0 omits -r")
	cmd.Flags().StringVar(&flags.videoFilter, "video-filter", "", "ffmpeg -vf filter graph")
	cmd.Flags().StringVar(&flags.videoCodec, "video-codec", "", "ffmpeg -vcodec value")
	cmd.Flags().StringVar(&flags.pixelFormat, "pixel-format", ffmpeg.DefaultPixelFormat, "ffmpeg -pix_fmt value, empty omits it")
	cmd.Flags().IntVar(&flags.rotate, "rotate", 0, "Rotation hint in degrees, adds a metadata fixup pass")
	cmd.Flags().StringVar(&flags.hostname, "hostname", ffmpeg.DefaultHostname, "Display server or stream host")
	cmd.Flags().StringVar(&flags.display, "display", ffmpeg.DefaultDisplay, "X11 display number")
	cmd.Flags().StringVar(&flags.protocol, "protocol", ffmpeg.DefaultProtocol, "Stream URL scheme for non-grab input")
	cmd.Flags().StringVar(&flags.username, "username", "", "Stream URL username")
	cmd.Flags().StringVar(&flags.password, "password", "", "Stream URL password")
	cmd.Flags().IntVar(&flags.port, "port", ffmpeg.DefaultPort, "Stream URL port, 0 omits it")
	cmd.Flags().StringVar(&flags.pathname, "pathname", "", "Stream URL path")
	cmd.Flags().StringVar(&flags.search, "search", "", "Stream URL query string")

	return cmd
}
