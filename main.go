package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/smazurov/recordscreen/cmd"
	"github.com/smazurov/recordscreen/internal/api"
	"github.com/smazurov/recordscreen/internal/config"
	"github.com/smazurov/recordscreen/internal/events"
	"github.com/smazurov/recordscreen/internal/ffmpeg"
	"github.com/smazurov/recordscreen/internal/logging"
	"github.com/smazurov/recordscreen/internal/recorder"
)

// Options for the CLI - flat structure with toml mapping.
type Options struct {
	Config string `help:"Path to configuration file" short:"c" default:"config.toml"`

	// Server settings
	Port        string `help:"Address to listen on" short:"p" default:":8090" toml:"server.port" env:"SERVER_PORT"`
	StopTimeout int    `help:"Seconds to wait for recordings to settle on shutdown" default:"10" toml:"server.stop_timeout" env:"SERVER_STOP_TIMEOUT"`

	// Recording settings
	RecordingDefaults string `help:"Recording defaults file, watched for changes" default:"recordscreen.toml" toml:"recording.defaults_file" env:"RECORDING_DEFAULTS"`

	// Auth settings. Empty credentials disable authentication.
	AuthUsername string `help:"Basic auth username" default:"" toml:"auth.username" env:"AUTH_USERNAME"`
	AuthPassword string `help:"Basic auth password" default:"" toml:"auth.password" env:"AUTH_PASSWORD"`

	// Logging settings
	LoggingLevel    string `help:"Global logging level (debug, info, warn, error)" default:"info" toml:"logging.level" env:"LOGGING_LEVEL"`
	LoggingFormat   string `help:"Logging format (text, json)" default:"text" toml:"logging.format" env:"LOGGING_FORMAT"`
	LoggingRecorder string `help:"Recorder logging level" default:"info" toml:"logging.recorder" env:"LOGGING_RECORDER"`
	LoggingFfmpeg   string `help:"Mirrored ffmpeg output level" default:"info" toml:"logging.ffmpeg" env:"LOGGING_FFMPEG"`
	LoggingAPI      string `help:"API logging level" default:"info" toml:"logging.api" env:"LOGGING_API"`
	LoggingHTTP     string `help:"HTTP request logging level" default:"info" toml:"logging.http" env:"LOGGING_HTTP"`
}

func main() {
	var cli humacli.CLI
	cli = humacli.New(func(hooks humacli.Hooks, opts *Options) {
		if loadErr := config.LoadConfig(opts, cli.Root()); loadErr != nil {
			slog.Warn("Failed to load config", "error", loadErr)
		}

		logging.Initialize(logging.Config{
			Level:  opts.LoggingLevel,
			Format: opts.LoggingFormat,
			Modules: map[string]string{
				"recorder": opts.LoggingRecorder,
				"ffmpeg":   opts.LoggingFfmpeg,
				"api":      opts.LoggingAPI,
				"http":     opts.LoggingHTTP,
			},
		})
		logger := logging.GetLogger("main")

		eventBus := events.New()
		manager := recorder.NewManager(eventBus, logging.GetLogger("recorder"))

		// Initial defaults; the watcher keeps them fresh afterwards
		defaults, defaultsErr := config.LoadDefaults(opts.RecordingDefaults)
		if defaultsErr != nil {
			logger.Warn("Failed to load recording defaults", "error", defaultsErr, "path", opts.RecordingDefaults)
		} else {
			manager.SetDefaults(defaults)
		}

		watcher := config.NewWatcher(opts.RecordingDefaults, config.LoadDefaults, logger)
		watcher.OnReload(func(fresh ffmpeg.Options) {
			logger.Info("Recording defaults reloaded", "path", opts.RecordingDefaults)
			manager.SetDefaults(fresh)
			eventBus.Publish(events.DefaultsReloadedEvent{
				Path:      opts.RecordingDefaults,
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			})
		})

		server := api.NewServer(&api.Options{
			AuthUsername:      opts.AuthUsername,
			AuthPassword:      opts.AuthPassword,
			Manager:           manager,
			PrometheusHandler: promhttp.Handler(),
		})

		hooks.OnStart(func() {
			if watchErr := watcher.Start(); watchErr != nil {
				logger.Warn("Failed to watch defaults file, hot-reload disabled", "error", watchErr)
			}

			logger.Info("Starting HTTP server", "port", opts.Port)
			if startErr := server.Start(opts.Port); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
				logger.Error("Failed to start HTTP server", "error", startErr)
				os.Exit(1)
			}
		})

		hooks.OnStop(func() {
			logger.Info("Shutting down server")
			if stopErr := server.Stop(); stopErr != nil {
				logger.Error("Error stopping HTTP server", "error", stopErr)
			}

			// Interrupt recordings only after the listener stops taking requests
			manager.CancelAll(time.Duration(opts.StopTimeout) * time.Second)

			if stopErr := watcher.Stop(); stopErr != nil {
				logger.Error("Error stopping defaults watcher", "error", stopErr)
			}
		})
	})

	cli.Root().AddCommand(cmd.CreateRecordCmd())

	cli.Run()
}
