package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"monoplay/internal/engine"
	"monoplay/internal/imageio"
	"monoplay/internal/platform/config"
	"monoplay/internal/platform/logger"
	"monoplay/internal/platform/metrics"
	"monoplay/internal/playback"
	"monoplay/internal/sequence"

	"github.com/google/uuid"
	"github.com/urfave/cli"
)

func main() {
	_ = config.Load()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "monoplay: %v\n", err)
		os.Exit(playback.ExitCode(err))
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "monoplay"
	app.Usage = "Play an image sequence into a monocular tracking engine at capture rate"
	app.UsageText = "monoplay [options] path_to_vocabulary path_to_settings path_to_sequence use_viewer mask_relative"
	app.HideVersion = true
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.Float64Flag{
			Name:  "fps",
			Value: config.GetEnvFloat("PLAYBACK_FPS", sequence.DefaultFrameRate),
			Usage: "frame rate used to synthesize timestamps [PLAYBACK_FPS]",
		},
		boolFlag("realtime", "PLAYBACK_REALTIME", true, "sleep between frames to hold the capture rate"),
		boolFlag("progress", "PLAYBACK_PROGRESS", true, "draw a progress bar on stderr"),
		cli.StringFlag{
			Name:  "trajectory",
			Value: config.GetEnv("TRAJECTORY_PATH", playback.DefaultTrajectoryPath),
			Usage: "trajectory output file [TRAJECTORY_PATH]",
		},
		cli.StringFlag{
			Name:  "metrics-addr",
			Value: config.GetEnv("METRICS_ADDR", ""),
			Usage: "serve /metrics and /status on this address, e.g. :9090 [METRICS_ADDR]",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: config.GetEnv("LOG_LEVEL", "info"),
			Usage: "debug, info, warn or error [LOG_LEVEL]",
		},
		cli.StringFlag{
			Name:  "log-format",
			Value: config.GetEnv("LOG_FORMAT", "text"),
			Usage: "text or json [LOG_FORMAT]",
		},
	}
	app.Action = func(c *cli.Context) error {
		runCfg, err := config.ParseArgs([]string(c.Args()))
		if err != nil {
			_ = cli.ShowAppHelp(c)
			return err
		}
		return run(c, runCfg, stdout, stderr)
	}
	return app
}

// boolFlag returns a bool flag whose default comes from env.
func boolFlag(name, env string, fallback bool, usage string) cli.Flag {
	usage = fmt.Sprintf("%s [%s]", usage, env)
	if config.GetEnvBool(env, fallback) {
		return cli.BoolTFlag{Name: name, Usage: usage}
	}
	return cli.BoolFlag{Name: name, Usage: usage}
}

func run(c *cli.Context, runCfg config.Run, stdout, stderr io.Writer) error {
	runID := uuid.NewString()
	log := logger.New(c.String("log-level"), c.String("log-format"), stderr).
		With(slog.String("run_id", runID))

	fps := c.Float64("fps")
	if fps <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %v", config.ErrInvalid, fps)
	}

	seq, err := sequence.Load(runCfg.SequenceDir, fps)
	if err != nil {
		log.Error("cannot read sequence", slog.String("dir", runCfg.SequenceDir), slog.String("error", err.Error()))
		return err
	}
	log.Info("sequence loaded",
		slog.String("dir", runCfg.SequenceDir),
		slog.Int("frames", seq.Len()),
		slog.Float64("fps", fps))

	eng, err := engine.NewRecorder(engine.Options{
		VocabularyPath: runCfg.VocabularyPath,
		SettingsPath:   runCfg.SettingsPath,
		UseViewer:      runCfg.UseViewer,
	}, log)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}

	met := metrics.New()
	tracker := playback.NewStatusTracker(runID, runCfg.SequenceDir)
	if addr := c.String("metrics-addr"); addr != "" {
		srv := startStatusServer(addr, log, met, tracker)
		defer stopStatusServer(srv, log)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var prog playback.Progress
	if c.Bool("progress") {
		prog = &barProgress{w: stderr}
	}

	orch := playback.New(seq, eng, imageio.NewLoader(), playback.Options{
		MaskToken:      runCfg.MaskToken,
		Realtime:       c.Bool("realtime"),
		TrajectoryPath: c.String("trajectory"),
		Out:            stdout,
		Log:            log,
		Metrics:        met,
		Tracker:        tracker,
		Progress:       prog,
	})

	if err := orch.Run(ctx); err != nil {
		log.Error("playback aborted",
			slog.String("kind", string(playback.Classify(err))),
			slog.String("error", err.Error()))
		return err
	}
	return nil
}
