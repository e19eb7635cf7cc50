package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/kbukum/viewkit/config"
	"github.com/kbukum/viewkit/errors"
	"github.com/kbukum/viewkit/logger"
	"github.com/kbukum/viewkit/observability"
	"github.com/kbukum/viewkit/validation"
	"github.com/kbukum/viewkit/version"
)

// app holds the state shared by the commands after Before has run.
type app struct {
	out      io.Writer
	cfg      Config
	runID    string
	log      *logger.Logger
	metrics  *observability.Metrics
	shutdown observability.ShutdownFunc
}

func newApp(out io.Writer) *cli.Command {
	a := &app{out: out}
	return &cli.Command{
		Name:    serviceName,
		Usage:   "Run lazy view pipelines over slices, lists, ordered maps and sets",
		Version: version.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to config.yml (searched in ./cmd/viewdemo, ./config and . when empty)",
				Sources: cli.EnvVars("VIEWDEMO_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (trace, debug, info, warn, error, disabled), overrides logging.level",
				Sources: cli.EnvVars("VIEWDEMO_LOG_LEVEL"),
			},
		},
		Before: a.before,
		After:  a.after,
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the available scenarios",
				Action: func(ctx context.Context, c *cli.Command) error {
					return a.list()
				},
			},
			{
				Name:  "run",
				Usage: "Run scenarios and print their output (all when none is named)",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "scenario",
						Aliases: []string{"s"},
						Usage:   "scenario name, repeatable",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return a.run(ctx, c.StringSlice("scenario"))
				},
			},
		},
	}
}

func (a *app) before(ctx context.Context, c *cli.Command) (context.Context, error) {
	a.cfg = defaultConfig()
	opts := []config.LoaderOption{config.WithOverride("logging.level", c.String("log-level"))}
	if path := c.String("config"); path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}
	if err := config.Load(serviceName, &a.cfg, opts...); err != nil {
		return ctx, err
	}

	logger.Init(&a.cfg.Logging)
	logger.RegisterDefaults(&a.cfg.Logging)

	a.runID = uuid.NewString()
	ctx = logger.ContextWithRunID(ctx, a.runID)
	a.log = logger.WithComponent(serviceName).WithContext(ctx)

	shutdown, err := observability.Setup(ctx, a.cfg.Telemetry, a.cfg.Name, version.String(), a.cfg.Environment)
	if err != nil {
		return ctx, errors.Internal(err).WithDetail("component", "telemetry")
	}
	a.shutdown = shutdown

	metrics, err := observability.NewMetrics(observability.Meter(serviceName))
	if err != nil {
		return ctx, errors.Internal(err).WithDetail("component", "metrics")
	}
	a.metrics = metrics

	a.log.Debug("configuration ready", logger.Fields(
		"environment", a.cfg.Environment,
		"telemetry", a.cfg.Telemetry.Enabled,
	))
	return ctx, nil
}

func (a *app) after(ctx context.Context, c *cli.Command) error {
	if a.shutdown == nil {
		return nil
	}
	return a.shutdown(ctx)
}

func (a *app) list() error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, s := range scenarios {
		fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Description)
	}
	return w.Flush()
}

func (a *app) run(ctx context.Context, names []string) error {
	if err := validation.New().Names("scenario", names, scenarioNames()).Validate(); err != nil {
		return err
	}

	selected := scenarios
	if len(names) > 0 {
		selected = make([]Scenario, 0, len(names))
		for _, name := range names {
			s, _ := findScenario(name)
			selected = append(selected, s)
		}
	}

	ctx = logger.ContextWithRunID(ctx, a.runID)
	in := newInputs(a.cfg.Demo, a.metrics)
	for _, s := range selected {
		out, err := s.Run(ctx, in)
		if err != nil {
			a.log.Error("scenario failed", logger.Fields(
				logger.FieldScenario, s.Name,
				logger.FieldError, err.Error(),
			))
			return err
		}
		a.log.Debug("scenario done", logger.Fields(logger.FieldScenario, s.Name))
		fmt.Fprintf(a.out, "%s: %s\n", s.Name, out)
	}
	return nil
}
