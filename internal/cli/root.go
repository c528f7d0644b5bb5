package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/TudorHulban/timeslots"
	"github.com/TudorHulban/timeslots/internal/batch"
	"github.com/TudorHulban/timeslots/internal/config"
	"github.com/TudorHulban/timeslots/internal/logging"
	"github.com/TudorHulban/timeslots/internal/telemetry"
)

var (
	okColor    = color.New(color.FgGreen)
	failColor  = color.New(color.FgRed)
	shiftColor = color.New(color.FgYellow)
)

// app carries what every command needs once configuration is loaded.
type app struct {
	cfg     *config.Config
	logger  zerolog.Logger
	metrics *telemetry.Metrics

	configPath      string
	metricsTextfile string
}

func NewRootCommand(version string) *cobra.Command {
	state := app{
		metrics: telemetry.NewMetrics(),
	}

	rootCmd := &cobra.Command{
		Use:     "timeslots",
		Version: version,
		Short:   "Non-overlapping time slot assignment across resources and calendars",
		Long: `timeslots loads calendars and slot assignments from a YAML file,
places them without overlap per resource and answers point and gap queries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&state.configPath, "config", "", "configuration file (default ./timeslots.yaml)")
	rootCmd.PersistentFlags().StringVar(&state.metricsTextfile, "metrics-textfile", "", "write prometheus metrics to this file")

	rootCmd.AddCommand(
		newAssignCommand(&state),
		newAtCommand(&state),
		newFreeCommand(&state),
	)

	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, errLoad := config.Load(a.configPath)
	if errLoad != nil {
		return fmt.Errorf("load config: %w", errLoad)
	}

	if len(a.metricsTextfile) > 0 {
		cfg.MetricsTextfile = a.metricsTextfile
	}

	a.cfg = cfg
	a.logger = logging.SetupWithWriter(cfg.Environment, cmd.ErrOrStderr())

	return nil
}

// loadRegistry reads a batch file and places its assignments, plain or shifted.
func (a *app) loadRegistry(path string, shift bool) (*batch.Registry, []batch.Assignment, []string, error) {
	file, errRead := batch.ReadFile(path)
	if errRead != nil {
		return nil, nil, nil,
			fmt.Errorf("read batch %s: %w", path, errRead)
	}

	registry, errRegistry := file.NewRegistry(&a.logger)
	if errRegistry != nil {
		return nil, nil, nil,
			errRegistry
	}

	assignments, errExpand := file.Expand(a.cfg.RecurrenceHorizon)
	if errExpand != nil {
		return nil, nil, nil,
			errExpand
	}

	outcomes := make([]string, len(assignments))

	if shift {
		for ix, result := range registry.BulkAssignWithShift(assignments) {
			switch {
			case !result.Placed():
				a.metrics.ObserveFailure()
				outcomes[ix] = failColor.Sprintf("failed: %v", result.Err)

			case result.TimeStart != assignments[ix].TimeStart:
				a.metrics.ObserveShift(assignments[ix].TimeStart, result.TimeStart)
				outcomes[ix] = shiftColor.Sprintf("shifted to %s", a.formatInterval(result.Interval))

			default:
				a.metrics.ObserveShift(assignments[ix].TimeStart, result.TimeStart)
				outcomes[ix] = okColor.Sprint("added")
			}
		}
	} else {
		for ix, result := range registry.BulkAssignOutcomes(assignments) {
			switch {
			case result.Err != nil:
				a.metrics.ObserveFailure()
				outcomes[ix] = failColor.Sprintf("failed: %v", result.Err)

			case result.Added:
				a.metrics.ObserveAssign(true)
				outcomes[ix] = okColor.Sprint("added")

			default:
				a.metrics.ObserveAssign(false)
				outcomes[ix] = failColor.Sprint("rejected")
			}
		}
	}

	a.logger.Info().
		Str("file", path).
		Int("assignments", len(assignments)).
		Bool("shift", shift).
		Msg("batch processed")

	return registry, assignments, outcomes, a.flushMetrics()
}

func (a *app) flushMetrics() error {
	if len(a.cfg.MetricsTextfile) == 0 {
		return nil
	}

	if errWrite := a.metrics.WriteTextfile(a.cfg.MetricsTextfile); errWrite != nil {
		return fmt.Errorf("write metrics: %w", errWrite)
	}

	a.logger.Debug().
		Str("path", a.cfg.MetricsTextfile).
		Msg("metrics written")

	return nil
}

func (a *app) formatInstant(instant int64) string {
	return timeslots.FromInstant(instant, a.cfg.Location()).Format(time.RFC3339)
}

func (a *app) formatInterval(interval timeslots.Interval[int64]) string {
	return fmt.Sprintf(
		"%s - %s",

		a.formatInstant(interval.TimeStart),
		a.formatInstant(interval.TimeEnd),
	)
}

func (a *app) parseInstant(value string) (int64, error) {
	t, errParse := time.ParseInLocation(time.RFC3339, value, a.cfg.Location())
	if errParse != nil {
		return 0,
			fmt.Errorf("parse time %q: %w", value, errParse)
	}

	return timeslots.ToInstant(t),
		nil
}
