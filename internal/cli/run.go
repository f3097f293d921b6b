package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varkis/hookline/internal/config"
	"github.com/varkis/hookline/internal/logging"
	"github.com/varkis/hookline/internal/pipeline"
)

func newRunCmd() *cobra.Command {
	var (
		steps    int
		timeStep float64
	)

	cmd := &cobra.Command{
		Use:   "run [script...]",
		Short: "Run an event pipeline",
		Long:  "Run loads the given scripts (or the ones configured under run.scripts), then drains the event queue and advances network time for the configured number of steps.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(paths.Config)
			if err != nil {
				return err
			}
			if issues := config.Validate(&cfg); len(issues) > 0 {
				for _, issue := range issues {
					log.Error().Str("path", issue.Path).Msg(issue.Message)
				}
				return fmt.Errorf("invalid configuration (%d issues)", len(issues))
			}

			runLog := log
			if logLevel == "" {
				runLog = logging.Console(cfg.Logging.Level, cfg.Logging.Style)
			}

			if cmd.Flags().Changed("steps") {
				cfg.Run.Steps = steps
			}
			if cmd.Flags().Changed("time-step") {
				cfg.Run.TimeStep = timeStep
			}
			scripts := cfg.Run.Scripts
			if len(args) > 0 {
				scripts = args
			}

			reg, err := buildRegistry(cfg, runLog)
			if err != nil {
				return err
			}
			pipe := pipeline.New(reg, runLog)

			reg.InitPreScript()
			for _, s := range scripts {
				if err := pipe.LoadFile(s); err != nil {
					return err
				}
			}
			reg.InitPostScript()

			for i := 0; i < cfg.Run.Steps; i++ {
				pipe.Drain()
				if err := pipe.AdvanceTime(cfg.Run.TimeStep); err != nil {
					return err
				}
			}
			pipe.Drain()
			reg.Done()

			runLog.Info().
				Int("events", pipe.Dispatched()).
				Float64("network_time", pipe.NetworkTime()).
				Msg("run complete")
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 0, "number of drain/advance steps (overrides config)")
	cmd.Flags().Float64Var(&timeStep, "time-step", 0, "network time increment per step in seconds (overrides config)")

	return cmd
}
