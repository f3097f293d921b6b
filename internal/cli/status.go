package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/varkis/hookline/internal/config"
	"github.com/varkis/hookline/internal/version"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show hookline status and configuration summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Hookline %s (commit %s)\n\n", version.Version, version.Commit)

			// Show paths
			fmt.Printf("Config:  %s\n", paths.Config)
			fmt.Printf("Plugins: %s\n", paths.Plugins)
			fmt.Printf("Logs:    %s\n", paths.Logs)
			fmt.Println()

			cfg, err := config.Load(paths.Config)
			if err != nil {
				fmt.Printf("Config:  error loading: %v\n", err)
				return nil
			}

			fmt.Printf("Logging: level=%s style=%s\n", cfg.Logging.Level, cfg.Logging.Style)
			fmt.Printf("Raw:     extensions=%s\n", strings.Join(cfg.Plugins.RawExtensions, ","))
			fmt.Printf("Audit:   level=%s\n", cfg.Plugins.AuditLevel)
			if len(cfg.Plugins.Disabled) > 0 {
				fmt.Printf("Disabled: %s\n", strings.Join(cfg.Plugins.Disabled, ", "))
			}

			if len(cfg.Run.Scripts) > 0 {
				fmt.Printf("Scripts: %s\n", strings.Join(cfg.Run.Scripts, ", "))
			} else {
				fmt.Println("Scripts: (none configured)")
			}
			fmt.Printf("Run:     steps=%d timeStep=%gs\n", cfg.Run.Steps, cfg.Run.TimeStep)

			// Validation
			issues := config.Validate(&cfg)
			if len(issues) > 0 {
				fmt.Printf("\nValidation issues (%d):\n", len(issues))
				for _, issue := range issues {
					fmt.Printf("  - %s: %s\n", issue.Path, issue.Message)
				}
			}

			return nil
		},
	}

	return cmd
}
