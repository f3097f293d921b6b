package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/varkis/hookline/internal/config"
)

func newPluginsCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "List registered plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(paths.Config)
			if err != nil {
				return err
			}

			reg, err := buildRegistry(cfg, log)
			if err != nil {
				return err
			}
			reg.Describe(os.Stdout, verbose)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include components, script items, and hooks")

	return cmd
}
