package cli

import (
	"slices"

	"github.com/varkis/hookline/internal/config"
	"github.com/varkis/hookline/internal/logging"
	"github.com/varkis/hookline/internal/plugin"
	"github.com/varkis/hookline/internal/plugins/audit"
	"github.com/varkis/hookline/internal/plugins/fileraw"
)

// buildRegistry creates a registry with all built-in plugins registered,
// minus the ones the config disables by name.
func buildRegistry(cfg config.Config, log *logging.Logger) (*plugin.Registry, error) {
	reg := plugin.NewRegistry(log)

	builtins := []plugin.Plugin{
		audit.New(log, reg.RunID(), cfg.Plugins.AuditLevel),
		fileraw.New(log, cfg.Plugins.RawExtensions),
	}

	for _, p := range builtins {
		if slices.Contains(cfg.Plugins.Disabled, p.Configure().Name) {
			continue
		}
		if err := reg.Register(p); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
