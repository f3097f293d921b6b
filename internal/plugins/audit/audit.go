// Package audit provides a built-in observer plugin that traces every
// hook dispatch through the structured log. It attaches to the two meta
// points only, so it sees each dispatch of each extension point exactly
// once, including points no plugin has enabled.
package audit

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/varkis/hookline/internal/hook"
	"github.com/varkis/hookline/internal/logging"
	"github.com/varkis/hookline/internal/plugin"
)

// Compile-time contract check.
var _ plugin.Plugin = (*Plugin)(nil)

// Run above plugin-range priorities so the trace brackets everything else.
const priority = 1000

// Plugin traces hook dispatches. Pre and post lines share the registry's
// run ID, so a whole process run can be correlated from the log alone.
type Plugin struct {
	plugin.Base
	log   *logging.Logger
	lvl   zerolog.Level
	runID string
}

// New creates the audit plugin emitting its trace at the given level.
// "debug" keeps the trace out of normal output; "info" surfaces it.
func New(log *logging.Logger, runID, level string) *Plugin {
	p := &Plugin{
		log:   log.Sub("audit"),
		lvl:   logging.ParseLevel(level),
		runID: runID,
	}
	p.EnableHook(hook.MetaPre, priority)
	p.EnableHook(hook.MetaPost, priority)
	return p
}

// Configure implements plugin.Plugin.
func (p *Plugin) Configure() plugin.Configuration {
	cfg := plugin.NewConfiguration()
	cfg.Name = "Hookline::Audit"
	cfg.Description = "traces every hook dispatch to the structured log"
	return cfg
}

// MetaHookPre logs the start of a dispatch.
func (p *Plugin) MetaHookPre(h hook.Type, args []hook.Argument) {
	zl := p.log.Zerolog()
	zl.WithLevel(p.lvl).
		Str("run_id", p.runID).
		Str("hook", h.Name()).
		Str("args", renderArgs(args)).
		Msg("dispatch")
}

// MetaHookPost logs the end of a dispatch with its aggregated result.
func (p *Plugin) MetaHookPost(h hook.Type, args []hook.Argument, result hook.Argument) {
	zl := p.log.Zerolog()
	zl.WithLevel(p.lvl).
		Str("run_id", p.runID).
		Str("hook", h.Name()).
		Str("result", result.String()).
		Msg("dispatch done")
}

func renderArgs(args []hook.Argument) string {
	if len(args) == 0 {
		return "()"
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
