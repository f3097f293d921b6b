package plugin

import (
	"sort"

	"github.com/varkis/hookline/internal/hook"
	"github.com/varkis/hookline/internal/script"
)

// Base supplies the default behavior behind the Plugin contract: neutral
// no-op hook implementations, configuration and location accessors, owned
// component and BiF item lists, and the priority entries that declare
// which extension points the plugin participates in. Concrete plugins
// embed Base and override what they need.
type Base struct {
	cfg        Configuration
	configured bool
	state      State

	dynamic bool
	dir     string // base directory for dynamic plugins, else empty
	path    string // module path for dynamic plugins, else empty

	components []Component
	bifItems   []BifItem
	hooks      map[hook.Type]int // enabled point -> priority

	registry *Registry // set at registration
}

func (b *Base) base() *Base { return b }

// Name returns the plugin's name.
func (b *Base) Name() string { return b.cfg.Name }

// Description returns the plugin's short description.
func (b *Base) Description() string { return b.cfg.Description }

// Version returns the plugin's own version. Only meaningful for dynamic
// plugins; built-ins report an unset version.
func (b *Base) Version() VersionNumber { return b.cfg.Version }

// APIVersion returns the plugin API version this plugin was built against.
func (b *Base) APIVersion() int { return b.cfg.apiVersion }

// Dynamic reports whether this plugin was loaded at runtime rather than
// compiled into the host.
func (b *Base) Dynamic() bool { return b.dynamic }

// PluginDirectory returns the directory a dynamic plugin was loaded from,
// or an empty string for built-ins.
func (b *Base) PluginDirectory() string { return b.dir }

// PluginPath returns the full module path a dynamic plugin was loaded
// from, or an empty string for built-ins.
func (b *Base) PluginPath() string { return b.path }

// State returns the plugin's lifecycle state.
func (b *Base) State() State { return b.state }

// SetDynamic marks the plugin as dynamically loaded. Called by the loader.
func (b *Base) SetDynamic(dynamic bool) { b.dynamic = dynamic }

// SetPluginLocation records where a dynamic plugin was loaded from.
// Called by the loader.
func (b *Base) SetPluginLocation(dir, path string) {
	b.dir = dir
	b.path = path
}

// AddComponent transfers ownership of a component to the plugin. Duplicate
// identities are the caller's responsibility.
func (b *Base) AddComponent(c Component) {
	b.components = append(b.components, c)
}

// AddBifItem records a script-visible item the plugin provides. This is
// informational only; actual symbol registration is external.
func (b *Base) AddBifItem(id string, kind BifKind) {
	b.bifItems = append(b.bifItems, BifItem{ID: id, Kind: kind})
}

// Components returns a snapshot of the plugin's owned components.
func (b *Base) Components() []Component {
	out := make([]Component, len(b.components))
	copy(out, b.components)
	return out
}

// BifItems returns a snapshot of the plugin's recorded script items.
func (b *Base) BifItems() []BifItem {
	out := make([]BifItem, len(b.bifItems))
	copy(out, b.bifItems)
	return out
}

// EnableHook declares interest in an extension point at the given
// priority. Enabling the same point again replaces the priority. Safe to
// call at any time, including before registration; the dispatch engine
// observes the current set at each dispatch.
//
// Enabling a frequently dispatched point has a global cost: every
// dispatch through it now considers this plugin.
func (b *Base) EnableHook(h hook.Type, priority int) {
	if b.hooks == nil {
		b.hooks = make(map[hook.Type]int)
	}
	b.hooks[h] = priority
	if b.registry != nil {
		b.registry.invalidate(h)
	}
}

// DisableHook withdraws interest in an extension point.
func (b *Base) DisableHook(h hook.Type) {
	delete(b.hooks, h)
	if b.registry != nil {
		b.registry.invalidate(h)
	}
}

// EnabledHooks returns the plugin's current hook registrations, ordered
// by extension point for stable listings.
func (b *Base) EnabledHooks() []HookEntry {
	out := make([]HookEntry, 0, len(b.hooks))
	for h, prio := range b.hooks {
		out = append(out, HookEntry{Hook: h, Priority: prio})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hook < out[j].Hook })
	return out
}

// LoadScriptFile queues a script file for loading by the host. Path
// resolution and the actual load are the host's job; the file may only be
// queued for now. Must not be called after InitPostScript.
func (b *Base) LoadScriptFile(file string) error {
	if b.state >= StatePostScriptInit {
		return ErrLoadAfterInit
	}
	if b.registry == nil {
		return ErrNotRegistered
	}
	return b.registry.loadScript(file)
}

// InitPreScript is the default first-stage initializer. Overrides must
// call through.
func (b *Base) InitPreScript() { b.state = StatePreScriptInit }

// InitPostScript is the default second-stage initializer. Overrides must
// call through.
func (b *Base) InitPostScript() { b.state = StatePostScriptInit }

// Done is the default finalizer. Overrides must call through.
func (b *Base) Done() { b.state = StateDone }

// HookLoadFile is never interested by default.
func (b *Base) HookLoadFile(file, ext string) LoadOutcome { return LoadNotInterested }

// HookCallFunction never handles the call by default.
func (b *Base) HookCallFunction(fn *script.Func, frame *script.Frame, args script.ValList) script.FuncResult {
	return script.FuncResult{}
}

// HookQueueEvent never takes the event over by default.
func (b *Base) HookQueueEvent(ev *script.Event) bool { return false }

// HookDrainEvents does nothing by default.
func (b *Base) HookDrainEvents() {}

// HookUpdateNetworkTime does nothing by default.
func (b *Base) HookUpdateNetworkTime(networkTime float64) {}

// HookObjDtor does nothing by default.
func (b *Base) HookObjDtor(obj any) {}

// MetaHookPre does nothing by default.
func (b *Base) MetaHookPre(h hook.Type, args []hook.Argument) {}

// MetaHookPost does nothing by default.
func (b *Base) MetaHookPost(h hook.Type, args []hook.Argument, result hook.Argument) {}
