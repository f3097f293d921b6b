package plugin

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/varkis/hookline/internal/hook"
	"github.com/varkis/hookline/internal/logging"
	"github.com/varkis/hookline/internal/version"
)

// ScriptLoader is the host callback that loads a script file queued by a
// plugin. Path resolution is the host's job.
type ScriptLoader func(file string) error

// Registry owns the registered plugins and drives both their lifecycle
// and hook dispatch. It keeps a per-point index of (plugin, priority)
// entries sorted by descending priority; ties break by registration
// order, so dispatch order is reproducible within a run.
//
// The registry assumes single-threaded access: the host's pipeline calls
// into it synchronously, and registration mutations must not race with
// in-flight dispatch. It provides no internal locking.
type Registry struct {
	log   *logging.Logger
	runID string

	plugins []Plugin // in registration order
	phase   phase

	index [hook.NumTypes][]hookEntry
	dirty [hook.NumTypes]bool

	scriptLoader ScriptLoader
	dtorRequests map[any]struct{}
}

// hookEntry is one slot in the per-point dispatch index. seq is the
// owning plugin's registration sequence, used as the tie-break.
type hookEntry struct {
	plugin   Plugin
	priority int
	seq      int
}

type phase int

const (
	phaseRegister phase = iota // accepting registrations
	phasePreScript             // InitPreScript completed for all plugins
	phaseRunning               // InitPostScript completed for all plugins
	phaseDone                  // Done ran; dispatch is forbidden
)

// NewRegistry creates an empty registry. Every process run gets a fresh
// run ID that the registry and observer plugins stamp on their logs.
func NewRegistry(log *logging.Logger) *Registry {
	return &Registry{
		log:          log.Sub("plugins"),
		runID:        uuid.NewString(),
		dtorRequests: make(map[any]struct{}),
	}
}

// RunID returns the identifier of this process run, for log correlation.
func (r *Registry) RunID() string { return r.runID }

// SetScriptLoader installs the host callback behind plugin script-load
// requests.
func (r *Registry) SetScriptLoader(fn ScriptLoader) { r.scriptLoader = fn }

func (r *Registry) loadScript(file string) error {
	if r.scriptLoader == nil {
		return ErrNoScriptLoader
	}
	return r.scriptLoader(file)
}

// Register configures, validates, and activates a plugin. The plugin's
// Configure method runs here, exactly once. A configuration error or an
// API version mismatch rejects the plugin: it is excluded from all
// lifecycle and hook calls and the error is returned for reporting.
func (r *Registry) Register(p Plugin) error {
	if r.phase != phaseRegister {
		return ErrRegistrationClosed
	}

	b := p.base()
	if b.registry != nil {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, b.cfg.Name)
	}

	cfg := p.Configure()
	if cfg.Name == "" {
		return ErrMissingName
	}
	if cfg.Description == "" {
		return fmt.Errorf("%w: %s", ErrMissingDescription, cfg.Name)
	}
	if cfg.apiVersion != version.APIVersion {
		err := fmt.Errorf("%w: plugin %q reports v%d, host requires v%d",
			ErrAPIVersionMismatch, cfg.Name, cfg.apiVersion, version.APIVersion)
		r.log.Error().
			Str("run_id", r.runID).
			Str("plugin", cfg.Name).
			Int("plugin_api", cfg.apiVersion).
			Int("host_api", version.APIVersion).
			Msg("plugin rejected")
		return err
	}

	b.cfg = cfg
	b.configured = true
	b.state = StateConfigured
	b.registry = r

	r.plugins = append(r.plugins, p)
	for h := hook.Type(0); h < hook.NumTypes; h++ {
		r.dirty[h] = true
	}

	r.log.Info().
		Str("run_id", r.runID).
		Str("plugin", cfg.Name).
		Str("version", cfg.Version.String()).
		Bool("dynamic", b.dynamic).
		Msg("plugin registered")
	return nil
}

// Plugins returns the registered plugins in registration order.
func (r *Registry) Plugins() []Plugin {
	out := make([]Plugin, len(r.plugins))
	copy(out, r.plugins)
	return out
}

// Lookup returns the registered plugin with the given name, or nil.
func (r *Registry) Lookup(name string) Plugin {
	for _, p := range r.plugins {
		if p.base().cfg.Name == name {
			return p
		}
	}
	return nil
}

// InitPreScript runs first-stage initialization for every plugin, in
// registration order. It completes for all plugins before any plugin's
// InitPostScript may run. Calling it out of order is a programming error.
func (r *Registry) InitPreScript() {
	if r.phase != phaseRegister {
		panic(fmt.Sprintf("plugin: InitPreScript in phase %d", r.phase))
	}
	for _, p := range r.plugins {
		r.log.Debug().Str("plugin", p.base().cfg.Name).Msg("pre-script init")
		p.InitPreScript()
	}
	r.phase = phasePreScript
}

// InitPostScript runs second-stage initialization for every plugin, in
// registration order, after InitPreScript has completed for all.
func (r *Registry) InitPostScript() {
	if r.phase != phasePreScript {
		panic(fmt.Sprintf("plugin: InitPostScript in phase %d", r.phase))
	}
	for _, p := range r.plugins {
		r.log.Debug().Str("plugin", p.base().cfg.Name).Msg("post-script init")
		p.InitPostScript()
	}
	r.phase = phaseRunning
}

// Done shuts every plugin down, in reverse registration order. No hook
// dispatch may occur afterwards.
func (r *Registry) Done() {
	if r.phase == phaseDone {
		return
	}
	r.phase = phaseDone
	for i := len(r.plugins) - 1; i >= 0; i-- {
		p := r.plugins[i]
		r.log.Debug().Str("plugin", p.base().cfg.Name).Msg("done")
		p.Done()
	}
}

// RequestObjDtor registers interest in the teardown of a specific host
// object. The host checks ObjDtorRequested on its hot teardown path and
// only dispatches HookObjDtor when someone asked; the hook may still fire
// for objects no plugin requested.
func (r *Registry) RequestObjDtor(obj any) {
	r.dtorRequests[obj] = struct{}{}
}

// ObjDtorRequested reports whether any plugin asked to observe the
// teardown of obj.
func (r *Registry) ObjDtorRequested(obj any) bool {
	_, ok := r.dtorRequests[obj]
	return ok
}

// HookEnabled reports whether at least one plugin currently has the given
// point enabled. Hosts use it to skip argument setup on hot paths.
func (r *Registry) HookEnabled(h hook.Type) bool {
	return len(r.sorted(h)) > 0
}

// invalidate marks a point's dispatch index stale. Called by Base when a
// registered plugin toggles a hook.
func (r *Registry) invalidate(h hook.Type) {
	r.dirty[h] = true
}

// sorted returns the dispatch order for a point: descending priority,
// ties by registration order. Rebuilt lazily after toggles.
func (r *Registry) sorted(h hook.Type) []hookEntry {
	if r.dirty[h] {
		entries := r.index[h][:0]
		for seq, p := range r.plugins {
			if prio, ok := p.base().hooks[h]; ok {
				entries = append(entries, hookEntry{plugin: p, priority: prio, seq: seq})
			}
		}
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].priority != entries[j].priority {
				return entries[i].priority > entries[j].priority
			}
			return entries[i].seq < entries[j].seq
		})
		r.index[h] = entries
		r.dirty[h] = false
	}
	return r.index[h]
}
