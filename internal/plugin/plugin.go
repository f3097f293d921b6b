// Package plugin provides the extension core: the plugin contract, the
// hook registry, and the priority-ordered dispatch engine that lets
// independently developed plugins observe and intercept the host's
// processing pipeline.
package plugin

import (
	"github.com/varkis/hookline/internal/hook"
	"github.com/varkis/hookline/internal/script"
)

// LoadOutcome is the three-way result of the file-loading hook. The
// distinction between "claimed but failed" and "not interested" must be
// preserved: a claim failure is fatal to startup, while disinterest falls
// back to the host's default loading.
type LoadOutcome int

const (
	// LoadNotInterested means the plugin did not take the file over.
	LoadNotInterested LoadOutcome = iota

	// LoadSuccess means the plugin took the file over and loaded it.
	LoadSuccess

	// LoadFailure means the plugin took the file over but could not
	// load it. The host treats this as fatal.
	LoadFailure
)

// String implements fmt.Stringer.
func (o LoadOutcome) String() string {
	switch o {
	case LoadNotInterested:
		return "not_interested"
	case LoadSuccess:
		return "success"
	case LoadFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Plugin is the contract every plugin implements. Concrete plugins embed
// Base, which supplies neutral no-op defaults for every hook operation and
// the bookkeeping behind the accessor surface; a plugin participates in a
// point by enabling it with EnableHook and overriding the corresponding
// method.
//
// Hook methods receive host objects by borrowed reference and may mutate
// them; the dispatch engine does not sandbox or roll back such effects.
// Overrides of InitPreScript, InitPostScript, and Done must call through
// to the Base implementation.
type Plugin interface {
	// Configure reports the plugin's static configuration. Called
	// exactly once, at registration, before anything else. Name and
	// Description are mandatory. Implementations must start from
	// NewConfiguration so the API version is stamped correctly.
	Configure() Configuration

	// InitPreScript runs early during startup, before scripts are
	// parsed. It completes for every plugin before any plugin's
	// InitPostScript begins.
	InitPreScript()

	// InitPostScript runs late during startup, after scripts are parsed.
	InitPostScript()

	// Done runs once at shutdown. No hook dispatch occurs afterwards.
	Done()

	// HookLoadFile fires for each input file the host is about to load.
	// ext is the filename extension without the dot.
	HookLoadFile(file, ext string) LoadOutcome

	// HookCallFunction fires before the interpreter executes a callable.
	// Returning a result with Handled set replaces the call; the
	// interpreter will not execute it.
	HookCallFunction(fn *script.Func, frame *script.Frame, args script.ValList) script.FuncResult

	// HookQueueEvent fires before the event engine queues an event.
	// Returning true takes the event over; the engine will not queue it.
	HookQueueEvent(ev *script.Event) bool

	// HookDrainEvents fires while the event engine drains its queue.
	HookDrainEvents()

	// HookUpdateNetworkTime fires when network time advances.
	HookUpdateNetworkTime(networkTime float64)

	// HookObjDtor fires when a host object is torn down. The object is
	// already considered invalid and must not be used beyond identity.
	HookObjDtor(obj any)

	// MetaHookPre fires immediately before every dispatch of every
	// point, whether or not any plugin has that point enabled.
	MetaHookPre(h hook.Type, args []hook.Argument)

	// MetaHookPost fires immediately after every dispatch of every
	// point. result carries the aggregated outcome, or the void cell if
	// the point produced none.
	MetaHookPost(h hook.Type, args []hook.Argument, result hook.Argument)

	// base exposes the embedded Base to the registry. Implementing
	// Plugin therefore requires embedding Base.
	base() *Base
}

// HookEntry is one (extension point, priority) registration of a plugin.
type HookEntry struct {
	Hook     hook.Type
	Priority int
}
