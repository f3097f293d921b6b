package plugin

import (
	"fmt"

	"github.com/varkis/hookline/internal/hook"
	"github.com/varkis/hookline/internal/script"
)

// Dispatch entry points, one per extension point. Each wraps the walk
// over enabled plugins with the pre/post meta hooks, which fire once per
// dispatch even when zero plugins have the point itself enabled.

func (r *Registry) checkDispatch(h hook.Type) {
	if r.phase == phaseDone {
		panic(fmt.Sprintf("plugin: %s dispatched after shutdown", h))
	}
}

func (r *Registry) metaPre(h hook.Type, args []hook.Argument) {
	for _, e := range r.sorted(hook.MetaPre) {
		e.plugin.MetaHookPre(h, args)
	}
}

func (r *Registry) metaPost(h hook.Type, args []hook.Argument, result hook.Argument) {
	for _, e := range r.sorted(hook.MetaPost) {
		e.plugin.MetaHookPost(h, args, result)
	}
}

// HookLoadFile gives plugins a chance to take over loading an input file.
// The first plugin that claims the file ends the walk; its success or
// failure is the dispatch's outcome. LoadNotInterested means the host
// should fall back to its default loading.
func (r *Registry) HookLoadFile(file, ext string) LoadOutcome {
	r.checkDispatch(hook.LoadFile)
	args := []hook.Argument{hook.StringArg(file), hook.StringArg(ext)}
	r.metaPre(hook.LoadFile, args)

	outcome := LoadNotInterested
	for _, e := range r.sorted(hook.LoadFile) {
		if rc := e.plugin.HookLoadFile(file, ext); rc != LoadNotInterested {
			outcome = rc
			break
		}
	}

	result := hook.VoidArg()
	if outcome != LoadNotInterested {
		result = hook.BoolArg(outcome == LoadSuccess)
	}
	r.metaPost(hook.LoadFile, args, result)
	return outcome
}

// HookCallFunction gives plugins a chance to handle a callable instead of
// the interpreter. The first handled result ends the walk and is returned;
// an unhandled result means the interpreter should execute the call.
func (r *Registry) HookCallFunction(fn *script.Func, frame *script.Frame, vals script.ValList) script.FuncResult {
	r.checkDispatch(hook.CallFunction)
	args := []hook.Argument{hook.FuncArg(fn), hook.FrameArg(frame), hook.ValListArg(vals)}
	r.metaPre(hook.CallFunction, args)

	var result script.FuncResult
	for _, e := range r.sorted(hook.CallFunction) {
		if res := e.plugin.HookCallFunction(fn, frame, vals); res.Handled {
			result = res
			break
		}
	}

	r.metaPost(hook.CallFunction, args, hook.FuncResultArg(result))
	return result
}

// HookQueueEvent gives plugins a chance to take over queuing an event.
// Returns true if some plugin took the event; the event engine must not
// queue it in that case.
func (r *Registry) HookQueueEvent(ev *script.Event) bool {
	r.checkDispatch(hook.QueueEvent)
	args := []hook.Argument{hook.EventArg(ev)}
	r.metaPre(hook.QueueEvent, args)

	taken := false
	for _, e := range r.sorted(hook.QueueEvent) {
		if e.plugin.HookQueueEvent(ev) {
			taken = true
			break
		}
	}

	r.metaPost(hook.QueueEvent, args, hook.BoolArg(taken))
	return taken
}

// HookDrainEvents notifies all interested plugins that the event engine
// is draining its queue. Pure fan-out; every enabled plugin is called.
func (r *Registry) HookDrainEvents() {
	r.checkDispatch(hook.DrainEvents)
	r.metaPre(hook.DrainEvents, nil)
	for _, e := range r.sorted(hook.DrainEvents) {
		e.plugin.HookDrainEvents()
	}
	r.metaPost(hook.DrainEvents, nil, hook.VoidArg())
}

// HookUpdateNetworkTime notifies all interested plugins that network time
// advanced. Pure fan-out.
func (r *Registry) HookUpdateNetworkTime(networkTime float64) {
	r.checkDispatch(hook.UpdateNetworkTime)
	args := []hook.Argument{hook.DoubleArg(networkTime)}
	r.metaPre(hook.UpdateNetworkTime, args)
	for _, e := range r.sorted(hook.UpdateNetworkTime) {
		e.plugin.HookUpdateNetworkTime(networkTime)
	}
	r.metaPost(hook.UpdateNetworkTime, args, hook.VoidArg())
}

// HookObjDtor notifies all interested plugins that a host object is being
// torn down. Pure fan-out. The object must only be used for identity.
func (r *Registry) HookObjDtor(obj any) {
	r.checkDispatch(hook.ObjDtor)
	args := []hook.Argument{hook.PointerArg(obj)}
	r.metaPre(hook.ObjDtor, args)
	for _, e := range r.sorted(hook.ObjDtor) {
		e.plugin.HookObjDtor(obj)
	}
	delete(r.dtorRequests, obj)
	r.metaPost(hook.ObjDtor, args, hook.VoidArg())
}
