package plugin

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varkis/hookline/internal/hook"
	"github.com/varkis/hookline/internal/logging"
	"github.com/varkis/hookline/internal/script"
)

// testPlugin records every call it receives so tests can assert order.
type testPlugin struct {
	Base
	name string

	calls       *[]string // shared trace across plugins in a test
	loadOutcome LoadOutcome
	callResult  script.FuncResult
	takeEvent   bool

	preCount  int
	postCount int
	lastPost  hook.Argument
}

func newTestPlugin(name string, trace *[]string) *testPlugin {
	return &testPlugin{name: name, calls: trace}
}

func (p *testPlugin) Configure() Configuration {
	cfg := NewConfiguration()
	cfg.Name = p.name
	cfg.Description = "test plugin " + p.name
	return cfg
}

func (p *testPlugin) record(what string) {
	if p.calls != nil {
		*p.calls = append(*p.calls, p.name+":"+what)
	}
}

func (p *testPlugin) InitPreScript() {
	p.record("pre_script")
	p.Base.InitPreScript()
}

func (p *testPlugin) InitPostScript() {
	p.record("post_script")
	p.Base.InitPostScript()
}

func (p *testPlugin) Done() {
	p.record("done")
	p.Base.Done()
}

func (p *testPlugin) HookLoadFile(file, ext string) LoadOutcome {
	p.record("load_file")
	return p.loadOutcome
}

func (p *testPlugin) HookCallFunction(fn *script.Func, frame *script.Frame, args script.ValList) script.FuncResult {
	p.record("call_function")
	return p.callResult
}

func (p *testPlugin) HookQueueEvent(ev *script.Event) bool {
	p.record("queue_event")
	return p.takeEvent
}

func (p *testPlugin) HookDrainEvents() { p.record("drain_events") }

func (p *testPlugin) HookUpdateNetworkTime(networkTime float64) { p.record("update_network_time") }

func (p *testPlugin) HookObjDtor(obj any) { p.record("obj_dtor") }

func (p *testPlugin) MetaHookPre(h hook.Type, args []hook.Argument) {
	p.preCount++
	p.record("meta_pre:" + h.Name())
}

func (p *testPlugin) MetaHookPost(h hook.Type, args []hook.Argument, result hook.Argument) {
	p.postCount++
	p.lastPost = result
	p.record("meta_post:" + h.Name())
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry(logging.New(nil, "silent"))
}

func register(t *testing.T, r *Registry, ps ...*testPlugin) {
	t.Helper()
	for _, p := range ps {
		require.NoError(t, r.Register(p))
	}
}

func TestRegisterValidatesConfiguration(t *testing.T) {
	r := testRegistry(t)

	noName := newTestPlugin("", nil)
	err := r.Register(noName)
	assert.ErrorIs(t, err, ErrMissingName)

	noDesc := &missingDescPlugin{}
	err = r.Register(noDesc)
	assert.ErrorIs(t, err, ErrMissingDescription)

	assert.Empty(t, r.Plugins())
}

type missingDescPlugin struct{ Base }

func (p *missingDescPlugin) Configure() Configuration {
	cfg := NewConfiguration()
	cfg.Name = "Test::NoDesc"
	return cfg
}

// stalePlugin constructs its Configuration directly, skipping the API
// version stamp, the way a plugin built against another host would look.
type stalePlugin struct {
	Base
	touched bool
}

func (p *stalePlugin) Configure() Configuration {
	return Configuration{Name: "Test::Stale", Description: "built elsewhere"}
}

func (p *stalePlugin) InitPreScript()      { p.touched = true }
func (p *stalePlugin) HookDrainEvents()    { p.touched = true }
func (p *stalePlugin) MetaHookPre(h hook.Type, args []hook.Argument) { p.touched = true }

func TestAPIVersionMismatchRejectsPlugin(t *testing.T) {
	r := testRegistry(t)

	stale := &stalePlugin{}
	stale.EnableHook(hook.DrainEvents, 0)
	stale.EnableHook(hook.MetaPre, 0)

	err := r.Register(stale)
	require.ErrorIs(t, err, ErrAPIVersionMismatch)
	assert.Empty(t, r.Plugins())

	// A rejected plugin receives no lifecycle or hook calls, ever.
	r.InitPreScript()
	r.InitPostScript()
	r.HookDrainEvents()
	assert.False(t, stale.touched)
}

func TestRegisterTwiceFails(t *testing.T) {
	r := testRegistry(t)
	p := newTestPlugin("Test::Twice", nil)
	require.NoError(t, r.Register(p))
	assert.ErrorIs(t, r.Register(p), ErrAlreadyRegistered)
}

func TestRegistrationClosedAfterInit(t *testing.T) {
	r := testRegistry(t)
	r.InitPreScript()
	err := r.Register(newTestPlugin("Test::Late", nil))
	assert.ErrorIs(t, err, ErrRegistrationClosed)
}

func TestLookup(t *testing.T) {
	r := testRegistry(t)
	p := newTestPlugin("Test::Find", nil)
	register(t, r, p)

	assert.Equal(t, Plugin(p), r.Lookup("Test::Find"))
	assert.Nil(t, r.Lookup("Test::Missing"))
}

func TestDispatchOrderFollowsPriority(t *testing.T) {
	var trace []string
	r := testRegistry(t)
	low := newTestPlugin("low", &trace)
	mid := newTestPlugin("mid", &trace)
	high := newTestPlugin("high", &trace)
	low.EnableHook(hook.DrainEvents, 1)
	mid.EnableHook(hook.DrainEvents, 5)
	high.EnableHook(hook.DrainEvents, 10)

	// Registration order deliberately differs from priority order.
	register(t, r, low, high, mid)

	r.HookDrainEvents()
	assert.Equal(t, []string{
		"high:drain_events",
		"mid:drain_events",
		"low:drain_events",
	}, trace)

	// Raising one plugin's priority moves only that plugin.
	trace = trace[:0]
	low.EnableHook(hook.DrainEvents, 7)
	r.HookDrainEvents()
	assert.Equal(t, []string{
		"high:drain_events",
		"low:drain_events",
		"mid:drain_events",
	}, trace)
}

func TestEqualPrioritiesBreakTiesByRegistrationOrder(t *testing.T) {
	var trace []string
	r := testRegistry(t)
	first := newTestPlugin("first", &trace)
	second := newTestPlugin("second", &trace)
	first.EnableHook(hook.DrainEvents, 0)
	second.EnableHook(hook.DrainEvents, 0)
	register(t, r, first, second)

	for i := 0; i < 3; i++ {
		trace = trace[:0]
		r.HookDrainEvents()
		assert.Equal(t, []string{"first:drain_events", "second:drain_events"}, trace)
	}
}

func TestMetaHooksFireForEveryDispatch(t *testing.T) {
	r := testRegistry(t)
	observer := newTestPlugin("observer", nil)
	observer.EnableHook(hook.MetaPre, 0)
	observer.EnableHook(hook.MetaPost, 0)
	register(t, r, observer)

	// No plugin has any of these points enabled.
	r.HookLoadFile("init.hl", "hl")
	r.HookCallFunction(&script.Func{Name: "f"}, nil, nil)
	r.HookQueueEvent(&script.Event{Name: "e"})
	r.HookDrainEvents()
	r.HookUpdateNetworkTime(1.0)
	r.HookObjDtor(&struct{}{})

	assert.Equal(t, 6, observer.preCount)
	assert.Equal(t, 6, observer.postCount)
}

func TestClaimShortCircuitSkipsLowerPriority(t *testing.T) {
	var trace []string
	r := testRegistry(t)
	first := newTestPlugin("first", &trace)
	second := newTestPlugin("second", &trace)
	third := newTestPlugin("third", &trace)
	for prio, p := range map[int]*testPlugin{30: first, 20: second, 10: third} {
		p.EnableHook(hook.LoadFile, prio)
		p.EnableHook(hook.MetaPost, 0)
	}
	second.loadOutcome = LoadSuccess
	register(t, r, first, second, third)

	outcome := r.HookLoadFile("data.raw", "raw")
	assert.Equal(t, LoadSuccess, outcome)

	// The third plugin's hook never ran, but its post-meta still fired.
	assert.NotContains(t, trace, "third:load_file")
	assert.Contains(t, trace, "first:load_file")
	assert.Contains(t, trace, "second:load_file")
	assert.Contains(t, trace, "third:meta_post:load_file")
}

func TestLoadFileThreeWayOutcome(t *testing.T) {
	r := testRegistry(t)
	p := newTestPlugin("loader", nil)
	p.EnableHook(hook.LoadFile, 0)
	observer := newTestPlugin("observer", nil)
	observer.EnableHook(hook.MetaPost, 0)
	register(t, r, p, observer)

	p.loadOutcome = LoadNotInterested
	assert.Equal(t, LoadNotInterested, r.HookLoadFile("a.hl", "hl"))
	assert.Equal(t, hook.KindVoid, observer.lastPost.Kind())

	p.loadOutcome = LoadSuccess
	assert.Equal(t, LoadSuccess, r.HookLoadFile("a.hl", "hl"))
	assert.True(t, observer.lastPost.Bool())

	p.loadOutcome = LoadFailure
	assert.Equal(t, LoadFailure, r.HookLoadFile("a.hl", "hl"))
	assert.False(t, observer.lastPost.Bool())
}

func TestCallFunctionFirstHandledWins(t *testing.T) {
	var trace []string
	r := testRegistry(t)
	first := newTestPlugin("first", &trace)
	second := newTestPlugin("second", &trace)
	first.EnableHook(hook.CallFunction, 10)
	second.EnableHook(hook.CallFunction, 5)
	first.callResult = script.FuncResult{Handled: true, Val: script.StringVal("replaced")}
	register(t, r, first, second)

	res := r.HookCallFunction(&script.Func{Name: "f"}, nil, nil)
	require.True(t, res.Handled)
	assert.Equal(t, "replaced", res.Val.String())
	assert.NotContains(t, trace, "second:call_function")
}

func TestCallFunctionUnhandledResult(t *testing.T) {
	r := testRegistry(t)
	observer := newTestPlugin("observer", nil)
	observer.EnableHook(hook.MetaPost, 0)
	register(t, r, observer)

	res := r.HookCallFunction(&script.Func{Name: "f"}, nil, nil)
	assert.False(t, res.Handled)

	// The post-meta result is a func_result cell whose handled flag
	// distinguishes "nobody claimed" from "claimed with empty value".
	require.Equal(t, hook.KindFuncResult, observer.lastPost.Kind())
	assert.False(t, observer.lastPost.FuncResult().Handled)
}

func TestQueueEventTakeover(t *testing.T) {
	var trace []string
	r := testRegistry(t)
	taker := newTestPlugin("taker", &trace)
	bystander := newTestPlugin("bystander", &trace)
	taker.EnableHook(hook.QueueEvent, 10)
	bystander.EnableHook(hook.QueueEvent, 1)
	taker.takeEvent = true
	register(t, r, taker, bystander)

	assert.True(t, r.HookQueueEvent(&script.Event{Name: "e"}))
	assert.NotContains(t, trace, "bystander:queue_event")
}

func TestNotificationPointsInvokeAllPlugins(t *testing.T) {
	var trace []string
	r := testRegistry(t)
	ps := []*testPlugin{
		newTestPlugin("a", &trace),
		newTestPlugin("b", &trace),
		newTestPlugin("c", &trace),
	}
	for i, p := range ps {
		p.EnableHook(hook.UpdateNetworkTime, 10-i)
		register(t, r, p)
	}

	r.HookUpdateNetworkTime(42.0)
	assert.Equal(t, []string{
		"a:update_network_time",
		"b:update_network_time",
		"c:update_network_time",
	}, trace)
}

func TestEnableThenDisableLeavesNextDispatchAlone(t *testing.T) {
	var trace []string
	r := testRegistry(t)
	p := newTestPlugin("toggler", &trace)
	register(t, r, p)

	p.EnableHook(hook.DrainEvents, 0)
	p.DisableHook(hook.DrainEvents)
	r.HookDrainEvents()
	assert.Empty(t, trace)

	// Toggling live is observed by the next dispatch.
	p.EnableHook(hook.DrainEvents, 0)
	r.HookDrainEvents()
	assert.Equal(t, []string{"toggler:drain_events"}, trace)
}

func TestReEnableReplacesPriority(t *testing.T) {
	r := testRegistry(t)
	p := newTestPlugin("p", nil)
	p.EnableHook(hook.DrainEvents, 1)
	p.EnableHook(hook.DrainEvents, 99)
	register(t, r, p)

	entries := p.EnabledHooks()
	require.Len(t, entries, 1)
	assert.Equal(t, 99, entries[0].Priority)
}

func TestLifecycleTwoPassInit(t *testing.T) {
	var trace []string
	r := testRegistry(t)
	a := newTestPlugin("a", &trace)
	b := newTestPlugin("b", &trace)
	register(t, r, a, b)

	r.InitPreScript()
	r.InitPostScript()

	// InitPreScript completes for every plugin before any InitPostScript.
	assert.Equal(t, []string{
		"a:pre_script", "b:pre_script",
		"a:post_script", "b:post_script",
	}, trace)
	assert.Equal(t, StatePostScriptInit, a.State())

	r.Done()
	assert.Equal(t, []string{
		"a:pre_script", "b:pre_script",
		"a:post_script", "b:post_script",
		"b:done", "a:done", // reverse registration order
	}, trace)
	assert.Equal(t, StateDone, a.State())
}

func TestLifecycleOrderViolationPanics(t *testing.T) {
	r := testRegistry(t)
	assert.Panics(t, func() { r.InitPostScript() })

	r2 := testRegistry(t)
	r2.InitPreScript()
	assert.Panics(t, func() { r2.InitPreScript() })
}

func TestNoDispatchAfterDone(t *testing.T) {
	r := testRegistry(t)
	register(t, r, newTestPlugin("p", nil))
	r.InitPreScript()
	r.InitPostScript()
	r.Done()
	r.Done() // idempotent

	assert.Panics(t, func() { r.HookDrainEvents() })
	assert.Panics(t, func() { r.HookLoadFile("x", "") })
}

func TestObjDtorRequests(t *testing.T) {
	r := testRegistry(t)
	p := newTestPlugin("dtor", nil)
	register(t, r, p)
	p.EnableHook(hook.ObjDtor, 0)

	obj := &script.Event{Name: "tracked"}
	r.RequestObjDtor(obj)
	assert.True(t, r.ObjDtorRequested(obj))
	assert.False(t, r.ObjDtorRequested(&script.Event{}))

	r.HookObjDtor(obj)
	assert.False(t, r.ObjDtorRequested(obj), "request is consumed by teardown")
}

func TestHookEnabled(t *testing.T) {
	r := testRegistry(t)
	p := newTestPlugin("p", nil)
	register(t, r, p)

	assert.False(t, r.HookEnabled(hook.QueueEvent))
	p.EnableHook(hook.QueueEvent, 0)
	assert.True(t, r.HookEnabled(hook.QueueEvent))
	p.DisableHook(hook.QueueEvent)
	assert.False(t, r.HookEnabled(hook.QueueEvent))
}

func TestLoadScriptFile(t *testing.T) {
	r := testRegistry(t)
	p := newTestPlugin("p", nil)

	assert.ErrorIs(t, p.LoadScriptFile("x.hl"), ErrNotRegistered)

	register(t, r, p)
	assert.ErrorIs(t, p.LoadScriptFile("x.hl"), ErrNoScriptLoader)

	var loaded []string
	r.SetScriptLoader(func(file string) error {
		loaded = append(loaded, file)
		return nil
	})
	require.NoError(t, p.LoadScriptFile("x.hl"))
	assert.Equal(t, []string{"x.hl"}, loaded)

	r.InitPreScript()
	r.InitPostScript()
	assert.ErrorIs(t, p.LoadScriptFile("late.hl"), ErrLoadAfterInit)
}

func TestRunIDIsStablePerRegistry(t *testing.T) {
	r := testRegistry(t)
	assert.NotEmpty(t, r.RunID())
	assert.Equal(t, r.RunID(), r.RunID())
	assert.NotEqual(t, r.RunID(), testRegistry(t).RunID())
}

func TestMetaHookPriorityOrder(t *testing.T) {
	var trace []string
	r := testRegistry(t)
	lowObs := newTestPlugin("low_obs", &trace)
	highObs := newTestPlugin("high_obs", &trace)
	lowObs.EnableHook(hook.MetaPre, 1)
	highObs.EnableHook(hook.MetaPre, 10)
	register(t, r, lowObs, highObs)

	r.HookDrainEvents()
	require.Len(t, trace, 2)
	assert.Equal(t, "high_obs:meta_pre:drain_events", trace[0])
	assert.Equal(t, "low_obs:meta_pre:drain_events", trace[1])
}

func ExampleRegistry_Describe() {
	r := NewRegistry(logging.New(nil, "silent"))
	p := newTestPlugin("Example::Demo", nil)
	if err := r.Register(p); err != nil {
		fmt.Println(err)
		return
	}
	p.AddBifItem("Demo::greet", BifFunction)
	r.Describe(os.Stdout, true)
	// Output:
	// Example::Demo - test plugin Example::Demo (built-in)
	//     [Function] Demo::greet
}
