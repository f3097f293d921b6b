package plugin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varkis/hookline/internal/hook"
	"github.com/varkis/hookline/internal/script"
)

type namedComponent struct{ name string }

func (c namedComponent) Name() string { return c.name }

func TestConfigurationStamp(t *testing.T) {
	cfg := NewConfiguration()
	assert.NotZero(t, cfg.APIVersion())
	assert.False(t, cfg.Version.Valid())
	assert.Equal(t, "unset", cfg.Version.String())

	cfg.Version = VersionNumber{Major: 2, Minor: 1}
	assert.True(t, cfg.Version.Valid())
	assert.Equal(t, "2.1", cfg.Version.String())

	// Direct construction skips the stamp.
	assert.Zero(t, Configuration{}.APIVersion())
}

func TestBaseAccessors(t *testing.T) {
	r := testRegistry(t)
	p := newTestPlugin("Test::Accessors", nil)
	p.SetDynamic(true)
	p.SetPluginLocation("/opt/hookline/plugins/acc", "/opt/hookline/plugins/acc/acc.so")
	register(t, r, p)

	assert.Equal(t, "Test::Accessors", p.Name())
	assert.Equal(t, "test plugin Test::Accessors", p.Description())
	assert.True(t, p.Dynamic())
	assert.Equal(t, "/opt/hookline/plugins/acc", p.PluginDirectory())
	assert.Equal(t, "/opt/hookline/plugins/acc/acc.so", p.PluginPath())
	assert.Equal(t, StateConfigured, p.State())
}

func TestComponentAndBifItemSnapshots(t *testing.T) {
	p := newTestPlugin("Test::Snapshots", nil)
	p.AddComponent(namedComponent{name: "reader"})
	p.AddComponent(namedComponent{name: "writer"})
	p.AddBifItem("Snap::read", BifFunction)
	p.AddBifItem("Snap::done", BifEvent)

	comps := p.Components()
	items := p.BifItems()
	require.Len(t, comps, 2)
	require.Len(t, items, 2)

	// Snapshots do not alias the plugin's own lists.
	comps[0] = namedComponent{name: "clobbered"}
	items[0] = BifItem{ID: "clobbered", Kind: BifType}
	assert.Equal(t, "reader", p.Components()[0].Name())
	assert.Equal(t, "Snap::read", p.BifItems()[0].ID)
}

func TestEnabledHooksOrderedByPoint(t *testing.T) {
	p := newTestPlugin("Test::Hooks", nil)
	p.EnableHook(hook.UpdateNetworkTime, 3)
	p.EnableHook(hook.LoadFile, -2)
	p.EnableHook(hook.QueueEvent, 7)

	entries := p.EnabledHooks()
	require.Len(t, entries, 3)
	assert.Equal(t, hook.LoadFile, entries[0].Hook)
	assert.Equal(t, -2, entries[0].Priority)
	assert.Equal(t, hook.QueueEvent, entries[1].Hook)
	assert.Equal(t, hook.UpdateNetworkTime, entries[2].Hook)
}

func TestBaseDefaultsAreNeutral(t *testing.T) {
	var b Base
	assert.Equal(t, LoadNotInterested, b.HookLoadFile("x", ""))
	assert.False(t, b.HookCallFunction(&script.Func{}, nil, nil).Handled)
	assert.False(t, b.HookQueueEvent(&script.Event{}))
	assert.NotPanics(t, func() {
		b.HookDrainEvents()
		b.HookUpdateNetworkTime(0)
		b.HookObjDtor(nil)
		b.MetaHookPre(hook.LoadFile, nil)
		b.MetaHookPost(hook.LoadFile, nil, hook.VoidArg())
	})
}

func TestBifKindString(t *testing.T) {
	tests := []struct {
		kind BifKind
		want string
	}{
		{BifFunction, "Function"},
		{BifEvent, "Event"},
		{BifConstant, "Constant"},
		{BifGlobal, "Global"},
		{BifType, "Type"},
		{BifKind(0), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "constructed", StateConstructed.String())
	assert.Equal(t, "configured", StateConfigured.String())
	assert.Equal(t, "pre-script-initialized", StatePreScriptInit.String())
	assert.Equal(t, "post-script-initialized", StatePostScriptInit.String())
	assert.Equal(t, "done", StateDone.String())
	assert.Equal(t, "unknown", State(99).String())
}

func TestLoadOutcomeString(t *testing.T) {
	assert.Equal(t, "not_interested", LoadNotInterested.String())
	assert.Equal(t, "success", LoadSuccess.String())
	assert.Equal(t, "failure", LoadFailure.String())
	assert.Equal(t, "unknown", LoadOutcome(9).String())
}

func TestDescribeSnapshot(t *testing.T) {
	r := testRegistry(t)

	static := newTestPlugin("Hookline::Beta", nil)
	static.AddComponent(namedComponent{name: "beta-reader"})
	static.AddBifItem("Beta::poll", BifFunction)
	static.AddBifItem("Beta::ready", BifEvent)
	static.EnableHook(hook.QueueEvent, 5)

	dyn := newTestPlugin("Hookline::Alpha", nil)
	dyn.SetDynamic(true)
	register(t, r, static, dyn)
	dyn.base().cfg.Version = VersionNumber{Major: 1, Minor: 4}

	var short strings.Builder
	r.Describe(&short, false)
	assert.Equal(t,
		"Hookline::Alpha - test plugin Hookline::Alpha (dynamic, version 1.4)\n"+
			"Hookline::Beta - test plugin Hookline::Beta (built-in)\n",
		short.String())

	var long strings.Builder
	r.Describe(&long, true)
	assert.Equal(t,
		"Hookline::Alpha - test plugin Hookline::Alpha (dynamic, version 1.4)\n"+
			"Hookline::Beta - test plugin Hookline::Beta (built-in)\n"+
			"    [Component] beta-reader\n"+
			"    [Function] Beta::poll\n"+
			"    [Event] Beta::ready\n"+
			"    [Hook] queue_event, priority 5\n",
		long.String())
}
