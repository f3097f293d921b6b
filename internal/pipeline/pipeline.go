// Package pipeline drives a scripted event run through the plugin
// registry: it loads input scripts, queues and drains events, and
// advances network time, giving plugins their chance to intercept each
// step.
package pipeline

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/varkis/hookline/internal/logging"
	"github.com/varkis/hookline/internal/plugin"
	"github.com/varkis/hookline/internal/script"
)

// Pipeline is the event engine of the host. Like the registry it is
// single-threaded; all methods must be called from the run loop.
type Pipeline struct {
	reg *plugin.Registry
	log *logging.Logger

	networkTime float64
	queue       []*script.Event
	dispatched  int
}

// New creates a pipeline on top of a registry and installs itself as the
// registry's script loader, so plugins calling LoadScriptFile go through
// the same loading path as the host.
func New(reg *plugin.Registry, log *logging.Logger) *Pipeline {
	p := &Pipeline{reg: reg, log: log.Sub("pipeline")}
	reg.SetScriptLoader(p.LoadFile)
	return p
}

// NetworkTime returns the current network time.
func (p *Pipeline) NetworkTime() float64 { return p.networkTime }

// Pending returns the number of queued, undrained events.
func (p *Pipeline) Pending() int { return len(p.queue) }

// Dispatched returns the number of events handed to handlers so far.
func (p *Pipeline) Dispatched() int { return p.dispatched }

// LoadFile loads one input file. Plugins get first refusal: a plugin may
// claim the file outright, in which case its outcome is final. Unclaimed
// files go through the built-in script reader.
func (p *Pipeline) LoadFile(file string) error {
	ext := strings.TrimPrefix(filepath.Ext(file), ".")

	switch p.reg.HookLoadFile(file, ext) {
	case plugin.LoadSuccess:
		p.log.Debug().Str("file", file).Msg("file claimed by plugin")
		return nil
	case plugin.LoadFailure:
		return fmt.Errorf("pipeline: plugin failed to load %s", file)
	}

	return p.loadScript(file)
}

// loadScript parses the line-based script format: one "event NAME
// [ARG...]" directive per line, blank lines and #-comments ignored.
// Parsed events are queued through the usual queue hook.
func (p *Pipeline) loadScript(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("pipeline: open script: %w", err)
	}
	defer f.Close()

	n := 0
	sc := bufio.NewScanner(f)
	for lineno := 1; sc.Scan(); lineno++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if fields[0] != "event" || len(fields) < 2 {
			return fmt.Errorf("pipeline: %s:%d: expected \"event NAME [ARG...]\", got %q", file, lineno, line)
		}

		ev := &script.Event{Name: fields[1]}
		for _, arg := range fields[2:] {
			ev.Args = append(ev.Args, parseArg(arg))
		}
		p.Enqueue(ev)
		n++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("pipeline: read script: %w", err)
	}

	p.log.Info().Str("file", file).Int("events", n).Msg("script loaded")
	return nil
}

func parseArg(s string) *script.Val {
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return script.CountVal(n)
	}
	return script.StringVal(s)
}

// Enqueue queues an event for the next drain, unless a plugin takes it
// over.
func (p *Pipeline) Enqueue(ev *script.Event) {
	if p.reg.HookQueueEvent(ev) {
		p.log.Debug().Str("event", ev.Name).Msg("event taken by plugin")
		return
	}
	p.queue = append(p.queue, ev)
}

// Drain flushes the queue, dispatching each event to its handler. A
// plugin may intercept any individual call; unintercepted calls fall
// through to the built-in handler, which only counts them. Events for
// which a teardown notification was requested get one after dispatch.
func (p *Pipeline) Drain() {
	p.reg.HookDrainEvents()

	pending := p.queue
	p.queue = nil
	for _, ev := range pending {
		fn := &script.Func{Name: ev.Name}
		frame := &script.Frame{Call: fn}

		res := p.reg.HookCallFunction(fn, frame, ev.Args)
		if !res.Handled {
			p.dispatched++
			p.log.Debug().Str("event", ev.Name).Msg("event dispatched")
		} else {
			p.log.Debug().Str("event", ev.Name).Str("result", res.Val.String()).Msg("call handled by plugin")
		}

		if p.reg.ObjDtorRequested(ev) {
			p.reg.HookObjDtor(ev)
		}
	}
}

// AdvanceTime moves network time forward and notifies plugins. Steps
// must be positive; time never moves backwards.
func (p *Pipeline) AdvanceTime(step float64) error {
	if step <= 0 {
		return fmt.Errorf("pipeline: time step must be positive, got %g", step)
	}
	p.networkTime += step
	p.reg.HookUpdateNetworkTime(p.networkTime)
	return nil
}
