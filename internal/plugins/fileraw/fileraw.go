// Package fileraw provides a built-in plugin that takes over loading of
// raw input files by extension. It exists both as a useful loader and as
// the reference implementation of the three-way file-loading contract:
// not interested, claimed and loaded, claimed but failed.
package fileraw

import (
	"os"
	"slices"

	"github.com/varkis/hookline/internal/hook"
	"github.com/varkis/hookline/internal/logging"
	"github.com/varkis/hookline/internal/plugin"
)

var _ plugin.Plugin = (*Plugin)(nil)

// Plugin claims files whose extension is in its configured set and keeps
// their contents for later consumers.
type Plugin struct {
	plugin.Base
	log  *logging.Logger
	exts []string

	contents map[string][]byte
}

// component advertises the raw reader in plugin listings.
type component struct{}

func (component) Name() string { return "raw-reader" }

// New creates the raw loader claiming the given extensions (without dot).
func New(log *logging.Logger, exts []string) *Plugin {
	p := &Plugin{
		log:      log.Sub("fileraw"),
		exts:     exts,
		contents: make(map[string][]byte),
	}
	p.EnableHook(hook.LoadFile, 10)
	p.AddComponent(component{})
	p.AddBifItem("FileRaw::contents", plugin.BifFunction)
	p.AddBifItem("FileRaw::file_loaded", plugin.BifEvent)
	return p
}

// Configure implements plugin.Plugin.
func (p *Plugin) Configure() plugin.Configuration {
	cfg := plugin.NewConfiguration()
	cfg.Name = "Hookline::FileRaw"
	cfg.Description = "loads raw input files verbatim"
	return cfg
}

// HookLoadFile claims files with a matching extension. A read error on a
// claimed file is a load failure, which the host treats as fatal; it is
// not downgraded to disinterest.
func (p *Plugin) HookLoadFile(file, ext string) plugin.LoadOutcome {
	if !slices.Contains(p.exts, ext) {
		return plugin.LoadNotInterested
	}

	data, err := os.ReadFile(file)
	if err != nil {
		p.log.Error().Err(err).Str("file", file).Msg("claimed file unreadable")
		return plugin.LoadFailure
	}

	p.contents[file] = data
	p.log.Info().Str("file", file).Int("bytes", len(data)).Msg("raw file loaded")
	return plugin.LoadSuccess
}

// Contents returns the bytes of a previously loaded file and whether the
// file was loaded by this plugin.
func (p *Plugin) Contents(file string) ([]byte, bool) {
	data, ok := p.contents[file]
	return data, ok
}

// Done drops loaded contents. Override calls through per the lifecycle
// contract.
func (p *Plugin) Done() {
	p.contents = nil
	p.Base.Done()
}
