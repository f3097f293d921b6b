package plugin

import (
	"fmt"
	"io"
	"sort"
)

// Describe renders the plugin's identity to a text sink. With verbose set
// it also lists the plugin's components, script items, and enabled hooks.
// The output is stable for a given plugin state, so it can be diffed in
// snapshot tests.
func (b *Base) Describe(w io.Writer, verbose bool) {
	origin := "built-in"
	if b.dynamic {
		origin = fmt.Sprintf("dynamic, version %s", b.cfg.Version)
	}
	fmt.Fprintf(w, "%s - %s (%s)\n", b.cfg.Name, b.cfg.Description, origin)

	if !verbose {
		return
	}
	for _, c := range b.components {
		fmt.Fprintf(w, "    [Component] %s\n", c.Name())
	}
	for _, item := range b.bifItems {
		fmt.Fprintf(w, "    [%s] %s\n", item.Kind, item.ID)
	}
	for _, e := range b.EnabledHooks() {
		fmt.Fprintf(w, "    [Hook] %s, priority %d\n", e.Hook, e.Priority)
	}
}

// Describe renders every registered plugin, sorted by name for a stable,
// diffable listing.
func (r *Registry) Describe(w io.Writer, verbose bool) {
	plugins := r.Plugins()
	sort.Slice(plugins, func(i, j int) bool {
		return plugins[i].base().cfg.Name < plugins[j].base().cfg.Name
	})
	for _, p := range plugins {
		p.base().Describe(w, verbose)
	}
}
