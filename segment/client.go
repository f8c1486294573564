package segment

import "github.com/grovetools/statusline/icons"

// ClientOptions configures the Client provider.
type ClientOptions struct {
	// Icons overrides the catalog per tool identity (lowercase keys).
	// Identities absent here fall back to the injected catalog.
	Icons map[string]string

	// ClientOff replaces the default icon shown when no client is attached.
	ClientOff string
}

// Client returns a provider that shows an icon for the first attached
// language client. Identity lookup consults the per-provider overrides
// first, then the injected catalog. An attached client whose identity has no
// catalog entry is shown with the no-client icon; the catalog API keeps the
// two cases distinguishable, the rendered output does not.
func Client(catalog icons.Catalog, opts ClientOptions) Provider {
	if catalog == nil {
		catalog = icons.DefaultClients()
	}
	overrides := icons.MapCatalog(opts.Icons)
	off := opts.ClientOff
	if off == "" {
		off = icons.ClientOff
	}
	return func(ctx Context) Segment {
		if ctx.Client != "" {
			if icon, ok := overrides.Lookup(ctx.Client); ok {
				return Segment{Icon: icon}
			}
			if icon, ok := catalog.Lookup(ctx.Client); ok {
				return Segment{Icon: icon}
			}
			// Unknown identity: fall through to the no-client icon.
		}
		return Segment{Icon: off}
	}
}
