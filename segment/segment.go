// Package segment defines the status-line provider contracts and the
// built-in segment providers. A provider is a total function: given a
// snapshot of editor state it always returns a displayable segment, never an
// error. Hosts construct providers once with their options and invoke them on
// every redraw.
package segment

// Segment is a single rendered status-line entry. Either field may be empty;
// a segment with both fields empty renders as nothing.
type Segment struct {
	Label string
	Icon  string
}

// Empty reports whether the segment renders as nothing.
func (s Segment) Empty() bool {
	return s.Label == "" && s.Icon == ""
}

// Provider derives one segment from the current editor context. Providers
// must be fast, side-effect-free, and resilient to missing context.
type Provider func(ctx Context) Segment

// providers holds all registered segment providers, in render order.
var providers []Provider

// Register adds a provider to be invoked by the status renderer.
func Register(p Provider) {
	providers = append(providers, p)
}

// Providers returns all registered segment providers.
func Providers() []Provider {
	return providers
}

// Clear removes all registered providers.
// This is primarily used for testing.
func Clear() {
	providers = nil
}
