package icons

import "strings"

// Catalog maps a tool identity to its display icon. The status-line core
// depends on this interface abstractly; the host supplies the catalog, and
// callers may override individual entries per segment.
type Catalog interface {
	// Lookup returns the icon for the given tool identity. The second
	// return value distinguishes "no entry" from an empty icon.
	Lookup(name string) (string, bool)
}

// MapCatalog is a Catalog backed by a plain map keyed by lowercase identity.
type MapCatalog map[string]string

// Lookup implements Catalog. The identity is lowercased before the lookup,
// so "TSServer" and "tsserver" resolve to the same entry.
func (c MapCatalog) Lookup(name string) (string, bool) {
	icon, ok := c[strings.ToLower(name)]
	return icon, ok
}

// DefaultClients returns the built-in catalog of language-server identities.
func DefaultClients() MapCatalog {
	return MapCatalog{
		"gopls":         "",
		"lua_ls":        "",
		"tsserver":      "",
		"ts_ls":         "",
		"pyright":       "",
		"rust_analyzer": "",
		"clangd":        "",
		"bashls":        "",
		"jsonls":        "",
		"yamlls":        "",
		"html":          "",
		"cssls":         "",
		"marksman":      "",
	}
}
