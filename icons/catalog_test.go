package icons

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapCatalogLookup(t *testing.T) {
	catalog := MapCatalog{"tsserver": "ts", "gopls": "go"}

	tests := []struct {
		name     string
		query    string
		expected string
		found    bool
	}{
		{"exact lowercase match", "tsserver", "ts", true},
		{"mixed case is normalized", "TSServer", "ts", true},
		{"uppercase is normalized", "GOPLS", "go", true},
		{"unknown identity", "zls", "", false},
		{"empty identity", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			icon, ok := catalog.Lookup(tt.query)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, icon)
		})
	}
}

func TestDefaultClientsKeysAreLowercase(t *testing.T) {
	for key := range DefaultClients() {
		assert.Equal(t, strings.ToLower(key), key)
	}
}
