package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		strictOK   bool
		relaxedOK  bool
		wantSubstr string
	}{
		{"simple", "shopping", true, true, ""},
		{"snake case", "order_management", true, true, ""},
		{"kebab case", "order-management", true, true, ""},
		{"mixed case", "Billing", true, true, ""},
		{"digits", "billing2", true, true, ""},
		{"empty", "", false, false, "must not be empty"},
		{"dot", ".", false, false, "relative directory"},
		{"dot dot", "..", false, false, "relative directory"},
		{"slash", "a/b", false, false, "path separators"},
		{"backslash", `a\b`, false, false, "path separators"},
		{"leading space", " shopping", false, false, "whitespace"},
		{"control char", "shop\tping", false, false, "control characters"},
		{"invalid utf-8", "caf\xe9", false, false, "UTF-8"},
		{"leading digit", "2fa", false, true, "pattern"},
		{"leading dash", "-shop", false, true, "pattern"},
		{"dot inside", "shop.ping", false, true, "pattern"},
		{"unicode", "café", false, true, "pattern"},
		{"keyword", "match", false, true, "reserved"},
		{"reserved crate", "std", false, true, "reserved"},
		{"reserved case insensitive", "Test", false, true, "reserved"},
		{"too long", strings.Repeat("a", MaxLength+1), false, true, "at most"},
		{"max length", strings.Repeat("a", MaxLength), true, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input, true)
			if tt.strictOK {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidName)
				assert.Contains(t, err.Error(), tt.wantSubstr)
			}

			err = Validate(tt.input, false)
			if tt.relaxedOK {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidName)
			}
		})
	}
}
