package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Airpods Pro (2nd Gen)", "airpods-pro-2nd-gen"},
		{"Hello   World!", "hello-world"},
		{"  trimmed  ", "trimmed"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER_case.name", "upper-case-name"},
		{"???", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Generate(tt.in), "input %q", tt.in)
	}
}
