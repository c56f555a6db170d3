package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Vios", "vios"},
		{"spaces", "Mirage G4", "mirage-g4"},
		{"diacritics", "Škoda Octavia", "skoda-octavia"},
		{"punctuation runs", "C-HR (Hybrid)", "c-hr-hybrid"},
		{"leading trailing junk", "  VF 8!  ", "vf-8"},
		{"digits only", "911", "911"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
