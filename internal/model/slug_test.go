package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Acme", "acme"},
		{"spaces become hyphens", "Acme Studio", "acme-studio"},
		{"punctuation stripped", "Acme Co!", "acme-co"},
		{"collapses runs of whitespace", "Acme   \t Studio", "acme-studio"},
		{"leading and trailing space trimmed", "  Acme  ", "acme"},
		{"keeps digits and hyphens", "Drop 2024-spring", "drop-2024-spring"},
		{"unicode stripped", "Café Münster", "caf-mnster"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}
