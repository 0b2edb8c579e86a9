package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"Dude you gotta watch ghost in the shell again", "ghost in the shell", true},
		{"I should watch Dune", "Dune", true},
		{"gotta play Hades too", "Hades", true},
		{"  \"Blade Runner 2049\"  ", "Blade Runner 2049", true},
		{"check out The Bear as well", "The Bear", true},
		{"museum", "", false},
		{"Gallery", "", false},
		{"watch", "", false},
		{"it", "", false},
		{"", "", false},
		{"watch it", "", false},
		{"The Watch", "The Watch", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := SanitizeTitle(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeTitle_Idempotent(t *testing.T) {
	inputs := []string{
		"Dude you gotta watch ghost in the shell again",
		"I really want to read Dune sometime",
		"so I gotta watch watch Severance again too",
		"'Arrival'.",
		"play play play",
		"the new one",
		"Oh, remember to listen to Kid A later",
		"museum",
		"x",
	}

	for _, in := range inputs {
		first, _ := SanitizeTitle(in)
		second, _ := SanitizeTitle(first)
		assert.Equal(t, first, second, "input %q", in)
	}
}
