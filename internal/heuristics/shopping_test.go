package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseShoppingItems(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"I need to buy milk, eggs, and coffee beans", []string{"Milk", "Eggs", "Coffee Beans"}},
		{"grab my mom's medicine and two loaves of bread", []string{"Medicine", "Loaves Of Bread"}},
		{"pick up a dozen eggs or some oat milk from the store", []string{"Eggs", "Oat Milk"}},
		{"buy batteries. Then call the plumber", []string{"Batteries"}},
		{"apples, apples and pears", []string{"Apples", "Pears"}},
		{"need to buy", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseShoppingItems(tt.in))
		})
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Coffee Beans", TitleCase("coffee   BEANS"))
	assert.Equal(t, "", TitleCase("  "))
}
