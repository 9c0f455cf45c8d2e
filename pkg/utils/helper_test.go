package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "empty defaults to zero", value: "", want: 0},
		{name: "valid page", value: "3", want: 3},
		{name: "negative falls back to zero", value: "-1", want: 0},
		{name: "garbage falls back to zero", value: "abc", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePage(tt.value))
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "empty takes the default", value: "", want: 20},
		{name: "valid size", value: "50", want: 50},
		{name: "zero takes the default", value: "0", want: 20},
		{name: "above max clamps", value: "500", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSize(tt.value, 20, 100))
		})
	}
}
