package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		width    int
		expected string
	}{
		{name: "nil error", err: nil, width: 40, expected: ""},
		{name: "empty message", err: errors.New(""), width: 40, expected: "Error: unknown error"},
		{name: "short message", err: errors.New("disk full"), width: 40, expected: "Error: disk full"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatErrorForDisplay(tt.err, tt.width))
		})
	}
}

func TestFormatErrorForDisplay_KeepsTwoLines(t *testing.T) {
	err := errors.New(strings.Repeat("the shelf does not take folders ", 10))

	out := formatErrorForDisplay(err, 30)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Error: "))
	assert.True(t, strings.HasSuffix(lines[1], "..."))
	for _, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), 30)
	}
}
