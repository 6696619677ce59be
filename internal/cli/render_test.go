package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/fundtracker/internal/domain"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Projects",
		Headers: []string{"Name", "Allocated"},
		Rows: [][]string{
			{"School", "100"},
			{"Bridge", "2500.5"},
		},
	})

	assert.Contains(t, out, "Projects")
	assert.Contains(t, out, "Allocated")
	assert.Contains(t, out, "School")
	assert.Contains(t, out, "2500.5")
	// title, top, header, separator, two rows, bottom
	assert.Equal(t, 7, strings.Count(out, "\n"))
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(Table{}))
}

func TestRenderWarnings(t *testing.T) {
	out := RenderWarnings([]string{"ledger slow", "store down"})
	assert.Contains(t, out, "ledger slow")
	assert.Contains(t, out, "store down")
	assert.Empty(t, RenderWarnings(nil))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "42.5%", FormatPercent(42.5))
	assert.Contains(t, FormatStatus(domain.StatusPaused), "paused")
	assert.Contains(t, FormatStatus(domain.ProjectStatus(9)), "unknown")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"a longer name", 6, "a lon…"},
		{"ünïcode", 4, "ünï…"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.n))
		})
	}
}
