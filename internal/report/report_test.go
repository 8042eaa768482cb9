package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filesort/internal/report"
	"filesort/internal/rules"
)

func zeroStats() map[rules.Category]int {
	stats := make(map[rules.Category]int)
	for _, category := range rules.Categories() {
		stats[category] = 0
	}
	return stats
}

func TestWriteProducesBOMAndBreakdown(t *testing.T) {
	stats := zeroStats()
	stats[rules.Documents] = 2
	stats[rules.Images] = 1
	stats[rules.Uncategorized] = 1

	path := filepath.Join(t.TempDir(), "nested", "report.md")
	require.NoError(t, report.Write(path, stats, 4))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}), "report must start with a BOM")

	body := string(data[3:])
	assert.True(t, strings.HasPrefix(body, "# File Classification Report\n"))
	assert.Contains(t, body, "- Processed files: 4\n")
	assert.Contains(t, body, "- Total files: 4\n")
	assert.Contains(t, body, "| documents | 2 | 50.00% |\n")
	assert.Contains(t, body, "| images | 1 | 25.00% |\n")
	assert.Contains(t, body, "| uncategorized | 1 | 25.00% |\n")
	assert.Contains(t, body, "| videos | 0 | 0.00% |\n")
}

func TestRenderSortsRowsByCategoryName(t *testing.T) {
	body := string(report.Render(zeroStats(), 0))

	var order []string
	for _, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(line, "| ") || strings.HasPrefix(line, "| Category") {
			continue
		}
		fields := strings.Split(line, "|")
		order = append(order, strings.TrimSpace(fields[1]))
	}
	assert.Equal(t, []string{
		"archives", "audio", "data-files", "documents", "executables",
		"images", "source-code", "uncategorized", "videos",
	}, order)
}

func TestRenderZeroTotalUsesZeroShare(t *testing.T) {
	body := string(report.Render(zeroStats(), 0))
	assert.Contains(t, body, "- Total files: 0\n")
	assert.NotContains(t, body, "NaN")
	assert.Equal(t, len(rules.Categories()), strings.Count(body, "| 0 | 0.00% |"))
}

func TestRowsShareRounding(t *testing.T) {
	stats := map[rules.Category]int{rules.Audio: 1, rules.Videos: 2}
	rows, total := report.Rows(stats)
	require.Equal(t, 3, total)
	require.Len(t, rows, 2)
	assert.Equal(t, "33.33%", report.FormatShare(rows[0].Share))
	assert.Equal(t, "66.67%", report.FormatShare(rows[1].Share))
}

func TestWriteReplacesExistingReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, report.Write(path, zeroStats(), 0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestSummaryRendersTable(t *testing.T) {
	stats := zeroStats()
	stats[rules.Archives] = 3

	out := report.Summary(stats, 3, table.StyleDefault)
	assert.Contains(t, out, "archives")
	assert.Contains(t, out, "100.00%")
	assert.Contains(t, strings.ToLower(out), "3 processed")
}
