package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"filesort/internal/rules"
)

// Title is the first heading of every report.
const Title = "File Classification Report"

var bom = []byte{0xEF, 0xBB, 0xBF}

// Row is one category line of the report.
type Row struct {
	Category rules.Category
	Count    int
	Share    float64
}

// Rows returns the per-category breakdown sorted by category name along with
// the total across all categories.
func Rows(stats map[rules.Category]int) ([]Row, int) {
	total := 0
	for _, count := range stats {
		total += count
	}
	rows := make([]Row, 0, len(stats))
	for category, count := range stats {
		rows = append(rows, Row{Category: category, Count: count, Share: share(count, total)})
	}
	slices.SortFunc(rows, func(a, b Row) int {
		switch {
		case a.Category < b.Category:
			return -1
		case a.Category > b.Category:
			return 1
		}
		return 0
	})
	return rows, total
}

func share(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// FormatShare renders a percentage with two decimals.
func FormatShare(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64) + "%"
}

// Render returns the markdown report body without the byte order mark.
func Render(stats map[rules.Category]int, processed int) []byte {
	rows, total := Rows(stats)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", Title)
	buf.WriteString("## Summary\n")
	fmt.Fprintf(&buf, "- Processed files: %d\n", processed)
	fmt.Fprintf(&buf, "- Total files: %d\n\n", total)
	buf.WriteString("## Per-category breakdown\n\n")
	buf.WriteString("| Category | Files | Share |\n")
	buf.WriteString("|---|---|---|\n")
	for _, row := range rows {
		fmt.Fprintf(&buf, "| %s | %d | %s |\n", row.Category, row.Count, FormatShare(row.Share))
	}
	return buf.Bytes()
}

// Write stores the markdown report at path, creating the parent directory
// when missing. An existing file is replaced.
func Write(path string, stats map[rules.Category]int, processed int) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	body := append(append([]byte(nil), bom...), Render(stats, processed)...)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Summary renders the breakdown as a console table using style. A footer
// carries the processed count.
func Summary(stats map[rules.Category]int, processed int, style table.Style) string {
	rows, total := Rows(stats)

	tw := table.NewWriter()
	tw.SetStyle(style)
	tw.AppendHeader(table.Row{"Category", "Files", "Share"})
	for _, row := range rows {
		tw.AppendRow(table.Row{string(row.Category), row.Count, FormatShare(row.Share)})
	}
	tw.AppendFooter(table.Row{"Total", total, fmt.Sprintf("%d processed", processed)})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}
