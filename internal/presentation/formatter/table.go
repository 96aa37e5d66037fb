package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-carbon-monitor/internal/core/emissions"
	"github.com/penwyp/go-carbon-monitor/internal/util"
)

type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	headers := []string{"Time", "Task", "Delay"}
	for _, sc := range emissions.Scenarios {
		headers = append(headers, "gCO2 "+string(sc))
	}
	return &TableFormatter{headers: headers}
}

func (f *TableFormatter) Format(w io.Writer, report *Report) error {
	rows := make([][]string, 0, len(report.Tasks)+1)
	for _, task := range report.Tasks {
		rows = append(rows, f.row(formatTime(task.Time), task.Task, task.DelaySeconds, task.Emissions))
	}
	total := f.row("Total", fmt.Sprintf("%d tasks", len(report.Tasks)), report.TotalDelay, report.Totals)

	widths := f.calculateColumnWidths(append(rows, total))

	var b strings.Builder
	f.printBorder(&b, widths, "top")
	f.printRow(&b, f.headers, widths)
	f.printBorder(&b, widths, "middle")
	for _, row := range rows {
		f.printRow(&b, row, widths)
	}
	f.printBorder(&b, widths, "middle")
	f.printRow(&b, total, widths)
	f.printBorder(&b, widths, "bottom")

	_, err := io.WriteString(w, b.String())
	return err
}

func (f *TableFormatter) row(first, task string, delay float64, estimate emissions.Estimate) []string {
	row := []string{first, task, util.FormatSeconds(delay)}
	for _, v := range estimate.Values() {
		row = append(row, util.FormatNumber(v, 1))
	}
	return row
}

// calculateColumnWidths determines optimal width for each column based on content
func (f *TableFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}
	for _, row := range rows {
		for i, value := range row {
			widths[i] = max(widths[i], util.GetDisplayWidth(value))
		}
	}

	// Apply minimum widths for readability
	for i := range widths {
		widths[i] = max(widths[i], 8)
	}
	return widths
}

// printBorder writes table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(b *strings.Builder, widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2)) // +2 for padding spaces
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	b.WriteString("\n")
}

// printRow writes a row; the first two columns are left-aligned, numbers right-aligned
func (f *TableFormatter) printRow(b *strings.Builder, values []string, widths []int) {
	b.WriteString("│")
	for i, value := range values {
		pad := strings.Repeat(" ", widths[i]-util.GetDisplayWidth(value))
		if i < 2 {
			b.WriteString(" " + value + pad + " │")
		} else {
			b.WriteString(" " + pad + value + " │")
		}
	}
	b.WriteString("\n")
}
