package formatter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/penwyp/go-carbon-monitor/internal/core/emissions"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(w io.Writer, report *Report) error {
	cw := csv.NewWriter(w)

	headers := []string{"Time", "Task", "Delay (s)"}
	for _, sc := range emissions.Scenarios {
		headers = append(headers, string(sc)+" (gCO2)")
	}
	if err := cw.Write(headers); err != nil {
		return err
	}

	for _, row := range report.Tasks {
		record := []string{
			formatTime(row.Time),
			row.Task,
			strconv.FormatFloat(row.DelaySeconds, 'f', -1, 64),
		}
		for _, v := range row.Emissions.Values() {
			record = append(record, strconv.FormatFloat(v, 'f', 2, 64))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
