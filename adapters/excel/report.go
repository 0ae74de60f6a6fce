package excel

import (
	"fmt"
	"io"

	"github.com/mondragon-developer/statools/domain/descriptive"
	"github.com/mondragon-developer/statools/internal/errors"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Descriptive Statistics"

// WriteDescriptiveReport renders a summary (and optional frequency table)
// as an xlsx workbook on w.
func WriteDescriptiveReport(w io.Writer, summary *descriptive.Summary, table *descriptive.FrequencyTable) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reportSheet)
	if err != nil {
		return errors.Wrap(err, "failed to create report sheet")
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	rows := [][]interface{}{
		{"Statistic", "Value"},
		{"N", summary.N},
		{"Min", summary.Min},
		{"Max", summary.Max},
		{"Range", summary.Range},
		{"Mean", summary.Mean},
		{"Median", summary.Median},
		{"Sample variance", summary.Variance},
		{"Standard deviation", summary.StdDev},
		{"Q1", summary.Q1},
		{"Q3", summary.Q3},
		{"IQR", summary.IQR},
		{"Lower fence", summary.LowerFence},
		{"Upper fence", summary.UpperFence},
		{"Outlier count", len(summary.Outliers)},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return errors.Wrap(err, "failed to write summary row")
		}
	}

	if table != nil {
		start := len(rows) + 2
		header := []interface{}{"Class", "Frequency", "Relative", "Cumulative"}
		cell, _ := excelize.CoordinatesToCellName(1, start)
		if err := f.SetSheetRow(reportSheet, cell, &header); err != nil {
			return errors.Wrap(err, "failed to write frequency header")
		}
		for i, bin := range table.Bins {
			row := []interface{}{
				bin.Label,
				bin.Count,
				fmt.Sprintf("%.4f", bin.RelativeFreq),
				fmt.Sprintf("%.4f", bin.CumFreq),
			}
			cell, _ := excelize.CoordinatesToCellName(1, start+1+i)
			if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
				return errors.Wrap(err, "failed to write frequency row")
			}
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}
	return nil
}
