package reporting

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"lending-rate-lab/internal/domain"
)

// resultsSheet is the sheet holding the equity-curve table and its chart.
const resultsSheet = "backtest_results"

// chartAnchor matches the original report layout: the chart sits to the
// right of the data columns.
const chartAnchor = "M12"

// WriteXLSX writes the finalized equity curve and summary statistics to an
// XLSX workbook with a line chart of the equity curve over the date column.
func WriteXLSX(path string, curve []domain.EquityPoint, tokens []string, stats SummaryStats) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return fmt.Errorf("reporting: rename sheet: %w", err)
	}

	header := append([]string{"date", "cash", "fee"}, tokens...)
	header = append(header, "total", "returns", "equity_curve")
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("reporting: header cell: %w", err)
		}
		if err := f.SetCellValue(resultsSheet, cell, name); err != nil {
			return fmt.Errorf("reporting: write header: %w", err)
		}
	}

	for i, p := range curve {
		row := i + 2
		values := []interface{}{p.Datetime.Format(timestampFormat), p.Cash, p.Fee}
		for _, token := range tokens {
			values = append(values, p.Values[token])
		}
		values = append(values, p.Total, p.Returns, p.EquityCurve)

		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("reporting: data cell: %w", err)
			}
			if err := f.SetCellValue(resultsSheet, cell, v); err != nil {
				return fmt.Errorf("reporting: write row %d: %w", row, err)
			}
		}
	}

	if err := addEquityChart(f, len(header), len(curve)); err != nil {
		return err
	}
	if err := addSummarySheet(f, stats); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("reporting: save %s: %w", path, err)
	}
	return nil
}

// addEquityChart adds a line chart of the equity_curve column (the last data
// column) against the date column.
func addEquityChart(f *excelize.File, columns, rows int) error {
	if rows == 0 {
		return nil
	}

	lastRow := rows + 1
	equityCol, err := excelize.ColumnNumberToName(columns)
	if err != nil {
		return fmt.Errorf("reporting: equity column: %w", err)
	}

	chart := excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("%s!$%s$1", resultsSheet, equityCol),
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", resultsSheet, lastRow),
				Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", resultsSheet, equityCol, equityCol, lastRow),
			},
		},
		Title: []excelize.RichTextRun{{Text: "Equity Curve"}},
		XAxis: excelize.ChartAxis{
			Title:  []excelize.RichTextRun{{Text: "Date"}},
			NumFmt: excelize.ChartNumFmt{CustomNumFmt: "mmm-yy"},
		},
	}

	if err := f.AddChart(resultsSheet, chartAnchor, &chart); err != nil {
		return fmt.Errorf("reporting: add chart: %w", err)
	}
	return nil
}

// addSummarySheet writes summary statistics to a second sheet.
func addSummarySheet(f *excelize.File, stats SummaryStats) error {
	const sheet = "summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("reporting: new sheet: %w", err)
	}

	rows := []struct {
		name  string
		value interface{}
	}{
		{"bars", stats.Bars},
		{"total_return", stats.TotalReturn},
		{"annualized_return", stats.AnnualizedReturn},
		{"annualized_volatility", stats.AnnualizedVolatility},
		{"sharpe_ratio", stats.SharpeRatio},
		{"max_drawdown", stats.MaxDrawdown},
	}
	for i, r := range rows {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), r.name); err != nil {
			return fmt.Errorf("reporting: summary name: %w", err)
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", i+1), r.value); err != nil {
			return fmt.Errorf("reporting: summary value: %w", err)
		}
	}
	return nil
}
