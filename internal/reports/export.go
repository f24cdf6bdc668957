package reports

import (
	"fmt"
	"io"

	"github.com/fintrack-ph/backend/internal/finance"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook, in order.
const (
	SheetSummary       = "Summary"
	SheetMonthly       = "Monthly"
	SheetExpensesByCat = "Expenses by Category"
	SheetRevenueByCat  = "Revenue by Category"
	SheetSavings       = "Savings"
)

const (
	amountFormat     = "#,##0.00"
	defaultSheetName = "Sheet1"
)

// XLSXContentType is the media type of exported workbooks.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type workbook struct {
	f           *excelize.File
	headerStyle int
	amountStyle int
}

// Workbook renders the financial report as an XLSX workbook.
func Workbook(report Financial) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: ptr(amountFormat)})
	if err != nil {
		return nil, err
	}

	w := workbook{f: f, headerStyle: headerStyle, amountStyle: amountStyle}

	err = f.SetSheetName(defaultSheetName, SheetSummary)
	if err != nil {
		return nil, err
	}

	steps := []func(Financial) error{
		w.summary,
		w.monthly,
		func(r Financial) error { return w.categories(SheetExpensesByCat, r.ExpensesByCategory) },
		func(r Financial) error { return w.categories(SheetRevenueByCat, r.RevenueByCategory) },
		w.savings,
	}

	for _, step := range steps {
		if err := step(report); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// WriteWorkbook writes the financial report as XLSX to w.
func WriteWorkbook(w io.Writer, report Financial) error {
	f, err := Workbook(report)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

func ptr[T any](v T) *T {
	return &v
}

// table writes a header row and data rows starting at the first cell.
// Columns listed in amounts are formatted as money.
func (w workbook) table(sheet string, header []any, rows [][]any, amounts ...string) error {
	if sheet != SheetSummary {
		if _, err := w.f.NewSheet(sheet); err != nil {
			return err
		}
	}

	err := w.f.SetSheetRow(sheet, "A1", &header)
	if err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}

	err = w.f.SetCellStyle(sheet, "A1", last, w.headerStyle)
	if err != nil {
		return err
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		err = w.f.SetSheetRow(sheet, cell, &rows[i])
		if err != nil {
			return err
		}
	}

	for _, col := range amounts {
		err = w.f.SetCellStyle(sheet, fmt.Sprintf("%s2", col), fmt.Sprintf("%s%d", col, len(rows)+1), w.amountStyle)
		if err != nil {
			return err
		}
	}

	lastCol, _, err := excelize.SplitCellName(last)
	if err != nil {
		return err
	}
	return w.f.SetColWidth(sheet, "A", lastCol, 18)
}

func amount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func (w workbook) summary(r Financial) error {
	rows := [][]any{
		{"Timeframe", r.Timeframe},
		{"Start date", r.StartDate},
		{"Total revenue", amount(r.Totals.Revenue)},
		{"Total expenses", amount(r.Totals.Expenses)},
		{"Net profit", amount(r.Totals.NetProfit)},
		{"Profit margin (%)", amount(r.Totals.ProfitMargin)},
		{"Savings deposits", amount(r.Savings.Deposits)},
		{"Savings withdrawals", amount(r.Savings.Withdrawals)},
		{"Net savings", amount(r.Savings.Net)},
		{"Budget allocated", amount(r.Budgets.Allocated)},
		{"Budget spent", amount(r.Budgets.Spent)},
	}

	return w.table(SheetSummary, []any{"Metric", "Value"}, rows)
}

func (w workbook) monthly(r Financial) error {
	rows := make([][]any, 0, len(r.Monthly))
	for _, p := range r.Monthly {
		rows = append(rows, []any{p.Month, amount(p.Revenue), amount(p.Expenses), amount(p.Profit)})
	}

	return w.table(SheetMonthly, []any{"Month", "Revenue", "Expenses", "Profit"}, rows, "B", "C", "D")
}

func (w workbook) categories(sheet string, slices []finance.CategorySlice) error {
	rows := make([][]any, 0, len(slices))
	for _, s := range slices {
		rows = append(rows, []any{s.Name, amount(s.Value)})
	}

	return w.table(sheet, []any{"Category", "Amount"}, rows, "B")
}

func (w workbook) savings(r Financial) error {
	rows := make([][]any, 0, len(r.Savings.ByCategory))
	for _, c := range r.Savings.ByCategory {
		rows = append(rows, []any{c.Name, amount(c.Deposits), amount(c.Withdrawals), amount(c.Net)})
	}

	return w.table(SheetSavings, []any{"Category", "Deposits", "Withdrawals", "Net"}, rows, "B", "C", "D")
}
