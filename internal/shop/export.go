package shop

import (
	"fmt"
	"io"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteSalesReport renders the sales report workbook: a summary sheet
// and a monthly volume sheet.
func WriteSalesReport(w io.Writer, report *DashboardStats, generated time.Time) error {
	f := excelize.NewFile()
	p := message.NewPrinter(language.English)

	const summary = "Summary"
	f.SetSheetName("Sheet1", summary)
	f.SetCellValue(summary, "A1", "Urban Trends Sales Report")
	f.SetCellValue(summary, "A2", "Generated")
	f.SetCellValue(summary, "B2", generated.Format("2006-01-02 15:04"))

	rows := [][2]interface{}{
		{"Total revenue (delivered)", p.Sprintf("%.2f", report.TotalRevenue)},
		{"Total orders", report.TotalOrders},
		{"Total customers", report.TotalCustomers},
		{"Total products", report.TotalProducts},
		{"Mean order value", p.Sprintf("%.2f", report.OrderValue.Mean)},
		{"Median order value", p.Sprintf("%.2f", report.OrderValue.Median)},
		{"P90 order value", p.Sprintf("%.2f", report.OrderValue.P90)},
	}
	for i, row := range rows {
		f.SetCellValue(summary, fmt.Sprintf("A%d", i+4), row[0])
		f.SetCellValue(summary, fmt.Sprintf("B%d", i+4), row[1])
	}

	const monthly = "Monthly Volume"
	f.NewSheet(monthly)
	f.SetCellValue(monthly, "A1", "Month")
	f.SetCellValue(monthly, "B1", "Orders")
	f.SetCellValue(monthly, "C1", "Revenue")
	for i, mv := range report.MonthlyVolume {
		f.SetCellValue(monthly, fmt.Sprintf("A%d", i+2), mv.Month)
		f.SetCellValue(monthly, fmt.Sprintf("B%d", i+2), mv.OrderCount)
		f.SetCellValue(monthly, fmt.Sprintf("C%d", i+2), mv.Revenue)
	}

	return errors.Wrap(f.Write(w), "write workbook")
}
