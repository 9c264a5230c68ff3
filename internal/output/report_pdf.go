package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

// pdfReport builds the printable report page by page.
type pdfReport struct {
	pdf    *fpdf.Fpdf
	result *domain.CalculationResult
	input  *domain.SimulationInput
}

// PDFReport renders the result as a printable A4 document: title page with
// verdict and inputs, breakdown tables, and the yearly net worth table.
func (rg *ReportGenerator) PDFReport(result *domain.CalculationResult, input *domain.SimulationInput) ([]byte, error) {
	r := &pdfReport{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		result: result,
		input:  input,
	}

	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetAutoPageBreak(true, pdfMarginBottom)

	r.addTitlePage()
	r.addBreakdownPage()
	r.addYearlyPage()

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) addTitlePage() {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 28)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.Ln(40)
	r.pdf.CellFormat(pdfContentWidth, 15, "Buy vs Rent Analysis", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 11)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.Ln(5)
	r.pdf.CellFormat(pdfContentWidth, 8,
		fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")

	r.pdf.Ln(12)
	r.pdf.SetFont("Arial", "B", 16)
	switch {
	case r.result.BuyingWins():
		r.pdf.SetTextColor(0, 128, 0)
		r.pdf.CellFormat(pdfContentWidth, 10,
			fmt.Sprintf("BUYING wins by %s over %d years",
				FormatCurrency(r.result.Margin()), r.input.TimeHorizonYears), "", 1, "C", false, 0, "")
	case r.result.Difference.IsZero():
		r.pdf.SetTextColor(80, 80, 80)
		r.pdf.CellFormat(pdfContentWidth, 10,
			fmt.Sprintf("DEAD EVEN after %d years", r.input.TimeHorizonYears), "", 1, "C", false, 0, "")
	default:
		r.pdf.SetTextColor(0, 0, 180)
		r.pdf.CellFormat(pdfContentWidth, 10,
			fmt.Sprintf("RENTING wins by %s over %d years",
				FormatCurrency(r.result.Margin()), r.input.TimeHorizonYears), "", 1, "C", false, 0, "")
	}

	r.pdf.Ln(12)
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)

	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 8, "Scenario Inputs", "1", 1, "C", true, 0, "")

	in := r.input
	rows := [][2]string{
		{"Home Price", FormatCurrencyWhole(in.HomePrice)},
		{"Down Payment", fmt.Sprintf("%s%% (%s)", in.DownPaymentPercent.String(), FormatCurrencyWhole(in.DownPayment()))},
		{"Mortgage", fmt.Sprintf("%s%% for %d years", in.MortgageRate.String(), in.LoanTermYears)},
		{"Property Tax Rate", FormatPercent(in.PropertyTaxRate) + " of value per year"},
		{"Home Insurance", FormatCurrencyWhole(in.HomeInsurance) + " per year"},
		{"HOA Fees", FormatCurrency(in.HOAMonthly) + " per month"},
		{"Maintenance", FormatPercent(in.MaintenancePercent) + " of value per year"},
		{"Home Appreciation", FormatPercent(in.HomeAppreciation) + " per year"},
		{"Closing Costs", FormatPercent(in.ClosingCostPercent) + " of price"},
		{"Selling Costs", FormatPercent(in.SellingCostPercent) + " of sale"},
		{"Monthly Rent", FormatCurrency(in.MonthlyRent)},
		{"Rent Increase", FormatPercent(in.RentIncreaseRate) + " per year"},
		{"Renter's Insurance", FormatCurrencyWhole(in.RentersInsurance) + " per year"},
		{"Investment Return", FormatPercent(in.InvestmentReturn) + " per year"},
		{"Time Horizon", fmt.Sprintf("%d years", in.TimeHorizonYears)},
	}

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	for _, row := range rows {
		r.pdf.CellFormat(pdfContentWidth/2, 6, "  "+row[0], "L", 0, "L", true, 0, "")
		r.pdf.CellFormat(pdfContentWidth/2, 6, row[1]+"  ", "R", 1, "R", true, 0, "")
	}
	r.pdf.CellFormat(pdfContentWidth, 1, "", "LRB", 1, "C", true, 0, "")

	r.pdf.Ln(12)
	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.MultiCell(pdfContentWidth, 4.5,
		"This projection is for informational purposes only and does not constitute "+
			"financial advice. Actual market returns, taxes, and costs will differ from "+
			"the assumptions used here.", "", "C", false)
}

func (r *pdfReport) addBreakdownPage() {
	r.pdf.AddPage()
	r.drawSectionHeader("Where the Money Goes")

	b := r.result.BuyBreakdown
	rent := r.result.RentBreakdown
	widths := []float64{110, 70}

	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 7, "Buying Scenario", "", 1, "L", false, 0, "")

	r.drawTableHeader([]string{"Item", "Amount"}, widths)
	buyRows := [][]string{
		{"Down Payment", FormatCurrency(b.DownPayment)},
		{"Closing Costs", FormatCurrency(b.ClosingCosts)},
		{"Mortgage Payments", FormatCurrency(b.TotalMortgagePayments)},
		{"    Interest", FormatCurrency(b.TotalInterestPaid)},
		{"    Principal", FormatCurrency(b.TotalPrincipalPaid)},
		{"Property Tax", FormatCurrency(b.TotalPropertyTax)},
		{"Home Insurance", FormatCurrency(b.TotalInsurance)},
		{"HOA Fees", FormatCurrency(b.TotalHOA)},
		{"Maintenance", FormatCurrency(b.TotalMaintenance)},
		{"Final Home Value", FormatCurrency(b.FinalHomeValue)},
		{"Remaining Mortgage", FormatCurrency(b.RemainingMortgage)},
		{"Selling Costs", FormatCurrency(b.SellingCosts)},
		{"Savings Invested", FormatCurrency(b.MonthlySavingsInvested)},
		{"Investment Returns", FormatCurrency(b.InvestmentReturns)},
		{"Investment Balance", FormatCurrency(b.InvestmentBalance)},
	}
	for _, row := range buyRows {
		r.drawTableRow(row, widths, false)
	}
	r.drawTableRow([]string{"NET WORTH", FormatCurrency(b.NetWorth)}, widths, true)

	r.pdf.Ln(6)
	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 7, "Renting Scenario", "", 1, "L", false, 0, "")

	r.drawTableHeader([]string{"Item", "Amount"}, widths)
	rentRows := [][]string{
		{"Initial Investment", FormatCurrency(rent.InitialInvestment)},
		{"Total Rent Paid", FormatCurrency(rent.TotalRentPaid)},
		{"Renter's Insurance", FormatCurrency(rent.TotalRentersInsurance)},
		{"Savings Invested", FormatCurrency(rent.MonthlyCostSavings)},
		{"Investment Returns", FormatCurrency(rent.InvestmentReturns)},
		{"Final Investments", FormatCurrency(rent.FinalInvestmentValue)},
	}
	for _, row := range rentRows {
		r.drawTableRow(row, widths, false)
	}
	r.drawTableRow([]string{"NET WORTH", FormatCurrency(rent.NetWorth)}, widths, true)

	r.pdf.Ln(6)
	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 7, "Average Monthly Costs", "", 1, "L", false, 0, "")

	mb := r.result.MonthlyBreakdown
	costWidths := []float64{80, 50, 50}
	r.drawTableHeader([]string{"Item", "Buy", "Rent"}, costWidths)
	costRows := [][]string{
		{"Mortgage", FormatCurrency(mb.BuyMortgage), "-"},
		{"Property Tax", FormatCurrency(mb.BuyPropertyTax), "-"},
		{"Insurance", FormatCurrency(mb.BuyInsurance), FormatCurrency(mb.RentInsurance)},
		{"HOA", FormatCurrency(mb.BuyHOA), "-"},
		{"Maintenance", FormatCurrency(mb.BuyMaintenance), "-"},
		{"Rent", "-", FormatCurrency(mb.RentPayment)},
	}
	for _, row := range costRows {
		r.drawTableRow(row, costWidths, false)
	}
	r.drawTableRow([]string{"TOTAL", FormatCurrency(mb.BuyTotal), FormatCurrency(mb.RentTotal)}, costWidths, true)
}

func (r *pdfReport) addYearlyPage() {
	if len(r.result.YearlySnapshots) == 0 {
		return
	}

	r.pdf.AddPage()
	r.drawSectionHeader("Net Worth by Year")

	widths := []float64{30, 50, 50, 50}
	headers := []string{"Year", "Buy Net Worth", "Rent Net Worth", "Difference"}
	r.drawTableHeader(headers, widths)

	for _, snap := range r.result.YearlySnapshots {
		if r.pdf.GetY() > 265 {
			r.pdf.AddPage()
			r.drawTableHeader(headers, widths)
		}
		diff := snap.BuyNetWorth.Sub(snap.RentNetWorth)
		r.drawTableRow([]string{
			fmt.Sprintf("%d", snap.Year),
			FormatCurrency(snap.BuyNetWorth),
			FormatCurrency(snap.RentNetWorth),
			FormatCurrency(diff),
		}, widths, false)
	}
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 10, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(pdfMarginLeft, r.pdf.GetY(), pdfMarginLeft+pdfContentWidth, r.pdf.GetY())
	r.pdf.Ln(5)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)

	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64, isBold bool) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)

	if isBold {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(240, 240, 240)
	} else {
		r.pdf.SetFont("Arial", "", 9)
	}

	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 5, cell, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}
