package services

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/hpd-transportes/wash-registry/models"
	"github.com/hpd-transportes/wash-registry/utils"
)

const (
	sheetRecords = "Lavagens"
	sheetTotals  = "Totais"
)

// ReportService builds the monthly report from the same records the month
// listing returns.
type ReportService struct {
	Washes *WashService
}

func NewReportService(washes *WashService) *ReportService {
	return &ReportService{Washes: washes}
}

func (s *ReportService) MonthSummary(ctx context.Context, year, month int) (*models.MonthSummary, []models.WashRecord, error) {
	washes, err := s.Washes.Month(ctx, year, month)
	if err != nil {
		return nil, nil, err
	}
	return Summarize(year, month, washes), washes, nil
}

// Summarize totals washes overall and per washer, business area, vehicle
// type and company. Amounts are summed as decimals.
func Summarize(year, month int, washes []models.WashRecord) *models.MonthSummary {
	summary := &models.MonthSummary{
		Year:  year,
		Month: month,
		Total: decimal.Zero,
	}

	byWasher := map[string]*models.SummaryLine{}
	byArea := map[string]*models.SummaryLine{}
	byVehicle := map[string]*models.SummaryLine{}
	byCompany := map[string]*models.SummaryLine{}

	for _, w := range washes {
		amount := decimal.NewFromFloat(w.Amount)
		summary.Count++
		summary.Total = summary.Total.Add(amount)

		addLine(byWasher, w.WasherName, amount)
		addLine(byArea, w.BusinessArea, amount)
		addLine(byVehicle, w.VehicleType, amount)
		addLine(byCompany, w.CompanyName, amount)
	}

	summary.ByWasher = sortedLines(byWasher)
	summary.ByBusinessArea = sortedLines(byArea)
	summary.ByVehicleType = sortedLines(byVehicle)
	summary.ByCompany = sortedLines(byCompany)
	return summary
}

func addLine(lines map[string]*models.SummaryLine, key string, amount decimal.Decimal) {
	line, ok := lines[key]
	if !ok {
		line = &models.SummaryLine{Key: key, Total: decimal.Zero}
		lines[key] = line
	}
	line.Count++
	line.Total = line.Total.Add(amount)
}

func sortedLines(lines map[string]*models.SummaryLine) []models.SummaryLine {
	out := make([]models.SummaryLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// WriteWorkbook writes an xlsx file with the month's records and totals.
func WriteWorkbook(w io.Writer, summary *models.MonthSummary, washes []models.WashRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetRecords); err != nil {
		return err
	}
	if _, err := f.NewSheet(sheetTotals); err != nil {
		return err
	}

	headings := []interface{}{
		"Data", "Tipo de Veículo", "Área de Negócio", "Lavador", "Tipo de Lavagem",
		"Empresa Tipo", "Empresa", "Matrícula Trator", "Matrícula Reboque", "Valor", "Observações",
	}
	if err := f.SetSheetRow(sheetRecords, "A1", &headings); err != nil {
		return err
	}
	for i, wash := range washes {
		row := []interface{}{
			wash.ServiceDate, wash.VehicleType, wash.BusinessArea, wash.WasherName, wash.WashType,
			wash.CompanyKind, wash.CompanyName, wash.TractorPlate, wash.TrailerPlate, wash.Amount, wash.Notes,
		}
		if err := f.SetSheetRow(sheetRecords, "A"+fmt.Sprint(i+2), &row); err != nil {
			return err
		}
	}

	rowNo := 1
	setRow := func(values ...interface{}) error {
		err := f.SetSheetRow(sheetTotals, "A"+fmt.Sprint(rowNo), &values)
		rowNo++
		return err
	}

	if err := setRow("Mês", fmt.Sprintf("%04d-%02d", summary.Year, summary.Month)); err != nil {
		return err
	}
	if err := setRow("Lavagens", summary.Count); err != nil {
		return err
	}
	if err := setRow("Total", summary.Total.InexactFloat64(), utils.FormatCurrencyEUR(summary.Total)); err != nil {
		return err
	}

	groups := []struct {
		title string
		lines []models.SummaryLine
	}{
		{"Por Lavador", summary.ByWasher},
		{"Por Área de Negócio", summary.ByBusinessArea},
		{"Por Tipo de Veículo", summary.ByVehicleType},
		{"Por Empresa", summary.ByCompany},
	}
	for _, g := range groups {
		rowNo++
		if err := setRow(g.title, "Lavagens", "Total"); err != nil {
			return err
		}
		for _, l := range g.lines {
			if err := setRow(l.Key, l.Count, l.Total.InexactFloat64(), utils.FormatCurrencyEUR(l.Total)); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
