package reporting

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/jewelai-api/internal/domain"
	"github.com/vfg2006/jewelai-api/internal/usecases/insighting"
	errorcodes "github.com/vfg2006/jewelai-api/pkg/apiErrors"
	"github.com/vfg2006/jewelai-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet    = "Resumo"
	CategoriesSheet = "Categorias"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Reporter interface {
	// InventoryWorkbook gera o relatório de estoque em xlsx. Com category
	// preenchida o relatório considera apenas aquela categoria.
	InventoryWorkbook(ctx context.Context, filters *domain.InsightFilters, category string) ([]byte, error)
}

type Service struct {
	insighter insighting.InventoryInsighter
}

func NewService(insighter insighting.InventoryInsighter) Reporter {
	return &Service{insighter: insighter}
}

// InventoryReport é o conteúdo das duas abas da planilha
type InventoryReport struct {
	Category   domain.Category
	Filters    *domain.InsightFilters
	Summary    domain.KPISummary
	Categories []domain.CategoryInsight
}

func (s *Service) InventoryWorkbook(ctx context.Context, filters *domain.InsightFilters, category string) ([]byte, error) {
	var scope domain.Category
	if category != "" {
		scope = domain.NormalizeCategory(category)
		if !scope.IsKnown() {
			return nil, NewReportError(ErrUnknownCategory, errorcodes.ErrInvalidRequest, category)
		}
	}

	records, resolved, err := s.insighter.GetSalesRecords(ctx, filters)
	if err != nil {
		return nil, err
	}

	if scope != "" {
		records = filterByCategory(records, scope)
	}

	report := InventoryReport{
		Category:   scope,
		Filters:    resolved,
		Summary:    insighting.CalculateKPIs(records),
		Categories: insighting.CalculateCategories(records),
	}

	content, err := BuildWorkbook(report)
	if err != nil {
		logrus.WithError(err).Error("relatórios: erro ao gerar planilha de estoque")
		return nil, NewReportError(ErrBuildWorkbook, errorcodes.ErrInternalServer, err.Error())
	}

	return content, nil
}

func filterByCategory(records []domain.SalesRecord, category domain.Category) []domain.SalesRecord {
	filtered := make([]domain.SalesRecord, 0, len(records))
	for _, record := range records {
		if record.Category == category {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// BuildWorkbook escreve as abas Resumo e Categorias e devolve o arquivo serializado
func BuildWorkbook(report InventoryReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// A planilha nova vem com Sheet1; renomeamos para a aba de resumo
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(CategoriesSheet); err != nil {
		return nil, err
	}

	if err := writeSummary(f, report); err != nil {
		return nil, err
	}
	if err := writeCategories(f, report.Categories); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, report InventoryReport) error {
	scope := "Todas"
	if report.Category != "" {
		scope = string(report.Category)
	}

	period := "Todo o período"
	if report.Filters != nil && (report.Filters.StartDate != "" || report.Filters.EndDate != "") {
		period = fmt.Sprintf("%s a %s", report.Filters.StartDate, report.Filters.EndDate)
	}

	summary := report.Summary
	rows := [][]interface{}{
		{"Indicador", "Valor"},
		{"Categoria", scope},
		{"Período", period},
		{"Valor total em estoque", utils.FormatIndianCurrency(summary.TotalStockValue, 1)},
		{"Total de peças", summary.TotalItems},
		{"Estoque envelhecido", summary.AgeingStock},
		{"Previsão de encalhe", summary.PredictedDeadstock},
		{"Encalhe (%)", utils.RoundWithTwoDecimalPlace(summary.DeadstockPercentage())},
		{"Giro rápido", summary.FastMovingItems},
		{"Giro rápido (%)", utils.RoundWithTwoDecimalPlace(summary.FastMovingPercentage())},
	}

	return writeRows(f, SummarySheet, rows)
}

func writeCategories(f *excelize.File, categories []domain.CategoryInsight) error {
	rows := make([][]interface{}, 0, len(categories)+1)
	rows = append(rows, []interface{}{"Categoria", "Valor em estoque", "Valor (₹)", "Dias médios para venda", "Risco", "Peças", "Tendência"})

	for _, c := range categories {
		rows = append(rows, []interface{}{
			string(c.Category),
			utils.FormatIndianCurrency(c.StockValue, 1),
			c.StockValue,
			c.AvgDaysToSell,
			c.RiskScore,
			c.ItemCount,
			string(c.Trend),
		})
	}

	return writeRows(f, CategoriesSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
