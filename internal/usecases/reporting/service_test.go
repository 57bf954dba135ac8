package reporting

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/jewelai-api/internal/domain"
	"github.com/vfg2006/jewelai-api/internal/usecases/insighting"
	"github.com/vfg2006/jewelai-api/internal/usecases/insighting/mocks"
	errorcodes "github.com/vfg2006/jewelai-api/pkg/apiErrors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

var sampleRecords = []domain.SalesRecord{
	{TransactionDate: "2024-01-01", ItemID: "R-1", Category: domain.CategoryRing, Value: 150000},
	{TransactionDate: "2024-01-03", ItemID: "R-2", Category: domain.CategoryRing, Value: 50000},
	{TransactionDate: "2024-01-02", ItemID: "B-1", Category: domain.CategoryBangle, Value: 30000},
}

func openWorkbook(t *testing.T, content []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestService_InventoryWorkbook(t *testing.T) {
	ctrl := gomock.NewController(t)
	insighter := mocks.NewMockInventoryInsighter(ctrl)
	service := NewService(insighter)

	filters := &domain.InsightFilters{Days: 30}
	resolved := &domain.InsightFilters{StartDate: "2023-12-04", EndDate: "2024-01-03", Days: 30}
	insighter.EXPECT().GetSalesRecords(gomock.Any(), filters).Return(sampleRecords, resolved, nil)

	content, err := service.InventoryWorkbook(context.Background(), filters, "")
	require.NoError(t, err)

	f := openWorkbook(t, content)
	assert.Equal(t, []string{SummarySheet, CategoriesSheet}, f.GetSheetList())

	value, err := f.GetCellValue(SummarySheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "₹2.3L", value)

	period, err := f.GetCellValue(SummarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "2023-12-04 a 2024-01-03", period)

	rows, err := f.GetRows(CategoriesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "RING", rows[1][0])
	assert.Equal(t, "BANGLE", rows[2][0])
}

func TestService_InventoryWorkbook_Categoria(t *testing.T) {
	ctrl := gomock.NewController(t)
	insighter := mocks.NewMockInventoryInsighter(ctrl)
	service := NewService(insighter)

	insighter.EXPECT().GetSalesRecords(gomock.Any(), gomock.Any()).Return(sampleRecords, nil, nil)

	content, err := service.InventoryWorkbook(context.Background(), nil, " bangle ")
	require.NoError(t, err)

	f := openWorkbook(t, content)

	scope, err := f.GetCellValue(SummarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "BANGLE", scope)

	items, err := f.GetCellValue(SummarySheet, "B5")
	require.NoError(t, err)
	assert.Equal(t, "1", items)

	rows, err := f.GetRows(CategoriesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "BANGLE", rows[1][0])
}

func TestService_InventoryWorkbook_Erros(t *testing.T) {
	t.Run("Categoria desconhecida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewService(mocks.NewMockInventoryInsighter(ctrl))

		_, err := service.InventoryWorkbook(context.Background(), nil, "tiara")

		var reportErr *ReportError
		require.True(t, errors.As(err, &reportErr))
		assert.ErrorIs(t, err, ErrUnknownCategory)
		assert.Equal(t, errorcodes.ErrInvalidRequest, reportErr.APICode())
	})

	t.Run("Livro de vendas indisponível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		insighter := mocks.NewMockInventoryInsighter(ctrl)
		service := NewService(insighter)

		unavailable := insighting.NewInsightError(insighting.ErrDataSourceUnavailable, errorcodes.ErrCommunication, "")
		insighter.EXPECT().GetSalesRecords(gomock.Any(), gomock.Any()).Return(nil, nil, unavailable)

		_, err := service.InventoryWorkbook(context.Background(), nil, "")
		assert.ErrorIs(t, err, insighting.ErrDataSourceUnavailable)
	})
}
