package customizing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/jewelai-api/infrastructure/repository/mocks"
	"github.com/vfg2006/jewelai-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// memoryLayoutRepository guarda o último blob salvo, como o banco faria
type memoryLayoutRepository struct {
	payload []byte
	failAll bool
}

func (r *memoryLayoutRepository) GetLayout(ctx context.Context) ([]byte, error) {
	return r.payload, nil
}

func (r *memoryLayoutRepository) SaveLayout(ctx context.Context, payload []byte) error {
	if r.failAll {
		return errors.New("disk full")
	}
	r.payload = append([]byte(nil), payload...)
	return nil
}

func newLoadedService(t *testing.T, repo *memoryLayoutRepository) Customizer {
	t.Helper()
	service := NewService(repo)
	_, err := service.Load(context.Background())
	require.NoError(t, err)
	return service
}

func TestService_ToggleVisibility_AssimetriaDaOrdem(t *testing.T) {
	ctx := context.Background()
	service := newLoadedService(t, &memoryLayoutRepository{})

	initial, err := service.Layout(ctx)
	require.NoError(t, err)
	require.NotContains(t, initial.CardOrder, domain.CardKeywordInsights)

	// Tornar visível adiciona ao final, uma única vez
	shown, err := service.ToggleVisibility(ctx, domain.CardKeywordInsights)
	require.NoError(t, err)
	assert.True(t, shown.IsVisible(domain.CardKeywordInsights))
	assert.Equal(t, domain.CardKeywordInsights, shown.CardOrder[len(shown.CardOrder)-1])
	assert.Len(t, shown.CardOrder, len(initial.CardOrder)+1)

	// Ocultar não remove da ordem
	hidden, err := service.ToggleVisibility(ctx, domain.CardKeywordInsights)
	require.NoError(t, err)
	assert.False(t, hidden.IsVisible(domain.CardKeywordInsights))
	assert.Equal(t, shown.CardOrder, hidden.CardOrder)

	// Mostrar de novo não duplica
	again, err := service.ToggleVisibility(ctx, domain.CardKeywordInsights)
	require.NoError(t, err)
	assert.Equal(t, shown.CardOrder, again.CardOrder)
}

func TestService_ToggleVisibility_CardDesconhecido(t *testing.T) {
	service := newLoadedService(t, &memoryLayoutRepository{})

	_, err := service.ToggleVisibility(context.Background(), "kpi-unknown")

	assert.ErrorIs(t, err, ErrUnknownCard)
}

func TestService_Reorder(t *testing.T) {
	tests := []struct {
		name      string
		activeID  string
		overID    string
		wantOrder func(initial []string) []string
	}{
		{
			name:     "Move KPI para a posição de outro KPI",
			activeID: domain.CardKPIFastMovingItems,
			overID:   domain.CardKPITotalStockValue,
			wantOrder: func(initial []string) []string {
				return append([]string{
					domain.CardKPIFastMovingItems,
					domain.CardKPITotalStockValue,
					domain.CardKPIAgeingStock,
					domain.CardKPIPredictedDeadstock,
				}, initial[4:]...)
			},
		},
		{
			name:     "Move card de conteúdo para frente",
			activeID: domain.CardStockDistribution,
			overID:   domain.CardMarketTrends,
			wantOrder: func(initial []string) []string {
				return append(append(append([]string{}, initial[:4]...),
					domain.CardCategoryTrends,
					domain.CardMarketTrends,
					domain.CardStockDistribution,
				), initial[7:]...)
			},
		},
		{
			name:      "KPI sobre card de conteúdo não altera a ordem",
			activeID:  domain.CardKPIAgeingStock,
			overID:    domain.CardStockDistribution,
			wantOrder: func(initial []string) []string { return initial },
		},
		{
			name:      "Card de conteúdo sobre KPI não altera a ordem",
			activeID:  domain.CardQuickActions,
			overID:    domain.CardKPITotalStockValue,
			wantOrder: func(initial []string) []string { return initial },
		},
		{
			name:      "Ids iguais",
			activeID:  domain.CardMarketTrends,
			overID:    domain.CardMarketTrends,
			wantOrder: func(initial []string) []string { return initial },
		},
		{
			name:      "Id desconhecido",
			activeID:  "ghost",
			overID:    domain.CardMarketTrends,
			wantOrder: func(initial []string) []string { return initial },
		},
		{
			name:      "Card fora da ordem",
			activeID:  domain.CardModelPerformance,
			overID:    domain.CardMarketTrends,
			wantOrder: func(initial []string) []string { return initial },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := &memoryLayoutRepository{}
			service := newLoadedService(t, repo)
			initial, err := service.Layout(ctx)
			require.NoError(t, err)

			got, err := service.Reorder(ctx, tt.activeID, tt.overID)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOrder(initial.CardOrder), got.CardOrder)
		})
	}
}

func TestService_Reorder_NoOpNaoGrava(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLayoutRepository(ctrl)
	mockRepo.EXPECT().GetLayout(gomock.Any()).Return(nil, nil)
	// SaveLayout não deve ser chamado

	service := NewService(mockRepo)
	_, err := service.Reorder(context.Background(), domain.CardKPIAgeingStock, domain.CardMarketTrends)

	assert.NoError(t, err)
}

func TestService_SetColor(t *testing.T) {
	tests := []struct {
		name    string
		target  domain.ChartTarget
		color   string
		wantErr error
	}{
		{name: "Hexadecimal", target: domain.ChartMarketTrends, color: "#ff0000"},
		{name: "RGB", target: domain.ChartStockDistribution, color: "rgb(10,20,30)"},
		{name: "HSL", target: domain.ChartCategoryTrends, color: "hsl(120,50%,50%)"},
		{name: "Cor inválida", target: domain.ChartMarketTrends, color: "gold-ish", wantErr: ErrInvalidColor},
		{name: "Gráfico desconhecido", target: "pieChart", color: "#ff0000", wantErr: ErrUnknownChartTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newLoadedService(t, &memoryLayoutRepository{})

			got, err := service.SetColor(context.Background(), tt.target, tt.color)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.color, got.ChartColors[tt.target])
		})
	}
}

func TestService_ResetToDefault_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := &memoryLayoutRepository{}
	service := newLoadedService(t, repo)

	_, err := service.ToggleVisibility(ctx, domain.CardModelPerformance)
	require.NoError(t, err)
	_, err = service.SetColor(ctx, domain.ChartMarketTrends, "#000000")
	require.NoError(t, err)
	_, err = service.Reorder(ctx, domain.CardKPIFastMovingItems, domain.CardKPITotalStockValue)
	require.NoError(t, err)

	reset, err := service.ResetToDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDashboardLayout(), reset)

	// Uma nova instância lendo o blob salvo reproduz o padrão exato
	reloaded, err := NewService(repo).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDashboardLayout(), reloaded)
}

func TestService_ResetToDefault_SobrescreveBlobInvalido(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "versão futura", payload: `{"version": 99, "cardOrder": ["x"]}`},
		{name: "JSON corrompido", payload: `{not json`},
		{name: "legado equivalente ao padrão", payload: `{"cardOrder":["kpi-group"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := &memoryLayoutRepository{payload: []byte(tt.payload)}
			service := newLoadedService(t, repo)

			_, err := service.ResetToDefault(ctx)
			require.NoError(t, err)

			assert.NotEqual(t, tt.payload, string(repo.payload))

			var stored domain.DashboardLayout
			require.NoError(t, json.Unmarshal(repo.payload, &stored))
			assert.Equal(t, domain.DefaultDashboardLayout(), stored)
		})
	}
}

func TestService_FalhaAoGravarMantemEstado(t *testing.T) {
	ctx := context.Background()
	repo := &memoryLayoutRepository{}
	service := newLoadedService(t, repo)

	before, err := service.Layout(ctx)
	require.NoError(t, err)

	repo.failAll = true
	_, err = service.ToggleVisibility(ctx, domain.CardMarketTrends)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistFailure)

	var customizeErr *CustomizeError
	require.ErrorAs(t, err, &customizeErr)
	assert.Equal(t, "SRV_002", customizeErr.Code)

	after, err := service.Layout(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestService_Load(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		check   func(t *testing.T, layout domain.DashboardLayout)
	}{
		{
			name:    "Sem blob usa o padrão",
			payload: "",
			check: func(t *testing.T, layout domain.DashboardLayout) {
				assert.Equal(t, domain.DefaultDashboardLayout(), layout)
			},
		},
		{
			name:    "Blob corrompido usa o padrão",
			payload: "{not json",
			check: func(t *testing.T, layout domain.DashboardLayout) {
				assert.Equal(t, domain.DefaultDashboardLayout(), layout)
			},
		},
		{
			name: "Blob v1 é migrado",
			payload: `{"cardOrder":["kpi-group","market-trends"],
				"cardVisibility":[{"id":"kpi-group","label":"KPIs","visible":true},{"id":"market-trends","label":"Market","visible":false}]}`,
			check: func(t *testing.T, layout domain.DashboardLayout) {
				assert.Equal(t, domain.DashboardLayoutVersion, layout.Version)
				assert.Equal(t, domain.CardKPITotalStockValue, layout.CardOrder[0])
				assert.Equal(t, domain.CardMarketTrends, layout.CardOrder[4])
				assert.False(t, layout.IsVisible(domain.CardMarketTrends))
				assert.True(t, layout.IsVisible(domain.CardKPIFastMovingItems))
				assert.Equal(t, domain.DefaultChartColors, layout.ChartColors)
			},
		},
		{
			name:    "Versão futura usa o padrão",
			payload: `{"version":42,"cardOrder":[]}`,
			check: func(t *testing.T, layout domain.DashboardLayout) {
				assert.Equal(t, domain.DefaultDashboardLayout(), layout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryLayoutRepository{}
			if tt.payload != "" {
				repo.payload = []byte(tt.payload)
			}

			layout, err := NewService(repo).Load(context.Background())

			require.NoError(t, err)
			tt.check(t, layout)
		})
	}
}

func TestService_Load_ErroNoBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLayoutRepository(ctrl)
	mockRepo.EXPECT().GetLayout(gomock.Any()).Return(nil, errors.New("connection refused")).Times(2)

	service := NewService(mockRepo)

	_, err := service.Load(context.Background())
	assert.ErrorIs(t, err, ErrLayoutUnavailable)

	// Mutação sem layout carregado não grava por cima do blob existente
	_, err = service.ToggleVisibility(context.Background(), domain.CardMarketTrends)
	assert.ErrorIs(t, err, ErrLayoutUnavailable)
}
