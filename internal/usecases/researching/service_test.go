package researching

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/jewelai-api/infrastructure/integrator/gemini/mocks"
	"github.com/vfg2006/jewelai-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func analysisFor(keyword string) *domain.KeywordAnalysis {
	trending := true
	return &domain.KeywordAnalysis{Keyword: keyword, IsTrending: &trending}
}

func TestService_AnalyzeKeyword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNarrative := mocks.NewMockNarrativeIntegrator(ctrl)
	mockNarrative.EXPECT().IsConfigured().Return(true).AnyTimes()
	mockNarrative.EXPECT().AnalyzeKeyword(gomock.Any(), "gold chain").Return(analysisFor("gold chain"), nil)

	service := NewService(mockNarrative)

	_, err := service.LatestKeywordAnalysis()
	assert.ErrorIs(t, err, ErrNoAnalysis)

	result, err := service.AnalyzeKeyword(context.Background(), "  gold chain ")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), result.Sequence)
	assert.Equal(t, "gold chain", result.Analysis.Keyword)

	latest, err := service.LatestKeywordAnalysis()
	require.NoError(t, err)
	assert.Equal(t, result, latest)
}

func TestService_AnalyzeKeyword_UltimaRequisicaoVence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNarrative := mocks.NewMockNarrativeIntegrator(ctrl)
	mockNarrative.EXPECT().IsConfigured().Return(true).AnyTimes()

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	mockNarrative.EXPECT().AnalyzeKeyword(gomock.Any(), "ring").DoAndReturn(
		func(ctx context.Context, keyword string) (*domain.KeywordAnalysis, error) {
			close(firstStarted)
			<-releaseFirst
			return analysisFor(keyword), nil
		})
	mockNarrative.EXPECT().AnalyzeKeyword(gomock.Any(), "bangle").Return(analysisFor("bangle"), nil)

	service := NewService(mockNarrative)

	var wg sync.WaitGroup
	var first *domain.KeywordAnalysisResult
	var firstErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		first, firstErr = service.AnalyzeKeyword(context.Background(), "ring")
	}()

	<-firstStarted

	// A segunda requisição termina antes da primeira
	second, err := service.AnalyzeKeyword(context.Background(), "bangle")
	require.NoError(t, err)

	close(releaseFirst)
	wg.Wait()

	// Cada chamador recebe o próprio resultado
	require.NoError(t, firstErr)
	assert.Equal(t, "ring", first.Analysis.Keyword)
	assert.Equal(t, "bangle", second.Analysis.Keyword)

	// A resposta atrasada não substitui a mais nova
	latest, err := service.LatestKeywordAnalysis()
	require.NoError(t, err)
	assert.Equal(t, "bangle", latest.Analysis.Keyword)
	assert.Equal(t, uint64(2), latest.Sequence)
}

func TestService_AnalyzeKeyword_Erros(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNarrative := mocks.NewMockNarrativeIntegrator(ctrl)
	service := NewService(mockNarrative)

	mockNarrative.EXPECT().IsConfigured().Return(false)
	_, err := service.AnalyzeKeyword(context.Background(), "ring")
	assert.ErrorIs(t, err, ErrNotConfigured)

	mockNarrative.EXPECT().IsConfigured().Return(true)
	mockNarrative.EXPECT().AnalyzeKeyword(gomock.Any(), "ring").Return(nil, errors.New("schema violation"))
	result, err := service.AnalyzeKeyword(context.Background(), "ring")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNarrativeService)

	var researchErr *ResearchError
	require.ErrorAs(t, err, &researchErr)
	assert.Equal(t, "SRV_003", researchErr.Code)
	assert.Contains(t, err.Error(), "schema violation")
}

func TestService_AnalyzeMarketOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNarrative := mocks.NewMockNarrativeIntegrator(ctrl)
	mockNarrative.EXPECT().IsConfigured().Return(true).Times(2)

	overview := &domain.MarketOverview{LastUpdated: "2025-10-31T00:00:00Z"}
	mockNarrative.EXPECT().AnalyzeMarketOverview(gomock.Any()).Return(overview, nil)
	mockNarrative.EXPECT().AnalyzeMarketOverview(gomock.Any()).Return(nil, errors.New("timeout"))

	service := NewService(mockNarrative)

	got, err := service.AnalyzeMarketOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, overview, got)

	_, err = service.AnalyzeMarketOverview(context.Background())
	assert.ErrorIs(t, err, ErrNarrativeService)
}
