package gemini

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/jewelai-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/jewelai-api/internal/config"
)

const validKeywordJSON = `{
  "keyword": "gold chain",
  "isTrending": true,
  "trendDirection": "up",
  "interestOverTime": [{"month": "Oct 2025", "searches": 80}],
  "relatedSearches": [{"query": "22k gold chain", "category": "Chains", "demand": "Very High"}],
  "aiRecommendation": {"confidence": 90, "summary": "Strong demand", "insights": ["Stock lightweight chains"], "potentialImpact": "High"},
  "categoryDemand": [{"category": "Chains", "level": "High", "percentage": 70}]
}`

const validOverviewJSON = `{
  "trendingCategories": [{"name": "Temple Jewellery", "trend": "up", "change": "+24%"}],
  "categoryTrends": [{"month": "Oct", "gold": 65, "silver": 40, "diamond": 20}],
  "searchInterest": [{"week": "W1", "interest": 88}],
  "seasonalInsights": [{"title": "Wedding season", "description": "Demand for bridal sets rises.", "emoji": "💍"}],
  "lastUpdated": "2025-10-31T00:00:00Z"
}`

func geminiServer(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error": {"code": 500, "message": "backend error", "status": "INTERNAL"}}`))
			return
		}

		payload, err := json.Marshal(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
			},
		})
		require.NoError(t, err)
		_, _ = w.Write(payload)
	}))
}

func newTestService(serverURL string) *GeminiService {
	cfg := config.Gemini{APIKey: "test-key", BaseURL: serverURL, Model: "gemini-test", Timeout: 5 * time.Second}
	service := New(cfg, geminiclient.NewClient(cfg)).(*GeminiService)
	service.now = func() time.Time { return time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC) }
	return service
}

func TestGeminiService_AnalyzeKeyword(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		text           string
		wantErr        error
		wantConfidence int
	}{
		{name: "JSON válido", status: http.StatusOK, text: validKeywordJSON, wantConfidence: 90},
		{name: "JSON dentro de bloco de código", status: http.StatusOK, text: "```json\n" + validKeywordJSON + "\n```", wantConfidence: 90},
		{name: "Texto que não é JSON", status: http.StatusOK, text: "Sorry, I can't help with that.", wantErr: ErrInvalidJSON},
		{name: "Campo obrigatório ausente", status: http.StatusOK, text: `{"keyword": "gold chain", "interestOverTime": [], "relatedSearches": [], "categoryDemand": []}`, wantErr: ErrSchemaViolation},
		{name: "confidence ausente", status: http.StatusOK, text: strings.Replace(validKeywordJSON, `"confidence": 90, `, "", 1), wantErr: ErrSchemaViolation},
		{name: "percentage ausente", status: http.StatusOK, text: strings.Replace(validKeywordJSON, `, "percentage": 70`, "", 1), wantErr: ErrSchemaViolation},
		{name: "searches ausente", status: http.StatusOK, text: strings.Replace(validKeywordJSON, `, "searches": 80`, "", 1), wantErr: ErrSchemaViolation},
		{name: "confidence zero é aceito", status: http.StatusOK, text: strings.Replace(validKeywordJSON, `"confidence": 90`, `"confidence": 0`, 1), wantConfidence: 0},
		{name: "Valor fora do domínio", status: http.StatusOK, text: strings.Replace(validKeywordJSON, `"Very High"`, `"Huge"`, 1), wantErr: ErrSchemaViolation},
		{name: "Erro HTTP", status: http.StatusInternalServerError, wantErr: ErrRequestFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := geminiServer(t, tt.status, tt.text)
			defer server.Close()

			analysis, err := newTestService(server.URL).AnalyzeKeyword(context.Background(), "gold chain")

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "erro inesperado: %v", err)
				assert.Nil(t, analysis)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "gold chain", analysis.Keyword)
			require.NotNil(t, analysis.IsTrending)
			assert.True(t, *analysis.IsTrending)
			require.NotNil(t, analysis.AIRecommendation.Confidence)
			assert.Equal(t, tt.wantConfidence, *analysis.AIRecommendation.Confidence)
		})
	}
}

func TestGeminiService_AnalyzeMarketOverview(t *testing.T) {
	server := geminiServer(t, http.StatusOK, validOverviewJSON)
	defer server.Close()

	overview, err := newTestService(server.URL).AnalyzeMarketOverview(context.Background())

	require.NoError(t, err)
	require.Len(t, overview.TrendingCategories, 1)
	assert.Equal(t, "Temple Jewellery", overview.TrendingCategories[0].Name)
	require.NotNil(t, overview.CategoryTrends[0].Gold)
	assert.Equal(t, 65.0, *overview.CategoryTrends[0].Gold)
}

func TestGeminiService_AnalyzeMarketOverview_CampoNumericoAusente(t *testing.T) {
	tests := []struct {
		name    string
		removed string
	}{
		{name: "gold ausente", removed: `"gold": 65, `},
		{name: "silver ausente", removed: `"silver": 40, `},
		{name: "diamond ausente", removed: `, "diamond": 20`},
		{name: "interest ausente", removed: `, "interest": 88`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.Replace(validOverviewJSON, tt.removed, "", 1)
			require.NotEqual(t, validOverviewJSON, text)

			server := geminiServer(t, http.StatusOK, text)
			defer server.Close()

			overview, err := newTestService(server.URL).AnalyzeMarketOverview(context.Background())

			assert.ErrorIs(t, err, ErrSchemaViolation)
			assert.Nil(t, overview)
		})
	}
}

func TestGeminiService_AnalyzeMarketOverview_ListaVazia(t *testing.T) {
	server := geminiServer(t, http.StatusOK, `{"trendingCategories": [], "categoryTrends": [], "searchInterest": []}`)
	defer server.Close()

	_, err := newTestService(server.URL).AnalyzeMarketOverview(context.Background())

	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestGeminiService_NaoConfigurado(t *testing.T) {
	service := New(config.Gemini{}, geminiclient.NewClient(config.Gemini{}))

	_, err := service.AnalyzeKeyword(context.Background(), "ring")

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, service.IsConfigured())
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFence("  {\"a\":1}  "))
}
