package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/jewelai-api/internal/domain"
)

func TestFileSnapshot_LoadCategories(t *testing.T) {
	content := `[
		{"category": "ring", "stockValue": 3000, "avgDaysToSell": 4, "riskScore": 20, "itemCount": 10, "trend": "rising"},
		{"category": "CHAIN", "stockValue": 1500.5, "avgDaysToSell": 10, "riskScore": 50, "itemCount": 3},
		{"category": "", "stockValue": 1}
	]`
	path := filepath.Join(t.TempDir(), "categories.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	categories, err := New(path).LoadCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, domain.CategoryRing, categories[0].Category)
	assert.Equal(t, domain.TrendRising, categories[0].Trend)
	// Tendência ausente é derivada da pontuação de risco
	assert.Equal(t, domain.TrendFalling, categories[1].Trend)
	assert.Equal(t, 1500.5, categories[1].StockValue)
}

func TestFileSnapshot_LoadCategories_Erros(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte("{not json"), 0o600))

	_, err := New(filepath.Join(dir, "missing.json")).LoadCategories(context.Background())
	assert.Error(t, err)

	_, err = New(invalid).LoadCategories(context.Background())
	assert.Error(t, err)
}
