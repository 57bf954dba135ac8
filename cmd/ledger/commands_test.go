package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/jewelai-api/internal/domain"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const sampleCSV = `voucher_date,label_no,category,value
2024-01-01,R-1,ring,1000
2024-01-03,R-1,ring,500
2024-01-02,B-1,bangle,2500
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestKPIsCommand(t *testing.T) {
	path := writeSample(t)

	out, err := run(t, "kpis", "--file", path)
	require.NoError(t, err)

	var summary domain.KPISummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 4000.0, summary.TotalStockValue)
	assert.Equal(t, 2, summary.TotalItems)
}

func TestCategoriesCommand_YAML(t *testing.T) {
	path := writeSample(t)

	out, err := run(t, "categories", "--file", path, "--output", "yaml", "--start", "2024-01-02")
	require.NoError(t, err)

	var response struct {
		Categories []domain.CategoryInsight `yaml:"categories"`
		Source     string                   `yaml:"source"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &response))
	assert.Equal(t, domain.SourceLedger, response.Source)
	require.Len(t, response.Categories, 2)
	assert.Equal(t, domain.CategoryRing, response.Categories[0].Category)
	assert.Equal(t, 1, response.Categories[0].ItemCount)
}

func TestItemsCommand(t *testing.T) {
	path := writeSample(t)

	out, err := run(t, "items", "--file", path, "--category", "ring")
	require.NoError(t, err)

	var response domain.InventoryItemsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	assert.Equal(t, 1, response.Total)
	require.Len(t, response.Items, 1)
	assert.Equal(t, "R-1", response.Items[0].ItemID)
	assert.Equal(t, 1500.0, response.Items[0].StockValue)
	assert.Equal(t, 2, response.Items[0].DaysToSell)
	assert.Equal(t, domain.TurnoverFast, response.Items[0].TurnoverCategory)
}

func TestCommand_Erros(t *testing.T) {
	path := writeSample(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "Formato de saída inválido", args: []string{"kpis", "--file", path, "--output", "xml"}},
		{name: "Data inválida", args: []string{"trends", "--file", path, "--start", "02/01/2024"}},
		{name: "Arquivo inexistente", args: []string{"kpis", "--file", filepath.Join(t.TempDir(), "nope.csv")}},
		{name: "Estimativa sem snapshot", args: []string{"categories", "--file", path, "--estimate"}},
		{name: "Faixa de risco invertida", args: []string{"items", "--file", path, "--risk-min", "60", "--risk-max", "10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestReportCommand(t *testing.T) {
	path := writeSample(t)
	out := filepath.Join(t.TempDir(), "report.xlsx")

	_, err := run(t, "report", "--file", path, "--out", out, "--category", "ring")
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
