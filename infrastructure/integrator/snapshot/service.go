package snapshot

import (
	"context"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/jewelai-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StaticSnapshot lê o agregado de categorias distribuído junto com a aplicação
type StaticSnapshot interface {
	LoadCategories(ctx context.Context) ([]domain.CategoryInsight, error)
}

type FileSnapshot struct {
	path string
}

func New(path string) StaticSnapshot {
	return &FileSnapshot{path: path}
}

// staticCategory aceita os nomes de campo do arquivo estático e os do agregador
type staticCategory struct {
	Category      string  `json:"category"`
	StockValue    float64 `json:"stockValue"`
	AvgDaysToSell int     `json:"avgDaysToSell"`
	RiskScore     int     `json:"riskScore"`
	ItemCount     int     `json:"itemCount"`
	Trend         string  `json:"trend"`
}

func (s *FileSnapshot) LoadCategories(ctx context.Context) ([]domain.CategoryInsight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler snapshot estático %s", s.path)
	}

	var raw []staticCategory
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar snapshot estático")
	}

	categories := make([]domain.CategoryInsight, 0, len(raw))
	for _, entry := range raw {
		category := domain.NormalizeCategory(entry.Category)
		if category == "" {
			continue
		}

		trend := domain.Trend(entry.Trend)
		if trend != domain.TrendRising && trend != domain.TrendStable && trend != domain.TrendFalling {
			trend = domain.TrendForRisk(entry.RiskScore)
		}

		categories = append(categories, domain.CategoryInsight{
			Category:      category,
			StockValue:    entry.StockValue,
			AvgDaysToSell: entry.AvgDaysToSell,
			RiskScore:     entry.RiskScore,
			ItemCount:     entry.ItemCount,
			Trend:         trend,
		})
	}

	return categories, nil
}
