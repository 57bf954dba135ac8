package domain

import "strings"

// Category identifica a linha de produto de uma peça
type Category string

const (
	CategoryBangle   Category = "BANGLE"
	CategoryBracelet Category = "BRACELET"
	CategoryChain    Category = "CHAIN"
	CategoryEarring  Category = "EARRING"
	CategoryNecklace Category = "NECKLACE"
	CategoryPendant  Category = "PENDANT"
	CategoryRing     Category = "RING"
)

// Categories lista as categorias conhecidas na ordem usada nos relatórios
var Categories = []Category{
	CategoryBangle,
	CategoryBracelet,
	CategoryChain,
	CategoryEarring,
	CategoryNecklace,
	CategoryPendant,
	CategoryRing,
}

// NormalizeCategory aplica a mesma normalização feita na ingestão do CSV
func NormalizeCategory(raw string) Category {
	return Category(strings.ToUpper(strings.TrimSpace(raw)))
}

func (c Category) IsKnown() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// SalesRecord é uma linha do livro de vendas. Não deve ser alterado depois do parse.
type SalesRecord struct {
	TransactionDate string   `json:"voucher_date" yaml:"voucher_date"` // YYYY-MM-DD
	ItemID          string   `json:"label_no" yaml:"label_no"`
	Category        Category `json:"category" yaml:"category"`
	Value           float64  `json:"value" yaml:"value"`
}
