package customizing

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/jewelai-api/internal/domain"
)

// Versões do blob persistido:
//
//	v1: sem campo version; os KPIs são um único card "kpi-group"
//	v2: um card por KPI
//	v3: módulos analíticos e cores dos gráficos
const (
	layoutV1 = 1
	layoutV2 = 2
	layoutV3 = 3
)

type migration func(domain.DashboardLayout) domain.DashboardLayout

var migrations = map[int]migration{
	layoutV1: migrateV1ToV2,
	layoutV2: migrateV2ToV3,
}

var validate = validator.New()

// Migrate aplica a cadeia de migrações até a versão atual
func Migrate(layout domain.DashboardLayout) (domain.DashboardLayout, error) {
	if layout.Version == 0 {
		layout.Version = layoutV1
	}

	if layout.Version > domain.DashboardLayoutVersion {
		return layout, fmt.Errorf("%w: %d", ErrUnsupportedVersion, layout.Version)
	}

	for layout.Version < domain.DashboardLayoutVersion {
		step, ok := migrations[layout.Version]
		if !ok {
			return layout, fmt.Errorf("%w: %d", ErrUnsupportedVersion, layout.Version)
		}
		layout = step(layout)
	}

	return layout, nil
}

// migrateV1ToV2 troca o grupo de KPIs pelos cards individuais, na mesma posição
// e com a mesma visibilidade
func migrateV1ToV2(layout domain.DashboardLayout) domain.DashboardLayout {
	next := layout.Clone()
	next.Version = layoutV2

	next.CardOrder = make([]string, 0, len(layout.CardOrder)+len(domain.LegacyKPIGroupExpansion))
	for _, id := range layout.CardOrder {
		if id == domain.LegacyKPIGroupCard {
			next.CardOrder = append(next.CardOrder, domain.LegacyKPIGroupExpansion...)
			continue
		}
		next.CardOrder = append(next.CardOrder, id)
	}

	next.CardVisibility = make([]domain.CardVisibility, 0, len(layout.CardVisibility)+len(domain.LegacyKPIGroupExpansion))
	for _, entry := range layout.CardVisibility {
		if entry.ID != domain.LegacyKPIGroupCard {
			next.CardVisibility = append(next.CardVisibility, entry)
			continue
		}
		for _, id := range domain.LegacyKPIGroupExpansion {
			card, _ := domain.LookupCard(id)
			next.CardVisibility = append(next.CardVisibility, domain.CardVisibility{
				ID:      id,
				Label:   card.Label,
				Visible: entry.Visible,
			})
		}
	}

	return next
}

// migrateV2ToV3 registra os módulos analíticos como ocultos e inicializa as cores
func migrateV2ToV3(layout domain.DashboardLayout) domain.DashboardLayout {
	next := layout.Clone()
	next.Version = layoutV3

	for _, card := range domain.CardCatalog {
		if card.Kind != domain.CardKindAnalyticsModule || hasVisibility(next, card.ID) {
			continue
		}
		next.CardVisibility = append(next.CardVisibility, domain.CardVisibility{
			ID:      card.ID,
			Label:   card.Label,
			Visible: false,
		})
	}

	return next
}

// Reconcile alinha um layout já migrado ao catálogo atual: remove ids
// desconhecidos e duplicados, completa a visibilidade com os padrões do
// catálogo e aplica as cores persistidas sobre as cores padrão
func Reconcile(layout domain.DashboardLayout) domain.DashboardLayout {
	result := domain.DashboardLayout{
		Version:        domain.DashboardLayoutVersion,
		CardOrder:      make([]string, 0, len(layout.CardOrder)),
		CardVisibility: make([]domain.CardVisibility, 0, len(domain.CardCatalog)),
		ChartColors:    make(map[domain.ChartTarget]string, len(domain.DefaultChartColors)),
	}

	for _, id := range layout.CardOrder {
		if _, known := domain.LookupCard(id); !known || slices.Contains(result.CardOrder, id) {
			continue
		}
		result.CardOrder = append(result.CardOrder, id)
	}

	for _, entry := range layout.CardVisibility {
		card, known := domain.LookupCard(entry.ID)
		if !known || hasVisibility(result, entry.ID) {
			continue
		}
		result.CardVisibility = append(result.CardVisibility, domain.CardVisibility{
			ID:      card.ID,
			Label:   card.Label,
			Visible: entry.Visible,
		})
	}

	for _, card := range domain.CardCatalog {
		if hasVisibility(result, card.ID) {
			continue
		}
		result.CardVisibility = append(result.CardVisibility, domain.CardVisibility{
			ID:      card.ID,
			Label:   card.Label,
			Visible: card.DefaultVisible,
		})
		// Card novo no catálogo entra na ordem como no layout padrão
		if card.DefaultOrdered && !slices.Contains(result.CardOrder, card.ID) {
			result.CardOrder = append(result.CardOrder, card.ID)
		}
	}

	for target, color := range domain.DefaultChartColors {
		result.ChartColors[target] = color
	}
	for target, color := range layout.ChartColors {
		if !target.IsKnown() || !isValidColor(color) {
			continue
		}
		result.ChartColors[target] = color
	}

	return result
}

func hasVisibility(layout domain.DashboardLayout, id string) bool {
	for _, entry := range layout.CardVisibility {
		if entry.ID == id {
			return true
		}
	}
	return false
}

func isValidColor(color string) bool {
	return validate.Var(color, "required,iscolor") == nil
}
