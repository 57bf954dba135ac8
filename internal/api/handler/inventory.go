package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/jewelai-api/internal/domain"
	"github.com/vfg2006/jewelai-api/internal/usecases/insighting"
	"github.com/vfg2006/jewelai-api/pkg/apiErrors"
	"github.com/vfg2006/jewelai-api/pkg/log"
)

const estimateMode = "estimate"

func GetKPISummary(service insighting.InventoryInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r)
		if err != nil {
			writeFilterError(w, r, err)
			return
		}

		summary, err := service.GetKPISummary(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("insights: erro ao calcular KPIs")
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao calcular KPIs")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

// GetCategoryInsights responde com as categorias do livro de vendas. Com
// mode=estimate o agregado base é reescalado para `days` dias, usando
// defaultDays quando days não for informado.
func GetCategoryInsights(service insighting.InventoryInsighter, defaultDays int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r)
		if err != nil {
			writeFilterError(w, r, err)
			return
		}

		if r.URL.Query().Get("mode") == estimateMode {
			days := filters.Days
			if r.URL.Query().Get("days") == "" {
				days = defaultDays
			}

			logger.WithField("days", days).Debug("insights: categorias em modo estimativa")

			response, err := service.GetEstimatedCategories(r.Context(), days)
			if err != nil {
				logger.WithError(err).Warn("insights: erro ao estimar categorias")
				apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao estimar categorias")
				return
			}

			writeJSON(w, r, http.StatusOK, response)
			return
		}

		response, err := service.GetCategoryInsights(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("insights: erro ao agregar categorias")
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao agregar categorias")
			return
		}

		logger.WithFields(log.Fields{
			"source":     response.Source,
			"categories": len(response.Categories),
		}).Info("insights: categorias calculadas")

		writeJSON(w, r, http.StatusOK, response)
	})
}

func GetMarketTrends(service insighting.InventoryInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeFilterError(w, r, err)
			return
		}

		trends, err := service.GetMarketTrends(r.Context(), filters)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("insights: erro ao calcular tendências de mercado")
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao calcular tendências de mercado")
			return
		}

		writeJSON(w, r, http.StatusOK, trends)
	})
}

// parseItemFilters lê category, risk_min e risk_max; ausentes valem 0 e 100
func parseItemFilters(r *http.Request) (domain.ItemFilters, error) {
	query := r.URL.Query()
	filters := domain.DefaultItemFilters()

	if raw := query.Get("category"); raw != "" {
		filters.Category = domain.NormalizeCategory(raw)
	}

	if raw := query.Get("risk_min"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, err
		}
		filters.RiskMin = value
	}

	if raw := query.Get("risk_max"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, err
		}
		filters.RiskMax = value
	}

	return filters, nil
}

func GetInventoryItems(service insighting.InventoryInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeFilterError(w, r, err)
			return
		}

		itemFilters, err := parseItemFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "risk_min e risk_max devem ser numéricos", err.Error())
			return
		}

		response, err := service.GetInventoryItems(r.Context(), filters, itemFilters)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("insights: erro ao listar peças")
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao listar peças")
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}
