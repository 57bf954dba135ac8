package handler

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/jewelai-api/internal/domain"
	"github.com/vfg2006/jewelai-api/pkg/apiErrors"
	"github.com/vfg2006/jewelai-api/pkg/log"
	"github.com/vfg2006/jewelai-api/pkg/utils"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

// parseFilters lê start_date, end_date e days da query string
func parseFilters(r *http.Request) (*domain.InsightFilters, error) {
	query := r.URL.Query()

	filters := &domain.InsightFilters{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}

	if _, err := utils.ParseDate(filters.StartDate); err != nil {
		return nil, err
	}
	if _, err := utils.ParseDate(filters.EndDate); err != nil {
		return nil, err
	}

	if raw := query.Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		filters.Days = days
	}

	if err := validate.Struct(filters); err != nil {
		return nil, err
	}

	return filters, nil
}

// decodeBody decodifica e valida o corpo JSON da requisição
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao escrever resposta")
	}
}

func writeFilterError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithFields(log.Fields{
		"start_date": r.URL.Query().Get("start_date"),
		"end_date":   r.URL.Query().Get("end_date"),
		"days":       r.URL.Query().Get("days"),
		"error":      err.Error(),
	}).Warn("handler: filtros inválidos")

	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filtros inválidos: use start_date/end_date no formato YYYY-MM-DD ou days inteiro", err.Error())
}
