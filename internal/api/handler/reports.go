package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/vfg2006/jewelai-api/internal/usecases/reporting"
	"github.com/vfg2006/jewelai-api/pkg/apiErrors"
	"github.com/vfg2006/jewelai-api/pkg/log"
)

func GetInventoryReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r)
		if err != nil {
			writeFilterError(w, r, err)
			return
		}

		category := r.URL.Query().Get("category")

		content, err := service.InventoryWorkbook(r.Context(), filters, category)
		if err != nil {
			logger.WithError(err).WithField("category", category).Error("relatórios: erro ao gerar planilha")
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao gerar relatório")
			return
		}

		filename := "inventory.xlsx"
		if category != "" {
			filename = fmt.Sprintf("inventory-%s.xlsx", strings.ToLower(strings.TrimSpace(category)))
		}

		w.Header().Set("Content-Type", reporting.ContentType)
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(content); err != nil {
			logger.WithError(err).Error("relatórios: erro ao enviar planilha")
		}
	})
}
