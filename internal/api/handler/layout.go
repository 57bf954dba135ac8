package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/jewelai-api/internal/domain"
	"github.com/vfg2006/jewelai-api/internal/usecases/customizing"
	"github.com/vfg2006/jewelai-api/pkg/apiErrors"
	"github.com/vfg2006/jewelai-api/pkg/log"
)

type ReorderRequest struct {
	ActiveID string `json:"active_id" validate:"required"`
	OverID   string `json:"over_id" validate:"required"`
}

type ColorRequest struct {
	Color string `json:"color" validate:"required"`
}

// LayoutResponse acompanha o layout com os cards já resolvidos para renderização
type LayoutResponse struct {
	Layout       domain.DashboardLayout  `json:"layout"`
	VisibleCards []domain.CardDefinition `json:"visible_cards"`
}

func newLayoutResponse(layout domain.DashboardLayout) LayoutResponse {
	return LayoutResponse{
		Layout:       layout,
		VisibleCards: layout.VisibleCards(),
	}
}

func writeLayout(w http.ResponseWriter, r *http.Request, layout domain.DashboardLayout, err error, action string) {
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Warnf("layout: erro ao %s", action)
		apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao "+action)
		return
	}
	writeJSON(w, r, http.StatusOK, newLayoutResponse(layout))
}

func GetLayout(service customizing.Customizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		layout, err := service.Layout(r.Context())
		writeLayout(w, r, layout, err, "carregar layout")
	})
}

func ToggleCardVisibility(service customizing.Customizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		layout, err := service.ToggleVisibility(r.Context(), id)
		writeLayout(w, r, layout, err, "alterar visibilidade do card")
	})
}

func ReorderCards(service customizing.Customizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ReorderRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", err.Error())
			return
		}

		layout, err := service.Reorder(r.Context(), req.ActiveID, req.OverID)
		writeLayout(w, r, layout, err, "reordenar cards")
	})
}

func SetChartColor(service customizing.Customizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target := domain.ChartTarget(httprouter.ParamsFromContext(r.Context()).ByName("target"))

		var req ColorRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", err.Error())
			return
		}

		layout, err := service.SetColor(r.Context(), target, req.Color)
		writeLayout(w, r, layout, err, "alterar cor do gráfico")
	})
}

func ResetLayout(service customizing.Customizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		layout, err := service.ResetToDefault(r.Context())
		writeLayout(w, r, layout, err, "restaurar layout padrão")
	})
}
