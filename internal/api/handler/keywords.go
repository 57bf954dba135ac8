package handler

import (
	"net/http"

	"github.com/vfg2006/jewelai-api/internal/domain"
	"github.com/vfg2006/jewelai-api/internal/usecases/researching"
	"github.com/vfg2006/jewelai-api/pkg/apiErrors"
	"github.com/vfg2006/jewelai-api/pkg/log"
)

func AnalyzeKeyword(service researching.Researcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.KeywordAnalysisRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Informe uma palavra-chave entre 2 e 80 caracteres", err.Error())
			return
		}

		result, err := service.AnalyzeKeyword(r.Context(), req.Keyword)
		if err != nil {
			logger.WithError(err).Error("pesquisa: erro ao analisar palavra-chave")
			apiErrors.WriteFromError(w, err, apiErrors.ErrExternalService, "Erro ao analisar palavra-chave")
			return
		}

		logger.WithField("sequence", result.Sequence).Info("pesquisa: análise concluída")
		writeJSON(w, r, http.StatusOK, result)
	})
}

func GetLatestKeywordAnalysis(service researching.Researcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := service.LatestKeywordAnalysis()
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrResourceNotFound, "Nenhuma análise disponível")
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

func GetMarketOverview(service researching.Researcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		overview, err := service.AnalyzeMarketOverview(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("pesquisa: erro ao gerar visão de mercado")
			apiErrors.WriteFromError(w, err, apiErrors.ErrExternalService, "Erro ao gerar visão de mercado")
			return
		}

		writeJSON(w, r, http.StatusOK, overview)
	})
}
