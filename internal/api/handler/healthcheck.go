package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/jewelai-api/internal/ledger"
)

type HealthcheckResponse struct {
	Status string        `json:"status"`
	Time   time.Time     `json:"time"`
	Ledger ledger.Status `json:"ledger"`
}

// HealthcheckHandler responde sempre 200; o estado do livro de vendas é
// informativo e não derruba a liveness
func HealthcheckHandler(loader ledger.Loader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, HealthcheckResponse{
			Status: "ok",
			Time:   time.Now(),
			Ledger: loader.Status(),
		})
	})
}
