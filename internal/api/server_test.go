package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/jewelai-api/internal/config"
	"github.com/vfg2006/jewelai-api/internal/ledger"
	ledgermocks "github.com/vfg2006/jewelai-api/internal/ledger/mocks"
	"github.com/vfg2006/jewelai-api/internal/usecases/authenticating"
	"go.uber.org/mock/gomock"
)

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := ledgermocks.NewMockLoader(ctrl)
	loader.EXPECT().Status().Return(ledger.Status{State: ledger.StateEmpty}).AnyTimes()

	cfg := &config.Config{
		Auth:   config.Auth{Secret: "test", OwnerEmail: "owner@jewelai.local", TokenTTL: time.Hour},
		Ledger: config.Ledger{DefaultDays: 30},
	}

	// Montar todas as rotas garante que não há conflito de caminhos no httprouter
	var handler http.Handler
	require.NotPanics(t, func() {
		handler = NewHandler(cfg, Services{
			Loader:        loader,
			Authenticator: authenticating.NewService(cfg),
		})
	})

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "Healthcheck é público", method: http.MethodGet, path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "KPIs exigem token", method: http.MethodGet, path: "/v1/kpis/summary", wantStatus: http.StatusUnauthorized},
		{name: "Login sem corpo", method: http.MethodPost, path: "/v1/login", wantStatus: http.StatusBadRequest},
		{name: "Preflight CORS", method: http.MethodOptions, path: "/v1/kpis/summary", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
