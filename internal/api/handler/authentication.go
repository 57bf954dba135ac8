package handler

import (
	"net/http"

	"github.com/vfg2006/jewelai-api/internal/domain"
	"github.com/vfg2006/jewelai-api/internal/usecases/authenticating"
	"github.com/vfg2006/jewelai-api/pkg/apiErrors"
	"github.com/vfg2006/jewelai-api/pkg/log"
)

func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", err.Error())
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"user_email": req.Email,
				"error":      err.Error(),
			}).Warn("auth: falha no login")

			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Não foi possível realizar o login")
			return
		}

		writeJSON(w, r, http.StatusOK, domain.LoginResponse{Token: token})
	})
}
