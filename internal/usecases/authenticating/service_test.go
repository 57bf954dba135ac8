package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/jewelai-api/internal/config"
	"github.com/vfg2006/jewelai-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func newAuthConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nh@Forte"), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{Auth: config.Auth{
		Secret:            "test-secret",
		OwnerEmail:        "owner@jewelai.local",
		OwnerPasswordHash: string(hash),
		TokenTTL:          time.Hour,
	}}
}

func TestService_LoginUser(t *testing.T) {
	service := NewService(newAuthConfig(t))

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "Credenciais corretas", email: " Owner@JewelAI.local ", password: "s3nh@Forte"},
		{name: "Senha incorreta", email: "owner@jewelai.local", password: "errada", wantErr: ErrInvalidCredentials},
		{name: "Email desconhecido", email: "other@jewelai.local", password: "s3nh@Forte", wantErr: ErrInvalidCredentials},
		{name: "Campos vazios", email: "", password: "", wantErr: ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.LoginUser(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, "owner@jewelai.local", claims.UserEmail)
			assert.Equal(t, domain.RoleOwner, claims.UserRole)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	cfg := newAuthConfig(t)
	service := NewService(cfg).(*Service)

	_, err := service.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Token emitido há duas horas com validade de uma hora
	service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := service.generateJWT("owner@jewelai.local", domain.RoleOwner)
	require.NoError(t, err)

	_, err = service.ValidateToken(expired)
	assert.ErrorIs(t, err, ErrExpiredToken)

	// Assinado com outro segredo
	other := NewService(&config.Config{Auth: config.Auth{Secret: "other"}}).(*Service)
	forged, err := other.generateJWT("owner@jewelai.local", domain.RoleOwner)
	require.NoError(t, err)

	_, err = service.ValidateToken(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.True(t, IsAuthorizationError(err))
}
