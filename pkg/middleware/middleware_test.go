package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func okHandler(t *testing.T, wantUser int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wantUser != 0 {
			requester, ok := RequesterFromContext(r.Context())
			require.True(t, ok)
			assert.Equal(t, wantUser, requester.UserID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		setup      func(m *mocks.MockAuthenticator)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Rota pública não exige token",
			path:       "/healthcheck",
			setup:      func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Métricas são públicas",
			path:       "/metrics",
			setup:      func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Sem cabeçalho",
			path:       "/v1/me",
			setup:      func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "Sem prefixo Bearer",
			path:       "/v1/me",
			header:     "Token abc",
			setup:      func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "Token expirado devolve o código do autenticador",
			path:   "/v1/me",
			header: "Bearer expirado",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("expirado").Return(nil,
					authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:   "Token válido coloca o usuário no contexto",
			path:   "/v1/me",
			header: "Bearer valido",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("valido").Return(&domain.Claims{UserID: 7, UserRoleID: domain.RoleClient}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := mocks.NewMockAuthenticator(ctrl)
			tt.setup(validator)

			wantUser := 0
			if tt.wantStatus == http.StatusOK && tt.header != "" {
				wantUser = 7
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(validator)(okHandler(t, wantUser)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		middleware func(http.Handler) http.Handler
		wantStatus int
	}{
		{name: "Administrador em rota de administrador", claims: &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}, middleware: AdminOnly(), wantStatus: http.StatusOK},
		{name: "Cliente em rota de administrador", claims: &domain.Claims{UserID: 7, UserRoleID: domain.RoleClient}, middleware: AdminOnly(), wantStatus: http.StatusForbidden},
		{name: "Supervisor em rota de supervisão", claims: &domain.Claims{UserID: 2, UserRoleID: domain.RoleSupervisor}, middleware: AdminOrSupervisor(), wantStatus: http.StatusOK},
		{name: "Cliente em rota comum", claims: &domain.Claims{UserID: 7, UserRoleID: domain.RoleClient}, middleware: AllRoles(), wantStatus: http.StatusOK},
		{name: "Sem autenticação", claims: nil, middleware: AllRoles(), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
			if tt.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler(t, 0)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler(t, 0))

	req := httptest.NewRequest(http.MethodOptions, "/v1/me", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Origin", "https://outro.site")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingAndPanic(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falhou")
	})

	handler := LoggingMiddleware()(LogPanicMiddleware()(panicking))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}
