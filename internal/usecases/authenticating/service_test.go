package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const validPassword = "Senha@123"

var (
	authConfig = config.Auth{SecretKey: "segredo-de-teste", AccessTokenExpire: time.Hour}
	admin      = domain.Requester{UserID: 1, RoleID: domain.RoleAdmin}
	client     = domain.Requester{UserID: 7, RoleID: domain.RoleClient}
)

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func assertAuthError(t *testing.T, err error, base error, code string) {
	t.Helper()

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr), "esperava AuthError, recebeu %v", err)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, code, authErr.Code)
}

func TestService_LoginUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(repo *mocks.MockUserRepository)
		wantErr  error
		wantCode string
	}{
		{
			name:     "Login com sucesso normaliza o email",
			email:    "  Ana@Loja.com ",
			password: validPassword,
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "ana@loja.com").Return(&domain.User{
					ID: 7, Name: "Ana", Email: "ana@loja.com", PasswordHash: hashed(t, validPassword), Active: true, RoleID: domain.RoleClient,
				}, nil)
			},
		},
		{
			name:     "Senha incorreta",
			email:    "ana@loja.com",
			password: "Outra@123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "ana@loja.com").Return(&domain.User{
					ID: 7, PasswordHash: hashed(t, validPassword), Active: true,
				}, nil)
			},
			wantErr:  ErrInvalidCredentials,
			wantCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "Usuário inexistente responde como credencial inválida",
			email:    "nao@existe.com",
			password: validPassword,
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "nao@existe.com").Return(nil, nil)
			},
			wantErr:  ErrInvalidCredentials,
			wantCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "Usuário desativado",
			email:    "ana@loja.com",
			password: validPassword,
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "ana@loja.com").Return(&domain.User{
					ID: 7, PasswordHash: hashed(t, validPassword), Active: false,
				}, nil)
			},
			wantErr:  ErrUserDisabled,
			wantCode: apiErrors.ErrUserDisabled,
		},
		{
			name:     "Campos vazios",
			email:    "",
			password: "",
			setup:    func(repo *mocks.MockUserRepository) {},
			wantErr:  ErrMissingRequiredData,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "Falha no banco",
			email:    "ana@loja.com",
			password: validPassword,
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "ana@loja.com").Return(nil, errors.New("connection refused"))
			},
			wantErr:  ErrDatabaseOperation,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockUserRepository(ctrl)
			tt.setup(repo)
			service := NewService(repo, authConfig)

			token, err := service.LoginUser(ctx, tt.email, tt.password)

			if tt.wantErr != nil {
				assertAuthError(t, err, tt.wantErr, tt.wantCode)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, 7, claims.UserID)
			assert.Equal(t, "ana@loja.com", claims.UserEmail)
			assert.Equal(t, domain.RoleClient, claims.UserRoleID)
			assert.NotEmpty(t, claims.ID)
			assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	service := NewService(nil, authConfig)

	sign := func(key string, expiresAt time.Time) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
			UserID: 3,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(expiresAt),
			},
		})
		signed, err := token.SignedString([]byte(key))
		require.NoError(t, err)
		return signed
	}

	tests := []struct {
		name     string
		token    string
		wantErr  error
		wantCode string
	}{
		{name: "Token válido", token: sign(authConfig.SecretKey, time.Now().Add(time.Hour))},
		{name: "Token expirado", token: sign(authConfig.SecretKey, time.Now().Add(-time.Hour)), wantErr: ErrExpiredToken, wantCode: apiErrors.ErrExpiredToken},
		{name: "Assinatura com outra chave", token: sign("outra-chave", time.Now().Add(time.Hour)), wantErr: ErrInvalidToken, wantCode: apiErrors.ErrInvalidToken},
		{name: "Texto qualquer", token: "abc.def.ghi", wantErr: ErrInvalidToken, wantCode: apiErrors.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			if tt.wantErr != nil {
				assertAuthError(t, err, tt.wantErr, tt.wantCode)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 3, claims.UserID)
		})
	}
}

func TestService_CreateUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		requester domain.Requester
		request   *domain.CreateUserRequest
		setup     func(repo *mocks.MockUserRepository)
		wantErr   error
		wantCode  string
	}{
		{
			name:      "Administrador cria cliente ativo por padrão",
			requester: admin,
			request:   &domain.CreateUserRequest{Name: "Ana", Email: "ANA@loja.com", Password: validPassword},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "ana@loja.com").Return(nil, nil)
				repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
					assert.Equal(t, domain.RoleClient, user.RoleID)
					assert.True(t, user.Active)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(validPassword)))
					user.ID = 10
					return user, nil
				})
			},
		},
		{
			name:      "Não administrador não cria usuários",
			requester: client,
			request:   &domain.CreateUserRequest{Name: "Ana", Email: "ana@loja.com", Password: validPassword},
			setup:     func(repo *mocks.MockUserRepository) {},
			wantErr:   ErrInsufficientPrivilege,
			wantCode:  apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:      "Email já cadastrado",
			requester: admin,
			request:   &domain.CreateUserRequest{Name: "Ana", Email: "ana@loja.com", Password: validPassword},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "ana@loja.com").Return(&domain.User{ID: 2}, nil)
			},
			wantErr:  ErrUserAlreadyExists,
			wantCode: apiErrors.ErrUserAlreadyExists,
		},
		{
			name:      "Corrida no cadastro vira duplicado",
			requester: admin,
			request:   &domain.CreateUserRequest{Name: "Ana", Email: "ana@loja.com", Password: validPassword},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "ana@loja.com").Return(nil, nil)
				repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(nil, repository.ErrDuplicate)
			},
			wantErr:  ErrUserAlreadyExists,
			wantCode: apiErrors.ErrUserAlreadyExists,
		},
		{
			name:      "Senha fraca",
			requester: admin,
			request:   &domain.CreateUserRequest{Name: "Ana", Email: "ana@loja.com", Password: "senha123"},
			setup:     func(repo *mocks.MockUserRepository) {},
			wantErr:   ErrWeakPassword,
			wantCode:  apiErrors.ErrInvalidFormat,
		},
		{
			name:      "Perfil inválido",
			requester: admin,
			request:   &domain.CreateUserRequest{Name: "Ana", Email: "ana@loja.com", Password: validPassword, RoleID: 9},
			setup:     func(repo *mocks.MockUserRepository) {},
			wantErr:   ErrInvalidRole,
			wantCode:  apiErrors.ErrInvalidRequest,
		},
		{
			name:      "Nome ausente",
			requester: admin,
			request:   &domain.CreateUserRequest{Email: "ana@loja.com", Password: validPassword},
			setup:     func(repo *mocks.MockUserRepository) {},
			wantErr:   ErrMissingRequiredData,
			wantCode:  apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockUserRepository(ctrl)
			tt.setup(repo)

			user, err := NewService(repo, authConfig).CreateUser(ctx, tt.requester, tt.request)

			if tt.wantErr != nil {
				assertAuthError(t, err, tt.wantErr, tt.wantCode)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 10, user.ID)
			assert.Empty(t, user.PasswordHash)
		})
	}
}

func TestService_GetUser(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	service := NewService(repo, authConfig)

	repo.EXPECT().GetUserByID(ctx, 7).Return(&domain.User{ID: 7, PasswordHash: "hash"}, nil)
	user, err := service.GetUser(ctx, client, 7)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)

	_, err = service.GetUser(ctx, client, 8)
	assertAuthError(t, err, ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege)

	repo.EXPECT().GetUserByID(ctx, 99).Return(nil, nil)
	_, err = service.GetUser(ctx, admin, 99)
	assertAuthError(t, err, ErrUserNotFound, apiErrors.ErrUserNotFound)
}

func TestService_UpdateUser(t *testing.T) {
	ctx := context.Background()
	newName := "Ana Paula"
	newPassword := "Nova@Senha1"
	role := domain.RoleSupervisor
	inactive := false

	tests := []struct {
		name      string
		requester domain.Requester
		request   *domain.UpdateUserRequest
		setup     func(repo *mocks.MockUserRepository)
		wantErr   error
		wantCode  string
	}{
		{
			name:      "Usuário altera o próprio nome e senha",
			requester: client,
			request:   &domain.UpdateUserRequest{ID: 7, Name: &newName, Password: &newPassword},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(ctx, 7).Return(&domain.User{ID: 7, Name: "Ana", Active: true, RoleID: domain.RoleClient, PasswordHash: "antigo"}, nil)
				repo.EXPECT().UpdateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) error {
					assert.Equal(t, "Ana Paula", user.Name)
					assert.True(t, user.Active)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(newPassword)))
					return nil
				})
			},
		},
		{
			name:      "Sem nova senha o hash vai vazio",
			requester: admin,
			request:   &domain.UpdateUserRequest{ID: 7, RoleID: &role, Active: &inactive},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(ctx, 7).Return(&domain.User{ID: 7, Active: true, RoleID: domain.RoleClient, PasswordHash: "antigo"}, nil)
				repo.EXPECT().UpdateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) error {
					assert.Empty(t, user.PasswordHash)
					assert.Equal(t, domain.RoleSupervisor, user.RoleID)
					assert.False(t, user.Active)
					return nil
				})
			},
		},
		{
			name:      "Cliente não altera o próprio perfil",
			requester: client,
			request:   &domain.UpdateUserRequest{ID: 7, RoleID: &role},
			setup:     func(repo *mocks.MockUserRepository) {},
			wantErr:   ErrInsufficientPrivilege,
			wantCode:  apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:      "Cliente não altera outro usuário",
			requester: client,
			request:   &domain.UpdateUserRequest{ID: 8, Name: &newName},
			setup:     func(repo *mocks.MockUserRepository) {},
			wantErr:   ErrInsufficientPrivilege,
			wantCode:  apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:      "Usuário inexistente",
			requester: admin,
			request:   &domain.UpdateUserRequest{ID: 50, Name: &newName},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(ctx, 50).Return(nil, nil)
			},
			wantErr:  ErrUserNotFound,
			wantCode: apiErrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockUserRepository(ctrl)
			tt.setup(repo)

			user, err := NewService(repo, authConfig).UpdateUser(ctx, tt.requester, tt.request)

			if tt.wantErr != nil {
				assertAuthError(t, err, tt.wantErr, tt.wantCode)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Empty(t, user.PasswordHash)
		})
	}
}

func TestService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	service := NewService(repo, authConfig)

	repo.EXPECT().GetUserByID(ctx, 7).Return(&domain.User{ID: 7}, nil)
	repo.EXPECT().DeleteUser(ctx, 7).Return(nil)
	require.NoError(t, service.DeleteUser(ctx, admin, 7))

	assertAuthError(t, service.DeleteUser(ctx, client, 8), ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege)
	assertAuthError(t, service.DeleteUser(ctx, admin, 1), ErrCannotDeleteSelf, apiErrors.ErrInvalidRequest)
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "Senha forte", password: validPassword, valid: true},
		{name: "Curta", password: "A@1a", valid: false},
		{name: "Sem maiúscula", password: "senha@123", valid: false},
		{name: "Sem especial", password: "Senha1234", valid: false},
		{name: "Sem número", password: "Senha@abc", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
