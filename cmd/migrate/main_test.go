package main

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedAdmin(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		setupMock   func(repo *mocks.MockUserRepository)
		expectedErr bool
	}{
		{
			name:     "Cria administrador",
			email:    " Admin@Example.com ",
			password: "Senha@123",
			setupMock: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "admin@example.com").Return(nil, nil)
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
						assert.Equal(t, domain.RoleAdmin, user.RoleID)
						assert.True(t, user.Active)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha@123")))
						user.ID = 1
						return user, nil
					})
			},
		},
		{
			name:     "Administrador existente não é alterado",
			email:    "admin@example.com",
			password: "Senha@123",
			setupMock: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "admin@example.com").Return(&domain.User{ID: 1}, nil)
			},
		},
		{
			name:        "Senha fraca",
			email:       "admin@example.com",
			password:    "123",
			setupMock:   func(repo *mocks.MockUserRepository) {},
			expectedErr: true,
		},
		{
			name:        "Sem e-mail",
			password:    "Senha@123",
			setupMock:   func(repo *mocks.MockUserRepository) {},
			expectedErr: true,
		},
		{
			name:     "Falha no banco",
			email:    "admin@example.com",
			password: "Senha@123",
			setupMock: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "admin@example.com").Return(nil, errors.New("conn reset"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockUserRepository(ctrl)
			tt.setupMock(repo)

			err := seedAdmin(context.Background(), repo, "Admin", tt.email, tt.password)

			if tt.expectedErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
