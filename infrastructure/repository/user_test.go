package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

func TestUserRepository_GetUserByEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		expected *domain.User
		wantErr  bool
	}{
		{
			name: "Usuário encontrado",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, email, password_hash, active, role_id, created_at, updated_at FROM users WHERE deleted = \$1 AND email = \$2`).
					WithArgs(false, "ana@example.com").
					WillReturnRows(sqlmock.NewRows(userColumns).
						AddRow(1, "Ana", "ana@example.com", "hash", true, domain.RoleAdmin, now, now))
			},
			expected: &domain.User{ID: 1, Name: "Ana", Email: "ana@example.com", PasswordHash: "hash", Active: true, RoleID: domain.RoleAdmin, CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "Usuário inexistente retorna nil sem erro",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM users`).WillReturnRows(sqlmock.NewRows(userColumns))
			},
			expected: nil,
		},
		{
			name: "Erro do banco é propagado",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM users`).WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMock(t)
			tt.setup(mock)

			user, err := NewUserRepository(conn).GetUserByEmail(ctx, "ana@example.com")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, user)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_CreateUser(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Usuário criado", func(t *testing.T) {
		conn, mock := newMock(t)
		mock.ExpectQuery(`INSERT INTO users \(name,email,password_hash,active,role_id\)`).
			WithArgs("Ana", "ana@example.com", "hash", true, domain.RoleClient).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(5, now, now))

		user, err := NewUserRepository(conn).CreateUser(ctx, &domain.User{
			Name: "Ana", Email: "ana@example.com", PasswordHash: "hash", Active: true, RoleID: domain.RoleClient,
		})

		require.NoError(t, err)
		assert.Equal(t, 5, user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Email duplicado", func(t *testing.T) {
		conn, mock := newMock(t)
		mock.ExpectQuery(`INSERT INTO users`).WillReturnError(&pq.Error{Code: "23505"})

		user, err := NewUserRepository(conn).CreateUser(ctx, &domain.User{Email: "ana@example.com"})

		assert.ErrorIs(t, err, ErrDuplicate)
		assert.Nil(t, user)
	})
}

func TestUserRepository_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	conn, mock := newMock(t)
	repo := NewUserRepository(conn)

	mock.ExpectQuery(`FROM users WHERE deleted = \$1 ORDER BY name ASC`).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "Ana", "ana@example.com", "hash", true, domain.RoleAdmin, now, now).
			AddRow(2, "Bruno", "bruno@example.com", "hash", true, domain.RoleClient, now, now))
	mock.ExpectExec(`UPDATE users SET deleted = \$1, deleted_at = \$2, active = \$3, updated_at = \$4 WHERE deleted = \$5 AND id = \$6`).
		WithArgs(true, sqlmock.AnyArg(), false, sqlmock.AnyArg(), false, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Empty(t, users[0].PasswordHash)

	require.NoError(t, repo.DeleteUser(ctx, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
