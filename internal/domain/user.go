package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleClient     = 3
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	Deleted      bool       `json:"-"`
	DeletedAt    *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.RoleID == RoleAdmin
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`
	Active   *bool  `json:"active"`
}

type UpdateUserRequest struct {
	ID       int     `json:"-"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Active   *bool   `json:"active"`
	RoleID   *int    `json:"role_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Requester é quem faz a requisição, extraído do token
type Requester struct {
	UserID int
	RoleID int
}

func (r Requester) IsAdmin() bool {
	return r.RoleID == RoleAdmin
}

// CanAccess indica se o solicitante pode agir sobre recursos do usuário ownerID
func (r Requester) CanAccess(ownerID int) bool {
	return r.IsAdmin() || r.UserID == ownerID
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}

func (c *Claims) Requester() Requester {
	return Requester{UserID: c.UserID, RoleID: c.UserRoleID}
}
