package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type Authenticator interface {
	LoginUser(ctx context.Context, email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUserProfile(ctx context.Context, userID int) (*domain.User, error)
	CreateUser(ctx context.Context, requester domain.Requester, request *domain.CreateUserRequest) (*domain.User, error)
	ListUsers(ctx context.Context, requester domain.Requester) ([]*domain.User, error)
	GetUser(ctx context.Context, requester domain.Requester, userID int) (*domain.User, error)
	UpdateUser(ctx context.Context, requester domain.Requester, request *domain.UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, requester domain.Requester, userID int) error
}

type Service struct {
	userRepo repository.UserRepository
	cfg      config.Auth
}

func NewService(userRepo repository.UserRepository, cfg config.Auth) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, handleEmail(email))
	if err != nil {
		logrus.WithError(err).Error("authenticating: failed to get user by email")
		return "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	// Usuário inexistente responde como senha errada
	if user == nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("authenticating: failed to sign token")
		return "", NewUserAuthError(err, apiErrors.ErrInternalServer, user.ID, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	tokenID, err := gonanoid.New()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenExpire)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("authenticating: failed to get user")
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Erro ao buscar usuário")
	}
	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) CreateUser(ctx context.Context, requester domain.Requester, request *domain.CreateUserRequest) (*domain.User, error) {
	if !requester.IsAdmin() {
		return nil, NewAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem cadastrar usuários")
	}

	email := handleEmail(request.Email)
	name := strings.TrimSpace(request.Name)
	if email == "" || name == "" || request.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, nome e senha são obrigatórios")
	}

	roleID := request.RoleID
	if roleID == 0 {
		roleID = domain.RoleClient
	}
	if !validRole(roleID) {
		return nil, NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidRequest, fmt.Sprintf("role_id %d", roleID))
	}

	if err := ValidatePasswordStrength(request.Password); err != nil {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, err.Error())
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		logrus.WithError(err).Error("authenticating: failed to check email")
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao processar senha")
	}

	active := true
	if request.Active != nil {
		active = *request.Active
	}

	user, err := s.userRepo.CreateUser(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Active:       active,
		RoleID:       roleID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
		}
		logrus.WithError(err).Error("authenticating: failed to create user")
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role_id": user.RoleID,
	}).Info("authenticating: user created")

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context, requester domain.Requester) ([]*domain.User, error) {
	if !requester.IsAdmin() {
		return nil, NewAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, "")
	}

	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		logrus.WithError(err).Error("authenticating: failed to list users")
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários")
	}

	return users, nil
}

// GetUser: o próprio usuário ou um administrador
func (s *Service) GetUser(ctx context.Context, requester domain.Requester, userID int) (*domain.User, error) {
	if !requester.CanAccess(userID) {
		return nil, NewUserAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, userID, "")
	}

	return s.GetUserProfile(ctx, userID)
}

// UpdateUser aplica apenas os campos informados. Perfil e situação só mudam por administradores.
func (s *Service) UpdateUser(ctx context.Context, requester domain.Requester, request *domain.UpdateUserRequest) (*domain.User, error) {
	if !requester.CanAccess(request.ID) {
		return nil, NewUserAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, request.ID, "")
	}
	if !requester.IsAdmin() && (request.RoleID != nil || request.Active != nil) {
		return nil, NewUserAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, request.ID, "Apenas administradores alteram perfil e situação")
	}

	user, err := s.userRepo.GetUserByID(ctx, request.ID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", request.ID).Error("authenticating: failed to get user")
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Erro ao buscar usuário")
	}
	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, request.ID, "")
	}

	// Hash vazio mantém a senha atual no repositório
	user.PasswordHash = ""

	if request.Name != nil {
		if name := strings.TrimSpace(*request.Name); name != "" {
			user.Name = name
		}
	}
	if request.Email != nil {
		if email := handleEmail(*request.Email); email != "" {
			user.Email = email
		}
	}
	if request.RoleID != nil {
		if !validRole(*request.RoleID) {
			return nil, NewUserAuthError(ErrInvalidRole, apiErrors.ErrInvalidRequest, request.ID, fmt.Sprintf("role_id %d", *request.RoleID))
		}
		user.RoleID = *request.RoleID
	}
	if request.Active != nil {
		user.Active = *request.Active
	}
	if request.Password != nil && *request.Password != "" {
		if err := ValidatePasswordStrength(*request.Password); err != nil {
			return nil, NewUserAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, request.ID, err.Error())
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, NewUserAuthError(err, apiErrors.ErrInternalServer, request.ID, "Erro ao processar senha")
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewUserAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, request.ID, "Email já cadastrado")
		}
		logrus.WithError(err).WithField("user_id", request.ID).Error("authenticating: failed to update user")
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Erro ao atualizar usuário")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, requester domain.Requester, userID int) error {
	if !requester.IsAdmin() {
		return NewUserAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, userID, "")
	}
	if requester.UserID == userID {
		return NewUserAuthError(ErrCannotDeleteSelf, apiErrors.ErrInvalidRequest, userID, "")
	}

	if _, err := s.GetUserProfile(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("authenticating: failed to delete user")
		return NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Erro ao remover usuário")
	}

	return nil
}

// ValidatePasswordStrength exige ao menos 8 caracteres com maiúscula, minúscula, número e caractere especial
func ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("a senha deve conter pelo menos %d caracteres", minPasswordLength)
	}

	const (
		lowerChars   = "abcdefghijklmnopqrstuvwxyz"
		upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numberChars  = "0123456789"
		specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
	)

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return errors.New("a senha deve conter pelo menos uma letra maiúscula")
	case !hasLower:
		return errors.New("a senha deve conter pelo menos uma letra minúscula")
	case !hasNumber:
		return errors.New("a senha deve conter pelo menos um número")
	case !hasSpecial:
		return errors.New("a senha deve conter pelo menos um caractere especial")
	}

	return nil
}

func validRole(roleID int) bool {
	return roleID == domain.RoleAdmin || roleID == domain.RoleSupervisor || roleID == domain.RoleClient
}

func handleEmail(s string) string {
	email := strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(email, " ", "")
}
