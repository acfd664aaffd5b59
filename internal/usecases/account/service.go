package account

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
)

type AccountService interface {
	ListAccounts(ctx context.Context, requester domain.Requester, platform domain.Platform) ([]*domain.AdAccountResponse, error)
	CreateAccount(ctx context.Context, requester domain.Requester, request *domain.CreateAdAccountRequest) (*domain.AdAccountResponse, error)
	GetAccount(ctx context.Context, requester domain.Requester, platform domain.Platform, accountID int) (*domain.AdAccountResponse, error)
	UpdateAccount(ctx context.Context, requester domain.Requester, request *domain.UpdateAdAccountRequest) (*domain.AdAccountResponse, error)
	DeleteAccount(ctx context.Context, requester domain.Requester, platform domain.Platform, accountID int) error
	ResolveAccount(ctx context.Context, requester domain.Requester, platform domain.Platform, accountID int) (*domain.AdAccount, error)
}

type Service struct {
	accountRepository repository.AdAccountRepository
	userRepository    repository.UserRepository
}

func NewService(
	accountRepository repository.AdAccountRepository,
	userRepository repository.UserRepository,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		userRepository:    userRepository,
	}
}

// ListAccounts: administradores veem todas as contas da plataforma, os demais apenas as próprias
func (s *Service) ListAccounts(ctx context.Context, requester domain.Requester, platform domain.Platform) ([]*domain.AdAccountResponse, error) {
	if !platform.Valid() {
		return nil, NewAccountError(ErrInvalidPlatform, apiErrors.ErrInvalidRequest, string(platform))
	}

	var owner *int
	if !requester.IsAdmin() {
		owner = &requester.UserID
	}

	accounts, err := s.accountRepository.ListAccounts(ctx, platform, owner)
	if err != nil {
		logrus.WithError(err).WithField("platform", platform).Error("account: failed to list accounts")
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	response := make([]*domain.AdAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, account.ToResponse())
	}

	return response, nil
}

func (s *Service) CreateAccount(ctx context.Context, requester domain.Requester, request *domain.CreateAdAccountRequest) (*domain.AdAccountResponse, error) {
	if !request.Platform.Valid() {
		return nil, NewAccountError(ErrInvalidPlatform, apiErrors.ErrInvalidRequest, string(request.Platform))
	}

	externalID := NormalizeExternalID(request.Platform, request.ExternalID)
	name := strings.TrimSpace(request.Name)
	credential := strings.TrimSpace(request.Credential)
	if externalID == "" || name == "" || credential == "" {
		return nil, NewAccountError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "external_id, name e credential são obrigatórios")
	}

	ownerID := request.UserID
	if ownerID == 0 {
		ownerID = requester.UserID
	}
	if !requester.CanAccess(ownerID) {
		return nil, NewAccountError(ErrNotOwner, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem cadastrar contas para outros usuários")
	}

	if ownerID != requester.UserID {
		owner, err := s.userRepository.GetUserByID(ctx, ownerID)
		if err != nil {
			return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar usuário")
		}
		if owner == nil {
			return nil, NewAccountError(ErrOwnerNotFound, apiErrors.ErrInvalidRequest, "Usuário informado não existe")
		}
	}

	account, err := s.accountRepository.CreateAccount(ctx, &domain.AdAccount{
		Platform:   request.Platform,
		ExternalID: externalID,
		Name:       name,
		Credential: credential,
		UserID:     ownerID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewAccountError(ErrAccountAlreadyExists, apiErrors.ErrAccountAlreadyExists, externalID)
		}
		logrus.WithError(err).WithField("external_id", externalID).Error("account: failed to create account")
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao cadastrar conta")
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"platform":   account.Platform,
		"user_id":    account.UserID,
	}).Info("account: account created")

	return account.ToResponse(), nil
}

func (s *Service) GetAccount(ctx context.Context, requester domain.Requester, platform domain.Platform, accountID int) (*domain.AdAccountResponse, error) {
	account, err := s.ResolveAccount(ctx, requester, platform, accountID)
	if err != nil {
		return nil, err
	}
	return account.ToResponse(), nil
}

// UpdateAccount altera apenas os campos informados
func (s *Service) UpdateAccount(ctx context.Context, requester domain.Requester, request *domain.UpdateAdAccountRequest) (*domain.AdAccountResponse, error) {
	account, err := s.ResolveAccount(ctx, requester, request.Platform, request.ID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		if name := strings.TrimSpace(*request.Name); name != "" {
			account.Name = name
		}
	}
	if request.Credential != nil {
		if credential := strings.TrimSpace(*request.Credential); credential != "" {
			account.Credential = credential
		}
	}

	if err := s.accountRepository.UpdateAccount(ctx, account); err != nil {
		logrus.WithError(err).WithField("account_id", account.ID).Error("account: failed to update account")
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, account.ID, "Falha ao atualizar conta")
	}

	return account.ToResponse(), nil
}

func (s *Service) DeleteAccount(ctx context.Context, requester domain.Requester, platform domain.Platform, accountID int) error {
	if _, err := s.ResolveAccount(ctx, requester, platform, accountID); err != nil {
		return err
	}

	if err := s.accountRepository.DeleteAccount(ctx, platform, accountID); err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("account: failed to delete account")
		return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao remover conta")
	}

	return nil
}

// ResolveAccount devolve a conta com a credencial, verificando plataforma e dono
func (s *Service) ResolveAccount(ctx context.Context, requester domain.Requester, platform domain.Platform, accountID int) (*domain.AdAccount, error) {
	if !platform.Valid() {
		return nil, NewAccountError(ErrInvalidPlatform, apiErrors.ErrInvalidRequest, string(platform))
	}

	account, err := s.accountRepository.GetAccountByID(ctx, platform, accountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("account: failed to get account")
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao consultar conta")
	}
	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrAccountNotFound, accountID, "")
	}

	if !requester.CanAccess(account.UserID) {
		return nil, NewAccountErrorWithID(ErrNotOwner, apiErrors.ErrInsufficientPrivilege, accountID, "")
	}

	return account, nil
}

// NormalizeExternalID remove a formatação de exibição do identificador da plataforma
func NormalizeExternalID(platform domain.Platform, externalID string) string {
	switch platform {
	case domain.PlatformGoogleAds:
		return googleadsclient.NormalizeCustomerID(externalID)
	case domain.PlatformMetaAds:
		return metaclient.NormalizeAccountID(externalID)
	default:
		return strings.TrimSpace(externalID)
	}
}
