package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

const adAccountsTable = "ad_accounts"

var adAccountColumns = []string{"id", "platform", "external_id", "name", "credential", "user_id", "created_at", "updated_at"}

type AdAccountRepository interface {
	CreateAccount(ctx context.Context, account *domain.AdAccount) (*domain.AdAccount, error)
	UpdateAccount(ctx context.Context, account *domain.AdAccount) error
	GetAccountByID(ctx context.Context, platform domain.Platform, accountID int) (*domain.AdAccount, error)
	ListAccounts(ctx context.Context, platform domain.Platform, userID *int) ([]*domain.AdAccount, error)
	DeleteAccount(ctx context.Context, platform domain.Platform, accountID int) error
}

type adAccountRepository struct {
	conn postgres.Queryer
}

func NewAdAccountRepository(conn postgres.Queryer) AdAccountRepository {
	return &adAccountRepository{
		conn: conn,
	}
}

// CreateAccount retorna ErrDuplicate quando a conta já existe na plataforma
func (r *adAccountRepository) CreateAccount(ctx context.Context, account *domain.AdAccount) (*domain.AdAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Insert(adAccountsTable).
		Columns("platform", "external_id", "name", "credential", "user_id").
		Values(account.Platform, account.ExternalID, account.Name, account.Credential, account.UserID).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build insert ad account")
	}

	err = r.conn.QueryRowContext(ctx, accountsSQL, accountsArgs...).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, errors.Wrap(err, "insert ad account")
	}

	return account, nil
}

func (r *adAccountRepository) UpdateAccount(ctx context.Context, account *domain.AdAccount) error {
	accountsSQL, accountsArgs, err := squirrel.
		Update(adAccountsTable).
		Set("name", account.Name).
		Set("credential", account.Credential).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": account.ID, "platform": account.Platform}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build update ad account")
	}

	if _, err := r.conn.ExecContext(ctx, accountsSQL, accountsArgs...); err != nil {
		return errors.Wrap(err, "update ad account")
	}

	return nil
}

// GetAccountByID retorna nil, nil quando a conta não existe na plataforma informada
func (r *adAccountRepository) GetAccountByID(ctx context.Context, platform domain.Platform, accountID int) (*domain.AdAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select(adAccountColumns...).
		From(adAccountsTable).
		Where(squirrel.Eq{"id": accountID, "platform": platform}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build select ad account")
	}

	account, err := deserializeAccount(r.conn.QueryRowContext(ctx, accountsSQL, accountsArgs...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "select ad account")
	}

	return account, nil
}

// ListAccounts com userID nil lista todas as contas da plataforma
func (r *adAccountRepository) ListAccounts(ctx context.Context, platform domain.Platform, userID *int) ([]*domain.AdAccount, error) {
	where := squirrel.Eq{"platform": platform}
	if userID != nil {
		where["user_id"] = *userID
	}

	accountsSQL, accountsArgs, err := squirrel.
		Select(adAccountColumns...).
		From(adAccountsTable).
		Where(where).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build list ad accounts")
	}

	rows, err := r.conn.QueryContext(ctx, accountsSQL, accountsArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "list ad accounts")
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		account, err := deserializeAccount(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan ad account")
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate ad accounts")
	}

	return accounts, nil
}

func (r *adAccountRepository) DeleteAccount(ctx context.Context, platform domain.Platform, accountID int) error {
	accountsSQL, accountsArgs, err := squirrel.
		Delete(adAccountsTable).
		Where(squirrel.Eq{"id": accountID, "platform": platform}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build delete ad account")
	}

	if _, err := r.conn.ExecContext(ctx, accountsSQL, accountsArgs...); err != nil {
		return errors.Wrap(err, "delete ad account")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func deserializeAccount(row scanner) (*domain.AdAccount, error) {
	acc := &domain.AdAccount{}

	if err := row.Scan(
		&acc.ID,
		&acc.Platform,
		&acc.ExternalID,
		&acc.Name,
		&acc.Credential,
		&acc.UserID,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return acc, nil
}
