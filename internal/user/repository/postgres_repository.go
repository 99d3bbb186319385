package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avkrasnov/delivery-store/internal/platform/logger"
	"github.com/avkrasnov/delivery-store/internal/user/domain"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
)

type UserRepository interface {
	GetUserByLogin(ctx context.Context, login string) (*domain.User, error)
	GetProfile(ctx context.Context, login string) (*domain.Profile, error)
	UpdateDescription(ctx context.Context, login, description string) error
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `SELECT login, password_hash FROM users WHERE login = $1`
	user := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, login).Scan(&user.Login, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Error("GetUserByLogin: query failed", err)
		return nil, err
	}
	return user, nil
}

func (r *postgresUserRepository) GetProfile(ctx context.Context, login string) (*domain.Profile, error) {
	query := `SELECT login, name, birth_date, address, phone_number, secret
              FROM user_personal_info WHERE login = $1`
	p := &domain.Profile{}
	var birthDate, address, phone, description sql.NullString
	err := r.db.QueryRowContext(ctx, query, login).Scan(
		&p.Login, &p.Name, &birthDate, &address, &phone, &description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		logger.Error("GetProfile: query failed", err)
		return nil, err
	}
	if birthDate.Valid {
		p.BirthDate = &birthDate.String
	}
	if address.Valid {
		p.Address = &address.String
	}
	if phone.Valid {
		p.Phone = &phone.String
	}
	if description.Valid {
		p.Description = &description.String
	}
	return p, nil
}

func (r *postgresUserRepository) UpdateDescription(ctx context.Context, login, description string) error {
	query := `UPDATE user_personal_info SET secret = $1 WHERE login = $2`
	res, err := r.db.ExecContext(ctx, query, description, login)
	if err != nil {
		logger.Error("UpdateDescription: exec failed", err)
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
