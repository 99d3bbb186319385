package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/avkrasnov/delivery-store/internal/cart/domain"
	"github.com/avkrasnov/delivery-store/internal/platform/logger"
)

var ErrUnknownArticle = errors.New("cart line references unknown article")

type CartRepository interface {
	Add(ctx context.Context, login string, article int64, quantity int) error
	ListByLogin(ctx context.Context, login string) ([]domain.CartLine, error)
	Remove(ctx context.Context, login string, article int64) error
}

type postgresCartRepository struct {
	db *sql.DB
}

func NewPostgresCartRepository(db *sql.DB) CartRepository {
	return &postgresCartRepository{db: db}
}

// Add upserts: adding the same article again bumps its quantity.
func (r *postgresCartRepository) Add(ctx context.Context, login string, article int64, quantity int) error {
	query := `INSERT INTO shopping_cart (login, article, quantity)
              VALUES ($1, $2, $3)
              ON CONFLICT (login, article) DO UPDATE SET
              quantity = shopping_cart.quantity + EXCLUDED.quantity`
	_, err := r.db.ExecContext(ctx, query, login, article, quantity)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" { // foreign_key_violation
			return ErrUnknownArticle
		}
		logger.Error("Cart Add: exec failed", err)
		return err
	}
	return nil
}

func (r *postgresCartRepository) ListByLogin(ctx context.Context, login string) ([]domain.CartLine, error) {
	query := `SELECT p.article, p.name, p.price, sc.quantity
              FROM shopping_cart sc
              JOIN products p ON sc.article = p.article
              WHERE sc.login = $1 ORDER BY p.article ASC`
	rows, err := r.db.QueryContext(ctx, query, login)
	if err != nil {
		logger.Error("Cart ListByLogin: query failed", err)
		return nil, err
	}
	defer rows.Close()

	lines := []domain.CartLine{}
	for rows.Next() {
		var l domain.CartLine
		if err := rows.Scan(&l.Article, &l.Name, &l.Price, &l.Quantity); err != nil {
			logger.Error("Cart ListByLogin: scan failed", err)
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *postgresCartRepository) Remove(ctx context.Context, login string, article int64) error {
	query := `DELETE FROM shopping_cart WHERE login = $1 AND article = $2`
	_, err := r.db.ExecContext(ctx, query, login, article)
	if err != nil {
		logger.Error("Cart Remove: exec failed", err)
	}
	return err
}
