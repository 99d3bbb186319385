package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/avkrasnov/delivery-store/internal/favorite/domain"
	"github.com/avkrasnov/delivery-store/internal/platform/logger"
)

var (
	ErrAlreadyFavorite = errors.New("product is already in favorites")
	ErrUnknownArticle  = errors.New("favorite references unknown article")
)

type FavoriteRepository interface {
	Add(ctx context.Context, login string, article int64) error
	ListByLogin(ctx context.Context, login string) ([]domain.FavoriteProduct, error)
	ListEntriesByLogin(ctx context.Context, login string) ([]domain.FavoriteEntry, error)
	Remove(ctx context.Context, login string, article int64) error
}

type postgresFavoriteRepository struct {
	db *sql.DB
}

func NewPostgresFavoriteRepository(db *sql.DB) FavoriteRepository {
	return &postgresFavoriteRepository{db: db}
}

func (r *postgresFavoriteRepository) Add(ctx context.Context, login string, article int64) error {
	query := `INSERT INTO favorite_products (login, article, added_date) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, login, article, time.Now())
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505": // unique_violation
				return ErrAlreadyFavorite
			case "23503": // foreign_key_violation
				return ErrUnknownArticle
			}
		}
		logger.Error("Favorite Add: exec failed", err)
		return err
	}
	return nil
}

func (r *postgresFavoriteRepository) ListByLogin(ctx context.Context, login string) ([]domain.FavoriteProduct, error) {
	query := `SELECT p.article, p.name, p.price, COALESCE(c.category, '')
              FROM favorite_products f
              JOIN products p ON f.article = p.article
              LEFT JOIN product_categories c ON p.category_id = c.category_id
              WHERE f.login = $1 ORDER BY f.added_date DESC`
	rows, err := r.db.QueryContext(ctx, query, login)
	if err != nil {
		logger.Error("Favorite ListByLogin: query failed", err)
		return nil, err
	}
	defer rows.Close()

	favorites := []domain.FavoriteProduct{}
	for rows.Next() {
		var f domain.FavoriteProduct
		if err := rows.Scan(&f.Article, &f.Name, &f.Price, &f.Category); err != nil {
			logger.Error("Favorite ListByLogin: scan failed", err)
			return nil, err
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

func (r *postgresFavoriteRepository) ListEntriesByLogin(ctx context.Context, login string) ([]domain.FavoriteEntry, error) {
	query := `SELECT p.name, f.article, f.added_date
              FROM favorite_products f
              JOIN products p ON f.article = p.article
              WHERE f.login = $1 ORDER BY f.added_date DESC`
	rows, err := r.db.QueryContext(ctx, query, login)
	if err != nil {
		logger.Error("Favorite ListEntriesByLogin: query failed", err)
		return nil, err
	}
	defer rows.Close()

	entries := []domain.FavoriteEntry{}
	for rows.Next() {
		var e domain.FavoriteEntry
		if err := rows.Scan(&e.ProductName, &e.Article, &e.AddedDate); err != nil {
			logger.Error("Favorite ListEntriesByLogin: scan failed", err)
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *postgresFavoriteRepository) Remove(ctx context.Context, login string, article int64) error {
	query := `DELETE FROM favorite_products WHERE login = $1 AND article = $2`
	_, err := r.db.ExecContext(ctx, query, login, article)
	if err != nil {
		logger.Error("Favorite Remove: exec failed", err)
	}
	return err
}
