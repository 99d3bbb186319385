package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/avkrasnov/delivery-store/internal/platform/logger"
	"github.com/avkrasnov/delivery-store/internal/review/domain"
)

var ErrUnknownArticle = errors.New("review references unknown article")

type ReviewRepository interface {
	AddReview(ctx context.Context, review *domain.Review) error
	ListByArticle(ctx context.Context, article int64) ([]domain.Review, error)
	ListByLogin(ctx context.Context, login string) ([]domain.UserReview, error)
}

type postgresReviewRepository struct {
	db *sql.DB
}

func NewPostgresReviewRepository(db *sql.DB) ReviewRepository {
	return &postgresReviewRepository{db: db}
}

func (r *postgresReviewRepository) AddReview(ctx context.Context, review *domain.Review) error {
	query := `INSERT INTO reviews (article, login, review_text, review_date, rating)
              VALUES ($1, $2, $3, $4, $5)`
	review.ReviewDate = time.Now()
	_, err := r.db.ExecContext(ctx, query, review.Article, review.Login, review.Text, review.ReviewDate, review.Rating)
	if err != nil {
		// 23503 foreign_key_violation: the article does not exist
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrUnknownArticle
		}
		logger.Error("AddReview: exec failed", err)
		return err
	}
	return nil
}

func (r *postgresReviewRepository) ListByArticle(ctx context.Context, article int64) ([]domain.Review, error) {
	query := `SELECT login, article, review_text, rating, review_date
              FROM reviews WHERE article = $1 ORDER BY review_date DESC`
	rows, err := r.db.QueryContext(ctx, query, article)
	if err != nil {
		logger.Error("ListByArticle: query failed", err)
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.Login, &rv.Article, &rv.Text, &rv.Rating, &rv.ReviewDate); err != nil {
			logger.Error("ListByArticle: scan failed", err)
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *postgresReviewRepository) ListByLogin(ctx context.Context, login string) ([]domain.UserReview, error) {
	query := `SELECT r.review_text, r.rating, r.review_date, p.name
              FROM reviews r
              JOIN products p ON r.article = p.article
              WHERE r.login = $1 ORDER BY r.review_date DESC`
	rows, err := r.db.QueryContext(ctx, query, login)
	if err != nil {
		logger.Error("ListByLogin: query failed", err)
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.UserReview{}
	for rows.Next() {
		var rv domain.UserReview
		if err := rows.Scan(&rv.Text, &rv.Rating, &rv.ReviewDate, &rv.ProductName); err != nil {
			logger.Error("ListByLogin: scan failed", err)
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
