package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avkrasnov/delivery-store/internal/catalog/domain"
	"github.com/avkrasnov/delivery-store/internal/platform/database"
	"github.com/avkrasnov/delivery-store/internal/platform/logger"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]string, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, article int64) (*domain.Product, error)

	// Stock operations run inside a caller-owned transaction. GetStockForUpdate
	// takes a row lock, so a sufficiency check followed by DecrementStock in the
	// same tx cannot race a concurrent batch on the same article.
	GetStockForUpdate(ctx context.Context, tx database.DBTX, article int64) (int, error)
	DecrementStock(ctx context.Context, tx database.DBTX, article int64, quantity int) error
}

type postgresCatalogRepository struct {
	db *sql.DB
}

func NewPostgresCatalogRepository(db *sql.DB) CatalogRepository {
	return &postgresCatalogRepository{db: db}
}

func (r *postgresCatalogRepository) ListCategories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM product_categories ORDER BY category ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListCategories: query failed", err)
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			logger.Error("ListCategories: scan failed", err)
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *postgresCatalogRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	query := `SELECT p.article, p.name, c.store_name, c.category, p.price, p.stock, p.released
              FROM products p
              LEFT JOIN product_categories c ON p.category_id = c.category_id
              WHERE p.released = TRUE`
	args := []interface{}{}
	if filter.Category != "" {
		query += ` AND c.category = $1`
		args = append(args, filter.Category)
	}
	query += ` ORDER BY p.article ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("ListProducts: query failed", err)
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		var storeName, category sql.NullString
		if err := rows.Scan(&p.Article, &p.Name, &storeName, &category, &p.Price, &p.Stock, &p.Released); err != nil {
			logger.Error("ListProducts: scan failed", err)
			return nil, err
		}
		p.StoreName = storeName.String
		p.Category = category.String
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresCatalogRepository) GetProduct(ctx context.Context, article int64) (*domain.Product, error) {
	query := `SELECT p.article, p.name, pc.store_name, pc.category, p.price, p.stock, p.released
              FROM products p
              JOIN product_categories pc ON p.category_id = pc.category_id
              WHERE p.article = $1`
	var p domain.Product
	err := r.db.QueryRowContext(ctx, query, article).Scan(
		&p.Article, &p.Name, &p.StoreName, &p.Category, &p.Price, &p.Stock, &p.Released,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		logger.Error("GetProduct: query failed", err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresCatalogRepository) GetStockForUpdate(ctx context.Context, tx database.DBTX, article int64) (int, error) {
	query := `SELECT stock FROM products WHERE article = $1 FOR UPDATE`
	var stock int
	err := tx.QueryRowContext(ctx, query, article).Scan(&stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrProductNotFound
		}
		logger.Error("GetStockForUpdate: query failed", err)
		return 0, err
	}
	return stock, nil
}

// DecrementStock is conditional on the current value: the WHERE clause keeps
// stock from going negative even if the caller's sufficiency check was skipped.
func (r *postgresCatalogRepository) DecrementStock(ctx context.Context, tx database.DBTX, article int64, quantity int) error {
	query := `UPDATE products SET stock = stock - $1 WHERE article = $2 AND stock >= $1`
	res, err := tx.ExecContext(ctx, query, quantity, article)
	if err != nil {
		logger.Error("DecrementStock: exec failed", err)
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}
