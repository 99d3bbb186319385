package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/avkrasnov/delivery-store/internal/order/domain"
	"github.com/avkrasnov/delivery-store/internal/platform/database"
	"github.com/avkrasnov/delivery-store/internal/platform/logger"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	// AppendOrder writes the order row and all its lines inside the caller's
	// transaction. The caller commits; nothing here is visible before that.
	AppendOrder(ctx context.Context, tx database.DBTX, order *domain.Order, lines []domain.OrderLine) error

	ListOrdersByLogin(ctx context.Context, login string) ([]domain.Order, error)
	GetOrderLines(ctx context.Context, orderID int64) ([]domain.OrderLine, error)
	CountPendingOlderThan(ctx context.Context, age time.Duration) (int, error)
}

type postgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) OrderRepository {
	return &postgresOrderRepository{db: db}
}

func (r *postgresOrderRepository) AppendOrder(ctx context.Context, tx database.DBTX, order *domain.Order, lines []domain.OrderLine) error {
	orderQuery := `INSERT INTO orders (login, order_date, status)
                   VALUES ($1, $2, $3) RETURNING order_id`

	err := tx.QueryRowContext(ctx, orderQuery, order.Login, order.OrderDate, order.Status).
		Scan(&order.ID)
	if err != nil {
		logger.Error("AppendOrder: failed to insert order", err)
		return err
	}

	lineStmt, err := tx.PrepareContext(ctx, `INSERT INTO order_lines (order_id, article, quantity, price)
                                            VALUES ($1, $2, $3, $4) RETURNING id`)
	if err != nil {
		logger.Error("AppendOrder: failed to prepare line statement", err)
		return err
	}
	defer lineStmt.Close()

	for i := range lines {
		lines[i].OrderID = order.ID
		err = lineStmt.QueryRowContext(ctx, lines[i].OrderID, lines[i].Article, lines[i].Quantity, lines[i].Price).
			Scan(&lines[i].ID)
		if err != nil {
			logger.Error("AppendOrder: failed to insert order line", err, lines[i].Article)
			return err
		}
	}
	order.Lines = lines
	return nil
}

func (r *postgresOrderRepository) ListOrdersByLogin(ctx context.Context, login string) ([]domain.Order, error) {
	query := `SELECT order_id, login, order_date, status FROM orders
              WHERE login = $1 ORDER BY order_date DESC`
	rows, err := r.db.QueryContext(ctx, query, login)
	if err != nil {
		logger.Error("ListOrdersByLogin: query failed", err)
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.Login, &o.OrderDate, &o.Status); err != nil {
			logger.Error("ListOrdersByLogin: scan failed", err)
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *postgresOrderRepository) GetOrderLines(ctx context.Context, orderID int64) ([]domain.OrderLine, error) {
	query := `SELECT id, order_id, article, quantity, price FROM order_lines WHERE order_id = $1`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		logger.Error("GetOrderLines: query failed", err)
		return nil, err
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var l domain.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.Article, &l.Quantity, &l.Price); err != nil {
			logger.Error("GetOrderLines: scan failed", err)
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *postgresOrderRepository) CountPendingOlderThan(ctx context.Context, age time.Duration) (int, error) {
	query := `SELECT COUNT(*) FROM orders WHERE status = $1 AND order_date < $2`
	threshold := time.Now().Add(-age)
	var count int
	if err := r.db.QueryRowContext(ctx, query, domain.StatusPending, threshold).Scan(&count); err != nil {
		logger.Error("CountPendingOlderThan: query failed", err)
		return 0, err
	}
	return count, nil
}
