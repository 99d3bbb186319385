package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	catalogRepo "github.com/avkrasnov/delivery-store/internal/catalog/repository"
	"github.com/avkrasnov/delivery-store/internal/order/domain"
	"github.com/avkrasnov/delivery-store/internal/order/repository"
	"github.com/avkrasnov/delivery-store/internal/platform/database"
	"github.com/avkrasnov/delivery-store/internal/platform/events"
	"github.com/avkrasnov/delivery-store/internal/platform/logger"
)

var ErrEmptyBatch = errors.New("order batch must contain at least one line")

type OrderService interface {
	// PlaceOrder validates and commits a batch as one unit: either every line's
	// stock decrement and the order row become visible together, or none do.
	PlaceOrder(ctx context.Context, login string, req domain.PlaceOrderRequest) (*domain.Order, error)
	ListOrders(ctx context.Context, login string) ([]domain.Order, error)
	StopScheduler()
}

type orderService struct {
	orderRepo   repository.OrderRepository
	catalogRepo catalogRepo.CatalogRepository
	txBeginner  database.TxBeginner
	producer    *events.Producer
	scheduler   *cron.Cron
	staleAge    time.Duration
}

// NewOrderService wires the placement workflow. producer may be nil. A cron
// sweep logs how many orders have sat in pending longer than staleAge, as a
// visibility aid for fulfillment; the workflow itself never touches an order
// after creation.
func NewOrderService(or repository.OrderRepository, cr catalogRepo.CatalogRepository, txb database.TxBeginner, producer *events.Producer, staleAge time.Duration) OrderService {
	s := &orderService{
		orderRepo:   or,
		catalogRepo: cr,
		txBeginner:  txb,
		producer:    producer,
		scheduler:   cron.New(),
		staleAge:    staleAge,
	}
	s.initScheduler()
	return s
}

func (s *orderService) initScheduler() {
	spec := "*/5 * * * *"
	s.scheduler.AddFunc(spec, func() {
		count, err := s.orderRepo.CountPendingOlderThan(context.Background(), s.staleAge)
		if err != nil {
			logger.Error("Scheduler: failed to count stale pending orders", err)
			return
		}
		if count > 0 {
			logger.Warn("Scheduler: %d orders pending longer than %v", count, s.staleAge)
		}
	})
	s.scheduler.Start()
	logger.Info("Pending order sweep scheduled with spec '%s', stale age %v", spec, s.staleAge)
}

func (s *orderService) StopScheduler() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// validateLines checks the batch before anything is read from the store.
// The first bad line rejects the whole batch.
func validateLines(reqs []domain.PlaceOrderLineRequest) ([]domain.OrderLine, error) {
	lines := make([]domain.OrderLine, 0, len(reqs))
	for i, lr := range reqs {
		if lr.Article == nil || *lr.Article <= 0 {
			return nil, domain.NewInvalidLine(i, 0, "article is required")
		}
		if lr.Quantity == nil || *lr.Quantity <= 0 {
			return nil, domain.NewInvalidLine(i, *lr.Article, "quantity must be a positive integer")
		}
		if lr.Price == nil || *lr.Price <= 0 {
			return nil, domain.NewInvalidLine(i, *lr.Article, "price is required")
		}
		lines = append(lines, domain.OrderLine{
			Article:  *lr.Article,
			Quantity: *lr.Quantity,
			// The client-quoted price is the price of record. It is not
			// recomputed from the current catalog price.
			Price: *lr.Price,
		})
	}
	return lines, nil
}

func (s *orderService) PlaceOrder(ctx context.Context, login string, req domain.PlaceOrderRequest) (*domain.Order, error) {
	if len(req.Orders) == 0 {
		return nil, ErrEmptyBatch
	}

	lines, err := validateLines(req.Orders)
	if err != nil {
		return nil, err
	}

	tx, err := s.txBeginner.BeginTx(ctx)
	if err != nil {
		logger.Error("PlaceOrder: failed to begin tx", err)
		return nil, fmt.Errorf("begin order transaction: %w", err)
	}
	// Rollback is a no-op after a successful commit. Any early return, a
	// failed line included, discards every decrement made so far.
	defer tx.Rollback()

	for i, line := range lines {
		stock, err := s.catalogRepo.GetStockForUpdate(ctx, tx, line.Article)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrProductNotFound) {
				return nil, domain.NewInvalidLine(i, line.Article, "unknown article")
			}
			return nil, fmt.Errorf("read stock for article %d: %w", line.Article, err)
		}
		if stock < line.Quantity {
			return nil, domain.NewInsufficientStock(i, line.Article, stock, line.Quantity)
		}
		// The row lock from GetStockForUpdate is still held, so the check
		// above and this decrement are one isolation unit.
		if err := s.catalogRepo.DecrementStock(ctx, tx, line.Article, line.Quantity); err != nil {
			if errors.Is(err, catalogRepo.ErrInsufficientStock) {
				return nil, domain.NewInsufficientStock(i, line.Article, stock, line.Quantity)
			}
			return nil, fmt.Errorf("decrement stock for article %d: %w", line.Article, err)
		}
	}

	order := &domain.Order{
		Login:     login,
		OrderDate: time.Now().UTC(),
		Status:    domain.StatusPending,
	}
	if err := s.orderRepo.AppendOrder(ctx, tx, order, lines); err != nil {
		return nil, fmt.Errorf("append order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		logger.Error("PlaceOrder: commit failed", err)
		return nil, fmt.Errorf("commit order transaction: %w", err)
	}

	s.publishPlaced(order)
	return order, nil
}

// ListOrders returns the login's orders with their lines hydrated.
func (s *orderService) ListOrders(ctx context.Context, login string) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListOrdersByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		lines, err := s.orderRepo.GetOrderLines(ctx, orders[i].ID)
		if err != nil {
			return nil, fmt.Errorf("read lines for order %d: %w", orders[i].ID, err)
		}
		orders[i].Lines = lines
	}
	return orders, nil
}
