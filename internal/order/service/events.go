package service

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/avkrasnov/delivery-store/internal/order/domain"
	"github.com/avkrasnov/delivery-store/internal/platform/logger"
)

const eventOrderPlaced = "OrderPlaced"

// eventEnvelope wraps order events on the wire. Partition key is the order id
// so all events for one order stay ordered.
type eventEnvelope struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

type orderPlacedPayload struct {
	OrderID int64              `json:"order_id"`
	Login   string             `json:"login"`
	Lines   []domain.OrderLine `json:"lines"`
}

// publishPlaced emits an OrderPlaced event after the transaction has
// committed. Best effort: a broker problem never fails a placed order.
func (s *orderService) publishPlaced(order *domain.Order) {
	if s.producer == nil {
		return
	}
	payload, err := json.Marshal(orderPlacedPayload{
		OrderID: order.ID,
		Login:   order.Login,
		Lines:   order.Lines,
	})
	if err != nil {
		logger.Error("publishPlaced: marshal payload failed", err)
		return
	}
	envelope, err := json.Marshal(eventEnvelope{
		EventID:    uuid.NewString(),
		EventType:  eventOrderPlaced,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		logger.Error("publishPlaced: marshal envelope failed", err)
		return
	}
	s.producer.Publish([]byte(strconv.FormatInt(order.ID, 10)), envelope)
}
