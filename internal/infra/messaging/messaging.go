package messaging

import (
	"context"

	"github.com/parthk/bakery-backend/internal/model"
)

// Publisher defines an interface for emitting order notifications to a
// message broker. Delivery is at-most-once: callers decide what to do when
// publishing fails.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, notification model.OrderNotification) error
}
