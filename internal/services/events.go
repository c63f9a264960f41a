package services

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	EventProductCreated        = "product.created"
	EventProductUpdated        = "product.updated"
	EventProductGalleryUpdated = "product.gallery_updated"
	EventProductDeleted        = "product.deleted"
)

// EventPublisher sends a message to a broker exchange.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// ProductEvent is the body of every product change message.
type ProductEvent struct {
	Event      string    `json:"event"`
	ProductID  string    `json:"productId"`
	CategoryID string    `json:"categoryId,omitempty"`
	At         time.Time `json:"at"`
}

// eventNotifier publishes product events on a best-effort basis.
type eventNotifier struct {
	publisher EventPublisher
	exchange  string
	log       *logrus.Logger
}

func (n eventNotifier) notify(event, productID, categoryID string) {
	if n.publisher == nil {
		return
	}
	body, err := json.Marshal(ProductEvent{
		Event:      event,
		ProductID:  productID,
		CategoryID: categoryID,
		At:         time.Now().UTC(),
	})
	if err != nil {
		n.log.WithError(err).Warn("Failed to marshal product event")
		return
	}
	if err := n.publisher.Publish(n.exchange, event, body); err != nil {
		n.log.WithError(err).WithFields(logrus.Fields{
			"event":      event,
			"product_id": productID,
		}).Warn("Failed to publish product event")
	}
}
