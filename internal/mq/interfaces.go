package mq

import (
	"context"
)

// ProducerInterface defines the interface for click event production (for testing)
type ProducerInterface interface {
	SendClickEvent(ctx context.Context, msg *ClickEventMessage) error
}
