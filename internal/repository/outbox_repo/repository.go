package outbox_repo

import (
	"context"
	"time"
)

type OutboxStatus string

const (
	StatusPending OutboxStatus = "PENDING"
	StatusSent    OutboxStatus = "SENT"
)

type OutboxMessage struct {
	ID        string
	Topic     string
	Payload   []byte
	Status    OutboxStatus
	CreatedAt time.Time
	SentAt    *time.Time
}

type OutboxRepository interface {
	GetUnsentMessages(ctx context.Context) ([]*OutboxMessage, error)
	MarkMessageSent(ctx context.Context, id string) error
}
