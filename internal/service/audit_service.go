package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/inventory-service/internal/events"
)

// AuditService writes a structured audit trail for auth and stock events.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventStaffLogin, a.handleEvent)
	a.dispatcher.Subscribe(events.EventStaffLogout, a.handleEvent)
	a.dispatcher.Subscribe(events.EventCustomerRegistered, a.handleEvent)
	a.dispatcher.Subscribe(events.EventCustomerLogin, a.handleEvent)
	a.dispatcher.Subscribe(events.EventSessionRevoked, a.handleEvent)
	a.dispatcher.Subscribe(events.EventStockAdjusted, a.handleEvent)
}

func (a *AuditService) handleEvent(_ context.Context, event events.Event) error {
	a.logger.Info("audit",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("audience", string(event.Actor.Audience)),
		zap.String("subject_id", event.Actor.SubjectID),
		zap.Time("at", event.Timestamp),
		zap.Any("payload", event.Payload),
	)
	return nil
}
