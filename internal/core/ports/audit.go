package ports

import (
	"context"

	"github.com/authgate/session-service/internal/core/domain"
)

// AuditService records authentication-flow events.
type AuditService interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}

// AuditSink accepts auth events for asynchronous recording. Implementations
// must never block the request path.
type AuditSink interface {
	Enqueue(event domain.AuthEvent)
}

// AuditRepository persists auth events to the audit trail collection.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.AuthEvent) error
}
