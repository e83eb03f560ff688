package ports

import (
	"context"

	"github.com/yenihospital/hospital-system/internal/core/domain"
)

// AuditRepository persists authentication events to an append-only trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}
