package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yenihospital/hospital-system/internal/core/domain"
)

const auditCollection = "auth_events"

// MongoAuditRepository appends authentication events to an audit collection.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	Action    string    `bson:"action"`
	Username  string    `bson:"username"`
	Success   bool      `bson:"success"`
	Reason    string    `bson:"reason,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event *domain.AuthEvent) error {
	doc := mongoAuthEvent{
		Action:    event.Action,
		Username:  event.Username,
		Success:   event.Success,
		Reason:    event.Reason,
		Timestamp: event.Timestamp,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
