package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/authgate/session-service/internal/core/domain"
)

const auditCollection = "auth_events"

// MongoAuditRepository persists the authentication audit trail.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	Type     string `bson:"type"`
	UserID   string `bson:"user_id,omitempty"`
	Username string `bson:"username,omitempty"`
	RemoteIP string `bson:"remote_ip,omitempty"`
	At       int64  `bson:"at"`
}

func (r *MongoAuditRepository) InsertEvent(ctx context.Context, event *domain.AuthEvent) error {
	doc := mongoAuthEvent{
		Type:     string(event.Type),
		UserID:   event.UserID,
		Username: event.Username,
		RemoteIP: event.RemoteIP,
		At:       event.At.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
