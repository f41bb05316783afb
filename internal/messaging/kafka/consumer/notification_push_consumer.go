package consumer

import (
	"context"
	"encoding/json"

	"go-portal/internal/events"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const pushChannelPrefix = "notify:"

// ConsumeNotificationCreated bridges the durable change feed to live client
// sessions: every notification event is re-published on the recipient's
// per-user Redis channel. Clients with no open session simply miss the push
// and read the row on next fetch.
func ConsumeNotificationCreated(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notification_push")
	log.Info("notification push consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification push consumer stopped")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err))
			continue
		}

		var event events.NotificationCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode notification_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		channel := pushChannelPrefix + event.UserID
		if err := rdb.Publish(ctx, channel, msg.Value).Err(); err != nil {
			log.Error("publish notification to redis failed",
				zap.String("notification_id", event.NotificationID),
				zap.String("channel", channel),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit notification message failed", zap.Error(err))
			continue
		}

		log.Info("notification pushed",
			zap.String("notification_id", event.NotificationID),
			zap.String("user_id", event.UserID),
			zap.String("type", event.Type),
		)
	}
}
