package consumer

import (
	"context"
	"encoding/json"

	"go-hris-leave/internal/events"
	"go-hris-leave/internal/notification"
	"go-hris-leave/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveNotifications mails approvers on submission and applicants on
// decision. A message whose mail fails is left uncommitted.
func ConsumeLeaveNotifications(
	ctx context.Context,
	reader MessageReader,
	notifier notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_notification")
	log.Info("leave notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave notification consumer stopped")
				return
			}
			log.Error("fetch leave message failed", zap.Error(err))
			continue
		}

		if err := handleLeaveMessage(ctx, msg, notifier, log); err != nil {
			log.Error("leave notification failed",
				zap.String("topic", msg.Topic),
				zap.String("key", string(msg.Key)),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave message failed", zap.Error(err))
		}
	}
}

func handleLeaveMessage(ctx context.Context, msg kafkago.Message, notifier notification.Service, log *zap.Logger) error {
	if rid := header(msg, "request_id"); rid != "" {
		ctx = contextutil.WithRequestID(ctx, rid)
	}

	switch msg.Topic {
	case events.LeaveApplicationSubmittedTopic:
		var event events.LeaveApplicationSubmittedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave submitted event failed", zap.Error(err))
			return nil
		}
		return notifier.LeaveSubmitted(ctx, event)
	case events.LeaveApplicationDecidedTopic:
		var event events.LeaveApplicationDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave decided event failed", zap.Error(err))
			return nil
		}
		return notifier.LeaveDecided(ctx, event)
	default:
		log.Warn("unexpected topic, skipping", zap.String("topic", msg.Topic))
		return nil
	}
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
