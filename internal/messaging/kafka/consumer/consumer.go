package consumer

import (
	"context"
	"encoding/json"

	"go-hris-leave/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Provisioner creates the per-employee leave policy rows for a new hire.
type Provisioner interface {
	ProvisionEmployee(ctx context.Context, companyID, employeeID string) (int, error)
}

// ConsumeEmployeeLifecycle provisions leave policies for every
// employee_created event. Provisioning skips existing rows, so redelivery
// is harmless; failed messages stay uncommitted and are fetched again.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	provisioner Provisioner,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}
		if event.EventType != "" && event.EventType != events.EventEmployeeCreated {
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		created, err := provisioner.ProvisionEmployee(ctx, event.CompanyID, event.EmployeeID)
		if err != nil {
			log.Error("provision leave policies failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("leave policies provisioned from employee_created event",
			zap.String("employee_id", event.EmployeeID),
			zap.String("company_id", event.CompanyID),
			zap.Int("created", created),
		)
	}
}
