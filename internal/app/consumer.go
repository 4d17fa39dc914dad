package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-hris-leave/internal/events"
	"go-hris-leave/internal/messaging/kafka/consumer"
	"go-hris-leave/internal/notification"
	"go-hris-leave/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer(cfg Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, 5)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	// The consumer has no cache; eligibility falls back to the database.
	m, err := buildServices(sqlDB, gormDB, nil, cfg)
	if err != nil {
		return err
	}
	notifier := notification.NewService(notification.NewMailer(cfg.Mail), m.directory, m.approvals)

	lifecycleReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.EmployeeCreatedTopic,
		GroupID:        "go-hris-leave-provisioning",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer lifecycleReader.Close()

	leaveReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		GroupTopics: []string{
			events.LeaveApplicationSubmittedTopic,
			events.LeaveApplicationDecidedTopic,
		},
		GroupID:        "go-hris-leave-notification",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer leaveReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeEmployeeLifecycle(ctx, lifecycleReader, m.ledger, logger)
	go consumer.ConsumeLeaveNotifications(ctx, leaveReader, notifier, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
