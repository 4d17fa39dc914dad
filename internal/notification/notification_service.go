package notification

import (
	"context"
	"errors"
	"fmt"

	"go-hris-leave/internal/approvalsetting"
	"go-hris-leave/internal/employee"
	"go-hris-leave/internal/events"
	"go-hris-leave/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	// LeaveSubmitted tells the configured approvers a request is waiting.
	LeaveSubmitted(ctx context.Context, event events.LeaveApplicationSubmittedEvent) error
	// LeaveDecided tells the applicant the outcome.
	LeaveDecided(ctx context.Context, event events.LeaveApplicationDecidedEvent) error
}

type service struct {
	mailer    Mailer
	directory employee.Directory
	approvals approvalsetting.Service
	logger    *zap.Logger
}

func NewService(mailer Mailer, directory employee.Directory, approvals approvalsetting.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{
		mailer:    mailer,
		directory: directory,
		approvals: approvals,
		logger:    l,
	}
}

func (s *service) LeaveSubmitted(ctx context.Context, event events.LeaveApplicationSubmittedEvent) error {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("reference_no", event.ReferenceNo))

	setting, err := s.approvals.Resolve(ctx, event.CompanyID, event.LeaveType)
	if err != nil {
		log.Warn("no approver to notify", zap.Error(err))
		return nil
	}

	applicant, err := s.directory.FindByID(ctx, event.CompanyID, event.EmployeeID)
	if err != nil {
		return err
	}

	approverIDs := []string{setting.FirstLevelApproverID.String()}
	if setting.SecondLevelApproverID != nil {
		approverIDs = append(approverIDs, setting.SecondLevelApproverID.String())
	}

	subject := fmt.Sprintf("Leave request %s awaiting approval", event.ReferenceNo)
	body := fmt.Sprintf(
		"%s applied for %s from %s to %s (%s days).\nReference: %s\n",
		applicant.FullName, event.LeaveType, event.StartDate, event.EndDate, event.TotalDays, event.ReferenceNo,
	)

	var errs []error
	for _, id := range approverIDs {
		approver, err := s.directory.FindByID(ctx, event.CompanyID, id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := s.mailer.Send(ctx, approver.Email, subject, body); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	log.Info("approvers notified", zap.Int("recipients", len(approverIDs)))
	return nil
}

func (s *service) LeaveDecided(ctx context.Context, event events.LeaveApplicationDecidedEvent) error {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("reference_no", event.ReferenceNo))

	applicant, err := s.directory.FindByID(ctx, event.CompanyID, event.EmployeeID)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Leave request %s %s", event.ReferenceNo, event.Status)
	body := fmt.Sprintf("Hello %s,\n\nYour %s request %s is now %s.\n",
		applicant.FullName, event.LeaveType, event.ReferenceNo, event.Status)
	if event.AutoRejected {
		body += "It was rejected automatically because the balance no longer covers it.\n"
	}
	if event.Comments != "" {
		body += "\nComments: " + event.Comments + "\n"
	}

	if err := s.mailer.Send(ctx, applicant.Email, subject, body); err != nil {
		return err
	}
	log.Info("applicant notified", zap.String("status", event.Status))
	return nil
}
