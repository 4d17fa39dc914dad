package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-hris-leave/internal/approvalsetting"
	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/employee"
	"go-hris-leave/internal/events"
	"go-hris-leave/internal/grouppolicy"
	leaveerrors "go-hris-leave/internal/leave/errors"
	"go-hris-leave/internal/ledger"
	"go-hris-leave/internal/messaging/kafka"
	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/contextutil"
	"go-hris-leave/internal/shared/counter"
	"go-hris-leave/internal/shared/daycount"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const referenceCounter = "leave_application"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, companyID, actorID string, req SubmitLeaveRequest) (SubmitResponse, error)
	// Decide moves a Pending application to Approved or Rejected. Calling it
	// again on a decided application fails with INVALID_STATE.
	Decide(ctx context.Context, companyID, approverID, id string, req DecideRequest) (DecisionResponse, error)
	// BulkDecide runs Decide per id, each in its own transaction.
	BulkDecide(ctx context.Context, companyID, approverID string, req BulkDecideRequest) ([]BulkDecisionResult, error)
	List(ctx context.Context, companyID, actorID string, q ListQuery) ([]ApplicationResponse, error)
	GetByID(ctx context.Context, companyID, id string) (ApplicationResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	directory   employee.Directory
	eligibility grouppolicy.Service
	balances    ledger.Service
	approvers   approvalsetting.Service
	counter     counter.Repository
	outbox      kafka.OutboxRepository
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	directory employee.Directory,
	eligibility grouppolicy.Service,
	balances ledger.Service,
	approvers approvalsetting.Service,
	counter counter.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		directory:   directory,
		eligibility: eligibility,
		balances:    balances,
		approvers:   approvers,
		counter:     counter,
		outbox:      outbox,
		logger:      l,
	}
}

func (s *service) Submit(ctx context.Context, companyID, actorID string, req SubmitLeaveRequest) (SubmitResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)

	employeeID := req.EmployeeID
	if employeeID == "" {
		employeeID = actorID
	}
	log.Debug("submit leave requested",
		zap.String("company_id", companyID),
		zap.String("actor_id", actorID),
		zap.String("employee_id", employeeID),
		zap.String("leave_type", req.LeaveType),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SubmitResponse{}, leaveerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return SubmitResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	leaveType := strings.TrimSpace(req.LeaveType)

	emp, err := s.directory.FindByID(ctx, companyID, employeeID)
	if err != nil {
		return SubmitResponse{}, err
	}

	if err := s.eligibility.CheckAccess(ctx, *emp, leaveType); err != nil {
		log.Warn("submit leave not eligible",
			zap.String("employee_id", employeeID),
			zap.String("leave_type", leaveType),
			zap.Error(err),
		)
		return SubmitResponse{}, err
	}

	start, end, startType, endType, totalDays, err := parsePeriod(req)
	if err != nil {
		log.Warn("submit leave validation failed", zap.Error(err))
		return SubmitResponse{}, err
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return SubmitResponse{}, leaveerrors.ErrReasonRequired
	}

	overlap, err := s.repo.HasOverlappingPeriod(ctx, companyID, employeeID, start, end)
	if err != nil {
		log.Error("submit leave overlap check failed", zap.Error(err))
		return SubmitResponse{}, err
	}
	if overlap {
		log.Warn("submit leave overlap detected",
			zap.String("employee_id", employeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return SubmitResponse{}, leaveerrors.ErrLeaveOverlap
	}

	key := domain.LeaveKey{CompanyID: companyID, EmployeeID: employeeID, LeaveType: leaveType}
	balance, err := s.balances.Balance(ctx, key, start.Year())
	if err != nil {
		return SubmitResponse{}, err
	}
	var warning string
	if balance.Remaining.LessThan(totalDays) {
		if !balance.AllowOverdraft {
			log.Warn("submit leave insufficient balance",
				zap.String("employee_id", employeeID),
				zap.String("leave_type", leaveType),
				zap.String("remaining", balance.Remaining.String()),
				zap.String("requested", totalDays.String()),
			)
			return SubmitResponse{}, leaveerrors.ErrInsufficientBalance
		}
		warning = overdraftWarning(balance.Remaining, totalDays)
		log.Warn("submit leave overdraws balance",
			zap.String("employee_id", employeeID),
			zap.String("leave_type", leaveType),
			zap.String("remaining", balance.Remaining.String()),
			zap.String("requested", totalDays.String()),
		)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("submit leave begin tx failed", zap.Error(err))
		return SubmitResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	seq, err := s.counter.WithTx(tx).GetNextValue(ctx, companyID, referenceCounter)
	if err != nil {
		log.Error("submit leave reference number failed", zap.Error(err))
		return SubmitResponse{}, err
	}

	now := time.Now().UTC()
	app := &LeaveApplication{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		ReferenceNo:   fmt.Sprintf("LV-%06d", seq),
		EmployeeID:    employeeUUID,
		ApplicantName: emp.FullName,
		LeaveType:     leaveType,
		StartDate:     start,
		EndDate:       end,
		StartDayType:  string(startType),
		EndDayType:    string(endType),
		TotalDays:     totalDays,
		Reason:        reason,
		Status:        domain.LeaveStatusPending,
		AppliedDate:   now,
		CreatedBy:     actorID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if ref := strings.TrimSpace(req.SupportingDocumentRef); ref != "" {
		app.SupportingDocumentRef = &ref
	}

	if err := qtx.Create(ctx, app); err != nil {
		log.Error("submit leave persist failed", zap.Error(err))
		return SubmitResponse{}, err
	}
	if err := qtx.CreateAction(ctx, &LeaveApplicationAction{
		ID:            uuid.New(),
		ApplicationID: app.ID,
		CompanyID:     companyUUID,
		ActorID:       actorID,
		Action:        ActionSubmit,
		ToStatus:      domain.LeaveStatusPending,
		Comments:      warning,
		CreatedAt:     now,
	}); err != nil {
		log.Error("submit leave action persist failed", zap.Error(err))
		return SubmitResponse{}, err
	}

	event := events.LeaveApplicationSubmittedEvent{
		EventType:     events.EventLeaveApplicationSubmitted,
		RequestID:     rid,
		ApplicationID: app.ID.String(),
		ReferenceNo:   app.ReferenceNo,
		CompanyID:     companyID,
		EmployeeID:    employeeID,
		LeaveType:     leaveType,
		StartDate:     start.Format(daycount.DateLayout),
		EndDate:       end.Format(daycount.DateLayout),
		TotalDays:     totalDays.String(),
		OccurredAt:    now,
	}
	if err := s.enqueue(ctx, tx, rid, app.ID.String(), event.EventType, events.LeaveApplicationSubmittedTopic, event); err != nil {
		log.Error("submit leave outbox persist failed", zap.Error(err))
		return SubmitResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("submit leave commit failed", zap.Error(err))
		return SubmitResponse{}, err
	}

	log.Info("leave application submitted",
		zap.String("application_id", app.ID.String()),
		zap.String("reference_no", app.ReferenceNo),
		zap.String("employee_id", employeeID),
		zap.String("leave_type", leaveType),
		zap.String("total_days", totalDays.String()),
	)
	return SubmitResponse{Application: mapToResponse(*app, nil), Warning: warning}, nil
}

func (s *service) Decide(ctx context.Context, companyID, approverID, id string, req DecideRequest) (DecisionResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)

	log.Debug("decide leave requested",
		zap.String("application_id", id),
		zap.String("approver_id", approverID),
		zap.String("action", req.Action),
	)

	if _, err := uuid.Parse(id); err != nil {
		return DecisionResponse{}, leaveerrors.ErrInvalidApplicationID
	}
	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return DecisionResponse{}, leaveerrors.ErrInvalidActorID
	}
	if req.Action != domain.DecisionApprove && req.Action != domain.DecisionReject {
		return DecisionResponse{}, apperror.InvalidField("action")
	}

	app, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DecisionResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return DecisionResponse{}, err
	}

	setting, err := s.approvers.Resolve(ctx, companyID, app.LeaveType)
	if err != nil {
		return DecisionResponse{}, err
	}
	level := setting.Level(approverID)
	if level == 0 {
		log.Warn("decide leave by non-approver",
			zap.String("application_id", id),
			zap.String("approver_id", approverID),
		)
		return DecisionResponse{}, leaveerrors.ErrNotApprover
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("decide leave begin tx failed", zap.Error(err))
		return DecisionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	app, err = qtx.LockByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DecisionResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return DecisionResponse{}, err
	}
	if app.Status != domain.LeaveStatusPending {
		log.Warn("decide leave on terminal application",
			zap.String("application_id", id),
			zap.String("status", app.Status),
		)
		return DecisionResponse{}, leaveerrors.ErrNotPending
	}

	now := time.Now().UTC()
	comments := strings.TrimSpace(req.Comments)
	action := ActionReject
	status := domain.LeaveStatusRejected
	autoRejected := false
	key := app.Key()

	if req.Action == domain.DecisionApprove {
		balance, err := s.balances.LockBalance(ctx, tx, key, app.PolicyYear())
		if err != nil {
			return DecisionResponse{}, err
		}
		switch {
		case balance.Remaining.GreaterThanOrEqual(app.TotalDays):
			action, status = ActionApprove, domain.LeaveStatusApproved
		case balance.AllowOverdraft:
			action, status = ActionApprove, domain.LeaveStatusApproved
			log.Warn("approving leave past zero balance",
				zap.String("application_id", id),
				zap.String("remaining", balance.Remaining.String()),
				zap.String("requested", app.TotalDays.String()),
			)
		default:
			action, status, autoRejected = ActionAutoReject, domain.LeaveStatusRejected, true
			comments = autoRejectComment(balance.Remaining, app.TotalDays)
			log.Warn("leave auto-rejected on approval",
				zap.String("application_id", id),
				zap.String("remaining", balance.Remaining.String()),
				zap.String("requested", app.TotalDays.String()),
			)
		}
	}

	app.Status = status
	app.DecidedBy = &approverUUID
	app.DecidedAt = &now
	app.UpdatedAt = now
	if comments != "" {
		app.DecisionComments = &comments
	}

	n, err := qtx.SaveDecision(ctx, app)
	if err != nil {
		log.Error("decide leave persist failed", zap.Error(err))
		return DecisionResponse{}, err
	}
	if n == 0 {
		return DecisionResponse{}, leaveerrors.ErrNotPending
	}

	var remaining string
	if status == domain.LeaveStatusApproved {
		b, err := s.balances.Recompute(ctx, tx, key)
		if err != nil {
			log.Error("decide leave balance recompute failed", zap.Error(err))
			return DecisionResponse{}, err
		}
		remaining = b.Remaining.String()
	}

	if err := qtx.CreateAction(ctx, &LeaveApplicationAction{
		ID:            uuid.New(),
		ApplicationID: app.ID,
		CompanyID:     app.CompanyID,
		ActorID:       approverID,
		Action:        action,
		ApprovalLevel: level,
		FromStatus:    domain.LeaveStatusPending,
		ToStatus:      status,
		Comments:      comments,
		CreatedAt:     now,
	}); err != nil {
		log.Error("decide leave action persist failed", zap.Error(err))
		return DecisionResponse{}, err
	}

	event := events.LeaveApplicationDecidedEvent{
		EventType:     events.EventLeaveApplicationDecided,
		RequestID:     rid,
		ApplicationID: app.ID.String(),
		ReferenceNo:   app.ReferenceNo,
		CompanyID:     companyID,
		EmployeeID:    app.EmployeeID.String(),
		LeaveType:     app.LeaveType,
		Status:        status,
		DecidedBy:     approverID,
		Comments:      comments,
		AutoRejected:  autoRejected,
		OccurredAt:    now,
	}
	if err := s.enqueue(ctx, tx, rid, app.ID.String(), event.EventType, events.LeaveApplicationDecidedTopic, event); err != nil {
		log.Error("decide leave outbox persist failed", zap.Error(err))
		return DecisionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("decide leave commit failed", zap.Error(err))
		return DecisionResponse{}, err
	}

	log.Info("leave application decided",
		zap.String("application_id", id),
		zap.String("status", status),
		zap.Int("approval_level", level),
		zap.Bool("auto_rejected", autoRejected),
		zap.String("approver_id", approverID),
	)
	return DecisionResponse{
		Application:  mapToResponse(*app, nil),
		AutoRejected: autoRejected,
		Balance:      remaining,
	}, nil
}

func (s *service) BulkDecide(ctx context.Context, companyID, approverID string, req BulkDecideRequest) ([]BulkDecisionResult, error) {
	results := make([]BulkDecisionResult, 0, len(req.IDs))
	for _, id := range req.IDs {
		resp, err := s.Decide(ctx, companyID, approverID, id, DecideRequest{Action: req.Action, Comments: req.Comments})
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			results = append(results, BulkDecisionResult{ID: id, Code: httpErr.Code, Message: httpErr.Message})
			continue
		}
		results = append(results, BulkDecisionResult{ID: id, Status: resp.Application.Status})
	}
	return results, nil
}

func (s *service) List(ctx context.Context, companyID, actorID string, q ListQuery) ([]ApplicationResponse, error) {
	f := Filter{Status: q.Status, EmployeeID: q.EmployeeID, LeaveType: q.LeaveType}
	if q.Year != 0 {
		f.From, f.To = daycount.YearBounds(q.Year)
	}
	if q.Mode == ModeApproval {
		f.Status = domain.LeaveStatusPending
	}

	list, err := s.repo.List(ctx, companyID, f)
	if err != nil {
		return nil, err
	}

	if q.Mode == ModeApproval {
		list, err = s.decidableBy(ctx, companyID, actorID, list)
		if err != nil {
			return nil, err
		}
	}

	resp := make([]ApplicationResponse, len(list))
	for i, a := range list {
		resp[i] = mapToResponse(a, nil)
	}
	return resp, nil
}

// decidableBy keeps the applications whose resolved approvers include actorID.
func (s *service) decidableBy(ctx context.Context, companyID, actorID string, list []LeaveApplication) ([]LeaveApplication, error) {
	allowed := map[string]bool{}
	out := make([]LeaveApplication, 0, len(list))
	for _, a := range list {
		ok, seen := allowed[a.LeaveType]
		if !seen {
			setting, err := s.approvers.Resolve(ctx, companyID, a.LeaveType)
			switch {
			case err == nil:
				ok = setting.Level(actorID) > 0
			case apperror.HasCode(err, apperror.CodeForbidden):
				ok = false
			default:
				return nil, err
			}
			allowed[a.LeaveType] = ok
		}
		if ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (ApplicationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ApplicationResponse{}, leaveerrors.ErrInvalidApplicationID
	}
	app, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApplicationResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return ApplicationResponse{}, err
	}
	actions, err := s.repo.ListActions(ctx, id)
	if err != nil {
		return ApplicationResponse{}, err
	}
	return mapToResponse(*app, actions), nil
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, rid, aggregateID, eventType, topic string, event any) error {
	if s.outbox == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "leave_application",
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func parsePeriod(req SubmitLeaveRequest) (time.Time, time.Time, daycount.DayType, daycount.DayType, decimal.Decimal, error) {
	fail := func(err error) (time.Time, time.Time, daycount.DayType, daycount.DayType, decimal.Decimal, error) {
		return time.Time{}, time.Time{}, "", "", decimal.Zero, err
	}

	start, err := daycount.ParseDate(req.StartDate)
	if err != nil {
		return fail(leaveerrors.ErrInvalidDateFormat)
	}
	end, err := daycount.ParseDate(req.EndDate)
	if err != nil {
		return fail(leaveerrors.ErrInvalidDateFormat)
	}
	startType, err := daycount.ParseDayType(req.StartDayType)
	if err != nil {
		return fail(leaveerrors.ErrInvalidDayType)
	}
	endType, err := daycount.ParseDayType(req.EndDayType)
	if err != nil {
		return fail(leaveerrors.ErrInvalidDayType)
	}

	total, err := daycount.TotalDays(start, end, startType, endType)
	if err != nil {
		return fail(leaveerrors.ErrInvalidDateRange)
	}
	if !total.IsPositive() {
		return fail(leaveerrors.ErrNonPositiveDays)
	}
	return start, end, startType, endType, total, nil
}

func overdraftWarning(remaining, requested decimal.Decimal) string {
	return fmt.Sprintf("request of %s days exceeds remaining balance of %s days", requested, remaining)
}

func autoRejectComment(remaining, requested decimal.Decimal) string {
	return fmt.Sprintf("Automatically rejected: insufficient leave balance (remaining %s, requested %s)", remaining, requested)
}

func mapToResponse(a LeaveApplication, actions []LeaveApplicationAction) ApplicationResponse {
	resp := ApplicationResponse{
		ID:                    a.ID.String(),
		ReferenceNo:           a.ReferenceNo,
		EmployeeID:            a.EmployeeID.String(),
		Applicant:             a.ApplicantName,
		LeaveType:             a.LeaveType,
		StartDate:             a.StartDate.Format(daycount.DateLayout),
		EndDate:               a.EndDate.Format(daycount.DateLayout),
		StartDayType:          a.StartDayType,
		EndDayType:            a.EndDayType,
		TotalDays:             a.TotalDays.String(),
		Reason:                a.Reason,
		SupportingDocumentRef: a.SupportingDocumentRef,
		Status:                a.Status,
		AppliedDate:           a.AppliedDate.Format(time.RFC3339),
		DecisionComments:      a.DecisionComments,
	}
	if a.DecidedBy != nil {
		v := a.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if a.DecidedAt != nil {
		v := a.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	for _, act := range actions {
		resp.Actions = append(resp.Actions, ActionResponse{
			Actor:         act.ActorID,
			Action:        act.Action,
			ApprovalLevel: act.ApprovalLevel,
			FromStatus:    act.FromStatus,
			ToStatus:      act.ToStatus,
			Comments:      act.Comments,
			CreatedAt:     act.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
