package leavepolicy

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	leavepolicyerrors "go-hris-leave/internal/leavepolicy/errors"
	"go-hris-leave/internal/shared/connection"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EligibilityInvalidator drops cached eligibility data for companies whose
// leave type activation changed.
type EligibilityInvalidator interface {
	Invalidate(ctx context.Context, companyIDs ...string) error
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(context.Context, ...string) error { return nil }

//go:generate mockgen -source=leavepolicy_service.go -destination=mock/leavepolicy_service_mock.go -package=mock
type Service interface {
	CreateSystemPolicy(ctx context.Context, req CreateSystemPolicyRequest) (SystemPolicyResponse, error)
	UpdateSystemPolicy(ctx context.Context, id string, req UpdateSystemPolicyRequest) (SystemPolicyResponse, error)
	DisableSystemPolicy(ctx context.Context, id string) (SystemPolicyResponse, error)
	ListSystemPolicies(ctx context.Context) ([]SystemPolicyResponse, error)

	ActivateForCompany(ctx context.Context, companyID string, req ActivateCompanyTypeRequest) (CompanyLeaveTypeResponse, error)
	DeactivateForCompany(ctx context.Context, companyID, leaveType string) (CompanyLeaveTypeResponse, error)
	ListCompanyTypes(ctx context.Context, companyID string) ([]CompanyLeaveTypeResponse, error)
	ListActiveCompanyTypes(ctx context.Context, companyID string) ([]CompanyLeaveTypeResponse, error)

	// CompanyTypeStates resolves every leave type the company has a row for.
	CompanyTypeStates(ctx context.Context, companyID string) ([]CompanyTypeState, error)
	// CompanyTypeState resolves one leave type; ok is false when the company never activated it.
	CompanyTypeState(ctx context.Context, companyID, leaveType string) (state CompanyTypeState, ok bool, err error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	invalidator EligibilityInvalidator
	logger      *zap.Logger
}

func NewService(db *sql.DB, repo Repository, invalidator EligibilityInvalidator, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavepolicy.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavepolicy.service")
	}
	if invalidator == nil {
		invalidator = noopInvalidator{}
	}
	return &service{db: db, repo: repo, invalidator: invalidator, logger: l}
}

func (s *service) CreateSystemPolicy(ctx context.Context, req CreateSystemPolicyRequest) (SystemPolicyResponse, error) {
	leaveType := strings.TrimSpace(req.LeaveType)
	if leaveType == "" {
		return SystemPolicyResponse{}, leavepolicyerrors.ErrLeaveTypeRequired
	}
	if req.DefaultEntitlementDays < 0 {
		return SystemPolicyResponse{}, leavepolicyerrors.ErrNegativeEntitlement
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create system policy begin tx failed", zap.Error(err))
		return SystemPolicyResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	_, err = qtx.FindSystemPolicyByType(ctx, leaveType)
	switch {
	case err == nil:
		return SystemPolicyResponse{}, leavepolicyerrors.ErrLeaveTypeExists
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return SystemPolicyResponse{}, err
	}

	enabled := true
	if req.IsEnabled != nil {
		enabled = *req.IsEnabled
	}
	now := time.Now().UTC()
	p := &SystemLeavePolicy{
		ID:                     uuid.New(),
		LeaveType:              leaveType,
		DefaultEntitlementDays: decimal.NewFromFloat(req.DefaultEntitlementDays),
		IsEnabled:              enabled,
		Remarks:                req.Remarks,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := qtx.CreateSystemPolicy(ctx, p); err != nil {
		if connection.IsUniqueViolation(err) {
			return SystemPolicyResponse{}, leavepolicyerrors.ErrLeaveTypeExists
		}
		s.logger.Error("create system policy persist failed", zap.Error(err))
		return SystemPolicyResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create system policy commit failed", zap.Error(err))
		return SystemPolicyResponse{}, err
	}
	s.logger.Info("system leave policy created",
		zap.String("policy_id", p.ID.String()),
		zap.String("leave_type", p.LeaveType),
	)

	return mapSystemPolicy(*p), nil
}

func (s *service) UpdateSystemPolicy(ctx context.Context, id string, req UpdateSystemPolicyRequest) (SystemPolicyResponse, error) {
	return s.mutateSystemPolicy(ctx, id, func(p *SystemLeavePolicy) error {
		if req.DefaultEntitlementDays != nil {
			if *req.DefaultEntitlementDays < 0 {
				return leavepolicyerrors.ErrNegativeEntitlement
			}
			p.DefaultEntitlementDays = decimal.NewFromFloat(*req.DefaultEntitlementDays)
		}
		if req.IsEnabled != nil {
			p.IsEnabled = *req.IsEnabled
		}
		if req.Remarks != nil {
			p.Remarks = *req.Remarks
		}
		return nil
	})
}

// DisableSystemPolicy soft-deletes a leave type. Rows referencing it stay
// intact; the type simply stops being active for every company.
func (s *service) DisableSystemPolicy(ctx context.Context, id string) (SystemPolicyResponse, error) {
	return s.mutateSystemPolicy(ctx, id, func(p *SystemLeavePolicy) error {
		p.IsEnabled = false
		return nil
	})
}

func (s *service) mutateSystemPolicy(ctx context.Context, id string, apply func(p *SystemLeavePolicy) error) (SystemPolicyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SystemPolicyResponse{}, leavepolicyerrors.ErrInvalidPolicyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update system policy begin tx failed", zap.Error(err))
		return SystemPolicyResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindSystemPolicyByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SystemPolicyResponse{}, leavepolicyerrors.ErrSystemPolicyNotFound
		}
		return SystemPolicyResponse{}, err
	}

	wasEnabled := p.IsEnabled
	if err := apply(p); err != nil {
		return SystemPolicyResponse{}, err
	}
	p.UpdatedAt = time.Now().UTC()

	if err := qtx.UpdateSystemPolicy(ctx, p); err != nil {
		s.logger.Error("update system policy persist failed", zap.String("policy_id", id), zap.Error(err))
		return SystemPolicyResponse{}, err
	}

	var affected []string
	if wasEnabled != p.IsEnabled {
		affected, err = qtx.ListCompanyIDsUsingType(ctx, p.LeaveType)
		if err != nil {
			return SystemPolicyResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update system policy commit failed", zap.String("policy_id", id), zap.Error(err))
		return SystemPolicyResponse{}, err
	}

	if len(affected) > 0 {
		if err := s.invalidator.Invalidate(ctx, affected...); err != nil {
			s.logger.Warn("eligibility cache invalidation failed", zap.String("leave_type", p.LeaveType), zap.Error(err))
		}
	}
	s.logger.Info("system leave policy updated",
		zap.String("policy_id", id),
		zap.String("leave_type", p.LeaveType),
		zap.Bool("is_enabled", p.IsEnabled),
	)

	return mapSystemPolicy(*p), nil
}

func (s *service) ListSystemPolicies(ctx context.Context) ([]SystemPolicyResponse, error) {
	list, err := s.repo.ListSystemPolicies(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]SystemPolicyResponse, len(list))
	for i, p := range list {
		resp[i] = mapSystemPolicy(p)
	}
	return resp, nil
}

func (s *service) ActivateForCompany(ctx context.Context, companyID string, req ActivateCompanyTypeRequest) (CompanyLeaveTypeResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return CompanyLeaveTypeResponse{}, leavepolicyerrors.ErrInvalidCompanyID
	}
	leaveType := strings.TrimSpace(req.LeaveType)
	if leaveType == "" {
		return CompanyLeaveTypeResponse{}, leavepolicyerrors.ErrLeaveTypeRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("activate company leave type begin tx failed", zap.Error(err))
		return CompanyLeaveTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sys, err := qtx.FindSystemPolicyByType(ctx, leaveType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyLeaveTypeResponse{}, leavepolicyerrors.ErrSystemPolicyNotFound
		}
		return CompanyLeaveTypeResponse{}, err
	}
	if !sys.IsEnabled {
		return CompanyLeaveTypeResponse{}, leavepolicyerrors.ErrSystemPolicyDisabled
	}

	days := sys.DefaultEntitlementDays
	if req.EntitlementDays != nil {
		if *req.EntitlementDays < 0 {
			return CompanyLeaveTypeResponse{}, leavepolicyerrors.ErrNegativeEntitlement
		}
		days = decimal.NewFromFloat(*req.EntitlementDays)
	}
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	var carryCap *decimal.Decimal
	if req.CarryForwardCap != nil {
		v := decimal.NewFromFloat(*req.CarryForwardCap)
		carryCap = &v
	}

	now := time.Now().UTC()
	row := &CompanyLeaveType{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		LeaveType:       sys.LeaveType,
		EntitlementDays: days,
		Enabled:         enabled,
		AllowOverdraft:  req.AllowOverdraft,
		CarryForwardCap: carryCap,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := qtx.UpsertCompanyType(ctx, row); err != nil {
		s.logger.Error("activate company leave type persist failed", zap.Error(err))
		return CompanyLeaveTypeResponse{}, err
	}

	saved, err := qtx.FindCompanyType(ctx, companyID, sys.LeaveType)
	if err != nil {
		return CompanyLeaveTypeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("activate company leave type commit failed", zap.Error(err))
		return CompanyLeaveTypeResponse{}, err
	}

	if err := s.invalidator.Invalidate(ctx, companyID); err != nil {
		s.logger.Warn("eligibility cache invalidation failed", zap.String("company_id", companyID), zap.Error(err))
	}
	s.logger.Info("company leave type activated",
		zap.String("company_id", companyID),
		zap.String("leave_type", saved.LeaveType),
		zap.Bool("enabled", saved.Enabled),
	)

	return mapCompanyType(*saved, sys.IsEnabled), nil
}

func (s *service) DeactivateForCompany(ctx context.Context, companyID, leaveType string) (CompanyLeaveTypeResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return CompanyLeaveTypeResponse{}, leavepolicyerrors.ErrInvalidCompanyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CompanyLeaveTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindCompanyType(ctx, companyID, leaveType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyLeaveTypeResponse{}, leavepolicyerrors.ErrCompanyTypeNotFound
		}
		return CompanyLeaveTypeResponse{}, err
	}
	row.Enabled = false
	row.UpdatedAt = time.Now().UTC()
	if err := qtx.UpsertCompanyType(ctx, row); err != nil {
		return CompanyLeaveTypeResponse{}, err
	}

	systemEnabled := false
	if sys, err := qtx.FindSystemPolicyByType(ctx, leaveType); err == nil {
		systemEnabled = sys.IsEnabled
	}

	if err := tx.Commit(); err != nil {
		return CompanyLeaveTypeResponse{}, err
	}

	if err := s.invalidator.Invalidate(ctx, companyID); err != nil {
		s.logger.Warn("eligibility cache invalidation failed", zap.String("company_id", companyID), zap.Error(err))
	}
	s.logger.Info("company leave type deactivated",
		zap.String("company_id", companyID),
		zap.String("leave_type", leaveType),
	)

	return mapCompanyType(*row, systemEnabled), nil
}

func (s *service) ListCompanyTypes(ctx context.Context, companyID string) ([]CompanyLeaveTypeResponse, error) {
	rows, system, err := s.loadCompanyTypes(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]CompanyLeaveTypeResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapCompanyType(row, system[row.LeaveType]))
	}
	return resp, nil
}

func (s *service) ListActiveCompanyTypes(ctx context.Context, companyID string) ([]CompanyLeaveTypeResponse, error) {
	all, err := s.ListCompanyTypes(ctx, companyID)
	if err != nil {
		return nil, err
	}
	active := make([]CompanyLeaveTypeResponse, 0, len(all))
	for _, t := range all {
		if t.Active {
			active = append(active, t)
		}
	}
	return active, nil
}

func (s *service) CompanyTypeStates(ctx context.Context, companyID string) ([]CompanyTypeState, error) {
	rows, system, err := s.loadCompanyTypes(ctx, companyID)
	if err != nil {
		return nil, err
	}
	states := make([]CompanyTypeState, len(rows))
	for i, row := range rows {
		states[i] = row.State(system[row.LeaveType])
	}
	return states, nil
}

func (s *service) CompanyTypeState(ctx context.Context, companyID, leaveType string) (CompanyTypeState, bool, error) {
	row, err := s.repo.FindCompanyType(ctx, companyID, leaveType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyTypeState{}, false, nil
		}
		return CompanyTypeState{}, false, err
	}

	systemEnabled := false
	sys, err := s.repo.FindSystemPolicyByType(ctx, leaveType)
	switch {
	case err == nil:
		systemEnabled = sys.IsEnabled
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return CompanyTypeState{}, false, err
	}

	return row.State(systemEnabled), true, nil
}

func (s *service) loadCompanyTypes(ctx context.Context, companyID string) ([]CompanyLeaveType, map[string]bool, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, nil, leavepolicyerrors.ErrInvalidCompanyID
	}

	rows, err := s.repo.ListCompanyTypes(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}
	policies, err := s.repo.ListSystemPolicies(ctx)
	if err != nil {
		return nil, nil, err
	}

	system := make(map[string]bool, len(policies))
	for _, p := range policies {
		system[p.LeaveType] = p.IsEnabled
	}
	return rows, system, nil
}

func mapSystemPolicy(p SystemLeavePolicy) SystemPolicyResponse {
	return SystemPolicyResponse{
		ID:                     p.ID.String(),
		LeaveType:              p.LeaveType,
		DefaultEntitlementDays: p.DefaultEntitlementDays.String(),
		IsEnabled:              p.IsEnabled,
		Remarks:                p.Remarks,
		CreatedAt:              p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              p.UpdatedAt.Format(time.RFC3339),
	}
}

func mapCompanyType(t CompanyLeaveType, systemEnabled bool) CompanyLeaveTypeResponse {
	resp := CompanyLeaveTypeResponse{
		ID:              t.ID.String(),
		CompanyID:       t.CompanyID.String(),
		LeaveType:       t.LeaveType,
		EntitlementDays: t.EntitlementDays.String(),
		Enabled:         t.Enabled,
		Active:          t.Enabled && systemEnabled,
		AllowOverdraft:  t.AllowOverdraft,
	}
	if t.CarryForwardCap != nil {
		v := t.CarryForwardCap.String()
		resp.CarryForwardCap = &v
	}
	return resp
}
