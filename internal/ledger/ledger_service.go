package ledger

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/employee"
	"go-hris-leave/internal/leavepolicy"
	ledgererrors "go-hris-leave/internal/ledger/errors"
	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/connection"
	"go-hris-leave/internal/shared/daycount"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompanyTypeReader resolves company leave type activation and defaults.
type CompanyTypeReader interface {
	CompanyTypeState(ctx context.Context, companyID, leaveType string) (leavepolicy.CompanyTypeState, bool, error)
	CompanyTypeStates(ctx context.Context, companyID string) ([]leavepolicy.CompanyTypeState, error)
}

//go:generate mockgen -source=ledger_service.go -destination=mock/ledger_service_mock.go -package=mock
type Service interface {
	EffectiveEntitlement(ctx context.Context, key domain.LeaveKey) (decimal.Decimal, string, error)
	// Balance computes the balance formula for the policy year without locking.
	Balance(ctx context.Context, key domain.LeaveKey, year int) (Balance, error)
	CurrentBalance(ctx context.Context, key domain.LeaveKey, year int) (BalanceResponse, error)

	// LockBalance locks the pair's policy row inside tx, creating it on first
	// use, and returns the balance for year.
	LockBalance(ctx context.Context, tx *sql.Tx, key domain.LeaveKey, year int) (Balance, error)
	// Recompute refreshes the cached balance column inside tx.
	Recompute(ctx context.Context, tx *sql.Tx, key domain.LeaveKey) (Balance, error)

	AdjustEntitlement(ctx context.Context, companyID, actorID string, req AdjustEntitlementRequest) (AdjustmentResponse, error)
	ListAdjustments(ctx context.Context, companyID, employeeID string) ([]AdjustmentResponse, error)

	RollCarryForward(ctx context.Context, companyID string, req CarryForwardRequest) ([]CarryForwardResponse, error)
	ListCarryForward(ctx context.Context, companyID string, year int) ([]CarryForwardResponse, error)

	CreatePolicy(ctx context.Context, companyID string, req CreatePolicyRequest) (PolicyResponse, error)
	UpdatePolicy(ctx context.Context, companyID, id string, req UpdatePolicyRequest) (PolicyResponse, error)
	DeletePolicy(ctx context.Context, companyID, id string) error
	ListPolicies(ctx context.Context, companyID, employeeID string) ([]PolicyResponse, error)
	ExcludedLeaveTypes(ctx context.Context, companyID, employeeID string) ([]string, error)
	// ProvisionEmployee creates an inheriting policy row for every leave type
	// the company has activated. Existing rows are left alone.
	ProvisionEmployee(ctx context.Context, companyID, employeeID string) (int, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	types     CompanyTypeReader
	directory employee.Directory
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, types CompanyTypeReader, directory employee.Directory, logger ...*zap.Logger) Service {
	l := zap.L().Named("ledger.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.service")
	}
	return &service{db: db, repo: repo, types: types, directory: directory, logger: l}
}

func currentYear() int {
	return time.Now().UTC().Year()
}

func (s *service) EffectiveEntitlement(ctx context.Context, key domain.LeaveKey) (decimal.Decimal, string, error) {
	policy, err := s.repo.FindPolicy(ctx, key)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, "", err
	}
	state, _, err := s.types.CompanyTypeState(ctx, key.CompanyID, key.LeaveType)
	if err != nil {
		return decimal.Zero, "", err
	}
	return s.effectiveEntitlement(ctx, s.repo, key, policy, state)
}

// effectiveEntitlement walks the priority chain: latest active adjustment,
// then the employee's own entitlement, then the company default.
func (s *service) effectiveEntitlement(
	ctx context.Context,
	repo Repository,
	key domain.LeaveKey,
	policy *EmployeeLeavePolicy,
	state leavepolicy.CompanyTypeState,
) (decimal.Decimal, string, error) {
	adj, err := repo.LatestActiveAdjustment(ctx, key)
	switch {
	case err == nil:
		return adj.AdjustedEntitlement, SourceAdjustment, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return decimal.Zero, "", err
	}

	if policy != nil && policy.Entitlement != nil {
		return *policy.Entitlement, SourcePolicy, nil
	}
	if state.LeaveType != "" {
		return state.EntitlementDays, SourceCompany, nil
	}
	return decimal.Zero, SourceNone, nil
}

// compute evaluates entitlement - approved days + carried days for year.
func (s *service) compute(ctx context.Context, repo Repository, key domain.LeaveKey, year int, policy *EmployeeLeavePolicy) (Balance, error) {
	// A type the company never activated resolves to the zero state.
	state, _, err := s.types.CompanyTypeState(ctx, key.CompanyID, key.LeaveType)
	if err != nil {
		return Balance{}, err
	}

	entitlement, source, err := s.effectiveEntitlement(ctx, repo, key, policy, state)
	if err != nil {
		return Balance{}, err
	}

	from, to := daycount.YearBounds(year)
	taken, err := repo.SumApprovedDays(ctx, key, from, to)
	if err != nil {
		return Balance{}, err
	}
	carried, err := repo.SumCarriedDays(ctx, key, year)
	if err != nil {
		return Balance{}, err
	}

	included := policy == nil || policy.Included
	return Balance{
		Key:               key,
		Year:              year,
		Entitlement:       entitlement,
		EntitlementSource: source,
		Taken:             taken,
		Carried:           carried,
		Remaining:         entitlement.Sub(taken).Add(carried),
		Included:          included,
		AllowOverdraft:    state.AllowOverdraft,
		CompanyEnabled:    state.Enabled,
		CarryForwardCap:   state.CarryForwardCap,
	}, nil
}

func (s *service) Balance(ctx context.Context, key domain.LeaveKey, year int) (Balance, error) {
	policy, err := s.repo.FindPolicy(ctx, key)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return Balance{}, err
		}
		policy = nil
	}
	return s.compute(ctx, s.repo, key, year, policy)
}

func (s *service) CurrentBalance(ctx context.Context, key domain.LeaveKey, year int) (BalanceResponse, error) {
	if err := validateKey(key); err != nil {
		return BalanceResponse{}, err
	}
	if year == 0 {
		year = currentYear()
	}

	b, err := s.Balance(ctx, key, year)
	if err != nil {
		return BalanceResponse{}, err
	}
	return mapBalance(b), nil
}

func (s *service) LockBalance(ctx context.Context, tx *sql.Tx, key domain.LeaveKey, year int) (Balance, error) {
	qtx := s.repo.WithTx(tx)

	policy, err := s.lockOrCreate(ctx, qtx, key)
	if err != nil {
		return Balance{}, err
	}
	return s.compute(ctx, qtx, key, year, policy)
}

func (s *service) Recompute(ctx context.Context, tx *sql.Tx, key domain.LeaveKey) (Balance, error) {
	qtx := s.repo.WithTx(tx)

	policy, err := s.lockOrCreate(ctx, qtx, key)
	if err != nil {
		return Balance{}, err
	}
	return s.recompute(ctx, qtx, policy)
}

// recompute writes the current year's balance into an already locked row.
func (s *service) recompute(ctx context.Context, qtx Repository, policy *EmployeeLeavePolicy) (Balance, error) {
	b, err := s.compute(ctx, qtx, policy.Key(), currentYear(), policy)
	if err != nil {
		return Balance{}, err
	}

	policy.Balance = b.Remaining
	policy.BalanceYear = b.Year
	if err := qtx.SavePolicy(ctx, policy); err != nil {
		s.logger.Warn("balance write failed",
			zap.String("employee_id", policy.EmployeeID.String()),
			zap.String("leave_type", policy.LeaveType),
			zap.Error(err),
		)
		return Balance{}, err
	}

	s.logger.Debug("balance recomputed",
		zap.String("employee_id", policy.EmployeeID.String()),
		zap.String("leave_type", policy.LeaveType),
		zap.String("balance", b.Remaining.String()),
		zap.Int64("version", policy.Version),
	)
	return b, nil
}

func (s *service) lockOrCreate(ctx context.Context, qtx Repository, key domain.LeaveKey) (*EmployeeLeavePolicy, error) {
	policy, err := qtx.LockPolicy(ctx, key)
	if err == nil {
		return policy, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh, err := newInheritingPolicy(key)
	if err != nil {
		return nil, err
	}
	if err := qtx.EnsurePolicy(ctx, fresh); err != nil {
		return nil, err
	}
	return qtx.LockPolicy(ctx, key)
}

func newInheritingPolicy(key domain.LeaveKey) (*EmployeeLeavePolicy, error) {
	companyID, err := uuid.Parse(key.CompanyID)
	if err != nil {
		return nil, ledgererrors.ErrInvalidCompanyID
	}
	employeeID, err := uuid.Parse(key.EmployeeID)
	if err != nil {
		return nil, ledgererrors.ErrInvalidEmployeeID
	}
	now := time.Now().UTC()
	return &EmployeeLeavePolicy{
		ID:          uuid.New(),
		CompanyID:   companyID,
		EmployeeID:  employeeID,
		LeaveType:   key.LeaveType,
		Balance:     decimal.Zero,
		BalanceYear: now.Year(),
		Included:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (s *service) AdjustEntitlement(ctx context.Context, companyID, actorID string, req AdjustEntitlementRequest) (AdjustmentResponse, error) {
	key := domain.LeaveKey{CompanyID: companyID, EmployeeID: req.EmployeeID, LeaveType: strings.TrimSpace(req.LeaveType)}
	if err := validateKey(key); err != nil {
		return AdjustmentResponse{}, err
	}
	reason := strings.TrimSpace(req.AdjustmentReason)
	if reason == "" {
		return AdjustmentResponse{}, ledgererrors.ErrReasonRequired
	}
	if req.AdjustedEntitlement < 0 {
		return AdjustmentResponse{}, ledgererrors.ErrNegativeEntitlement
	}
	effective := time.Now().UTC().Truncate(24 * time.Hour)
	if req.EffectiveDate != "" {
		d, err := daycount.ParseDate(req.EffectiveDate)
		if err != nil {
			return AdjustmentResponse{}, ledgererrors.ErrInvalidEffectiveDate
		}
		effective = d
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("adjust entitlement begin tx failed", zap.Error(err))
		return AdjustmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	policy, err := s.lockOrCreate(ctx, qtx, key)
	if err != nil {
		return AdjustmentResponse{}, err
	}
	state, _, err := s.types.CompanyTypeState(ctx, key.CompanyID, key.LeaveType)
	if err != nil {
		return AdjustmentResponse{}, err
	}
	original, _, err := s.effectiveEntitlement(ctx, qtx, key, policy, state)
	if err != nil {
		return AdjustmentResponse{}, err
	}

	if err := qtx.SupersedeAdjustments(ctx, key); err != nil {
		return AdjustmentResponse{}, err
	}
	adj := &IndividualLeaveAdjustment{
		ID:                  uuid.New(),
		CompanyID:           policy.CompanyID,
		EmployeeID:          policy.EmployeeID,
		LeaveType:           key.LeaveType,
		OriginalEntitlement: original,
		AdjustedEntitlement: decimal.NewFromFloat(req.AdjustedEntitlement),
		AdjustmentReason:    reason,
		EffectiveDate:       effective,
		Status:              AdjustmentActive,
		CreatedBy:           actorID,
		CreatedAt:           time.Now().UTC(),
	}
	if err := qtx.CreateAdjustment(ctx, adj); err != nil {
		s.logger.Error("adjust entitlement persist failed", zap.Error(err))
		return AdjustmentResponse{}, err
	}

	b, err := s.recompute(ctx, qtx, policy)
	if err != nil {
		return AdjustmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("adjust entitlement commit failed", zap.Error(err))
		return AdjustmentResponse{}, err
	}

	s.logger.Info("entitlement adjusted",
		zap.String("company_id", companyID),
		zap.String("employee_id", key.EmployeeID),
		zap.String("leave_type", key.LeaveType),
		zap.String("original", original.String()),
		zap.String("adjusted", adj.AdjustedEntitlement.String()),
		zap.String("actor_id", actorID),
	)

	resp := mapAdjustment(*adj)
	resp.Balance = b.Remaining.String()
	return resp, nil
}

func (s *service) ListAdjustments(ctx context.Context, companyID, employeeID string) ([]AdjustmentResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, ledgererrors.ErrInvalidEmployeeID
	}
	list, err := s.repo.ListAdjustments(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	resp := make([]AdjustmentResponse, len(list))
	for i, a := range list {
		resp[i] = mapAdjustment(a)
	}
	return resp, nil
}

// RollCarryForward writes max(0, balance of fromYear), capped by the leave
// type's carry-forward cap, as the carried days of fromYear+1.
func (s *service) RollCarryForward(ctx context.Context, companyID string, req CarryForwardRequest) ([]CarryForwardResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, ledgererrors.ErrInvalidCompanyID
	}
	if req.FromYear < 2000 || req.FromYear > 2100 {
		return nil, ledgererrors.ErrInvalidYear
	}
	single := req.EmployeeID != "" && req.LeaveType != ""
	// The single-pair path may create the policy row, so the employee must exist.
	if single && s.directory != nil {
		if _, err := s.directory.FindByID(ctx, companyID, req.EmployeeID); err != nil {
			return nil, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("carry forward begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	var keys []domain.LeaveKey
	if single {
		keys = []domain.LeaveKey{{CompanyID: companyID, EmployeeID: req.EmployeeID, LeaveType: req.LeaveType}}
	} else {
		policies, err := qtx.ListPoliciesByCompany(ctx, companyID)
		if err != nil {
			return nil, err
		}
		for _, p := range policies {
			if !p.Included {
				continue
			}
			if req.EmployeeID != "" && p.EmployeeID.String() != req.EmployeeID {
				continue
			}
			if req.LeaveType != "" && p.LeaveType != req.LeaveType {
				continue
			}
			keys = append(keys, p.Key())
		}
	}

	out := make([]CarryForwardResponse, 0, len(keys))
	for _, key := range keys {
		policy, err := s.lockOrCreate(ctx, qtx, key)
		if err != nil {
			return nil, err
		}
		closing, err := s.compute(ctx, qtx, key, req.FromYear, policy)
		if err != nil {
			return nil, err
		}

		carried := CarriedDays(closing.Remaining, closing.CarryForwardCap)
		now := time.Now().UTC()
		rec := &CarryForwardRecord{
			ID:          uuid.New(),
			CompanyID:   policy.CompanyID,
			EmployeeID:  policy.EmployeeID,
			LeaveType:   key.LeaveType,
			Year:        req.FromYear + 1,
			CarriedDays: carried,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := qtx.UpsertCarryForward(ctx, rec); err != nil {
			s.logger.Error("carry forward persist failed", zap.Error(err))
			return nil, err
		}
		if _, err := s.recompute(ctx, qtx, policy); err != nil {
			return nil, err
		}

		out = append(out, CarryForwardResponse{
			EmployeeID:  key.EmployeeID,
			LeaveType:   key.LeaveType,
			Year:        rec.Year,
			CarriedDays: carried.String(),
		})
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("carry forward commit failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("carry forward rolled",
		zap.String("company_id", companyID),
		zap.Int("from_year", req.FromYear),
		zap.Int("pairs", len(out)),
	)
	return out, nil
}

// CarriedDays clamps a closing balance to [0, cap]. A nil cap carries
// everything.
func CarriedDays(closing decimal.Decimal, limit *decimal.Decimal) decimal.Decimal {
	carried := decimal.Max(decimal.Zero, closing)
	if limit != nil {
		carried = decimal.Min(carried, *limit)
	}
	return carried
}

func (s *service) ListCarryForward(ctx context.Context, companyID string, year int) ([]CarryForwardResponse, error) {
	if year == 0 {
		year = currentYear()
	}
	list, err := s.repo.ListCarryForward(ctx, companyID, year)
	if err != nil {
		return nil, err
	}
	resp := make([]CarryForwardResponse, len(list))
	for i, r := range list {
		resp[i] = CarryForwardResponse{
			EmployeeID:  r.EmployeeID.String(),
			LeaveType:   r.LeaveType,
			Year:        r.Year,
			CarriedDays: r.CarriedDays.String(),
		}
	}
	return resp, nil
}

func (s *service) CreatePolicy(ctx context.Context, companyID string, req CreatePolicyRequest) (PolicyResponse, error) {
	key := domain.LeaveKey{CompanyID: companyID, EmployeeID: req.EmployeeID, LeaveType: strings.TrimSpace(req.LeaveType)}
	if err := validateKey(key); err != nil {
		return PolicyResponse{}, err
	}
	if s.directory != nil {
		if _, err := s.directory.FindByID(ctx, companyID, req.EmployeeID); err != nil {
			return PolicyResponse{}, err
		}
	}
	if _, ok, err := s.types.CompanyTypeState(ctx, companyID, key.LeaveType); err != nil {
		return PolicyResponse{}, err
	} else if !ok {
		return PolicyResponse{}, ledgererrors.ErrLeaveTypeNotActivated
	}

	policy, err := newInheritingPolicy(key)
	if err != nil {
		return PolicyResponse{}, err
	}
	if req.Entitlement != nil {
		v := decimal.NewFromFloat(*req.Entitlement)
		policy.Entitlement = &v
	}
	if req.Included != nil {
		policy.Included = *req.Included
	}
	policy.Remarks = req.Remarks

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave policy begin tx failed", zap.Error(err))
		return PolicyResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.CreatePolicy(ctx, policy); err != nil {
		if connection.IsUniqueViolation(err) {
			return PolicyResponse{}, ledgererrors.ErrPolicyExists
		}
		s.logger.Error("create leave policy persist failed", zap.Error(err))
		return PolicyResponse{}, err
	}
	b, err := s.recompute(ctx, qtx, policy)
	if err != nil {
		return PolicyResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave policy commit failed", zap.Error(err))
		return PolicyResponse{}, err
	}

	s.logger.Info("employee leave policy created",
		zap.String("company_id", companyID),
		zap.String("employee_id", key.EmployeeID),
		zap.String("leave_type", key.LeaveType),
	)
	return mapPolicy(*policy, b), nil
}

func (s *service) UpdatePolicy(ctx context.Context, companyID, id string, req UpdatePolicyRequest) (PolicyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PolicyResponse{}, ledgererrors.ErrInvalidPolicyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave policy begin tx failed", zap.Error(err))
		return PolicyResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	policy, err := qtx.LockPolicyByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PolicyResponse{}, ledgererrors.ErrPolicyNotFound
		}
		return PolicyResponse{}, err
	}
	if req.Version != nil && *req.Version != policy.Version {
		s.logger.Warn("stale leave policy update",
			zap.String("policy_id", id),
			zap.Int64("sent_version", *req.Version),
			zap.Int64("stored_version", policy.Version),
		)
		return PolicyResponse{}, apperror.ErrConcurrentModification
	}

	switch {
	case req.ClearEntitlement:
		policy.Entitlement = nil
	case req.Entitlement != nil:
		if *req.Entitlement < 0 {
			return PolicyResponse{}, ledgererrors.ErrNegativeEntitlement
		}
		v := decimal.NewFromFloat(*req.Entitlement)
		policy.Entitlement = &v
	}
	if req.Remarks != nil {
		policy.Remarks = *req.Remarks
	}
	if req.Included != nil {
		policy.Included = *req.Included
	}

	b, err := s.recompute(ctx, qtx, policy)
	if err != nil {
		return PolicyResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave policy commit failed", zap.Error(err))
		return PolicyResponse{}, err
	}

	s.logger.Info("employee leave policy updated",
		zap.String("policy_id", id),
		zap.Bool("included", policy.Included),
	)
	return mapPolicy(*policy, b), nil
}

func (s *service) DeletePolicy(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ledgererrors.ErrInvalidPolicyID
	}
	n, err := s.repo.DeletePolicy(ctx, companyID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ledgererrors.ErrPolicyNotFound
	}
	s.logger.Info("employee leave policy deleted", zap.String("policy_id", id))
	return nil
}

func (s *service) ListPolicies(ctx context.Context, companyID, employeeID string) ([]PolicyResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, ledgererrors.ErrInvalidEmployeeID
	}
	list, err := s.repo.ListPoliciesByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	year := currentYear()
	resp := make([]PolicyResponse, 0, len(list))
	for i := range list {
		b, err := s.compute(ctx, s.repo, list[i].Key(), year, &list[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, mapPolicy(list[i], b))
	}
	return resp, nil
}

func (s *service) ExcludedLeaveTypes(ctx context.Context, companyID, employeeID string) ([]string, error) {
	return s.repo.ListExcludedTypes(ctx, companyID, employeeID)
}

func (s *service) ProvisionEmployee(ctx context.Context, companyID, employeeID string) (int, error) {
	states, err := s.types.CompanyTypeStates(ctx, companyID)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	created := 0
	for _, st := range states {
		if !st.Enabled {
			continue
		}
		key := domain.LeaveKey{CompanyID: companyID, EmployeeID: employeeID, LeaveType: st.LeaveType}
		if _, err := qtx.FindPolicy(ctx, key); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}

		policy, err := s.lockOrCreate(ctx, qtx, key)
		if err != nil {
			return 0, err
		}
		if _, err := s.recompute(ctx, qtx, policy); err != nil {
			return 0, err
		}
		created++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	s.logger.Info("employee leave policies provisioned",
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
		zap.Int("created", created),
	)
	return created, nil
}

func validateKey(key domain.LeaveKey) error {
	if _, err := uuid.Parse(key.CompanyID); err != nil {
		return ledgererrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(key.EmployeeID); err != nil {
		return ledgererrors.ErrInvalidEmployeeID
	}
	if key.LeaveType == "" {
		return ledgererrors.ErrLeaveTypeRequired
	}
	return nil
}

func mapBalance(b Balance) BalanceResponse {
	return BalanceResponse{
		EmployeeID:        b.Key.EmployeeID,
		LeaveType:         b.Key.LeaveType,
		Year:              b.Year,
		Entitlement:       b.Entitlement.String(),
		EntitlementSource: b.EntitlementSource,
		Taken:             b.Taken.String(),
		Carried:           b.Carried.String(),
		Remaining:         b.Remaining.String(),
		Included:          b.Included,
		AllowOverdraft:    b.AllowOverdraft,
	}
}

func mapPolicy(p EmployeeLeavePolicy, b Balance) PolicyResponse {
	resp := PolicyResponse{
		ID:                   p.ID.String(),
		EmployeeID:           p.EmployeeID.String(),
		LeaveType:            p.LeaveType,
		EffectiveEntitlement: b.Entitlement.String(),
		EntitlementSource:    b.EntitlementSource,
		Balance:              p.Balance.String(),
		BalanceYear:          p.BalanceYear,
		Remarks:              p.Remarks,
		Included:             p.Included,
		Version:              p.Version,
	}
	if p.Entitlement != nil {
		v := p.Entitlement.String()
		resp.Entitlement = &v
	}
	return resp
}

func mapAdjustment(a IndividualLeaveAdjustment) AdjustmentResponse {
	return AdjustmentResponse{
		ID:                  a.ID.String(),
		EmployeeID:          a.EmployeeID.String(),
		LeaveType:           a.LeaveType,
		OriginalEntitlement: a.OriginalEntitlement.String(),
		AdjustedEntitlement: a.AdjustedEntitlement.String(),
		AdjustmentReason:    a.AdjustmentReason,
		EffectiveDate:       a.EffectiveDate.Format(daycount.DateLayout),
		Status:              a.Status,
		CreatedBy:           a.CreatedBy,
		CreatedAt:           a.CreatedAt.Format(time.RFC3339),
	}
}
