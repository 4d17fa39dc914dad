package grouppolicy

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go-hris-leave/internal/employee"
	grouppolicyerrors "go-hris-leave/internal/grouppolicy/errors"
	"go-hris-leave/internal/leavepolicy"
	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/connection"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EligibilityKeyPrefix = "leave:eligibility:"
	DefaultCacheTTL      = 5 * time.Minute
)

func GetEligibilityKey(companyID string) string {
	return EligibilityKeyPrefix + companyID
}

// GetEligibilityGenerationKey holds the company's cache generation. Writes
// bump it so snapshots built before the write are never read again.
func GetEligibilityGenerationKey(companyID string) string {
	return GetEligibilityKey(companyID) + ":gen"
}

func GetEligibilitySnapshotKey(companyID string, generation int64) string {
	return fmt.Sprintf("%s:v%d", GetEligibilityKey(companyID), generation)
}

// CompanyTypeSource resolves the company's activated leave types.
type CompanyTypeSource interface {
	CompanyTypeStates(ctx context.Context, companyID string) ([]leavepolicy.CompanyTypeState, error)
}

// RestrictionReader lists the leave types an employee's own policy rows
// exclude (included=false).
type RestrictionReader interface {
	ExcludedLeaveTypes(ctx context.Context, companyID, employeeID string) ([]string, error)
}

//go:generate mockgen -source=grouppolicy_service.go -destination=mock/grouppolicy_service_mock.go -package=mock
type Service interface {
	IsRoleAllowed(ctx context.Context, companyID, leaveType, role string) (bool, error)
	// CheckAccess returns nil when emp may apply for leaveType, otherwise
	// the NOT_ELIGIBLE error naming the failed check.
	CheckAccess(ctx context.Context, emp employee.Employee, leaveType string) error
	IsAccessible(ctx context.Context, companyID, employeeID, leaveType string) (EligibilityResponse, error)
	// Eligibility reports every activated leave type with its outcome.
	Eligibility(ctx context.Context, companyID, employeeID string) ([]EligibilityResponse, error)
	SelectableLeaveTypes(ctx context.Context, companyID, employeeID string) ([]string, error)

	AddSetting(ctx context.Context, companyID, actorID string, req AddSettingRequest) (SettingResponse, error)
	RemoveSetting(ctx context.Context, companyID, leaveType, role string) error
	ListSettings(ctx context.Context, companyID, leaveType string) ([]SettingResponse, error)

	Invalidate(ctx context.Context, companyIDs ...string) error
}

// snapshot is the cached, employee independent part of eligibility.
type snapshot struct {
	CompanyTypes map[string]bool     `json:"company_types"`
	Roles        map[string][]string `json:"roles"`
}

type service struct {
	db           *sql.DB
	repo         Repository
	types        CompanyTypeSource
	restrictions RestrictionReader
	directory    employee.Directory
	rdb          *redis.Client
	ttl          time.Duration
	sf           *singleflight.Group
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	types CompanyTypeSource,
	restrictions RestrictionReader,
	directory employee.Directory,
	rdb *redis.Client,
	ttl time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("grouppolicy.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("grouppolicy.service")
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &service{
		db:           db,
		repo:         repo,
		types:        types,
		restrictions: restrictions,
		directory:    directory,
		rdb:          rdb,
		ttl:          ttl,
		sf:           &singleflight.Group{},
		logger:       l,
	}
}

// RoleAllowed applies the open-by-default rule: an empty allow-list admits
// every role, a non-empty one admits exactly the listed roles.
func RoleAllowed(allowed []string, role string) bool {
	if len(allowed) == 0 {
		return true
	}
	return slices.Contains(allowed, role)
}

func (s *service) IsRoleAllowed(ctx context.Context, companyID, leaveType, role string) (bool, error) {
	snap, err := s.load(ctx, companyID)
	if err != nil {
		return false, err
	}
	return RoleAllowed(snap.Roles[leaveType], role), nil
}

func (s *service) CheckAccess(ctx context.Context, emp employee.Employee, leaveType string) error {
	companyID := emp.CompanyID.String()

	snap, err := s.load(ctx, companyID)
	if err != nil {
		return err
	}
	excluded, err := s.restrictions.ExcludedLeaveTypes(ctx, companyID, emp.ID.String())
	if err != nil {
		return err
	}

	return evaluate(snap, excluded, emp.Role(), leaveType)
}

func evaluate(snap *snapshot, excluded []string, role, leaveType string) error {
	if !snap.CompanyTypes[leaveType] {
		return grouppolicyerrors.ErrTypeNotEnabled
	}
	if !RoleAllowed(snap.Roles[leaveType], role) {
		return grouppolicyerrors.ErrRoleNotPermitted
	}
	if slices.Contains(excluded, leaveType) {
		return grouppolicyerrors.ErrPolicyRestricted
	}
	return nil
}

func (s *service) IsAccessible(ctx context.Context, companyID, employeeID, leaveType string) (EligibilityResponse, error) {
	emp, err := s.directory.FindByID(ctx, companyID, employeeID)
	if err != nil {
		return EligibilityResponse{}, err
	}

	err = s.CheckAccess(ctx, *emp, leaveType)
	return toEligibility(leaveType, err)
}

func (s *service) Eligibility(ctx context.Context, companyID, employeeID string) ([]EligibilityResponse, error) {
	emp, err := s.directory.FindByID(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	snap, err := s.load(ctx, companyID)
	if err != nil {
		return nil, err
	}
	excluded, err := s.restrictions.ExcludedLeaveTypes(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	leaveTypes := make([]string, 0, len(snap.CompanyTypes))
	for lt := range snap.CompanyTypes {
		leaveTypes = append(leaveTypes, lt)
	}
	slices.Sort(leaveTypes)

	out := make([]EligibilityResponse, 0, len(leaveTypes))
	for _, lt := range leaveTypes {
		resp, err := toEligibility(lt, evaluate(snap, excluded, emp.Role(), lt))
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}

	s.logger.Debug("eligibility resolved",
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
		zap.Int("leave_types", len(out)),
	)
	return out, nil
}

func (s *service) SelectableLeaveTypes(ctx context.Context, companyID, employeeID string) ([]string, error) {
	all, err := s.Eligibility(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	var selectable []string
	for _, e := range all {
		if e.Accessible {
			selectable = append(selectable, e.LeaveType)
		}
	}
	return selectable, nil
}

// toEligibility folds a NOT_ELIGIBLE error into a response; any other
// error is returned as is.
func toEligibility(leaveType string, err error) (EligibilityResponse, error) {
	switch {
	case err == nil:
		return EligibilityResponse{LeaveType: leaveType, Accessible: true}, nil
	case apperror.HasCode(err, apperror.CodeNotEligible):
		return EligibilityResponse{LeaveType: leaveType, Reason: err.Error()}, nil
	default:
		return EligibilityResponse{}, err
	}
}

func (s *service) AddSetting(ctx context.Context, companyID, actorID string, req AddSettingRequest) (SettingResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SettingResponse{}, grouppolicyerrors.ErrInvalidCompanyID
	}
	leaveType := strings.TrimSpace(req.LeaveType)
	role := strings.TrimSpace(req.Role)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("add group policy setting begin tx failed", zap.Error(err))
		return SettingResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.Exists(ctx, companyID, leaveType, role)
	if err != nil {
		return SettingResponse{}, err
	}
	if exists {
		s.logger.Warn("group policy setting already added",
			zap.String("company_id", companyID),
			zap.String("leave_type", leaveType),
			zap.String("role", role),
		)
		return SettingResponse{}, grouppolicyerrors.ErrSettingExists
	}

	setting := &GroupPolicySetting{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		LeaveType: leaveType,
		Role:      role,
		CreatedBy: actorID,
		CreatedAt: time.Now().UTC(),
	}
	if err := qtx.Create(ctx, setting); err != nil {
		if connection.IsUniqueViolation(err) {
			return SettingResponse{}, grouppolicyerrors.ErrSettingExists
		}
		s.logger.Error("add group policy setting persist failed", zap.Error(err))
		return SettingResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("add group policy setting commit failed", zap.Error(err))
		return SettingResponse{}, err
	}

	s.invalidate(ctx, companyID)
	s.logger.Info("group policy setting added",
		zap.String("company_id", companyID),
		zap.String("leave_type", leaveType),
		zap.String("role", role),
	)

	return mapSetting(*setting), nil
}

// RemoveSetting reopens the type to role. The type becomes open to every
// role only when the last row for it is removed.
func (s *service) RemoveSetting(ctx context.Context, companyID, leaveType, role string) error {
	if _, err := uuid.Parse(companyID); err != nil {
		return grouppolicyerrors.ErrInvalidCompanyID
	}

	n, err := s.repo.Delete(ctx, companyID, leaveType, role)
	if err != nil {
		s.logger.Error("remove group policy setting failed", zap.Error(err))
		return err
	}
	if n == 0 {
		return grouppolicyerrors.ErrSettingNotFound
	}

	s.invalidate(ctx, companyID)
	s.logger.Info("group policy setting removed",
		zap.String("company_id", companyID),
		zap.String("leave_type", leaveType),
		zap.String("role", role),
	)
	return nil
}

func (s *service) ListSettings(ctx context.Context, companyID, leaveType string) ([]SettingResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, grouppolicyerrors.ErrInvalidCompanyID
	}

	list, err := s.repo.List(ctx, companyID, leaveType)
	if err != nil {
		return nil, err
	}
	resp := make([]SettingResponse, len(list))
	for i, st := range list {
		resp[i] = mapSetting(st)
	}
	return resp, nil
}

func (s *service) Invalidate(ctx context.Context, companyIDs ...string) error {
	if s.rdb == nil || len(companyIDs) == 0 {
		return nil
	}
	var errs []error
	for _, id := range companyIDs {
		if err := s.rdb.Incr(ctx, GetEligibilityGenerationKey(id)).Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *service) invalidate(ctx context.Context, companyID string) {
	if err := s.Invalidate(ctx, companyID); err != nil {
		s.logger.Error("failed to invalidate eligibility cache",
			zap.String("key", GetEligibilityGenerationKey(companyID)),
			zap.Error(err),
		)
	}
}

// load returns the company's eligibility snapshot from Redis, rebuilding it
// from the database on a miss. Snapshots are keyed by the generation read
// before the rebuild, so a rebuild racing an invalidation only ever writes
// to a retired key.
func (s *service) load(ctx context.Context, companyID string) (*snapshot, error) {
	var generation int64
	cacheable := false

	if s.rdb != nil {
		g, err := s.rdb.Get(ctx, GetEligibilityGenerationKey(companyID)).Int64()
		switch {
		case err == nil:
			generation, cacheable = g, true
		case errors.Is(err, redis.Nil):
			cacheable = true
		default:
			s.logger.Warn("failed to read eligibility generation", zap.String("company_id", companyID), zap.Error(err))
		}
	}
	cacheKey := GetEligibilitySnapshotKey(companyID, generation)

	if cacheable {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var snap snapshot
			if err := json.Unmarshal([]byte(cached), &snap); err == nil {
				return &snap, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		// Shared by every waiter, so one caller's cancellation must not fail the rest.
		ctx := context.WithoutCancel(ctx)

		states, err := s.types.CompanyTypeStates(ctx, companyID)
		if err != nil {
			return nil, err
		}
		settings, err := s.repo.List(ctx, companyID, "")
		if err != nil {
			return nil, err
		}

		snap := &snapshot{
			CompanyTypes: make(map[string]bool, len(states)),
			Roles:        make(map[string][]string),
		}
		for _, st := range states {
			snap.CompanyTypes[st.LeaveType] = st.Enabled
		}
		for _, st := range settings {
			snap.Roles[st.LeaveType] = append(snap.Roles[st.LeaveType], st.Role)
		}

		if cacheable {
			if jsonData, err := json.Marshal(snap); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, s.ttl).Err(); err != nil {
					s.logger.Warn("failed to cache eligibility snapshot", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*snapshot), nil
}

func mapSetting(st GroupPolicySetting) SettingResponse {
	return SettingResponse{
		ID:        st.ID.String(),
		LeaveType: st.LeaveType,
		Role:      st.Role,
		CreatedAt: st.CreatedAt.Format(time.RFC3339),
	}
}
