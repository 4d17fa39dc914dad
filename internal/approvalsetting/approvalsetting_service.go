package approvalsetting

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	approvalsettingerrors "go-hris-leave/internal/approvalsetting/errors"
	"go-hris-leave/internal/employee"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=approvalsetting_service.go -destination=mock/approvalsetting_service_mock.go -package=mock
type Service interface {
	Upsert(ctx context.Context, companyID, actorID string, req UpsertRequest) (SettingResponse, error)
	Get(ctx context.Context, companyID, leaveType string) (SettingResponse, error)
	List(ctx context.Context, companyID string) ([]SettingResponse, error)
	Delete(ctx context.Context, companyID, leaveType string) error
	// Resolve returns the leave type's own setting, falling back to the
	// global one.
	Resolve(ctx context.Context, companyID, leaveType string) (ApprovalSetting, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	directory employee.Directory
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, directory employee.Directory, logger ...*zap.Logger) Service {
	l := zap.L().Named("approvalsetting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approvalsetting.service")
	}
	return &service{db: db, repo: repo, directory: directory, logger: l}
}

func (s *service) Upsert(ctx context.Context, companyID, actorID string, req UpsertRequest) (SettingResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SettingResponse{}, approvalsettingerrors.ErrInvalidCompanyID
	}
	first, err := uuid.Parse(req.FirstLevelApproverID)
	if err != nil {
		return SettingResponse{}, approvalsettingerrors.ErrInvalidApproverID
	}
	var second *uuid.UUID
	if req.SecondLevelApproverID != "" {
		v, err := uuid.Parse(req.SecondLevelApproverID)
		if err != nil {
			return SettingResponse{}, approvalsettingerrors.ErrInvalidApproverID
		}
		if v == first {
			return SettingResponse{}, approvalsettingerrors.ErrSameApprover
		}
		second = &v
	}

	if s.directory != nil {
		ids := []string{first.String()}
		if second != nil {
			ids = append(ids, second.String())
		}
		for _, id := range ids {
			if _, err := s.directory.FindByID(ctx, companyID, id); err != nil {
				s.logger.Warn("approver lookup failed", zap.String("approver_id", id), zap.Error(err))
				return SettingResponse{}, err
			}
		}
	}

	leaveType := strings.TrimSpace(req.LeaveType)
	now := time.Now().UTC()
	setting := &ApprovalSetting{
		ID:                    uuid.New(),
		CompanyID:             companyUUID,
		LeaveType:             leaveType,
		FirstLevelApproverID:  first,
		SecondLevelApproverID: second,
		UpdatedBy:             actorID,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("upsert approval setting begin tx failed", zap.Error(err))
		return SettingResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Upsert(ctx, setting); err != nil {
		s.logger.Error("upsert approval setting persist failed", zap.Error(err))
		return SettingResponse{}, err
	}
	stored, err := qtx.Find(ctx, companyID, leaveType)
	if err != nil {
		return SettingResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("upsert approval setting commit failed", zap.Error(err))
		return SettingResponse{}, err
	}

	s.logger.Info("approval setting saved",
		zap.String("company_id", companyID),
		zap.String("leave_type", leaveType),
		zap.String("actor_id", actorID),
	)
	return mapSetting(*stored), nil
}

func (s *service) Get(ctx context.Context, companyID, leaveType string) (SettingResponse, error) {
	setting, err := s.repo.Find(ctx, companyID, leaveType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingResponse{}, approvalsettingerrors.ErrSettingNotFound
		}
		return SettingResponse{}, err
	}
	return mapSetting(*setting), nil
}

func (s *service) List(ctx context.Context, companyID string) ([]SettingResponse, error) {
	list, err := s.repo.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]SettingResponse, len(list))
	for i, st := range list {
		resp[i] = mapSetting(st)
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, companyID, leaveType string) error {
	n, err := s.repo.Delete(ctx, companyID, leaveType)
	if err != nil {
		return err
	}
	if n == 0 {
		return approvalsettingerrors.ErrSettingNotFound
	}
	s.logger.Info("approval setting deleted",
		zap.String("company_id", companyID),
		zap.String("leave_type", leaveType),
	)
	return nil
}

func (s *service) Resolve(ctx context.Context, companyID, leaveType string) (ApprovalSetting, error) {
	scopes := []string{leaveType}
	if leaveType != GlobalScope {
		scopes = append(scopes, GlobalScope)
	}
	for _, scope := range scopes {
		setting, err := s.repo.Find(ctx, companyID, scope)
		if err == nil {
			return *setting, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return ApprovalSetting{}, err
		}
	}
	return ApprovalSetting{}, approvalsettingerrors.ErrNoApprover
}

func mapSetting(s ApprovalSetting) SettingResponse {
	resp := SettingResponse{
		ID:                   s.ID.String(),
		LeaveType:            s.LeaveType,
		Global:               s.LeaveType == GlobalScope,
		FirstLevelApproverID: s.FirstLevelApproverID.String(),
		UpdatedBy:            s.UpdatedBy,
		UpdatedAt:            s.UpdatedAt.Format(time.RFC3339),
	}
	if s.SecondLevelApproverID != nil {
		v := s.SecondLevelApproverID.String()
		resp.SecondLevelApproverID = &v
	}
	return resp
}
