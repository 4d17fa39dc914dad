package summary

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/employee"
	"go-hris-leave/internal/grouppolicy"
	"go-hris-leave/internal/leavepolicy"
	"go-hris-leave/internal/ledger"
	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/contextutil"
	"go-hris-leave/internal/shared/daycount"
	summaryerrors "go-hris-leave/internal/summary/errors"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// companyWorkers bounds the employees summarized concurrently.
const companyWorkers = 4

//go:generate mockgen -source=summary_service.go -destination=mock/summary_service_mock.go -package=mock
type Service interface {
	EmployeeSummary(ctx context.Context, companyID, employeeID string, year int) (EmployeeSummaryResponse, error)
	CompanySummary(ctx context.Context, companyID string, year int) ([]EmployeeSummaryResponse, error)
	LeaveTypeStatistics(ctx context.Context, companyID string, year int) ([]LeaveTypeStatisticsResponse, error)
	// RenderPDF renders CompanySummary as an A4 table.
	RenderPDF(ctx context.Context, companyID string, year int) ([]byte, error)
}

type service struct {
	repo        Repository
	directory   employee.Directory
	types       ledger.CompanyTypeReader
	eligibility grouppolicy.Service
	balances    ledger.Service
	logger      *zap.Logger
}

func NewService(
	repo Repository,
	directory employee.Directory,
	types ledger.CompanyTypeReader,
	eligibility grouppolicy.Service,
	balances ledger.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("summary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("summary.service")
	}
	return &service{
		repo:        repo,
		directory:   directory,
		types:       types,
		eligibility: eligibility,
		balances:    balances,
		logger:      l,
	}
}

type countKey struct {
	employeeID string
	leaveType  string
}

// row is one employee and leave type before it is rendered.
type row struct {
	leaveType string
	balance   ledger.Balance
	eligible  bool
	count     int64
}

func (s *service) EmployeeSummary(ctx context.Context, companyID, employeeID string, year int) (EmployeeSummaryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("employee summary requested",
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
	)

	if _, err := uuid.Parse(companyID); err != nil {
		return EmployeeSummaryResponse{}, summaryerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return EmployeeSummaryResponse{}, summaryerrors.ErrInvalidEmployeeID
	}
	year, err := resolveYear(year)
	if err != nil {
		return EmployeeSummaryResponse{}, err
	}

	emp, err := s.directory.FindByID(ctx, companyID, employeeID)
	if err != nil {
		return EmployeeSummaryResponse{}, err
	}
	states, err := s.enabledTypes(ctx, companyID)
	if err != nil {
		return EmployeeSummaryResponse{}, err
	}
	counts, _, err := s.counts(ctx, companyID, employeeID, year)
	if err != nil {
		return EmployeeSummaryResponse{}, err
	}

	rows, err := s.rows(ctx, *emp, year, states, counts)
	if err != nil {
		return EmployeeSummaryResponse{}, err
	}
	return mapEmployee(*emp, year, rows), nil
}

func (s *service) CompanySummary(ctx context.Context, companyID string, year int) ([]EmployeeSummaryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	year, err := resolveYear(year)
	if err != nil {
		return nil, err
	}
	perEmployee, _, err := s.companyRows(ctx, companyID, year)
	if err != nil {
		return nil, err
	}

	resp := make([]EmployeeSummaryResponse, len(perEmployee))
	for i, e := range perEmployee {
		resp[i] = mapEmployee(e.employee, year, e.rows)
	}
	log.Info("company summary built",
		zap.String("company_id", companyID),
		zap.Int("year", year),
		zap.Int("employees", len(resp)),
	)
	return resp, nil
}

func (s *service) LeaveTypeStatistics(ctx context.Context, companyID string, year int) ([]LeaveTypeStatisticsResponse, error) {
	year, err := resolveYear(year)
	if err != nil {
		return nil, err
	}
	perEmployee, byStatus, err := s.companyRows(ctx, companyID, year)
	if err != nil {
		return nil, err
	}

	type totals struct {
		employees                     int
		entitlement, taken, remaining decimal.Decimal
	}
	agg := map[string]*totals{}
	var order []string
	for _, e := range perEmployee {
		for _, r := range e.rows {
			t, ok := agg[r.leaveType]
			if !ok {
				t = &totals{}
				agg[r.leaveType] = t
				order = append(order, r.leaveType)
			}
			if !r.eligible || !r.balance.Included {
				continue
			}
			t.employees++
			t.entitlement = t.entitlement.Add(r.balance.Entitlement)
			t.taken = t.taken.Add(r.balance.Taken)
			t.remaining = t.remaining.Add(r.balance.Remaining)
		}
	}
	sort.Strings(order)

	resp := make([]LeaveTypeStatisticsResponse, 0, len(order))
	for _, leaveType := range order {
		t := agg[leaveType]
		statuses := byStatus[leaveType]
		resp = append(resp, LeaveTypeStatisticsResponse{
			LeaveType:        leaveType,
			Employees:        t.employees,
			TotalEntitlement: t.entitlement.String(),
			TotalTaken:       t.taken.String(),
			TotalRemaining:   t.remaining.String(),
			Pending:          statuses[domain.LeaveStatusPending],
			Approved:         statuses[domain.LeaveStatusApproved],
			Rejected:         statuses[domain.LeaveStatusRejected],
		})
	}
	return resp, nil
}

func (s *service) RenderPDF(ctx context.Context, companyID string, year int) ([]byte, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	year, err := resolveYear(year)
	if err != nil {
		return nil, err
	}
	summaries, err := s.CompanySummary(ctx, companyID, year)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(fmt.Sprintf("Leave Summary %d", year), false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Leave Summary %d", year))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", time.Now().UTC().Format(daycount.DateLayout)))
	pdf.Ln(10)

	headers := []string{"Employee", "Role", "Leave Type", "Eligible", "Entitled", "Taken", "Carried", "Remaining", "Applications"}
	widths := []float64{55, 35, 45, 20, 22, 22, 22, 25, 24}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	lines := 0
	for _, e := range summaries {
		for _, t := range e.LeaveTypes {
			cells := []string{
				tr(e.FullName),
				tr(e.Role),
				tr(t.LeaveType),
				yesNo(t.IsEligible),
				t.EntitlementDays,
				t.DaysTaken,
				t.CarriedDays,
				t.RemainingDays,
				fmt.Sprintf("%d", t.ApplicationsCount),
			}
			for i, v := range cells {
				align := "R"
				if i < 4 {
					align = "L"
				}
				pdf.CellFormat(widths[i], 7, v, "1", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
			lines++
		}
	}
	if lines == 0 {
		pdf.CellFormat(0, 7, "No leave types are active for this company.", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Error("render leave summary pdf failed", zap.Error(err))
		return nil, err
	}

	log.Info("leave summary pdf rendered",
		zap.String("company_id", companyID),
		zap.Int("year", year),
		zap.Int("rows", lines),
	)
	return buf.Bytes(), nil
}

type employeeRows struct {
	employee employee.Employee
	rows     []row
}

// companyRows computes every employee's rows plus the application counts
// per leave type and status.
func (s *service) companyRows(ctx context.Context, companyID string, year int) ([]employeeRows, map[string]map[string]int64, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, nil, summaryerrors.ErrInvalidCompanyID
	}

	employees, err := s.directory.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}
	states, err := s.enabledTypes(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}
	counts, byStatus, err := s.counts(ctx, companyID, "", year)
	if err != nil {
		return nil, nil, err
	}

	out := make([]employeeRows, len(employees))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(companyWorkers)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			rows, err := s.rows(gctx, emp, year, states, counts)
			if err != nil {
				return err
			}
			out[i] = employeeRows{employee: emp, rows: rows}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("company summary failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return nil, nil, err
	}
	return out, byStatus, nil
}

func (s *service) rows(ctx context.Context, emp employee.Employee, year int, states []leavepolicy.CompanyTypeState, counts map[countKey]int64) ([]row, error) {
	employeeID := emp.ID.String()
	out := make([]row, 0, len(states))
	for _, st := range states {
		eligible := true
		if err := s.eligibility.CheckAccess(ctx, emp, st.LeaveType); err != nil {
			if !apperror.HasCode(err, apperror.CodeNotEligible) {
				return nil, err
			}
			eligible = false
		}

		b, err := s.balances.Balance(ctx, domain.LeaveKey{
			CompanyID:  emp.CompanyID.String(),
			EmployeeID: employeeID,
			LeaveType:  st.LeaveType,
		}, year)
		if err != nil {
			return nil, err
		}

		out = append(out, row{
			leaveType: st.LeaveType,
			balance:   b,
			eligible:  eligible,
			count:     counts[countKey{employeeID: employeeID, leaveType: st.LeaveType}],
		})
	}
	return out, nil
}

func (s *service) enabledTypes(ctx context.Context, companyID string) ([]leavepolicy.CompanyTypeState, error) {
	states, err := s.types.CompanyTypeStates(ctx, companyID)
	if err != nil {
		return nil, err
	}
	enabled := make([]leavepolicy.CompanyTypeState, 0, len(states))
	for _, st := range states {
		if st.Enabled {
			enabled = append(enabled, st)
		}
	}
	sort.Slice(enabled, func(i, j int) bool { return enabled[i].LeaveType < enabled[j].LeaveType })
	return enabled, nil
}

func (s *service) counts(ctx context.Context, companyID, employeeID string, year int) (map[countKey]int64, map[string]map[string]int64, error) {
	from, to := daycount.YearBounds(year)
	list, err := s.repo.CountApplications(ctx, companyID, employeeID, from, to)
	if err != nil {
		return nil, nil, err
	}

	perEmployee := map[countKey]int64{}
	byStatus := map[string]map[string]int64{}
	for _, c := range list {
		perEmployee[countKey{employeeID: c.EmployeeID, leaveType: c.LeaveType}] += c.Applications
		if byStatus[c.LeaveType] == nil {
			byStatus[c.LeaveType] = map[string]int64{}
		}
		byStatus[c.LeaveType][c.Status] += c.Applications
	}
	return perEmployee, byStatus, nil
}

func resolveYear(year int) (int, error) {
	if year == 0 {
		return time.Now().UTC().Year(), nil
	}
	if year < 2000 || year > 2100 {
		return 0, summaryerrors.ErrInvalidYear
	}
	return year, nil
}

func mapEmployee(emp employee.Employee, year int, rows []row) EmployeeSummaryResponse {
	resp := EmployeeSummaryResponse{
		EmployeeID: emp.ID.String(),
		FullName:   emp.FullName,
		Role:       emp.Role(),
		Year:       year,
		LeaveTypes: make([]LeaveTypeSummary, len(rows)),
	}
	for i, r := range rows {
		resp.LeaveTypes[i] = LeaveTypeSummary{
			LeaveType:         r.leaveType,
			EntitlementDays:   r.balance.Entitlement.String(),
			DaysTaken:         r.balance.Taken.String(),
			CarriedDays:       r.balance.Carried.String(),
			RemainingDays:     r.balance.Remaining.String(),
			ApplicationsCount: r.count,
			IsEligible:        r.eligible,
		}
	}
	return resp
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
