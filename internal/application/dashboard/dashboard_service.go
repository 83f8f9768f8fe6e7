package dashboard

import (
	"context"
	"time"

	"github.com/crm/backend/internal/domain/client"
	"github.com/crm/backend/internal/domain/finance"
	"github.com/crm/backend/internal/domain/project"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DashboardStats aggregates the headline figures for the main dashboard
type DashboardStats struct {
	TotalClients    int64           `json:"totalClients"`
	TotalProjects   int64           `json:"totalProjects"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	ActiveProjects  int64           `json:"activeProjects"`
	OverdueProjects int64           `json:"overdueProjects"`
	PendingPayments decimal.Decimal `json:"pendingPayments"`
	MonthlyGrowth   decimal.Decimal `json:"monthlyGrowth"`
}

// FinancialStats aggregates revenue against expenses
type FinancialStats struct {
	Revenue      decimal.Decimal `json:"revenue"`
	Expenses     decimal.Decimal `json:"expenses"`
	Profit       decimal.Decimal `json:"profit"`
	ProfitMargin decimal.Decimal `json:"profit_margin"`
}

// DashboardService computes dashboard figures. Everything is read
// on demand; nothing is cached or precomputed.
type DashboardService struct {
	clientRepo  client.ClientRepository
	projectRepo project.ProjectRepository
	paymentRepo finance.PaymentRepository
	expenseRepo finance.ExpenseRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	clientRepo client.ClientRepository,
	projectRepo project.ProjectRepository,
	paymentRepo finance.PaymentRepository,
	expenseRepo finance.ExpenseRepository,
) *DashboardService {
	return &DashboardService{
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
	}
}

// GetStats returns the headline dashboard figures
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	emptyFilter := shared.Filter{Filters: make(map[string]interface{})}

	totalClients, err := s.clientRepo.Count(ctx, emptyFilter)
	if err != nil {
		return nil, err
	}

	totalProjects, err := s.projectRepo.Count(ctx, emptyFilter)
	if err != nil {
		return nil, err
	}

	totalRevenue, err := s.paymentRepo.SumByStatus(ctx, finance.PaymentStatusCompleted)
	if err != nil {
		return nil, err
	}

	totalExpenses, err := s.expenseRepo.SumAll(ctx)
	if err != nil {
		return nil, err
	}

	statusCounts, err := s.projectRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	var activeProjects int64
	for _, sc := range statusCounts {
		if sc.Status == project.StatusPlanning || sc.Status == project.StatusInProgress {
			activeProjects += sc.Count
		}
	}

	overdueProjects, err := s.projectRepo.CountOverdue(ctx)
	if err != nil {
		return nil, err
	}

	pendingPayments, err := s.paymentRepo.SumByStatus(ctx, finance.PaymentStatusPending)
	if err != nil {
		return nil, err
	}

	monthlyGrowth, err := s.monthlyGrowth(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalClients:    totalClients,
		TotalProjects:   totalProjects,
		TotalRevenue:    totalRevenue,
		TotalExpenses:   totalExpenses,
		ActiveProjects:  activeProjects,
		OverdueProjects: overdueProjects,
		PendingPayments: pendingPayments,
		MonthlyGrowth:   monthlyGrowth,
	}, nil
}

// GetFinancialStats returns revenue, expenses and profit figures
func (s *DashboardService) GetFinancialStats(ctx context.Context) (*FinancialStats, error) {
	revenue, err := s.paymentRepo.SumByStatus(ctx, finance.PaymentStatusCompleted)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.SumAll(ctx)
	if err != nil {
		return nil, err
	}

	profit := revenue.Sub(expenses)

	profitMargin := decimal.Zero
	if !revenue.IsZero() {
		profitMargin = profit.Div(revenue).Mul(decimal.NewFromInt(100))
	}

	return &FinancialStats{
		Revenue:      revenue,
		Expenses:     expenses,
		Profit:       profit,
		ProfitMargin: profitMargin,
	}, nil
}

// monthlyGrowth compares completed payment revenue of the current
// calendar month against the previous one, as a percentage. A previous
// month with zero revenue yields zero growth.
func (s *DashboardService) monthlyGrowth(ctx context.Context, now time.Time) (decimal.Decimal, error) {
	thisMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := thisMonthStart.AddDate(0, -1, 0)
	nextMonthStart := thisMonthStart.AddDate(0, 1, 0)

	thisMonth, err := s.paymentRepo.SumByStatusBetween(ctx, finance.PaymentStatusCompleted, thisMonthStart, nextMonthStart)
	if err != nil {
		return decimal.Zero, err
	}

	lastMonth, err := s.paymentRepo.SumByStatusBetween(ctx, finance.PaymentStatusCompleted, lastMonthStart, thisMonthStart)
	if err != nil {
		return decimal.Zero, err
	}

	if lastMonth.IsZero() {
		return decimal.Zero, nil
	}

	return thisMonth.Sub(lastMonth).Div(lastMonth).Mul(decimal.NewFromInt(100)), nil
}
