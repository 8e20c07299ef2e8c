package dashboarding

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
)

// Service implementa o pipeline do dashboard: carregar, filtrar,
// agregar. Cada operação reexecuta o pipeline completo sobre a tabela
// em cache; não há estado entre renderizações.
type Service struct {
	loader loading.SaleLoader
}

func NewService(loader loading.SaleLoader) Dashboarder {
	return &Service{
		loader: loader,
	}
}

func (s *Service) GetDashboard(ctx context.Context, filters *domain.SalesFilters) (*domain.DashboardResponse, error) {
	sales, err := s.loadWithFilters(ctx, filters)
	if err != nil {
		return nil, err
	}

	return domain.BuildDashboard(sales, filters), nil
}

func (s *Service) GetKPIs(ctx context.Context, filters *domain.SalesFilters) (*domain.KPISummary, error) {
	filtered, err := s.filteredSales(ctx, filters)
	if err != nil {
		return nil, err
	}

	return domain.Summarize(filtered), nil
}

func (s *Service) GetWeeklySales(ctx context.Context, filters *domain.SalesFilters) ([]*domain.WeeklyTotal, error) {
	filtered, err := s.filteredSales(ctx, filters)
	if err != nil {
		return nil, err
	}

	return domain.WeeklyTotals(filtered), nil
}

func (s *Service) GetProductTotals(ctx context.Context, filters *domain.SalesFilters) (map[string]*domain.ProductTotals, error) {
	filtered, err := s.filteredSales(ctx, filters)
	if err != nil {
		return nil, err
	}

	return domain.ProductTotalsByProduct(filtered), nil
}

func (s *Service) GetSales(ctx context.Context, filters *domain.SalesFilters) ([]*domain.Sale, error) {
	return s.filteredSales(ctx, filters)
}

func (s *Service) GetFilterBounds(ctx context.Context) (*domain.FilterBounds, error) {
	sales, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	return domain.Bounds(sales), nil
}

// loadWithFilters valida os filtros e carrega a tabela completa
func (s *Service) loadWithFilters(ctx context.Context, filters *domain.SalesFilters) ([]*domain.Sale, error) {
	if err := filters.Validate(); err != nil {
		logrus.WithError(err).Warn("Filtros de dashboard inválidos")
		return nil, err
	}

	return s.loader.Load(ctx)
}

func (s *Service) filteredSales(ctx context.Context, filters *domain.SalesFilters) ([]*domain.Sale, error) {
	sales, err := s.loadWithFilters(ctx, filters)
	if err != nil {
		return nil, err
	}

	return domain.FilterSales(sales, filters), nil
}
