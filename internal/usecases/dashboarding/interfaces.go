package dashboarding

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Dashboarder define as operações que alimentam o dashboard de vendas
type Dashboarder interface {
	// GetDashboard monta a carga completa: KPIs, séries dos gráficos e tabela de detalhes
	GetDashboard(ctx context.Context, filters *domain.SalesFilters) (*domain.DashboardResponse, error)

	// GetKPIs calcula apenas os quatro indicadores de destaque
	GetKPIs(ctx context.Context, filters *domain.SalesFilters) (*domain.KPISummary, error)

	// GetWeeklySales calcula a série de vendas por semana (segunda-feira como início)
	GetWeeklySales(ctx context.Context, filters *domain.SalesFilters) ([]*domain.WeeklyTotal, error)

	// GetProductTotals calcula vendas e objetivo agregados por produto
	GetProductTotals(ctx context.Context, filters *domain.SalesFilters) (map[string]*domain.ProductTotals, error)

	// GetSales retorna os registros filtrados para a tabela de detalhes
	GetSales(ctx context.Context, filters *domain.SalesFilters) ([]*domain.Sale, error)

	// GetFilterBounds retorna os limites para os controles de filtro do dashboard
	GetFilterBounds(ctx context.Context) (*domain.FilterBounds, error)
}
