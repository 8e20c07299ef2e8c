package dashboarding

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading/mocks"
	"go.uber.org/mock/gomock"
)

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time {
	return &t
}

func sale(date time.Time, product string, salesAmount, targetAmount, profitAmount float64) *domain.Sale {
	return &domain.Sale{
		Date:         date,
		Product:      product,
		SalesAmount:  decimal.NewFromFloat(salesAmount),
		TargetAmount: decimal.NewFromFloat(targetAmount),
		ProfitAmount: decimal.NewFromFloat(profitAmount),
	}
}

func TestServiceGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	table := []*domain.Sale{
		sale(day(2024, time.January, 8), "A", 100, 80, 20),
		sale(day(2024, time.January, 15), "A", 200, 80, 50),
		sale(day(2024, time.January, 8), "B", 50, 100, 5),
	}

	t.Run("Pipeline completo sobre a tabela carregada", func(t *testing.T) {
		loader := mocks.NewMockSaleLoader(ctrl)
		loader.EXPECT().Load(gomock.Any()).Return(table, nil)

		service := NewService(loader)

		dashboard, err := service.GetDashboard(context.Background(), &domain.SalesFilters{
			StartDate: datePtr(day(2024, time.January, 8)),
			EndDate:   datePtr(day(2024, time.January, 15)),
			Products:  []string{"A", "B"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "350", dashboard.KPIs.TotalSales.String())
		assert.Len(t, dashboard.WeeklySales, 2)
		assert.Len(t, dashboard.ProductTotals, 2)
		assert.Len(t, dashboard.Sales, 3)
	})

	t.Run("Período invertido é rejeitado antes de carregar", func(t *testing.T) {
		loader := mocks.NewMockSaleLoader(ctrl)
		// Nenhuma chamada a Load é esperada

		service := NewService(loader)

		dashboard, err := service.GetDashboard(context.Background(), &domain.SalesFilters{
			StartDate: datePtr(day(2024, time.January, 15)),
			EndDate:   datePtr(day(2024, time.January, 8)),
		})

		assert.Error(t, err)
		assert.Nil(t, dashboard)
	})

	t.Run("Falha do carregador interrompe o ciclo", func(t *testing.T) {
		loader := mocks.NewMockSaleLoader(ctrl)
		loader.EXPECT().Load(gomock.Any()).Return(nil, fmt.Errorf("conexão perdida"))

		service := NewService(loader)

		dashboard, err := service.GetDashboard(context.Background(), &domain.SalesFilters{})
		assert.Error(t, err)
		assert.Nil(t, dashboard)
	})
}

func TestServiceGetKPIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	table := []*domain.Sale{
		sale(day(2024, time.January, 8), "A", 100, 80, 20),
		sale(day(2024, time.January, 8), "B", 50, 100, 5),
	}

	t.Run("KPIs sobre a seleção de um produto", func(t *testing.T) {
		loader := mocks.NewMockSaleLoader(ctrl)
		loader.EXPECT().Load(gomock.Any()).Return(table, nil)

		service := NewService(loader)

		kpis, err := service.GetKPIs(context.Background(), &domain.SalesFilters{
			Products: []string{"B"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "50", kpis.TotalSales.String())
		assert.Equal(t, "100", kpis.TotalTarget.String())
		assert.Equal(t, "5", kpis.TotalProfit.String())
		assert.InDelta(t, -50.0, kpis.DeviationPct, 0.001)
	})

	t.Run("Seleção vazia zera todos os KPIs", func(t *testing.T) {
		loader := mocks.NewMockSaleLoader(ctrl)
		loader.EXPECT().Load(gomock.Any()).Return(table, nil)

		service := NewService(loader)

		kpis, err := service.GetKPIs(context.Background(), &domain.SalesFilters{
			Products: []string{},
		})

		assert.NoError(t, err)
		assert.True(t, kpis.TotalSales.IsZero())
		assert.True(t, kpis.TotalTarget.IsZero())
		assert.True(t, kpis.TotalProfit.IsZero())
		assert.Equal(t, 0.0, kpis.DeviationPct)
	})
}

func TestServiceGetFilterBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockSaleLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return([]*domain.Sale{
		sale(day(2024, time.March, 1), "Totoloto", 10, 10, 1),
		sale(day(2024, time.January, 8), "Euromilhões", 100, 80, 20),
	}, nil)

	service := NewService(loader)

	bounds, err := service.GetFilterBounds(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, day(2024, time.January, 8), *bounds.MinDate)
	assert.Equal(t, day(2024, time.March, 1), *bounds.MaxDate)
	assert.ElementsMatch(t, []string{"Totoloto", "Euromilhões"}, bounds.Products)
}
