package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		sales    []*Sale
		validate func(t *testing.T, summary *KPISummary)
	}{
		{
			name:  "Conjunto vazio produz KPIs zerados",
			sales: []*Sale{},
			validate: func(t *testing.T, summary *KPISummary) {
				assert.True(t, summary.TotalSales.IsZero())
				assert.True(t, summary.TotalTarget.IsZero())
				assert.True(t, summary.TotalProfit.IsZero())
				assert.Equal(t, 0.0, summary.DeviationPct)
			},
		},
		{
			name: "Objetivo zero define o desvio como zero, sem divisão por zero",
			sales: []*Sale{
				sale(day(2024, time.January, 8), "Euromilhões", 500, 0, 50),
			},
			validate: func(t *testing.T, summary *KPISummary) {
				assert.Equal(t, "500", summary.TotalSales.String())
				assert.True(t, summary.TotalTarget.IsZero())
				assert.Equal(t, 0.0, summary.DeviationPct)
			},
		},
		{
			name: "Totais e desvio percentual calculados sobre o conjunto",
			sales: []*Sale{
				sale(day(2024, time.January, 8), "Euromilhões", 100, 80, 20),
				sale(day(2024, time.January, 15), "Euromilhões", 200, 80, 50),
				sale(day(2024, time.January, 8), "Totoloto", 50, 100, 5),
			},
			validate: func(t *testing.T, summary *KPISummary) {
				assert.Equal(t, "350", summary.TotalSales.String())
				assert.Equal(t, "260", summary.TotalTarget.String())
				assert.Equal(t, "75", summary.TotalProfit.String())
				// (350-260)/260*100 = 34.615..., arredondado em duas casas
				assert.InDelta(t, 34.62, summary.DeviationPct, 0.001)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Summarize(tt.sales))
		})
	}
}

// Cenário completo do dashboard: filtro de período cheio com os dois
// produtos selecionados
func TestBuildDashboard(t *testing.T) {
	table := []*Sale{
		sale(day(2024, time.January, 8), "A", 100, 80, 20),
		sale(day(2024, time.January, 15), "A", 200, 80, 50),
		sale(day(2024, time.January, 8), "B", 50, 100, 5),
	}

	filters := &SalesFilters{
		StartDate: datePtr(day(2024, time.January, 8)),
		EndDate:   datePtr(day(2024, time.January, 15)),
		Products:  []string{"A", "B"},
	}

	dashboard := BuildDashboard(table, filters)

	// KPIs
	assert.Equal(t, "350", dashboard.KPIs.TotalSales.String())
	assert.Equal(t, "260", dashboard.KPIs.TotalTarget.String())
	assert.InDelta(t, 34.62, dashboard.KPIs.DeviationPct, 0.001)

	// Série semanal: duas semanas, ascendente
	assert.Len(t, dashboard.WeeklySales, 2)
	assert.Equal(t, day(2024, time.January, 8), dashboard.WeeklySales[0].WeekStart)
	assert.Equal(t, "150", dashboard.WeeklySales[0].TotalSales.String())
	assert.Equal(t, day(2024, time.January, 15), dashboard.WeeklySales[1].WeekStart)
	assert.Equal(t, "200", dashboard.WeeklySales[1].TotalSales.String())

	// Totais por produto
	assert.Equal(t, "300", dashboard.ProductTotals["A"].TotalSales.String())
	assert.Equal(t, "160", dashboard.ProductTotals["A"].TotalTarget.String())
	assert.Equal(t, "50", dashboard.ProductTotals["B"].TotalSales.String())
	assert.Equal(t, "100", dashboard.ProductTotals["B"].TotalTarget.String())

	// Tabela de detalhes e eco dos filtros
	assert.Len(t, dashboard.Sales, 3)
	assert.Equal(t, filters, dashboard.Filters)
}

// Seleção explícita de nenhum produto zera registros e KPIs
func TestBuildDashboardEmptyProductSelection(t *testing.T) {
	table := []*Sale{
		sale(day(2024, time.January, 8), "A", 100, 80, 20),
		sale(day(2024, time.January, 8), "B", 50, 100, 5),
	}

	dashboard := BuildDashboard(table, &SalesFilters{Products: []string{}})

	assert.Empty(t, dashboard.Sales)
	assert.Empty(t, dashboard.WeeklySales)
	assert.Empty(t, dashboard.ProductTotals)
	assert.True(t, dashboard.KPIs.TotalSales.IsZero())
	assert.True(t, dashboard.KPIs.TotalTarget.IsZero())
	assert.True(t, dashboard.KPIs.TotalProfit.IsZero())
	assert.Equal(t, 0.0, dashboard.KPIs.DeviationPct)
}
