package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func sale(date time.Time, product string, salesAmount, targetAmount, profitAmount float64) *Sale {
	return &Sale{
		Date:         date,
		Product:      product,
		SalesAmount:  decimal.NewFromFloat(salesAmount),
		TargetAmount: decimal.NewFromFloat(targetAmount),
		ProfitAmount: decimal.NewFromFloat(profitAmount),
	}
}

func TestWeekStartOf(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected time.Time
	}{
		{
			name:     "Quarta-feira pertence à semana iniciada na segunda anterior",
			date:     day(2024, time.January, 10),
			expected: day(2024, time.January, 8),
		},
		{
			name:     "Segunda-feira é o próprio início da semana",
			date:     day(2024, time.January, 8),
			expected: day(2024, time.January, 8),
		},
		{
			name:     "Domingo pertence à semana iniciada seis dias antes",
			date:     day(2024, time.January, 14),
			expected: day(2024, time.January, 8),
		},
		{
			name:     "Hora do dia é descartada",
			date:     time.Date(2024, time.January, 10, 23, 45, 0, 0, time.UTC),
			expected: day(2024, time.January, 8),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeekStartOf(tt.date))
		})
	}
}

func TestWeeklyTotals(t *testing.T) {
	tests := []struct {
		name     string
		sales    []*Sale
		validate func(t *testing.T, totals []*WeeklyTotal)
	}{
		{
			name:  "Conjunto vazio produz série vazia",
			sales: []*Sale{},
			validate: func(t *testing.T, totals []*WeeklyTotal) {
				assert.Empty(t, totals)
			},
		},
		{
			name: "Registros da mesma semana são somados no mesmo balde",
			sales: []*Sale{
				sale(day(2024, time.January, 8), "Euromilhões", 100, 80, 20),
				sale(day(2024, time.January, 10), "Totoloto", 50, 100, 5),
			},
			validate: func(t *testing.T, totals []*WeeklyTotal) {
				assert.Len(t, totals, 1)
				assert.Equal(t, day(2024, time.January, 8), totals[0].WeekStart)
				assert.Equal(t, "150", totals[0].TotalSales.String())
			},
		},
		{
			name: "Semanas sem registros são omitidas e a série é ascendente",
			sales: []*Sale{
				// Terceira semana primeiro, para exercitar a ordenação
				sale(day(2024, time.January, 24), "Euromilhões", 300, 80, 30),
				sale(day(2024, time.January, 8), "Euromilhões", 100, 80, 20),
			},
			validate: func(t *testing.T, totals []*WeeklyTotal) {
				assert.Len(t, totals, 2)
				assert.Equal(t, day(2024, time.January, 8), totals[0].WeekStart)
				assert.Equal(t, "100", totals[0].TotalSales.String())
				assert.Equal(t, day(2024, time.January, 22), totals[1].WeekStart)
				assert.Equal(t, "300", totals[1].TotalSales.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, WeeklyTotals(tt.sales))
		})
	}
}

func TestProductTotalsByProduct(t *testing.T) {
	sales := []*Sale{
		sale(day(2024, time.January, 8), "Euromilhões", 100, 80, 20),
		sale(day(2024, time.January, 15), "Euromilhões", 200, 80, 50),
		sale(day(2024, time.January, 8), "Totoloto", 50, 100, 5),
	}

	totals := ProductTotalsByProduct(sales)

	assert.Len(t, totals, 2)
	assert.Equal(t, "300", totals["Euromilhões"].TotalSales.String())
	assert.Equal(t, "160", totals["Euromilhões"].TotalTarget.String())
	assert.Equal(t, "50", totals["Totoloto"].TotalSales.String())
	assert.Equal(t, "100", totals["Totoloto"].TotalTarget.String())
}

// A soma das vendas por produto deve bater com o total de vendas dos KPIs
// calculado sobre o mesmo conjunto filtrado
func TestProductTotalsMatchKPITotal(t *testing.T) {
	sales := []*Sale{
		sale(day(2024, time.January, 8), "Euromilhões", 100.50, 80, 20),
		sale(day(2024, time.January, 9), "Totoloto", 200.25, 80, 50),
		sale(day(2024, time.January, 10), "Raspadinha", 49.25, 100, 5),
		sale(day(2024, time.February, 2), "Raspadinha", 10.10, 12, 1),
	}

	summary := Summarize(sales)
	byProduct := ProductTotalsByProduct(sales)

	productSum := decimal.Zero
	for _, totals := range byProduct {
		productSum = productSum.Add(totals.TotalSales)
	}

	assert.True(t, productSum.Equal(summary.TotalSales),
		"soma por produto (%s) difere do total de vendas (%s)", productSum, summary.TotalSales)
}
