package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa um registro de venda da tabela de vendas.
// Os valores monetários são mantidos como decimais para evitar
// erros de arredondamento nas agregações.
type Sale struct {
	Date         time.Time       `json:"date"`
	Product      string          `json:"product"`
	SalesAmount  decimal.Decimal `json:"sales_amount"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	ProfitAmount decimal.Decimal `json:"profit_amount"`
}

// DayOf normaliza uma data para meia-noite, descartando a hora.
// Todas as comparações de período são feitas na granularidade de dia.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStartOf retorna a segunda-feira da semana que contém a data informada.
func WeekStartOf(t time.Time) time.Time {
	day := DayOf(t)
	// time.Weekday começa no domingo; deslocamos para semanas iniciando na segunda
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
