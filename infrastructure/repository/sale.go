package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// SaleRepository expõe a consulta fixa sobre a tabela de vendas.
// A filtragem acontece em memória, então a consulta traz a tabela inteira.
type SaleRepository interface {
	ListSales() ([]*domain.Sale, error)
}

type saleRepository struct {
	conn   *postgres.Connection
	schema config.Sales
}

func NewSaleRepository(conn *postgres.Connection, schema config.Sales) SaleRepository {
	return &saleRepository{
		conn:   conn,
		schema: schema,
	}
}

func (r *saleRepository) ListSales() ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select(
			r.schema.DateColumn,
			r.schema.ProductColumn,
			r.schema.SalesColumn,
			r.schema.TargetColumn,
			r.schema.ProfitColumn,
		).
		From(r.schema.Table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := r.scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) scanSale(rows *sql.Rows) (*domain.Sale, error) {
	sale := &domain.Sale{}

	var date time.Time
	var salesAmount, targetAmount, profitAmount decimal.NullDecimal

	err := rows.Scan(
		&date,
		&sale.Product,
		&salesAmount,
		&targetAmount,
		&profitAmount,
	)
	if err != nil {
		return nil, err
	}

	// Coagir a coluna de data para a granularidade de dia; a hora,
	// se presente no esquema de origem, é descartada
	sale.Date = domain.DayOf(date)

	// Valores monetários nulos são lidos como zero
	if salesAmount.Valid {
		sale.SalesAmount = salesAmount.Decimal
	}
	if targetAmount.Valid {
		sale.TargetAmount = targetAmount.Decimal
	}
	if profitAmount.Valid {
		sale.ProfitAmount = profitAmount.Decimal
	}

	return sale, nil
}
