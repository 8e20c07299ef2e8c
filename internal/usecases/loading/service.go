package loading

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/cache"
)

// SaleLoader carrega a tabela de vendas, usando o cache com TTL para
// evitar novas consultas dentro da janela de validade
type SaleLoader interface {
	// Load retorna a tabela de vendas, do cache quando ainda válido
	Load(ctx context.Context) ([]*domain.Sale, error)

	// Refresh descarta o cache e recarrega a tabela do banco
	Refresh(ctx context.Context) ([]*domain.Sale, error)
}

type Service struct {
	saleRepository repository.SaleRepository
	salesCache     *cache.SalesCache
}

func NewService(
	saleRepo repository.SaleRepository,
	salesCache *cache.SalesCache,
) SaleLoader {
	return &Service{
		saleRepository: saleRepo,
		salesCache:     salesCache,
	}
}

func (s *Service) Load(ctx context.Context) ([]*domain.Sale, error) {
	if sales, ok := s.salesCache.Get(); ok {
		logrus.WithFields(logrus.Fields{
			"records":   len(sales),
			"cache_age": s.salesCache.Age().String(),
		}).Debug("Tabela de vendas servida do cache")
		return sales, nil
	}

	return s.fetch(ctx)
}

func (s *Service) Refresh(ctx context.Context) ([]*domain.Sale, error) {
	s.salesCache.Invalidate()
	return s.fetch(ctx)
}

// fetch consulta o banco e atualiza o cache. Falhas da consulta são
// fatais para o ciclo corrente: nenhum resultado parcial é propagado.
func (s *Service) fetch(_ context.Context) ([]*domain.Sale, error) {
	sales, err := s.saleRepository.ListSales()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar dados da base de dados")
		return nil, err
	}

	s.salesCache.Set(sales)

	logrus.WithField("records", len(sales)).Info("Tabela de vendas carregada da base de dados")
	return sales, nil
}
