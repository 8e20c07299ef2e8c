package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
)

// CacheWarmConfig representa a configuração do agendador de aquecimento do cache
type CacheWarmConfig struct {
	CronSchedule string
	Enabled      bool
}

// CacheWarmService recarrega periodicamente a tabela de vendas para que
// as renderizações interativas encontrem o cache sempre quente
type CacheWarmService struct {
	scheduler           *gocron.Scheduler
	config              CacheWarmConfig
	loader              loading.SaleLoader
	warmRunning         bool
	warmMutex           sync.Mutex
	lastWarmStartedAt   time.Time
	lastWarmCompletedAt time.Time
	lastWarmError       string
}

// NewCacheWarmService cria uma nova instância do serviço de aquecimento do cache
func NewCacheWarmService(
	loader loading.SaleLoader,
	appConfig *config.Config,
) *CacheWarmService {
	warmConfig := CacheWarmConfig{
		CronSchedule: appConfig.CacheWarm.CronSchedule,
		Enabled:      appConfig.CacheWarm.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmConfig.CronSchedule,
		"enabled":       warmConfig.Enabled,
	}).Info("Configuração do agendador de aquecimento do cache carregada")

	return &CacheWarmService{
		scheduler:   scheduler,
		config:      warmConfig,
		loader:      loader,
		warmRunning: false,
	}
}

// Start inicia o agendador
func (s *CacheWarmService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Aquecimento periódico do cache de vendas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento do cache de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmCache(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento do cache de vendas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento do cache de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// warmCache descarta o cache corrente e recarrega a tabela de vendas
func (s *CacheWarmService) warmCache(ctx context.Context) {
	s.warmMutex.Lock()
	if s.warmRunning {
		s.warmMutex.Unlock()
		logrus.Info("Aquecimento do cache já em andamento, ignorando")
		return
	}
	s.warmRunning = true
	s.lastWarmStartedAt = time.Now()
	s.warmMutex.Unlock()

	startTime := time.Now()

	sales, err := s.loader.Refresh(ctx)

	s.warmMutex.Lock()
	s.warmRunning = false
	s.lastWarmCompletedAt = time.Now()
	if err != nil {
		s.lastWarmError = err.Error()
	} else {
		s.lastWarmError = ""
	}
	s.warmMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro ao aquecer o cache de vendas")
		return
	}

	logrus.WithFields(logrus.Fields{
		"records":  len(sales),
		"duration": time.Since(startTime).String(),
	}).Info("Cache de vendas aquecido com sucesso")
}

// TriggerManualWarm inicia manualmente um aquecimento do cache
func (s *CacheWarmService) TriggerManualWarm() {
	s.warmMutex.Lock()
	if s.warmRunning {
		s.warmMutex.Unlock()
		logrus.Info("Aquecimento do cache já em andamento, ignorando solicitação manual")
		return
	}
	s.warmMutex.Unlock()

	logrus.Info("Iniciando aquecimento manual do cache de vendas")
	go s.warmCache(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *CacheWarmService) GetStatus() map[string]any {
	s.warmMutex.Lock()
	defer s.warmMutex.Unlock()

	return map[string]any{
		"warm_enabled":           s.config.Enabled,
		"warm_cron":              s.config.CronSchedule,
		"warm_running":           s.warmRunning,
		"last_warm_started_at":   s.lastWarmStartedAt,
		"last_warm_completed_at": s.lastWarmCompletedAt,
		"last_warm_error":        s.lastWarmError,
	}
}
