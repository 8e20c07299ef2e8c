package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// RefreshCache descarta o cache de vendas e dispara um recarregamento manual
func RefreshCache(service *scheduler.CacheWarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RefreshCache")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de aquecimento do cache não disponível", nil)
			return
		}

		service.TriggerManualWarm()

		response := map[string]any{
			"message": "Recarregamento do cache de vendas iniciado com sucesso",
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCacheStatus retorna o status do cache de vendas e do agendador de aquecimento
func GetCacheStatus(service *scheduler.CacheWarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCacheStatus")

		json.NewEncoder(w).Encode(service.GetStatus())
	}
}
