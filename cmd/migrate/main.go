package main

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Executando migrações do banco de dados...")

	if err := migration.Run(cfg.Database.URL); err != nil {
		logrus.WithError(err).Fatal("Erro ao executar migrações")
	}

	logrus.Info("Migrações executadas com sucesso")
}
