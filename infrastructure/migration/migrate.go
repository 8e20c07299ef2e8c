package migration

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// Run aplica as migrações pendentes sobre o banco indicado. Usa uma
// conexão própria para não interferir na conexão da aplicação.
func Run(databaseURL string) error {
	migrateDB, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return errors.Wrap(err, "erro ao abrir conexão para migração")
	}
	defer migrateDB.Close()

	driver, err := migratepg.WithInstance(migrateDB, &migratepg.Config{})
	if err != nil {
		return errors.Wrap(err, "erro ao criar driver postgres")
	}

	source, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		return errors.Wrap(err, "erro ao criar source de migrações")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "erro ao criar instância de migração")
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errors.Wrap(err, "erro ao executar migrações")
	}

	return nil
}
