package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/linemk/order-backend/internal/config"
)

// buildMigrateDSN добавляет к DSN имя таблицы с версиями миграций
func buildMigrateDSN(dbCfg config.DatabaseConfig, migrationTable string) (string, error) {
	u, err := url.Parse(dbCfg.DSN())
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("x-migrations-table", migrationTable)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func main() {
	var migrationsPathFlag string
	var down bool
	flag.StringVar(&migrationsPathFlag, "migrations-path", "", "path to migration files")
	flag.BoolVar(&down, "down", false, "roll back all migrations")
	flag.String("config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad()

	migrationsPath := cfg.Migrations.Path
	if migrationsPathFlag != "" {
		migrationsPath = migrationsPathFlag
	}

	dsnForMigrate, err := buildMigrateDSN(cfg.Database, cfg.Migrations.Table)
	if err != nil {
		log.Fatalf("failed to build dsn: %v", err)
	}

	// Создаем объект мигратора
	m, err := migrate.New("file://"+migrationsPath, dsnForMigrate)
	if err != nil {
		log.Fatalf("failed to create migrate instance: %v", err)
	}

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("No migrations to apply")
		} else {
			log.Fatalf("migration failed: %v", err)
		}
	} else {
		log.Println("Migrations applied successfully")
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT table_name 
		FROM information_schema.tables 
		WHERE table_schema = 'public'
		ORDER BY table_name
	`)
	if err != nil {
		log.Fatalf("failed to query tables: %v", err)
	}
	defer rows.Close()

	fmt.Println("Current tables in the database:")
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			log.Fatalf("failed to scan row: %v", err)
		}
		fmt.Println(" -", tableName)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("error reading rows: %v", err)
	}
}
