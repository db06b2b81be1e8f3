package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // Driver do Postgres
)

// NewDBConnection abre a conexão, configura o pool e testa o Ping.
func NewDBConnection(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

// EnsureSchema cria as tabelas se não existirem — equivalente ao cabeçalho
// auto-criado da planilha. Sem migrations: o schema é fixo.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS businesses (
			id            TEXT PRIMARY KEY,
			business_name TEXT NOT NULL,
			niche         TEXT NOT NULL,
			city          TEXT NOT NULL,
			source_url    TEXT NOT NULL DEFAULT '',
			snippet       TEXT NOT NULL DEFAULT '',
			has_website   TEXT NOT NULL DEFAULT 'No',
			status        TEXT NOT NULL DEFAULT 'Pending',
			email_sent    TEXT NOT NULL DEFAULT 'No',
			email_address TEXT NOT NULL DEFAULT '',
			notes         TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS leads (
			id             TEXT PRIMARY KEY,
			business_id    TEXT NOT NULL,
			business_name  TEXT NOT NULL,
			niche          TEXT NOT NULL,
			city           TEXT NOT NULL,
			source_url     TEXT NOT NULL DEFAULT '',
			snippet        TEXT NOT NULL DEFAULT '',
			has_website    TEXT NOT NULL DEFAULT 'No',
			email_sent     TEXT NOT NULL DEFAULT 'Yes',
			email_address  TEXT NOT NULL DEFAULT '',
			notes          TEXT NOT NULL DEFAULT '',
			classification TEXT NOT NULL,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}
