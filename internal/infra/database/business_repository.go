package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/entity"
)

type BusinessRepository struct {
	DB *sql.DB
}

func NewBusinessRepository(db *sql.DB) *BusinessRepository {
	return &BusinessRepository{DB: db}
}

// Append insere só os candidatos cujo nome normalizado ainda não existe.
// Este é o dedup autoritativo entre ciclos; o dedup intra-batch do filtro
// de descoberta é outra coisa.
func (r *BusinessRepository) Append(ctx context.Context, records []*entity.BusinessRecord) (int, error) {
	existing, err := r.ListAllNames(ctx)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO businesses
			(id, business_name, niche, city, source_url, snippet,
			 has_website, status, email_sent, email_address, notes,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	inserted := 0
	for _, rec := range records {
		if _, ok := existing[rec.NormalizedName()]; ok {
			log.Printf("  ⏭️ %q já existe no banco", rec.Name)
			continue
		}

		_, err := r.DB.ExecContext(ctx, query,
			rec.ID, rec.Name, rec.Niche, rec.City, rec.SourceURL, rec.Snippet,
			rec.HasWebsite, rec.Status, rec.EmailSent, rec.EmailAddress, rec.Notes,
			rec.CreatedAt, rec.UpdatedAt,
		)
		if err != nil {
			return inserted, fmt.Errorf("erro ao inserir %q: %w", rec.Name, err)
		}

		existing[rec.NormalizedName()] = struct{}{}
		inserted++
	}

	return inserted, nil
}

// ListByStatus retorna registros em ordem de inserção. A ordem é contrato:
// o matching usa a primeira linha que bate como desempate.
func (r *BusinessRepository) ListByStatus(ctx context.Context, status entity.Status) ([]*entity.BusinessRecord, error) {
	query := `
		SELECT id, business_name, niche, city, source_url, snippet,
		       has_website, status, email_sent, email_address, notes,
		       created_at, updated_at
		FROM businesses
		WHERE status = $1
		ORDER BY created_at, id
	`

	rows, err := r.DB.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*entity.BusinessRecord
	for rows.Next() {
		var rec entity.BusinessRecord
		err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Niche, &rec.City, &rec.SourceURL, &rec.Snippet,
			&rec.HasWebsite, &rec.Status, &rec.EmailSent, &rec.EmailAddress, &rec.Notes,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}

func (r *BusinessRepository) UpdateStatusFields(ctx context.Context, id string, status entity.Status, emailSent, emailAddress, notes string) error {
	query := `
		UPDATE businesses
		SET status = $2, email_sent = $3, email_address = $4, notes = $5,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.DB.ExecContext(ctx, query, id, status, emailSent, emailAddress, notes)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("registro %s não encontrado", id)
	}
	return err
}

func (r *BusinessRepository) ListAllNames(ctx context.Context) (map[string]struct{}, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT LOWER(TRIM(business_name)) FROM businesses`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names[name] = struct{}{}
	}

	return names, rows.Err()
}

func (r *BusinessRepository) CountByStatus(ctx context.Context) (map[entity.Status]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT status, COUNT(*) FROM businesses GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[entity.Status]int)
	for rows.Next() {
		var status entity.Status
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}

	return counts, rows.Err()
}
