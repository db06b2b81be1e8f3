package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Append grava a linha do ledger. Só INSERT: o ledger nunca recebe UPDATE.
func (r *LeadRepository) Append(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads
			(id, business_id, business_name, niche, city, source_url, snippet,
			 has_website, email_sent, email_address, notes, classification, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID, lead.BusinessID, lead.Name, lead.Niche, lead.City,
		lead.SourceURL, lead.Snippet, lead.HasWebsite, lead.EmailSent,
		lead.EmailAddress, lead.Notes, lead.Classification, lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("erro ao gravar lead no ledger: %w", err)
	}

	return nil
}
