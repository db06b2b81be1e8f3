package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entidade: Lead
// Cópia do BusinessRecord no momento da promoção, mais a classificação
// da resposta. O ledger de leads é append-only: nunca atualiza, nunca apaga.
type Lead struct {
	ID             string         `json:"id"`
	BusinessID     string         `json:"business_id"`
	Name           string         `json:"business_name"`
	Niche          string         `json:"niche"`
	City           string         `json:"city"`
	SourceURL      string         `json:"source_url"`
	Snippet        string         `json:"snippet"`
	HasWebsite     string         `json:"has_website"`
	EmailSent      string         `json:"email_sent"`
	EmailAddress   string         `json:"email_address,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	Classification Classification `json:"classification"`
	CreatedAt      time.Time      `json:"created_at"`
}

// Factory — congela o estado do registro na hora da promoção.
func NewLeadFromRecord(record *BusinessRecord, classification Classification) *Lead {
	return &Lead{
		ID:             uuid.New().String(),
		BusinessID:     record.ID,
		Name:           record.Name,
		Niche:          record.Niche,
		City:           record.City,
		SourceURL:      record.SourceURL,
		Snippet:        record.Snippet,
		HasWebsite:     record.HasWebsite,
		EmailSent:      "Yes",
		EmailAddress:   record.EmailAddress,
		Notes:          record.Notes,
		Classification: classification,
		CreatedAt:      time.Now(),
	}
}

type LeadRepositoryInterface interface {
	Append(ctx context.Context, lead *Lead) error
}
