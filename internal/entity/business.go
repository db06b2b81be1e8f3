package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

// Status do ciclo de vida de um negócio descoberto.
// Pending → Contacted → Lead | Not Interested.
// No Email Found e Email Failed são ramos terminais a partir de Pending.
type Status string

const (
	StatusPending       Status = "Pending"
	StatusContacted     Status = "Contacted"
	StatusLead          Status = "Lead"
	StatusNotInterested Status = "Not Interested"
	StatusNoEmailFound  Status = "No Email Found"
	StatusEmailFailed   Status = "Email Failed"
)

// Entidade: BusinessRecord
// A identidade de negócio é o nome em minúsculas (NormalizedName);
// o ID é só a chave da linha no banco.
type BusinessRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"business_name"`
	Niche        string    `json:"niche"`
	City         string    `json:"city"`
	SourceURL    string    `json:"source_url"`
	Snippet      string    `json:"snippet"`
	HasWebsite   string    `json:"has_website"` // "Yes" / "No"
	Status       Status    `json:"status"`
	EmailSent    string    `json:"email_sent"` // "Yes" / "No"
	EmailAddress string    `json:"email_address,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Factory
func NewBusinessRecord(name, niche, city, sourceURL, snippet string) (*BusinessRecord, error) {
	record := &BusinessRecord{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(name),
		Niche:      niche,
		City:       city,
		SourceURL:  sourceURL,
		Snippet:    snippet,
		HasWebsite: "No",
		Status:     StatusPending,
		EmailSent:  "No",
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

func (r *BusinessRecord) Validate() error {
	if r.Name == "" {
		return errors.New("business name is required")
	}
	if r.Niche == "" {
		return errors.New("niche is required")
	}
	if r.City == "" {
		return errors.New("city is required")
	}
	return nil
}

// NormalizedName é a chave de deduplicação: nome em minúsculas, sem espaços nas pontas.
func (r *BusinessRecord) NormalizedName() string {
	return strings.ToLower(strings.TrimSpace(r.Name))
}

// ShortName retorna as duas primeiras palavras do nome, em minúsculas.
// Usado como sinal de fallback no matching de respostas — só vale se len > 3.
func (r *BusinessRecord) ShortName() string {
	words := strings.Fields(r.NormalizedName())
	if len(words) > 2 {
		words = words[:2]
	}
	return strings.Join(words, " ")
}
