package usecase

import (
	"context"

	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/entity"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/infra/queue"
)

// SearchHit é um resultado cru de busca, antes de qualquer filtro.
type SearchHit struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

type SearchClient interface {
	Search(ctx context.Context, query string, maxResults int) ([]SearchHit, error)
}

// WebsiteProber diz se um domínio resolve. Consultivo, não autoritativo:
// falha de rede conta como "não resolve" e o candidato fica.
type WebsiteProber interface {
	Resolves(ctx context.Context, domain string) bool
}

type Composer interface {
	Compose(ctx context.Context, businessName, niche, city, snippet string) (subject, body string, err error)
}

// Classifier devolve o rótulo cru; a coerção para o enum fechado é do core.
type Classifier interface {
	Classify(ctx context.Context, replyText, businessName string) (string, error)
}

type EmailSender interface {
	Send(to, subject, body string) error
}

// InboxReader busca mensagens não lidas e marca como lidas como efeito
// colateral — é a única proteção contra reprocessamento entre ciclos.
type InboxReader interface {
	FetchUnseen(ctx context.Context) ([]entity.InboundMessage, error)
}

// LeadPublisherInterface publica leads promovidos na fila (opcional).
type LeadPublisherInterface interface {
	PublishLead(ctx context.Context, payload queue.LeadPayload) error
}
