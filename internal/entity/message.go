package entity

import "context"

// InboundMessage é uma resposta lida da caixa de entrada.
// Transiente: consumida uma vez por ciclo de poll e descartada.
type InboundMessage struct {
	Sender  string `json:"sender"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// BusinessRepositoryInterface é o adapter da tabela durável de negócios.
type BusinessRepositoryInterface interface {
	// Append insere candidatos novos e retorna quantos entraram de fato.
	// Dedup entre ciclos acontece aqui, contra o conjunto de nomes existente.
	Append(ctx context.Context, records []*BusinessRecord) (int, error)
	// ListByStatus retorna registros em ordem de inserção (ordem estável
	// importa: é o critério de desempate do matching).
	ListByStatus(ctx context.Context, status Status) ([]*BusinessRecord, error)
	UpdateStatusFields(ctx context.Context, id string, status Status, emailSent, emailAddress, notes string) error
	ListAllNames(ctx context.Context) (map[string]struct{}, error)
	CountByStatus(ctx context.Context) (map[Status]int, error)
}
