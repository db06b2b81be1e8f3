package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadPayload é o evento publicado quando um negócio vira Lead.
// MessageFingerprint serve de chave de idempotência para consumidores:
// o core em si só confia no \Seen do IMAP.
type LeadPayload struct {
	LeadID             string `json:"lead_id"`
	BusinessID         string `json:"business_id"`
	Name               string `json:"business_name"`
	Niche              string `json:"niche"`
	City               string `json:"city"`
	EmailAddress       string `json:"email_address"`
	Classification     string `json:"classification"`
	ReplyExcerpt       string `json:"reply_excerpt"`
	MessageFingerprint string `json:"message_fingerprint"`
}

type LeadProducer struct {
	Ch *amqp.Channel
}

func NewLeadProducer(ch *amqp.Channel) *LeadProducer {
	return &LeadProducer{Ch: ch}
}

func (p *LeadProducer) PublishLead(ctx context.Context, payload LeadPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	return nil
}
