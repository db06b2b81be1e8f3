package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// CRMClient define o contrato para o destino dos leads (webhook de CRM).
type CRMClient interface {
	PushLead(ctx context.Context, payload LeadPayload) error
}

// Worker consome os eventos de lead e empurra cada um para o CRM.
// Desacoplado do banco: tudo que ele precisa vem no payload.
type Worker struct {
	Channel *amqp.Channel
	CRM     CRMClient
}

func NewWorker(ch *amqp.Channel, crm CRMClient) *Worker {
	return &Worker{Channel: ch, CRM: crm}
}

func (w *Worker) Start(ctx context.Context, queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Printf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
		return
	}

	log.Printf("📥 Worker de leads aguardando na fila %q", queueName)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Worker de leads encerrado")
			return
		case d, ok := <-msgs:
			if !ok {
				return
			}
			w.handleDelivery(ctx, d)
		}
	}
}

func (w *Worker) handleDelivery(ctx context.Context, d amqp.Delivery) {
	var payload LeadPayload
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		log.Printf("❌ [WORKER] JSON inválido: %s", err)
		// Mensagem podre. Rejeita sem requeue para não travar a fila.
		d.Nack(false, false)
		return
	}

	log.Printf("⚙️ [WORKER] Sincronizando lead %q (%s) com o CRM", payload.Name, payload.Classification)

	if err := w.CRM.PushLead(ctx, payload); err != nil {
		log.Printf("❌ [WORKER] Erro no CRM: %s", err)
		d.Nack(false, false)
		return
	}

	log.Printf("✅ [WORKER] Lead %q sincronizado", payload.Name)
	d.Ack(false)
}
