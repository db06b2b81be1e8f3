package usecase

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"log"
	"text/template"

	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/entity"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/infra/queue"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/metrics"
)

const replyExcerptLen = 500

var notificationTmpl = template.Must(template.New("lead-notification").Parse(
	`Hi! Your outreach agent found a new lead.

Business: {{.Name}}
Classification: {{.Classification}}

Their reply:
---
{{.Excerpt}}
---

Check the Leads ledger for full details.
`))

type ReconcileUseCase struct {
	Repo          entity.BusinessRepositoryInterface
	LeadRepo      entity.LeadRepositoryInterface
	Inbox         InboxReader
	Classifier    Classifier
	Mailer        EmailSender
	Publisher     LeadPublisherInterface // nil quando a fila não está configurada
	NotifyAddress string
	Rules         []MatchRule
}

func NewReconcileUseCase(
	repo entity.BusinessRepositoryInterface,
	leadRepo entity.LeadRepositoryInterface,
	inbox InboxReader,
	classifier Classifier,
	mailer EmailSender,
	publisher LeadPublisherInterface,
	notifyAddress string,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		Repo:          repo,
		LeadRepo:      leadRepo,
		Inbox:         inbox,
		Classifier:    classifier,
		Mailer:        mailer,
		Publisher:     publisher,
		NotifyAddress: notifyAddress,
		Rules:         DefaultMatchRules(),
	}
}

// Execute roda um ciclo de reconciliação: lê as respostas não vistas, casa
// cada uma com um negócio Contacted, classifica e aplica a transição.
// Cada mensagem é uma unidade de falha isolada.
func (uc *ReconcileUseCase) Execute(ctx context.Context) error {
	contacted, err := uc.Repo.ListByStatus(ctx, entity.StatusContacted)
	if err != nil {
		return fmt.Errorf("erro ao listar contatados: %w", err)
	}

	if len(contacted) == 0 {
		log.Println("📭 Nenhum negócio contatado para casar respostas.")
		return nil
	}

	messages, err := uc.Inbox.FetchUnseen(ctx)
	if err != nil {
		// Falha de IMAP vale como caixa vazia neste ciclo.
		log.Printf("⚠️ Erro ao buscar respostas: %v", err)
		metrics.RecordIntegrationError("imap")
		return nil
	}

	if len(messages) == 0 {
		log.Println("📭 Nenhuma resposta nova. Nada a processar.")
		return nil
	}

	log.Printf("📬 %d resposta(s) nova(s) para processar", len(messages))

	for _, msg := range messages {
		uc.processMessage(ctx, msg, contacted)
	}

	log.Println("✅ Ciclo de reconciliação concluído.")
	return nil
}

func (uc *ReconcileUseCase) processMessage(ctx context.Context, msg entity.InboundMessage, contacted []*entity.BusinessRecord) {
	log.Printf("📬 Processando resposta de: %s", msg.Sender)

	record, rule := MatchReply(msg, contacted, uc.Rules)
	if record == nil {
		log.Printf("  ⏭️ Sem match para nenhum negócio contatado. Descartada.")
		metrics.RecordReply("dropped")
		return
	}

	log.Printf("  ✅ Match: %q (regra %s)", record.Name, rule)
	metrics.RecordReply("matched")

	raw, err := uc.Classifier.Classify(ctx, msg.Body, record.Name)
	if err != nil {
		// Classificador fora do ar: pula a mensagem, sem transição.
		// A mensagem já foi marcada como lida; perder uma é aceitável,
		// transicionar no escuro não.
		log.Printf("  ⚠️ Classificador falhou para %q: %v", record.Name, err)
		metrics.RecordIntegrationError("classifier")
		return
	}

	classification := entity.ParseClassification(raw)
	log.Printf("  🏷️ Resposta de %q classificada como: %s", record.Name, classification)

	notes := fmt.Sprintf("Reply received. Classification: %s", classification)

	if !classification.IsLead() {
		uc.update(ctx, record.ID, entity.StatusNotInterested, record.EmailAddress, notes)
		return
	}

	// interested e needs_followup viram Lead — ambiguidade sobe para
	// um humano em vez de ficar pendurada.
	uc.update(ctx, record.ID, entity.StatusLead, record.EmailAddress, notes)

	record.Notes = notes
	lead := entity.NewLeadFromRecord(record, classification)
	if err := uc.LeadRepo.Append(ctx, lead); err != nil {
		log.Printf("  ❌ Erro ao gravar lead %q no ledger: %v", record.Name, err)
	}

	uc.notify(record.Name, classification, msg.Body)
	uc.publish(ctx, lead, msg)

	metrics.RecordLead(string(classification))
	log.Printf("  🚀 %q virou LEAD!", record.Name)
}

func (uc *ReconcileUseCase) update(ctx context.Context, id string, status entity.Status, address, notes string) {
	if err := uc.Repo.UpdateStatusFields(ctx, id, status, "Yes", address, notes); err != nil {
		log.Printf("  ❌ Erro ao atualizar registro %s: %v", id, err)
	}
}

func (uc *ReconcileUseCase) notify(name string, classification entity.Classification, replyBody string) {
	var body bytes.Buffer
	err := notificationTmpl.Execute(&body, struct {
		Name           string
		Classification entity.Classification
		Excerpt        string
	}{
		Name:           name,
		Classification: classification,
		Excerpt:        truncate(replyBody, replyExcerptLen),
	})
	if err != nil {
		log.Printf("  ❌ Erro ao montar notificação: %v", err)
		return
	}

	subject := fmt.Sprintf("New Lead Found: %s", name)
	if err := uc.Mailer.Send(uc.NotifyAddress, subject, body.String()); err != nil {
		log.Printf("  ⚠️ Notificação de lead falhou: %v", err)
	}
}

func (uc *ReconcileUseCase) publish(ctx context.Context, lead *entity.Lead, msg entity.InboundMessage) {
	if uc.Publisher == nil {
		return
	}

	payload := queue.LeadPayload{
		LeadID:         lead.ID,
		BusinessID:     lead.BusinessID,
		Name:           lead.Name,
		Niche:          lead.Niche,
		City:           lead.City,
		EmailAddress:   lead.EmailAddress,
		Classification: string(lead.Classification),
		ReplyExcerpt:   truncate(msg.Body, replyExcerptLen),
		// Fingerprint da mensagem: permite dedup a jusante caso o
		// marcador \Seen do transporte falhe.
		MessageFingerprint: fmt.Sprintf("%x", sha256.Sum256([]byte(msg.Sender+"\x00"+msg.Subject))),
	}

	if err := uc.Publisher.PublishLead(ctx, payload); err != nil {
		log.Printf("  ⚠️ Lead gravado, mas falha ao publicar na fila: %v", err)
		metrics.RecordIntegrationError("queue")
	}
}
