package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/entity"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/metrics"
)

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// ExtractEmail procura um endereço no snippet e na URL de origem.
// Retorna vazio quando não acha — o registro vira No Email Found.
func ExtractEmail(snippet, sourceURL string) string {
	text := snippet + " " + sourceURL
	return strings.ToLower(emailPattern.FindString(text))
}

type OutreachUseCase struct {
	Repo      entity.BusinessRepositoryInterface
	Composer  Composer
	Mailer    EmailSender
	SendDelay time.Duration
}

func NewOutreachUseCase(
	repo entity.BusinessRepositoryInterface,
	composer Composer,
	mailer EmailSender,
	sendDelay time.Duration,
) *OutreachUseCase {
	return &OutreachUseCase{
		Repo:      repo,
		Composer:  composer,
		Mailer:    mailer,
		SendDelay: sendDelay,
	}
}

// Execute processa todos os Pending: extrai email, gera o pitch e envia.
// Falha num registro nunca aborta o lote; cada um termina num status gravado.
func (uc *OutreachUseCase) Execute(ctx context.Context) (sent, skipped int, err error) {
	pending, err := uc.Repo.ListByStatus(ctx, entity.StatusPending)
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao listar pendentes: %w", err)
	}

	if len(pending) == 0 {
		log.Println("📭 Nenhum negócio pendente para contatar.")
		return 0, 0, nil
	}

	log.Printf("📨 %d negócio(s) pendente(s) para contatar", len(pending))

	for i, record := range pending {
		if uc.processRecord(ctx, record) {
			sent++
		} else {
			skipped++
		}

		// Pacing entre envios — cortesia com o provedor SMTP,
		// não requisito de corretude.
		if i < len(pending)-1 && uc.SendDelay > 0 {
			time.Sleep(uc.SendDelay)
		}
	}

	log.Printf("📨 Contato concluído. Enviados: %d | Pulados: %d", sent, skipped)
	return sent, skipped, nil
}

func (uc *OutreachUseCase) processRecord(ctx context.Context, record *entity.BusinessRecord) bool {
	log.Printf("📨 Processando: %s (%s, %s)", record.Name, record.Niche, record.City)

	address := ExtractEmail(record.Snippet, record.SourceURL)
	if address == "" {
		log.Printf("  ⏭️ Sem email para %q — terminal", record.Name)
		uc.update(ctx, record.ID, entity.StatusNoEmailFound, "No", "",
			"Could not extract email from snippet or URL.")
		metrics.RecordEmail("no_address")
		return false
	}

	subject, body, err := uc.Composer.Compose(ctx, record.Name, record.Niche, record.City, record.Snippet)
	if err != nil {
		// Falha do composer é transiente: o registro continua Pending
		// e entra no próximo ciclo.
		log.Printf("  ⚠️ Composer falhou para %q: %v", record.Name, err)
		metrics.RecordIntegrationError("composer")
		return false
	}

	if err := uc.Mailer.Send(address, subject, body); err != nil {
		// Único lugar onde falha de transporte vira estado terminal gravado.
		log.Printf("  ❌ Envio falhou para %s: %v", address, err)
		uc.update(ctx, record.ID, entity.StatusEmailFailed, "No", address,
			"SMTP send failed. Check logs.")
		metrics.RecordEmail("failed")
		return false
	}

	log.Printf("  ✅ Enviado para %s — assunto: %q", address, subject)
	uc.update(ctx, record.ID, entity.StatusContacted, "Yes", address,
		fmt.Sprintf("Email sent. Subject: %s", subject))
	metrics.RecordEmail("sent")
	return true
}

func (uc *OutreachUseCase) update(ctx context.Context, id string, status entity.Status, emailSent, address, notes string) {
	if err := uc.Repo.UpdateStatusFields(ctx, id, status, emailSent, address, notes); err != nil {
		log.Printf("  ❌ Erro ao atualizar registro %s: %v", id, err)
	}
}
