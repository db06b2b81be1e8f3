package mail

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"

	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/entity"
)

// InboxReader lê respostas não vistas via IMAP. Cada fetch marca as mensagens
// como \Seen — é esse flag que evita reprocessar a mesma resposta no próximo
// ciclo, então uma conexão nova por poll é aceitável.
type InboxReader struct {
	Addr     string // host:porta, TLS (993)
	User     string
	Password string
}

func NewInboxReader(addr, user, password string) *InboxReader {
	return &InboxReader{Addr: addr, User: user, Password: password}
}

func (r *InboxReader) FetchUnseen(ctx context.Context) ([]entity.InboundMessage, error) {
	c, err := client.DialTLS(r.Addr, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no IMAP: %w", err)
	}
	defer c.Logout()

	if err := c.Login(r.User, r.Password); err != nil {
		return nil, fmt.Errorf("erro de login IMAP: %w", err)
	}

	if _, err := c.Select("INBOX", false); err != nil {
		return nil, fmt.Errorf("erro ao selecionar INBOX: %w", err)
	}

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}

	ids, err := c.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("erro na busca UNSEEN: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(ids...)

	section := &imap.BodySectionName{}
	items := []imap.FetchItem{imap.FetchEnvelope, section.FetchItem()}

	ch := make(chan *imap.Message, len(ids))
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqset, items, ch)
	}()

	var messages []entity.InboundMessage
	for msg := range ch {
		inbound, err := toInbound(msg, section)
		if err != nil {
			log.Printf("⚠️ Mensagem IMAP ignorada: %v", err)
			continue
		}
		messages = append(messages, inbound)
	}

	if err := <-done; err != nil {
		return messages, fmt.Errorf("erro no fetch IMAP: %w", err)
	}

	// Marca como lida explicitamente; sem isso o próximo poll reprocessa tudo.
	storeItem := imap.FormatFlagsOp(imap.AddFlags, true)
	if err := c.Store(seqset, storeItem, []interface{}{imap.SeenFlag}, nil); err != nil {
		log.Printf("⚠️ Erro ao marcar mensagens como lidas: %v", err)
	}

	log.Printf("📬 %d mensagem(ns) não lida(s) recuperada(s)", len(messages))
	return messages, nil
}

func toInbound(msg *imap.Message, section *imap.BodySectionName) (entity.InboundMessage, error) {
	if msg.Envelope == nil {
		return entity.InboundMessage{}, fmt.Errorf("mensagem sem envelope")
	}

	literal := msg.GetBody(section)
	if literal == nil {
		return entity.InboundMessage{}, fmt.Errorf("mensagem sem corpo")
	}

	raw, err := io.ReadAll(literal)
	if err != nil {
		return entity.InboundMessage{}, fmt.Errorf("erro ao ler corpo: %w", err)
	}

	body, err := ExtractTextBody(string(raw))
	if err != nil {
		return entity.InboundMessage{}, err
	}

	return entity.InboundMessage{
		Sender:  formatSender(msg.Envelope.From),
		Subject: msg.Envelope.Subject,
		Body:    body,
	}, nil
}

// formatSender reconstrói o header From como "Nome <caixa@dominio>",
// que é o formato que o matching espera varrer.
func formatSender(from []*imap.Address) string {
	if len(from) == 0 {
		return ""
	}

	addr := from[0]
	address := addr.Address()
	if addr.PersonalName == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", addr.PersonalName, address)
}
