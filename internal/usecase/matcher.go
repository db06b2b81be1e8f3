package usecase

import (
	"strings"

	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/entity"
)

// MatchRule é uma heurística de associação mensagem → negócio.
// Sem nota de confiança: cada regra responde sim ou não.
type MatchRule struct {
	Name  string
	Match func(msg entity.InboundMessage, record *entity.BusinessRecord) bool
}

// DefaultMatchRules retorna a cadeia padrão, em ordem de prioridade.
// A ordem importa: o endereço do remetente é o sinal forte; o nome curto
// no assunto/corpo é o fallback fraco.
func DefaultMatchRules() []MatchRule {
	return []MatchRule{
		{
			Name: "sender-address",
			Match: func(msg entity.InboundMessage, record *entity.BusinessRecord) bool {
				address := strings.ToLower(strings.TrimSpace(record.EmailAddress))
				if address == "" {
					return false
				}
				return strings.Contains(strings.ToLower(msg.Sender), address)
			},
		},
		{
			Name: "short-name",
			Match: func(msg entity.InboundMessage, record *entity.BusinessRecord) bool {
				short := record.ShortName()
				if len(short) <= 3 {
					// Nome curto demais bate em qualquer coisa por acaso.
					return false
				}
				subject := strings.ToLower(msg.Subject)
				body := strings.ToLower(msg.Body)
				return strings.Contains(subject, short) || strings.Contains(body, short)
			},
		},
	}
}

// MatchReply percorre os contatados em ordem de inserção e devolve o primeiro
// que satisfaz alguma regra — a ordem estável do repositório é o desempate.
// Retorna também o nome da regra que bateu, para o log.
func MatchReply(msg entity.InboundMessage, contacted []*entity.BusinessRecord, rules []MatchRule) (*entity.BusinessRecord, string) {
	for _, record := range contacted {
		for _, rule := range rules {
			if rule.Match(msg, record) {
				return record, rule.Name
			}
		}
	}
	return nil, ""
}
