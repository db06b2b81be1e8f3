package entity

import "strings"

// Classification é o rótulo que o classificador dá para uma resposta.
// Enumeração fechada na borda: qualquer saída fora das três é coagida
// para NeedsFollowup — o default seguro, nunca um retry.
type Classification string

const (
	ClassificationInterested    Classification = "interested"
	ClassificationNotInterested Classification = "not_interested"
	ClassificationNeedsFollowup Classification = "needs_followup"
)

// ParseClassification normaliza a saída crua do classificador.
// Saída desconhecida vira needs_followup explicitamente, não por fallthrough.
func ParseClassification(raw string) Classification {
	switch Classification(strings.ToLower(strings.TrimSpace(raw))) {
	case ClassificationInterested:
		return ClassificationInterested
	case ClassificationNotInterested:
		return ClassificationNotInterested
	case ClassificationNeedsFollowup:
		return ClassificationNeedsFollowup
	default:
		return ClassificationNeedsFollowup
	}
}

// IsLead: interested e needs_followup viram Lead. Respostas ambíguas sobem
// para um humano em vez de morrer em silêncio — decisão deliberada, não bug.
func (c Classification) IsLead() bool {
	return c != ClassificationNotInterested
}
