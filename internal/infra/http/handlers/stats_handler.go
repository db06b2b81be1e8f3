package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/entity"
)

// StatsHandler expõe a contagem de negócios por status — um retrato do funil.
type StatsHandler struct {
	Repo entity.BusinessRepositoryInterface
}

func NewStatsHandler(repo entity.BusinessRepositoryInterface) *StatsHandler {
	return &StatsHandler{Repo: repo}
}

func (h *StatsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Repo.CountByStatus(r.Context())
	if err != nil {
		log.Printf("❌ Erro ao contar por status: %v", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}

	response := make(map[string]int, len(counts))
	for status, n := range counts {
		response[string(status)] = n
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
