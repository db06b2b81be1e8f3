package worker

import (
	"context"
	"log"
	"time"
)

// Cycle é um passo de reconciliação completo.
type Cycle interface {
	Execute(ctx context.Context) error
}

// PollWorker roda ciclos de reconciliação num intervalo fixo, sem overlap:
// um ciclo termina inteiro (incluindo escritas no banco) antes do próximo
// sleep começar. Cancelamento só entre ciclos.
type PollWorker struct {
	cycle        Cycle
	tickInterval time.Duration
}

func NewPollWorker(cycle Cycle, interval time.Duration) *PollWorker {
	return &PollWorker{
		cycle:        cycle,
		tickInterval: interval,
	}
}

func (w *PollWorker) Start(ctx context.Context) {
	log.Printf("🕒 Poll worker iniciado (intervalo %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.runCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Poll worker encerrado")
			return
		case <-ticker.C:
			w.runCycle(ctx)
		}
	}
}

func (w *PollWorker) runCycle(ctx context.Context) {
	if err := w.cycle.Execute(ctx); err != nil {
		log.Printf("❌ Erro no ciclo de poll: %v", err)
	}
}
