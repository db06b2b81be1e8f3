// Package http expõe o servidor de status do modo poll: health check,
// contadores do funil e métricas Prometheus. Só leitura — nenhuma
// operação do agente passa por aqui.
package http

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/entity"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/infra/http/handlers"
)

type StatusServer struct {
	server *http.Server
}

func NewStatusServer(addr string, db *sql.DB, rabbitConn *amqp091.Connection, repo entity.BusinessRepositoryInterface) *StatusServer {
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)
	statsHandler := handlers.NewStatsHandler(repo)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Get("/stats", statsHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	return &StatusServer{
		server: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}
}

func (s *StatusServer) Start() {
	log.Printf("🔥 Servidor de status rodando em %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("❌ Servidor de status: %v", err)
	}
}

func (s *StatusServer) Shutdown(ctx context.Context) {
	if err := s.server.Shutdown(ctx); err != nil {
		log.Printf("⚠️ Erro no shutdown do servidor de status: %v", err)
	}
}
