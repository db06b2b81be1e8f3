package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp091 "github.com/rabbitmq/amqp091-go"
	"github.com/spf13/cobra"

	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/config"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/infra/database"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/infra/dns"
	statushttp "github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/infra/http"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/infra/integration/anthropic"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/infra/integration/crm"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/infra/integration/groq"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/infra/integration/search"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/infra/mail"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/infra/queue"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/infra/worker"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/usecase"
)

var campaignFile string

// app concentra a fiação de dependências. Montado uma vez por invocação.
type app struct {
	cfg       *config.Config
	db        *sql.DB
	rabbit    *queue.RabbitMQ // nil quando AMQP_URL não está configurado
	repo      *database.BusinessRepository
	discover  *usecase.DiscoverUseCase
	outreach  *usecase.OutreachUseCase
	reconcile *usecase.ReconcileUseCase
}

func newApp() (*app, error) {
	godotenv.Load()

	cfg, err := config.Load(campaignFile)
	if err != nil {
		return nil, err
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no banco: %w", err)
	}

	if err := database.EnsureSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("erro ao criar schema: %w", err)
	}

	// 1. Repositórios
	repo := database.NewBusinessRepository(db)
	leadRepo := database.NewLeadRepository(db)

	// 2. Integrações externas
	var composer usecase.Composer
	var classifier usecase.Classifier
	if cfg.LLMProvider == "anthropic" {
		client := anthropic.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
		composer, classifier = client, client
	} else {
		client := groq.NewClient(cfg.GroqAPIKey, cfg.GroqModel)
		composer, classifier = client, client
	}

	mailer := mail.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	inbox := mail.NewInboxReader(cfg.IMAPAddr, cfg.IMAPUser, cfg.IMAPPass)
	searchClient := search.NewClient(cfg.SearchAPIKey, cfg.SearchURL)
	prober := dns.NewProber()

	// 3. Fila (opcional): sem AMQP_URL o lead só vai para o ledger e o email.
	var rabbit *queue.RabbitMQ
	var publisher usecase.LeadPublisherInterface
	if cfg.AMQPURL != "" {
		rabbit, err = queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			db.Close()
			return nil, err
		}
		publisher = queue.NewLeadProducer(rabbit.Ch)
	}

	// 4. UseCases
	a := &app{
		cfg:    cfg,
		db:     db,
		rabbit: rabbit,
		repo:   repo,
		discover: usecase.NewDiscoverUseCase(
			searchClient, prober, repo, cfg.Campaign, cfg.SendDelay,
		),
		outreach: usecase.NewOutreachUseCase(
			repo, composer, mailer, cfg.SendDelay,
		),
		reconcile: usecase.NewReconcileUseCase(
			repo, leadRepo, inbox, classifier, mailer, publisher, cfg.NotifyAddress,
		),
	}

	return a, nil
}

func (a *app) close() {
	if a.rabbit != nil {
		a.rabbit.Close()
	}
	a.db.Close()
}

// runPoll roda o loop contínuo: reconciliação no intervalo configurado,
// worker de CRM consumindo a fila e servidor de status ao lado.
func (a *app) runPoll() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var amqpConn *amqp091.Connection
	if a.rabbit != nil {
		amqpConn = a.rabbit.Conn
		crmClient := crm.NewClient(a.cfg.CRMWebhookURL, a.cfg.CRMToken)
		leadWorker := queue.NewWorker(a.rabbit.Ch, crmClient)
		go leadWorker.Start(ctx, queue.QueueName)
	}

	server := statushttp.NewStatusServer(a.cfg.StatusAddr, a.db, amqpConn, a.repo)
	go server.Start()

	poller := worker.NewPollWorker(a.reconcile, a.cfg.PollInterval)
	poller.Start(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	server.Shutdown(shutdownCtx)
}

var rootCmd = &cobra.Command{
	Use:   "agent",
	Short: "Agente de prospecção: descobre negócios sem site, contata e reconcilia respostas",
	Long: `Pipeline completo de prospecção fria:
busca negócios locais sem site próprio, envia um pitch gerado por LLM
e casa as respostas da caixa de entrada com os registros contatados.`,
	// Sem subcomando roda o ciclo completo, como o modo "full".
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFull()
	},
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Roda um ciclo de descoberta e persiste candidatos como Pending",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		_, err = a.discover.Execute(context.Background())
		return err
	},
}

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Contata todos os negócios Pending",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		_, _, err = a.outreach.Execute(context.Background())
		return err
	},
}

var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "Loop contínuo de reconciliação de respostas (Ctrl+C para parar)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		a.runPoll()
		return nil
	},
}

var fullCmd = &cobra.Command{
	Use:   "full",
	Short: "Uma descoberta, um ciclo de contato e um passo de reconciliação",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFull()
	},
}

func runFull() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := context.Background()

	if _, err := a.discover.Execute(ctx); err != nil {
		return err
	}
	if _, _, err := a.outreach.Execute(ctx); err != nil {
		return err
	}
	return a.reconcile.Execute(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&campaignFile, "campaign", "campaign.yaml", "Arquivo YAML da campanha (nichos e cidades)")
	rootCmd.AddCommand(scrapeCmd, emailCmd, pollCmd, fullCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}
