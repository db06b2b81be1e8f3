package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config é montado uma vez no boot e passado por valor para os componentes.
// Nada aqui é estado global mutável.
type Config struct {
	DatabaseURL string

	// SMTP (envio) e IMAP (leitura) — mesma conta por padrão.
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	IMAPAddr string
	IMAPUser string
	IMAPPass string

	// Endereço que recebe as notificações de lead.
	NotifyAddress string

	// LLM: "groq" (default) ou "anthropic".
	LLMProvider     string
	GroqAPIKey      string
	GroqModel       string
	AnthropicAPIKey string
	AnthropicModel  string

	SearchAPIKey string
	SearchURL    string

	// Opcionais: sem AMQP_URL o evento de lead não é publicado;
	// sem CRM_WEBHOOK_URL o worker da fila só loga.
	AMQPURL       string
	CRMWebhookURL string
	CRMToken      string

	PollInterval time.Duration
	SendDelay    time.Duration
	StatusAddr   string

	Campaign Campaign
}

// Campaign vem do arquivo YAML: o que buscar e com que intensidade.
type Campaign struct {
	Niches          []string `yaml:"niches"`
	Cities          []string `yaml:"cities"`
	ResultsPerQuery int      `yaml:"results_per_query"`
	CombosPerCycle  int      `yaml:"combos_per_cycle"`
}

// Load lê as variáveis de ambiente e o arquivo de campanha.
// Erro aqui é fatal por design: credencial faltando não tem auto-recuperação.
func Load(campaignPath string) (*Config, error) {
	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SMTPHost:        getEnv("MAIL_HOST", "smtp.gmail.com"),
		SMTPPort:        getEnvInt("MAIL_PORT", 587),
		SMTPUser:        os.Getenv("MAIL_USER"),
		SMTPPass:        os.Getenv("MAIL_PASS"),
		IMAPAddr:        getEnv("IMAP_ADDR", "imap.gmail.com:993"),
		LLMProvider:     getEnv("LLM_PROVIDER", "groq"),
		GroqAPIKey:      os.Getenv("GROQ_API_KEY"),
		GroqModel:       getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		SearchAPIKey:    os.Getenv("SEARCH_API_KEY"),
		SearchURL:       getEnv("SEARCH_URL", "https://google.serper.dev/search"),
		AMQPURL:         os.Getenv("AMQP_URL"),
		CRMWebhookURL:   os.Getenv("CRM_WEBHOOK_URL"),
		CRMToken:        os.Getenv("CRM_API_TOKEN"),
		PollInterval:    time.Duration(getEnvInt("POLL_INTERVAL_SECONDS", 120)) * time.Second,
		SendDelay:       time.Duration(getEnvInt("SEND_DELAY_SECONDS", 2)) * time.Second,
		StatusAddr:      getEnv("STATUS_ADDR", ":8080"),
	}

	cfg.IMAPUser = getEnv("IMAP_USER", cfg.SMTPUser)
	cfg.IMAPPass = getEnv("IMAP_PASS", cfg.SMTPPass)
	cfg.NotifyAddress = getEnv("NOTIFY_ADDRESS", cfg.SMTPUser)

	campaign, err := loadCampaign(campaignPath)
	if err != nil {
		return nil, err
	}
	cfg.Campaign = campaign

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL é obrigatório")
	}
	if c.SMTPUser == "" || c.SMTPPass == "" {
		return fmt.Errorf("MAIL_USER e MAIL_PASS são obrigatórios")
	}
	switch c.LLMProvider {
	case "groq":
		if c.GroqAPIKey == "" {
			return fmt.Errorf("GROQ_API_KEY é obrigatório com LLM_PROVIDER=groq")
		}
	case "anthropic":
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY é obrigatório com LLM_PROVIDER=anthropic")
		}
	default:
		return fmt.Errorf("LLM_PROVIDER desconhecido: %q (use groq ou anthropic)", c.LLMProvider)
	}
	return nil
}

func loadCampaign(path string) (Campaign, error) {
	// Defaults espelham a campanha original.
	campaign := Campaign{
		Niches:          []string{"cafe", "photographer", "boutique", "accountant", "gym"},
		Cities:          []string{"New York", "London", "Bangalore", "Sydney", "Toronto"},
		ResultsPerQuery: 10,
		CombosPerCycle:  3,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return campaign, nil
	}
	if err != nil {
		return campaign, fmt.Errorf("erro ao ler arquivo de campanha %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &campaign); err != nil {
		return campaign, fmt.Errorf("erro ao parsear campanha YAML: %w", err)
	}

	if len(campaign.Niches) == 0 || len(campaign.Cities) == 0 {
		return campaign, fmt.Errorf("campanha precisa de pelo menos um nicho e uma cidade")
	}
	if campaign.ResultsPerQuery <= 0 {
		campaign.ResultsPerQuery = 10
	}
	if campaign.CombosPerCycle <= 0 {
		campaign.CombosPerCycle = 3
	}

	return campaign, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
