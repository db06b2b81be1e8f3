package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/infra/queue"
)

// Client empurra leads promovidos para um webhook de CRM.
// Consumido pelo worker da fila; sem webhook configurado, só loga.
type Client struct {
	webhookURL string
	apiToken   string
	httpClient *http.Client
}

func NewClient(webhookURL, apiToken string) *Client {
	return &Client{
		webhookURL: webhookURL,
		apiToken:   apiToken,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) PushLead(ctx context.Context, payload queue.LeadPayload) error {
	if c.webhookURL == "" {
		log.Println("⚠️ CRM: CRM_WEBHOOK_URL não configurado, lead só registrado no ledger")
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiToken))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao enviar lead ao CRM: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("crm retornou status %d: %s", resp.StatusCode, string(respBody))
	}

	log.Printf("✅ CRM: lead %q sincronizado", payload.Name)
	return nil
}
