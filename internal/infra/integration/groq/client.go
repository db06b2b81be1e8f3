package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/infra/integration/prompts"
)

// Client fala com a API chat-completions da Groq (formato OpenAI).
// É o provedor default de geração e classificação.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://api.groq.com/openai/v1",
		// Timeout obrigatório: uma chamada pendurada travaria o ciclo inteiro.
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Compose(ctx context.Context, businessName, niche, city, snippet string) (string, string, error) {
	raw, err := c.chatCompletion(ctx, prompts.ComposeSystem,
		prompts.BuildComposePrompt(businessName, niche, city, snippet), 300, 0.7)
	if err != nil {
		return "", "", err
	}

	subject, body := prompts.ParseComposed(raw)
	log.Printf("🤖 Email gerado para %q — assunto: %q", businessName, subject)
	return subject, body, nil
}

func (c *Client) Classify(ctx context.Context, replyText, businessName string) (string, error) {
	// Temperatura zero: classificação deve ser o mais determinística possível.
	return c.chatCompletion(ctx, prompts.ClassifySystem,
		prompts.BuildClassifyPrompt(replyText, businessName), 10, 0)
}

func (c *Client) chatCompletion(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro na chamada Groq: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq api retornou status %d: %s", resp.StatusCode, string(body))
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("erro ao parsear resposta Groq: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("resposta Groq sem choices")
	}

	return result.Choices[0].Message.Content, nil
}
