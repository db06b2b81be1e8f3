// Package anthropic é o provedor alternativo de LLM, por trás das mesmas
// interfaces Composer/Classifier. Ativado com LLM_PROVIDER=anthropic.
package anthropic

import (
	"context"
	"fmt"
	"log"

	llmanthropic "github.com/aktagon/llmkit/anthropic"
	"github.com/aktagon/llmkit/anthropic/types"

	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/infra/integration/prompts"
)

type Client struct {
	apiKey string
	model  string
}

func NewClient(apiKey, model string) *Client {
	return &Client{apiKey: apiKey, model: model}
}

func (c *Client) Compose(ctx context.Context, businessName, niche, city, snippet string) (string, string, error) {
	raw, err := c.prompt(prompts.ComposeSystem,
		prompts.BuildComposePrompt(businessName, niche, city, snippet), 300, 0.7)
	if err != nil {
		return "", "", err
	}

	subject, body := prompts.ParseComposed(raw)
	log.Printf("🤖 Email gerado para %q — assunto: %q", businessName, subject)
	return subject, body, nil
}

func (c *Client) Classify(ctx context.Context, replyText, businessName string) (string, error) {
	return c.prompt(prompts.ClassifySystem,
		prompts.BuildClassifyPrompt(replyText, businessName), 10, 0)
}

// prompt delega para o llmkit. A API do llmkit não recebe context;
// o timeout fica por conta do cliente HTTP interno dele.
func (c *Client) prompt(system, user string, maxTokens int, temperature float64) (string, error) {
	settings := types.RequestSettings{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	response, err := llmanthropic.PromptWithSettings(system, user, "", c.apiKey, settings)
	if err != nil {
		return "", fmt.Errorf("erro na chamada Anthropic: %w", err)
	}

	if len(response.Content) == 0 {
		return "", fmt.Errorf("resposta Anthropic vazia")
	}

	return response.Content[0].Text, nil
}
