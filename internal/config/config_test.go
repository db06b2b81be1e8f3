package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadCampaignDefaultsWhenFileMissing(t *testing.T) {
	campaign, err := loadCampaign(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.NoError(t, err)
	assert.Equal(t, []string{"cafe", "photographer", "boutique", "accountant", "gym"}, campaign.Niches)
	assert.Equal(t, []string{"New York", "London", "Bangalore", "Sydney", "Toronto"}, campaign.Cities)
	assert.Equal(t, 10, campaign.ResultsPerQuery)
	assert.Equal(t, 3, campaign.CombosPerCycle)
}

func TestLoadCampaignFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.yaml")
	data := `niches: [dentist, florist]
cities: [Mumbai]
results_per_query: 5
combos_per_cycle: 2
`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	campaign, err := loadCampaign(path)

	assert.NoError(t, err)
	assert.Equal(t, []string{"dentist", "florist"}, campaign.Niches)
	assert.Equal(t, []string{"Mumbai"}, campaign.Cities)
	assert.Equal(t, 5, campaign.ResultsPerQuery)
	assert.Equal(t, 2, campaign.CombosPerCycle)
}

func TestLoadCampaignRejectsEmptyLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("niches: []\ncities: []\n"), 0o644))

	_, err := loadCampaign(path)
	assert.Error(t, err)
}

func TestLoadCampaignClampsBadNumbers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.yaml")
	data := `niches: [cafe]
cities: [London]
results_per_query: 0
combos_per_cycle: -1
`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	campaign, err := loadCampaign(path)

	assert.NoError(t, err)
	assert.Equal(t, 10, campaign.ResultsPerQuery)
	assert.Equal(t, 3, campaign.CombosPerCycle)
}

func TestValidateProvider(t *testing.T) {
	base := Config{
		DatabaseURL: "postgres://localhost/outreach",
		SMTPUser:    "agent@devark.studio",
		SMTPPass:    "secret",
	}

	cfg := base
	cfg.LLMProvider = "groq"
	assert.Error(t, cfg.validate(), "groq sem chave deve falhar")

	cfg.GroqAPIKey = "gsk_test"
	assert.NoError(t, cfg.validate())

	cfg = base
	cfg.LLMProvider = "anthropic"
	cfg.AnthropicAPIKey = "sk-ant-test"
	assert.NoError(t, cfg.validate())

	cfg = base
	cfg.LLMProvider = "openai"
	assert.Error(t, cfg.validate(), "provedor desconhecido deve falhar")
}
