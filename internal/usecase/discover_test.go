package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/config"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/entity"
)

func testCampaign() config.Campaign {
	return config.Campaign{
		Niches:          []string{"cafe"},
		Cities:          []string{"New York"},
		ResultsPerQuery: 10,
		CombosPerCycle:  1,
	}
}

func newDiscoverForFilter(prober WebsiteProber) *DiscoverUseCase {
	return &DiscoverUseCase{
		Prober:   prober,
		Campaign: testCampaign(),
	}
}

// TestFilterDedupesTitlesWithinBatch - nunca saem dois candidatos com o mesmo
// título (case-insensitive) do mesmo lote
func TestFilterDedupesTitlesWithinBatch(t *testing.T) {
	uc := newDiscoverForFilter(&stubProber{})

	hits := []SearchHit{
		{Title: "Joe's Cafe", Snippet: "local cafe", URL: ""},
		{Title: "JOE'S CAFE", Snippet: "same place, different casing", URL: ""},
		{Title: "joe's cafe", Snippet: "third time", URL: ""},
	}

	candidates := uc.FilterHits(context.Background(), "cafe", "New York", hits)

	assert.Len(t, candidates, 1)
	assert.Equal(t, "Joe's Cafe", candidates[0].Name)
}

func TestFilterRejectsEditorialContent(t *testing.T) {
	uc := newDiscoverForFilter(&stubProber{})

	hits := []SearchHit{
		{Title: "Top 10 cafes in New York", Snippet: "listicle"},
		{Title: "Cafe Roma", Snippet: "a blog about coffee shops"},
		{Title: "What is a flat white", Snippet: "explainer"},
		{Title: "Cafe Luna", Snippet: "family owned espresso bar"},
	}

	candidates := uc.FilterHits(context.Background(), "cafe", "New York", hits)

	assert.Len(t, candidates, 1)
	assert.Equal(t, "Cafe Luna", candidates[0].Name)
}

// TestFilterKeepsDenylistedDomain - presença no Facebook não conta como site
// próprio: candidato fica, sem sonda
func TestFilterKeepsDenylistedDomain(t *testing.T) {
	// O stub resolveria facebook.com; a sonda não pode nem ser consultada.
	uc := newDiscoverForFilter(&stubProber{resolves: map[string]bool{"facebook.com": true}})

	hits := []SearchHit{
		{Title: "Joe's Cafe", Snippet: "local cafe", URL: "http://facebook.com/joescafe"},
	}

	candidates := uc.FilterHits(context.Background(), "cafe", "New York", hits)

	assert.Len(t, candidates, 1)
	assert.Equal(t, "No", candidates[0].HasWebsite)
	assert.Equal(t, entity.StatusPending, candidates[0].Status)
}

func TestFilterExcludesResolvableDomain(t *testing.T) {
	uc := newDiscoverForFilter(&stubProber{resolves: map[string]bool{"joescafe.com": true}})

	hits := []SearchHit{
		{Title: "Joe's Cafe", Snippet: "local cafe", URL: "https://joescafe.com/about"},
	}

	candidates := uc.FilterHits(context.Background(), "cafe", "New York", hits)

	assert.Empty(t, candidates)
}

// TestFilterKeepsUnresolvableDomain - falha de lookup vale como "sem site"
func TestFilterKeepsUnresolvableDomain(t *testing.T) {
	uc := newDiscoverForFilter(&stubProber{})

	hits := []SearchHit{
		{Title: "Joe's Cafe", Snippet: "local cafe", URL: "https://joescafe-parked.com"},
	}

	candidates := uc.FilterHits(context.Background(), "cafe", "New York", hits)

	assert.Len(t, candidates, 1)
}

func TestFilterTruncatesSnippet(t *testing.T) {
	uc := newDiscoverForFilter(&stubProber{})

	long := strings.Repeat("x", 350)
	hits := []SearchHit{{Title: "Joe's Cafe", Snippet: long}}

	candidates := uc.FilterHits(context.Background(), "cafe", "New York", hits)

	assert.Len(t, candidates, 1)
	assert.Len(t, candidates[0].Snippet, snippetMaxLen)
}

func TestExtractDomain(t *testing.T) {
	assert.Equal(t, "joescafe.com", ExtractDomain("https://joescafe.com/contact"))
	assert.Equal(t, "joescafe.com", ExtractDomain("http://joescafe.com"))
	assert.Equal(t, "", ExtractDomain("http://facebook.com/joescafe"))
	assert.Equal(t, "", ExtractDomain("https://www.linkedin.com/company/joes"))
	assert.Equal(t, "", ExtractDomain("not a url"))
	assert.Equal(t, "", ExtractDomain(""))
}

// TestExecuteSearchErrorYieldsZeroResults - erro de busca nunca derruba o
// ciclo: vale como zero hits
func TestExecuteSearchErrorYieldsZeroResults(t *testing.T) {
	ctx := context.Background()

	mockSearch := new(MockSearchClient)
	mockSearch.On("Search", ctx, mock.Anything, 10).Return(nil, assert.AnError)

	mockRepo := new(MockBusinessRepo)

	uc := NewDiscoverUseCase(mockSearch, &stubProber{}, mockRepo, testCampaign(), 0)

	inserted, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Zero(t, inserted)
	mockRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestExecutePersistsSurvivors(t *testing.T) {
	ctx := context.Background()

	mockSearch := new(MockSearchClient)
	mockSearch.On("Search", ctx, "cafe in New York contact", 10).Return([]SearchHit{
		{Title: "Joe's Cafe", Snippet: "local cafe", URL: ""},
		{Title: "Top 10 cafes", Snippet: "listicle", URL: ""},
	}, nil)

	mockRepo := new(MockBusinessRepo)
	mockRepo.On("Append", ctx, mock.MatchedBy(func(records []*entity.BusinessRecord) bool {
		return len(records) == 1 && records[0].Name == "Joe's Cafe"
	})).Return(1, nil)

	uc := NewDiscoverUseCase(mockSearch, &stubProber{}, mockRepo, testCampaign(), 0)

	inserted, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, inserted)
	mockRepo.AssertExpectations(t)
}
