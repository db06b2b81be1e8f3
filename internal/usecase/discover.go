package usecase

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/config"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/entity"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/metrics"
)

const snippetMaxLen = 200

// Títulos/snippets com esses termos são conteúdo editorial, não negócio local.
var skipKeywords = []string{
	"wikipedia", "news", "article", "blog", "how to", "what is", "top 10", "best in",
}

// Domínios de rede social / diretório: presença lá não conta como site próprio.
var directoryDomains = []string{
	"facebook.com", "instagram.com", "twitter.com",
	"yelp.com", "google.com", "maps.google.com",
	"justdial.com", "sulekha.com", "indiamart.com",
	"urbanclap.com", "linkedin.com",
}

var domainPattern = regexp.MustCompile(`https?://([^/\s]+)`)

type DiscoverUseCase struct {
	Search      SearchClient
	Prober      WebsiteProber
	Repo        entity.BusinessRepositoryInterface
	Campaign    config.Campaign
	SearchDelay time.Duration
}

func NewDiscoverUseCase(
	search SearchClient,
	prober WebsiteProber,
	repo entity.BusinessRepositoryInterface,
	campaign config.Campaign,
	searchDelay time.Duration,
) *DiscoverUseCase {
	return &DiscoverUseCase{
		Search:      search,
		Prober:      prober,
		Repo:        repo,
		Campaign:    campaign,
		SearchDelay: searchDelay,
	}
}

// Execute roda um ciclo completo de descoberta: sorteia combos nicho+cidade,
// busca, filtra e persiste. Retorna quantos candidatos novos entraram no banco.
func (uc *DiscoverUseCase) Execute(ctx context.Context) (int, error) {
	combos := uc.randomCombos(uc.Campaign.CombosPerCycle)
	log.Printf("🔎 Ciclo de descoberta: %d combo(s) selecionado(s)", len(combos))

	var candidates []*entity.BusinessRecord
	for i, combo := range combos {
		candidates = append(candidates, uc.scrapeCombo(ctx, combo.niche, combo.city)...)

		// Cortesia com o provedor de busca entre queries.
		if i < len(combos)-1 && uc.SearchDelay > 0 {
			time.Sleep(uc.SearchDelay)
		}
	}

	log.Printf("🔎 Ciclo coletou %d candidato(s) no total", len(candidates))
	metrics.RecordCandidates(len(candidates))

	if len(candidates) == 0 {
		return 0, nil
	}

	// Dedup entre ciclos é do repositório, contra o conjunto de nomes do banco.
	inserted, err := uc.Repo.Append(ctx, candidates)
	if err != nil {
		return 0, fmt.Errorf("erro ao persistir candidatos: %w", err)
	}

	log.Printf("✅ %d candidato(s) novo(s) persistido(s) como Pending", inserted)
	return inserted, nil
}

type combo struct {
	niche string
	city  string
}

func (uc *DiscoverUseCase) randomCombos(n int) []combo {
	combos := make([]combo, 0, n)
	for i := 0; i < n; i++ {
		combos = append(combos, combo{
			niche: uc.Campaign.Niches[rand.Intn(len(uc.Campaign.Niches))],
			city:  uc.Campaign.Cities[rand.Intn(len(uc.Campaign.Cities))],
		})
	}
	return combos
}

func (uc *DiscoverUseCase) scrapeCombo(ctx context.Context, niche, city string) []*entity.BusinessRecord {
	query := fmt.Sprintf("%s in %s contact", niche, city)
	log.Printf("🔎 Buscando: %q", query)

	hits, err := uc.Search.Search(ctx, query, uc.Campaign.ResultsPerQuery)
	if err != nil {
		// Erro de busca vale como zero resultados; nunca derruba o ciclo.
		log.Printf("⚠️ Erro na busca %q: %v", query, err)
		metrics.RecordIntegrationError("search")
		return nil
	}

	candidates := uc.FilterHits(ctx, niche, city, hits)
	log.Printf("🔎 %d candidato(s) para %q", len(candidates), query)
	return candidates
}

// FilterHits aplica o funil de descoberta sobre os hits crus:
// dedup intra-batch por título, filtro de conteúdo editorial, e a sonda
// de site próprio. Só o dedup do banco fica de fora (acontece no Append).
func (uc *DiscoverUseCase) FilterHits(ctx context.Context, niche, city string, hits []SearchHit) []*entity.BusinessRecord {
	var candidates []*entity.BusinessRecord
	seenTitles := make(map[string]struct{})

	for _, hit := range hits {
		title := strings.TrimSpace(hit.Title)
		snippet := strings.TrimSpace(hit.Snippet)
		url := strings.TrimSpace(hit.URL)

		if title == "" {
			continue
		}

		key := strings.ToLower(title)
		if _, seen := seenTitles[key]; seen {
			continue
		}
		seenTitles[key] = struct{}{}

		if hasSkipKeyword(title, snippet) {
			continue
		}

		// Domínio em diretório/rede social não conta como site próprio,
		// então nem vale uma sonda.
		domain := ExtractDomain(url)
		if domain != "" && uc.Prober.Resolves(ctx, domain) {
			log.Printf("  ⏭️ %s — já tem site (%s)", title, domain)
			continue
		}

		record, err := entity.NewBusinessRecord(title, niche, city, url, truncate(snippet, snippetMaxLen))
		if err != nil {
			log.Printf("  ⚠️ Hit inválido descartado: %v", err)
			continue
		}

		candidates = append(candidates, record)
		log.Printf("  ✅ %s — sem site detectado", title)
	}

	return candidates
}

func hasSkipKeyword(title, snippet string) bool {
	title = strings.ToLower(title)
	snippet = strings.ToLower(snippet)
	for _, kw := range skipKeywords {
		if strings.Contains(title, kw) || strings.Contains(snippet, kw) {
			return true
		}
	}
	return false
}

// ExtractDomain tira o domínio raiz da URL do hit. Retorna vazio quando não
// há URL ou quando o domínio é de diretório/rede social.
func ExtractDomain(url string) string {
	match := domainPattern.FindStringSubmatch(url)
	if match == nil {
		return ""
	}

	domain := strings.ToLower(match[1])
	for _, d := range directoryDomains {
		if strings.Contains(domain, d) {
			return ""
		}
	}
	return domain
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
