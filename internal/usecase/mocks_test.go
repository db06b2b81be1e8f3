package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/entity"
	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/infra/queue"
)

// MockBusinessRepo
type MockBusinessRepo struct {
	mock.Mock
}

func (m *MockBusinessRepo) Append(ctx context.Context, records []*entity.BusinessRecord) (int, error) {
	args := m.Called(ctx, records)
	return args.Int(0), args.Error(1)
}

func (m *MockBusinessRepo) ListByStatus(ctx context.Context, status entity.Status) ([]*entity.BusinessRecord, error) {
	args := m.Called(ctx, status)
	if v := args.Get(0); v != nil {
		return v.([]*entity.BusinessRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBusinessRepo) UpdateStatusFields(ctx context.Context, id string, status entity.Status, emailSent, emailAddress, notes string) error {
	args := m.Called(ctx, id, status, emailSent, emailAddress, notes)
	return args.Error(0)
}

func (m *MockBusinessRepo) ListAllNames(ctx context.Context) (map[string]struct{}, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(map[string]struct{}), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBusinessRepo) CountByStatus(ctx context.Context) (map[entity.Status]int, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(map[entity.Status]int), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockLeadRepo
type MockLeadRepo struct {
	mock.Mock
}

func (m *MockLeadRepo) Append(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

// MockSearchClient
type MockSearchClient struct {
	mock.Mock
}

func (m *MockSearchClient) Search(ctx context.Context, query string, maxResults int) ([]SearchHit, error) {
	args := m.Called(ctx, query, maxResults)
	if v := args.Get(0); v != nil {
		return v.([]SearchHit), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockComposer
type MockComposer struct {
	mock.Mock
}

func (m *MockComposer) Compose(ctx context.Context, businessName, niche, city, snippet string) (string, string, error) {
	args := m.Called(ctx, businessName, niche, city, snippet)
	return args.String(0), args.String(1), args.Error(2)
}

// MockClassifier
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, replyText, businessName string) (string, error) {
	args := m.Called(ctx, replyText, businessName)
	return args.String(0), args.Error(1)
}

// MockMailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

// MockInbox
type MockInbox struct {
	mock.Mock
}

func (m *MockInbox) FetchUnseen(ctx context.Context) ([]entity.InboundMessage, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]entity.InboundMessage), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishLead(ctx context.Context, payload queue.LeadPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// stubProber responde a sonda de DNS a partir de um mapa fixo.
// Domínio fora do mapa não resolve — o mesmo que uma falha de lookup.
type stubProber struct {
	resolves map[string]bool
}

func (p *stubProber) Resolves(ctx context.Context, domain string) bool {
	return p.resolves[domain]
}
