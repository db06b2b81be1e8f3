package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/1Kunalvats9/airis-buildX-Elite-Barbarians/internal/entity"
)

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "joe@joescafe.com",
		ExtractEmail("contact us at Joe@JoesCafe.com today", ""))
	assert.Equal(t, "info@bakery.co.uk",
		ExtractEmail("", "https://directory.example/info@bakery.co.uk"))
	assert.Equal(t, "",
		ExtractEmail("no address here", "https://example.com/contact"))
	// Primeiro endereço ganha quando há mais de um.
	assert.Equal(t, "first@a.com",
		ExtractEmail("first@a.com and second@b.com", ""))
}

func pendingRecord(name, snippet string) *entity.BusinessRecord {
	return &entity.BusinessRecord{
		ID:      "id-" + name,
		Name:    name,
		Niche:   "cafe",
		City:    "New York",
		Snippet: snippet,
		Status:  entity.StatusPending,
	}
}

// TestOutreachNoEmailFound - sem endereço extraível, o registro vai para o
// terminal No Email Found sem nem chamar o composer
func TestOutreachNoEmailFound(t *testing.T) {
	ctx := context.Background()
	record := pendingRecord("Joe's Cafe", "a cafe with no contact info")

	mockRepo := new(MockBusinessRepo)
	mockRepo.On("ListByStatus", ctx, entity.StatusPending).
		Return([]*entity.BusinessRecord{record}, nil)
	mockRepo.On("UpdateStatusFields", ctx, record.ID, entity.StatusNoEmailFound,
		"No", "", "Could not extract email from snippet or URL.").Return(nil)

	mockComposer := new(MockComposer)
	mockMailer := new(MockMailer)

	uc := NewOutreachUseCase(mockRepo, mockComposer, mockMailer, 0)

	sent, skipped, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Zero(t, sent)
	assert.Equal(t, 1, skipped)
	mockComposer.AssertNotCalled(t, "Compose", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestOutreachSuccessTransitionsToContacted(t *testing.T) {
	ctx := context.Background()
	record := pendingRecord("Joe's Cafe", "reach us at joe@joescafe.com")

	mockRepo := new(MockBusinessRepo)
	mockRepo.On("ListByStatus", ctx, entity.StatusPending).
		Return([]*entity.BusinessRecord{record}, nil)
	mockRepo.On("UpdateStatusFields", ctx, record.ID, entity.StatusContacted,
		"Yes", "joe@joescafe.com", "Email sent. Subject: Quick question").Return(nil)

	mockComposer := new(MockComposer)
	mockComposer.On("Compose", ctx, "Joe's Cafe", "cafe", "New York", record.Snippet).
		Return("Quick question", "Hi Joe's Cafe...", nil)

	mockMailer := new(MockMailer)
	mockMailer.On("Send", "joe@joescafe.com", "Quick question", "Hi Joe's Cafe...").Return(nil)

	uc := NewOutreachUseCase(mockRepo, mockComposer, mockMailer, 0)

	sent, skipped, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Zero(t, skipped)
	mockRepo.AssertExpectations(t)
	mockMailer.AssertExpectations(t)
}

// TestOutreachSendFailureIsTerminal - falha de SMTP vira Email Failed, sem retry
func TestOutreachSendFailureIsTerminal(t *testing.T) {
	ctx := context.Background()
	record := pendingRecord("Joe's Cafe", "reach us at joe@joescafe.com")

	mockRepo := new(MockBusinessRepo)
	mockRepo.On("ListByStatus", ctx, entity.StatusPending).
		Return([]*entity.BusinessRecord{record}, nil)
	mockRepo.On("UpdateStatusFields", ctx, record.ID, entity.StatusEmailFailed,
		"No", "joe@joescafe.com", "SMTP send failed. Check logs.").Return(nil)

	mockComposer := new(MockComposer)
	mockComposer.On("Compose", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("Subject", "Body", nil)

	mockMailer := new(MockMailer)
	mockMailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	uc := NewOutreachUseCase(mockRepo, mockComposer, mockMailer, 0)

	sent, skipped, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Zero(t, sent)
	assert.Equal(t, 1, skipped)
	mockRepo.AssertExpectations(t)
}

// TestOutreachComposerFailureLeavesPending - composer fora do ar é transiente:
// nenhuma transição gravada, o registro entra no próximo ciclo
func TestOutreachComposerFailureLeavesPending(t *testing.T) {
	ctx := context.Background()
	record := pendingRecord("Joe's Cafe", "reach us at joe@joescafe.com")

	mockRepo := new(MockBusinessRepo)
	mockRepo.On("ListByStatus", ctx, entity.StatusPending).
		Return([]*entity.BusinessRecord{record}, nil)

	mockComposer := new(MockComposer)
	mockComposer.On("Compose", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", "", assert.AnError)

	mockMailer := new(MockMailer)

	uc := NewOutreachUseCase(mockRepo, mockComposer, mockMailer, 0)

	sent, skipped, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Zero(t, sent)
	assert.Equal(t, 1, skipped)
	mockRepo.AssertNotCalled(t, "UpdateStatusFields",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockMailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestOutreachNoPendingIsNoop(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockBusinessRepo)
	mockRepo.On("ListByStatus", ctx, entity.StatusPending).Return(nil, nil)

	uc := NewOutreachUseCase(mockRepo, new(MockComposer), new(MockMailer), 0)

	sent, skipped, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Zero(t, sent)
	assert.Zero(t, skipped)
}
