package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/xiaot623/supportbot/internal/adapter/llm"
	"github.com/xiaot623/supportbot/internal/domain"
	"github.com/xiaot623/supportbot/internal/escalation"
	"github.com/xiaot623/supportbot/internal/faq"
	"github.com/xiaot623/supportbot/internal/repository"
	"github.com/xiaot623/supportbot/internal/service"
	"github.com/xiaot623/supportbot/tests/helpers"
)

var testFAQs = []domain.FAQItem{
	{
		ID:       "refund",
		Question: "What is the refund policy?",
		Answer:   "Refunds are accepted within 30 days of purchase.",
		Tags:     []string{"refund"},
	},
	{
		ID:       "hours",
		Question: "When",
		Answer:   "We are open 9 to 5.",
	},
}

func newTestHandler(t *testing.T) (*Handler, repository.Store) {
	db := helpers.NewTestSQLiteStore(t)
	classifier, err := escalation.NewClassifier(context.Background(), escalation.DefaultPolicy, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClassifier failed: %v", err)
	}
	svc := service.New(db, faq.NewCatalog(testFAQs), llm.NewPlaceholderGenerator(), classifier, zerolog.Nop())
	return NewHandler(svc), db
}

func TestHealth(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "healthy" || resp["version"] != Version {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
