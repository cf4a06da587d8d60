package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaot623/supportbot/internal/domain"
)

func postChat(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Chat(c))
	return rec
}

func TestChatFAQAnswer(t *testing.T) {
	h, db := newTestHandler(t)

	rec := postChat(t, h, `{"session_id":"s1","message":"Can I get a refund?"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Refunds are accepted within 30 days of purchase.", resp["reply"])
	assert.Equal(t, false, resp["escalate"])
	v, ok := resp["suggestions"]
	assert.True(t, ok)
	assert.Nil(t, v)

	messages, err := db.History(context.Background(), "s1", 0)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, domain.RoleAgent, messages[1].Role)
}

func TestChatPlaceholderNotEscalated(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postChat(t, h, `{"session_id":"s2","message":"track my parcel","user_id":"u1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, `I received: "track my parcel". If this is about orders, say 'order' to get more help.`, resp.Reply)
	assert.False(t, resp.Escalate)
}

func TestChatMissingSessionID(t *testing.T) {
	h, db := newTestHandler(t)

	rec := postChat(t, h, `{"message":"hello"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"session_id required"}`, rec.Body.String())

	sessions, err := db.ListSessions(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestChatMalformedBody(t *testing.T) {
	h, db := newTestHandler(t)

	rec := postChat(t, h, `{"session_id":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid request body"}`, rec.Body.String())

	sessions, err := db.ListSessions(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
