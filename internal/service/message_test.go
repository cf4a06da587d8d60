package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaot623/supportbot/internal/adapter/llm"
	"github.com/xiaot623/supportbot/internal/domain"
)

func TestSessionHistoryUnknown(t *testing.T) {
	svc, _ := newTestService(t, nil, llm.NewPlaceholderGenerator())

	history, err := svc.SessionHistory(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Equal(t, "never-seen", history.SessionID)
	assert.NotNil(t, history.Messages)
	assert.Empty(t, history.Messages)
}

func TestSessionHistoryAfterChat(t *testing.T) {
	svc, _ := newTestService(t, nil, llm.NewPlaceholderGenerator())
	ctx := context.Background()

	_, err := svc.Chat(ctx, domain.ChatRequest{SessionID: "s1", Message: "track my order"})
	require.NoError(t, err)

	first, err := svc.SessionHistory(ctx, "s1")
	require.NoError(t, err)
	second, err := svc.SessionHistory(ctx, "s1")
	require.NoError(t, err)

	require.Len(t, first.Messages, 2)
	assert.Equal(t, first, second)
}

func TestListSessions(t *testing.T) {
	svc, _ := newTestService(t, nil, llm.NewPlaceholderGenerator())
	ctx := context.Background()

	for _, sid := range []string{"a", "b", "a"} {
		_, err := svc.Chat(ctx, domain.ChatRequest{SessionID: sid, Message: "track my order"})
		require.NoError(t, err)
	}

	list, err := svc.ListSessions(ctx, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, list.Sessions)
}

func TestFAQs(t *testing.T) {
	svc, _ := newTestService(t, []domain.FAQItem{passwordFAQ}, llm.NewPlaceholderGenerator())

	items := svc.FAQs()
	require.Len(t, items, 1)
	assert.Equal(t, "pw", items[0].ID)
	assert.Equal(t, []string{"password"}, items[0].Tags)
}
