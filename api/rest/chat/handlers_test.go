package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/adonai-ai/server/adonai/conversations"
	"github.com/adonai-ai/server/adonai/profiles"
	"github.com/adonai-ai/server/internal/auth"
	"github.com/adonai-ai/server/internal/llm"
	"github.com/adonai-ai/server/internal/quota"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-testing"

// implements llm.Generator for testing
type mockGenerator struct {
	reply       string
	err         error
	calls       int
	lastHistory []llm.Message
	lastPrompt  string
}

func (m *mockGenerator) GenerateReply(_ context.Context, history []llm.Message, prompt string) (string, error) {
	m.calls++
	m.lastHistory = history
	m.lastPrompt = prompt

	if m.err != nil {
		return "", m.err
	}

	return m.reply, nil
}

// implements ConversationStore for testing; also records quota-free
// round-trips of turns per conversation
type mockStore struct {
	history     []llm.Message
	historyErr  error
	createErr   error
	createdWith string
	nextID      string
	messages    map[string][]llm.Message
	touched     []string
}

func newMockStore() *mockStore {
	return &mockStore{
		nextID:   "11111111-2222-3333-4444-555555555555",
		messages: map[string][]llm.Message{},
	}
}

func (m *mockStore) Create(_ context.Context, _, title string) (*conversations.Conversation, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}

	m.createdWith = title

	return &conversations.Conversation{ID: m.nextID, Title: title}, nil
}

func (m *mockStore) History(_ context.Context, _, _ string, _ int) ([]llm.Message, error) {
	if m.historyErr != nil {
		return nil, m.historyErr
	}

	return m.history, nil
}

func (m *mockStore) AppendMessage(_ context.Context, conversationID, role, content string) error {
	m.messages[conversationID] = append(m.messages[conversationID], llm.Message{Role: role, Content: content})
	return nil
}

func (m *mockStore) Touch(_ context.Context, conversationID string) error {
	m.touched = append(m.touched, conversationID)
	return nil
}

// implements quota.ProfileCounters for testing
type stubProfileCounters struct {
	counter profiles.Counter
	err     error
	sets    int
}

func (s *stubProfileCounters) Counter(_ context.Context, _ string) (profiles.Counter, error) {
	return s.counter, s.err
}

func (s *stubProfileCounters) SetCounter(_ context.Context, _ string, count int, date string) error {
	s.sets++
	s.counter.Count = count
	s.counter.Date = date

	return nil
}

// implements quota.AnonymousCounters for testing
type stubAnonymousCounters struct {
	count      int
	err        error
	increments int
}

func (s *stubAnonymousCounters) Count(_ context.Context, _, _ string) (int, error) {
	return s.count, s.err
}

func (s *stubAnonymousCounters) Increment(_ context.Context, _, _ string) error {
	s.increments++
	s.count++

	return nil
}

func newRouter(gen llm.Generator, store ConversationStore, svc *quota.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	api := router.Group("/api")
	RegisterRoutes(api, auth.NewVerifier(testSecret), gen, store, svc)

	return router
}

func signedToken(t *testing.T, userID string) string {
	t.Helper()

	claims := auth.Claims{
		Email: "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return token
}

func postChat(router *gin.Engine, body string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "203.0.113.7:50000"

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func TestChat_MissingPrompt(t *testing.T) {
	gen := &mockGenerator{reply: "reply"}
	router := newRouter(gen, nil, nil)

	for _, body := range []string{`{}`, `{"prompt":"   "}`, `not json`} {
		w := postChat(router, body, "")

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}

	assert.Zero(t, gen.calls)
}

func TestChat_AnonymousUnderLimit(t *testing.T) {
	gen := &mockGenerator{reply: "Do not be anxious about anything. (Philippians 4:6)"}
	anon := &stubAnonymousCounters{count: 3}
	svc := quota.NewService(&stubProfileCounters{}, anon, quota.DefaultPolicy())
	router := newRouter(gen, nil, svc)

	w := postChat(router, `{"prompt":"What does the Bible say about anxiety?"}`, "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)

	assert.Equal(t, gen.reply, resp.Message)
	assert.Empty(t, resp.ConversationID, "anonymous callers never get a conversation")
	assert.Equal(t, 6, resp.Remaining, "remaining is pre-increment remaining minus one")
	assert.Equal(t, 1, anon.increments, "usage recorded after the reply")
	assert.Empty(t, gen.lastHistory)
}

func TestChat_AnonymousAtLimit(t *testing.T) {
	gen := &mockGenerator{reply: "reply"}
	svc := quota.NewService(&stubProfileCounters{}, &stubAnonymousCounters{count: 10}, quota.DefaultPolicy())
	router := newRouter(gen, nil, svc)

	w := postChat(router, `{"prompt":"one more question"}`, "")

	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 10, body["limit"])
	assert.EqualValues(t, 10, body["used"])
	assert.NotEmpty(t, body["resetAt"])

	assert.Zero(t, gen.calls, "the completion API must not be invoked past the limit")
}

func TestChat_PremiumBypassesLimit(t *testing.T) {
	gen := &mockGenerator{reply: "reply"}
	counters := &stubProfileCounters{counter: profiles.Counter{Tier: "premium", Count: 9999, Date: quota.Today(time.Now()).String()}}
	svc := quota.NewService(counters, &stubAnonymousCounters{}, quota.DefaultPolicy())
	store := newMockStore()
	router := newRouter(gen, store, svc)

	w := postChat(router, `{"prompt":"hello"}`, signedToken(t, "user-premium"))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, quota.UnlimitedRemaining-1, resp.Remaining)
}

func TestChat_AuthenticatedNewConversation(t *testing.T) {
	gen := &mockGenerator{reply: "the assistant reply"}
	svc := quota.NewService(&stubProfileCounters{counter: profiles.Counter{Tier: "free"}}, &stubAnonymousCounters{}, quota.DefaultPolicy())
	store := newMockStore()
	router := newRouter(gen, store, svc)

	w := postChat(router, `{"prompt":"What does the Bible say about anxiety?"}`, signedToken(t, "user-1"))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)

	assert.Equal(t, store.nextID, resp.ConversationID)
	assert.Equal(t, "What does the Bible say about anxiety?", store.createdWith, "short prompt stored verbatim as title")

	saved := store.messages[store.nextID]
	require.Len(t, saved, 2)
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "What does the Bible say about anxiety?"}, saved[0])
	assert.Equal(t, llm.Message{Role: llm.RoleAssistant, Content: "the assistant reply"}, saved[1])
	assert.Contains(t, store.touched, store.nextID)
}

func TestChat_LongPromptTitleTruncated(t *testing.T) {
	gen := &mockGenerator{reply: "reply"}
	svc := quota.NewService(&stubProfileCounters{counter: profiles.Counter{Tier: "free"}}, &stubAnonymousCounters{}, quota.DefaultPolicy())
	store := newMockStore()
	router := newRouter(gen, store, svc)

	prompt := strings.Repeat("a", 80)
	w := postChat(router, fmt.Sprintf(`{"prompt":%q}`, prompt), signedToken(t, "user-1"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, strings.Repeat("a", 50)+"...", store.createdWith)
}

func TestChat_ExistingConversationHistoryPassedToGenerator(t *testing.T) {
	history := []llm.Message{
		{Role: llm.RoleUser, Content: "first question"},
		{Role: llm.RoleAssistant, Content: "first answer"},
	}

	gen := &mockGenerator{reply: "second answer"}
	svc := quota.NewService(&stubProfileCounters{counter: profiles.Counter{Tier: "free"}}, &stubAnonymousCounters{}, quota.DefaultPolicy())
	store := newMockStore()
	store.history = history
	router := newRouter(gen, store, svc)

	convID := "99999999-8888-7777-6666-555555555555"
	w := postChat(router, fmt.Sprintf(`{"prompt":"second question","conversationId":%q}`, convID), signedToken(t, "user-1"))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)

	assert.Equal(t, convID, resp.ConversationID)
	assert.Equal(t, history, gen.lastHistory)
	assert.Empty(t, store.createdWith, "no new conversation when the id resolves")
}

func TestChat_UnownedConversationGetsFreshOne(t *testing.T) {
	gen := &mockGenerator{reply: "reply"}
	svc := quota.NewService(&stubProfileCounters{counter: profiles.Counter{Tier: "free"}}, &stubAnonymousCounters{}, quota.DefaultPolicy())
	store := newMockStore()
	store.historyErr = conversations.ErrConversationNotFound
	router := newRouter(gen, store, svc)

	w := postChat(router, `{"prompt":"hello","conversationId":"99999999-8888-7777-6666-555555555555"}`, signedToken(t, "user-2"))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)

	assert.Empty(t, gen.lastHistory, "no history leaks from another account")
	assert.Equal(t, store.nextID, resp.ConversationID, "unowned id behaves like no id: a fresh conversation")
}

func TestChat_InvalidConversationID(t *testing.T) {
	gen := &mockGenerator{reply: "reply"}
	router := newRouter(gen, newMockStore(), nil)

	w := postChat(router, `{"prompt":"hello","conversationId":"not-a-uuid"}`, signedToken(t, "user-1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, gen.calls)
}

func TestChat_QuotaStoreUnreachableFailsOpen(t *testing.T) {
	gen := &mockGenerator{reply: "reply"}
	svc := quota.NewService(
		&stubProfileCounters{err: fmt.Errorf("connection refused")},
		&stubAnonymousCounters{err: fmt.Errorf("connection refused")},
		quota.DefaultPolicy(),
	)
	router := newRouter(gen, nil, svc)

	w := postChat(router, `{"prompt":"hello"}`, "")

	require.Equal(t, http.StatusOK, w.Code, "fail-open: the request proceeds")
	resp := decodeResponse(t, w)
	assert.Equal(t, quota.UnlimitedRemaining-1, resp.Remaining)
}

func TestChat_GeneratorFailure(t *testing.T) {
	gen := &mockGenerator{err: fmt.Errorf("API request failed with status 500: upstream exploded")}
	anon := &stubAnonymousCounters{}
	svc := quota.NewService(&stubProfileCounters{}, anon, quota.DefaultPolicy())
	router := newRouter(gen, nil, svc)

	w := postChat(router, `{"prompt":"hello"}`, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Zero(t, anon.increments, "no usage recorded for a failed completion")
}

func TestChat_QuotaDisabledMode(t *testing.T) {
	gen := &mockGenerator{reply: "reply"}
	router := newRouter(gen, nil, nil)

	w := postChat(router, `{"prompt":"hello"}`, "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, quota.UnlimitedRemaining-1, resp.Remaining)
}
