package chat

import (
	"errors"
	"net/http"
	"strings"

	"github.com/adonai-ai/server/adonai/conversations"
	"github.com/adonai-ai/server/internal/auth"
	restErrors "github.com/adonai-ai/server/internal/errors"
	"github.com/adonai-ai/server/internal/llm"
	"github.com/adonai-ai/server/internal/logger"
	"github.com/adonai-ai/server/internal/quota"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler processes a chat prompt: assembles prior turns, forwards the
// prompt to the completion API, persists the exchange for authenticated
// callers and records quota consumption. Persistence failures are logged
// and skipped; the caller still gets a reply.
func Handler(generator llm.Generator, store ConversationStore, quotaSvc *quota.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			restErrors.BadRequest(c, "missing prompt", err)
			return
		}

		prompt := strings.TrimSpace(req.Prompt)
		if prompt == "" {
			restErrors.BadRequest(c, "missing prompt", nil)
			return
		}

		if req.ConversationID != "" && uuid.Validate(req.ConversationID) != nil {
			restErrors.BadRequest(c, "invalid conversation id", nil)
			return
		}

		identity := auth.IdentityFrom(c)
		persist := store != nil && identity.Authenticated()

		history := []llm.Message{}
		conversationID := ""

		if persist {
			history, conversationID = prepareConversation(c, store, identity.UserID, req.ConversationID, prompt)

			if conversationID != "" {
				if err := store.AppendMessage(c.Request.Context(), conversationID, llm.RoleUser, prompt); err != nil {
					logger.ErrorErr(err, "failed to save user message", "conversation_id", conversationID)
				}
			}
		}

		reply, err := generator.GenerateReply(c.Request.Context(), history, prompt)
		if err != nil {
			restErrors.InternalError(c, "failed to generate response", err)
			return
		}

		if persist && conversationID != "" {
			if err := store.AppendMessage(c.Request.Context(), conversationID, llm.RoleAssistant, reply); err != nil {
				logger.ErrorErr(err, "failed to save assistant message", "conversation_id", conversationID)
			}

			if err := store.Touch(c.Request.Context(), conversationID); err != nil {
				logger.ErrorErr(err, "failed to touch conversation", "conversation_id", conversationID)
			}
		}

		// usage is recorded only after the reply was produced; failures are
		// logged and never surfaced to the caller
		if quotaSvc != nil {
			period := quota.PeriodFrom(c)
			ip := quota.ClientIP(c.Request)

			if err := quotaSvc.Record(c.Request.Context(), identity, ip, period); err != nil {
				logger.ErrorErr(err, "failed to record usage")
			}
		}

		resp := Response{Message: reply}

		if persist && conversationID != "" {
			resp.ConversationID = conversationID
		}

		// remaining reflects the pre-increment check minus the question just
		// answered; concurrent requests from the same caller may observe an
		// off-by-one, which is accepted
		if status, ok := quota.StatusFrom(c); ok {
			resp.Remaining = status.Remaining - 1
		}

		c.JSON(http.StatusOK, resp)
	}
}

// loads history for an existing conversation or creates a new one titled
// from the prompt. A conversation id that does not exist or is owned by
// another account is treated like no id at all: a fresh conversation with
// empty history, never another caller's data. Store errors disable
// persistence for this request.
func prepareConversation(c *gin.Context, store ConversationStore, userID, conversationID, prompt string) ([]llm.Message, string) {
	if conversationID != "" {
		history, err := store.History(c.Request.Context(), conversationID, userID, conversations.HistoryLimit)

		if err == nil {
			return history, conversationID
		}

		if !errors.Is(err, conversations.ErrConversationNotFound) {
			logger.ErrorErr(err, "failed to load history", "conversation_id", conversationID)
			return []llm.Message{}, ""
		}
	}

	conv, err := store.Create(c.Request.Context(), userID, conversations.TitleFromPrompt(prompt))
	if err != nil {
		logger.ErrorErr(err, "failed to create conversation", "user_id", userID)
		return []llm.Message{}, ""
	}

	return []llm.Message{}, conv.ID
}
