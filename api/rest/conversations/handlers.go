package conversations

import (
	"errors"
	"net/http"
	"strings"

	"github.com/adonai-ai/server/adonai/conversations"
	"github.com/adonai-ai/server/internal/auth"
	restErrors "github.com/adonai-ai/server/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// validates the :id path parameter; malformed ids read as not found so the
// response is indistinguishable from a missing conversation
func conversationID(c *gin.Context) (string, bool) {
	id := c.Param("id")

	if uuid.Validate(id) != nil {
		restErrors.NotFound(c, "conversation")
		return "", false
	}

	return id, true
}

// lists the authenticated user's conversations, most recently updated first
func ListHandler(convRepo *conversations.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			restErrors.Unauthorized(c, "")
			return
		}

		list, err := convRepo.List(c.Request.Context(), userID)
		if err != nil {
			restErrors.InternalError(c, "failed to fetch conversations", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"conversations": list})
	}
}

// returns one conversation with its messages
func GetHandler(convRepo *conversations.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			restErrors.Unauthorized(c, "")
			return
		}

		id, ok := conversationID(c)
		if !ok {
			return
		}

		conv, err := convRepo.GetWithMessages(c.Request.Context(), id, userID)
		if err != nil {
			if errors.Is(err, conversations.ErrConversationNotFound) {
				restErrors.NotFound(c, "conversation")
				return
			}

			restErrors.InternalError(c, "failed to fetch conversation", err)
			return
		}

		c.JSON(http.StatusOK, conv)
	}
}

// renames a conversation
func UpdateHandler(convRepo *conversations.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			restErrors.Unauthorized(c, "")
			return
		}

		id, ok := conversationID(c)
		if !ok {
			return
		}

		var req UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			restErrors.BadRequest(c, "title is required", err)
			return
		}

		title := strings.TrimSpace(req.Title)
		if title == "" {
			restErrors.BadRequest(c, "title is required", nil)
			return
		}

		if err := convRepo.UpdateTitle(c.Request.Context(), id, userID, title); err != nil {
			if errors.Is(err, conversations.ErrConversationNotFound) {
				restErrors.NotFound(c, "conversation")
				return
			}

			restErrors.InternalError(c, "failed to update conversation", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "conversation updated"})
	}
}

// deletes a conversation and its messages
func DeleteHandler(convRepo *conversations.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			restErrors.Unauthorized(c, "")
			return
		}

		id, ok := conversationID(c)
		if !ok {
			return
		}

		if err := convRepo.Delete(c.Request.Context(), id, userID); err != nil {
			if errors.Is(err, conversations.ErrConversationNotFound) {
				restErrors.NotFound(c, "conversation")
				return
			}

			restErrors.InternalError(c, "failed to delete conversation", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "conversation deleted"})
	}
}
