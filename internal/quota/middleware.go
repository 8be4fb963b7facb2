package quota

import (
	"time"

	"github.com/adonai-ai/server/internal/auth"
	"github.com/adonai-ai/server/internal/errors"
	"github.com/gin-gonic/gin"
)

const (
	statusKey = "quota_status"
	periodKey = "quota_period"
)

// checks the caller's daily quota before the handler runs. The period and
// the resulting status are stored in the request context for the handler.
// A nil service means quota accounting is disabled (Supabase unconfigured):
// every caller passes with the unlimited sentinel.
func Middleware(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		period := Today(time.Now())
		c.Set(periodKey, period)

		if svc == nil {
			c.Set(statusKey, Status{Remaining: UnlimitedRemaining, Unlimited: true})
			c.Next()
			return
		}

		identity := auth.IdentityFrom(c)
		ip := ClientIP(c.Request)

		status := svc.Check(c.Request.Context(), identity, ip, period)
		c.Set(statusKey, status)

		if status.Limited {
			errors.QuotaExceeded(c, status.Limit, status.Used)
			c.Abort()
			return
		}

		c.Next()
	}
}

// extracts the quota status stored by Middleware
func StatusFrom(c *gin.Context) (Status, bool) {
	if v, exists := c.Get(statusKey); exists {
		if status, ok := v.(Status); ok {
			return status, true
		}
	}

	return Status{}, false
}

// extracts the quota period stored by Middleware
func PeriodFrom(c *gin.Context) Period {
	if v, exists := c.Get(periodKey); exists {
		if period, ok := v.(Period); ok {
			return period
		}
	}

	return Today(time.Now())
}
