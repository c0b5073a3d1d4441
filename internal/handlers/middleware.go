package handlers

import (
	"net/http"

	"github.com/aayushivora31/techblog/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		user := session.Get("user_id")
		if user == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *Handler) RateLimitMiddleware(limiter *services.IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		l := limiter.GetLimiter(ip)
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}
		c.Next()
	}
}

// currentUserID reads the session user. Handlers behind AuthRequired can
// rely on it being present; the bool guards direct-handler tests.
func currentUserID(c *gin.Context) (uint, bool) {
	session := sessions.Default(c)
	val := session.Get("user_id")
	if val == nil {
		return 0, false
	}
	uid, ok := val.(uint)
	return uid, ok
}
