package accountd

import (
	"errors"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"foodnetwork/pkg/logger"
	"foodnetwork/pkg/models"
)

const emailKey = "email"

// BasicAuthMiddleware authenticates email/password basic auth and stores the email in the context
func BasicAuthMiddleware(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="foodnet"`)
			c.AbortWithStatusJSON(401, models.NewErrorResponse("missing basic auth credentials"))
			return
		}

		user, err := store.Authenticate(email, password)
		if err != nil {
			if !errors.Is(err, models.ErrInvalidCredentials) {
				logger.Errorf("authentication error: %v", err)
			}
			c.AbortWithStatusJSON(401, models.NewErrorResponse(models.ErrInvalidCredentials.Error()))
			return
		}

		c.Set(emailKey, user.Email)
		c.Set("user", user)
		c.Next()
	}
}

// GetEmail extracts the authenticated email from gin context
func GetEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(emailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}

// GetUser retrieves the authenticated user from the context
func GetUser(c *gin.Context) (models.User, bool) {
	v, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}

// ipLimiter hands out one token bucket per client IP
type ipLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newIPLimiter(perSecond float64, burst int) *ipLimiter {
	return &ipLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = lim
	}
	return lim
}

// RateLimitMiddleware rejects clients exceeding perSecond requests with 429
func RateLimitMiddleware(perSecond float64, burst int) gin.HandlerFunc {
	limiter := newIPLimiter(perSecond, burst)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.get(ip).Allow() {
			logger.Warnf("rate limit exceeded for %s", ip)
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(429, models.NewErrorResponse("too many requests"))
			return
		}
		c.Next()
	}
}

// RequestLogger logs every request through the structured logger
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(map[string]interface{}{
			"protocol": "http",
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"latency":  time.Since(start).Milliseconds(),
			"client":   c.ClientIP(),
		}).Info("request handled")
	}
}
