package accountd

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"foodnetwork/pkg/logger"
	"foodnetwork/pkg/models"
)

// signUp handles form-encoded account registration
func (s *Server) signUp(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := s.store.CreateAccount(email, password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	logger.Infof("account created for %s", user.Email)
	c.JSON(201, gin.H{"user": userJSON(user)})
}

// login returns the authenticated account with its key history
func (s *Server) login(c *gin.Context) {
	user, ok := GetUser(c)
	if !ok {
		c.JSON(401, models.NewErrorResponse("unauthorized"))
		return
	}
	c.JSON(200, gin.H{"user": userJSON(user)})
}

// createKey mints the first key for the authenticated account
func (s *Server) createKey(c *gin.Context) {
	email, _ := GetEmail(c)

	token, err := s.store.CreateKey(email)
	if err != nil {
		s.writeError(c, err)
		return
	}

	logger.Infof("api key created for %s", email)
	c.JSON(201, gin.H{"token": token})
}

// rotateKey deletes the key in the path and returns its replacement
func (s *Server) rotateKey(c *gin.Context) {
	email, _ := GetEmail(c)
	keyID := c.Param("id")

	token, err := s.store.RotateKey(email, keyID)
	if err != nil {
		s.writeError(c, err)
		return
	}

	logger.Infof("api key %s rotated for %s", keyID, email)
	c.JSON(200, gin.H{"token": token})
}

// verifyKey reports whether the bearer token is an active key
func (s *Server) verifyKey(c *gin.Context) {
	token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found || token == "" {
		c.JSON(401, models.NewErrorResponse("missing bearer token"))
		return
	}
	if !s.store.Verify(token) {
		c.JSON(401, models.NewErrorResponse("invalid api key"))
		return
	}
	c.JSON(200, gin.H{"valid": true})
}

func (s *Server) writeError(c *gin.Context, err error) {
	status := 500
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		status = 422
	case errors.Is(err, models.ErrEmailTaken):
		status = 409
	case errors.Is(err, models.ErrActiveKeyExists):
		status = 409
	case errors.Is(err, models.ErrInvalidCredentials):
		status = 401
	case errors.Is(err, models.ErrKeyNotFound):
		status = 404
	case errors.Is(err, models.ErrKeyAlreadyDeleted):
		status = 410
	}

	if status == 500 {
		logger.Errorf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(status, models.NewErrorResponse("internal server error"))
		return
	}
	c.JSON(status, models.NewErrorResponse(err.Error()))
}

// userJSON renders a user in the service's camelCase wire format
func userJSON(u models.User) gin.H {
	keys := make([]gin.H, 0, len(u.APIKeys))
	for _, k := range u.APIKeys {
		key := gin.H{
			"id":        k.ID,
			"createdAt": k.CreatedAt.Format(time.RFC3339Nano),
			"deletedAt": nil,
		}
		if k.DeletedAt != nil {
			key["deletedAt"] = k.DeletedAt.Format(time.RFC3339Nano)
		}
		keys = append(keys, key)
	}
	return gin.H{
		"email":     u.Email,
		"createdAt": u.CreatedAt.Format(time.RFC3339Nano),
		"apiKeys":   keys,
	}
}
