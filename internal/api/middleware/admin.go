package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/osa911/portfolio/internal/api/constants"
	"github.com/osa911/portfolio/internal/api/dto/common"
	"github.com/osa911/portfolio/internal/logging"

	"github.com/gin-gonic/gin"
)

// TokenVerifier verifies an identity token and returns the caller's UID
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}

// AdminConfig selects how write endpoints are guarded
type AdminConfig struct {
	// Verifier checks Bearer ID tokens; nil disables token auth
	Verifier TokenVerifier
	// AdminUIDs restricts verified callers; empty admits any verified caller
	AdminUIDs []string
	// StaticToken is a shared secret accepted in X-Admin-Token or as a Bearer token
	StaticToken string
}

// Enabled reports whether any admin credential source is configured
func (c AdminConfig) Enabled() bool {
	return c.Verifier != nil || c.StaticToken != ""
}

// RequireAdmin guards write endpoints.
// With no credential source configured it lets every request through.
func RequireAdmin(config AdminConfig) gin.HandlerFunc {
	logger := logging.GetGlobalLogger()

	if !config.Enabled() {
		logger.Warn("No admin credentials configured; project writes are unauthenticated")
		return func(c *gin.Context) { c.Next() }
	}

	admins := make(map[string]struct{}, len(config.AdminUIDs))
	for _, uid := range config.AdminUIDs {
		if uid = strings.TrimSpace(uid); uid != "" {
			admins[uid] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		bearer := bearerToken(c.GetHeader("Authorization"))

		if config.StaticToken != "" {
			for _, candidate := range []string{c.GetHeader(constants.HeaderAdminKey), bearer} {
				if candidate != "" && subtle.ConstantTimeCompare([]byte(candidate), []byte(config.StaticToken)) == 1 {
					c.Set(constants.ContextKeyAdminUID, "static-token")
					c.Next()
					return
				}
			}
		}

		if config.Verifier == nil || bearer == "" {
			logger.Warn("Admin access attempted without credentials from %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewMessageResponse(common.MessageUnauthorized))
			return
		}

		uid, err := config.Verifier.VerifyIDToken(c.Request.Context(), bearer)
		if err != nil {
			logger.Warn("Admin token rejected: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewMessageResponse(common.MessageUnauthorized))
			return
		}

		if len(admins) > 0 {
			if _, ok := admins[uid]; !ok {
				logger.Warn("Non-admin user attempted to access admin resource: uid=%s", uid)
				c.AbortWithStatusJSON(http.StatusForbidden, common.NewMessageResponse(common.MessageForbidden))
				return
			}
		}

		logger.Debug("Admin access granted for uid: %s", uid)
		c.Set(constants.ContextKeyAdminUID, uid)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
