package middleware

import (
	"errors"
	"net/http"
	"strings"

	"renovation_estimator/internal/infrastructure/logger"
	"renovation_estimator/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextOwnerID is the gin context key holding the authenticated owner id.
const ContextOwnerID = "ownerID"

var (
	errUnauthorized  = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized)
	errMissingSecret = errors.New("jwt secret not configured")
)

// Auth validates HS256 bearer tokens and stores the subject claim as the owner id.
type Auth struct {
	secret []byte
	log    *logger.Logger
}

func NewAuth(secret string, log *logger.Logger) *Auth {
	return &Auth{secret: []byte(secret), log: log.With("middleware", "auth")}
}

func (a *Auth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		ownerID, err := a.subject(tokenString)
		if err != nil {
			a.log.Debug("token rejected", "error", err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(ContextOwnerID, ownerID)
		c.Next()
	}
}

func (a *Auth) subject(tokenString string) (string, error) {
	if len(a.secret) == 0 {
		return "", errMissingSecret
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return "", jwt.ErrTokenInvalidSubject
	}
	return sub, nil
}

// OwnerID returns the owner id set by RequireAuth, or "" when the request is anonymous.
func OwnerID(c *gin.Context) string {
	return c.GetString(ContextOwnerID)
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
