package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	actorKey = "estimaciones_obra.actor"

	HeaderUserID   = "X-User-ID"
	HeaderUserName = "X-User-Name"
	HeaderUserRole = "X-User-Role"
)

var (
	errMissingCredentials = errors.New("missing credentials")
	errInvalidRole        = errors.New("invalid role")

	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid credentials", http.StatusUnauthorized)
)

// IdentityClaims is the token body issued by the identity provider.
type IdentityClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Identity resolves the calling Actor. With a secret it requires an HS256 Bearer token whose
// sub, name and role claims describe the user. Without a secret the X-User-* headers set by a
// trusted gateway are used.
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			actor entities.Actor
			err   error
		)
		if secret != "" {
			actor, err = actorFromToken(c.GetHeader("Authorization"), []byte(secret))
		} else {
			actor, err = actorFromHeaders(c)
		}
		if err != nil {
			log.Printf("[identity][middleware] rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorFrom returns the actor stored by Identity.
func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

// WithActor stores actor on the context. Handler tests use it in place of Identity.
func WithActor(actor entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorKey, actor)
		c.Next()
	}
}

// SignToken issues an HS256 token for actor. It backs local tooling and tests.
func SignToken(secret []byte, actor entities.Actor, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, IdentityClaims{
		Name: actor.UserName,
		Role: string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(secret)
}

func actorFromToken(header string, secret []byte) (entities.Actor, error) {
	raw, ok := strings.CutPrefix(strings.TrimSpace(header), "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return entities.Actor{}, errMissingCredentials
	}

	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(raw), &IdentityClaims{}, func(token *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithLeeway(30*time.Second))
	if err != nil {
		return entities.Actor{}, err
	}
	claims, ok := parsed.Claims.(*IdentityClaims)
	if !ok || !parsed.Valid {
		return entities.Actor{}, errors.New("invalid token claims")
	}
	return buildActor(claims.Subject, claims.Name, claims.Role)
}

func actorFromHeaders(c *gin.Context) (entities.Actor, error) {
	return buildActor(c.GetHeader(HeaderUserID), c.GetHeader(HeaderUserName), c.GetHeader(HeaderUserRole))
}

func buildActor(userID, userName, role string) (entities.Actor, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Actor{}, errMissingCredentials
	}
	r := entities.Role(strings.ToLower(strings.TrimSpace(role)))
	if !r.Valid() {
		return entities.Actor{}, fmt.Errorf("%w: %q", errInvalidRole, role)
	}
	name := strings.TrimSpace(userName)
	if name == "" {
		name = userID
	}
	return entities.Actor{UserID: userID, UserName: name, Role: r}, nil
}
