package app

import (
	"time"

	"github.com/notin-app/notin-service/pkg/code"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// UserEntity is the JWT claim payload carried by authenticated requests.
type UserEntity struct {
	UID      int64  `json:"uid"`
	Username string `json:"username"`
	IP       string `json:"ip"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies user auth tokens.
type TokenManager interface {
	GenerateToken(uid int64, username string, ip string) (string, error)
	ParseToken(token string) (*UserEntity, error)
}

type jwtTokenManager struct {
	secret []byte
	issuer string
	expire time.Duration
}

// NewTokenManager creates a JWT token manager. A zero expire means
// tokens never expire.
func NewTokenManager(secret string, issuer string, expire time.Duration) TokenManager {
	return &jwtTokenManager{
		secret: []byte(secret),
		issuer: issuer,
		expire: expire,
	}
}

func (m *jwtTokenManager) GenerateToken(uid int64, username string, ip string) (string, error) {
	claims := UserEntity{
		UID:      uid,
		Username: username,
		IP:       ip,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   m.issuer,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if m.expire != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(m.expire))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *jwtTokenManager) ParseToken(tokenStr string) (*UserEntity, error) {
	return ParseTokenWithKey(tokenStr, m.secret)
}

// ParseTokenWithKey parses and verifies a token with the given key.
func ParseTokenWithKey(tokenStr string, key []byte) (*UserEntity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &UserEntity{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, code.ErrorInvalidUserAuthToken
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*UserEntity)
	if !ok || !token.Valid {
		return nil, code.ErrorInvalidUserAuthToken
	}
	return claims, nil
}

// GetUID reads the authenticated user id set by the auth middleware.
func GetUID(c *gin.Context) int64 {
	if uid, exist := c.Get("uid"); exist {
		if v, ok := uid.(int64); ok {
			return v
		}
	}
	return 0
}
