package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/thanhmai/journal/internal/entities"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the decoded content of an access token.
type Claims struct {
	Username  string
	Role      entities.UserRole
	ExpiresAt time.Time
}

// Token format: "user:<name>|role:<role>|exp:<unix>|sig:<hex hmac-sha256>".
//
// The readable "user:…|role:…" prefix is a compatibility contract: clients
// gate admin features on the literal substring "role:admin", so the role
// claim must appear verbatim in the token string. The exp and sig fields
// are the upgrade over the historic unsigned format — the signature covers
// everything before it, making the token non-forgeable and expiring.

// SignToken builds a signed token for a user.
func SignToken(username string, role entities.UserRole, ttl time.Duration, secret []byte) string {
	expiresAt := time.Now().Add(ttl).Unix()
	payload := fmt.Sprintf("user:%s|role:%s|exp:%d", username, role, expiresAt)
	return payload + "|sig:" + sign(payload, secret)
}

// VerifyToken validates a token's signature and expiry and returns its
// claims.
func VerifyToken(token string, secret []byte) (*Claims, error) {
	payload, sig, ok := strings.Cut(token, "|sig:")
	if !ok {
		return nil, ErrInvalidToken
	}
	if !hmac.Equal([]byte(sign(payload, secret)), []byte(sig)) {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	for _, field := range strings.Split(payload, "|") {
		key, value, ok := strings.Cut(field, ":")
		if !ok {
			return nil, ErrInvalidToken
		}
		switch key {
		case "user":
			claims.Username = value
		case "role":
			claims.Role = entities.UserRole(value)
		case "exp":
			unix, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, ErrInvalidToken
			}
			claims.ExpiresAt = time.Unix(unix, 0)
		default:
			return nil, ErrInvalidToken
		}
	}
	if claims.Username == "" || claims.Role == "" || claims.ExpiresAt.IsZero() {
		return nil, ErrInvalidToken
	}
	if time.Now().After(claims.ExpiresAt) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}

func sign(payload string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
