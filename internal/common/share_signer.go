package common

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pilotbid/bidboard/internal/constants"
)

// ShareToken is the decoded form of a schedule share link.
type ShareToken struct {
	ScheduleID string
	TokenID    string
	ExpiresAt  time.Time
}

// ShareSignerService mints and validates the signed tokens behind
// read-only schedule share links. Tokens are single-use: redemption is
// tracked in the cache under the token's jti.
type ShareSignerService struct {
	secretKey []byte
	cache     CacheInterface
}

// NewShareSignerService creates a new share signer service
func NewShareSignerService(secretKey []byte, cache CacheInterface) *ShareSignerService {
	return &ShareSignerService{
		secretKey: secretKey,
		cache:     cache,
	}
}

// GenerateShareToken signs a token granting read access to one
// generated schedule for the given TTL.
func (s *ShareSignerService) GenerateShareToken(scheduleID string, ttl time.Duration) (string, time.Time, error) {
	tokenID := uuid.New().String()
	expiresAt := time.Now().Add(ttl)

	claims := jwt.MapClaims{
		"schedule_id": scheduleID,
		"jti":         tokenID,
		"exp":         expiresAt.Unix(),
		"iat":         time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateToken parses a share token, checks expiry and prior use.
func (s *ShareSignerService) ValidateToken(tokenString string) (*ShareToken, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	scheduleID, ok := (*claims)["schedule_id"].(string)
	if !ok {
		return nil, errors.New("missing or invalid schedule_id claim")
	}

	tokenID, ok := (*claims)["jti"].(string)
	if !ok {
		return nil, errors.New("missing or invalid jti claim")
	}

	expFloat, ok := (*claims)["exp"].(float64)
	if !ok {
		return nil, errors.New("missing or invalid exp claim")
	}
	expiresAt := time.Unix(int64(expFloat), 0)

	if time.Now().After(expiresAt) {
		return nil, errors.New("token expired")
	}

	if s.IsTokenUsed(tokenID) {
		return nil, errors.New("token already used")
	}

	return &ShareToken{
		ScheduleID: scheduleID,
		TokenID:    tokenID,
		ExpiresAt:  expiresAt,
	}, nil
}

// MarkTokenAsUsed records a redemption so the link cannot be replayed.
func (s *ShareSignerService) MarkTokenAsUsed(tokenID string, until time.Time) {
	ttl := time.Until(until)
	if ttl <= 0 {
		return
	}
	s.cache.Set(string(constants.CachePrefixShareToken)+tokenID, "1", ttl)
}

// IsTokenUsed checks if a token has already been redeemed.
func (s *ShareSignerService) IsTokenUsed(tokenID string) bool {
	val, found := s.cache.Get(string(constants.CachePrefixShareToken) + tokenID)
	if !found {
		return false
	}
	used, ok := val.(string)
	return ok && used == "1"
}
