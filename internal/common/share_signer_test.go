package common

import (
	"testing"
	"time"
)

func newTestSigner() *ShareSignerService {
	return NewShareSignerService([]byte("test-secret"), NewCacheService(60, 120))
}

func TestShareSignerRoundTrip(t *testing.T) {
	signer := newTestSigner()

	token, expiresAt, err := signer.GenerateShareToken("plan-a-max-earnings", time.Hour)
	if err != nil {
		t.Fatalf("GenerateShareToken failed: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatal("expected a future expiry")
	}

	parsed, err := signer.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if parsed.ScheduleID != "plan-a-max-earnings" {
		t.Errorf("unexpected schedule id %q", parsed.ScheduleID)
	}
	if parsed.TokenID == "" {
		t.Error("expected a jti")
	}
}

func TestShareSignerSingleUse(t *testing.T) {
	signer := newTestSigner()

	token, _, err := signer.GenerateShareToken("plan-c-weekends-free", time.Hour)
	if err != nil {
		t.Fatalf("GenerateShareToken failed: %v", err)
	}

	parsed, err := signer.ValidateToken(token)
	if err != nil {
		t.Fatalf("first validation failed: %v", err)
	}

	signer.MarkTokenAsUsed(parsed.TokenID, parsed.ExpiresAt)

	if _, err := signer.ValidateToken(token); err == nil {
		t.Error("expected second validation to fail after redemption")
	}
}

func TestShareSignerRejectsForeignSignature(t *testing.T) {
	signer := newTestSigner()
	other := NewShareSignerService([]byte("different-secret"), NewCacheService(60, 120))

	token, _, err := other.GenerateShareToken("plan-b-lifestyle-and-comfort", time.Hour)
	if err != nil {
		t.Fatalf("GenerateShareToken failed: %v", err)
	}

	if _, err := signer.ValidateToken(token); err == nil {
		t.Error("expected validation to fail for a token signed with another key")
	}
}

func TestShareSignerRejectsExpiredToken(t *testing.T) {
	signer := newTestSigner()

	token, _, err := signer.GenerateShareToken("plan-a-max-earnings", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateShareToken failed: %v", err)
	}

	if _, err := signer.ValidateToken(token); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}
