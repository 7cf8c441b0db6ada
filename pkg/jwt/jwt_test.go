package jwt

import (
	"testing"
	"time"

	"clinic-appointment-service/config"

	"github.com/google/uuid"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestAccessTokenRoundtrip(t *testing.T) {
	svc := testService()
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "patient@clinic.test", 2)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected non-empty token id")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id mismatch: %s", claims.UserID)
	}
	if claims.RoleID != 2 {
		t.Fatalf("role id mismatch: %d", claims.RoleID)
	}
	if claims.TokenType != AccessToken {
		t.Fatalf("unexpected token type: %s", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Fatalf("token id mismatch: %s vs %s", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := testService()

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "doctor@clinic.test", 1)
	if err != nil {
		t.Fatalf("GenerateRefreshToken error: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Fatalf("unexpected token type: %s", claims.TokenType)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := testService().GenerateAccessToken(uuid.New(), "patient@clinic.test", 2)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "other-secret", AccessExpiry: time.Minute})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with wrong secret")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := testService().ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected validation to fail")
	}
}
