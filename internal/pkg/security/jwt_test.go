package security

import (
	"Lumigram/internal/api/config"
	"strings"
	"testing"
)

func setupAuthConfig() {
	config.Cfg = &config.Config{
		Auth: config.AuthConfig{
			Secret: "test-secret",
			Issuer: "test-idp",
		},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	setupAuthConfig()

	token, err := GenerateToken("idp|alice", "Alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Subject != "idp|alice" {
		t.Errorf("subject = %q, want idp|alice", claims.Subject)
	}
	if claims.Nickname != "Alice" {
		t.Errorf("nickname = %q, want Alice", claims.Nickname)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	setupAuthConfig()
	token, err := GenerateToken("idp|alice", "Alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	config.Cfg.Auth.Secret = "other-secret"
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("token signed with different secret accepted")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	setupAuthConfig()
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}

func TestExtractSignature(t *testing.T) {
	setupAuthConfig()
	token, err := GenerateToken("idp|alice", "Alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	sig, err := ExtractSignature(token)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.HasSuffix(token, "."+sig) {
		t.Error("signature does not match token tail")
	}

	if _, err := ExtractSignature("malformed"); err == nil {
		t.Fatal("malformed token produced a signature")
	}
}
