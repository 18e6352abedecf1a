package jwt

import (
	"testing"
	"time"
)

func testManager() *Manager {
	return NewManager(Config{
		Secret:   "test-secret",
		Issuer:   "voltride",
		Audience: "voltride-admin",
		TTL:      time.Hour,
	})
}

func TestGenerateAndVerify(t *testing.T) {
	m := testManager()

	token, jti, err := m.Generate(42, "admin")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(jti) != 26 {
		t.Fatalf("expected 26-char ULID JTI, got %q", jti)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.AdminID != 42 || claims.Role != "admin" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.ID != jti {
		t.Fatalf("jti mismatch: %q vs %q", claims.ID, jti)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, _, err := testManager().Generate(1, "admin")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	other := NewManager(Config{Secret: "different", Issuer: "voltride", Audience: "voltride-admin", TTL: time.Hour})
	if _, err := other.Verify(token); err == nil {
		t.Fatal("token signed with another secret accepted")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := testManager().Verify("not.a.token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}
