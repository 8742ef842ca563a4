package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nurpe/dispatch-admin/internal/auth"
	"github.com/nurpe/dispatch-admin/internal/model"
)

const secret = "unit-test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestParseValidToken(t *testing.T) {
	raw := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
		"user_id":      int64(7),
		"username":     "anna",
		"is_superuser": true,
		"exp":          time.Now().Add(time.Hour).Unix(),
	})

	principal, err := auth.NewParser(secret).Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := model.Principal{UserID: 7, Username: "anna", IsSuperuser: true}
	if principal != want {
		t.Errorf("principal = %+v, want %+v", principal, want)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	raw := sign(t, jwt.SigningMethodHS256, []byte("other-secret"), jwt.MapClaims{
		"username": "anna",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	if _, err := auth.NewParser(secret).Parse(raw); err == nil {
		t.Error("token signed with wrong secret accepted")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	raw := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
		"username": "anna",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	if _, err := auth.NewParser(secret).Parse(raw); err == nil {
		t.Error("expired token accepted")
	}
}

func TestParseRejectsEmptyUsername(t *testing.T) {
	raw := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
		"user_id": int64(7),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	if _, err := auth.NewParser(secret).Parse(raw); err == nil {
		t.Error("token without username accepted")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := auth.NewParser(secret).Parse("not.a.token"); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestRolePolicy(t *testing.T) {
	policy := auth.RolePolicy{}
	super := model.Principal{Username: "root", IsSuperuser: true}
	regular := model.Principal{Username: "anna"}
	anonymous := model.Principal{}

	if !policy.Allow(super, "total", auth.ActionDelete) {
		t.Error("superuser delete denied")
	}
	if !policy.Allow(regular, "total", auth.ActionRead) || !policy.Allow(regular, "total", auth.ActionWrite) {
		t.Error("regular user read/write denied")
	}
	if policy.Allow(regular, "total", auth.ActionDelete) {
		t.Error("regular user delete allowed")
	}
	if policy.Allow(anonymous, "total", auth.ActionRead) {
		t.Error("empty principal allowed; policy must fail closed")
	}
}
