package password_test

import (
	"strings"
	"testing"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/security/password"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	phc, err := password.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.HasPrefix(phc, "$argon2id$") {
		t.Fatalf("want PHC argon2id string; got %q", phc)
	}

	ok, err := password.Verify("correct horse battery staple", phc)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok {
		t.Fatal("correct password must verify")
	}

	ok, err = password.Verify("wrong password", phc)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ok {
		t.Fatal("wrong password must not verify")
	}
}
