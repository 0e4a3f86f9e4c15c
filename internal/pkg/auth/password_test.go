package auth

import (
	"testing"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plain password")
	}

	if !CheckPassword(hash, "s3cret-pass") {
		t.Fatal("correct password should verify")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Fatal("wrong password should not verify")
	}
}
