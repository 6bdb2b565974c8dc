package service

import (
	"testing"

	"lnticket/api/internal/infra/cache"
)

func TestLocker(t *testing.T) {
	s := NewLockerService(cache.InitStorage())

	if s.IsLocked("a") {
		t.Fatal("fresh key should not be locked")
	}

	s.Lock("a")

	if !s.IsLocked("a") {
		t.Fatal("key should be locked")
	}
	if s.IsLocked("b") {
		t.Fatal("other key should not be locked")
	}

	s.Unlock("a")

	if s.IsLocked("a") {
		t.Fatal("key should be unlocked")
	}
}
