package rr

import (
	"sync/atomic"
	"testing"
)

func TestNext(t *testing.T) {
	servers := []string{"a", "b", "c"}

	var data atomic.Pointer[[]string]
	data.Store(&servers)

	r := New(&data)

	if r.GetProxyCount() != 3 {
		t.Fatalf("count %d, want 3", r.GetProxyCount())
	}

	want := []string{"a", "b", "c", "a", "b", "c"}
	for i, w := range want {
		got, ok := r.Next()
		if !ok {
			t.Fatal("next should succeed")
		}
		if got != w {
			t.Fatalf("call %d: got %q, want %q", i, got, w)
		}
	}
}

func TestNextEmpty(t *testing.T) {
	var empty []string

	var data atomic.Pointer[[]string]
	data.Store(&empty)

	r := New(&data)

	if _, ok := r.Next(); ok {
		t.Fatal("empty list should report false")
	}
	if r.GetProxyCount() != 0 {
		t.Fatal("empty list should count 0")
	}
}
