package cache

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

func TestSetExpires(t *testing.T) {
	c := InitStorage()

	c.Set("k", "v", 100*time.Millisecond)
	if c.Load("k") != "v" {
		t.Fatal("value not stored")
	}

	time.Sleep(300 * time.Millisecond)

	if c.Load("k") != nil {
		t.Fatal("value not expired")
	}
}

func TestSetNoExp(t *testing.T) {
	c := InitStorage()

	for i := 0; i < 1000; i++ {
		c.SetNoExp(gofakeit.UUID(), gofakeit.BuzzWord())
	}

	c.SetNoExp("k", "v")
	time.Sleep(100 * time.Millisecond)
	if c.Load("k") != "v" {
		t.Fatal("value vanished")
	}

	c.Del("k")
	if c.Load("k") != nil {
		t.Fatal("value not deleted")
	}
}

func TestLoadOrSet(t *testing.T) {
	c := InitStorage()

	v := c.LoadOrSet("k", 1, time.Minute)
	if v != 1 {
		t.Fatalf("want 1, got %v", v)
	}

	v = c.LoadOrSet("k", 2, time.Minute)
	if v != 1 {
		t.Fatalf("want stored 1, got %v", v)
	}
}
