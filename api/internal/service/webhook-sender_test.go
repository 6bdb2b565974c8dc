package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lnticket/api/internal/config"
	"lnticket/api/internal/domain"
	"lnticket/api/internal/logger"

	"github.com/brianvoe/gofakeit/v6"
)

func TestParseProxy(t *testing.T) {
	proxies := []struct {
		str   string
		valid bool
	}{
		{"login:password@ip:port", true},
		{"login:password:ip:port", false},
		{"login", false},
		{"login:password:", false},
		{"login:password:127.0.0.1:1234:", false},
		{"login:password@127.0.0.1:1234", true},
		{"", false},
		{" ", false},
	}

	s := WebhookSenderService{}

	for _, i := range proxies {
		_, err := s.parseProxy(i.str)
		if err != nil && i.valid {
			t.Fatal(err)
		}
		if err == nil && !i.valid {
			t.Fatalf("expected error for %q", i.str)
		}
	}
}

func TestSendNotification(t *testing.T) {
	var got domain.WebhookNotification

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Error(err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	log := logger.Init(&config.Config{Prod_env: false})
	s := NewWebhookSenderService(nil, log)

	n := domain.WebhookNotification{
		Form:    gofakeit.LetterN(10),
		Name:    gofakeit.Name(),
		Email:   gofakeit.Email(),
		Content: gofakeit.Sentence(8),
	}

	ticketId := gofakeit.LetterN(64)

	if err := s.Send(srv.URL, ticketId, n); err != nil {
		t.Fatal(err)
	}

	if got != n {
		t.Fatalf("got %+v, want %+v", got, n)
	}

	// second send for the same ticket must be refused
	if err := s.Send(srv.URL, ticketId, n); err == nil {
		t.Fatal("duplicate send should fail")
	}
}

func TestSendBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	log := logger.Init(&config.Config{Prod_env: false})
	s := NewWebhookSenderService(nil, log)

	if err := s.Send(srv.URL, gofakeit.LetterN(64), domain.WebhookNotification{}); err == nil {
		t.Fatal("5xx response should be an error")
	}
}

func TestSendWithProxy(t *testing.T) {
	log := logger.Init(&config.Config{Prod_env: false})
	s := NewWebhookSenderService([]string{"boss:boss@127.0.0.1:1080"}, log)

	// connect: connection refused
	err := s.sendWithProxy("http://127.0.0.1:9999", "s:s@127.0.0.1:1080", []byte(`{"test": "true"}`))
	t.Log(err)
}
