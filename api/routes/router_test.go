package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	cartsvc "github.com/strawfields/strawfields-backend/internal/cart"
	chatsvc "github.com/strawfields/strawfields-backend/internal/chat"
	leadsvc "github.com/strawfields/strawfields-backend/internal/leads"
	"github.com/strawfields/strawfields-backend/pkg/config"
)

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (s *memStore) Get(_ context.Context, sessionID string) ([]byte, bool, error) {
	raw, ok := s.data[sessionID]
	return raw, ok, nil
}

func (s *memStore) Set(_ context.Context, sessionID string, raw []byte) error {
	s.data[sessionID] = raw
	return nil
}

func (s *memStore) Del(_ context.Context, sessionID string) error {
	delete(s.data, sessionID)
	return nil
}

type noopForwarder struct{}

func (noopForwarder) Forward(_ context.Context, _ leadsvc.Lead) error { return nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.Leads.RateLimitWindow = time.Minute
	cfg.Leads.RateLimitPerSess = 5
	cfg.WhatsApp.Number = "84901234567"

	cartService, err := cartsvc.NewService(newMemStore(), cartsvc.Options{}, nil)
	if err != nil {
		t.Fatalf("cart service: %v", err)
	}
	chatService, err := chatsvc.NewService(newMemStore(), chatsvc.NewResolver(chatsvc.DefaultPageSize), nil)
	if err != nil {
		t.Fatalf("chat service: %v", err)
	}
	leadsService, err := leadsvc.NewService(noopForwarder{}, nil, "84901234567", nil, nil)
	if err != nil {
		t.Fatalf("leads service: %v", err)
	}

	return NewRouter(cfg, nil, nil, cartService, chatService, leadsService, prometheus.NewRegistry())
}

func TestRouterHealthLive(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if env := rec.Header().Get("X-StrawFields-Env"); env != "test" {
		t.Fatalf("env header = %q", env)
	}
}

func TestRouterMetricsExposed(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRouterCatalogList(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var envelope struct {
		Data struct {
			Products []struct {
				ID           string `json:"id"`
				PreviewTiers []struct {
					MinQty int `json:"min_qty"`
				} `json:"preview_tiers"`
			} `json:"products"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(envelope.Data.Products) != 4 {
		t.Fatalf("products = %d, want 4", len(envelope.Data.Products))
	}
	if len(envelope.Data.Products[0].PreviewTiers) != 3 {
		t.Fatalf("preview tiers = %d, want 3", len(envelope.Data.Products[0].PreviewTiers))
	}
}

func TestRouterCatalogPreview(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/straw-8mm/preview?qty=25000", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	// 5¢ base with the promotional 20% tier at 25k units.
	if !strings.Contains(rec.Body.String(), `"unit_price":"4"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"preview":true`) {
		t.Fatalf("body missing preview flag: %s", rec.Body.String())
	}
}

func TestRouterWhatsAppLink(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/leads/whatsapp-link?name=Maya", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "wa.me/84901234567") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestRouterSessionHeaderEchoed(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-Session-Id") == "" {
		t.Fatal("session header missing")
	}
}

func TestRouterCartAndChatEndToEnd(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	const sess = "7f8b5de2-4f0e-4c5e-9f7a-3c39a1a0b0bb"

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"product_id":"straw-8mm","color":"white","quantity":50000}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Id", sess)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("cart add status = %d body = %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages",
		strings.NewReader(`{"message":"what is the minimum order?"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Id", sess)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("chat status = %d body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "minimum order is 1,000") {
		t.Fatalf("chat body = %s", rec.Body.String())
	}
}

func TestRouterLeadSubmit(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads",
		strings.NewReader(`{"name":"Maya Tran","email":"maya@greencafe.example","source":"order_form"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"success"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "wa.me/84901234567") {
		t.Fatalf("body missing whatsapp link: %s", rec.Body.String())
	}
}
