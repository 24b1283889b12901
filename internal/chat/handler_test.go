package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"arogya-mitr/internal/dataset"
	"arogya-mitr/internal/offline"
)

func newTestServer(t *testing.T, gw *fakeGateway, online bool) *httptest.Server {
	t.Helper()
	store, err := dataset.Load()
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	svc := NewService(offline.NewResolver(store), gw, staticSignal(online), newMemorySettings(), "en")

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		RegisterRoutes(r, NewHandler(svc))
	})

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func doReq(t *testing.T, baseURL, method, path string, payload any) (int, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, baseURL+path, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, data
}

func createSession(t *testing.T, baseURL string) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/api/session", nil)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating session, got %d body=%s", st, string(body))
	}
	var sess Session
	if err := json.Unmarshal(body, &sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	return sess.ID.String()
}

func TestHTTP_EndToEnd_ChatFlow(t *testing.T) {
	gw := &fakeGateway{reply: "rest and hydrate"}
	ts := newTestServer(t, gw, true)

	id := createSession(t, ts.URL)

	// Chat produces one assistant turn.
	{
		st, body := doReq(t, ts.URL, "POST", "/api/session/"+id+"/chat", MessageRequest{Message: "what helps a mild fever?"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 chat, got %d body=%s", st, string(body))
		}
		var turn Turn
		if err := json.Unmarshal(body, &turn); err != nil {
			t.Fatalf("decode turn: %v", err)
		}
		if turn.Role != RoleAssistant || turn.Content != "rest and hydrate" {
			t.Fatalf("unexpected turn: %+v", turn)
		}
	}

	// Transcript holds welcome + user + assistant.
	{
		st, body := doReq(t, ts.URL, "GET", "/api/session/"+id+"/transcript", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 transcript, got %d", st)
		}
		var payload struct {
			Turns []Turn `json:"turns"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("decode transcript: %v", err)
		}
		if len(payload.Turns) != 3 {
			t.Fatalf("expected 3 turns, got %d", len(payload.Turns))
		}
	}

	// Switching language restarts the transcript in Hindi.
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/session/"+id+"/language", LanguageRequest{Language: "hi"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 set language, got %d body=%s", st, string(body))
		}
		var sess Session
		if err := json.Unmarshal(body, &sess); err != nil {
			t.Fatalf("decode session: %v", err)
		}
		if sess.Language != "hi" || len(sess.Turns) != 1 {
			t.Fatalf("unexpected session after language change: %+v", sess)
		}
	}

	// Reset clears state.
	{
		st, body := doReq(t, ts.URL, "POST", "/api/session/"+id+"/reset", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 reset, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_CategorySelection(t *testing.T) {
	gw := &fakeGateway{reply: "guidance"}
	ts := newTestServer(t, gw, true)
	id := createSession(t, ts.URL)

	st, body := doReq(t, ts.URL, "POST", "/api/session/"+id+"/category", CategoryRequest{CategoryID: "emergency"})
	if st != http.StatusOK {
		t.Fatalf("expected 200 category, got %d body=%s", st, string(body))
	}
	if !gw.lastEmergency {
		t.Error("emergency category should request the emergency protocol")
	}

	st, body = doReq(t, ts.URL, "POST", "/api/session/"+id+"/category", CategoryRequest{CategoryID: "astrology"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown category, got %d body=%s", st, string(body))
	}
}

func TestHTTP_MedicineLookup(t *testing.T) {
	gw := &fakeGateway{medicineReply: "**Suggested Medicines**\n• cough syrup"}
	ts := newTestServer(t, gw, true)
	id := createSession(t, ts.URL)

	st, body := doReq(t, ts.URL, "POST", "/api/session/"+id+"/medicine", MedicineRequest{Ailment: "cough"})
	if st != http.StatusOK {
		t.Fatalf("expected 200 medicine, got %d body=%s", st, string(body))
	}
	var payload map[string]string
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if !strings.Contains(payload["suggestions"], "cough syrup") {
		t.Fatalf("unexpected suggestions: %q", payload["suggestions"])
	}
}

func TestHTTP_ListCategories(t *testing.T) {
	ts := newTestServer(t, &fakeGateway{}, true)

	st, body := doReq(t, ts.URL, "GET", "/api/categories", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 categories, got %d", st)
	}
	var payload struct {
		Categories []Category `json:"categories"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode categories: %v", err)
	}
	if len(payload.Categories) != 8 {
		t.Fatalf("expected 8 categories, got %d", len(payload.Categories))
	}
	if payload.Categories[0].ID != "symptoms" {
		t.Errorf("unexpected first category: %s", payload.Categories[0].ID)
	}
}

func TestHTTP_SessionNotFound(t *testing.T) {
	ts := newTestServer(t, &fakeGateway{}, true)

	st, _ := doReq(t, ts.URL, "POST", "/api/session/1b671a64-40d5-491e-99b0-da01ff1f3341/chat", MessageRequest{Message: "hi"})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "POST", "/api/session/not-a-uuid/chat", MessageRequest{Message: "hi"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", st)
	}
}
