package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"arogya-mitr/internal/assistant"
	"arogya-mitr/internal/dataset"
	"arogya-mitr/internal/offline"
)

type fakeGateway struct {
	mu            sync.Mutex
	reply         string
	medicineReply string
	medicineErr   error
	lastQuery     string
	lastEmergency bool
	block         chan struct{}
}

func (f *fakeGateway) Answer(_ context.Context, query, _ string, _ []assistant.Exchange, emergency bool) string {
	f.mu.Lock()
	f.lastQuery = query
	f.lastEmergency = emergency
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return f.reply
}

func (f *fakeGateway) MedicineSuggestions(_ context.Context, _, _ string) (string, error) {
	return f.medicineReply, f.medicineErr
}

type staticSignal bool

func (s staticSignal) Online(context.Context) bool { return bool(s) }

type memorySettings struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemorySettings() *memorySettings {
	return &memorySettings{data: make(map[string]string)}
}

func (m *memorySettings) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", errors.New("not found")
	}
	return v, nil
}

func (m *memorySettings) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func newTestService(t *testing.T, gw *fakeGateway, online bool, settings Settings) Service {
	t.Helper()
	store, err := dataset.Load()
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	if settings == nil {
		settings = newMemorySettings()
	}
	return NewService(offline.NewResolver(store), gw, staticSignal(online), settings, "en")
}

func TestCreateSessionSeedsWelcome(t *testing.T) {
	svc := newTestService(t, &fakeGateway{}, true, nil)
	sess, err := svc.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if len(sess.Turns) != 1 {
		t.Fatalf("want 1 seeded turn, got %d", len(sess.Turns))
	}
	if sess.Turns[0].Role != RoleAssistant {
		t.Errorf("welcome turn role = %s", sess.Turns[0].Role)
	}
	if !strings.Contains(sess.Turns[0].Content, "AI-powered healthcare assistant") {
		t.Errorf("unexpected welcome: %q", sess.Turns[0].Content)
	}
	if sess.Language != "en" {
		t.Errorf("language = %q", sess.Language)
	}
}

func TestCreateSessionUsesSavedLanguage(t *testing.T) {
	settings := newMemorySettings()
	settings.Set(context.Background(), "app_language", "hi")

	svc := newTestService(t, &fakeGateway{}, true, settings)
	sess, err := svc.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if sess.Language != "hi" {
		t.Fatalf("language = %q, want saved preference", sess.Language)
	}
	if !strings.Contains(sess.Turns[0].Content, "नमस्ते") {
		t.Errorf("welcome should be in Hindi: %q", sess.Turns[0].Content)
	}
}

func TestSubmitAppendsExactlyOneAssistantTurn(t *testing.T) {
	gw := &fakeGateway{reply: "rest and hydrate"}
	svc := newTestService(t, gw, true, nil)
	sess, _ := svc.CreateSession(context.Background())

	turn, err := svc.Submit(context.Background(), sess.ID, "what helps a mild fever?")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if turn.Role != RoleAssistant || turn.Content != "rest and hydrate" {
		t.Fatalf("unexpected turn: %+v", turn)
	}

	turns, err := svc.Transcript(sess.ID)
	if err != nil {
		t.Fatalf("transcript: %v", err)
	}
	// welcome + user + assistant
	if len(turns) != 3 {
		t.Fatalf("want 3 turns, got %d", len(turns))
	}
	if turns[1].Role != RoleUser || turns[2].Role != RoleAssistant {
		t.Errorf("unexpected turn order: %s, %s", turns[1].Role, turns[2].Role)
	}
}

func TestSubmitEmptyMessage(t *testing.T) {
	svc := newTestService(t, &fakeGateway{}, true, nil)
	sess, _ := svc.CreateSession(context.Background())

	if _, err := svc.Submit(context.Background(), sess.ID, "   "); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("err = %v, want ErrEmptyMessage", err)
	}
}

func TestSubmitUnknownSession(t *testing.T) {
	svc := newTestService(t, &fakeGateway{}, true, nil)
	if _, err := svc.Submit(context.Background(), uuid.New(), "hello"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestSubmitOfflineUsesDataset(t *testing.T) {
	gw := &fakeGateway{reply: "should not be used"}
	svc := newTestService(t, gw, false, nil)
	sess, _ := svc.CreateSession(context.Background())

	turn, err := svc.Submit(context.Background(), sess.ID, "fever")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !strings.Contains(turn.Content, "Fever") {
		t.Fatalf("expected dataset answer, got %q", turn.Content)
	}
	if gw.lastQuery != "" {
		t.Error("gateway should not be called while offline")
	}
}

func TestSubmitEmergencyKeywordForcesEmergency(t *testing.T) {
	gw := &fakeGateway{reply: "call 108"}
	svc := newTestService(t, gw, true, nil)
	sess, _ := svc.CreateSession(context.Background())

	if _, err := svc.Submit(context.Background(), sess.ID, "my father has severe chest pain"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !gw.lastEmergency {
		t.Error("chest pain should trigger the emergency protocol")
	}
}

func TestEmergencyModeIsSticky(t *testing.T) {
	gw := &fakeGateway{reply: "ok"}
	svc := newTestService(t, gw, true, nil)
	sess, _ := svc.CreateSession(context.Background())

	if _, err := svc.SelectCategory(context.Background(), sess.ID, "emergency"); err != nil {
		t.Fatalf("select category: %v", err)
	}
	if _, err := svc.Submit(context.Background(), sess.ID, "what about a mild headache?"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !gw.lastEmergency {
		t.Error("emergency mode should persist across turns")
	}

	// Choosing a non-emergency category clears it.
	if _, err := svc.SelectCategory(context.Background(), sess.ID, "preventive"); err != nil {
		t.Fatalf("select category: %v", err)
	}
	if _, err := svc.Submit(context.Background(), sess.ID, "what about a mild headache?"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if gw.lastEmergency {
		t.Error("non-emergency category should clear emergency mode")
	}
}

func TestSelectCategoryOfflineReturnsCannedGuidance(t *testing.T) {
	gw := &fakeGateway{reply: "should not be used"}
	svc := newTestService(t, gw, false, nil)
	sess, _ := svc.CreateSession(context.Background())

	turn, err := svc.SelectCategory(context.Background(), sess.ID, "vaccination")
	if err != nil {
		t.Fatalf("select category: %v", err)
	}
	want := offline.CategoryResponse("vaccination", dataset.LangEnglish)
	if turn.Content != want {
		t.Fatalf("got %q, want canned vaccination guidance", turn.Content)
	}

	turns, _ := svc.Transcript(sess.ID)
	if len(turns) != 3 {
		t.Fatalf("want welcome + user + assistant, got %d turns", len(turns))
	}
	if turns[1].Content != "I need vaccination schedule information" {
		t.Errorf("user turn should carry the canned query, got %q", turns[1].Content)
	}
}

func TestSelectCategoryUnknown(t *testing.T) {
	svc := newTestService(t, &fakeGateway{}, true, nil)
	sess, _ := svc.CreateSession(context.Background())

	if _, err := svc.SelectCategory(context.Background(), sess.ID, "astrology"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestSetLanguageRestartsTranscript(t *testing.T) {
	settings := newMemorySettings()
	gw := &fakeGateway{reply: "ok"}
	svc := newTestService(t, gw, true, settings)
	sess, _ := svc.CreateSession(context.Background())
	svc.Submit(context.Background(), sess.ID, "hello")

	updated, err := svc.SetLanguage(context.Background(), sess.ID, "hi")
	if err != nil {
		t.Fatalf("set language: %v", err)
	}
	if updated.Language != "hi" {
		t.Errorf("language = %q", updated.Language)
	}
	if len(updated.Turns) != 1 {
		t.Fatalf("transcript should restart with one welcome, got %d turns", len(updated.Turns))
	}
	if !strings.Contains(updated.Turns[0].Content, "नमस्ते") {
		t.Errorf("welcome should be in Hindi: %q", updated.Turns[0].Content)
	}
	if saved, _ := settings.Get(context.Background(), "app_language"); saved != "hi" {
		t.Errorf("preference not persisted, got %q", saved)
	}
}

func TestSetLanguageUnsupported(t *testing.T) {
	svc := newTestService(t, &fakeGateway{}, true, nil)
	sess, _ := svc.CreateSession(context.Background())

	if _, err := svc.SetLanguage(context.Background(), sess.ID, "fr"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("err = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestResetClearsEmergencyModeAndTranscript(t *testing.T) {
	gw := &fakeGateway{reply: "ok"}
	svc := newTestService(t, gw, true, nil)
	sess, _ := svc.CreateSession(context.Background())
	svc.SelectCategory(context.Background(), sess.ID, "emergency")

	reset, err := svc.Reset(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if reset.EmergencyMode {
		t.Error("reset should clear emergency mode")
	}
	if len(reset.Turns) != 1 {
		t.Fatalf("want one greeting, got %d turns", len(reset.Turns))
	}
	if !strings.Contains(reset.Turns[0].Content, "How can I assist you today?") {
		t.Errorf("unexpected greeting: %q", reset.Turns[0].Content)
	}

	if _, err := svc.Submit(context.Background(), sess.ID, "mild cough"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if gw.lastEmergency {
		t.Error("emergency mode should stay cleared after reset")
	}
}

func TestSubmitRejectsConcurrentGeneration(t *testing.T) {
	gw := &fakeGateway{reply: "slow answer", block: make(chan struct{})}
	svc := newTestService(t, gw, true, nil)
	sess, _ := svc.CreateSession(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.Submit(context.Background(), sess.ID, "first question")
	}()

	// Wait until the first submission is inside the gateway call.
	for {
		gw.mu.Lock()
		started := gw.lastQuery != ""
		gw.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := svc.Submit(context.Background(), sess.ID, "second question"); !errors.Is(err, ErrBusy) {
		t.Fatalf("err = %v, want ErrBusy", err)
	}

	close(gw.block)
	<-done

	if _, err := svc.Submit(context.Background(), sess.ID, "third question"); err != nil {
		t.Fatalf("session should accept submissions again, got %v", err)
	}
}

func TestMedicineInfoOffline(t *testing.T) {
	svc := newTestService(t, &fakeGateway{}, false, nil)
	sess, _ := svc.CreateSession(context.Background())

	got, err := svc.MedicineInfo(context.Background(), sess.ID, "cough")
	if err != nil {
		t.Fatalf("medicine info: %v", err)
	}
	if !strings.Contains(got, "**Suggested Medicines**") {
		t.Errorf("missing suggestions block: %q", got)
	}
	if !strings.HasSuffix(got, "(Response in offline mode)") {
		t.Errorf("missing offline suffix: %q", got)
	}

	turns, _ := svc.Transcript(sess.ID)
	if len(turns) != 1 {
		t.Errorf("medicine lookups must not touch the transcript, got %d turns", len(turns))
	}
}

func TestMedicineInfoOnlineFailureFallsBack(t *testing.T) {
	gw := &fakeGateway{medicineErr: errors.New("rate limited")}
	svc := newTestService(t, gw, true, nil)
	sess, _ := svc.CreateSession(context.Background())

	got, err := svc.MedicineInfo(context.Background(), sess.ID, "headache")
	if err != nil {
		t.Fatalf("medicine info: %v", err)
	}
	if !strings.HasSuffix(got, "(Response in offline mode - online service failed)") {
		t.Errorf("missing online-failed suffix: %q", got)
	}
}

func TestMedicineInfoOnline(t *testing.T) {
	gw := &fakeGateway{medicineReply: "**Suggested Medicines**\n• cough syrup"}
	svc := newTestService(t, gw, true, nil)
	sess, _ := svc.CreateSession(context.Background())

	got, err := svc.MedicineInfo(context.Background(), sess.ID, "cough")
	if err != nil {
		t.Fatalf("medicine info: %v", err)
	}
	if got != gw.medicineReply {
		t.Fatalf("got %q", got)
	}
}
