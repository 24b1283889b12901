package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"arogya-mitr/internal/assistant"
	"arogya-mitr/internal/dataset"
	"arogya-mitr/internal/offline"
	"arogya-mitr/internal/triage"
)

// Gateway produces answers through the hosted model. We define the interface
// here to decouple from the concrete assistant implementation.
type Gateway interface {
	Answer(ctx context.Context, query, langCode string, history []assistant.Exchange, emergency bool) string
	MedicineSuggestions(ctx context.Context, ailment, langCode string) (string, error)
}

// NetworkSignal reports whether the hosted model is reachable right now.
type NetworkSignal interface {
	Online(ctx context.Context) bool
}

// Settings is the persistent key-value store for user preferences.
type Settings interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

const languageSettingKey = "app_language"

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrBusy                = errors.New("a reply is already being generated for this session")
	ErrEmptyMessage        = errors.New("message is empty")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrUnknownCategory     = errors.New("unknown category")
)

type Service interface {
	CreateSession(ctx context.Context) (*Session, error)
	Session(id uuid.UUID) (*Session, error)
	Transcript(id uuid.UUID) ([]Turn, error)
	Submit(ctx context.Context, id uuid.UUID, text string) (Turn, error)
	SelectCategory(ctx context.Context, id uuid.UUID, categoryID string) (Turn, error)
	SetLanguage(ctx context.Context, id uuid.UUID, code string) (*Session, error)
	Reset(ctx context.Context, id uuid.UUID) (*Session, error)
	MedicineInfo(ctx context.Context, id uuid.UUID, ailment string) (string, error)
}

type service struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	resolver *offline.Resolver
	gateway  Gateway
	network  NetworkSignal
	settings Settings

	defaultLanguage string
}

func NewService(resolver *offline.Resolver, gw Gateway, net NetworkSignal, settings Settings, defaultLanguage string) Service {
	if !assistant.IsSupportedLanguage(defaultLanguage) {
		defaultLanguage = "en"
	}
	return &service{
		sessions:        make(map[uuid.UUID]*Session),
		resolver:        resolver,
		gateway:         gw,
		network:         net,
		settings:        settings,
		defaultLanguage: defaultLanguage,
	}
}

func newTurn(role Role, content, lang string) Turn {
	return Turn{
		ID:        uuid.New(),
		Role:      role,
		Content:   content,
		Language:  lang,
		Timestamp: time.Now(),
	}
}

func (s *service) CreateSession(ctx context.Context) (*Session, error) {
	lang := s.defaultLanguage
	if saved, err := s.settings.Get(ctx, languageSettingKey); err == nil && assistant.IsSupportedLanguage(saved) {
		lang = saved
	}

	sess := &Session{
		ID:        uuid.New(),
		Language:  lang,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	sess.Turns = []Turn{newTurn(RoleAssistant, welcomeText(lang), lang)}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	snapshot := snapshotOf(sess)
	s.mu.Unlock()
	return snapshot, nil
}

func (s *service) Session(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return snapshotOf(sess), nil
}

func (s *service) Transcript(id uuid.UUID) ([]Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := make([]Turn, len(sess.Turns))
	copy(out, sess.Turns)
	return out, nil
}

// Submit records the user's message and produces exactly one assistant turn,
// even when generation fails. A session accepts one submission at a time;
// concurrent submissions are rejected with ErrBusy instead of queueing.
func (s *service) Submit(ctx context.Context, id uuid.UUID, text string) (Turn, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Turn{}, ErrEmptyMessage
	}

	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return Turn{}, ErrSessionNotFound
	}
	if sess.busy {
		s.mu.Unlock()
		return Turn{}, ErrBusy
	}
	sess.busy = true
	lang := sess.Language
	emergency := sess.EmergencyMode || triage.IsEmergency(text)
	history := exchangesOf(sess)
	sess.Turns = append(sess.Turns, newTurn(RoleUser, text, lang))
	s.mu.Unlock()

	reply := s.respond(ctx, text, lang, history, emergency)

	s.mu.Lock()
	turn := newTurn(RoleAssistant, reply, lang)
	sess.Turns = append(sess.Turns, turn)
	sess.UpdatedAt = time.Now()
	sess.busy = false
	s.mu.Unlock()
	return turn, nil
}

// respond never returns an empty reply. A panic anywhere in the generation
// path degrades to an apology so the transcript invariant holds.
func (s *service) respond(ctx context.Context, query, lang string, history []assistant.Exchange, emergency bool) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("chat: recovered while generating reply: %v", r)
			reply = genericErrorText(lang)
		}
	}()

	if !s.network.Online(ctx) {
		return s.resolver.Resolve(query, dataset.LanguageFor(lang), emergency)
	}
	return s.gateway.Answer(ctx, query, lang, history, emergency)
}

// SelectCategory toggles emergency mode and submits the category's canned
// query. Offline, the canned guidance for the category is returned directly
// without involving the model.
func (s *service) SelectCategory(ctx context.Context, id uuid.UUID, categoryID string) (Turn, error) {
	cat, ok := categoryByID(categoryID)
	if !ok {
		return Turn{}, ErrUnknownCategory
	}

	s.mu.Lock()
	sess, found := s.sessions[id]
	if !found {
		s.mu.Unlock()
		return Turn{}, ErrSessionNotFound
	}
	if sess.busy {
		s.mu.Unlock()
		return Turn{}, ErrBusy
	}
	sess.EmergencyMode = cat.Emergency
	lang := sess.Language

	if !s.network.Online(ctx) {
		sess.Turns = append(sess.Turns, newTurn(RoleUser, cat.Query, lang))
		turn := newTurn(RoleAssistant, offline.CategoryResponse(cat.ID, dataset.LanguageFor(lang)), lang)
		sess.Turns = append(sess.Turns, turn)
		sess.UpdatedAt = time.Now()
		s.mu.Unlock()
		return turn, nil
	}
	s.mu.Unlock()

	return s.Submit(ctx, id, cat.Query)
}

// SetLanguage switches the session language, persists the preference for
// future sessions, and restarts the transcript with a welcome in the new
// language.
func (s *service) SetLanguage(ctx context.Context, id uuid.UUID, code string) (*Session, error) {
	if !assistant.IsSupportedLanguage(code) {
		return nil, ErrUnsupportedLanguage
	}

	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if sess.busy {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	sess.Language = code
	sess.Turns = []Turn{newTurn(RoleAssistant, welcomeText(code), code)}
	sess.UpdatedAt = time.Now()
	snapshot := snapshotOf(sess)
	s.mu.Unlock()

	if err := s.settings.Set(ctx, languageSettingKey, code); err != nil {
		log.Printf("chat: failed to persist language preference: %v", err)
	}
	return snapshot, nil
}

// Reset clears the transcript and emergency mode, leaving only a fresh
// greeting.
func (s *service) Reset(_ context.Context, id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if sess.busy {
		return nil, ErrBusy
	}
	sess.EmergencyMode = false
	sess.Turns = []Turn{newTurn(RoleAssistant, resetWelcomeText(sess.Language), sess.Language)}
	sess.UpdatedAt = time.Now()
	return snapshotOf(sess), nil
}

// MedicineInfo answers a standalone medicine lookup in the session language.
// It does not touch the transcript.
func (s *service) MedicineInfo(ctx context.Context, id uuid.UUID, ailment string) (string, error) {
	ailment = strings.TrimSpace(ailment)
	if ailment == "" {
		return "", ErrEmptyMessage
	}

	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return "", ErrSessionNotFound
	}
	lang := sess.Language
	s.mu.Unlock()

	olang := dataset.LanguageFor(lang)
	if !s.network.Online(ctx) {
		return s.resolver.MedicineInfo(ailment, olang) + offline.OfflineSuffix(olang), nil
	}

	text, err := s.gateway.MedicineSuggestions(ctx, ailment, lang)
	if err != nil {
		log.Printf("chat: medicine suggestions failed, using local data: %v", err)
		return s.resolver.MedicineInfo(ailment, olang) + offline.OnlineFailedSuffix(olang), nil
	}
	return text, nil
}

func snapshotOf(sess *Session) *Session {
	out := *sess
	out.Turns = make([]Turn, len(sess.Turns))
	copy(out.Turns, sess.Turns)
	out.busy = false
	return &out
}

func exchangesOf(sess *Session) []assistant.Exchange {
	out := make([]assistant.Exchange, 0, len(sess.Turns))
	for _, t := range sess.Turns {
		out = append(out, assistant.Exchange{Role: string(t.Role), Content: t.Content})
	}
	return out
}

func welcomeText(code string) string {
	if code == "hi" {
		return "नमस्ते! मैं आपका AI स्वास्थ्य सहायक हूं। मैं स्वास्थ्य जानकारी, लक्षण, टीकाकरण कार्यक्रम और निवारक देखभाल में आपकी मदद कर सकता हूं। आज मैं आपकी कैसे सहायता कर सकता हूं?"
	}
	return "Hello! I'm your AI-powered healthcare assistant. I can help you with health information, symptoms, vaccination schedules, and preventive care in your preferred language. How can I assist you today?"
}

func resetWelcomeText(code string) string {
	if code == "hi" {
		return "नमस्ते! मैं आपका AI स्वास्थ्य सहायक हूं। आज मैं आपकी कैसे सहायता कर सकता हूं?"
	}
	return "Hello! I'm your AI-powered healthcare assistant. How can I assist you today?"
}

func genericErrorText(code string) string {
	if code == "hi" {
		return "क्षमा करें, कुछ गलत हुआ है। कृपया फिर से कोशिश करें।"
	}
	return "Sorry, something went wrong. Please try again."
}
