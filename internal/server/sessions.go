package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"triviatime/internal/db"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionCookie = "tt_session"

type SessionData struct {
	Username string `json:"username,omitempty"`
	Flash    string `json:"flash,omitempty"`
}

// SessionBackend persists session data by id. Load reports false for
// unknown or expired sessions.
type SessionBackend interface {
	Load(ctx context.Context, id string) (SessionData, bool, error)
	Save(ctx context.Context, id string, data SessionData, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

type sessionStore struct {
	backend SessionBackend
	ttl     time.Duration
	secure  bool
}

func newSessionStore(backend SessionBackend, ttl time.Duration, secure bool) *sessionStore {
	if backend == nil {
		backend = NewMemorySessions()
	}
	return &sessionStore{backend: backend, ttl: ttl, secure: secure}
}

func (s *sessionStore) load(r *http.Request) (string, SessionData) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return "", SessionData{}
	}
	data, ok, err := s.backend.Load(r.Context(), cookie.Value)
	if err != nil {
		log.Printf("session load failed err=%v", err)
		return cookie.Value, SessionData{}
	}
	if !ok {
		return cookie.Value, SessionData{}
	}
	return cookie.Value, data
}

func (s *sessionStore) save(w http.ResponseWriter, r *http.Request, id string, data SessionData) {
	if id == "" {
		id = newSessionID()
	}
	if err := s.backend.Save(r.Context(), id, data, s.ttl); err != nil {
		log.Printf("session save failed err=%v", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *sessionStore) Username(r *http.Request) string {
	_, data := s.load(r)
	return data.Username
}

func (s *sessionStore) SetFlash(w http.ResponseWriter, r *http.Request, message string) {
	if message == "" {
		return
	}
	id, data := s.load(r)
	data.Flash = message
	s.save(w, r, id, data)
}

func (s *sessionStore) PopFlash(w http.ResponseWriter, r *http.Request) string {
	id, data := s.load(r)
	if data.Flash == "" {
		return ""
	}
	message := data.Flash
	data.Flash = ""
	s.save(w, r, id, data)
	return message
}

// Login starts a fresh session for username so a session id issued before
// login is never promoted.
func (s *sessionStore) Login(w http.ResponseWriter, r *http.Request, username string) {
	if id, _ := s.load(r); id != "" {
		_ = s.backend.Delete(r.Context(), id)
	}
	s.save(w, r, newSessionID(), SessionData{Username: username})
}

func (s *sessionStore) Logout(w http.ResponseWriter, r *http.Request) {
	if id, _ := s.load(r); id != "" {
		if err := s.backend.Delete(r.Context(), id); err != nil {
			log.Printf("session delete failed err=%v", err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func newSessionID() string {
	return uuid.NewString()
}

type memorySession struct {
	data    SessionData
	expires time.Time
}

type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]memorySession
}

// NewMemorySessions keeps sessions in process; they are lost on restart.
func NewMemorySessions() SessionBackend {
	return &memorySessions{sessions: make(map[string]memorySession)}
}

func (m *memorySessions) Load(_ context.Context, id string) (SessionData, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return SessionData{}, false, nil
	}
	if time.Now().After(session.expires) {
		delete(m.sessions, id)
		return SessionData{}, false, nil
	}
	return session.data, true, nil
}

func (m *memorySessions) Save(_ context.Context, id string, data SessionData, ttl time.Duration) error {
	m.mu.Lock()
	m.sessions[id] = memorySession{data: data, expires: time.Now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

func (m *memorySessions) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

type dbSessions struct {
	store *db.Store
}

// NewDBSessions stores sessions in the sessions table. Expired rows are
// removed by the sweep.
func NewDBSessions(store *db.Store) SessionBackend {
	return &dbSessions{store: store}
}

func (d *dbSessions) Load(ctx context.Context, id string) (SessionData, bool, error) {
	session, err := d.store.LoadSession(ctx, id, time.Now())
	if errors.Is(err, db.ErrNotFound) {
		return SessionData{}, false, nil
	}
	if err != nil {
		return SessionData{}, false, err
	}
	return SessionData{Username: session.Username, Flash: session.Flash}, true, nil
}

func (d *dbSessions) Save(ctx context.Context, id string, data SessionData, ttl time.Duration) error {
	return d.store.SaveSession(ctx, &db.Session{
		ID:        id,
		Username:  data.Username,
		Flash:     data.Flash,
		ExpiresAt: time.Now().Add(ttl),
	})
}

func (d *dbSessions) Delete(ctx context.Context, id string) error {
	return d.store.DeleteSession(ctx, id)
}

type redisSessions struct {
	client *redis.Client
}

// NewRedisSessions stores sessions as JSON under session:<id> with the
// session ttl as the key expiry.
func NewRedisSessions(client *redis.Client) SessionBackend {
	return &redisSessions{client: client}
}

func redisSessionKey(id string) string {
	return "session:" + id
}

func (r *redisSessions) Load(ctx context.Context, id string) (SessionData, bool, error) {
	raw, err := r.client.Get(ctx, redisSessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return SessionData{}, false, nil
	}
	if err != nil {
		return SessionData{}, false, fmt.Errorf("redis get session: %w", err)
	}
	var data SessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return SessionData{}, false, fmt.Errorf("decode session: %w", err)
	}
	return data, true, nil
}

func (r *redisSessions) Save(ctx context.Context, id string, data SessionData, ttl time.Duration) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, redisSessionKey(id), raw, ttl).Err()
}

func (r *redisSessions) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, redisSessionKey(id)).Err()
}
