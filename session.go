package main

import (
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"

	"visitordash/dataset"
)

// Session owns one loaded copy of the dataset. Sessions never share
// tables, so nothing downstream needs locking.
type Session struct {
	ID       string
	Data     *dataset.Dataset
	LoadedAt time.Time
}

// SessionStore memoizes the load→clean→derive pipeline per session so
// repeated dashboard renders within a session do not re-read the source
// files. Entries expire after the TTL and are swept in the background.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	load     func() (*dataset.Dataset, error)
}

func NewSessionStore(ttl time.Duration, load func() (*dataset.Dataset, error)) *SessionStore {
	return &SessionStore{
		sessions: map[string]*Session{},
		ttl:      ttl,
		load:     load,
	}
}

// Get returns the session for an ID, loading a fresh dataset when the
// ID is unknown or blank. The second return value is the (possibly new)
// session ID the caller should hand back to the client.
func (s *SessionStore) Get(id string) (*Session, string, error) {
	s.mu.Lock()
	if sess, ok := s.sessions[id]; ok {
		s.mu.Unlock()
		return sess, id, nil
	}
	s.mu.Unlock()

	// Load outside the lock, a workbook read can take a while.
	data, err := s.load()
	if err != nil {
		return nil, "", err
	}
	sess := &Session{
		ID:       uuid.NewV4().String(),
		Data:     data,
		LoadedAt: time.Now(),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess, sess.ID, nil
}

// Invalidate drops one session so its next request reloads the sources.
func (s *SessionStore) Invalidate(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Sweep removes sessions older than the TTL and returns how many it
// dropped.
func (s *SessionStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for id, sess := range s.sessions {
		if now.After(sess.LoadedAt.Add(s.ttl)) {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
