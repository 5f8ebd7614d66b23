// Package session persists per-conversation dialogue state. Sessions
// are keyed by an opaque ID issued at first contact and survive
// process restarts through the SQLite store.
package session

import (
	"context"
	"time"
)

// ClarifyOption is one intent the user may pick during clarification.
type ClarifyOption struct {
	Intent      string `json:"intent"`
	Description string `json:"description"`
}

// Clarification is a pending "which did you mean" question. The
// entity detections of the ambiguous turn are kept so a digit reply
// can reuse them.
type Clarification struct {
	Options []ClarifyOption `json:"options"`
	Text    string          `json:"text,omitempty"`
	Prodi   []string        `json:"prodi,omitempty"`
	Labs    []string        `json:"labs,omitempty"`
}

// State is everything the dialogue manager remembers about one
// conversation.
type State struct {
	// UserName is the captured display name, empty until acquired.
	UserName string `json:"user_name,omitempty"`
	// AskedName records that the one-shot name prompt was already
	// shown, so the assistant never nags twice.
	AskedName bool `json:"asked_name,omitempty"`
	// PendingClarification is non-nil while the assistant waits for
	// the user to pick a clarification option.
	PendingClarification *Clarification `json:"pending_clarification,omitempty"`
}

// Clone returns a deep copy so callers can mutate freely.
func (s *State) Clone() *State {
	if s == nil {
		return &State{}
	}
	out := &State{
		UserName:  s.UserName,
		AskedName: s.AskedName,
	}
	if s.PendingClarification != nil {
		c := &Clarification{
			Options: append([]ClarifyOption(nil), s.PendingClarification.Options...),
			Text:    s.PendingClarification.Text,
			Prodi:   append([]string(nil), s.PendingClarification.Prodi...),
			Labs:    append([]string(nil), s.PendingClarification.Labs...),
		}
		out.PendingClarification = c
	}
	return out
}

// Store persists session state. Get returns ErrSessionNotFound from
// the errors package when the session does not exist.
type Store interface {
	Get(ctx context.Context, id string) (*State, error)
	Put(ctx context.Context, id string, state *State) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	PurgeExpired(ctx context.Context, ttl time.Duration) (int64, error)
	Close() error
}
