package store

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/ayoisaiah/dayclock/internal/models"
)

// corruptKey holds the last payload that could not be decoded.
const corruptKey = SessionsKey + ".corrupt"

// Sessions is the session collection. Every operation reads and rewrites
// the whole collection under SessionsKey. Concurrent writers in different
// processes are not coordinated: the last write wins.
type Sessions struct {
	kv KV
}

// NewSessions returns a session store backed by kv.
func NewSessions(kv KV) *Sessions {
	return &Sessions{kv: kv}
}

// ListSessions returns every persisted session in storage order. A missing,
// corrupt or non-array payload is treated as an empty collection.
func (s *Sessions) ListSessions() []models.Session {
	b, err := s.kv.Get(SessionsKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []models.Session{}
	}

	if err != nil {
		slog.Error("reading sessions failed", slog.Any("error", err))
		return []models.Session{}
	}

	return s.decode(b)
}

func (s *Sessions) decode(b []byte) []models.Session {
	var raw []json.RawMessage

	err := json.Unmarshal(b, &raw)
	if err != nil || raw == nil {
		slog.Warn(
			"session payload is not a JSON array, resetting it",
			slog.Any("error", err),
			slog.Int("bytes", len(b)),
		)

		s.repair(b)

		return []models.Session{}
	}

	sessions := make([]models.Session, 0, len(raw))

	for i, v := range raw {
		var sess models.Session

		err := json.Unmarshal(v, &sess)
		if err != nil {
			slog.Warn(
				"skipping undecodable session",
				slog.Int("index", i),
				slog.Any("error", err),
			)

			continue
		}

		sessions = append(sessions, sess)
	}

	return sessions
}

// repair sets the collection aside under corruptKey and stores an empty
// array in its place.
func (s *Sessions) repair(payload []byte) {
	err := s.kv.Set(corruptKey, payload)
	if err != nil {
		slog.Error("backing up corrupt sessions failed", slog.Any("error", err))
		return
	}

	err = s.kv.Set(SessionsKey, []byte("[]"))
	if err != nil {
		slog.Error("resetting corrupt sessions failed", slog.Any("error", err))
	}
}

func (s *Sessions) write(sessions []models.Session) error {
	b, err := json.Marshal(sessions)
	if err != nil {
		return err
	}

	return s.kv.Set(SessionsKey, b)
}

// AddSession appends sess to the collection. Storage failures are logged and
// never returned.
func (s *Sessions) AddSession(sess models.Session) {
	sessions := append(s.ListSessions(), sess)

	err := s.write(sessions)
	if err != nil {
		slog.Error(
			"saving session failed",
			slog.String("id", sess.ID),
			slog.Any("error", err),
		)

		return
	}

	slog.Info("session saved", slog.String("id", sess.ID), slog.Int("duration", sess.Duration))
}

// DeleteSession removes the session with the given id, if any, and returns
// the collection as it is now stored.
func (s *Sessions) DeleteSession(id string) []models.Session {
	sessions := s.ListSessions()

	remaining := make([]models.Session, 0, len(sessions))

	for i := range sessions {
		if sessions[i].ID != id {
			remaining = append(remaining, sessions[i])
		}
	}

	if len(remaining) == len(sessions) {
		return sessions
	}

	err := s.write(remaining)
	if err != nil {
		slog.Error("deleting session failed", slog.String("id", id), slog.Any("error", err))
		return sessions
	}

	return remaining
}

// ClearAllSessions removes every session.
func (s *Sessions) ClearAllSessions() {
	err := s.kv.Remove(SessionsKey)
	if err != nil {
		slog.Error("clearing sessions failed", slog.Any("error", err))
	}
}

// Import appends records that are not already stored, normalising each one
// first. It returns the number of sessions added.
func (s *Sessions) Import(records []models.Session, defaultName string) (int, error) {
	existing := s.ListSessions()

	seen := make(map[string]bool, len(existing))
	for i := range existing {
		seen[existing[i].ID] = true
	}

	var added int

	for i := range records {
		sess := normalise(records[i], defaultName)

		if seen[sess.ID] {
			continue
		}

		seen[sess.ID] = true
		existing = append(existing, sess)
		added++
	}

	if added == 0 {
		return 0, nil
	}

	err := s.write(existing)
	if err != nil {
		return 0, errImportFailed.Wrap(err)
	}

	return added, nil
}
