// Package session holds the practitioner's login across invocations:
// the bearer token and a cached profile snapshot, persisted as a small
// JSON file. Auth state is an explicit object handed to whoever
// needs it rather than ambient process-wide storage.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"therapycare-api/internal/model"
)

// state mirrors the storage keys the web dashboard used.
type state struct {
	Token        string              `json:"therapycare_token"`
	Practitioner model.PublicProfile `json:"therapycare_user"`
}

type Holder struct {
	mu   sync.Mutex
	path string
	st   state
}

// Open loads the persisted session if one exists. A missing file is a
// logged-out session, not an error.
func Open(path string) (*Holder, error) {
	h := &Holder{path: path}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return h, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(b, &h.st); err != nil {
		// corrupt session file: start logged out rather than failing
		h.st = state{}
	}
	return h, nil
}

func (h *Holder) Set(token string, p model.PublicProfile) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.st = state{Token: token, Practitioner: p}
	return h.save()
}

// Clear logs out: wipes memory and removes the file.
func (h *Holder) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.st = state{}
	if err := os.Remove(h.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (h *Holder) Token() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.st.Token
}

func (h *Holder) Practitioner() (model.PublicProfile, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.st.Practitioner, h.st.Token != ""
}

func (h *Holder) Authenticated() bool {
	return h.Token() != ""
}

func (h *Holder) save() error {
	b, err := json.MarshalIndent(h.st, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(h.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(h.path, b, 0o600)
}
