package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"therapycare-api/internal/model"
)

func sessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestMissingFileIsLoggedOut(t *testing.T) {
	h, err := Open(sessionPath(t))
	if err != nil {
		t.Fatal(err)
	}
	if h.Authenticated() {
		t.Error("fresh session is authenticated")
	}
	if _, ok := h.Practitioner(); ok {
		t.Error("fresh session has a practitioner")
	}
}

func TestRoundTrip(t *testing.T) {
	path := sessionPath(t)
	h, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	p := model.PublicProfile{ID: "pr-1", FullName: "Marie Martin", Specialty: "Hypnothérapeute"}
	if err := h.Set("tok-abc", p); err != nil {
		t.Fatal(err)
	}

	// a second open sees what the first one persisted
	h2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if h2.Token() != "tok-abc" {
		t.Errorf("token: %q", h2.Token())
	}
	got, ok := h2.Practitioner()
	if !ok || got.FullName != "Marie Martin" {
		t.Errorf("practitioner: %+v %v", got, ok)
	}
}

func TestPersistedKeys(t *testing.T) {
	path := sessionPath(t)
	h, _ := Open(path)
	h.Set("tok", model.PublicProfile{ID: "pr-1"})

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"therapycare_token", "therapycare_user"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q in %s", key, b)
		}
	}
}

func TestClearRemovesFile(t *testing.T) {
	path := sessionPath(t)
	h, _ := Open(path)
	h.Set("tok", model.PublicProfile{ID: "pr-1"})

	if err := h.Clear(); err != nil {
		t.Fatal(err)
	}
	if h.Authenticated() {
		t.Error("still authenticated after clear")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("session file still present: %v", err)
	}

	// clearing twice is fine
	if err := h.Clear(); err != nil {
		t.Errorf("second clear: %v", err)
	}
}

func TestCorruptFileStartsLoggedOut(t *testing.T) {
	path := sessionPath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	h, err := Open(path)
	if err != nil {
		t.Fatalf("corrupt file should not fail open: %v", err)
	}
	if h.Authenticated() {
		t.Error("authenticated from garbage")
	}
}
