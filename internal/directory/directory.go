// Package directory caches the practitioner's patient list for the
// booking form and resolves patient ids to display names.
package directory

import (
	"context"
	"sync"

	"therapycare-api/internal/model"
)

// Lister is the slice of the API client the directory needs.
type Lister interface {
	ListPatients(ctx context.Context) ([]model.Patient, error)
}

type Directory struct {
	mu       sync.Mutex
	api      Lister
	patients []model.Patient
	loaded   bool
	degraded bool
}

func New(api Lister) *Directory {
	return &Directory{api: api}
}

// Refresh re-fetches the patient list. On failure the previous
// snapshot stays in place and the directory marks itself degraded; the
// booking form keeps rendering, it just cannot resolve new patients.
func (d *Directory) Refresh(ctx context.Context) error {
	patients, err := d.api.ListPatients(ctx)
	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.degraded = true
		return err
	}
	d.patients = patients
	d.loaded = true
	d.degraded = false
	return nil
}

// List returns the cached patients in store order, fetching once on
// first use. Errors degrade rather than fail: callers always get a
// usable (possibly empty) list.
func (d *Directory) List(ctx context.Context) []model.Patient {
	d.mu.Lock()
	loaded := d.loaded
	d.mu.Unlock()
	if !loaded {
		_ = d.Refresh(ctx)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]model.Patient, len(d.patients))
	copy(out, d.patients)
	return out
}

// Resolve maps a patient id to its display name from the cached
// snapshot.
func (d *Directory) Resolve(id string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, p := range d.patients {
		if p.ID == id {
			return p.FullName, true
		}
	}
	return "", false
}

// Degraded reports whether the last fetch failed.
func (d *Directory) Degraded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.degraded
}

// HasPatients reports whether at least one patient is resolvable; the
// booking form disables submission while this is false.
func (d *Directory) HasPatients() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.patients) > 0
}
