package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"therapycare-api/internal/model"
)

func TestBearerHeaderAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/appointments" {
			t.Errorf("path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("authorization header: %q", got)
		}
		json.NewEncoder(w).Encode([]model.Appointment{
			{ID: "a1", PatientName: "Jean Dupont", Date: "2025-03-10", Time: "09:15", Duration: 45},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok-123")
	appts, err := c.ListAppointments(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(appts) != 1 || appts[0].Time != "09:15" {
		t.Errorf("decode: %+v", appts)
	}
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		json.NewEncoder(w).Encode([]model.PublicProfile{})
	}))
	defer srv.Close()

	if _, err := New(srv.URL).SearchPractitioners(context.Background(), "", ""); err != nil {
		t.Fatal(err)
	}
}

func TestCreateAppointmentPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]any
		json.NewDecoder(r.Body).Decode(&in)
		for _, key := range []string{"patient_id", "patient_name", "date", "time", "duration"} {
			if _, ok := in[key]; !ok {
				t.Errorf("missing wire field %q", key)
			}
		}
		json.NewEncoder(w).Encode(model.Appointment{ID: "srv-1"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	a, err := c.CreateAppointment(context.Background(), AppointmentInput{
		PatientID: "p1", PatientName: "Jean Dupont",
		Date: "2025-03-10", Time: "09:15", Duration: 45,
	})
	if err != nil {
		t.Fatal(err)
	}
	if a.ID != "srv-1" {
		t.Errorf("id: %q", a.ID)
	}
}

func TestAPIErrorDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "email already registered"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Register(context.Background(), RegisterInput{
		FullName: "X", Email: "x@test.com", Password: "testpass123", Specialty: "S",
	})
	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if ae.Status != http.StatusBadRequest || ae.Message != "email already registered" {
		t.Errorf("error: %+v", ae)
	}
}

func TestNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "appointment not found"})
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteAppointment(context.Background(), "ghost")
	if !NotFound(err) {
		t.Errorf("expected NotFound to report true: %v", err)
	}
	if NotFound(errors.New("plain")) {
		t.Error("plain error treated as 404")
	}
	if NotFound(nil) {
		t.Error("nil treated as 404")
	}
}

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			json.NewEncoder(w).Encode(TokenResponse{Token: "tok-login"})
		case "/api/stats":
			if got := r.Header.Get("Authorization"); got != "Bearer tok-login" {
				t.Errorf("token not carried over: %q", got)
			}
			json.NewEncoder(w).Encode(model.Stats{})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Login(context.Background(), "a@b.com", "testpass123"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Stats(context.Background()); err != nil {
		t.Fatal(err)
	}
}
