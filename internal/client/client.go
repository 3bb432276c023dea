// Package client is the typed HTTP client for the TherapyCare API. The
// agenda core talks to the remote appointment store exclusively through
// it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"therapycare-api/internal/model"
)

// APIError carries the HTTP status and the server's message field.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// NotFound reports whether err is a 404 from the API.
func NotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}

type Client struct {
	base  string
	token string
	http  *http.Client
}

func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken installs the bearer token used on authenticated calls.
func (c *Client) SetToken(tok string) { c.token = tok }

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &APIError{Status: resp.StatusCode, Message: payload.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type RegisterInput struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
}

type TokenResponse struct {
	Token        string              `json:"token"`
	Practitioner model.PublicProfile `json:"practitioner"`
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	in := map[string]string{"email": email, "password": password}
	var out TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

func (c *Client) Profile(ctx context.Context) (*model.Practitioner, error) {
	var out model.Practitioner
	if err := c.do(ctx, http.MethodGet, "/api/practitioner/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, upd model.PractitionerUpdate) (*model.Practitioner, error) {
	var out model.Practitioner
	if err := c.do(ctx, http.MethodPut, "/api/practitioner/profile", upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListPatients(ctx context.Context) ([]model.Patient, error) {
	var out []model.Patient
	if err := c.do(ctx, http.MethodGet, "/api/patients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type PatientInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Notes    string `json:"notes"`
}

func (c *Client) CreatePatient(ctx context.Context, in PatientInput) (*model.Patient, error) {
	var out model.Patient
	if err := c.do(ctx, http.MethodPost, "/api/patients", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePatient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/patients/"+url.PathEscape(id), nil, nil)
}

type AppointmentInput struct {
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Notes       string `json:"notes"`
}

func (c *Client) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	var out []model.Appointment
	if err := c.do(ctx, http.MethodGet, "/api/appointments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAppointment(ctx context.Context, in AppointmentInput) (*model.Appointment, error) {
	var out model.Appointment
	if err := c.do(ctx, http.MethodPost, "/api/appointments", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/appointments/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Stats(ctx context.Context) (*model.Stats, error) {
	var out model.Stats
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SearchPractitioners(ctx context.Context, specialty, city string) ([]model.PublicProfile, error) {
	q := url.Values{}
	if specialty != "" {
		q.Set("specialty", specialty)
	}
	if city != "" {
		q.Set("city", city)
	}
	path := "/api/public/practitioners"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out []model.PublicProfile
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
