package model

import "time"

type Practitioner struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Specialty    string    `json:"specialty"`
	Description  string    `json:"description"`
	Phone        string    `json:"phone"`
	Schedule     string    `json:"schedule"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	PhotoURL     string    `json:"photo_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicProfile is the view served by the directory search and public
// profile endpoints.
type PublicProfile struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Specialty   string `json:"specialty"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	Schedule    string `json:"schedule"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PhotoURL    string `json:"photo_url"`
}

func (p *Practitioner) Public() PublicProfile {
	return PublicProfile{
		ID:          p.ID,
		FullName:    p.FullName,
		Specialty:   p.Specialty,
		Description: p.Description,
		Phone:       p.Phone,
		Schedule:    p.Schedule,
		Address:     p.Address,
		City:        p.City,
		PhotoURL:    p.PhotoURL,
	}
}

type Patient struct {
	ID             string    `json:"id"`
	PractitionerID string    `json:"practitioner_id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}

// Appointment is read-only after creation; there is no update endpoint.
// Date and Time stay as the wire strings (YYYY-MM-DD, HH:MM).
// PatientName is captured from the patient record at creation time and
// never re-synchronized afterwards.
type Appointment struct {
	ID             string    `json:"id"`
	PractitionerID string    `json:"practitioner_id"`
	PatientID      string    `json:"patient_id"`
	PatientName    string    `json:"patient_name"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Duration       int       `json:"duration"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type Stats struct {
	TotalAppointments     int           `json:"total_appointments"`
	TotalPatients         int           `json:"total_patients"`
	UpcomingAppointments  int           `json:"upcoming_appointments"`
	AppointmentsThisWeek  int           `json:"appointments_this_week"`
	AppointmentsThisMonth int           `json:"appointments_this_month"`
	AppointmentsThisYear  int           `json:"appointments_this_year"`
	AppointmentsByDay     []DayCount    `json:"appointments_by_day"`
	RecentAppointments    []Appointment `json:"recent_appointments"`
}
