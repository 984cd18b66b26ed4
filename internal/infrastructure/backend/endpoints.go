package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
)

// --- Auth ---

type grantResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	Name        string `json:"name"`
}

func (g grantResponse) toDomain() *domain.AuthGrant {
	return &domain.AuthGrant{AccessToken: g.AccessToken, Role: g.Role, Name: g.Name}
}

func (c *Client) Login(ctx context.Context, in ports.LoginInput) (*domain.AuthGrant, error) {
	var out grantResponse
	if err := c.do(ctx, http.MethodPost, "/login/", in, &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (*domain.AuthGrant, error) {
	var out grantResponse
	if err := c.do(ctx, http.MethodPost, "/signup/", in, &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// --- Doctor ---

func (c *Client) CreateDoctorProfile(ctx context.Context, in ports.DoctorProfileInput) error {
	return c.do(ctx, http.MethodPost, "/doctor/create/", in, nil)
}

func (c *Client) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	var out []domain.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctors/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSlot(ctx context.Context, in ports.SlotInput) (*domain.Slot, error) {
	var out domain.Slot
	if err := c.do(ctx, http.MethodPost, "/slots/create/", in, &out); err != nil {
		return nil, err
	}
	if out.ID == 0 {
		return nil, nil
	}
	return &out, nil
}

func (c *Client) ListDoctorSlots(ctx context.Context) ([]domain.Slot, error) {
	var out []domain.Slot
	if err := c.do(ctx, http.MethodGet, "/doctor/slots/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteSlot(ctx context.Context, slotID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/doctor/slots/%d/delete/", slotID), nil, nil)
}

func (c *Client) ListDoctorAppointments(ctx context.Context) ([]domain.Appointment, error) {
	var out []domain.Appointment
	if err := c.do(ctx, http.MethodGet, "/doctor/appointments/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- Patient ---

func (c *Client) CreatePatientProfile(ctx context.Context, in ports.PatientProfileInput) error {
	return c.do(ctx, http.MethodPost, "/patient/create/", in, nil)
}

func (c *Client) ListPatientAppointments(ctx context.Context) ([]domain.Appointment, error) {
	var out []domain.Appointment
	if err := c.do(ctx, http.MethodGet, "/patient/appointments/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CancelAppointment(ctx context.Context, appointmentID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/appointments/%d/cancel/", appointmentID), nil, nil)
}

// --- Appointments ---

func (c *Client) ListAvailableSlots(ctx context.Context) ([]domain.AvailableSlot, error) {
	var out []domain.AvailableSlot
	if err := c.do(ctx, http.MethodGet, "/slots/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type bookRequest struct {
	SlotID int64 `json:"slot_id"`
}

func (c *Client) BookAppointment(ctx context.Context, slotID int64) error {
	return c.do(ctx, http.MethodPost, "/appointments/book/", bookRequest{SlotID: slotID}, nil)
}

// overviewAppointment is the admin overview row, which names both parties
// under "doctor" and "patient".
type overviewAppointment struct {
	ID      int64                    `json:"id"`
	Doctor  string                   `json:"doctor"`
	Patient string                   `json:"patient"`
	Date    string                   `json:"date"`
	Time    string                   `json:"time"`
	Status  domain.AppointmentStatus `json:"status"`
}

func (c *Client) ListAllAppointments(ctx context.Context) ([]domain.Appointment, error) {
	var rows []overviewAppointment
	if err := c.do(ctx, http.MethodGet, "/admin/appointments/", nil, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Appointment, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Appointment{
			ID:          r.ID,
			DoctorName:  r.Doctor,
			PatientName: r.Patient,
			Date:        r.Date,
			Time:        r.Time,
			Status:      r.Status,
		})
	}
	return out, nil
}

type statusRequest struct {
	Status domain.AppointmentStatus `json:"status"`
}

func (c *Client) UpdateAppointmentStatus(ctx context.Context, appointmentID int64, status domain.AppointmentStatus) error {
	path := fmt.Sprintf("/appointments/%d/status/", appointmentID)
	return c.do(ctx, http.MethodPatch, path, statusRequest{Status: status}, nil)
}

// --- Admin ---

func (c *Client) AdminListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	var out []domain.Doctor
	if err := c.do(ctx, http.MethodGet, "/admin/doctors/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminCreateDoctor(ctx context.Context, in ports.AdminDoctorInput) (*domain.Doctor, error) {
	var out domain.Doctor
	if err := c.do(ctx, http.MethodPost, "/admin/doctors/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateDoctor(ctx context.Context, doctorID int64, patch ports.DoctorPatch) (*domain.Doctor, error) {
	var out domain.Doctor
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/doctors/%d/", doctorID), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDeleteDoctor(ctx context.Context, doctorID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/doctors/%d/", doctorID), nil, nil)
}

func (c *Client) AdminListPatients(ctx context.Context) ([]domain.Patient, error) {
	var out []domain.Patient
	if err := c.do(ctx, http.MethodGet, "/admin/patients/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminCreatePatient(ctx context.Context, in ports.AdminPatientInput) (*domain.Patient, error) {
	var out domain.Patient
	if err := c.do(ctx, http.MethodPost, "/admin/patients/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdatePatient(ctx context.Context, patientID int64, patch ports.PatientPatch) (*domain.Patient, error) {
	var out domain.Patient
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/patients/%d/", patientID), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDeletePatient(ctx context.Context, patientID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/patients/%d/", patientID), nil, nil)
}

// --- Keep-alive and chat ---

func (c *Client) Ping(ctx context.Context) (*domain.Heartbeat, error) {
	var out domain.Heartbeat
	if err := c.do(ctx, http.MethodGet, "/keep-alive/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Chat(ctx context.Context, in ports.ChatRequest) (*ports.ChatReply, error) {
	var out ports.ChatReply
	if err := c.do(ctx, http.MethodPost, "/bot/chat/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
