package ports

import (
	"context"

	"github.com/medibook/appointment-portal/internal/core/domain"
)

// The service interfaces below are what the gateway dispatches to. Every
// slice operation reports through a domain.Outcome; the slice itself holds
// the resulting items and error.

type AuthService interface {
	Login(ctx context.Context, in LoginInput) domain.Outcome
	Register(ctx context.Context, in RegisterInput) domain.Outcome
	Logout()
	ClearError()
}

type DoctorService interface {
	FetchDoctors(ctx context.Context) domain.Outcome
	CreateProfile(ctx context.Context, in DoctorProfileInput) domain.Outcome
	FetchSlots(ctx context.Context) domain.Outcome
	CreateSlot(ctx context.Context, in SlotInput) domain.Outcome
	DeleteSlot(ctx context.Context, slotID int64) domain.Outcome
}

type PatientService interface {
	CreateProfile(ctx context.Context, in PatientProfileInput) domain.Outcome
	FetchAppointments(ctx context.Context) domain.Outcome
	CancelAppointment(ctx context.Context, appointmentID int64) domain.Outcome
}

type AppointmentService interface {
	FetchAvailableSlots(ctx context.Context) domain.Outcome
	Book(ctx context.Context, slotID int64) domain.Outcome
	FetchAllAppointments(ctx context.Context) domain.Outcome
	FetchDoctorAppointments(ctx context.Context) domain.Outcome
	UpdateStatus(ctx context.Context, appointmentID int64, status domain.AppointmentStatus) domain.Outcome
}

type AdminService interface {
	FetchDoctors(ctx context.Context) domain.Outcome
	CreateDoctor(ctx context.Context, in AdminDoctorInput) domain.Outcome
	UpdateDoctor(ctx context.Context, doctorID int64, patch DoctorPatch) domain.Outcome
	DeleteDoctor(ctx context.Context, doctorID int64) domain.Outcome

	FetchPatients(ctx context.Context) domain.Outcome
	CreatePatient(ctx context.Context, in AdminPatientInput) domain.Outcome
	UpdatePatient(ctx context.Context, patientID int64, patch PatientPatch) domain.Outcome
	DeletePatient(ctx context.Context, patientID int64) domain.Outcome
}

// ChatService holds the support-chat transcript.
type ChatService interface {
	Send(ctx context.Context, text string) (domain.ChatMessage, bool)
	Transcript() []domain.ChatMessage
	Reset(ctx context.Context) error
}
