package ports

import (
	"context"

	"github.com/medibook/appointment-portal/internal/core/domain"
)

// CredentialSource yields the bearer token attached to backend requests.
// An empty token means the request goes out unauthenticated.
type CredentialSource interface {
	Token() string
}

// AuthAPI covers /login/ and /signup/.
type AuthAPI interface {
	Login(ctx context.Context, in LoginInput) (*domain.AuthGrant, error)
	Register(ctx context.Context, in RegisterInput) (*domain.AuthGrant, error)
}

// DoctorAPI covers the endpoints a doctor account drives.
type DoctorAPI interface {
	CreateDoctorProfile(ctx context.Context, in DoctorProfileInput) error
	ListDoctors(ctx context.Context) ([]domain.Doctor, error)
	// CreateSlot returns nil when the backend acknowledges without echoing the slot.
	CreateSlot(ctx context.Context, in SlotInput) (*domain.Slot, error)
	ListDoctorSlots(ctx context.Context) ([]domain.Slot, error)
	DeleteSlot(ctx context.Context, slotID int64) error
	ListDoctorAppointments(ctx context.Context) ([]domain.Appointment, error)
}

// PatientAPI covers the endpoints a patient account drives.
type PatientAPI interface {
	CreatePatientProfile(ctx context.Context, in PatientProfileInput) error
	ListPatientAppointments(ctx context.Context) ([]domain.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID int64) error
}

// AppointmentAPI covers slot browsing, booking and status changes.
type AppointmentAPI interface {
	ListAvailableSlots(ctx context.Context) ([]domain.AvailableSlot, error)
	BookAppointment(ctx context.Context, slotID int64) error
	ListAllAppointments(ctx context.Context) ([]domain.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID int64, status domain.AppointmentStatus) error
}

// AdminAPI covers /admin/doctors/ and /admin/patients/.
type AdminAPI interface {
	AdminListDoctors(ctx context.Context) ([]domain.Doctor, error)
	AdminCreateDoctor(ctx context.Context, in AdminDoctorInput) (*domain.Doctor, error)
	AdminUpdateDoctor(ctx context.Context, doctorID int64, patch DoctorPatch) (*domain.Doctor, error)
	AdminDeleteDoctor(ctx context.Context, doctorID int64) error

	AdminListPatients(ctx context.Context) ([]domain.Patient, error)
	AdminCreatePatient(ctx context.Context, in AdminPatientInput) (*domain.Patient, error)
	AdminUpdatePatient(ctx context.Context, patientID int64, patch PatientPatch) (*domain.Patient, error)
	AdminDeletePatient(ctx context.Context, patientID int64) error
}

// KeepAliveAPI pings /keep-alive/.
type KeepAliveAPI interface {
	Ping(ctx context.Context) (*domain.Heartbeat, error)
}

// ChatAPI relays a message to /bot/chat/.
type ChatAPI interface {
	Chat(ctx context.Context, in ChatRequest) (*ChatReply, error)
}

// Backend is everything the HTTP adapter implements.
type Backend interface {
	AuthAPI
	DoctorAPI
	PatientAPI
	AppointmentAPI
	AdminAPI
	KeepAliveAPI
	ChatAPI
}
