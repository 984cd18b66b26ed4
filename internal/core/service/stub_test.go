package service

import (
	"context"
	"sync"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

// stubBackend implements ports.Backend. Unset funcs return zero values.
type stubBackend struct {
	login    func(ports.LoginInput) (*domain.AuthGrant, error)
	register func(ports.RegisterInput) (*domain.AuthGrant, error)

	createDoctorProfile func(ports.DoctorProfileInput) error
	listDoctors         func() ([]domain.Doctor, error)
	createSlot          func(ports.SlotInput) (*domain.Slot, error)
	listDoctorSlots     func() ([]domain.Slot, error)
	deleteSlot          func(int64) error
	listDoctorAppts     func() ([]domain.Appointment, error)

	createPatientProfile func(ports.PatientProfileInput) error
	listPatientAppts     func() ([]domain.Appointment, error)
	cancelAppointment    func(int64) error

	listAvailable func() ([]domain.AvailableSlot, error)
	book          func(int64) error
	listAllAppts  func() ([]domain.Appointment, error)
	updateStatus  func(int64, domain.AppointmentStatus) error

	adminListDoctors   func() ([]domain.Doctor, error)
	adminCreateDoctor  func(ports.AdminDoctorInput) (*domain.Doctor, error)
	adminUpdateDoctor  func(int64, ports.DoctorPatch) (*domain.Doctor, error)
	adminDeleteDoctor  func(int64) error
	adminListPatients  func() ([]domain.Patient, error)
	adminCreatePatient func(ports.AdminPatientInput) (*domain.Patient, error)
	adminUpdatePatient func(int64, ports.PatientPatch) (*domain.Patient, error)
	adminDeletePatient func(int64) error

	ping func() (*domain.Heartbeat, error)
	chat func(ports.ChatRequest) (*ports.ChatReply, error)
}

var _ ports.Backend = (*stubBackend)(nil)

func (b *stubBackend) Login(_ context.Context, in ports.LoginInput) (*domain.AuthGrant, error) {
	return b.login(in)
}
func (b *stubBackend) Register(_ context.Context, in ports.RegisterInput) (*domain.AuthGrant, error) {
	return b.register(in)
}
func (b *stubBackend) CreateDoctorProfile(_ context.Context, in ports.DoctorProfileInput) error {
	if b.createDoctorProfile == nil {
		return nil
	}
	return b.createDoctorProfile(in)
}
func (b *stubBackend) ListDoctors(context.Context) ([]domain.Doctor, error) {
	if b.listDoctors == nil {
		return nil, nil
	}
	return b.listDoctors()
}
func (b *stubBackend) CreateSlot(_ context.Context, in ports.SlotInput) (*domain.Slot, error) {
	if b.createSlot == nil {
		return nil, nil
	}
	return b.createSlot(in)
}
func (b *stubBackend) ListDoctorSlots(context.Context) ([]domain.Slot, error) {
	if b.listDoctorSlots == nil {
		return nil, nil
	}
	return b.listDoctorSlots()
}
func (b *stubBackend) DeleteSlot(_ context.Context, id int64) error {
	if b.deleteSlot == nil {
		return nil
	}
	return b.deleteSlot(id)
}
func (b *stubBackend) ListDoctorAppointments(context.Context) ([]domain.Appointment, error) {
	if b.listDoctorAppts == nil {
		return nil, nil
	}
	return b.listDoctorAppts()
}
func (b *stubBackend) CreatePatientProfile(_ context.Context, in ports.PatientProfileInput) error {
	if b.createPatientProfile == nil {
		return nil
	}
	return b.createPatientProfile(in)
}
func (b *stubBackend) ListPatientAppointments(context.Context) ([]domain.Appointment, error) {
	if b.listPatientAppts == nil {
		return nil, nil
	}
	return b.listPatientAppts()
}
func (b *stubBackend) CancelAppointment(_ context.Context, id int64) error {
	if b.cancelAppointment == nil {
		return nil
	}
	return b.cancelAppointment(id)
}
func (b *stubBackend) ListAvailableSlots(context.Context) ([]domain.AvailableSlot, error) {
	if b.listAvailable == nil {
		return nil, nil
	}
	return b.listAvailable()
}
func (b *stubBackend) BookAppointment(_ context.Context, slotID int64) error {
	if b.book == nil {
		return nil
	}
	return b.book(slotID)
}
func (b *stubBackend) ListAllAppointments(context.Context) ([]domain.Appointment, error) {
	if b.listAllAppts == nil {
		return nil, nil
	}
	return b.listAllAppts()
}
func (b *stubBackend) UpdateAppointmentStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if b.updateStatus == nil {
		return nil
	}
	return b.updateStatus(id, status)
}
func (b *stubBackend) AdminListDoctors(context.Context) ([]domain.Doctor, error) {
	if b.adminListDoctors == nil {
		return nil, nil
	}
	return b.adminListDoctors()
}
func (b *stubBackend) AdminCreateDoctor(_ context.Context, in ports.AdminDoctorInput) (*domain.Doctor, error) {
	return b.adminCreateDoctor(in)
}
func (b *stubBackend) AdminUpdateDoctor(_ context.Context, id int64, p ports.DoctorPatch) (*domain.Doctor, error) {
	return b.adminUpdateDoctor(id, p)
}
func (b *stubBackend) AdminDeleteDoctor(_ context.Context, id int64) error {
	if b.adminDeleteDoctor == nil {
		return nil
	}
	return b.adminDeleteDoctor(id)
}
func (b *stubBackend) AdminListPatients(context.Context) ([]domain.Patient, error) {
	if b.adminListPatients == nil {
		return nil, nil
	}
	return b.adminListPatients()
}
func (b *stubBackend) AdminCreatePatient(_ context.Context, in ports.AdminPatientInput) (*domain.Patient, error) {
	return b.adminCreatePatient(in)
}
func (b *stubBackend) AdminUpdatePatient(_ context.Context, id int64, p ports.PatientPatch) (*domain.Patient, error) {
	return b.adminUpdatePatient(id, p)
}
func (b *stubBackend) AdminDeletePatient(_ context.Context, id int64) error {
	if b.adminDeletePatient == nil {
		return nil
	}
	return b.adminDeletePatient(id)
}
func (b *stubBackend) Ping(context.Context) (*domain.Heartbeat, error) {
	return b.ping()
}
func (b *stubBackend) Chat(_ context.Context, in ports.ChatRequest) (*ports.ChatReply, error) {
	return b.chat(in)
}

// memSessionStore is an in-memory ports.ChatSessionStore.
type memSessionStore struct {
	mu      sync.Mutex
	id      string
	saves   int
	loadErr error
	saveErr error
}

func (m *memSessionStore) Load(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id, m.loadErr
}

func (m *memSessionStore) Save(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.id = id
	m.saves++
	return nil
}

func (m *memSessionStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.id = ""
	return nil
}

func (m *memSessionStore) Ping(context.Context) error { return nil }

func serverErr(status int, msg string) error {
	return &domain.ServerError{Status: status, Message: msg}
}
