package state

import (
	"fmt"

	"github.com/medibook/appointment-portal/internal/core/domain"
)

// Slice names, used for error dismissal and metric labels.
const (
	SliceAuth                = "auth"
	SliceDoctors             = "doctors"
	SliceDoctorSlots         = "doctor_slots"
	SliceDoctorAppointments  = "doctor_appointments"
	SlicePatientAppointments = "patient_appointments"
	SliceAvailableSlots      = "available_slots"
	SliceAllAppointments     = "all_appointments"
	SliceAdminDoctors        = "admin_doctors"
	SliceAdminPatients       = "admin_patients"
)

// Store is the process-wide client state. Build one with New at startup and
// pass it to whatever needs it; tests build their own.
type Store struct {
	Auth *SessionState

	Doctors            *Slice[domain.Doctor]
	DoctorSlots        *Slice[domain.Slot]
	DoctorAppointments *Slice[domain.Appointment]

	PatientAppointments *Slice[domain.Appointment]

	AvailableSlots  *Slice[domain.AvailableSlot]
	AllAppointments *Slice[domain.Appointment]

	AdminDoctors  *Slice[domain.Doctor]
	AdminPatients *Slice[domain.Patient]

	clearers map[string]func()
}

func New() *Store {
	s := &Store{
		Auth:                NewSessionState(),
		Doctors:             NewSlice[domain.Doctor](SliceDoctors),
		DoctorSlots:         NewSlice[domain.Slot](SliceDoctorSlots),
		DoctorAppointments:  NewSlice[domain.Appointment](SliceDoctorAppointments),
		PatientAppointments: NewSlice[domain.Appointment](SlicePatientAppointments),
		AvailableSlots:      NewSlice[domain.AvailableSlot](SliceAvailableSlots),
		AllAppointments:     NewSlice[domain.Appointment](SliceAllAppointments),
		AdminDoctors:        NewSlice[domain.Doctor](SliceAdminDoctors),
		AdminPatients:       NewSlice[domain.Patient](SliceAdminPatients),
	}
	s.clearers = map[string]func(){
		SliceAuth:                s.Auth.ClearError,
		SliceDoctors:             s.Doctors.ClearError,
		SliceDoctorSlots:         s.DoctorSlots.ClearError,
		SliceDoctorAppointments:  s.DoctorAppointments.ClearError,
		SlicePatientAppointments: s.PatientAppointments.ClearError,
		SliceAvailableSlots:      s.AvailableSlots.ClearError,
		SliceAllAppointments:     s.AllAppointments.ClearError,
		SliceAdminDoctors:        s.AdminDoctors.ClearError,
		SliceAdminPatients:       s.AdminPatients.ClearError,
	}
	return s
}

// ClearError dismisses the error of the named slice.
func (s *Store) ClearError(name string) error {
	fn, ok := s.clearers[name]
	if !ok {
		return fmt.Errorf("clear error %q: %w", name, domain.ErrUnknownSlice)
	}
	fn()
	return nil
}
