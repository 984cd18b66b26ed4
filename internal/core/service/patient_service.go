package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
	"github.com/medibook/appointment-portal/internal/core/state"
)

// PatientService drives a patient's own appointments.
type PatientService struct {
	api          ports.PatientAPI
	appointments *state.Slice[domain.Appointment]
	log          zerolog.Logger
}

func NewPatientService(api ports.PatientAPI, store *state.Store, log zerolog.Logger) *PatientService {
	return &PatientService{api: api, appointments: store.PatientAppointments, log: log}
}

func (s *PatientService) CreateProfile(ctx context.Context, in ports.PatientProfileInput) domain.Outcome {
	op := begin(s.appointments.Name(), "create_profile")
	s.appointments.Begin()
	if err := s.api.CreatePatientProfile(ctx, in); err != nil {
		return op.end(fail(s.appointments, op, err, "Failed to create profile", s.log))
	}
	s.appointments.Settled()
	s.log.Info().Msg("patient profile created")
	return op.end(domain.OK())
}

func (s *PatientService) FetchAppointments(ctx context.Context) domain.Outcome {
	return fetchInto(ctx, s.appointments, "fetch", "Failed to fetch appointments", s.api.ListPatientAppointments, s.log)
}

func (s *PatientService) CancelAppointment(ctx context.Context, appointmentID int64) domain.Outcome {
	return removeFrom(ctx, s.appointments, "cancel", "Failed to cancel appointment", appointmentID, s.api.CancelAppointment, s.log)
}
