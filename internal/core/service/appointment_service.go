package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
	"github.com/medibook/appointment-portal/internal/core/state"
)

// AppointmentService drives slot browsing, booking, and the appointment
// overviews shown to doctors and admins.
type AppointmentService struct {
	api       ports.AppointmentAPI
	doctorAPI ports.DoctorAPI
	available *state.Slice[domain.AvailableSlot]
	all       *state.Slice[domain.Appointment]
	doctor    *state.Slice[domain.Appointment]
	log       zerolog.Logger
}

func NewAppointmentService(api ports.AppointmentAPI, doctorAPI ports.DoctorAPI, store *state.Store, log zerolog.Logger) *AppointmentService {
	return &AppointmentService{
		api:       api,
		doctorAPI: doctorAPI,
		available: store.AvailableSlots,
		all:       store.AllAppointments,
		doctor:    store.DoctorAppointments,
		log:       log,
	}
}

func (s *AppointmentService) FetchAvailableSlots(ctx context.Context) domain.Outcome {
	return fetchInto(ctx, s.available, "fetch", "Failed to fetch slots", s.api.ListAvailableSlots, s.log)
}

// Book reserves slotID. The backend does not echo the appointment, so the
// available slots are fetched again; the booked slot is filtered server-side.
func (s *AppointmentService) Book(ctx context.Context, slotID int64) domain.Outcome {
	op := begin(s.available.Name(), "book")
	s.available.Begin()
	if err := s.api.BookAppointment(ctx, slotID); err != nil {
		return op.end(fail(s.available, op, err, "Failed to book appointment", s.log))
	}
	items, err := s.api.ListAvailableSlots(ctx)
	if err != nil {
		return op.end(fail(s.available, op, err, "Failed to fetch slots", s.log))
	}
	s.available.Fetched(items)
	s.log.Info().Int64("slot_id", slotID).Msg("appointment booked")
	return op.end(domain.OK())
}

func (s *AppointmentService) FetchAllAppointments(ctx context.Context) domain.Outcome {
	return fetchInto(ctx, s.all, "fetch", "Failed to fetch appointments", s.api.ListAllAppointments, s.log)
}

func (s *AppointmentService) FetchDoctorAppointments(ctx context.Context) domain.Outcome {
	return fetchInto(ctx, s.doctor, "fetch", "Failed to fetch appointments", s.doctorAPI.ListDoctorAppointments, s.log)
}

// UpdateStatus changes an appointment's status and patches it in every
// overview that caches it.
func (s *AppointmentService) UpdateStatus(ctx context.Context, appointmentID int64, status domain.AppointmentStatus) domain.Outcome {
	const fallback = "Failed to update status"
	targets := []*state.Slice[domain.Appointment]{s.doctor, s.all}

	ops := make([]operation, 0, len(targets))
	for _, t := range targets {
		ops = append(ops, begin(t.Name(), "update_status"))
		t.Begin()
	}

	err := s.api.UpdateAppointmentStatus(ctx, appointmentID, status)

	out := domain.OK()
	for i, t := range targets {
		if err != nil {
			out = ops[i].end(fail(t, ops[i], err, fallback, s.log))
			continue
		}
		t.Patched(appointmentID, func(a *domain.Appointment) { a.Status = status })
		ops[i].end(out)
	}
	if err == nil {
		s.log.Info().Int64("appointment_id", appointmentID).Str("status", string(status)).Msg("appointment status updated")
	}
	return out
}
