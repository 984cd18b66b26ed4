package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
	"github.com/medibook/appointment-portal/internal/core/state"
)

// DoctorService drives the doctor directory and a doctor's own slots.
type DoctorService struct {
	api     ports.DoctorAPI
	doctors *state.Slice[domain.Doctor]
	slots   *state.Slice[domain.Slot]
	log     zerolog.Logger
}

func NewDoctorService(api ports.DoctorAPI, store *state.Store, log zerolog.Logger) *DoctorService {
	return &DoctorService{api: api, doctors: store.Doctors, slots: store.DoctorSlots, log: log}
}

func (s *DoctorService) FetchDoctors(ctx context.Context) domain.Outcome {
	return fetchInto(ctx, s.doctors, "fetch", "Failed to fetch doctors", s.api.ListDoctors, s.log)
}

// CreateProfile completes a doctor account. The backend only acknowledges,
// and no cached list holds the caller's own profile, so nothing is patched.
func (s *DoctorService) CreateProfile(ctx context.Context, in ports.DoctorProfileInput) domain.Outcome {
	op := begin(s.doctors.Name(), "create_profile")
	s.doctors.Begin()
	if err := s.api.CreateDoctorProfile(ctx, in); err != nil {
		return op.end(fail(s.doctors, op, err, "Failed to create profile", s.log))
	}
	s.doctors.Settled()
	s.log.Info().Str("specialization", in.Specialization).Msg("doctor profile created")
	return op.end(domain.OK())
}

func (s *DoctorService) FetchSlots(ctx context.Context) domain.Outcome {
	return fetchInto(ctx, s.slots, "fetch", "Failed to fetch slots", s.api.ListDoctorSlots, s.log)
}

func (s *DoctorService) CreateSlot(ctx context.Context, in ports.SlotInput) domain.Outcome {
	create := func(ctx context.Context) (*domain.Slot, error) { return s.api.CreateSlot(ctx, in) }
	return createInto(ctx, s.slots, "create", "Failed to create slot", "Failed to fetch slots", create, s.api.ListDoctorSlots, s.log)
}

func (s *DoctorService) DeleteSlot(ctx context.Context, slotID int64) domain.Outcome {
	return removeFrom(ctx, s.slots, "delete", "Failed to delete slot", slotID, s.api.DeleteSlot, s.log)
}
