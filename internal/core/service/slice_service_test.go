package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
	"github.com/medibook/appointment-portal/internal/core/state"
)

func slotIDs(items []domain.AvailableSlot) []int64 {
	out := make([]int64, 0, len(items))
	for _, s := range items {
		out = append(out, s.ID)
	}
	return out
}

func TestAppointmentService_BookRefetchesAvailableSlots(t *testing.T) {
	available := []domain.AvailableSlot{{ID: 41}, {ID: 42}, {ID: 43}}
	backend := &stubBackend{
		listAvailable: func() ([]domain.AvailableSlot, error) { return available, nil },
		book: func(id int64) error {
			next := available[:0:0]
			for _, s := range available {
				if s.ID != id {
					next = append(next, s)
				}
			}
			available = next
			return nil
		},
	}
	store := state.New()
	svc := NewAppointmentService(backend, backend, store, zerolog.Nop())

	if out := svc.FetchAvailableSlots(context.Background()); !out.Succeeded() {
		t.Fatalf("fetch: %+v", out)
	}
	if out := svc.Book(context.Background(), 42); !out.Succeeded() {
		t.Fatalf("book: %+v", out)
	}

	snap := store.AvailableSlots.Snapshot()
	got := slotIDs(snap.Items)
	if len(got) != 2 || got[0] != 41 || got[1] != 43 {
		t.Fatalf("unexpected slots after booking: %v", got)
	}
	if snap.IsLoading || snap.Error != "" {
		t.Fatalf("expected settled slice, got %+v", snap)
	}
}

func TestAppointmentService_BookFailureKeepsItems(t *testing.T) {
	backend := &stubBackend{
		listAvailable: func() ([]domain.AvailableSlot, error) { return []domain.AvailableSlot{{ID: 1}}, nil },
		book:          func(int64) error { return serverErr(409, "Slot already booked") },
	}
	store := state.New()
	svc := NewAppointmentService(backend, backend, store, zerolog.Nop())

	svc.FetchAvailableSlots(context.Background())
	out := svc.Book(context.Background(), 1)
	if out.Kind != domain.OutcomeFailed || out.Message != "Slot already booked" {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	snap := store.AvailableSlots.Snapshot()
	if len(snap.Items) != 1 || snap.Error != "Slot already booked" {
		t.Fatalf("unexpected slice: %+v", snap)
	}
}

func TestAppointmentService_UpdateStatusPatchesBothOverviews(t *testing.T) {
	appts := []domain.Appointment{{ID: 1, Status: domain.StatusBooked}, {ID: 2, Status: domain.StatusBooked}}
	backend := &stubBackend{
		listDoctorAppts: func() ([]domain.Appointment, error) { return appts, nil },
		listAllAppts:    func() ([]domain.Appointment, error) { return appts, nil },
	}
	store := state.New()
	svc := NewAppointmentService(backend, backend, store, zerolog.Nop())
	svc.FetchDoctorAppointments(context.Background())
	svc.FetchAllAppointments(context.Background())

	if out := svc.UpdateStatus(context.Background(), 2, domain.StatusVisited); !out.Succeeded() {
		t.Fatalf("update: %+v", out)
	}
	for _, s := range []*state.Slice[domain.Appointment]{store.DoctorAppointments, store.AllAppointments} {
		items := s.Snapshot().Items
		if items[0].Status != domain.StatusBooked || items[1].Status != domain.StatusVisited {
			t.Fatalf("%s not patched: %+v", s.Name(), items)
		}
	}
}

func TestAppointmentService_UpdateStatusFailure(t *testing.T) {
	backend := &stubBackend{updateStatus: func(int64, domain.AppointmentStatus) error { return errors.New("timeout") }}
	store := state.New()
	svc := NewAppointmentService(backend, backend, store, zerolog.Nop())

	out := svc.UpdateStatus(context.Background(), 9, domain.StatusVisited)
	if out.Message != "Failed to update status" {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if store.DoctorAppointments.Snapshot().Error != "Failed to update status" {
		t.Fatalf("error not stored")
	}
}

func TestDoctorService_ProfileNotFoundSignalsSetup(t *testing.T) {
	backend := &stubBackend{
		listDoctorSlots: func() ([]domain.Slot, error) {
			return nil, serverErr(400, "Doctor profile not found")
		},
	}
	store := state.New()
	svc := NewDoctorService(backend, store, zerolog.Nop())

	out := svc.FetchSlots(context.Background())
	if out.Kind != domain.OutcomeNeedsProfileSetup {
		t.Fatalf("expected profile setup signal, got %+v", out)
	}
	snap := store.DoctorSlots.Snapshot()
	if snap.Error != "" || snap.IsLoading {
		t.Fatalf("profile signal must not be stored as an error: %+v", snap)
	}
}

func TestDoctorService_CreateSlotRefetchesWhenNotEchoed(t *testing.T) {
	listed := 0
	backend := &stubBackend{
		createSlot: func(in ports.SlotInput) (*domain.Slot, error) { return nil, nil },
		listDoctorSlots: func() ([]domain.Slot, error) {
			listed++
			return []domain.Slot{{ID: 5, Date: "2026-11-02"}}, nil
		},
	}
	store := state.New()
	svc := NewDoctorService(backend, store, zerolog.Nop())

	if out := svc.CreateSlot(context.Background(), ports.SlotInput{Date: "2026-11-02"}); !out.Succeeded() {
		t.Fatalf("create: %+v", out)
	}
	if listed != 1 || len(store.DoctorSlots.Snapshot().Items) != 1 {
		t.Fatalf("expected one re-fetch, got %d", listed)
	}
}

func TestDoctorService_CreateSlotAppendsEcho(t *testing.T) {
	backend := &stubBackend{
		createSlot: func(in ports.SlotInput) (*domain.Slot, error) {
			return &domain.Slot{ID: 8, Date: in.Date}, nil
		},
		listDoctorSlots: func() ([]domain.Slot, error) {
			t.Fatalf("list must not be called when the slot is echoed")
			return nil, nil
		},
	}
	store := state.New()
	svc := NewDoctorService(backend, store, zerolog.Nop())

	svc.CreateSlot(context.Background(), ports.SlotInput{Date: "2026-11-03"})
	items := store.DoctorSlots.Snapshot().Items
	if len(items) != 1 || items[0].ID != 8 {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestDoctorService_FallbackLiterals(t *testing.T) {
	boom := errors.New("boom")
	backend := &stubBackend{
		listDoctors:         func() ([]domain.Doctor, error) { return nil, boom },
		createDoctorProfile: func(ports.DoctorProfileInput) error { return boom },
		listDoctorSlots:     func() ([]domain.Slot, error) { return nil, boom },
		createSlot:          func(ports.SlotInput) (*domain.Slot, error) { return nil, boom },
		deleteSlot:          func(int64) error { return boom },
	}
	svc := NewDoctorService(backend, state.New(), zerolog.Nop())
	ctx := context.Background()

	cases := map[string]domain.Outcome{
		"Failed to fetch doctors":  svc.FetchDoctors(ctx),
		"Failed to create profile": svc.CreateProfile(ctx, ports.DoctorProfileInput{}),
		"Failed to fetch slots":    svc.FetchSlots(ctx),
		"Failed to create slot":    svc.CreateSlot(ctx, ports.SlotInput{}),
		"Failed to delete slot":    svc.DeleteSlot(ctx, 1),
	}
	for want, out := range cases {
		if out.Kind != domain.OutcomeFailed || out.Message != want {
			t.Errorf("want %q, got %+v", want, out)
		}
	}
}

func TestPatientService_CancelRemovesAppointment(t *testing.T) {
	backend := &stubBackend{
		listPatientAppts: func() ([]domain.Appointment, error) {
			return []domain.Appointment{{ID: 1}, {ID: 2}}, nil
		},
	}
	store := state.New()
	svc := NewPatientService(backend, store, zerolog.Nop())
	svc.FetchAppointments(context.Background())

	if out := svc.CancelAppointment(context.Background(), 1); !out.Succeeded() {
		t.Fatalf("cancel: %+v", out)
	}
	items := store.PatientAppointments.Snapshot().Items
	if len(items) != 1 || items[0].ID != 2 {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestPatientService_ProfileNotFoundOnFetch(t *testing.T) {
	backend := &stubBackend{
		listPatientAppts: func() ([]domain.Appointment, error) {
			return nil, serverErr(400, "Patient profile not found")
		},
		cancelAppointment: func(int64) error { return serverErr(404, "") },
	}
	store := state.New()
	svc := NewPatientService(backend, store, zerolog.Nop())

	if out := svc.FetchAppointments(context.Background()); out.Kind != domain.OutcomeNeedsProfileSetup {
		t.Fatalf("expected profile setup signal, got %+v", out)
	}
	if out := svc.CancelAppointment(context.Background(), 3); out.Message != "Failed to cancel appointment" {
		t.Fatalf("unexpected outcome: %+v", out)
	}
}

func TestAdminService_DoctorLifecycle(t *testing.T) {
	backend := &stubBackend{
		adminListDoctors: func() ([]domain.Doctor, error) {
			return []domain.Doctor{{ID: 1, Name: "A"}}, nil
		},
		adminCreateDoctor: func(in ports.AdminDoctorInput) (*domain.Doctor, error) {
			return &domain.Doctor{ID: 2, Name: in.Name, Specialization: in.Specialization}, nil
		},
		adminUpdateDoctor: func(id int64, p ports.DoctorPatch) (*domain.Doctor, error) {
			return &domain.Doctor{ID: id, Name: *p.Name}, nil
		},
	}
	store := state.New()
	svc := NewAdminService(backend, store, zerolog.Nop())
	ctx := context.Background()

	svc.FetchDoctors(ctx)
	svc.CreateDoctor(ctx, ports.AdminDoctorInput{UserID: 10, Name: "B", Specialization: "ENT"})
	name := "A2"
	svc.UpdateDoctor(ctx, 1, ports.DoctorPatch{Name: &name})
	svc.DeleteDoctor(ctx, 2)

	items := store.AdminDoctors.Snapshot().Items
	if len(items) != 1 || items[0].ID != 1 || items[0].Name != "A2" {
		t.Fatalf("unexpected doctors: %+v", items)
	}
}

func TestAdminService_PatientFailures(t *testing.T) {
	boom := errors.New("boom")
	backend := &stubBackend{
		adminListPatients:  func() ([]domain.Patient, error) { return nil, boom },
		adminCreatePatient: func(ports.AdminPatientInput) (*domain.Patient, error) { return nil, boom },
		adminUpdatePatient: func(int64, ports.PatientPatch) (*domain.Patient, error) {
			return nil, serverErr(400, "phone_number: Enter a valid phone number.")
		},
		adminDeletePatient: func(int64) error { return boom },
	}
	store := state.New()
	svc := NewAdminService(backend, store, zerolog.Nop())
	ctx := context.Background()

	if out := svc.FetchPatients(ctx); out.Message != "Failed to fetch patients" || out.Status != 0 {
		t.Fatalf("unexpected: %+v", out)
	}
	if out := svc.CreatePatient(ctx, ports.AdminPatientInput{}); out.Message != "Failed to create patient" {
		t.Fatalf("unexpected: %+v", out)
	}
	if out := svc.UpdatePatient(ctx, 1, ports.PatientPatch{}); out.Message != "phone_number: Enter a valid phone number." || out.Status != 400 {
		t.Fatalf("unexpected: %+v", out)
	}
	if out := svc.DeletePatient(ctx, 1); out.Message != "Failed to delete patient" {
		t.Fatalf("unexpected: %+v", out)
	}
	if store.AdminPatients.Snapshot().IsLoading {
		t.Fatalf("slice left loading")
	}
}
