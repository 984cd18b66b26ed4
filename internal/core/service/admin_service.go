package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
	"github.com/medibook/appointment-portal/internal/core/state"
)

// AdminService drives the admin doctor and patient directories.
type AdminService struct {
	api      ports.AdminAPI
	doctors  *state.Slice[domain.Doctor]
	patients *state.Slice[domain.Patient]
	log      zerolog.Logger
}

func NewAdminService(api ports.AdminAPI, store *state.Store, log zerolog.Logger) *AdminService {
	return &AdminService{api: api, doctors: store.AdminDoctors, patients: store.AdminPatients, log: log}
}

// --- Doctors ---

func (s *AdminService) FetchDoctors(ctx context.Context) domain.Outcome {
	return fetchInto(ctx, s.doctors, "fetch", "Failed to fetch doctors", s.api.AdminListDoctors, s.log)
}

func (s *AdminService) CreateDoctor(ctx context.Context, in ports.AdminDoctorInput) domain.Outcome {
	create := func(ctx context.Context) (*domain.Doctor, error) { return s.api.AdminCreateDoctor(ctx, in) }
	return createInto(ctx, s.doctors, "create", "Failed to create doctor", "Failed to fetch doctors", create, s.api.AdminListDoctors, s.log)
}

func (s *AdminService) UpdateDoctor(ctx context.Context, doctorID int64, patch ports.DoctorPatch) domain.Outcome {
	update := func(ctx context.Context) (*domain.Doctor, error) {
		return s.api.AdminUpdateDoctor(ctx, doctorID, patch)
	}
	return updateIn(ctx, s.doctors, "update", "Failed to update doctor", update, s.log)
}

func (s *AdminService) DeleteDoctor(ctx context.Context, doctorID int64) domain.Outcome {
	return removeFrom(ctx, s.doctors, "delete", "Failed to delete doctor", doctorID, s.api.AdminDeleteDoctor, s.log)
}

// --- Patients ---

func (s *AdminService) FetchPatients(ctx context.Context) domain.Outcome {
	return fetchInto(ctx, s.patients, "fetch", "Failed to fetch patients", s.api.AdminListPatients, s.log)
}

func (s *AdminService) CreatePatient(ctx context.Context, in ports.AdminPatientInput) domain.Outcome {
	create := func(ctx context.Context) (*domain.Patient, error) { return s.api.AdminCreatePatient(ctx, in) }
	return createInto(ctx, s.patients, "create", "Failed to create patient", "Failed to fetch patients", create, s.api.AdminListPatients, s.log)
}

func (s *AdminService) UpdatePatient(ctx context.Context, patientID int64, patch ports.PatientPatch) domain.Outcome {
	update := func(ctx context.Context) (*domain.Patient, error) {
		return s.api.AdminUpdatePatient(ctx, patientID, patch)
	}
	return updateIn(ctx, s.patients, "update", "Failed to update patient", update, s.log)
}

func (s *AdminService) DeletePatient(ctx context.Context, patientID int64) domain.Outcome {
	return removeFrom(ctx, s.patients, "delete", "Failed to delete patient", patientID, s.api.AdminDeletePatient, s.log)
}
