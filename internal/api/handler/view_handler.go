package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
	"github.com/medibook/appointment-portal/internal/core/state"
)

// ViewHandler renders guarded pages as JSON view models. Each page loads
// the slices it displays, as the page would on mount, and renders their
// snapshots; load failures show up as the slice's error, not as a failed
// request.
type ViewHandler struct {
	store        *state.Store
	doctors      ports.DoctorService
	patients     ports.PatientService
	appointments ports.AppointmentService
	admin        ports.AdminService
}

func NewViewHandler(
	store *state.Store,
	doctors ports.DoctorService,
	patients ports.PatientService,
	appointments ports.AppointmentService,
	admin ports.AdminService,
) *ViewHandler {
	return &ViewHandler{store: store, doctors: doctors, patients: patients, appointments: appointments, admin: admin}
}

type viewResponse struct {
	View    string                `json:"view"`
	Session state.SessionSnapshot `json:"session"`
	Data    map[string]any        `json:"data,omitempty"`
}

type loadFunc func(ctx context.Context) domain.Outcome

// Render returns the handler for path. Paths without data render the
// session only.
func (h *ViewHandler) Render(path string) echo.HandlerFunc {
	loads, data := h.page(path)

	return func(c echo.Context) error {
		ctx := c.Request().Context()
		for _, load := range loads {
			if out := load(ctx); out.Kind == domain.OutcomeNeedsProfileSetup {
				role, _ := c.Get(roleKey).(domain.Role)
				return c.Redirect(http.StatusSeeOther, role.ProfileSetupPath())
			}
		}

		resp := viewResponse{View: path, Session: h.store.Auth.Snapshot()}
		if data != nil {
			resp.Data = data()
		}
		return c.JSON(http.StatusOK, resp)
	}
}

func (h *ViewHandler) page(path string) ([]loadFunc, func() map[string]any) {
	s := h.store
	switch path {
	case "/doctor/dashboard", "/doctor/slots":
		return []loadFunc{h.doctors.FetchSlots}, func() map[string]any {
			return map[string]any{state.SliceDoctorSlots: s.DoctorSlots.Snapshot()}
		}
	case "/doctor/appointments":
		return []loadFunc{h.appointments.FetchDoctorAppointments}, func() map[string]any {
			return map[string]any{state.SliceDoctorAppointments: s.DoctorAppointments.Snapshot()}
		}
	case "/doctor/profile-setup":
		return nil, func() map[string]any {
			return map[string]any{state.SliceDoctors: s.Doctors.Snapshot()}
		}
	case "/patient/dashboard", "/patient/appointments":
		return []loadFunc{h.patients.FetchAppointments}, func() map[string]any {
			return map[string]any{state.SlicePatientAppointments: s.PatientAppointments.Snapshot()}
		}
	case "/patient/book-appointment":
		return []loadFunc{h.appointments.FetchAvailableSlots}, func() map[string]any {
			return map[string]any{state.SliceAvailableSlots: s.AvailableSlots.Snapshot()}
		}
	case "/patient/profile-setup":
		return nil, func() map[string]any {
			return map[string]any{state.SlicePatientAppointments: s.PatientAppointments.Snapshot()}
		}
	case "/admin/dashboard":
		return []loadFunc{h.appointments.FetchAllAppointments, h.admin.FetchDoctors, h.admin.FetchPatients}, func() map[string]any {
			return map[string]any{
				state.SliceAllAppointments: s.AllAppointments.Snapshot(),
				state.SliceAdminDoctors:    s.AdminDoctors.Snapshot(),
				state.SliceAdminPatients:   s.AdminPatients.Snapshot(),
			}
		}
	default:
		return nil, nil
	}
}
