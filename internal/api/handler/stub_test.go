package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
)

type stubAuth struct {
	loginFn    func(ctx context.Context, in ports.LoginInput) domain.Outcome
	registerFn func(ctx context.Context, in ports.RegisterInput) domain.Outcome
	loggedOut  bool
	cleared    bool
}

func (s *stubAuth) Login(ctx context.Context, in ports.LoginInput) domain.Outcome {
	return s.loginFn(ctx, in)
}

func (s *stubAuth) Register(ctx context.Context, in ports.RegisterInput) domain.Outcome {
	return s.registerFn(ctx, in)
}

func (s *stubAuth) Logout()     { s.loggedOut = true }
func (s *stubAuth) ClearError() { s.cleared = true }

type stubDoctors struct {
	fetchDoctorsFn  func(ctx context.Context) domain.Outcome
	createProfileFn func(ctx context.Context, in ports.DoctorProfileInput) domain.Outcome
	fetchSlotsFn    func(ctx context.Context) domain.Outcome
	createSlotFn    func(ctx context.Context, in ports.SlotInput) domain.Outcome
	deleteSlotFn    func(ctx context.Context, id int64) domain.Outcome
}

func (s *stubDoctors) FetchDoctors(ctx context.Context) domain.Outcome { return s.fetchDoctorsFn(ctx) }
func (s *stubDoctors) CreateProfile(ctx context.Context, in ports.DoctorProfileInput) domain.Outcome {
	return s.createProfileFn(ctx, in)
}
func (s *stubDoctors) FetchSlots(ctx context.Context) domain.Outcome { return s.fetchSlotsFn(ctx) }
func (s *stubDoctors) CreateSlot(ctx context.Context, in ports.SlotInput) domain.Outcome {
	return s.createSlotFn(ctx, in)
}
func (s *stubDoctors) DeleteSlot(ctx context.Context, id int64) domain.Outcome {
	return s.deleteSlotFn(ctx, id)
}

type stubPatients struct {
	createProfileFn func(ctx context.Context, in ports.PatientProfileInput) domain.Outcome
	fetchFn         func(ctx context.Context) domain.Outcome
	cancelFn        func(ctx context.Context, id int64) domain.Outcome
}

func (s *stubPatients) CreateProfile(ctx context.Context, in ports.PatientProfileInput) domain.Outcome {
	return s.createProfileFn(ctx, in)
}
func (s *stubPatients) FetchAppointments(ctx context.Context) domain.Outcome { return s.fetchFn(ctx) }
func (s *stubPatients) CancelAppointment(ctx context.Context, id int64) domain.Outcome {
	return s.cancelFn(ctx, id)
}

type stubAppointments struct {
	availableFn func(ctx context.Context) domain.Outcome
	bookFn      func(ctx context.Context, slotID int64) domain.Outcome
	allFn       func(ctx context.Context) domain.Outcome
	doctorFn    func(ctx context.Context) domain.Outcome
	statusFn    func(ctx context.Context, id int64, status domain.AppointmentStatus) domain.Outcome
}

func (s *stubAppointments) FetchAvailableSlots(ctx context.Context) domain.Outcome {
	return s.availableFn(ctx)
}
func (s *stubAppointments) Book(ctx context.Context, slotID int64) domain.Outcome {
	return s.bookFn(ctx, slotID)
}
func (s *stubAppointments) FetchAllAppointments(ctx context.Context) domain.Outcome {
	return s.allFn(ctx)
}
func (s *stubAppointments) FetchDoctorAppointments(ctx context.Context) domain.Outcome {
	return s.doctorFn(ctx)
}
func (s *stubAppointments) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) domain.Outcome {
	return s.statusFn(ctx, id, status)
}

type stubAdmin struct {
	createDoctorFn  func(ctx context.Context, in ports.AdminDoctorInput) domain.Outcome
	fetchDoctorsFn  func(ctx context.Context) domain.Outcome
	fetchPatientsFn func(ctx context.Context) domain.Outcome
	deleteDoctorFn  func(ctx context.Context, id int64) domain.Outcome
}

func (s *stubAdmin) FetchDoctors(ctx context.Context) domain.Outcome { return s.fetchDoctorsFn(ctx) }
func (s *stubAdmin) CreateDoctor(ctx context.Context, in ports.AdminDoctorInput) domain.Outcome {
	if s.createDoctorFn == nil {
		return domain.OK()
	}
	return s.createDoctorFn(ctx, in)
}
func (s *stubAdmin) UpdateDoctor(context.Context, int64, ports.DoctorPatch) domain.Outcome {
	return domain.OK()
}
func (s *stubAdmin) DeleteDoctor(ctx context.Context, id int64) domain.Outcome {
	return s.deleteDoctorFn(ctx, id)
}
func (s *stubAdmin) FetchPatients(ctx context.Context) domain.Outcome { return s.fetchPatientsFn(ctx) }
func (s *stubAdmin) CreatePatient(context.Context, ports.AdminPatientInput) domain.Outcome {
	return domain.OK()
}
func (s *stubAdmin) UpdatePatient(context.Context, int64, ports.PatientPatch) domain.Outcome {
	return domain.OK()
}
func (s *stubAdmin) DeletePatient(context.Context, int64) domain.Outcome { return domain.OK() }

type stubChat struct {
	messages []domain.ChatMessage
	resets   int
}

func (s *stubChat) Send(_ context.Context, text string) (domain.ChatMessage, bool) {
	if strings.TrimSpace(text) == "" {
		return domain.ChatMessage{}, false
	}
	s.messages = append(s.messages,
		domain.ChatMessage{Text: text, Sender: domain.SenderUser},
		domain.ChatMessage{Text: "echo: " + text, Sender: domain.SenderBot},
	)
	return s.messages[len(s.messages)-1], true
}

func (s *stubChat) Transcript() []domain.ChatMessage { return s.messages }

func (s *stubChat) Reset(context.Context) error {
	s.resets++
	s.messages = nil
	return nil
}

type stubPinger struct {
	hb  *domain.Heartbeat
	err error
}

func (s stubPinger) Ping(context.Context) (*domain.Heartbeat, error) { return s.hb, s.err }

type stubChatStore struct {
	err error
}

func (stubChatStore) Load(context.Context) (string, error) { return "", nil }
func (stubChatStore) Save(context.Context, string) error   { return nil }
func (stubChatStore) Clear(context.Context) error          { return nil }
func (s stubChatStore) Ping(context.Context) error         { return s.err }

// newContext builds an echo context for method and target, with the session
// role set the way the guard middleware would.
func newContext(method, target, body string, role domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != domain.RoleNone {
		c.Set(roleKey, role)
	}
	return c, rec
}
