package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
	"github.com/medibook/appointment-portal/internal/core/state"
	"github.com/medibook/appointment-portal/internal/pkg/metrics"
)

// operation tracks one slice operation from dispatch to reduction.
type operation struct {
	slice string
	name  string
	start time.Time
}

func begin(slice, name string) operation {
	metrics.SliceInflight.WithLabelValues(slice).Inc()
	return operation{slice: slice, name: name, start: time.Now()}
}

func (op operation) end(out domain.Outcome) domain.Outcome {
	metrics.SliceInflight.WithLabelValues(op.slice).Dec()
	metrics.SliceOperationDuration.WithLabelValues(op.slice, op.name).Observe(time.Since(op.start).Seconds())
	metrics.SliceOperationsTotal.WithLabelValues(op.slice, op.name, out.Kind.String()).Inc()
	return out
}

// settler is the part of a slice a failed operation resolves against.
type settler interface {
	Failed(message string)
	Settled()
}

// fail stores the error on s, except for a missing profile which is handed
// back to the caller as a redirect signal instead.
func fail(s settler, op operation, err error, fallback string, log zerolog.Logger) domain.Outcome {
	msg := domain.MessageFor(err, fallback)
	if domain.IsProfileNotFound(err) {
		s.Settled()
		log.Info().Str("slice", op.slice).Str("operation", op.name).Msg("profile setup required")
		return domain.NeedsProfileSetup(msg)
	}
	s.Failed(msg)
	log.Warn().Err(err).Str("slice", op.slice).Str("operation", op.name).Msg("slice operation failed")
	return domain.FailedFrom(err, msg)
}

type listFunc[T any] func(ctx context.Context) ([]T, error)

// fetchInto replaces the slice's items with a fresh list.
func fetchInto[T state.Identifiable](ctx context.Context, s *state.Slice[T], name, fallback string, list listFunc[T], log zerolog.Logger) domain.Outcome {
	op := begin(s.Name(), name)
	s.Begin()
	items, err := list(ctx)
	if err != nil {
		return op.end(fail(s, op, err, fallback, log))
	}
	s.Fetched(items)
	return op.end(domain.OK())
}

// createInto appends the entity the backend echoes. When the backend only
// acknowledges, the list is fetched again instead.
func createInto[T state.Identifiable](
	ctx context.Context,
	s *state.Slice[T],
	name, fallback, listFallback string,
	create func(ctx context.Context) (*T, error),
	list listFunc[T],
	log zerolog.Logger,
) domain.Outcome {
	op := begin(s.Name(), name)
	s.Begin()
	item, err := create(ctx)
	if err != nil {
		return op.end(fail(s, op, err, fallback, log))
	}
	if item != nil && (*item).EntityID() != 0 {
		s.Created(*item)
		return op.end(domain.OK())
	}
	items, err := list(ctx)
	if err != nil {
		return op.end(fail(s, op, err, listFallback, log))
	}
	s.Fetched(items)
	return op.end(domain.OK())
}

// updateIn splices the echoed entity over the cached one.
func updateIn[T state.Identifiable](
	ctx context.Context,
	s *state.Slice[T],
	name, fallback string,
	update func(ctx context.Context) (*T, error),
	log zerolog.Logger,
) domain.Outcome {
	op := begin(s.Name(), name)
	s.Begin()
	item, err := update(ctx)
	if err != nil {
		return op.end(fail(s, op, err, fallback, log))
	}
	if item == nil {
		s.Settled()
		return op.end(domain.OK())
	}
	s.Updated(*item)
	return op.end(domain.OK())
}

// removeFrom filters id out of the slice once the backend confirms.
func removeFrom[T state.Identifiable](
	ctx context.Context,
	s *state.Slice[T],
	name, fallback string,
	id int64,
	remove func(ctx context.Context, id int64) error,
	log zerolog.Logger,
) domain.Outcome {
	op := begin(s.Name(), name)
	s.Begin()
	if err := remove(ctx, id); err != nil {
		return op.end(fail(s, op, err, fallback, log))
	}
	s.Removed(id)
	return op.end(domain.OK())
}

var (
	_ ports.AuthService        = (*AuthService)(nil)
	_ ports.DoctorService      = (*DoctorService)(nil)
	_ ports.PatientService     = (*PatientService)(nil)
	_ ports.AppointmentService = (*AppointmentService)(nil)
	_ ports.AdminService       = (*AdminService)(nil)
	_ ports.ChatService        = (*ChatService)(nil)
)
