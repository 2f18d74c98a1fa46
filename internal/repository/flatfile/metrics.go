package flatfile

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"clinicrecords/internal/codec"
	"clinicrecords/internal/repository"
	"clinicrecords/internal/validate"
)

// Metrics counts store operations by entity, operation and outcome.
type Metrics struct {
	operations *prometheus.CounterVec
}

// NewMetrics registers the store counters on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clinic_store_operations_total",
				Help: "Total number of flat-file store operations.",
			},
			[]string{"entity", "op", "result"},
		),
	}
	if err := reg.Register(m.operations); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(entity, op string, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(entity, op, result(err)).Inc()
}

func result(err error) string {
	var vErr *validate.ValidationError
	var pErr *codec.ParseError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, repository.ErrNotFound):
		return "not_found"
	case errors.Is(err, repository.ErrDuplicateID):
		return "duplicate"
	case errors.As(err, &vErr):
		return "invalid"
	case errors.As(err, &pErr):
		return "parse_error"
	default:
		return "error"
	}
}
