// Package flatfile implements the repositories on top of pipe-delimited text files,
// one file per entity. Adds append a single line; updates and deletes rewrite the file.
package flatfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"clinicrecords/internal/codec"
	"clinicrecords/internal/model"
	"clinicrecords/internal/repository"
	"clinicrecords/internal/validate"
)

const tracerName = "clinicrecords/internal/repository/flatfile"

// Schema binds an entity to its codec and validators.
type Schema[T model.Record] struct {
	Entity string
	Codec  codec.Codec[T]
	// ValidateAdd runs before a record is appended.
	ValidateAdd func(T) error
	// ValidateUpdate runs before a record replaces an existing one.
	ValidateUpdate func(T) error
}

// Store is the generic flat-file repository. Every mutating call reads the whole
// file, computes the new record set in memory and writes it back.
type Store[T model.Record] struct {
	file    *File
	schema  Schema[T]
	log     zerolog.Logger
	metrics *Metrics
	tracer  trace.Tracer

	// mu serializes read-modify-write sequences within this process.
	mu sync.Mutex
}

// Option customizes a Store.
type Option func(*options)

type options struct {
	log     zerolog.Logger
	metrics *Metrics
}

// WithLogger attaches a logger; stores are silent by default.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics records operation counts on m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// NewStore opens (creating if needed) the backing file at path.
func NewStore[T model.Record](path string, schema Schema[T], opts ...Option) (*Store[T], error) {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	f, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &Store[T]{
		file:    f,
		schema:  schema,
		log:     o.log.With().Str("component", "flatfile").Str("entity", schema.Entity).Logger(),
		metrics: o.metrics,
		tracer:  otel.Tracer(tracerName),
	}, nil
}

var _ repository.Repository[model.Doctor] = (*Store[model.Doctor])(nil)

// Path returns the backing file location.
func (s *Store[T]) Path() string { return s.file.Path() }

// Entity returns the entity label of the store.
func (s *Store[T]) Entity() string { return s.schema.Entity }

// List returns every record in file order. Short lines are skipped; a malformed
// field fails the whole read with a *codec.ParseError.
func (s *Store[T]) List(ctx context.Context) (out []T, err error) {
	ctx, end := s.begin(ctx, "list")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Get returns the first record with the given id, or repository.ErrNotFound.
func (s *Store[T]) Get(ctx context.Context, id int) (rec *T, err error) {
	ctx, end := s.begin(ctx, "get")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(recs, id)
	if i < 0 {
		return nil, fmt.Errorf("%s %d: %w", s.schema.Entity, id, repository.ErrNotFound)
	}
	return &recs[i], nil
}

// Add validates rec and appends it. Ids are unique for every entity.
func (s *Store[T]) Add(ctx context.Context, rec T) (err error) {
	ctx, end := s.begin(ctx, "add")
	defer func() { end(err) }()

	if err := s.check(rec, s.schema.ValidateAdd); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := s.load(ctx)
	if err != nil {
		return err
	}
	if indexOf(recs, rec.RecordID()) >= 0 {
		return fmt.Errorf("%s %d: %w", s.schema.Entity, rec.RecordID(), repository.ErrDuplicateID)
	}
	if err := s.file.appendLine(s.schema.Codec.Encode(rec)); err != nil {
		return err
	}
	s.log.Debug().Int("id", rec.RecordID()).Msg("record appended")
	return nil
}

// Update validates rec and replaces the stored record with the same id, keeping its position.
func (s *Store[T]) Update(ctx context.Context, rec T) (err error) {
	ctx, end := s.begin(ctx, "update")
	defer func() { end(err) }()

	if err := s.check(rec, s.schema.ValidateUpdate); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(recs, rec.RecordID())
	if i < 0 {
		return fmt.Errorf("%s %d: %w", s.schema.Entity, rec.RecordID(), repository.ErrNotFound)
	}
	recs[i] = rec
	return s.rewrite(recs)
}

// Delete removes the record with the given id. The file is left untouched when no record matches.
func (s *Store[T]) Delete(ctx context.Context, id int) (err error) {
	ctx, end := s.begin(ctx, "delete")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := recs[:0]
	for _, r := range recs {
		if r.RecordID() != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(recs) {
		return fmt.Errorf("%s %d: %w", s.schema.Entity, id, repository.ErrNotFound)
	}
	return s.rewrite(kept)
}

// ReplaceAll rewrites the file with exactly recs, after checking each one.
func (s *Store[T]) ReplaceAll(ctx context.Context, recs []T) (err error) {
	ctx, end := s.begin(ctx, "replace_all")
	defer func() { end(err) }()

	if err := s.checkAll(recs); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rewrite(recs)
}

// Snapshot returns the raw content of the backing file.
func (s *Store[T]) Snapshot(ctx context.Context) (b []byte, err error) {
	_, end := s.begin(ctx, "snapshot")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Snapshot()
}

// Restore replaces the backing file with raw content read from r. The content
// must decode cleanly and pass the same checks as ReplaceAll before it is written.
func (s *Store[T]) Restore(ctx context.Context, r io.Reader) (err error) {
	_, end := s.begin(ctx, "restore")
	defer func() { end(err) }()

	raw, err := io.ReadAll(r)
	if err != nil {
		return &repository.IOError{Op: "restore", Path: s.file.Path(), Err: err}
	}
	var recs []T
	for i, text := range strings.Split(string(raw), "\n") {
		if !codec.IsData(text) {
			continue
		}
		rec, err := codec.DecodeLine(s.schema.Codec, i+1, strings.TrimRight(text, "\r"))
		if errors.Is(err, codec.ErrShortLine) {
			continue
		}
		if err != nil {
			return fmt.Errorf("restore %s: %w", s.schema.Entity, err)
		}
		recs = append(recs, rec)
	}
	if err := s.checkAll(recs); err != nil {
		return fmt.Errorf("restore %s: %w", s.schema.Entity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.file.Restore(bytes.NewReader(raw)); err != nil {
		return err
	}
	s.log.Info().Int("bytes", len(raw)).Msg("file restored")
	return nil
}

// checkAll validates every record and rejects repeated ids.
func (s *Store[T]) checkAll(recs []T) error {
	seen := make(map[int]struct{}, len(recs))
	for _, r := range recs {
		if err := s.check(r, s.schema.ValidateUpdate); err != nil {
			return err
		}
		if _, dup := seen[r.RecordID()]; dup {
			return fmt.Errorf("%s %d: %w", s.schema.Entity, r.RecordID(), repository.ErrDuplicateID)
		}
		seen[r.RecordID()] = struct{}{}
	}
	return nil
}

func (s *Store[T]) check(rec T, validator func(T) error) error {
	if err := validate.ID(s.schema.Entity, rec.RecordID()); err != nil {
		return err
	}
	if validator != nil {
		return validator(rec)
	}
	return nil
}

// load must be called with mu held.
func (s *Store[T]) load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lines, err := s.file.dataLines()
	if err != nil {
		return nil, err
	}
	recs := make([]T, 0, len(lines))
	for _, l := range lines {
		rec, err := codec.DecodeLine(s.schema.Codec, l.no, l.text)
		if errors.Is(err, codec.ErrShortLine) {
			s.log.Debug().Int("line", l.no).Msg("skipping short line")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.file.Path(), err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// rewrite must be called with mu held.
func (s *Store[T]) rewrite(recs []T) error {
	lines := make([]string, 0, len(recs)+1)
	lines = append(lines, s.schema.Codec.Header())
	for _, r := range recs {
		lines = append(lines, s.schema.Codec.Encode(r))
	}
	if err := s.file.writeAll(lines); err != nil {
		return err
	}
	s.log.Info().Int("records", len(recs)).Msg("file rewritten")
	return nil
}

// begin starts a span and returns a finisher that records the outcome.
func (s *Store[T]) begin(ctx context.Context, op string) (context.Context, func(error)) {
	ctx, span := s.tracer.Start(ctx, "flatfile."+op, trace.WithAttributes(
		attribute.String("clinic.entity", s.schema.Entity),
		attribute.String("file.path", s.file.Path()),
	))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		s.metrics.observe(s.schema.Entity, op, err)
	}
}

func indexOf[T model.Record](recs []T, id int) int {
	for i, r := range recs {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}
