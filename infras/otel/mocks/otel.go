package mocks

import (
	"context"
	"hotel/infras/otel"
	"sync"
)

// Span is what a Recorder keeps for every scope opened through it.
type Span struct {
	Name   string
	Events []string
	Attrs  map[string]any
	Errors []error
	Ended  bool
}

// Recorder is an in-memory otel.Otel that keeps the spans it hands out.
type Recorder struct {
	mu    sync.Mutex
	spans []*Span
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewOtel returns a tracer that records nothing worth asserting on.
func NewOtel() otel.Otel {
	return NewRecorder()
}

func NewScope() otel.Scope {
	return &scope{span: &Span{Attrs: map[string]any{}}}
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	span := &Span{Name: spanName, Attrs: map[string]any{}}

	r.mu.Lock()
	r.spans = append(r.spans, span)
	r.mu.Unlock()

	return ctx, &scope{mu: &r.mu, span: span}
}

// Shutdown implements otel.Otel.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Find returns the first recorded span with the given name.
func (r *Recorder) Find(name string) (Span, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, span := range r.spans {
		if span.Name == name {
			return *span, true
		}
	}

	return Span{}, false
}

type scope struct {
	mu   *sync.Mutex
	span *Span
}

func (s *scope) lock() func() {
	if s.mu == nil {
		return func() {}
	}

	s.mu.Lock()

	return s.mu.Unlock
}

// AddEvent implements otel.Scope.
func (s *scope) AddEvent(name string) {
	defer s.lock()()
	s.span.Events = append(s.span.Events, name)
}

// End implements otel.Scope.
func (s *scope) End() {
	defer s.lock()()
	s.span.Ended = true
}

// SetAttribute implements otel.Scope.
func (s *scope) SetAttribute(key string, value any) {
	defer s.lock()()
	s.span.Attrs[key] = value
}

// SetAttributes implements otel.Scope.
func (s *scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

// TraceError implements otel.Scope.
func (s *scope) TraceError(err error) {
	defer s.lock()()
	s.span.Errors = append(s.span.Errors, err)
}

// TraceIfError implements otel.Scope.
func (s *scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}
