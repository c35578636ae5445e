// Package mocks provides in-memory tracers for tests. Spans are kept instead
// of exported so tests can assert which operations ran and which failed.
package mocks

import (
	"context"
	"kasaglow/infras/otel"
	"sync"
)

// Span is a finished or in-flight span captured by Recorder.
type Span struct {
	Scope      string
	Name       string
	Attributes map[string]any
	Events     []string
	Err        error
	Ended      bool
}

type Recorder struct {
	mu    sync.Mutex
	spans []*Span
}

func NewOtel() otel.Otel {
	return NewRecorder()
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	span := &Span{
		Scope:      scopeName,
		Name:       spanName,
		Attributes: make(map[string]any),
	}

	r.mu.Lock()
	r.spans = append(r.spans, span)
	r.mu.Unlock()

	return ctx, &scope{recorder: r, span: span}
}

// Spans returns copies of the recorded spans in start order.
func (r *Recorder) Spans() []Span {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]Span, 0, len(r.spans))

	for _, span := range r.spans {
		cp := *span
		cp.Attributes = make(map[string]any, len(span.Attributes))

		for key, value := range span.Attributes {
			cp.Attributes[key] = value
		}

		cp.Events = append([]string(nil), span.Events...)
		res = append(res, cp)
	}

	return res
}

// Span returns the first span named name.
func (r *Recorder) Span(name string) (Span, bool) {
	for _, span := range r.Spans() {
		if span.Name == name {
			return span, true
		}
	}

	return Span{}, false
}

type scope struct {
	recorder *Recorder
	span     *Span
}

func (s *scope) End() {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()

	s.span.Ended = true
}

func (s *scope) TraceError(err error) {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()

	s.span.Err = err
}

func (s *scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scope) AddEvent(name string) {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()

	s.span.Events = append(s.span.Events, name)
}

func (s *scope) SetAttribute(key string, value any) {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()

	s.span.Attributes[key] = value
}

func (s *scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}
