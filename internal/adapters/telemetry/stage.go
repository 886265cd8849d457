// Package telemetry provides tracer implementations for resolution spans.
package telemetry

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/TiVo/hxcache/internal/core/ports"
)

// DefaultThreshold is the elapsed time below which a clean span is dropped.
// Cache hits finish in microseconds; logging them would drown the output.
const DefaultThreshold = 2 * time.Millisecond

// StageTracer implements ports.Tracer by collecting timestamped stage
// markers per span and surfacing the whole timeline through the logger, but
// only when the span ran longer than the threshold or recorded an error.
type StageTracer struct {
	logger    ports.Logger
	threshold time.Duration
	now       func() time.Time
}

// NewStageTracer creates a StageTracer. A non-positive threshold falls back
// to DefaultThreshold.
func NewStageTracer(logger ports.Logger, threshold time.Duration) *StageTracer {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &StageTracer{
		logger:    logger,
		threshold: threshold,
		now:       time.Now,
	}
}

// Start begins a new span.
func (t *StageTracer) Start(ctx context.Context, name string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, &stageSpan{
		tracer: t,
		name:   name,
		start:  t.now(),
	}
}

type stamp struct {
	at  time.Time
	msg string
}

type stageSpan struct {
	tracer *StageTracer
	name   string
	start  time.Time

	mu     sync.Mutex
	stamps []stamp
	err    error
}

// Stamp records a timestamped stage marker.
func (s *stageSpan) Stamp(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamps = append(s.stamps, stamp{at: s.tracer.now(), msg: msg})
}

// RecordError marks the span as failed. Failed spans are always surfaced.
func (s *stageSpan) RecordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// End completes the span, emitting the timeline when it is interesting.
func (s *stageSpan) End() {
	elapsed := s.tracer.now().Sub(s.start)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil && elapsed < s.tracer.threshold {
		return
	}

	var b strings.Builder
	b.WriteString(s.name)
	b.WriteString(" took ")
	b.WriteString(elapsed.String())
	for _, st := range s.stamps {
		b.WriteString("; +")
		b.WriteString(st.at.Sub(s.start).String())
		b.WriteString(" ")
		b.WriteString(st.msg)
	}

	if s.err != nil {
		b.WriteString("; error: ")
		b.WriteString(s.err.Error())
		s.tracer.logger.Warn(b.String())
		return
	}
	s.tracer.logger.Info(b.String())
}
