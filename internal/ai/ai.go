// Package ai is the boundary to the language model that proposes schedule
// variants and routine insights. Everything crossing it is treated as
// unreliable: a failed or malformed reply becomes an empty Response.
package ai

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/rahulraj-lab/Focus-flow/internal/logger"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
)

var (
	// ErrNoAPIKey is returned when no API key could be resolved for the generator
	ErrNoAPIKey = errors.New("ai: api key not configured")
	// ErrInFlight is returned when a plan request is already running
	ErrInFlight = errors.New("ai: a plan request is already in progress")
)

type Request struct {
	Prompt         string                           `json:"prompt"`
	Priorities     []models.PriorityItem            `json:"priorities"`
	History        map[string]models.DayPerformance `json:"history"`
	RecurringRules []models.RecurringRule           `json:"recurringRules"`
}

type Response struct {
	Options  []models.ScheduleOption `json:"options"`
	Insights []models.Insight        `json:"insights"`
}

// Empty is the "no usable result" response.
func Empty() Response {
	return Response{Options: []models.ScheduleOption{}, Insights: []models.Insight{}}
}

// IsEmpty reports whether the response carries nothing to show.
func (r Response) IsEmpty() bool {
	return len(r.Options) == 0 && len(r.Insights) == 0
}

// Generator produces plan proposals for a request.
type Generator interface {
	Generate(ctx context.Context, req Request) (Response, error)
}

// Boundary guards a Generator: one request at a time, and failures are
// logged once and flattened into an empty Response.
type Boundary struct {
	gen      Generator
	inFlight atomic.Bool
}

func NewBoundary(gen Generator) *Boundary {
	return &Boundary{gen: gen}
}

// Plan runs the generator. The only error it returns is ErrInFlight.
func (b *Boundary) Plan(ctx context.Context, req Request) (Response, error) {
	if !b.inFlight.CompareAndSwap(false, true) {
		return Response{}, ErrInFlight
	}
	defer b.inFlight.Store(false)

	resp, err := b.gen.Generate(ctx, req)
	if err != nil {
		logger.Warn("Plan generation failed", "error", err)
		return Empty(), nil
	}
	return resp, nil
}

// Busy reports whether a request is currently running.
func (b *Boundary) Busy() bool {
	return b.inFlight.Load()
}
