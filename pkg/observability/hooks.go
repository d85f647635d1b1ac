// Package observability lets embedders receive detection and planning events
// (for metrics or tracing) without stackplan depending on a backend.
//
// Install hooks once, before the first plan is generated:
//
//	observability.SetPlanHooks(promHooks{})
//
// The pipeline emits events through [Plan]; the default hooks do nothing.
package observability

import (
	"context"
	"sync"
	"time"
)

// PlanHooks receives events from the plan pipeline.
type PlanHooks interface {
	// Detection events
	OnDetectStart(ctx context.Context, source string)
	OnDetectComplete(ctx context.Context, source, provider string, duration time.Duration, err error)

	// Plan generation events
	OnPlanStart(ctx context.Context, source, provider string)
	OnPlanComplete(ctx context.Context, source, provider string, phaseCount int, duration time.Duration, err error)
}

// NoopPlanHooks is a no-op implementation of PlanHooks.
type NoopPlanHooks struct{}

func (NoopPlanHooks) OnDetectStart(context.Context, string)                                     {}
func (NoopPlanHooks) OnDetectComplete(context.Context, string, string, time.Duration, error)    {}
func (NoopPlanHooks) OnPlanStart(context.Context, string, string)                               {}
func (NoopPlanHooks) OnPlanComplete(context.Context, string, string, int, time.Duration, error) {}

var (
	planHooks PlanHooks = NoopPlanHooks{}
	hooksMu   sync.RWMutex
)

// SetPlanHooks installs h. A nil h is ignored.
func SetPlanHooks(h PlanHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		planHooks = h
	}
}

// Plan returns the registered plan hooks.
func Plan() PlanHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return planHooks
}

// Reset reinstalls the no-op hooks.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	planHooks = NoopPlanHooks{}
}
