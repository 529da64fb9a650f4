package service

import (
	"context"
	"strings"
	"sync"

	"order-viewer/internal/core/logger"
	"order-viewer/internal/features/lookup/domain"
	"order-viewer/internal/features/lookup/ports"

	"go.uber.org/zap"
)

// Outcome tells the caller what a submission did to the document.
type Outcome int

const (
	// OutcomeIgnored means the identifier was blank; nothing happened.
	OutcomeIgnored Outcome = iota
	// OutcomeRendered means the details panel now shows the order.
	OutcomeRendered
	// OutcomeFailed means the error panel now shows the failure.
	OutcomeFailed
	// OutcomeDiscarded means a newer submission started before this one resolved.
	OutcomeDiscarded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeRendered:
		return "rendered"
	case OutcomeFailed:
		return "failed"
	case OutcomeDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// OrderDetailsClient runs the lookup lifecycle against one document:
// validate input, reset, fetch, render or report, hide the loader.
type OrderDetailsClient struct {
	source    ports.OrderSource
	doc       ports.Document
	formatter domain.TimeFormatter
	logger    *zap.Logger

	// mu serialises document writes and guards generation and state.
	mu         sync.Mutex
	generation uint64
	state      domain.UIState
}

// NewOrderDetailsClient creates a client bound to doc.
func NewOrderDetailsClient(source ports.OrderSource, doc ports.Document, formatter domain.TimeFormatter) *OrderDetailsClient {
	return &OrderDetailsClient{
		source:    source,
		doc:       doc,
		formatter: formatter,
		logger:    logger.Get(),
		state:     domain.Idle(),
	}
}

// State returns the current UI state.
func (c *OrderDetailsClient) State() domain.UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SubmitFromInput reads the identifier from the document's input field and submits it.
func (c *OrderDetailsClient) SubmitFromInput(ctx context.Context) (Outcome, error) {
	return c.Submit(ctx, c.doc.InputValue())
}

// Submit looks up raw (trimmed) and renders the result. A blank identifier is
// ignored without touching the document. The returned error is the lookup
// failure shown in the error panel, if any.
func (c *OrderDetailsClient) Submit(ctx context.Context, raw string) (Outcome, error) {
	orderUID := strings.TrimSpace(raw)
	if orderUID == "" {
		return OutcomeIgnored, nil
	}

	gen := c.reset()

	record, err := c.source.FetchOrder(ctx, orderUID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Debug("Discarding stale lookup response",
			zap.String("order_uid", orderUID),
			zap.Uint64("generation", gen),
			zap.Uint64("current_generation", c.generation),
		)
		return OutcomeDiscarded, err
	}

	defer c.doc.SetVisible(domain.RegionLoader, false)

	if err != nil {
		c.fail(orderUID, err)
		return OutcomeFailed, err
	}

	c.render(record)
	return OutcomeRendered, nil
}

// reset clears the previous lookup and shows the loader. It returns the new generation.
func (c *OrderDetailsClient) reset() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++

	c.doc.SetVisible(domain.RegionDetails, false)
	c.doc.SetVisible(domain.RegionError, false)
	c.doc.ReplaceItems(nil)
	c.doc.SetVisible(domain.RegionLoader, true)

	c.state = domain.Loading()
	return c.generation
}

// render writes a successful record. Caller holds mu.
func (c *OrderDetailsClient) render(record *domain.OrderRecord) {
	plan := domain.BuildPlan(record, c.formatter)

	for _, field := range plan.Fields {
		c.doc.SetText(field.Target, field.Text)
	}
	c.doc.ReplaceItems(plan.Rows)
	c.doc.SetVisible(domain.RegionDetails, true)

	c.state = domain.Succeeded(record)
}

// fail shows the error panel and logs the failure. Caller holds mu.
func (c *OrderDetailsClient) fail(orderUID string, err error) {
	message := err.Error()

	c.logger.Error("Order lookup failed",
		zap.String("order_uid", orderUID),
		zap.Error(err),
	)

	c.doc.SetText(domain.TargetErrorMessage, message)
	c.doc.SetVisible(domain.RegionError, true)

	c.state = domain.Failed(message)
}
