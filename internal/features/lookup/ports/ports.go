package ports

import (
	"context"

	"order-viewer/internal/features/lookup/domain"
)

// OrderSource fetches one order record by identifier.
// This is a Secondary Port (Driven Port).
type OrderSource interface {
	// FetchOrder returns the decoded record, a *domain.RequestError for a
	// non-2xx answer, or a *domain.ParseError for a malformed body.
	FetchOrder(ctx context.Context, orderUID string) (*domain.OrderRecord, error)
}

// Document is the set of named display targets the client writes into.
// Implementations must not interpret text as markup.
type Document interface {
	// InputValue returns the raw contents of the identifier input field.
	InputValue() string
	// SetText replaces the text of a display target.
	SetText(target domain.Target, text string)
	// ReplaceItems replaces the item listing; nil clears it.
	ReplaceItems(rows []domain.ItemRow)
	// SetVisible shows or hides a region.
	SetVisible(region domain.Region, visible bool)
}
