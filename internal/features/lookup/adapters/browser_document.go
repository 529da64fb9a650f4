package adapter

import (
	"fmt"
	"sync"

	"order-viewer/internal/core/logger"
	"order-viewer/internal/features/lookup/domain"

	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// scriptRunner evaluates a JS function on a page. *rod.Page satisfies it.
type scriptRunner interface {
	Eval(js string, args ...interface{}) (*proto.RuntimeRemoteObject, error)
}

// Scripts write text through textContent and build rows with createElement,
// so values are never parsed as markup.
const (
	readInputJS = `(id) => {
		const el = document.getElementById(id);
		return el ? el.value : "";
	}`

	setTextJS = `(id, text) => {
		const el = document.getElementById(id);
		if (el) el.textContent = text;
	}`

	setVisibleJS = `(id, visible) => {
		const el = document.getElementById(id);
		if (el) el.classList.toggle("hidden", !visible);
	}`

	replaceItemsJS = `(id, rows) => {
		const body = document.getElementById(id);
		if (!body) return;
		body.replaceChildren();
		for (const row of rows || []) {
			const tr = document.createElement("tr");
			for (const value of [row.chrt_id, row.name, row.brand, row.price, row.sale, row.total_price]) {
				const td = document.createElement("td");
				td.textContent = value;
				tr.appendChild(td);
			}
			body.appendChild(tr);
		}
	}`
)

// BrowserDocument implements the Document interface on a live page's DOM.
// Script failures do not stop the lifecycle; they are logged and the first
// one is kept for Err.
type BrowserDocument struct {
	page   scriptRunner
	logger *zap.Logger

	mu  sync.Mutex
	err error
}

// NewBrowserDocument wraps a page, usually a *rod.Page showing the viewer.
func NewBrowserDocument(page scriptRunner) *BrowserDocument {
	return &BrowserDocument{
		page:   page,
		logger: logger.Get(),
	}
}

// InputValue reads #order-uid-input.
func (d *BrowserDocument) InputValue() string {
	res, err := d.page.Eval(readInputJS, domain.InputID)
	if err != nil {
		d.record("read input", err)
		return ""
	}
	return res.Value.Str()
}

// SetText replaces the text of a display target.
func (d *BrowserDocument) SetText(target domain.Target, text string) {
	if _, err := d.page.Eval(setTextJS, string(target), text); err != nil {
		d.record("set text "+string(target), err)
	}
}

// ReplaceItems rebuilds the rows of #items-body.
func (d *BrowserDocument) ReplaceItems(rows []domain.ItemRow) {
	if rows == nil {
		rows = []domain.ItemRow{}
	}
	if _, err := d.page.Eval(replaceItemsJS, domain.ItemsBodyID, rows); err != nil {
		d.record("replace items", err)
	}
}

// SetVisible toggles the hidden class of a region.
func (d *BrowserDocument) SetVisible(region domain.Region, visible bool) {
	if _, err := d.page.Eval(setVisibleJS, string(region), visible); err != nil {
		d.record("set visible "+string(region), err)
	}
}

// Err returns the first script failure, if any.
func (d *BrowserDocument) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

func (d *BrowserDocument) record(op string, err error) {
	d.logger.Warn("Browser document write failed", zap.String("op", op), zap.Error(err))

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err == nil {
		d.err = fmt.Errorf("%s: %w", op, err)
	}
}
