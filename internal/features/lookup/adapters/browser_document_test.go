package adapter

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"order-viewer/internal/core/config"
	"order-viewer/internal/features/lookup/domain"

	"github.com/go-rod/rod/lib/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysmood/gson"
)

type evalCall struct {
	js   string
	args []interface{}
}

// fakePage records every script evaluation.
type fakePage struct {
	calls  []evalCall
	result interface{}
	err    error
}

func (p *fakePage) Eval(js string, args ...interface{}) (*proto.RuntimeRemoteObject, error) {
	p.calls = append(p.calls, evalCall{js: js, args: args})
	if p.err != nil {
		return nil, p.err
	}
	return &proto.RuntimeRemoteObject{Value: gson.New(p.result)}, nil
}

func TestBrowserDocument_InputValue(t *testing.T) {
	page := &fakePage{result: " ABC123 "}
	doc := NewBrowserDocument(page)

	assert.Equal(t, " ABC123 ", doc.InputValue())
	require.Len(t, page.calls, 1)
	assert.Equal(t, readInputJS, page.calls[0].js)
	assert.Equal(t, []interface{}{domain.InputID}, page.calls[0].args)
}

func TestBrowserDocument_SetText(t *testing.T) {
	page := &fakePage{}
	doc := NewBrowserDocument(page)

	doc.SetText(domain.TargetOrderUID, "<b>x</b>")

	require.Len(t, page.calls, 1)
	assert.Equal(t, setTextJS, page.calls[0].js)
	assert.Contains(t, setTextJS, "textContent")
	assert.NotContains(t, setTextJS, "innerHTML")
	assert.Equal(t, []interface{}{"order-uid", "<b>x</b>"}, page.calls[0].args)
	assert.NoError(t, doc.Err())
}

func TestBrowserDocument_SetVisible(t *testing.T) {
	page := &fakePage{}
	doc := NewBrowserDocument(page)

	doc.SetVisible(domain.RegionLoader, true)
	doc.SetVisible(domain.RegionDetails, false)

	require.Len(t, page.calls, 2)
	assert.Equal(t, []interface{}{"loader", true}, page.calls[0].args)
	assert.Equal(t, []interface{}{"order-details-container", false}, page.calls[1].args)
}

func TestBrowserDocument_ReplaceItems(t *testing.T) {
	page := &fakePage{}
	doc := NewBrowserDocument(page)

	rows := []domain.ItemRow{{ChrtID: "1", Name: "Widget"}}
	doc.ReplaceItems(rows)
	doc.ReplaceItems(nil)

	require.Len(t, page.calls, 2)
	assert.Equal(t, replaceItemsJS, page.calls[0].js)
	assert.NotContains(t, replaceItemsJS, "innerHTML")
	assert.Equal(t, []interface{}{domain.ItemsBodyID, rows}, page.calls[0].args)
	assert.Equal(t, []interface{}{domain.ItemsBodyID, []domain.ItemRow{}}, page.calls[1].args)
}

func TestBrowserDocument_ErrorsAreKept(t *testing.T) {
	page := &fakePage{err: errors.New("target closed")}
	doc := NewBrowserDocument(page)

	assert.Equal(t, "", doc.InputValue())
	doc.SetText(domain.TargetOrderUID, "x")

	err := doc.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read input")
	assert.Contains(t, err.Error(), "target closed")
}

// TestBrowserSession_Launch starts a real Chromium when BROWSER_BIN is set.
func TestBrowserSession_Launch(t *testing.T) {
	bin := os.Getenv("BROWSER_BIN")
	if bin == "" {
		t.Skip("BROWSER_BIN not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	session, err := LaunchBrowser(ctx, config.BrowserConfig{Bin: bin, Headless: true})
	require.NoError(t, err)
	defer session.Close()

	_, err = session.Document()
	assert.Error(t, err)
}
