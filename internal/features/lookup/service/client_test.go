package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"order-viewer/internal/core/logger"
	"order-viewer/internal/features/lookup/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// MockOrderSource is a mock implementation of ports.OrderSource.
type MockOrderSource struct {
	mock.Mock
}

func (m *MockOrderSource) FetchOrder(ctx context.Context, orderUID string) (*domain.OrderRecord, error) {
	args := m.Called(ctx, orderUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderRecord), args.Error(1)
}

// recordingDocument keeps the document state and a log of every write.
type recordingDocument struct {
	mu      sync.Mutex
	input   string
	ops     []string
	texts   map[domain.Target]string
	rows    []domain.ItemRow
	visible map[domain.Region]bool
	// rowsAtLoaderShow captures the listing length when the loader appears.
	rowsAtLoaderShow int
}

func newRecordingDocument() *recordingDocument {
	return &recordingDocument{
		texts:            map[domain.Target]string{},
		visible:          map[domain.Region]bool{},
		rowsAtLoaderShow: -1,
	}
}

func (d *recordingDocument) InputValue() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.input
}

func (d *recordingDocument) SetText(target domain.Target, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ops = append(d.ops, "text:"+string(target))
	d.texts[target] = text
}

func (d *recordingDocument) ReplaceItems(rows []domain.ItemRow) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ops = append(d.ops, fmt.Sprintf("items:%d", len(rows)))
	d.rows = append([]domain.ItemRow(nil), rows...)
}

func (d *recordingDocument) SetVisible(region domain.Region, visible bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	verb := "hide:"
	if visible {
		verb = "show:"
		if region == domain.RegionLoader {
			d.rowsAtLoaderShow = len(d.rows)
		}
	}
	d.ops = append(d.ops, verb+string(region))
	d.visible[region] = visible
}

func (d *recordingDocument) count(op string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, o := range d.ops {
		if o == op {
			n++
		}
	}
	return n
}

func (d *recordingDocument) visibleRegions() []domain.Region {
	d.mu.Lock()
	defer d.mu.Unlock()
	var regions []domain.Region
	for _, r := range []domain.Region{domain.RegionLoader, domain.RegionError, domain.RegionDetails} {
		if d.visible[r] {
			regions = append(regions, r)
		}
	}
	return regions
}

type utcFormatter struct{}

func (utcFormatter) FormatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}

func sampleRecord() *domain.OrderRecord {
	return &domain.OrderRecord{
		OrderUID:    "ABC123",
		TrackNumber: "T1",
		CustomerID:  "C1",
		DateCreated: domain.Timestamp(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)),
		Delivery:    &domain.Delivery{Name: "Jane", Phone: "+1", Email: "j@e.co", City: "X", Region: "Y", Address: "Z", Zip: "000"},
		Payment: &domain.Payment{
			Transaction: "tx1", Currency: "USD", Amount: 100, DeliveryCost: 10, GoodsTotal: 90,
			PaymentDt: 1609459200, Bank: "B", Provider: "P",
		},
		Items: []*domain.LineItem{
			{ChrtID: 1, Name: "Widget", Brand: "Acme", Price: 50, Sale: 0, TotalPrice: 50},
		},
	}
}

func TestOrderDetailsClient_Submit_Success(t *testing.T) {
	source := new(MockOrderSource)
	doc := newRecordingDocument()
	client := NewOrderDetailsClient(source, doc, utcFormatter{})
	ctx := context.Background()

	source.On("FetchOrder", ctx, "ABC123").Return(sampleRecord(), nil).Once()

	outcome, err := client.Submit(ctx, "  ABC123\t")
	require.NoError(t, err)
	assert.Equal(t, OutcomeRendered, outcome)
	source.AssertExpectations(t)

	assert.Equal(t, []domain.Region{domain.RegionDetails}, doc.visibleRegions())
	assert.Equal(t, "ABC123", doc.texts[domain.TargetOrderUID])
	assert.Equal(t, "2021-01-01 00:00:00", doc.texts[domain.TargetDateCreated])
	assert.Equal(t, "2021-01-01 00:00:00", doc.texts[domain.TargetPaymentDate])
	assert.Equal(t, "100", doc.texts[domain.TargetPaymentAmount])

	require.Len(t, doc.rows, 1)
	assert.Equal(t, []string{"1", "Widget", "Acme", "50", "0", "50"}, doc.rows[0].Cells())

	state := client.State()
	assert.Equal(t, domain.PhaseSuccess, state.Phase)
	assert.Equal(t, "ABC123", state.Order.OrderUID)
}

func TestOrderDetailsClient_Submit_WriteOrder(t *testing.T) {
	source := new(MockOrderSource)
	doc := newRecordingDocument()
	client := NewOrderDetailsClient(source, doc, utcFormatter{})

	source.On("FetchOrder", mock.Anything, "ABC123").Return(sampleRecord(), nil).Once()

	_, err := client.Submit(context.Background(), "ABC123")
	require.NoError(t, err)

	expected := []string{
		"hide:" + string(domain.RegionDetails),
		"hide:" + string(domain.RegionError),
		"items:0",
		"show:" + string(domain.RegionLoader),
	}
	for _, spec := range domain.Fields {
		expected = append(expected, "text:"+string(spec.Target))
	}
	expected = append(expected,
		"items:1",
		"show:"+string(domain.RegionDetails),
		"hide:"+string(domain.RegionLoader),
	)

	assert.Equal(t, expected, doc.ops)
	assert.Equal(t, 0, doc.rowsAtLoaderShow)
}

func TestOrderDetailsClient_Submit_BlankIsNoOp(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		source := new(MockOrderSource)
		doc := newRecordingDocument()
		client := NewOrderDetailsClient(source, doc, utcFormatter{})

		outcome, err := client.Submit(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, OutcomeIgnored, outcome)

		source.AssertNotCalled(t, "FetchOrder", mock.Anything, mock.Anything)
		assert.Empty(t, doc.ops)
		assert.Equal(t, domain.PhaseIdle, client.State().Phase)
	}
}

func TestOrderDetailsClient_Submit_BlankKeepsPriorState(t *testing.T) {
	source := new(MockOrderSource)
	doc := newRecordingDocument()
	client := NewOrderDetailsClient(source, doc, utcFormatter{})

	source.On("FetchOrder", mock.Anything, "ABC123").Return(sampleRecord(), nil).Once()
	_, err := client.Submit(context.Background(), "ABC123")
	require.NoError(t, err)

	opsBefore := len(doc.ops)
	outcome, err := client.Submit(context.Background(), "  ")
	require.NoError(t, err)

	assert.Equal(t, OutcomeIgnored, outcome)
	assert.Len(t, doc.ops, opsBefore)
	assert.Equal(t, []domain.Region{domain.RegionDetails}, doc.visibleRegions())
	assert.Equal(t, domain.PhaseSuccess, client.State().Phase)
}

func TestOrderDetailsClient_Submit_NotFound(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	defer logger.Replace(zap.New(core))()

	source := new(MockOrderSource)
	doc := newRecordingDocument()
	client := NewOrderDetailsClient(source, doc, utcFormatter{})

	source.On("FetchOrder", mock.Anything, "missing").Return(nil, &domain.RequestError{StatusCode: 404}).Once()

	outcome, err := client.Submit(context.Background(), "missing")
	assert.Equal(t, OutcomeFailed, outcome)

	var reqErr *domain.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, 404, reqErr.StatusCode)

	assert.Equal(t, []domain.Region{domain.RegionError}, doc.visibleRegions())
	assert.Contains(t, doc.texts[domain.TargetErrorMessage], "404")
	assert.Empty(t, doc.rows)
	assert.Equal(t, 1, doc.count("hide:"+string(domain.RegionLoader)))
	assert.Equal(t, 0, doc.count("show:"+string(domain.RegionDetails)))

	state := client.State()
	assert.Equal(t, domain.PhaseError, state.Phase)
	assert.Equal(t, "request failed with status: 404", state.Message)

	entries := logs.FilterMessage("Order lookup failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "missing", entries[0].ContextMap()["order_uid"])
}

func TestOrderDetailsClient_Submit_ParseError(t *testing.T) {
	source := new(MockOrderSource)
	doc := newRecordingDocument()
	client := NewOrderDetailsClient(source, doc, utcFormatter{})

	parseErr := &domain.ParseError{Err: errors.New("unexpected end of JSON input")}
	source.On("FetchOrder", mock.Anything, "bad").Return(nil, parseErr).Once()

	outcome, err := client.Submit(context.Background(), "bad")
	assert.Equal(t, OutcomeFailed, outcome)
	assert.ErrorIs(t, err, parseErr)

	assert.Equal(t, []domain.Region{domain.RegionError}, doc.visibleRegions())
	assert.Equal(t, "failed to parse order: unexpected end of JSON input", doc.texts[domain.TargetErrorMessage])
}

func TestOrderDetailsClient_Submit_ResetClearsPreviousLookup(t *testing.T) {
	source := new(MockOrderSource)
	doc := newRecordingDocument()
	client := NewOrderDetailsClient(source, doc, utcFormatter{})

	source.On("FetchOrder", mock.Anything, "ABC123").Return(sampleRecord(), nil).Once()
	source.On("FetchOrder", mock.Anything, "gone").Return(nil, &domain.RequestError{StatusCode: 500}).Once()

	_, err := client.Submit(context.Background(), "ABC123")
	require.NoError(t, err)
	require.Len(t, doc.rows, 1)

	_, err = client.Submit(context.Background(), "gone")
	require.Error(t, err)

	assert.Equal(t, []domain.Region{domain.RegionError}, doc.visibleRegions())
	assert.Empty(t, doc.rows)
	assert.Equal(t, 0, doc.rowsAtLoaderShow)
}

// blockingSource returns a prepared result per identifier once released.
type blockingSource struct {
	started map[string]chan struct{}
	release map[string]chan struct{}
	records map[string]*domain.OrderRecord
}

func (s *blockingSource) FetchOrder(ctx context.Context, orderUID string) (*domain.OrderRecord, error) {
	close(s.started[orderUID])
	<-s.release[orderUID]
	return s.records[orderUID], nil
}

func TestOrderDetailsClient_Submit_StaleResponseDiscarded(t *testing.T) {
	first := sampleRecord()
	second := sampleRecord()
	second.OrderUID = "NEWER"

	source := &blockingSource{
		started: map[string]chan struct{}{"ABC123": make(chan struct{}), "NEWER": make(chan struct{})},
		release: map[string]chan struct{}{"ABC123": make(chan struct{}), "NEWER": make(chan struct{})},
		records: map[string]*domain.OrderRecord{"ABC123": first, "NEWER": second},
	}
	doc := newRecordingDocument()
	client := NewOrderDetailsClient(source, doc, utcFormatter{})

	firstDone := make(chan Outcome, 1)
	go func() {
		outcome, _ := client.Submit(context.Background(), "ABC123")
		firstDone <- outcome
	}()
	<-source.started["ABC123"]

	secondDone := make(chan Outcome, 1)
	go func() {
		outcome, _ := client.Submit(context.Background(), "NEWER")
		secondDone <- outcome
	}()
	<-source.started["NEWER"]

	// The newer lookup resolves first, then the older one arrives late.
	close(source.release["NEWER"])
	assert.Equal(t, OutcomeRendered, <-secondDone)

	close(source.release["ABC123"])
	assert.Equal(t, OutcomeDiscarded, <-firstDone)

	assert.Equal(t, "NEWER", doc.texts[domain.TargetOrderUID])
	assert.Equal(t, "NEWER", client.State().Order.OrderUID)
	assert.Equal(t, []domain.Region{domain.RegionDetails}, doc.visibleRegions())
	assert.Equal(t, 1, doc.count("hide:"+string(domain.RegionLoader)))
}

func TestOrderDetailsClient_SubmitFromInput(t *testing.T) {
	source := new(MockOrderSource)
	doc := newRecordingDocument()
	doc.input = " ABC123 "
	client := NewOrderDetailsClient(source, doc, utcFormatter{})

	source.On("FetchOrder", mock.Anything, "ABC123").Return(sampleRecord(), nil).Once()

	outcome, err := client.SubmitFromInput(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeRendered, outcome)
	source.AssertExpectations(t)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "ignored", OutcomeIgnored.String())
	assert.Equal(t, "rendered", OutcomeRendered.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "discarded", OutcomeDiscarded.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
