package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// OrderRecord is the read-only order returned by the order-lookup service.
type OrderRecord struct {
	// OrderUID is both the lookup key and a displayed value.
	OrderUID string `json:"order_uid" validate:"required"`
	// TrackNumber is the shipment track number.
	TrackNumber string `json:"track_number"`
	// CustomerID identifies the buyer.
	CustomerID string `json:"customer_id"`
	// DateCreated is when the order was placed.
	DateCreated Timestamp `json:"date_created"`
	// Delivery is the recipient and address block.
	Delivery *Delivery `json:"delivery" validate:"required"`
	// Payment is the payment summary.
	Payment *Payment `json:"payment" validate:"required"`
	// Items are the line items in display order. A null element is rejected.
	Items []*LineItem `json:"items" validate:"required,dive,required"`
}

// Delivery holds the recipient details. All fields are display-only.
type Delivery struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Address string `json:"address"`
	Zip     string `json:"zip"`
}

// Payment holds the payment summary.
type Payment struct {
	Transaction  string  `json:"transaction"`
	Currency     string  `json:"currency"`
	Amount       float64 `json:"amount"`
	DeliveryCost float64 `json:"delivery_cost"`
	GoodsTotal   float64 `json:"goods_total"`
	// PaymentDt is a Unix epoch in seconds, bounded by the range a browser
	// Date can hold.
	PaymentDt int64  `json:"payment_dt" validate:"min=-8640000000000,max=8640000000000"`
	Bank      string `json:"bank"`
	Provider  string `json:"provider"`
}

// MaxPaymentDt is the largest |payment_dt| accepted, 1e8 days in seconds.
const MaxPaymentDt = 8_640_000_000_000

// PaidAt converts PaymentDt from seconds to an instant.
func (p Payment) PaidAt() time.Time {
	return time.Unix(p.PaymentDt, 0)
}

// LineItem is one purchased product. Money values are shown verbatim.
type LineItem struct {
	ChrtID     int64   `json:"chrt_id"`
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	Price      float64 `json:"price"`
	Sale       float64 `json:"sale"`
	TotalPrice float64 `json:"total_price"`
}

// timestampLayouts are tried in order when decoding date_created.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is an ISO-8601 instant. Values without a zone are read as UTC.
type Timestamp time.Time

// UnmarshalJSON accepts an ISO-8601 string and rejects anything else.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*t = Timestamp(time.Time{})
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date_created must be a string: %w", err)
	}

	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = Timestamp(parsed)
			return nil
		}
	}
	return fmt.Errorf("date_created %q is not an ISO-8601 timestamp", s)
}

// MarshalJSON writes the instant in RFC 3339 form.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(time.RFC3339Nano))
}

// Time returns the underlying instant.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// DecodeOrder decodes and validates a response body. Every failure is a *ParseError.
func DecodeOrder(body []byte) (*OrderRecord, error) {
	var record OrderRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, &ParseError{Err: err}
	}

	if err := validate.Struct(&record); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := make([]string, 0, len(validationErrors))
			for _, fieldError := range validationErrors {
				messages = append(messages, fmt.Sprintf("field %s: %s", fieldError.Namespace(), fieldError.Tag()))
			}
			return nil, &ParseError{Err: fmt.Errorf("invalid order shape: %s", strings.Join(messages, "; "))}
		}
		return nil, &ParseError{Err: err}
	}

	// null or missing date_created decodes to the zero instant.
	if record.DateCreated.Time().IsZero() {
		return nil, &ParseError{Err: errors.New("invalid order shape: field date_created: required")}
	}

	return &record, nil
}
