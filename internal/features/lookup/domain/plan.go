package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// TimeFormatter renders an instant as locale text.
type TimeFormatter interface {
	FormatTime(t time.Time) string
}

// FieldText is one (target, text) write.
type FieldText struct {
	Target Target `json:"target"`
	Text   string `json:"text"`
}

// RenderPlan is everything a successful lookup writes, in write order.
type RenderPlan struct {
	Fields []FieldText `json:"fields"`
	Rows   []ItemRow   `json:"rows"`
}

// Text returns the planned text for target.
func (p RenderPlan) Text(target Target) (string, bool) {
	for _, f := range p.Fields {
		if f.Target == target {
			return f.Text, true
		}
	}
	return "", false
}

// BuildPlan maps a record onto the display targets. It has no side effects.
func BuildPlan(record *OrderRecord, formatter TimeFormatter) RenderPlan {
	d := record.Delivery
	p := record.Payment

	fields := []FieldText{
		{TargetOrderUID, record.OrderUID},
		{TargetTrackNumber, record.TrackNumber},
		{TargetCustomerID, record.CustomerID},
		{TargetDateCreated, formatter.FormatTime(record.DateCreated.Time())},

		{TargetDeliveryName, d.Name},
		{TargetDeliveryPhone, d.Phone},
		{TargetDeliveryEmail, d.Email},
		{TargetDeliveryCity, d.City},
		{TargetDeliveryRegion, d.Region},
		{TargetDeliveryAddress, d.Address},
		{TargetDeliveryZip, d.Zip},

		{TargetPaymentTransaction, p.Transaction},
		{TargetPaymentCurrency, p.Currency},
		{TargetPaymentAmount, formatNumber(p.Amount)},
		{TargetPaymentDeliveryCost, formatNumber(p.DeliveryCost)},
		{TargetPaymentGoodsTotal, formatNumber(p.GoodsTotal)},
		{TargetPaymentDate, formatter.FormatTime(p.PaidAt())},
		{TargetPaymentBank, p.Bank},
		{TargetPaymentProvider, p.Provider},
	}

	rows := make([]ItemRow, 0, len(record.Items))
	for _, item := range record.Items {
		rows = append(rows, ItemRow{
			ChrtID:     strconv.FormatInt(item.ChrtID, 10),
			Name:       item.Name,
			Brand:      item.Brand,
			Price:      formatNumber(item.Price),
			Sale:       formatNumber(item.Sale),
			TotalPrice: formatNumber(item.TotalPrice),
		})
	}

	return RenderPlan{Fields: fields, Rows: rows}
}

// formatNumber prints the shortest decimal that round-trips, e.g. 50, 10.5.
// Magnitudes of 1e21 and above or below 1e-6 switch to exponent form with an
// unpadded exponent (1e+21, 1.5e-7), as browsers print them.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}

	if abs := math.Abs(v); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
