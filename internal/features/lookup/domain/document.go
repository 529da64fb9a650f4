package domain

// Target names a text display target. Values are the element ids of the page.
// TargetErrorMessage receives the failure text; the rest hold record fields.
type Target string

const (
	TargetOrderUID    Target = "order-uid"
	TargetTrackNumber Target = "track-number"
	TargetCustomerID  Target = "customer-id"
	TargetDateCreated Target = "date-created"

	TargetDeliveryName    Target = "delivery-name"
	TargetDeliveryPhone   Target = "delivery-phone"
	TargetDeliveryEmail   Target = "delivery-email"
	TargetDeliveryCity    Target = "delivery-city"
	TargetDeliveryRegion  Target = "delivery-region"
	TargetDeliveryAddress Target = "delivery-address"
	TargetDeliveryZip     Target = "delivery-zip"

	TargetPaymentTransaction  Target = "payment-transaction"
	TargetPaymentCurrency     Target = "payment-currency"
	TargetPaymentAmount       Target = "payment-amount"
	TargetPaymentDeliveryCost Target = "payment-delivery-cost"
	TargetPaymentGoodsTotal   Target = "payment-goods-total"
	TargetPaymentDate         Target = "payment-date"
	TargetPaymentBank         Target = "payment-bank"
	TargetPaymentProvider     Target = "payment-provider"

	TargetErrorMessage Target = "error-message"
)

// Region is a block of the page whose visibility the client toggles.
type Region string

const (
	RegionLoader  Region = "loader"
	RegionError   Region = "error-message"
	RegionDetails Region = "order-details-container"
)

// Element ids that the client reads or that hold the item rows.
const (
	FormID      = "order-form"
	InputID     = "order-uid-input"
	ItemsBodyID = "items-body"
)

// Section groups field targets for presentation.
type Section string

const (
	SectionOrder    Section = "Order"
	SectionDelivery Section = "Delivery"
	SectionPayment  Section = "Payment"
)

// FieldSpec describes one scalar display target.
type FieldSpec struct {
	Target  Target
	Label   string
	Section Section
}

// Fields lists every scalar target in render order.
var Fields = []FieldSpec{
	{TargetOrderUID, "Order UID", SectionOrder},
	{TargetTrackNumber, "Track number", SectionOrder},
	{TargetCustomerID, "Customer", SectionOrder},
	{TargetDateCreated, "Created", SectionOrder},

	{TargetDeliveryName, "Name", SectionDelivery},
	{TargetDeliveryPhone, "Phone", SectionDelivery},
	{TargetDeliveryEmail, "Email", SectionDelivery},
	{TargetDeliveryCity, "City", SectionDelivery},
	{TargetDeliveryRegion, "Region", SectionDelivery},
	{TargetDeliveryAddress, "Address", SectionDelivery},
	{TargetDeliveryZip, "Zip", SectionDelivery},

	{TargetPaymentTransaction, "Transaction", SectionPayment},
	{TargetPaymentCurrency, "Currency", SectionPayment},
	{TargetPaymentAmount, "Amount", SectionPayment},
	{TargetPaymentDeliveryCost, "Delivery cost", SectionPayment},
	{TargetPaymentGoodsTotal, "Goods total", SectionPayment},
	{TargetPaymentDate, "Paid at", SectionPayment},
	{TargetPaymentBank, "Bank", SectionPayment},
	{TargetPaymentProvider, "Provider", SectionPayment},
}

// ItemColumns are the item table headers, in column order.
var ItemColumns = []string{"Chrt ID", "Name", "Brand", "Price", "Sale", "Total"}

// ItemRow is one rendered line item.
type ItemRow struct {
	ChrtID     string `json:"chrt_id"`
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	Price      string `json:"price"`
	Sale       string `json:"sale"`
	TotalPrice string `json:"total_price"`
}

// Cells returns the row values in column order.
func (r ItemRow) Cells() []string {
	return []string{r.ChrtID, r.Name, r.Brand, r.Price, r.Sale, r.TotalPrice}
}

// Snapshot is a point-in-time copy of a document's visible state.
type Snapshot struct {
	Input   string
	Texts   map[Target]string
	Rows    []ItemRow
	Visible map[Region]bool
}

// Text returns the text written to target, or "".
func (s Snapshot) Text(target Target) string {
	return s.Texts[target]
}

// IsVisible reports whether region is shown.
func (s Snapshot) IsVisible(region Region) bool {
	return s.Visible[region]
}
