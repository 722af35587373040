package model

import (
	"math"
	"time"

	domainErrors "github.com/mkholodov/storefront/internal/domain/errors"
)

// priceEpsilon is one minor currency unit; monetary identity checks allow
// at most this much rounding drift.
const priceEpsilon = 0.01

// OrderItem is an immutable snapshot of a purchased product. It is captured
// at checkout and never re-read from the live product record.
type OrderItem struct {
	ProductID string  `json:"product"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// ShippingAddress is the destination snapshot stored on the order.
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// PaymentResult records a confirmed payment.
type PaymentResult struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	PayerEmail    string `json:"payerEmail"`
}

// Order is a placed order. Owner and item snapshots are immutable after
// creation; status and payment/delivery flags move only forward.
type Order struct {
	ID              string
	Number          string
	UserID          int64
	Items           []OrderItem
	ShippingAddress ShippingAddress
	PaymentMethod   string
	PaymentResult   *PaymentResult
	ItemsPrice      float64
	ShippingPrice   float64
	TaxPrice        float64
	TotalPrice      float64
	IsPaid          bool
	PaidAt          *time.Time
	IsDelivered     bool
	DeliveredAt     *time.Time
	Status          OrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderDraft carries checkout input for order creation.
type OrderDraft struct {
	Items           []OrderItem
	ShippingAddress ShippingAddress
	PaymentMethod   string
	ItemsPrice      float64
	ShippingPrice   float64
	TaxPrice        float64
	TotalPrice      float64
}

// NewOrder validates a draft and builds a pending order for the given owner.
// Item snapshots are copied so later mutation of the draft cannot alter the
// order.
func NewOrder(userID int64, d OrderDraft) (*Order, error) {
	if userID == 0 {
		return nil, domainErrors.NewValidation("owner", "missing")
	}
	if len(d.Items) == 0 {
		return nil, domainErrors.NewValidation("items", "must not be empty")
	}
	for _, it := range d.Items {
		if it.ProductID == "" {
			return nil, domainErrors.NewValidation("items.product", "missing")
		}
		if it.Quantity <= 0 {
			return nil, domainErrors.NewValidation("items.quantity", "must be positive")
		}
		if it.UnitPrice < 0 {
			return nil, domainErrors.NewValidation("items.unitPrice", "must not be negative")
		}
	}
	if err := validateShippingAddress(d.ShippingAddress); err != nil {
		return nil, err
	}
	if d.PaymentMethod == "" {
		return nil, domainErrors.NewValidation("paymentMethod", "missing")
	}
	for field, price := range map[string]float64{
		"itemsPrice":    d.ItemsPrice,
		"shippingPrice": d.ShippingPrice,
		"taxPrice":      d.TaxPrice,
		"totalPrice":    d.TotalPrice,
	} {
		if price < 0 {
			return nil, domainErrors.NewValidation(field, "must not be negative")
		}
	}
	if math.Abs(d.TotalPrice-(d.ItemsPrice+d.ShippingPrice+d.TaxPrice)) > priceEpsilon {
		return nil, domainErrors.NewValidation("totalPrice", "must equal itemsPrice + shippingPrice + taxPrice")
	}

	items := make([]OrderItem, len(d.Items))
	copy(items, d.Items)

	return &Order{
		UserID:          userID,
		Items:           items,
		ShippingAddress: d.ShippingAddress,
		PaymentMethod:   d.PaymentMethod,
		ItemsPrice:      d.ItemsPrice,
		ShippingPrice:   d.ShippingPrice,
		TaxPrice:        d.TaxPrice,
		TotalPrice:      d.TotalPrice,
		Status:          OrderStatusPending,
	}, nil
}

func validateShippingAddress(a ShippingAddress) error {
	fields := map[string]string{
		"shippingAddress.street":  a.Street,
		"shippingAddress.city":    a.City,
		"shippingAddress.state":   a.State,
		"shippingAddress.zipCode": a.ZipCode,
		"shippingAddress.country": a.Country,
	}
	for field, value := range fields {
		if value == "" {
			return domainErrors.NewValidation(field, "missing")
		}
	}
	return nil
}

// TransitionTo advances order status. Shipping or delivering an unpaid
// order is rejected.
func (o *Order) TransitionTo(to OrderStatus) error {
	if err := Transition(o.Status, to); err != nil {
		return err
	}
	if (to == OrderStatusShipped || to == OrderStatusDelivered) && !o.IsPaid {
		return &domainErrors.TransitionError{From: string(o.Status), To: string(to)}
	}
	o.Status = to
	return nil
}

// MarkPaid confirms payment. Calling it on an already paid order is a
// no-op; the original result and timestamp survive. Cancelled orders do
// not accept payment.
func (o *Order) MarkPaid(result PaymentResult, now time.Time) error {
	if o.IsPaid {
		return nil
	}
	if o.Status == OrderStatusCancelled {
		return &domainErrors.TransitionError{From: string(o.Status), To: "paid"}
	}
	o.IsPaid = true
	paidAt := now
	o.PaidAt = &paidAt
	o.PaymentResult = &result
	return nil
}

// MarkDelivered flips the delivery flag exactly once; repeated calls are
// no-ops.
func (o *Order) MarkDelivered(now time.Time) error {
	if o.IsDelivered {
		return nil
	}
	if o.Status == OrderStatusCancelled {
		return &domainErrors.TransitionError{From: string(o.Status), To: "delivered"}
	}
	o.IsDelivered = true
	deliveredAt := now
	o.DeliveredAt = &deliveredAt
	return nil
}

// AdminOrderPatch is the admin-scoped write command for a single order
// transition.
type AdminOrderPatch struct {
	Status        *OrderStatus
	IsPaid        *bool
	IsDelivered   *bool
	PaymentResult *PaymentResult
}

// Apply mutates the order per the patch. Flags are applied before the
// status change so a single patch can both confirm payment and advance
// fulfillment. Clearing a set flag is rejected.
func (p AdminOrderPatch) Apply(o *Order, now time.Time) error {
	if p.IsPaid != nil && !*p.IsPaid && o.IsPaid {
		return &domainErrors.TransitionError{From: "paid", To: "unpaid"}
	}
	if p.IsDelivered != nil && !*p.IsDelivered && o.IsDelivered {
		return &domainErrors.TransitionError{From: "delivered", To: "undelivered"}
	}

	wantsPaid := p.IsPaid != nil && *p.IsPaid
	if wantsPaid || (p.PaymentResult != nil && !o.IsPaid) {
		var result PaymentResult
		if p.PaymentResult != nil {
			result = *p.PaymentResult
		}
		if err := o.MarkPaid(result, now); err != nil {
			return err
		}
	}
	if p.IsDelivered != nil && *p.IsDelivered {
		if err := o.MarkDelivered(now); err != nil {
			return err
		}
	}
	if p.Status != nil {
		if err := o.TransitionTo(*p.Status); err != nil {
			return err
		}
	}
	return nil
}
