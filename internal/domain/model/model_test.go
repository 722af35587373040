package model

import (
	stdErrors "errors"
	"testing"
	"time"

	domainErrors "github.com/mkholodov/storefront/internal/domain/errors"
)

func validDraft() OrderDraft {
	return OrderDraft{
		Items: []OrderItem{
			{ProductID: "p-1", Name: "mug", UnitPrice: 10.00, Quantity: 2, Image: "mug.jpg"},
			{ProductID: "p-2", Name: "spoon", UnitPrice: 5.00, Quantity: 1, Image: "spoon.jpg"},
		},
		ShippingAddress: ShippingAddress{
			Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "US",
		},
		PaymentMethod: "paypal",
		ItemsPrice:    25.00,
		ShippingPrice: 4.99,
		TaxPrice:      2.50,
		TotalPrice:    32.49,
	}
}

func TestNewOrderSuccess(t *testing.T) {
	order, err := NewOrder(7, validDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != OrderStatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if order.UserID != 7 {
		t.Fatalf("expected owner 7, got %d", order.UserID)
	}
	if order.IsPaid || order.IsDelivered {
		t.Fatal("new order must be unpaid and undelivered")
	}
	if order.TotalPrice != 32.49 {
		t.Fatalf("unexpected total %v", order.TotalPrice)
	}
}

func TestNewOrderCopiesItemSnapshots(t *testing.T) {
	draft := validDraft()
	order, err := NewOrder(1, draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	draft.Items[0].UnitPrice = 999
	draft.Items[0].Name = "changed"
	if order.Items[0].UnitPrice != 10.00 || order.Items[0].Name != "mug" {
		t.Fatal("order items must be snapshots, not aliases of the draft slice")
	}
}

func TestNewOrderValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*OrderDraft)
		field  string
	}{
		{"empty items", func(d *OrderDraft) { d.Items = nil }, "items"},
		{"zero quantity", func(d *OrderDraft) { d.Items[0].Quantity = 0 }, "items.quantity"},
		{"negative unit price", func(d *OrderDraft) { d.Items[0].UnitPrice = -1 }, "items.unitPrice"},
		{"missing product ref", func(d *OrderDraft) { d.Items[0].ProductID = "" }, "items.product"},
		{"missing street", func(d *OrderDraft) { d.ShippingAddress.Street = "" }, "shippingAddress.street"},
		{"missing country", func(d *OrderDraft) { d.ShippingAddress.Country = "" }, "shippingAddress.country"},
		{"missing payment method", func(d *OrderDraft) { d.PaymentMethod = "" }, "paymentMethod"},
		{"negative shipping", func(d *OrderDraft) { d.ShippingPrice = -0.01; d.TotalPrice = 27.49 }, "shippingPrice"},
		{"broken total", func(d *OrderDraft) { d.TotalPrice = 30.00 }, "totalPrice"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)
			_, err := NewOrder(1, draft)
			var ve *domainErrors.ValidationError
			if !stdErrors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, ve.Field)
			}
		})
	}
}

func TestNewOrderToleratesRoundingDrift(t *testing.T) {
	draft := validDraft()
	draft.TotalPrice = 32.4899999
	if _, err := NewOrder(1, draft); err != nil {
		t.Fatalf("drift within one minor unit must pass, got %v", err)
	}
}

func TestTransitionTable(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{OrderStatusPending, OrderStatusProcessing},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusProcessing, OrderStatusShipped},
		{OrderStatusProcessing, OrderStatusCancelled},
		{OrderStatusShipped, OrderStatusDelivered},
	}
	for _, tc := range allowed {
		if err := Transition(tc.from, tc.to); err != nil {
			t.Fatalf("expected %s -> %s to be legal: %v", tc.from, tc.to, err)
		}
	}

	forbidden := []struct{ from, to OrderStatus }{
		{OrderStatusPending, OrderStatusShipped},
		{OrderStatusPending, OrderStatusDelivered},
		{OrderStatusShipped, OrderStatusCancelled},
		{OrderStatusShipped, OrderStatusProcessing},
		{OrderStatusDelivered, OrderStatusProcessing},
		{OrderStatusDelivered, OrderStatusCancelled},
		{OrderStatusCancelled, OrderStatusPending},
		{OrderStatusCancelled, OrderStatusProcessing},
	}
	for _, tc := range forbidden {
		err := Transition(tc.from, tc.to)
		if !stdErrors.Is(err, domainErrors.ErrInvalidTransition) {
			t.Fatalf("expected %s -> %s to be rejected, got %v", tc.from, tc.to, err)
		}
	}
}

func TestTransitionSameStateIsNoop(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusDelivered, OrderStatusCancelled} {
		if err := Transition(s, s); err != nil {
			t.Fatalf("expected %s -> %s to be a no-op, got %v", s, s, err)
		}
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	err := Transition(OrderStatusPending, OrderStatus("refunded"))
	if !stdErrors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}

func TestTerminalStates(t *testing.T) {
	if !Terminal(OrderStatusDelivered) || !Terminal(OrderStatusCancelled) {
		t.Fatal("delivered and cancelled must be terminal")
	}
	if Terminal(OrderStatusPending) || Terminal(OrderStatusProcessing) || Terminal(OrderStatusShipped) {
		t.Fatal("non-terminal status reported as terminal")
	}
}

func TestTransitionToRequiresPaymentBeforeShipment(t *testing.T) {
	order, _ := NewOrder(1, validDraft())
	if err := order.TransitionTo(OrderStatusProcessing); err != nil {
		t.Fatalf("pending -> processing failed: %v", err)
	}

	err := order.TransitionTo(OrderStatusShipped)
	if !stdErrors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected unpaid shipment to be rejected, got %v", err)
	}
	if order.Status != OrderStatusProcessing {
		t.Fatalf("order must be unchanged after rejected transition, got %s", order.Status)
	}

	if err := order.MarkPaid(PaymentResult{TransactionID: "tx-1"}, time.Now()); err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	if err := order.TransitionTo(OrderStatusShipped); err != nil {
		t.Fatalf("paid order must ship: %v", err)
	}
}

func TestMarkPaidIdempotent(t *testing.T) {
	order, _ := NewOrder(1, validDraft())
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if err := order.MarkPaid(PaymentResult{TransactionID: "tx-1", PayerEmail: "a@b.c"}, first); err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}

	if err := order.MarkPaid(PaymentResult{TransactionID: "tx-2"}, first.Add(time.Hour)); err != nil {
		t.Fatalf("repeated mark paid must be a no-op, got %v", err)
	}
	if order.PaymentResult.TransactionID != "tx-1" {
		t.Fatalf("original payment result must survive, got %s", order.PaymentResult.TransactionID)
	}
	if !order.PaidAt.Equal(first) {
		t.Fatalf("paidAt must be set exactly once, got %v", order.PaidAt)
	}
}

func TestMarkPaidRejectedOnCancelledOrder(t *testing.T) {
	order, _ := NewOrder(1, validDraft())
	if err := order.TransitionTo(OrderStatusCancelled); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	err := order.MarkPaid(PaymentResult{TransactionID: "tx-1"}, time.Now())
	if !stdErrors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected payment on cancelled order to be rejected, got %v", err)
	}
	if order.IsPaid {
		t.Fatal("cancelled order must stay unpaid")
	}
}

func TestMarkDeliveredIdempotent(t *testing.T) {
	order, _ := NewOrder(1, validDraft())
	first := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	if err := order.MarkDelivered(first); err != nil {
		t.Fatalf("mark delivered failed: %v", err)
	}
	if err := order.MarkDelivered(first.Add(time.Hour)); err != nil {
		t.Fatalf("repeated mark delivered must be a no-op, got %v", err)
	}
	if !order.DeliveredAt.Equal(first) {
		t.Fatalf("deliveredAt must be set exactly once, got %v", order.DeliveredAt)
	}
}

func TestAdminPatchCannotClearFlags(t *testing.T) {
	order, _ := NewOrder(1, validDraft())
	_ = order.MarkPaid(PaymentResult{TransactionID: "tx-1"}, time.Now())

	unpaid := false
	err := AdminOrderPatch{IsPaid: &unpaid}.Apply(order, time.Now())
	if !stdErrors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected true -> false flag change to be rejected, got %v", err)
	}
	if !order.IsPaid {
		t.Fatal("paid flag must survive rejected patch")
	}
}

func TestAdminPatchPayAndShipInOneUpdate(t *testing.T) {
	order, _ := NewOrder(1, validDraft())
	_ = order.TransitionTo(OrderStatusProcessing)

	paid := true
	shipped := OrderStatusShipped
	patch := AdminOrderPatch{
		IsPaid:        &paid,
		Status:        &shipped,
		PaymentResult: &PaymentResult{TransactionID: "tx-9", Status: "COMPLETED"},
	}
	if err := patch.Apply(order, time.Now()); err != nil {
		t.Fatalf("combined pay+ship patch failed: %v", err)
	}
	if order.Status != OrderStatusShipped || !order.IsPaid || order.PaidAt == nil {
		t.Fatalf("patch applied partially: status=%s paid=%v", order.Status, order.IsPaid)
	}
}

func TestAdminPatchPaymentResultAloneConfirmsPayment(t *testing.T) {
	order, _ := NewOrder(1, validDraft())
	patch := AdminOrderPatch{PaymentResult: &PaymentResult{TransactionID: "tx-3"}}
	if err := patch.Apply(order, time.Now()); err != nil {
		t.Fatalf("payment result patch failed: %v", err)
	}
	if !order.IsPaid || order.PaidAt == nil {
		t.Fatal("payment result must flip isPaid and stamp paidAt in the same update")
	}
}

func TestIdentityOwnership(t *testing.T) {
	order := &Order{UserID: 5}
	owner := Identity{UserID: 5, Role: RoleCustomer}
	other := Identity{UserID: 6, Role: RoleCustomer}
	admin := Identity{UserID: 9, Role: RoleAdmin}

	if !owner.Owns(order) {
		t.Fatal("owner must own own order")
	}
	if other.Owns(order) {
		t.Fatal("non-owner must not own order")
	}
	if !admin.IsAdmin() || owner.IsAdmin() {
		t.Fatal("role checks broken")
	}
}

func TestAddressValidate(t *testing.T) {
	addr := Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "US"}
	if err := addr.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	addr.ZipCode = ""
	err := addr.Validate()
	var ve *domainErrors.ValidationError
	if !stdErrors.As(err, &ve) || ve.Field != "zipCode" {
		t.Fatalf("expected zipCode validation error, got %v", err)
	}
}
