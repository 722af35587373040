package dto

import "time"

// OrderItemPayload is a line item snapshot as it travels over the wire.
type OrderItemPayload struct {
	Product   string  `json:"product"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// ShippingAddressPayload is the order destination.
type ShippingAddressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// PaymentResultPayload carries a payment confirmation.
type PaymentResultPayload struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	PayerEmail    string `json:"payerEmail"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	Items           []OrderItemPayload     `json:"items"`
	ShippingAddress ShippingAddressPayload `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	ItemsPrice      float64                `json:"itemsPrice"`
	ShippingPrice   float64                `json:"shippingPrice"`
	TaxPrice        float64                `json:"taxPrice"`
	TotalPrice      float64                `json:"totalPrice"`
}

// UpdateOrderRequest is the PATCH body. Which fields take effect depends
// on the caller's role; a customer body only contributes paymentResult.
type UpdateOrderRequest struct {
	Status        *string               `json:"status"`
	IsPaid        *bool                 `json:"isPaid"`
	IsDelivered   *bool                 `json:"isDelivered"`
	PaymentResult *PaymentResultPayload `json:"paymentResult"`
}

// OrderResponse is the outward representation of an order.
type OrderResponse struct {
	ID              string                 `json:"id"`
	OrderNumber     string                 `json:"orderNumber"`
	Items           []OrderItemPayload     `json:"items"`
	ShippingAddress ShippingAddressPayload `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	PaymentResult   *PaymentResultPayload  `json:"paymentResult,omitempty"`
	ItemsPrice      float64                `json:"itemsPrice"`
	ShippingPrice   float64                `json:"shippingPrice"`
	TaxPrice        float64                `json:"taxPrice"`
	TotalPrice      float64                `json:"totalPrice"`
	IsPaid          bool                   `json:"isPaid"`
	PaidAt          *time.Time             `json:"paidAt,omitempty"`
	IsDelivered     bool                   `json:"isDelivered"`
	DeliveredAt     *time.Time             `json:"deliveredAt,omitempty"`
	Status          string                 `json:"status"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}
