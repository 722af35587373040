package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkholodov/storefront/internal/domain/model"
	"github.com/mkholodov/storefront/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
	logger *slog.Logger
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{facade: facade, logger: logger}
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c *gin.Context) {
	ident := CurrentIdentity(c)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), ident, toOrderDraft(req))
	if err != nil {
		writeDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	ident := CurrentIdentity(c)

	order, err := h.facade.Order(c.Request.Context(), ident, c.Param("id"))
	if err != nil {
		writeDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// List handles GET /orders and returns the caller's own orders,
// most recent first. No orders is an empty JSON array, not 204.
func (h *OrderHandler) List(c *gin.Context) {
	ident := CurrentIdentity(c)

	orders, err := h.facade.Orders(c.Request.Context(), ident)
	if err != nil {
		writeDomainError(c, h.logger, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Update handles PATCH /orders/:id. What the body may change depends on
// the caller's role: an admin patch goes through the full state machine,
// while a customer body only contributes a payment confirmation. Extra
// fields in a customer body are ignored rather than rejected.
func (h *OrderHandler) Update(c *gin.Context) {
	ident := CurrentIdentity(c)

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var (
		order *model.Order
		err   error
	)
	if ident.IsAdmin() {
		order, err = h.facade.UpdateOrder(c.Request.Context(), ident, c.Param("id"), toAdminPatch(req))
	} else {
		if req.PaymentResult == nil {
			c.Status(http.StatusBadRequest)
			return
		}
		order, err = h.facade.ConfirmPayment(c.Request.Context(), ident, c.Param("id"), toPaymentResult(*req.PaymentResult))
	}
	if err != nil {
		writeDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func toOrderDraft(req dto.CreateOrderRequest) model.OrderDraft {
	items := make([]model.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.OrderItem{
			ProductID: it.Product,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}
	return model.OrderDraft{
		Items: items,
		ShippingAddress: model.ShippingAddress{
			Street:  req.ShippingAddress.Street,
			City:    req.ShippingAddress.City,
			State:   req.ShippingAddress.State,
			ZipCode: req.ShippingAddress.ZipCode,
			Country: req.ShippingAddress.Country,
		},
		PaymentMethod: req.PaymentMethod,
		ItemsPrice:    req.ItemsPrice,
		ShippingPrice: req.ShippingPrice,
		TaxPrice:      req.TaxPrice,
		TotalPrice:    req.TotalPrice,
	}
}

func toAdminPatch(req dto.UpdateOrderRequest) model.AdminOrderPatch {
	patch := model.AdminOrderPatch{
		IsPaid:      req.IsPaid,
		IsDelivered: req.IsDelivered,
	}
	if req.Status != nil {
		status := model.OrderStatus(*req.Status)
		patch.Status = &status
	}
	if req.PaymentResult != nil {
		result := toPaymentResult(*req.PaymentResult)
		patch.PaymentResult = &result
	}
	return patch
}

func toPaymentResult(p dto.PaymentResultPayload) model.PaymentResult {
	return model.PaymentResult{
		TransactionID: p.TransactionID,
		Status:        p.Status,
		PayerEmail:    p.PayerEmail,
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemPayload, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, dto.OrderItemPayload{
			Product:   it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}

	resp := dto.OrderResponse{
		ID:          order.ID,
		OrderNumber: order.Number,
		Items:       items,
		ShippingAddress: dto.ShippingAddressPayload{
			Street:  order.ShippingAddress.Street,
			City:    order.ShippingAddress.City,
			State:   order.ShippingAddress.State,
			ZipCode: order.ShippingAddress.ZipCode,
			Country: order.ShippingAddress.Country,
		},
		PaymentMethod: order.PaymentMethod,
		ItemsPrice:    order.ItemsPrice,
		ShippingPrice: order.ShippingPrice,
		TaxPrice:      order.TaxPrice,
		TotalPrice:    order.TotalPrice,
		IsPaid:        order.IsPaid,
		PaidAt:        order.PaidAt,
		IsDelivered:   order.IsDelivered,
		DeliveredAt:   order.DeliveredAt,
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
	if order.PaymentResult != nil {
		resp.PaymentResult = &dto.PaymentResultPayload{
			TransactionID: order.PaymentResult.TransactionID,
			Status:        order.PaymentResult.Status,
			PayerEmail:    order.PaymentResult.PayerEmail,
		}
	}
	return resp
}
