package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkholodov/storefront/internal/domain/model"
	"github.com/mkholodov/storefront/internal/server/http/dto"
)

// AddressHandler manages the caller's address book.
type AddressHandler struct {
	facade AddressFacade
	logger *slog.Logger
}

// NewAddressHandler constructs AddressHandler.
func NewAddressHandler(facade AddressFacade, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{facade: facade, logger: logger}
}

// Add handles POST /addresses.
func (h *AddressHandler) Add(c *gin.Context) {
	ident := CurrentIdentity(c)

	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	addr, err := h.facade.AddAddress(c.Request.Context(), ident.UserID, toAddress(req))
	if err != nil {
		writeDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toAddressResponse(*addr))
}

// Update handles PUT /addresses.
func (h *AddressHandler) Update(c *gin.Context) {
	ident := CurrentIdentity(c)

	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	addr, err := h.facade.UpdateAddress(c.Request.Context(), ident.UserID, toAddress(req))
	if err != nil {
		writeDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toAddressResponse(*addr))
}

// Delete handles DELETE /addresses?id=.
func (h *AddressHandler) Delete(c *gin.Context) {
	ident := CurrentIdentity(c)

	if err := h.facade.DeleteAddress(c.Request.Context(), ident.UserID, c.Query("id")); err != nil {
		writeDomainError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}

// List handles GET /addresses.
func (h *AddressHandler) List(c *gin.Context) {
	ident := CurrentIdentity(c)

	addrs, err := h.facade.Addresses(c.Request.Context(), ident.UserID)
	if err != nil {
		writeDomainError(c, h.logger, err)
		return
	}

	response := make([]dto.AddressResponse, 0, len(addrs))
	for _, a := range addrs {
		response = append(response, toAddressResponse(a))
	}

	c.JSON(http.StatusOK, response)
}

func toAddress(req dto.AddressRequest) model.Address {
	return model.Address{
		ID:        req.ID,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		IsDefault: req.IsDefault,
	}
}

func toAddressResponse(addr model.Address) dto.AddressResponse {
	return dto.AddressResponse{
		ID:        addr.ID,
		Street:    addr.Street,
		City:      addr.City,
		State:     addr.State,
		ZipCode:   addr.ZipCode,
		Country:   addr.Country,
		IsDefault: addr.IsDefault,
	}
}
