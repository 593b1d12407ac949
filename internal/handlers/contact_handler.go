package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/contact-directory/internal/apperr"
	"github.com/harentsoaR/contact-directory/internal/dto"
	"github.com/harentsoaR/contact-directory/internal/services"
)

// CreateContact serves both POST /add-contact and POST /contact.
func (h *Handler) CreateContact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(services.MsgMissingFields), "")
		return
	}

	id, err := h.ContactSvc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, services.MsgAddContactFailed)
		return
	}

	c.JSON(http.StatusCreated, dto.ContactCreatedResponse{Message: "Contact added", ID: id})
}

// UpdateContact replaces every attribute of the contact :id.
func (h *Handler) UpdateContact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(services.MsgMissingFields), "")
		return
	}

	if err := h.ContactSvc.Update(c.Request.Context(), c.Param("id"), &req); err != nil {
		respondError(c, err, services.MsgUpdateContactFailed)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Contact updated"})
}

func (h *Handler) ListContacts(c *gin.Context) {
	contacts, err := h.ContactSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, services.MsgListContactsFailed)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// DeleteContact removes every contact whose phone is :phone.
func (h *Handler) DeleteContact(c *gin.Context) {
	if _, err := h.ContactSvc.Delete(c.Request.Context(), c.Param("phone")); err != nil {
		respondError(c, err, services.MsgDeleteContactFailed)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Contact deleted successfully"})
}
