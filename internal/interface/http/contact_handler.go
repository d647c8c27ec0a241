package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/cafehub/internal/application"
	"github.com/oksasatya/cafehub/pkg/response"
	"github.com/oksasatya/cafehub/pkg/validation"
)

type ContactHandler struct {
	Svc    *application.ContactService
	Logger *logrus.Logger
}

func NewContactHandler(svc *application.ContactService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger}
}

type contactRequest struct {
	Email string `form:"contact_email" json:"contact_email" binding:"required,email"`
	Name  string `form:"contact_name" json:"contact_name" binding:"required"`
	Text  string `form:"contact_text" json:"contact_text" binding:"required"`
}

// Submit relays a contact-form message to the site owner. Delivery
// failure is reported honestly; the message is not queued for retry.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	if err := h.Svc.Notify(c.Request.Context(), req.Email, req.Name, req.Text); err != nil {
		if errors.Is(err, application.ErrDeliveryFailed) {
			resp := response.Error[any](c, http.StatusBadGateway, "your message could not be delivered, please try again later", nil)
			c.JSON(resp.Status, resp)
			return
		}
		h.Logger.WithError(err).Error("contact submit failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
		c.JSON(resp.Status, resp)
		return
	}

	resp := response.Success[any](c, http.StatusOK, gin.H{"sent": true}, "thanks for your message", nil)
	c.JSON(resp.Status, resp)
}
