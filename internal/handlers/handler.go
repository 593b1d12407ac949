package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/contact-directory/internal/apperr"
	"github.com/harentsoaR/contact-directory/internal/dto"
	"github.com/harentsoaR/contact-directory/internal/repository"
	"github.com/harentsoaR/contact-directory/internal/services"
)

// Handler holds everything the HTTP handlers need.
type Handler struct {
	ContactSvc services.ContactService
	AuthSvc    services.AuthService
	Store      repository.Store
}

func NewHandler(svc *services.Services, store repository.Store) *Handler {
	return &Handler{
		ContactSvc: svc.Contact,
		AuthSvc:    svc.Auth,
		Store:      store,
	}
}

// respondError writes err as {"message": ...} with its mapped status. The
// cause stays on the gin context for the access log and never reaches the
// client.
func respondError(c *gin.Context, err error, fallback string) {
	appErr := apperr.From(err, fallback)
	_ = c.Error(err)
	c.JSON(appErr.HTTPCode(), dto.MessageResponse{Message: appErr.Message()})
}
