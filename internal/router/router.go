package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/harentsoaR/contact-directory/internal/config"
	"github.com/harentsoaR/contact-directory/internal/handlers"
	"github.com/harentsoaR/contact-directory/internal/middleware"
	"github.com/harentsoaR/contact-directory/internal/utils"
)

// Setup builds the gin engine with every route.
func Setup(cfg *config.Config, h *handlers.Handler, tokens *utils.TokenIssuer, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// --- Middleware ---
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(cors.New(corsConfig(cfg.Server.CORS.AllowOrigins)))

	r.GET("/health", h.Health)

	// --- Auth ---
	r.POST("/register", h.RegisterUser)
	r.POST("/login", h.Login)
	r.GET("/me", middleware.AuthMiddleware(tokens), h.GetCurrentUser)

	// --- Contacts ---
	contacts := r.Group("")
	if cfg.Auth.ProtectContacts {
		contacts.Use(middleware.AuthMiddleware(tokens))
	}
	{
		contacts.POST("/add-contact", h.CreateContact)
		contacts.POST("/contact", h.CreateContact)
		contacts.GET("/contact", h.ListContacts)
		contacts.PUT("/contact/:id", h.UpdateContact)
		contacts.DELETE("/contact/:phone", h.DeleteContact)
	}

	return r
}

// corsConfig allows every origin, without credentials, when none is listed.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
