package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vighnaharta/engineers-backend/internal/server/handlers"
	"github.com/vighnaharta/engineers-backend/pkg/clients/identity"
)

// New wires the Gin engine with the public site routes, the admin panel
// routes and the required middlewares. Admin routes other than login sit
// behind bearer token verification.
func New(public *handlers.PublicHandler, admin *handlers.AdminHandler, identityClient identity.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/home", public.Home)
		api.GET("/carousel/:kind", public.CarouselWindow)
		api.POST("/carousel/:kind/goto", public.CarouselGoTo)

		api.GET("/portfolio", public.Portfolio)
		api.GET("/testimonials", public.Testimonials)
		api.GET("/case-studies", public.CaseStudies)
		api.GET("/clients", public.Clients)

		api.POST("/contact", public.Contact)
	}

	r.POST("/admin/login", admin.Login)

	adm := r.Group("/admin", authRequired(identityClient, logger))
	{
		adm.GET("/testimonials", admin.ListTestimonials)
		adm.POST("/testimonials", admin.CreateTestimonial)
		adm.PUT("/testimonials/:id", admin.UpdateTestimonial)
		adm.DELETE("/testimonials/:id", admin.DeleteTestimonial)

		adm.GET("/portfolio", admin.ListProjects)
		adm.POST("/portfolio", admin.CreateProject)
		adm.PUT("/portfolio/:id", admin.UpdateProject)
		adm.DELETE("/portfolio/:id", admin.DeleteProject)

		adm.GET("/case-studies", admin.ListCaseStudies)
		adm.POST("/case-studies", admin.CreateCaseStudy)
		adm.PUT("/case-studies/:id", admin.UpdateCaseStudy)
		adm.DELETE("/case-studies/:id", admin.DeleteCaseStudy)

		adm.GET("/invoices", admin.ListInvoices)
		adm.POST("/invoices", admin.CreateInvoice)
		adm.GET("/invoices/:id/pdf", admin.InvoicePDF)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

// authRequired verifies the Authorization bearer token against the identity
// provider and aborts with 401 when it is missing or rejected.
func authRequired(identityClient identity.Client, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		email, err := identityClient.VerifyToken(c.Request.Context(), token)
		if err != nil {
			logger.Warn("token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set("user_email", email)
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
