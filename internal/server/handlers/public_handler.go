package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vighnaharta/engineers-backend/internal/domain/models"
	"github.com/vighnaharta/engineers-backend/internal/rotation"
	"github.com/vighnaharta/engineers-backend/internal/service/carousel"
	"github.com/vighnaharta/engineers-backend/internal/service/contact"
	"github.com/vighnaharta/engineers-backend/internal/service/content"
)

// PublicHandler serves the public site endpoints: carousels, content listings
// and the contact form.
type PublicHandler struct {
	carousel *carousel.Service
	content  *content.Service
	contact  *contact.Service
	logger   *zap.Logger
}

// NewPublicHandler constructs the public HTTP handler adapter.
func NewPublicHandler(carouselSvc *carousel.Service, contentSvc *content.Service, contactSvc *contact.Service, logger *zap.Logger) *PublicHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PublicHandler{
		carousel: carouselSvc,
		content:  contentSvc,
		contact:  contactSvc,
		logger:   logger,
	}
}

// windowResponse is the JSON shape of one carousel window.
type windowResponse struct {
	Items   any `json:"items"`
	Current int `json:"current"`
	Pages   int `json:"pages"`
}

func window(items any, state rotation.State) windowResponse {
	return windowResponse{Items: items, Current: state.Current, Pages: state.PageCount()}
}

// Home returns the three landing page carousels in one payload.
func (h *PublicHandler) Home(c *gin.Context) {
	slides, slideState := h.carousel.SlideWindow()
	testimonials, testimonialState := h.carousel.TestimonialWindow()
	projects, projectState := h.carousel.ProjectWindow()

	c.JSON(http.StatusOK, gin.H{
		"slides":       window(slides, slideState),
		"testimonials": window(testimonials, testimonialState),
		"projects":     window(projects, projectState),
	})
}

// CarouselWindow returns the current window of one named carousel.
func (h *PublicHandler) CarouselWindow(c *gin.Context) {
	resp, ok := h.carouselPayload(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown carousel"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CarouselGoTo serves pagination dot clicks and drag positioning: it moves the
// named carousel to the requested page (clamped) and returns the new window.
func (h *PublicHandler) CarouselGoTo(c *gin.Context) {
	var req struct {
		Target int `json:"target"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	kind := c.Param("kind")
	if err := h.carousel.GoTo(kind, req.Target); err != nil {
		if errors.Is(err, carousel.ErrUnknownCarousel) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown carousel"})
			return
		}
		h.logger.Error("carousel goto failed", zap.String("kind", kind), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "carousel unavailable"})
		return
	}

	resp, _ := h.carouselPayload(kind)
	c.JSON(http.StatusOK, resp)
}

func (h *PublicHandler) carouselPayload(kind string) (windowResponse, bool) {
	switch kind {
	case carousel.KindSlides:
		items, state := h.carousel.SlideWindow()
		return window(items, state), true
	case carousel.KindTestimonials:
		items, state := h.carousel.TestimonialWindow()
		return window(items, state), true
	case carousel.KindProjects:
		items, state := h.carousel.ProjectWindow()
		return window(items, state), true
	default:
		return windowResponse{}, false
	}
}

// Portfolio lists every portfolio project.
func (h *PublicHandler) Portfolio(c *gin.Context) {
	projects, err := h.content.ListProjects(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list projects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load portfolio"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// Testimonials lists every testimonial.
func (h *PublicHandler) Testimonials(c *gin.Context) {
	testimonials, err := h.content.ListTestimonials(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list testimonials", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load testimonials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// CaseStudies lists every case study.
func (h *PublicHandler) CaseStudies(c *gin.Context) {
	studies, err := h.content.ListCaseStudies(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list case studies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load case studies"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"caseStudies": studies})
}

// Clients lists the companies shown on the clients page.
func (h *PublicHandler) Clients(c *gin.Context) {
	clients, err := h.content.ListClients(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list clients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load clients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// Contact relays a contact form submission through the email relay.
func (h *PublicHandler) Contact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.contact.Submit(c.Request.Context(), req); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "missing required fields",
				"fields": verr.Fields,
			})
			return
		}
		h.logger.Error("failed to relay contact message", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to send message, please try again"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "message sent"})
}
