package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vighnaharta/engineers-backend/internal/domain/models"
	"github.com/vighnaharta/engineers-backend/internal/repository/mongodb"
	"github.com/vighnaharta/engineers-backend/internal/service/content"
	"github.com/vighnaharta/engineers-backend/internal/service/invoicing"
	"github.com/vighnaharta/engineers-backend/pkg/clients/identity"
)

// AdminHandler serves the admin panel endpoints: login, content management
// and invoice generation.
type AdminHandler struct {
	identity  identity.Client
	content   *content.Service
	invoicing *invoicing.Service
	logger    *zap.Logger
}

// NewAdminHandler constructs the admin HTTP handler adapter.
func NewAdminHandler(identityClient identity.Client, contentSvc *content.Service, invoicingSvc *invoicing.Service, logger *zap.Logger) *AdminHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminHandler{
		identity:  identityClient,
		content:   contentSvc,
		invoicing: invoicingSvc,
		logger:    logger,
	}
}

// Login exchanges email and password for a session token.
func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	session, err := h.identity.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, identity.ErrInvalidEmail):
			status = http.StatusBadRequest
		case errors.Is(err, identity.ErrUserNotFound), errors.Is(err, identity.ErrWrongPassword):
			status = http.StatusUnauthorized
		case errors.Is(err, identity.ErrTooManyAttempts):
			status = http.StatusTooManyRequests
		default:
			h.logger.Error("sign in failed", zap.Error(err))
			c.JSON(status, gin.H{"error": "login failed"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"idToken":      session.IDToken,
		"refreshToken": session.RefreshToken,
		"expiresIn":    session.ExpiresIn,
		"email":        session.Email,
	})
}

// ListTestimonials returns every testimonial for the editor.
func (h *AdminHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.content.ListTestimonials(c.Request.Context())
	if err != nil {
		h.fail(c, "failed to list testimonials", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// CreateTestimonial adds a new testimonial.
func (h *AdminHandler) CreateTestimonial(c *gin.Context) {
	h.saveTestimonial(c, "")
}

// UpdateTestimonial replaces the fields of an existing testimonial.
func (h *AdminHandler) UpdateTestimonial(c *gin.Context) {
	h.saveTestimonial(c, c.Param("id"))
}

func (h *AdminHandler) saveTestimonial(c *gin.Context, id string) {
	var t models.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	savedID, err := h.content.SaveTestimonial(c.Request.Context(), id, t)
	if err != nil {
		h.writeError(c, "failed to save testimonial", err)
		return
	}

	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"id": savedID})
}

// DeleteTestimonial removes a testimonial.
func (h *AdminHandler) DeleteTestimonial(c *gin.Context) {
	if err := h.content.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, "failed to delete testimonial", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListProjects returns every portfolio project for the editor.
func (h *AdminHandler) ListProjects(c *gin.Context) {
	projects, err := h.content.ListProjects(c.Request.Context())
	if err != nil {
		h.fail(c, "failed to list projects", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// CreateProject adds a portfolio project from a multipart form carrying the
// title, category and image file.
func (h *AdminHandler) CreateProject(c *gin.Context) {
	h.saveProject(c, "")
}

// UpdateProject replaces a portfolio project; the image file is optional and
// the existing URL is kept when it is absent.
func (h *AdminHandler) UpdateProject(c *gin.Context) {
	h.saveProject(c, c.Param("id"))
}

func (h *AdminHandler) saveProject(c *gin.Context, id string) {
	project := models.PortfolioProject{
		Title:    c.PostForm("title"),
		Category: c.PostForm("category"),
		Image:    c.PostForm("imageUrl"),
	}

	var (
		image     io.Reader
		imageName string
	)
	if upload, err := c.FormFile("image"); err == nil {
		opened, err := upload.Open()
		if err != nil {
			h.fail(c, "failed to read uploaded image", err)
			return
		}
		defer opened.Close()
		image = opened
		imageName = upload.Filename
	}

	savedID, err := h.content.SaveProject(c.Request.Context(), id, project, image, imageName)
	if err != nil {
		h.writeError(c, "failed to save project", err)
		return
	}

	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"id": savedID})
}

// DeleteProject removes a portfolio project.
func (h *AdminHandler) DeleteProject(c *gin.Context) {
	if err := h.content.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, "failed to delete project", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type caseStudyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Client      string `json:"client"`
	Results     string `json:"results"`
}

// ListCaseStudies returns every case study for the editor.
func (h *AdminHandler) ListCaseStudies(c *gin.Context) {
	studies, err := h.content.ListCaseStudies(c.Request.Context())
	if err != nil {
		h.fail(c, "failed to list case studies", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"caseStudies": studies})
}

// CreateCaseStudy adds a new case study.
func (h *AdminHandler) CreateCaseStudy(c *gin.Context) {
	h.saveCaseStudy(c, "")
}

// UpdateCaseStudy replaces the fields of an existing case study.
func (h *AdminHandler) UpdateCaseStudy(c *gin.Context) {
	h.saveCaseStudy(c, c.Param("id"))
}

func (h *AdminHandler) saveCaseStudy(c *gin.Context, id string) {
	var req caseStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	study := models.CaseStudy{
		Title:       req.Title,
		Description: req.Description,
		Client:      req.Client,
	}
	savedID, err := h.content.SaveCaseStudy(c.Request.Context(), id, study, req.Results)
	if err != nil {
		h.writeError(c, "failed to save case study", err)
		return
	}

	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"id": savedID})
}

// DeleteCaseStudy removes a case study.
func (h *AdminHandler) DeleteCaseStudy(c *gin.Context) {
	if err := h.content.DeleteCaseStudy(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, "failed to delete case study", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type createInvoiceRequest struct {
	invoicing.InvoiceForm
	Items []models.InvoiceLineItem `json:"items"`
}

// CreateInvoice validates, computes and persists a new invoice snapshot.
func (h *AdminHandler) CreateInvoice(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	saved, err := h.invoicing.SaveInvoice(c.Request.Context(), req.InvoiceForm, req.Items)
	if err != nil {
		h.writeError(c, "failed to save invoice", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"invoice": saved})
}

// ListInvoices returns saved invoices, newest first.
func (h *AdminHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.invoicing.ListInvoices(c.Request.Context())
	if err != nil {
		h.fail(c, "failed to list invoices", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// InvoicePDF streams the PDF rendition of a saved invoice.
func (h *AdminHandler) InvoicePDF(c *gin.Context) {
	id := c.Param("id")

	inv, err := h.invoicing.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "failed to load invoice", err)
		return
	}

	data, err := invoicing.RenderPDF(inv)
	if err != nil {
		h.fail(c, "failed to render invoice pdf", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", inv.InvoiceNo))
	c.Data(http.StatusOK, "application/pdf", data)
}

// writeError maps service errors onto HTTP statuses: validation failures are
// the caller's fault, a missing document is 404, anything else is logged and
// reported as a server error.
func (h *AdminHandler) writeError(c *gin.Context, msg string, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "missing required fields",
			"fields": verr.Fields,
		})
	case errors.Is(err, mongodb.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		h.fail(c, msg, err)
	}
}

func (h *AdminHandler) fail(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
