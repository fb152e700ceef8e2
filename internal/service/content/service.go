package content

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/vighnaharta/engineers-backend/internal/domain/models"
	"github.com/vighnaharta/engineers-backend/internal/repository/mongodb"
	"github.com/vighnaharta/engineers-backend/internal/repository/storage"
)

// Service manages the editable site content: testimonials, portfolio projects
// and case studies, plus the read-only client list. Every save validates the
// required fields before touching the repository, so a rejection never leaves
// a partial write behind.
type Service struct {
	repo     mongodb.ContentRepository
	uploader storage.Uploader
	logger   *zap.Logger
}

// NewService wires a new content service instance.
func NewService(repo mongodb.ContentRepository, uploader storage.Uploader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, uploader: uploader, logger: logger}
}

// ListTestimonials returns all testimonials.
func (s *Service) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return s.repo.ListTestimonials(ctx)
}

// SaveTestimonial inserts a new testimonial, or updates the one named by id.
// All four fields are required.
func (s *Service) SaveTestimonial(ctx context.Context, id string, t models.Testimonial) (string, error) {
	var missing []string
	if strings.TrimSpace(t.Quote) == "" {
		missing = append(missing, "quote")
	}
	if strings.TrimSpace(t.Author) == "" {
		missing = append(missing, "author")
	}
	if strings.TrimSpace(t.Position) == "" {
		missing = append(missing, "position")
	}
	if strings.TrimSpace(t.Company) == "" {
		missing = append(missing, "company")
	}
	if err := models.NewValidationError(missing...); err != nil {
		return "", err
	}

	if id == "" {
		newID, err := s.repo.InsertTestimonial(ctx, t)
		if err != nil {
			return "", fmt.Errorf("add testimonial: %w", err)
		}
		s.logger.Info("testimonial added", zap.String("id", newID), zap.String("author", t.Author))
		return newID, nil
	}

	if err := s.repo.UpdateTestimonial(ctx, id, t); err != nil {
		return "", fmt.Errorf("update testimonial %s: %w", id, err)
	}
	s.logger.Info("testimonial updated", zap.String("id", id))
	return id, nil
}

// DeleteTestimonial removes a testimonial.
func (s *Service) DeleteTestimonial(ctx context.Context, id string) error {
	if err := s.repo.DeleteTestimonial(ctx, id); err != nil {
		return fmt.Errorf("delete testimonial %s: %w", id, err)
	}
	s.logger.Info("testimonial deleted", zap.String("id", id))
	return nil
}

// ListProjects returns all portfolio projects.
func (s *Service) ListProjects(ctx context.Context) ([]models.PortfolioProject, error) {
	return s.repo.ListProjects(ctx)
}

// SaveProject inserts or updates a portfolio project. When image is non-nil
// its bytes are uploaded to object storage first and the resulting URL is
// stored on the document; an update without a new image keeps the existing
// URL carried in project.Image.
func (s *Service) SaveProject(ctx context.Context, id string, project models.PortfolioProject, image io.Reader, imageName string) (string, error) {
	var missing []string
	if strings.TrimSpace(project.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(project.Category) == "" {
		missing = append(missing, "category")
	}
	if image == nil && project.Image == "" {
		missing = append(missing, "image")
	}
	if err := models.NewValidationError(missing...); err != nil {
		return "", err
	}

	if image != nil {
		url, err := s.uploader.UploadImage(ctx, imageName, image)
		if err != nil {
			return "", fmt.Errorf("upload project image: %w", err)
		}
		project.Image = url
	}

	if id == "" {
		newID, err := s.repo.InsertProject(ctx, project)
		if err != nil {
			return "", fmt.Errorf("add project: %w", err)
		}
		s.logger.Info("project added", zap.String("id", newID), zap.String("title", project.Title))
		return newID, nil
	}

	if err := s.repo.UpdateProject(ctx, id, project); err != nil {
		return "", fmt.Errorf("update project %s: %w", id, err)
	}
	s.logger.Info("project updated", zap.String("id", id))
	return id, nil
}

// DeleteProject removes a portfolio project.
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	s.logger.Info("project deleted", zap.String("id", id))
	return nil
}

// ListCaseStudies returns all case studies.
func (s *Service) ListCaseStudies(ctx context.Context) ([]models.CaseStudy, error) {
	return s.repo.ListCaseStudies(ctx)
}

// SaveCaseStudy inserts or updates a case study. Results arrive as
// comma-separated text from the editor and are stored as a list; an empty
// results field is valid and stores an empty list.
func (s *Service) SaveCaseStudy(ctx context.Context, id string, study models.CaseStudy, resultsText string) (string, error) {
	var missing []string
	if strings.TrimSpace(study.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(study.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(study.Client) == "" {
		missing = append(missing, "client")
	}
	if err := models.NewValidationError(missing...); err != nil {
		return "", err
	}

	study.Results = ParseResults(resultsText)

	if id == "" {
		newID, err := s.repo.InsertCaseStudy(ctx, study)
		if err != nil {
			return "", fmt.Errorf("add case study: %w", err)
		}
		s.logger.Info("case study added", zap.String("id", newID), zap.String("title", study.Title))
		return newID, nil
	}

	if err := s.repo.UpdateCaseStudy(ctx, id, study); err != nil {
		return "", fmt.Errorf("update case study %s: %w", id, err)
	}
	s.logger.Info("case study updated", zap.String("id", id))
	return id, nil
}

// DeleteCaseStudy removes a case study.
func (s *Service) DeleteCaseStudy(ctx context.Context, id string) error {
	if err := s.repo.DeleteCaseStudy(ctx, id); err != nil {
		return fmt.Errorf("delete case study %s: %w", id, err)
	}
	s.logger.Info("case study deleted", zap.String("id", id))
	return nil
}

// ListClients returns the public client list.
func (s *Service) ListClients(ctx context.Context) ([]models.ClientEntry, error) {
	return s.repo.ListClients(ctx)
}

// ParseResults splits comma-separated result highlights into a trimmed list,
// dropping empty entries. Never returns nil.
func ParseResults(text string) []string {
	results := []string{}
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			results = append(results, part)
		}
	}
	return results
}
