package carousel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/vighnaharta/engineers-backend/internal/config"
	"github.com/vighnaharta/engineers-backend/internal/domain/models"
	"github.com/vighnaharta/engineers-backend/internal/repository/mongodb"
	"github.com/vighnaharta/engineers-backend/internal/rotation"
)

// Carousel kinds addressable from the pagination endpoints.
const (
	KindSlides       = "slides"
	KindTestimonials = "testimonials"
	KindProjects     = "projects"
)

// ErrUnknownCarousel indicates a request for a carousel kind that does not exist.
var ErrUnknownCarousel = errors.New("unknown carousel")

// Service owns one rotator per home page carousel: hero slides, client
// testimonials and the 3-wide featured project pager. Item sets are refreshed
// from their sources and counts re-clamped on every refresh; each rotator is
// started on Start and torn down on Stop before state is discarded.
type Service struct {
	repo       mongodb.ContentRepository
	slidesPath string
	logger     *zap.Logger

	slideRot       *rotation.Rotator
	testimonialRot *rotation.Rotator
	projectRot     *rotation.Rotator

	mu           sync.RWMutex
	slides       []models.Slide
	testimonials []models.Testimonial
	projects     []models.PortfolioProject
}

// NewService wires a new carousel service instance.
func NewService(cfg config.CarouselConfig, repo mongodb.ContentRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:           repo,
		slidesPath:     cfg.SlidesPath,
		logger:         logger,
		slideRot:       rotation.NewRotator(1, cfg.SlidePeriod),
		testimonialRot: rotation.NewRotator(1, cfg.TestimonialPeriod),
		projectRot:     rotation.NewRotator(cfg.ProjectPageSize, cfg.ProjectPeriod),
	}
}

// Start launches the periodic rotation of all three carousels.
func (s *Service) Start() {
	s.slideRot.Start()
	s.testimonialRot.Start()
	s.projectRot.Start()
	s.logger.Info("carousel rotation started")
}

// Stop cancels every rotator. Must run before the service is discarded so no
// tick fires against torn-down state.
func (s *Service) Stop() {
	s.slideRot.Stop()
	s.testimonialRot.Stop()
	s.projectRot.Stop()
	s.logger.Info("carousel rotation stopped")
}

// Refresh reloads the slide file and the content collections, resizing each
// rotator to the new item count. A failed source leaves the previous items in
// place for that carousel and is reported after the others refreshed.
func (s *Service) Refresh(ctx context.Context) error {
	var firstErr error

	if slides, err := loadSlides(s.slidesPath); err != nil {
		s.logger.Warn("failed to load slides", zap.String("path", s.slidesPath), zap.Error(err))
		firstErr = err
	} else {
		s.mu.Lock()
		s.slides = slides
		s.mu.Unlock()
		s.slideRot.SetCount(len(slides))
	}

	if testimonials, err := s.repo.ListTestimonials(ctx); err != nil {
		s.logger.Warn("failed to refresh testimonials", zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	} else {
		s.mu.Lock()
		s.testimonials = testimonials
		s.mu.Unlock()
		s.testimonialRot.SetCount(len(testimonials))
	}

	if projects, err := s.repo.ListProjects(ctx); err != nil {
		s.logger.Warn("failed to refresh projects", zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	} else {
		s.mu.Lock()
		s.projects = projects
		s.mu.Unlock()
		s.projectRot.SetCount(len(projects))
	}

	return firstErr
}

// SlideWindow returns the hero slide currently visible.
func (s *Service) SlideWindow() ([]models.Slide, rotation.State) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := s.slideRot.State()
	return rotation.Window(state, s.slides), state
}

// TestimonialWindow returns the testimonial currently visible.
func (s *Service) TestimonialWindow() ([]models.Testimonial, rotation.State) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := s.testimonialRot.State()
	return rotation.Window(state, s.testimonials), state
}

// ProjectWindow returns the page of featured projects currently visible.
func (s *Service) ProjectWindow() ([]models.PortfolioProject, rotation.State) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := s.projectRot.State()
	return rotation.Window(state, s.projects), state
}

// GoTo moves the named carousel to an explicit page, clamping out-of-range
// targets. Serves the pagination dots and drag positioning.
func (s *Service) GoTo(kind string, target int) error {
	switch kind {
	case KindSlides:
		s.slideRot.GoTo(target)
	case KindTestimonials:
		s.testimonialRot.GoTo(target)
	case KindProjects:
		s.projectRot.GoTo(target)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCarousel, kind)
	}
	return nil
}

// Advance moves the named carousel forward one page, wrapping at the end.
func (s *Service) Advance(kind string) error {
	switch kind {
	case KindSlides:
		s.slideRot.Advance()
	case KindTestimonials:
		s.testimonialRot.Advance()
	case KindProjects:
		s.projectRot.Advance()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCarousel, kind)
	}
	return nil
}

type slideFile struct {
	Slides []models.Slide `json:"slides"`
}

func loadSlides(path string) ([]models.Slide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read slide file: %w", err)
	}

	var file slideFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse slide file %s: %w", path, err)
	}
	return file.Slides, nil
}
