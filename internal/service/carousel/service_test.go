package carousel

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/vighnaharta/engineers-backend/internal/config"
	"github.com/vighnaharta/engineers-backend/internal/domain/models"
)

type fakeContentRepo struct {
	testimonials []models.Testimonial
	projects     []models.PortfolioProject
	fail         bool
}

func (f *fakeContentRepo) ListProjects(context.Context) ([]models.PortfolioProject, error) {
	if f.fail {
		return nil, errors.New("mongo down")
	}
	return f.projects, nil
}

func (f *fakeContentRepo) ListTestimonials(context.Context) ([]models.Testimonial, error) {
	if f.fail {
		return nil, errors.New("mongo down")
	}
	return f.testimonials, nil
}

func (f *fakeContentRepo) ListCaseStudies(context.Context) ([]models.CaseStudy, error) {
	return nil, nil
}

func (f *fakeContentRepo) ListClients(context.Context) ([]models.ClientEntry, error) {
	return nil, nil
}

func (f *fakeContentRepo) InsertProject(context.Context, models.PortfolioProject) (string, error) {
	return "", nil
}
func (f *fakeContentRepo) UpdateProject(context.Context, string, models.PortfolioProject) error {
	return nil
}
func (f *fakeContentRepo) DeleteProject(context.Context, string) error { return nil }
func (f *fakeContentRepo) InsertTestimonial(context.Context, models.Testimonial) (string, error) {
	return "", nil
}
func (f *fakeContentRepo) UpdateTestimonial(context.Context, string, models.Testimonial) error {
	return nil
}
func (f *fakeContentRepo) DeleteTestimonial(context.Context, string) error { return nil }
func (f *fakeContentRepo) InsertCaseStudy(context.Context, models.CaseStudy) (string, error) {
	return "", nil
}
func (f *fakeContentRepo) UpdateCaseStudy(context.Context, string, models.CaseStudy) error {
	return nil
}
func (f *fakeContentRepo) DeleteCaseStudy(context.Context, string) error { return nil }

func writeSlideFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slides.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func testConfig(slidesPath string) config.CarouselConfig {
	return config.CarouselConfig{
		SlidePeriod:       time.Hour,
		TestimonialPeriod: time.Hour,
		ProjectPeriod:     time.Hour,
		ProjectPageSize:   3,
		SlidesPath:        slidesPath,
	}
}

func projects(n int) []models.PortfolioProject {
	out := make([]models.PortfolioProject, n)
	for i := range out {
		out[i].Title = string(rune('A' + i))
	}
	return out
}

func TestRefreshLoadsAllSources(t *testing.T) {
	path := writeSlideFile(t, `{"slides":[{"title":"Shop","image":"/img/shop.jpg"},{"title":"Line","image":"/img/line.jpg"}]}`)
	repo := &fakeContentRepo{
		testimonials: []models.Testimonial{{Quote: "Great"}, {Quote: "Solid"}},
		projects:     projects(7),
	}
	svc := NewService(testConfig(path), repo, zap.NewNop())

	require.NoError(t, svc.Refresh(context.Background()))

	slides, state := svc.SlideWindow()
	require.Len(t, slides, 1)
	assert.Equal(t, "Shop", slides[0].Title)
	assert.Equal(t, 2, state.PageCount())

	testimonials, _ := svc.TestimonialWindow()
	require.Len(t, testimonials, 1)

	window, state := svc.ProjectWindow()
	assert.Len(t, window, 3)
	assert.Equal(t, 3, state.PageCount())
}

func TestRefreshShrinkReclampsWindow(t *testing.T) {
	path := writeSlideFile(t, `{"slides":[]}`)
	repo := &fakeContentRepo{projects: projects(7)}
	svc := NewService(testConfig(path), repo, zap.NewNop())
	require.NoError(t, svc.Refresh(context.Background()))

	require.NoError(t, svc.GoTo(KindProjects, 2))
	window, _ := svc.ProjectWindow()
	assert.Len(t, window, 1) // final partial page

	// Collection shrinks underneath the current page.
	repo.projects = projects(2)
	require.NoError(t, svc.Refresh(context.Background()))

	window, state := svc.ProjectWindow()
	assert.Equal(t, 0, state.Current)
	assert.Len(t, window, 2)
}

func TestRefreshFailurePreservesPreviousItems(t *testing.T) {
	path := writeSlideFile(t, `{"slides":[{"title":"Shop","image":"x"}]}`)
	repo := &fakeContentRepo{projects: projects(3)}
	svc := NewService(testConfig(path), repo, zap.NewNop())
	require.NoError(t, svc.Refresh(context.Background()))

	repo.fail = true
	err := svc.Refresh(context.Background())
	require.Error(t, err)

	window, _ := svc.ProjectWindow()
	assert.Len(t, window, 3)
}

func TestGoToUnknownCarousel(t *testing.T) {
	path := writeSlideFile(t, `{"slides":[]}`)
	svc := NewService(testConfig(path), &fakeContentRepo{}, zap.NewNop())

	err := svc.GoTo("banner", 1)
	assert.ErrorIs(t, err, ErrUnknownCarousel)

	err = svc.Advance("banner")
	assert.ErrorIs(t, err, ErrUnknownCarousel)
}

func TestStartStopReleasesRotators(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := writeSlideFile(t, `{"slides":[]}`)
	svc := NewService(testConfig(path), &fakeContentRepo{}, zap.NewNop())
	svc.Start()
	svc.Stop()
}

func TestEmptyCollectionsServeEmptyWindows(t *testing.T) {
	path := writeSlideFile(t, `{"slides":[]}`)
	svc := NewService(testConfig(path), &fakeContentRepo{}, zap.NewNop())
	require.NoError(t, svc.Refresh(context.Background()))

	slides, state := svc.SlideWindow()
	assert.Empty(t, slides)
	assert.Equal(t, 0, state.PageCount())

	require.NoError(t, svc.Advance(KindSlides))
	_, state = svc.SlideWindow()
	assert.Equal(t, 0, state.Current)
}
