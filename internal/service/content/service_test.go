package content

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vighnaharta/engineers-backend/internal/domain/models"
)

type fakeContentRepo struct {
	testimonials []models.Testimonial
	projects     []models.PortfolioProject
	caseStudies  []models.CaseStudy
	clients      []models.ClientEntry

	inserts int
	updates int
	deletes int
	failAll bool
}

var errRepoDown = errors.New("repository unavailable")

func (f *fakeContentRepo) ListProjects(context.Context) ([]models.PortfolioProject, error) {
	if f.failAll {
		return nil, errRepoDown
	}
	return f.projects, nil
}

func (f *fakeContentRepo) InsertProject(_ context.Context, p models.PortfolioProject) (string, error) {
	if f.failAll {
		return "", errRepoDown
	}
	f.inserts++
	f.projects = append(f.projects, p)
	return "p1", nil
}

func (f *fakeContentRepo) UpdateProject(_ context.Context, _ string, _ models.PortfolioProject) error {
	f.updates++
	return nil
}

func (f *fakeContentRepo) DeleteProject(context.Context, string) error {
	f.deletes++
	return nil
}

func (f *fakeContentRepo) ListTestimonials(context.Context) ([]models.Testimonial, error) {
	if f.failAll {
		return nil, errRepoDown
	}
	return f.testimonials, nil
}

func (f *fakeContentRepo) InsertTestimonial(_ context.Context, t models.Testimonial) (string, error) {
	if f.failAll {
		return "", errRepoDown
	}
	f.inserts++
	f.testimonials = append(f.testimonials, t)
	return "t1", nil
}

func (f *fakeContentRepo) UpdateTestimonial(_ context.Context, _ string, _ models.Testimonial) error {
	f.updates++
	return nil
}

func (f *fakeContentRepo) DeleteTestimonial(context.Context, string) error {
	f.deletes++
	return nil
}

func (f *fakeContentRepo) ListCaseStudies(context.Context) ([]models.CaseStudy, error) {
	return f.caseStudies, nil
}

func (f *fakeContentRepo) InsertCaseStudy(_ context.Context, cs models.CaseStudy) (string, error) {
	f.inserts++
	f.caseStudies = append(f.caseStudies, cs)
	return "c1", nil
}

func (f *fakeContentRepo) UpdateCaseStudy(_ context.Context, _ string, _ models.CaseStudy) error {
	f.updates++
	return nil
}

func (f *fakeContentRepo) DeleteCaseStudy(context.Context, string) error {
	f.deletes++
	return nil
}

func (f *fakeContentRepo) ListClients(context.Context) ([]models.ClientEntry, error) {
	return f.clients, nil
}

type fakeUploader struct {
	uploads []string
	fail    bool
}

func (f *fakeUploader) UploadImage(_ context.Context, filename string, _ io.Reader) (string, error) {
	if f.fail {
		return "", errors.New("upload failed")
	}
	f.uploads = append(f.uploads, filename)
	return "https://bucket.example.com/portfolio/abc-" + filename, nil
}

func TestSaveTestimonialRequiresAllFields(t *testing.T) {
	repo := &fakeContentRepo{}
	svc := NewService(repo, &fakeUploader{}, zap.NewNop())

	_, err := svc.SaveTestimonial(context.Background(), "", models.Testimonial{
		Quote:  "Great work",
		Author: "Jane",
	})

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"position", "company"}, verr.Fields)
	assert.Zero(t, repo.inserts)
}

func TestSaveTestimonialInsertsAndUpdates(t *testing.T) {
	repo := &fakeContentRepo{}
	svc := NewService(repo, &fakeUploader{}, zap.NewNop())

	full := models.Testimonial{Quote: "q", Author: "a", Position: "p", Company: "c"}

	id, err := svc.SaveTestimonial(context.Background(), "", full)
	require.NoError(t, err)
	assert.Equal(t, "t1", id)
	assert.Equal(t, 1, repo.inserts)

	id, err = svc.SaveTestimonial(context.Background(), "t1", full)
	require.NoError(t, err)
	assert.Equal(t, "t1", id)
	assert.Equal(t, 1, repo.updates)
}

func TestSaveProjectUploadsNewImage(t *testing.T) {
	repo := &fakeContentRepo{}
	up := &fakeUploader{}
	svc := NewService(repo, up, zap.NewNop())

	project := models.PortfolioProject{Title: "CNC fixture", Category: "Manufacturing"}
	id, err := svc.SaveProject(context.Background(), "", project, strings.NewReader("fake-image"), "fixture.png")
	require.NoError(t, err)
	assert.Equal(t, "p1", id)

	require.Len(t, repo.projects, 1)
	assert.Contains(t, repo.projects[0].Image, "fixture.png")
	assert.Equal(t, []string{"fixture.png"}, up.uploads)
}

func TestSaveProjectWithoutAnyImageRejected(t *testing.T) {
	repo := &fakeContentRepo{}
	svc := NewService(repo, &fakeUploader{}, zap.NewNop())

	_, err := svc.SaveProject(context.Background(), "", models.PortfolioProject{
		Title:    "CNC fixture",
		Category: "Manufacturing",
	}, nil, "")

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "image")
	assert.Zero(t, repo.inserts)
}

func TestSaveProjectUpdateKeepsExistingImage(t *testing.T) {
	repo := &fakeContentRepo{}
	up := &fakeUploader{}
	svc := NewService(repo, up, zap.NewNop())

	_, err := svc.SaveProject(context.Background(), "p1", models.PortfolioProject{
		Title:    "CNC fixture",
		Category: "Manufacturing",
		Image:    "https://bucket.example.com/portfolio/existing.png",
	}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.updates)
	assert.Empty(t, up.uploads)
}

func TestSaveProjectUploadFailurePreservesState(t *testing.T) {
	repo := &fakeContentRepo{}
	svc := NewService(repo, &fakeUploader{fail: true}, zap.NewNop())

	_, err := svc.SaveProject(context.Background(), "", models.PortfolioProject{
		Title:    "CNC fixture",
		Category: "Manufacturing",
	}, strings.NewReader("img"), "fixture.png")

	require.Error(t, err)
	assert.Zero(t, repo.inserts)
}

func TestSaveCaseStudyParsesResults(t *testing.T) {
	repo := &fakeContentRepo{}
	svc := NewService(repo, &fakeUploader{}, zap.NewNop())

	study := models.CaseStudy{Title: "Line automation", Description: "d", Client: "Acme"}
	_, err := svc.SaveCaseStudy(context.Background(), "", study, " 30% faster , , scrap halved ")
	require.NoError(t, err)

	require.Len(t, repo.caseStudies, 1)
	assert.Equal(t, []string{"30% faster", "scrap halved"}, repo.caseStudies[0].Results)
}

func TestSaveCaseStudyEmptyResultsIsValid(t *testing.T) {
	repo := &fakeContentRepo{}
	svc := NewService(repo, &fakeUploader{}, zap.NewNop())

	study := models.CaseStudy{Title: "Line automation", Description: "d", Client: "Acme"}
	_, err := svc.SaveCaseStudy(context.Background(), "", study, "")
	require.NoError(t, err)

	require.Len(t, repo.caseStudies, 1)
	assert.NotNil(t, repo.caseStudies[0].Results)
	assert.Empty(t, repo.caseStudies[0].Results)
}

func TestParseResults(t *testing.T) {
	assert.Equal(t, []string{}, ParseResults(""))
	assert.Equal(t, []string{"a", "b"}, ParseResults("a,b"))
	assert.Equal(t, []string{"a b"}, ParseResults(" a b "))
}
