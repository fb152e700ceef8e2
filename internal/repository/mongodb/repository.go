package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vighnaharta/engineers-backend/internal/domain/models"
)

// Collection names as they exist in the document store.
const (
	collPortfolio    = "portfolio"
	collTestimonials = "testimonials"
	collCaseStudies  = "case_studies"
	collClients      = "clients"
	collInvoices     = "invoices"
)

// ErrNotFound indicates the referenced document does not exist.
var ErrNotFound = errors.New("document not found")

// ContentRepository defines persistence for the site content collections.
type ContentRepository interface {
	ListProjects(ctx context.Context) ([]models.PortfolioProject, error)
	InsertProject(ctx context.Context, project models.PortfolioProject) (string, error)
	UpdateProject(ctx context.Context, id string, project models.PortfolioProject) error
	DeleteProject(ctx context.Context, id string) error

	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	InsertTestimonial(ctx context.Context, testimonial models.Testimonial) (string, error)
	UpdateTestimonial(ctx context.Context, id string, testimonial models.Testimonial) error
	DeleteTestimonial(ctx context.Context, id string) error

	ListCaseStudies(ctx context.Context) ([]models.CaseStudy, error)
	InsertCaseStudy(ctx context.Context, study models.CaseStudy) (string, error)
	UpdateCaseStudy(ctx context.Context, id string, study models.CaseStudy) error
	DeleteCaseStudy(ctx context.Context, id string) error

	ListClients(ctx context.Context) ([]models.ClientEntry, error)
}

// InvoiceRepository defines persistence for invoices. Saved invoices are
// immutable snapshots, so there is deliberately no update operation.
type InvoiceRepository interface {
	InsertInvoice(ctx context.Context, invoice models.Invoice) (string, error)
	ListInvoices(ctx context.Context) ([]models.Invoice, error)
	GetInvoice(ctx context.Context, id string) (models.Invoice, error)
}

// MongoDBRepository implements ContentRepository and InvoiceRepository.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
}

// NewMongoDBRepository connects to MongoDB and verifies the connection.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{client: client, dbName: dbName}, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoDBRepository) collection(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}

func listAll[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s documents: %w", coll.Name(), err)
	}
	return out, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc any) (string, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", coll.Name(), err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

func updateByID(ctx context.Context, coll *mongo.Collection, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a document.
		return ErrNotFound
	}

	res, err := coll.UpdateByID(ctx, oid, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", coll.Name(), id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", coll.Name(), id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListProjects returns every portfolio document.
func (r *MongoDBRepository) ListProjects(ctx context.Context) ([]models.PortfolioProject, error) {
	return listAll[models.PortfolioProject](ctx, r.collection(collPortfolio))
}

// InsertProject stores a new portfolio document and returns its id.
func (r *MongoDBRepository) InsertProject(ctx context.Context, project models.PortfolioProject) (string, error) {
	project.ID = primitive.NilObjectID
	return insertOne(ctx, r.collection(collPortfolio), project)
}

// UpdateProject replaces the editable fields of a portfolio document.
func (r *MongoDBRepository) UpdateProject(ctx context.Context, id string, project models.PortfolioProject) error {
	return updateByID(ctx, r.collection(collPortfolio), id, bson.M{
		"title":    project.Title,
		"category": project.Category,
		"image":    project.Image,
	})
}

// DeleteProject removes a portfolio document.
func (r *MongoDBRepository) DeleteProject(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection(collPortfolio), id)
}

// ListTestimonials returns every testimonial document.
func (r *MongoDBRepository) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return listAll[models.Testimonial](ctx, r.collection(collTestimonials))
}

// InsertTestimonial stores a new testimonial and returns its id.
func (r *MongoDBRepository) InsertTestimonial(ctx context.Context, testimonial models.Testimonial) (string, error) {
	testimonial.ID = primitive.NilObjectID
	return insertOne(ctx, r.collection(collTestimonials), testimonial)
}

// UpdateTestimonial replaces the editable fields of a testimonial.
func (r *MongoDBRepository) UpdateTestimonial(ctx context.Context, id string, testimonial models.Testimonial) error {
	return updateByID(ctx, r.collection(collTestimonials), id, bson.M{
		"quote":    testimonial.Quote,
		"author":   testimonial.Author,
		"position": testimonial.Position,
		"company":  testimonial.Company,
	})
}

// DeleteTestimonial removes a testimonial document.
func (r *MongoDBRepository) DeleteTestimonial(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection(collTestimonials), id)
}

// ListCaseStudies returns every case study. Documents missing the results
// field come back with an empty slice, never nil handling at call sites.
func (r *MongoDBRepository) ListCaseStudies(ctx context.Context) ([]models.CaseStudy, error) {
	studies, err := listAll[models.CaseStudy](ctx, r.collection(collCaseStudies))
	if err != nil {
		return nil, err
	}
	for i := range studies {
		if studies[i].Results == nil {
			studies[i].Results = []string{}
		}
	}
	return studies, nil
}

// InsertCaseStudy stores a new case study and returns its id.
func (r *MongoDBRepository) InsertCaseStudy(ctx context.Context, study models.CaseStudy) (string, error) {
	study.ID = primitive.NilObjectID
	if study.Results == nil {
		study.Results = []string{}
	}
	return insertOne(ctx, r.collection(collCaseStudies), study)
}

// UpdateCaseStudy replaces the editable fields of a case study.
func (r *MongoDBRepository) UpdateCaseStudy(ctx context.Context, id string, study models.CaseStudy) error {
	results := study.Results
	if results == nil {
		results = []string{}
	}
	return updateByID(ctx, r.collection(collCaseStudies), id, bson.M{
		"title":       study.Title,
		"description": study.Description,
		"client":      study.Client,
		"results":     results,
	})
}

// DeleteCaseStudy removes a case study document.
func (r *MongoDBRepository) DeleteCaseStudy(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection(collCaseStudies), id)
}

// ListClients returns every client document.
func (r *MongoDBRepository) ListClients(ctx context.Context) ([]models.ClientEntry, error) {
	return listAll[models.ClientEntry](ctx, r.collection(collClients))
}

// InsertInvoice stores an invoice snapshot and returns its id.
func (r *MongoDBRepository) InsertInvoice(ctx context.Context, invoice models.Invoice) (string, error) {
	invoice.ID = primitive.NilObjectID
	return insertOne(ctx, r.collection(collInvoices), invoice)
}

// ListInvoices returns saved invoices, newest first.
func (r *MongoDBRepository) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection(collInvoices).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collInvoices, err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, fmt.Errorf("decode %s documents: %w", collInvoices, err)
	}
	return invoices, nil
}

// GetInvoice fetches one invoice by id.
func (r *MongoDBRepository) GetInvoice(ctx context.Context, id string) (models.Invoice, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Invoice{}, ErrNotFound
	}

	var invoice models.Invoice
	err = r.collection(collInvoices).FindOne(ctx, bson.M{"_id": oid}).Decode(&invoice)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Invoice{}, ErrNotFound
	}
	if err != nil {
		return models.Invoice{}, fmt.Errorf("get invoice %s: %w", id, err)
	}
	return invoice, nil
}
