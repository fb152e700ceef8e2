package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PortfolioProject is one entry of the public work portfolio. The image URL
// points at the uploaded object in the storage bucket.
type PortfolioProject struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Category string             `bson:"category" json:"category"`
	Image    string             `bson:"image" json:"image"`
}

// Testimonial is a client quote rotated on the home page.
type Testimonial struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Quote    string             `bson:"quote" json:"quote"`
	Author   string             `bson:"author" json:"author"`
	Position string             `bson:"position" json:"position"`
	Company  string             `bson:"company" json:"company"`
}

// CaseStudy describes a completed engagement. Results is always materialized
// as a slice; documents written without it read back as an empty list.
type CaseStudy struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Client      string             `bson:"client" json:"client"`
	Results     []string           `bson:"results" json:"results"`
}

// ClientEntry is one company shown on the clients page.
type ClientEntry struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
	Logo string             `bson:"logo,omitempty" json:"logo,omitempty"`
}

// Slide is one hero image on the landing page, loaded from the slide file
// rather than the document store.
type Slide struct {
	Title string `json:"title"`
	Image string `json:"image"`
}
