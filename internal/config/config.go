package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Storage  StorageConfig
	Mail     MailConfig
	Identity IdentityConfig
	Sheets   SheetsConfig
	Carousel CarouselConfig
	Invoice  InvoiceConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for the MongoDB document store.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// StorageConfig holds settings for the S3 bucket receiving portfolio images.
type StorageConfig struct {
	Region string
	Bucket string
}

// MailConfig contains credentials for the EmailJS relay used by the contact form.
type MailConfig struct {
	BaseURL    string
	ServiceID  string
	TemplateID string
	PublicKey  string
}

// IdentityConfig contains settings for the Firebase Auth REST API gating the admin panel.
type IdentityConfig struct {
	BaseURL string
	APIKey  string
}

// SheetsConfig configures the optional Google Sheets invoice ledger.
// Leaving both fields empty disables the ledger entirely.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// CarouselConfig holds rotation periods and page sizes for the public site carousels.
type CarouselConfig struct {
	SlidePeriod       time.Duration
	TestimonialPeriod time.Duration
	ProjectPeriod     time.Duration
	ProjectPageSize   int
	SlidesPath        string
	RefreshSchedule   string
}

// InvoiceConfig carries the GST rate and the issuing company identity printed on invoices.
type InvoiceConfig struct {
	GSTRate           float64
	CompanyName       string
	CompanyGSTIN      string
	CompanyVendorCode string
	CompanyUAN        string
	CompanyAddress    string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	slidePeriod, err := getenvDuration("CAROUSEL_SLIDE_PERIOD", 7*time.Second)
	if err != nil {
		return nil, err
	}
	testimonialPeriod, err := getenvDuration("CAROUSEL_TESTIMONIAL_PERIOD", 7*time.Second)
	if err != nil {
		return nil, err
	}
	projectPeriod, err := getenvDuration("CAROUSEL_PROJECT_PERIOD", 7*time.Second)
	if err != nil {
		return nil, err
	}
	projectPageSize, err := getenvInt("CAROUSEL_PROJECT_PAGE_SIZE", 3)
	if err != nil {
		return nil, err
	}
	gstRate, err := getenvFloat("INVOICE_GST_RATE", 0.18)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "vighnaharta"),
		},
		Storage: StorageConfig{
			Region: os.Getenv("AWS_REGION"),
			Bucket: os.Getenv("S3_BUCKET"),
		},
		Mail: MailConfig{
			BaseURL:    getenvWithDefault("EMAILJS_BASE_URL", "https://api.emailjs.com"),
			ServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
			TemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
			PublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
		},
		Identity: IdentityConfig{
			BaseURL: getenvWithDefault("IDENTITY_BASE_URL", "https://identitytoolkit.googleapis.com"),
			APIKey:  os.Getenv("IDENTITY_API_KEY"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("INVOICE_LEDGER_SPREADSHEET_ID"),
		},
		Carousel: CarouselConfig{
			SlidePeriod:       slidePeriod,
			TestimonialPeriod: testimonialPeriod,
			ProjectPeriod:     projectPeriod,
			ProjectPageSize:   projectPageSize,
			SlidesPath:        getenvWithDefault("SLIDES_PATH", "data/slides.json"),
			RefreshSchedule:   getenvWithDefault("CONTENT_REFRESH_SCHEDULE", "@every 1m"),
		},
		Invoice: InvoiceConfig{
			GSTRate:           gstRate,
			CompanyName:       getenvWithDefault("COMPANY_NAME", "VIGHNAHARTA ENGINEERS"),
			CompanyGSTIN:      getenvWithDefault("COMPANY_GSTIN", "27AAKFV7481P1ZC"),
			CompanyVendorCode: getenvWithDefault("COMPANY_VENDOR_CODE", "V001"),
			CompanyUAN:        getenvWithDefault("COMPANY_UAN", "MH19A0001234"),
			CompanyAddress:    getenvWithDefault("COMPANY_ADDRESS", "Gat No. 123, Pune-Nashik Highway, Pune, Maharashtra - 412105"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.MongoDB.URI == "":
		return errors.New("MONGODB_URI must be provided")
	case c.MongoDB.DBName == "":
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	switch {
	case c.Storage.Region == "":
		return errors.New("AWS_REGION must be provided")
	case c.Storage.Bucket == "":
		return errors.New("S3_BUCKET must be provided")
	}

	switch {
	case c.Mail.ServiceID == "":
		return errors.New("EMAILJS_SERVICE_ID must be provided")
	case c.Mail.TemplateID == "":
		return errors.New("EMAILJS_TEMPLATE_ID must be provided")
	case c.Mail.PublicKey == "":
		return errors.New("EMAILJS_PUBLIC_KEY must be provided")
	}

	if c.Identity.APIKey == "" {
		return errors.New("IDENTITY_API_KEY must be provided")
	}

	// The ledger is optional but must be configured as a pair.
	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and INVOICE_LEDGER_SPREADSHEET_ID must be set together")
	}

	switch {
	case c.Carousel.SlidePeriod <= 0:
		return errors.New("CAROUSEL_SLIDE_PERIOD must be positive")
	case c.Carousel.TestimonialPeriod <= 0:
		return errors.New("CAROUSEL_TESTIMONIAL_PERIOD must be positive")
	case c.Carousel.ProjectPeriod <= 0:
		return errors.New("CAROUSEL_PROJECT_PERIOD must be positive")
	case c.Carousel.ProjectPageSize < 1:
		return errors.New("CAROUSEL_PROJECT_PAGE_SIZE must be at least 1")
	case c.Carousel.SlidesPath == "":
		return errors.New("SLIDES_PATH must not be empty")
	case c.Carousel.RefreshSchedule == "":
		return errors.New("CONTENT_REFRESH_SCHEDULE must not be empty")
	}

	if c.Invoice.GSTRate < 0 || c.Invoice.GSTRate > 1 {
		return errors.New("INVOICE_GST_RATE must be between 0 and 1")
	}
	if c.Invoice.CompanyName == "" {
		return errors.New("COMPANY_NAME must not be empty")
	}

	return nil
}

// SheetsEnabled reports whether the invoice ledger integration is configured.
func (c *Config) SheetsEnabled() bool {
	return c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID != ""
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s is not a valid duration: %w", key, err)
	}
	return d, nil
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s is not a valid integer: %w", key, err)
	}
	return n, nil
}

func getenvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s is not a valid number: %w", key, err)
	}
	return f, nil
}
