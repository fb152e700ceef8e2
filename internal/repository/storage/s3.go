package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vighnaharta/engineers-backend/internal/config"
)

// Uploader accepts image bytes and returns a retrievable URL.
type Uploader interface {
	UploadImage(ctx context.Context, filename string, body io.Reader) (string, error)
}

// S3Uploader stores portfolio images in an S3 bucket under the portfolio/ prefix.
type S3Uploader struct {
	uploader *s3manager.Uploader
	bucket   string
	logger   *zap.Logger
}

// NewS3Uploader builds an uploader from the storage configuration.
func NewS3Uploader(cfg config.StorageConfig, logger *zap.Logger) (*S3Uploader, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	sess, err := session.NewSession(&aws.Config{Region: aws.String(cfg.Region)})
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	return &S3Uploader{
		uploader: s3manager.NewUploader(sess),
		bucket:   cfg.Bucket,
		logger:   logger,
	}, nil
}

// UploadImage writes the image under a unique key and returns its URL.
// Keys follow portfolio/<uuid>-<original-name> so uploads never collide.
func (u *S3Uploader) UploadImage(ctx context.Context, filename string, body io.Reader) (string, error) {
	key := fmt.Sprintf("portfolio/%s-%s", uuid.NewString(), sanitizeFilename(filename))

	out, err := u.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		return "", fmt.Errorf("upload image %s: %w", key, err)
	}

	u.logger.Debug("image uploaded", zap.String("key", key), zap.String("url", out.Location))
	return out.Location, nil
}

func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	if name == "" || name == "." {
		return "image"
	}
	return name
}
