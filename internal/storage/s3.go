package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Store stores uploads in an S3-compatible bucket (AWS or MinIO).
type S3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Store builds a store from environment configuration. Static
// credentials are used when provided (MinIO, explicit keys); otherwise the
// default AWS credential chain applies.
func NewS3Store(ctx context.Context) (*S3Store, error) {
	region := envDefault("S3_REGION", "us-east-1")
	bucket := envDefault("S3_BUCKET", "backoffice-uploads")
	endpoint := os.Getenv("S3_ENDPOINT")
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")

	var cfg aws.Config
	var err error
	if accessKey != "" && secretKey != "" {
		cfg, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(region),
			awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
			),
		)
	} else {
		cfg, err = awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := os.Getenv("S3_PUBLIC_URL")
	if publicURL == "" {
		if endpoint != "" {
			publicURL = fmt.Sprintf("%s/%s", endpoint, bucket)
		} else {
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
		}
	}

	return &S3Store{client: client, bucket: bucket, publicURL: publicURL}, nil
}

// Upload writes the bytes under a fresh uuid key inside folder and returns
// the public URL plus the key for later deletion.
func (s *S3Store) Upload(ctx context.Context, data []byte, folder, contentType string) (BlobInfo, error) {
	key := path.Join(folder, uuid.NewString())
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return BlobInfo{}, fmt.Errorf("failed to upload to s3: %w", err)
	}
	return BlobInfo{
		URL:      fmt.Sprintf("%s/%s", s.publicURL, key),
		PublicID: key,
	}, nil
}

// Delete removes an object by its key. Missing objects are not an error.
func (s *S3Store) Delete(ctx context.Context, publicID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from s3: %w", err)
	}
	return nil
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
