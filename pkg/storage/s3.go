package storage

import (
	"context"
	"fmt"
	"os"
	"time"

	appconfig "backoffice-service/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Presigner issues short-lived signed upload targets for client-side PUTs.
type Presigner interface {
	PresignPut(ctx context.Context, objectKey, contentType string) (string, error)
	PublicURL(objectKey string) string
}

// S3Presigner implements Presigner against AWS S3.
type S3Presigner struct {
	client *s3.PresignClient
	bucket string
	region string
	expiry time.Duration
}

// NewS3Presigner builds a presigner from configuration. Static credentials
// from the environment take precedence over the default chain.
func NewS3Presigner(ctx context.Context, cfg *appconfig.S3Config) (*S3Presigner, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET_NAME is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if id, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY"); id != "" && secret != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(id, secret, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Presigner{
		client: s3.NewPresignClient(s3.NewFromConfig(awsCfg)),
		bucket: cfg.Bucket,
		region: cfg.Region,
		expiry: cfg.PresignExpiry,
	}, nil
}

// PresignPut returns a signed URL the client can PUT the object to.
func (p *S3Presigner) PresignPut(ctx context.Context, objectKey, contentType string) (string, error) {
	req, err := p.client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(objectKey),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(p.expiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// PublicURL returns the public object URL the upload will be reachable at.
func (p *S3Presigner) PublicURL(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", p.bucket, p.region, objectKey)
}
