package storage

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config" // Alias config to avoid clash
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"farhanadbm1/traintrack-client/internal/config"
)

// s3Uploader implements the Uploader interface against an S3-compatible
// backend. Files are written under a date prefix with a uuid key and the
// object URL is returned for the backend to store; the bucket is expected to
// serve objects publicly.
type s3Uploader struct {
	client     *s3.Client
	bucketName string
	endpoint   string
	region     string
}

// NewS3Uploader creates a new S3 upload service instance.
func NewS3Uploader(cfg config.S3Config) (Uploader, error) {
	// Custom resolver for S3-compatible endpoints (like MinIO, DigitalOcean Spaces)
	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if cfg.Endpoint != "" {
			return aws.Endpoint{
				PartitionID:   "aws",
				URL:           cfg.Endpoint,
				SigningRegion: cfg.Region,
			}, nil
		}
		// Fallback to default AWS endpoint resolution if no custom endpoint is set
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsSDKConfig, err := awsCfg.LoadDefaultConfig(context.TODO(),
		awsCfg.WithRegion(cfg.Region),
		awsCfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		awsCfg.WithEndpointResolverWithOptions(customResolver),
	)
	if err != nil {
		log.Printf("ERROR: Failed to load AWS SDK config for S3: %v", err)
		return nil, err
	}

	// Force path-style addressing required by most S3-compatible services (like MinIO)
	s3Client := s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	log.Printf("S3 upload service initialized for endpoint: %s, bucket: %s", cfg.Endpoint, cfg.BucketName)

	return &s3Uploader{
		client:     s3Client,
		bucketName: cfg.BucketName,
		endpoint:   cfg.Endpoint,
		region:     cfg.Region,
	}, nil
}

func (s *s3Uploader) Upload(ctx context.Context, in UploadInput) (string, error) {
	key := s.objectKey(in.FileName)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        in.Body,
		ContentType: aws.String(in.ContentType),
	})
	if err != nil {
		log.Printf("ERROR: Failed to upload object '%s' to bucket '%s': %v", key, s.bucketName, err)
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	log.Printf("INFO: Uploaded object '%s' to bucket '%s'", key, s.bucketName)
	return s.objectURL(key), nil
}

// objectKey buckets uploads by month and prefixes a uuid so identically named
// files never collide.
func (s *s3Uploader) objectKey(fileName string) string {
	name := strings.ReplaceAll(path.Base(fileName), " ", "_")
	return fmt.Sprintf("uploads/%s/%s-%s", time.Now().UTC().Format("2006/01"), uuid.New().String(), name)
}

// objectURL builds the public URL for a stored object: path style against a
// custom endpoint, virtual-hosted style against AWS proper.
func (s *s3Uploader) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.endpoint, "/"), s.bucketName, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, key)
}
