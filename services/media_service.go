package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MediaService hands out presigned S3 URLs so clients upload and fetch media
// directly against the bucket; the server never stores bytes itself.
type MediaService struct {
	Client *s3.Client
	Bucket string
}

// NewMediaService creates a MediaService for the given bucket.
func NewMediaService(ctx context.Context, region, bucket string) (*MediaService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &MediaService{Client: s3.NewFromConfig(cfg), Bucket: bucket}, nil
}

// GenerateUploadURL generates a presigned URL for uploading a file. Returns
// the URL and the object key to reference from profiles/posts.
func (ms *MediaService) GenerateUploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	key := "pet-media/" + time.Now().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(ms.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presigner := s3.NewPresignClient(ms.Client)
	presignedURL, err := presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", err
	}
	return presignedURL.URL, key, nil
}

// GenerateReadURL generates a presigned URL for reading a stored object.
func (ms *MediaService) GenerateReadURL(ctx context.Context, key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(ms.Bucket),
		Key:    aws.String(key),
	}
	presigner := s3.NewPresignClient(ms.Client)
	presignedURL, err := presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", err
	}
	return presignedURL.URL, nil
}
