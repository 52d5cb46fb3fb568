package export

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/proteincraft/rincraft/pkg/logging"
)

// S3Uploader pushes batch result files to an S3 bucket.
type S3Uploader struct {
	client *s3.Client
	bucket string
	prefix string
	logger logging.Logger
}

// NewS3Uploader builds an uploader from the ambient AWS credential
// chain. Region may be empty when the environment provides one.
func NewS3Uploader(ctx context.Context, bucket, prefix, region string, logger logging.Logger) (*S3Uploader, error) {
	opts := []func(*awscfg.LoadOptions) error{}
	if region != "" {
		opts = append(opts, awscfg.WithRegion(region))
	}
	cfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("aws config load: %w", err)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &S3Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}, nil
}

// Upload stores one result object under the configured prefix and
// returns its object key.
func (u *S3Uploader) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	key := path.Join(u.prefix, name)
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading s3://%s/%s: %w", u.bucket, key, err)
	}
	u.logger.Info("uploaded batch results",
		logging.String("bucket", u.bucket),
		logging.String("key", key),
		logging.Count(len(data)))
	return key, nil
}
