package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Publisher stores exported files.
type Publisher interface {
	// Publish stores data under name, a slash-separated relative path.
	Publish(ctx context.Context, name string, data []byte, contentType string) error

	// String describes the publish target for logs.
	String() string
}

// DirPublisher writes exported files below a local directory.
type DirPublisher struct {
	dir string
}

// NewDirPublisher creates a publisher rooted at dir. The directory is
// created on first publish.
func NewDirPublisher(dir string) *DirPublisher {
	return &DirPublisher{dir: dir}
}

// Publish writes data to dir/name.
func (p *DirPublisher) Publish(ctx context.Context, name string, data []byte, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rel, err := cleanName(name)
	if err != nil {
		return err
	}
	target := filepath.Join(p.dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

func (p *DirPublisher) String() string { return "dir:" + p.dir }

// S3API is the subset of the S3 client used by S3Publisher.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads exported files to an S3 bucket.
type S3Publisher struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Publisher creates a publisher that writes to bucket, with every key
// under prefix.
func NewS3Publisher(client S3API, bucket, prefix string) *S3Publisher {
	return &S3Publisher{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// NewS3PublisherFromEnv loads the default AWS configuration, optionally
// overriding the region, and creates an S3Publisher.
func NewS3PublisherFromEnv(ctx context.Context, region, bucket, prefix string) (*S3Publisher, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewS3Publisher(s3.NewFromConfig(cfg), bucket, prefix), nil
}

// Key returns the object key for name.
func (p *S3Publisher) Key(name string) string {
	if p.prefix == "" {
		return name
	}
	return path.Join(p.prefix, name)
}

// Publish uploads data as bucket/prefix/name.
func (p *S3Publisher) Publish(ctx context.Context, name string, data []byte, contentType string) error {
	rel, err := cleanName(name)
	if err != nil {
		return err
	}
	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(p.Key(rel)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"generator": "kview",
		},
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", p.bucket, p.Key(rel), err)
	}
	return nil
}

func (p *S3Publisher) String() string {
	if p.prefix == "" {
		return "s3://" + p.bucket
	}
	return "s3://" + p.bucket + "/" + p.prefix
}

// cleanName validates a relative slash-separated name.
func cleanName(name string) (string, error) {
	clean := path.Clean("/" + name)[1:]
	if clean == "" || clean != name {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	return clean, nil
}
