// Package storage optionally publishes export bundles to S3. Publication is
// env-gated: with no bucket configured the pipeline simply keeps everything
// local.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"shortstudio/config"
)

// Options contains minimal configuration for creating an S3 client. Values
// fall back to the standard AWS config/credential chain when empty.
type Options struct {
	Region       string
	Profile      string
	UsePathStyle bool

	// Endpoint overrides the service URL, for localstack-style targets.
	Endpoint string
}

// Publisher wraps the AWS SDK S3 client behind the narrow surface the
// exporter needs.
type Publisher struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewPublisher creates a Publisher using the default AWS configuration chain
// with optional overrides.
func NewPublisher(ctx context.Context, opts Options, bucket, prefix string) (*Publisher, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = opts.UsePathStyle
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
	return &Publisher{client: client, bucket: bucket, prefix: prefix}, nil
}

// FromEnv builds a Publisher from S3_* environment variables. Returns nil
// (not an error) when S3_BUCKET is unset; the caller skips publication.
func FromEnv(ctx context.Context) *Publisher {
	bucket := strings.TrimSpace(os.Getenv(config.S3BucketEnv))
	if bucket == "" {
		return nil
	}

	opts := Options{
		Region:       strings.TrimSpace(os.Getenv(config.S3RegionEnv)),
		Profile:      strings.TrimSpace(os.Getenv(config.S3ProfileEnv)),
		UsePathStyle: strings.EqualFold(strings.TrimSpace(os.Getenv(config.S3UsePathStyleEnv)), "true"),
	}

	prefix := strings.TrimSpace(os.Getenv(config.S3PrefixEnv))
	if prefix != "" {
		prefix = strings.Trim(prefix, "/") + "/"
	}

	p, err := NewPublisher(ctx, opts, bucket, prefix)
	if err != nil {
		log.Printf("Warning: failed to init S3 client: %v (uploads disabled)", err)
		return nil
	}
	return p
}

// PublishBundle uploads the bundle archive under shorts/<id>/bundle.zip and
// returns the object key. Re-publishing the same session is a no-op: when the
// object already exists the key is returned without another upload.
func (p *Publisher) PublishBundle(ctx context.Context, bundleID string, data []byte) (string, error) {
	key := p.prefix + "shorts/" + bundleID + "/bundle.zip"
	if ok, err := p.Exists(ctx, key); err == nil && ok {
		return key, nil
	}
	if err := p.put(ctx, key, data, "application/zip"); err != nil {
		return "", fmt.Errorf("publish bundle: %w", err)
	}
	return key, nil
}

func (p *Publisher) put(ctx context.Context, key string, data []byte, contentType string) error {
	in := &s3.PutObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	_, err := p.client.PutObject(ctx, in)
	return err
}

// Exists returns true if the object exists; false on a 404/NotFound response.
func (p *Publisher) Exists(ctx context.Context, key string) (bool, error) {
	_, err := p.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == 404 {
		return false, nil
	}
	return false, err
}
