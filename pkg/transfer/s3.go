package transfer

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	pkgerrors "github.com/is00hcw/genie/pkg/errors"
)

// s3API is the subset of the S3 client the transferer needs. Narrowing the
// surface keeps the backend testable without a live endpoint.
type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// S3Options configures the S3 transferer.
type S3Options struct {
	Region         string // AWS region; empty defers to the SDK's resolution chain
	Endpoint       string // custom endpoint, e.g. a MinIO or localstack URL
	ForcePathStyle bool   // path-style addressing for S3-compatible stores
}

// S3 transfers files addressed as s3://bucket/key. Fetched files get their
// mtime set from the object's LastModified so the cache's freshness compare is
// exact.
type S3 struct {
	client s3API
}

// NewS3 creates an S3 transferer using the default AWS credential chain.
func NewS3(ctx context.Context, opts S3Options) (*S3, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to load AWS config")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		if opts.ForcePathStyle {
			o.UsePathStyle = true
		}
	})
	return NewS3WithClient(client), nil
}

// NewS3WithClient creates an S3 transferer around an existing client.
func NewS3WithClient(client s3API) *S3 {
	return &S3{client: client}
}

// Fetch downloads s3://bucket/key to dstLocalPath.
func (t *S3) Fetch(ctx context.Context, srcRemotePath, dstLocalPath string) error {
	bucket, key, err := parseS3Path(srcRemotePath)
	if err != nil {
		return err
	}

	out, err := t.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return translateS3Error(err, srcRemotePath)
	}
	defer func() { _ = out.Body.Close() }()

	var modTime time.Time
	if out.LastModified != nil {
		modTime = *out.LastModified
	}
	return installFile(out.Body, dstLocalPath, modTime)
}

// LastModified reports the object's LastModified timestamp via HeadObject.
func (t *S3) LastModified(ctx context.Context, remotePath string) (time.Time, error) {
	bucket, key, err := parseS3Path(remotePath)
	if err != nil {
		return time.Time{}, err
	}

	out, err := t.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return time.Time{}, translateS3Error(err, remotePath)
	}
	if out.LastModified == nil {
		return time.Time{}, nil
	}
	return *out.LastModified, nil
}

// parseS3Path splits s3://bucket/key into bucket and key.
func parseS3Path(remotePath string) (bucket, key string, err error) {
	u, err := url.Parse(remotePath)
	if err != nil {
		return "", "", pkgerrors.Wrapf(pkgerrors.ErrInvalidRemotePath, "%s: %v", remotePath, err)
	}
	if u.Scheme != SchemeS3 || u.Host == "" {
		return "", "", pkgerrors.Wrapf(pkgerrors.ErrInvalidRemotePath, "%s is not an s3://bucket/key path", remotePath)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", pkgerrors.Wrapf(pkgerrors.ErrInvalidRemotePath, "%s has no object key", remotePath)
	}
	return u.Host, key, nil
}

// translateS3Error maps SDK errors onto the transfer error taxonomy.
func translateS3Error(err error, remotePath string) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return pkgerrors.Wrapf(pkgerrors.ErrFileNotFound, "%s", remotePath)
		}
	}
	return fmt.Errorf("%w: %v", pkgerrors.ErrTransferFailed, err)
}
