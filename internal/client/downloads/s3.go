package downloads

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"

	"github.com/Kerimcanak/SnapCryptor/internal/client/config"
	"github.com/Kerimcanak/SnapCryptor/internal/client/models"
	"github.com/Kerimcanak/SnapCryptor/internal/filex"
	"github.com/Kerimcanak/SnapCryptor/internal/netx"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) PutObjectAPI {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// PutObjectAPI is the part of *s3.Client the mirror uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Mirror copies processed files into a bucket under
// <prefix>/<yyyy>/<mm>/<dd>/<name>.
type S3Mirror struct {
	api    PutObjectAPI
	bucket string
	prefix string
	hc     *http.Client
	now    func() time.Time
}

// NewS3Mirror builds an S3 client from cfg. A custom endpoint (MinIO and
// friends) switches the client to path-style addressing.
func NewS3Mirror(ctx context.Context, cfg config.S3Config, hc *http.Client) (*S3Mirror, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	api := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3MirrorWithAPI(api, cfg.Bucket, cfg.Prefix, hc), nil
}

func NewS3MirrorWithAPI(api PutObjectAPI, bucket, prefix string, hc *http.Client) *S3Mirror {
	return &S3Mirror{api: api, bucket: bucket, prefix: prefix, hc: hc, now: time.Now}
}

// Key returns the object key a file named name would be stored under now.
func (m *S3Mirror) Key(name string) string {
	d := m.now().UTC()
	return path.Join(m.prefix,
		fmt.Sprintf("%04d", d.Year()),
		fmt.Sprintf("%02d", int(d.Month())),
		fmt.Sprintf("%02d", d.Day()),
		filex.SafeBaseName(name, models.DefaultProcessedName))
}

func (m *S3Mirror) TriggerDownload(ctx context.Context, url, suggestedName string) error {
	data, err := netx.Download(ctx, m.hc, url)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}

	key := m.Key(suggestedName)
	_, err = m.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(m.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(mimetype.Detect(data).String()),
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", m.bucket, key, err)
	}
	return nil
}
