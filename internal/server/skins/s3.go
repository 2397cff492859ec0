package skins

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrijs2005/launchkeeper/internal/logging"
)

const (
	DefaultSkinKey = "skins/{uuid}.png"
	DefaultCapeKey = "capes/{uuid}.png"
	DefaultURLTTL  = 15 * time.Minute
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// S3Options locate the bucket holding skin and cape images. SkinKey and
// CapeKey are object key templates understood by Expand.
type S3Options struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
	SkinKey      string
	CapeKey      string
	TTL          time.Duration
}

// S3Lookup hands out presigned GET URLs for images in an S3 compatible store.
type S3Lookup struct {
	presign *s3.PresignClient
	opts    S3Options
	logger  logging.Logger
}

func NewS3Lookup(ctx context.Context, opts S3Options, logger logging.Logger) (*S3Lookup, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is empty")
	}
	if opts.SkinKey == "" {
		opts.SkinKey = DefaultSkinKey
	}
	if opts.CapeKey == "" {
		opts.CapeKey = DefaultCapeKey
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultURLTTL
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}

	cfg, err := loadDefaultAWSConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Lookup{
		presign: s3.NewPresignClient(client),
		opts:    opts,
		logger:  logger,
	}, nil
}

func (l *S3Lookup) url(ctx context.Context, tmpl, userUUID, userName string) string {
	key := Expand(tmpl, userUUID, userName)
	req, err := presignGetObject(l.presign, ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.opts.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(l.opts.TTL))
	if err != nil {
		l.logger.Warn(ctx, "presign failed", "key", key, "error", err)
		return ""
	}
	return req.URL
}

func (l *S3Lookup) Skin(ctx context.Context, userUUID, userName string) string {
	return l.url(ctx, l.opts.SkinKey, userUUID, userName)
}

func (l *S3Lookup) Cape(ctx context.Context, userUUID, userName string) string {
	return l.url(ctx, l.opts.CapeKey, userUUID, userName)
}
