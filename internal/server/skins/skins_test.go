package skins

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/launchkeeper/internal/logging"
)

const aliceUUID = "0c9e1a8e-3f4e-5b7a-9d4c-1234567890ab"

func TestExpand(t *testing.T) {
	assert.Equal(t, "", Expand("", aliceUUID, "alice"))
	assert.Equal(t, "https://cdn/skins/alice.png", Expand("https://cdn/skins/{username}.png", aliceUUID, "alice"))
	assert.Equal(t, "u/"+aliceUUID, Expand("u/{uuid}", aliceUUID, "alice"))
	assert.Equal(t, "u/0c9e1a8e3f4e5b7a9d4c1234567890ab", Expand("u/{uuid_nodash}", aliceUUID, "alice"))
}

func TestTemplateLookup(t *testing.T) {
	l := TemplateLookup{SkinURL: "https://cdn/skins/{username}.png"}
	ctx := context.Background()

	assert.Equal(t, "https://cdn/skins/alice.png", l.Skin(ctx, aliceUUID, "alice"))
	assert.Equal(t, "", l.Cape(ctx, aliceUUID, "alice"))
}

func newTestS3Lookup(t *testing.T) *S3Lookup {
	t.Helper()
	l, err := NewS3Lookup(context.Background(), S3Options{
		Bucket:       "launcher",
		Region:       "us-east-1",
		BaseEndpoint: "http://127.0.0.1:9000",
		AccessKey:    "minioadmin",
		SecretKey:    "minioadmin",
		TTL:          time.Minute,
	}, logging.Nop{})
	require.NoError(t, err)
	return l
}

func TestS3Lookup_PresignsLocally(t *testing.T) {
	l := newTestS3Lookup(t)

	u := l.Skin(context.Background(), aliceUUID, "alice")
	assert.Contains(t, u, "http://127.0.0.1:9000/launcher/skins/"+aliceUUID+".png")
	assert.Contains(t, u, "X-Amz-Signature=")
	assert.Contains(t, u, "X-Amz-Expires=60")

	c := l.Cape(context.Background(), aliceUUID, "alice")
	assert.Contains(t, c, "/launcher/capes/"+aliceUUID+".png")
}

func TestS3Lookup_PresignErrorYieldsEmpty(t *testing.T) {
	l := newTestS3Lookup(t)

	orig := presignGetObject
	t.Cleanup(func() { presignGetObject = orig })
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign boom")
	}

	assert.Equal(t, "", l.Skin(context.Background(), aliceUUID, "alice"))
}

func TestNewS3Lookup_Errors(t *testing.T) {
	_, err := NewS3Lookup(context.Background(), S3Options{}, logging.Nop{})
	assert.Error(t, err)

	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("cfg boom")
	}

	_, err = NewS3Lookup(context.Background(), S3Options{Bucket: "b"}, logging.Nop{})
	assert.ErrorContains(t, err, "cfg boom")
}

func TestNewS3Lookup_AppliesEndpoint(t *testing.T) {
	orig := newS3ClientFromConfig
	t.Cleanup(func() { newS3ClientFromConfig = orig })

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return s3.NewFromConfig(cfg, optFns...)
	}

	l := newTestS3Lookup(t)
	require.NotNil(t, l)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, DefaultSkinKey, l.opts.SkinKey)
}
