package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Project images live in a Cloudflare R2 bucket. The API never proxies the
// bytes; it hands out short-lived presigned URLs instead.
var (
	MediaClient *s3.Client
	MediaBucket string
)

// InitMedia configures the R2 client with static credentials and the
// account-scoped endpoint.
func InitMedia(accessKey, secretKey, accountID, bucket, region string) {
	MediaBucket = bucket
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)

	cfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		Region:      region,
	}

	MediaClient = s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	log.Println("Successfully initialized media storage client")
}

// PresignUploadURL creates a presigned URL for uploading an object.
func PresignUploadURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	presigner := s3.NewPresignClient(MediaClient)
	req, err := presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(MediaBucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// PresignDownloadURL creates a presigned URL for fetching an object.
func PresignDownloadURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	presigner := s3.NewPresignClient(MediaClient)
	req, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(MediaBucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// MediaObjectExists checks whether a key is present in the bucket.
func MediaObjectExists(ctx context.Context, key string) (bool, error) {
	_, err := MediaClient.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(MediaBucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *s3types.NotFound
		if errors.As(err, &nf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
