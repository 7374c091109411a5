package blob

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store keeps narration audio and covers in S3-compatible object storage and
// builds token-guarded download URLs without any external call.
type Store struct {
	client           *minio.Client
	bucket           string
	downloadEndpoint string
}

func NewStore(endpoint, accessKey, secretKey, bucket string, useSSL bool, downloadEndpoint string) (*Store, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init blob client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &Store{client: client, bucket: bucket, downloadEndpoint: downloadEndpoint}, nil
}

// AudioKey and CoverKey are the deterministic object paths for one story.
func AudioKey(ownerID, storyID string) string {
	return fmt.Sprintf("stories/%s/%s.mp3", ownerID, storyID)
}

func CoverKey(ownerID, storyID, extension string) string {
	return fmt.Sprintf("stories/%s/%s.%s", ownerID, storyID, extension)
}

// Put uploads an object and stamps it with the download token that
// DownloadURL embeds, so a stored object can always be matched to its link.
func (s *Store) Put(ctx context.Context, key string, data []byte, contentType, cacheControl, token string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: cacheControl,
		UserMetadata: map[string]string{"download-token": token},
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

// DownloadURL builds the public URI from the endpoint template, bucket,
// encoded object path and access token.
func (s *Store) DownloadURL(key, token string) string {
	return fmt.Sprintf("%s/%s/o/%s?alt=media&token=%s", s.downloadEndpoint, s.bucket, url.PathEscape(key), token)
}
