package upload

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"inovasi_backend/internals/configs"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSSStore menyimpan file ke Alibaba Cloud OSS; key = prefix + path relatif.
type OSSStore struct {
	Bucket     *oss.Bucket
	BucketName string
	Prefix     string
}

func NewOSSStoreFromEnv() (*OSSStore, error) {
	endpoint := configs.GetEnv("ALI_OSS_ENDPOINT")
	ak := configs.GetEnv("ALI_OSS_ACCESS_KEY")
	sk := configs.GetEnv("ALI_OSS_SECRET_KEY")
	bucketName := configs.GetEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 {
			log.Printf("[OSS] warn: skip location check (bucket=%s): %s", bucketName, se.Code)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSStore{
		Bucket:     bkt,
		BucketName: bucketName,
		Prefix:     strings.Trim(configs.GetEnv("ALI_OSS_PREFIX", "inovasi"), "/"),
	}, nil
}

func (s *OSSStore) key(rel string) (string, error) {
	c, err := CleanRel(rel)
	if err != nil {
		return "", err
	}
	if s.Prefix == "" {
		return c, nil
	}
	return s.Prefix + "/" + c, nil
}

func (s *OSSStore) Save(ctx context.Context, relPath string, r io.Reader, contentType string) error {
	key, err := s.key(relPath)
	if err != nil {
		return err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return s.Bucket.PutObject(key, r,
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	)
}

func (s *OSSStore) Delete(ctx context.Context, relPath string) error {
	key, err := s.key(relPath)
	if err != nil {
		return err
	}
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

func (s *OSSStore) DeleteDir(ctx context.Context, relDir string) error {
	prefix, err := s.key(relDir)
	if err != nil {
		return err
	}
	var keys []string
	if err := s.list(ctx, prefix+"/", func(o oss.ObjectProperties) error {
		keys = append(keys, o.Key)
		return nil
	}); err != nil {
		return err
	}
	for i := 0; i < len(keys); i += 1000 {
		end := i + 1000
		if end > len(keys) {
			end = len(keys)
		}
		if _, err := s.Bucket.DeleteObjects(keys[i:end], oss.DeleteObjectsQuiet(true), oss.WithContext(ctx)); err != nil {
			return err
		}
	}
	return nil
}

func (s *OSSStore) Walk(ctx context.Context, fn func(relPath string, modTime time.Time) error) error {
	prefix := ""
	if s.Prefix != "" {
		prefix = s.Prefix + "/"
	}
	return s.list(ctx, prefix, func(o oss.ObjectProperties) error {
		if o.Key == "" || strings.HasSuffix(o.Key, "/") {
			return nil
		}
		return fn(strings.TrimPrefix(o.Key, prefix), o.LastModified)
	})
}

func (s *OSSStore) list(ctx context.Context, prefix string, fn func(oss.ObjectProperties) error) error {
	marker := oss.Marker("")
	for {
		lor, err := s.Bucket.ListObjects(oss.Prefix(prefix), marker, oss.MaxKeys(1000), oss.WithContext(ctx))
		if err != nil {
			return err
		}
		for _, obj := range lor.Objects {
			if err := fn(obj); err != nil {
				return err
			}
		}
		if !lor.IsTruncated {
			return nil
		}
		marker = oss.Marker(lor.NextMarker)
	}
}
