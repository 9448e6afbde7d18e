package media

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/jamesfcoton/site-backend/errs"
)

const presignTTL = 12 * time.Hour

// Config carries the bucket connection settings. PublicBaseURL is optional;
// when set, object URLs are built from it instead of presigned.
type Config struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

// Storage is the bucket gateway. A nil *Storage is legal and means media is
// not configured; every operation then reports errs.ErrStorageUnavailable.
type Storage struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	baseURL string
	logger  zerolog.Logger
}

// NewStorage connects to an S3-compatible bucket. Path-style addressing is
// on so MinIO and friends work with the same settings.
func NewStorage(ctx context.Context, cfg Config) (*Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("media: bucket is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithBaseEndpoint(cfg.Endpoint),
		awsconfig.WithCredentialsProvider(aws.CredentialsProviderFunc(
			func(ctx context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     cfg.AccessKey,
					SecretAccessKey: cfg.SecretKey,
				}, nil
			})),
	)
	if err != nil {
		return nil, fmt.Errorf("media: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	return &Storage{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:  log.With().Str("component", "media").Logger(),
	}, nil
}

// Upload stores one object under <folder>/<millis>_<name> and returns its
// listing entry.
func (s *Storage) Upload(ctx context.Context, folder, name string, body io.Reader, contentType string) (File, error) {
	if s == nil {
		return File{}, errs.ErrStorageUnavailable
	}

	key := fmt.Sprintf("%s/%d_%s", folder, time.Now().UnixMilli(), SanitizeName(name))
	input := &s3.PutObjectInput{
		Bucket:   aws.String(s.bucket),
		Key:      aws.String(key),
		Body:     body,
		Metadata: map[string]string{"uploadedBy": "Admin"},
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return File{}, fmt.Errorf("media: upload %s: %w", key, err)
	}

	url, err := s.objectURL(ctx, key)
	if err != nil {
		return File{}, err
	}
	return File{
		Name:        key[strings.IndexByte(key, '/')+1:],
		URL:         url,
		FullPath:    key,
		Type:        Kind(key),
		UploadedBy:  "Admin",
		TimeCreated: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// List returns the objects under one folder, newest first.
func (s *Storage) List(ctx context.Context, folder string) ([]File, error) {
	if s == nil {
		return nil, errs.ErrStorageUnavailable
	}

	var files []File
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(folder + "/"),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("media: list %s: %w", folder, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if strings.HasSuffix(key, "/") {
				continue
			}
			url, err := s.objectURL(ctx, key)
			if err != nil {
				return nil, err
			}
			f := File{
				Name:       key[strings.IndexByte(key, '/')+1:],
				URL:        url,
				FullPath:   key,
				Type:       Kind(key),
				UploadedBy: "Admin",
			}
			if obj.LastModified != nil {
				f.TimeCreated = obj.LastModified.UTC().Format(time.RFC3339)
			}
			files = append(files, f)
		}
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].TimeCreated > files[j].TimeCreated
	})
	return files, nil
}

// ListAll scans every folder concurrently and merges the results,
// newest first.
func (s *Storage) ListAll(ctx context.Context) ([]File, error) {
	if s == nil {
		return nil, errs.ErrStorageUnavailable
	}

	folders := Folders()
	perFolder := make([][]File, len(folders))
	g, gctx := errgroup.WithContext(ctx)
	for i, folder := range folders {
		g.Go(func() error {
			files, err := s.List(gctx, folder)
			if err != nil {
				return err
			}
			perFolder[i] = files
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []File
	for _, files := range perFolder {
		all = append(all, files...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].TimeCreated > all[j].TimeCreated
	})
	return all, nil
}

// Delete removes one object by its full path.
func (s *Storage) Delete(ctx context.Context, fullPath string) error {
	if s == nil {
		return errs.ErrStorageUnavailable
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fullPath),
	})
	if err != nil {
		return fmt.Errorf("media: delete %s: %w", fullPath, err)
	}
	return nil
}

func (s *Storage) objectURL(ctx context.Context, key string) (string, error) {
	if s.baseURL != "" {
		return s.baseURL + "/" + key, nil
	}
	res, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = presignTTL
	})
	if err != nil {
		return "", fmt.Errorf("media: presign %s: %w", key, err)
	}
	return res.URL, nil
}
