package photostore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/BruksfildServices01/clinica-api/internal/config"
	"github.com/BruksfildServices01/clinica-api/internal/domain/photo"
	"github.com/BruksfildServices01/clinica-api/internal/logger"
)

// S3Store guarda cada foto na chave {prefixo}/{pasta}/{arquivo}. Pastas não
// existem de fato: uma pasta "existe" enquanto houver objeto com o prefixo.
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
	log    *logger.Logger
}

func NewS3Store(cfg config.S3Config, log *logger.Logger) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("missing env var S3_BUCKET")
	}

	awsCfg := aws.Config{
		Region: cfg.Region,
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	storeLog := log.With("component", "S3Store")
	storeLog.Info("Photo storage initialized", "bucket", cfg.Bucket, "endpoint", cfg.Endpoint)

	return &S3Store{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
		log:    storeLog,
	}, nil
}

func (s *S3Store) folderPrefix(folder string) (string, error) {
	if !validSegment(folder) {
		return "", errInvalidPath
	}
	return path.Join(s.prefix, folder) + "/", nil
}

func (s *S3Store) key(folder, name string) (string, error) {
	prefix, err := s.folderPrefix(folder)
	if err != nil {
		return "", err
	}
	if !validSegment(name) {
		return "", errInvalidPath
	}
	return prefix + name, nil
}

func (s *S3Store) FolderExists(ctx context.Context, folder string) (bool, error) {
	prefix, err := s.folderPrefix(folder)
	if err != nil {
		return false, err
	}
	out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return len(out.Contents) > 0, nil
}

// EnsureFolder não faz nada: a pasta passa a existir com o primeiro objeto.
func (s *S3Store) EnsureFolder(_ context.Context, folder string) error {
	_, err := s.folderPrefix(folder)
	return err
}

func (s *S3Store) List(ctx context.Context, folder string) ([]string, error) {
	prefix, err := s.folderPrefix(folder)
	if err != nil {
		return nil, err
	}

	names := []string{}
	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), prefix)
			if name == "" || strings.Contains(name, "/") {
				continue
			}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *S3Store) FileExists(ctx context.Context, folder, name string) (bool, error) {
	key, err := s.key(folder, name)
	if err != nil {
		return false, err
	}
	_, err = s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if isS3NotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *S3Store) Read(ctx context.Context, folder, name string) ([]byte, error) {
	key, err := s.key(folder, name)
	if err != nil {
		return nil, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if isS3NotFound(err) {
		return nil, photo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

func (s *S3Store) Write(ctx context.Context, folder, name string, data []byte) error {
	key, err := s.key(folder, name)
	if err != nil {
		return err
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/png"),
	})
	return err
}

func (s *S3Store) Remove(ctx context.Context, folder, name string) error {
	ok, err := s.FileExists(ctx, folder, name)
	if err != nil {
		return err
	}
	if !ok {
		return photo.ErrNotFound
	}
	key, _ := s.key(folder, name)
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3Store) MoveFile(ctx context.Context, srcFolder, dstFolder, name string) error {
	srcKey, err := s.key(srcFolder, name)
	if err != nil {
		return err
	}
	dstKey, err := s.key(dstFolder, name)
	if err != nil {
		return err
	}
	return s.move(ctx, srcKey, dstKey)
}

func (s *S3Store) move(ctx context.Context, srcKey, dstKey string) error {
	if _, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.bucket),
		CopySource: aws.String(copySource(s.bucket, srcKey)),
		Key:        aws.String(dstKey),
	}); err != nil {
		return fmt.Errorf("copy %s: %w", srcKey, err)
	}
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(srcKey),
	}); err != nil {
		return fmt.Errorf("delete %s: %w", srcKey, err)
	}
	return nil
}

// RenameFolder copia objeto a objeto; não é atômico no S3.
func (s *S3Store) RenameFolder(ctx context.Context, src, dst string) error {
	names, err := s.List(ctx, src)
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := s.MoveFile(ctx, src, dst, name); err != nil {
			return err
		}
	}
	return nil
}

func (s *S3Store) RemoveFolderIfEmpty(ctx context.Context, folder string) (bool, error) {
	exists, err := s.FolderExists(ctx, folder)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

func copySource(bucket, key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return bucket + "/" + strings.Join(parts, "/")
}

func isS3NotFound(err error) bool {
	if err == nil {
		return false
	}
	var nsk *s3types.NoSuchKey
	var nf *s3types.NotFound
	return errors.As(err, &nsk) || errors.As(err, &nf)
}

var _ photo.Store = (*S3Store)(nil)
