// internal/services/storage_service.go
package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/regzone/compliance-backend/internal/apperrors"
	"github.com/regzone/compliance-backend/internal/config"
)

// StorageService persists uploaded form attachments before the
// transactional writer records their metadata. Files go to the local
// upload directory by default, or to S3 when configured.
type StorageService struct {
	s3Client *s3.S3
	cfg      *config.Config
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	svc := &StorageService{cfg: cfg}

	if !cfg.Upload.UseS3 {
		if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
		return svc, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	svc.s3Client = s3.New(sess)
	return svc, nil
}

// StoreFormFiles persists every file attached to a multipart form and
// returns the metadata handed to the transactional writer. Field names
// are preserved for upload classification.
func (s *StorageService) StoreFormFiles(form *multipart.Form) ([]UploadedFile, error) {
	var stored []UploadedFile
	maxSize := s.cfg.Upload.MaxSizeMB * 1024 * 1024

	for fieldName, headers := range form.File {
		for _, header := range headers {
			if header.Size > maxSize {
				return nil, apperrors.Validation(fmt.Sprintf("file %s exceeds the %dMB limit", header.Filename, s.cfg.Upload.MaxSizeMB))
			}

			path, err := s.storeFile(header)
			if err != nil {
				return nil, err
			}

			stored = append(stored, UploadedFile{
				FieldName:    fieldName,
				OriginalName: header.Filename,
				StoredPath:   path,
				Size:         header.Size,
				MimeType:     header.Header.Get("Content-Type"),
			})
		}
	}

	return stored, nil
}

func (s *StorageService) storeFile(header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.New().String(), filepath.Ext(header.Filename))

	if s.s3Client != nil {
		return s.storeS3(file, name, header)
	}
	return s.storeLocal(file, name)
}

func (s *StorageService) storeLocal(file multipart.File, name string) (string, error) {
	path := filepath.Join(s.cfg.Upload.Dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}

func (s *StorageService) storeS3(file multipart.File, name string, header *multipart.FileHeader) (string, error) {
	key := fmt.Sprintf("%s/%s", s.cfg.Upload.S3KeyPrefix, name)

	_, err := s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentLength: aws.Int64(header.Size),
		ContentType:   aws.String(header.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("s3://%s/%s", s.cfg.AWS.S3Bucket, key), nil
}
