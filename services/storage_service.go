// services/storage_service.go
package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"kartichka.link/configs"
	"kartichka.link/configs/configslog"
)

// AudioMimeType е фиксираният тип на качваните записи.
const AudioMimeType = "audio/webm"

// StoreInput описва файл за качване в обектното хранилище.
type StoreInput struct {
	File     io.Reader
	Size     int64
	MimeType string
	UUID     string
}

// StoreResult носи публичния URL на качения обект.
type StoreResult struct {
	URL string
}

// IStorageService е границата към обектното хранилище.
type IStorageService interface {
	Store(ctx context.Context, input StoreInput) (StoreResult, error)
}

// MinioStorageService имплементира IStorageService върху S3-съвместимо
// хранилище.
type MinioStorageService struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewStorageService създава клиент към хранилището от конфигурацията.
func NewStorageService(cfg *configs.AppConfig) (IStorageService, error) {
	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("клиентът към хранилището не може да бъде създаден: %w", err)
	}
	return &MinioStorageService{
		client:        client,
		bucket:        cfg.StorageBucket,
		publicBaseURL: strings.TrimRight(cfg.StoragePublicBaseURL, "/"),
	}, nil
}

// Store качва файла под ключ <uuid>.<разширение от mime типа> и връща
// публичния му URL. Грешката се връща нагоре — изпращането на картичката
// не бива да продължи без запазен запис.
func (s *MinioStorageService) Store(ctx context.Context, input StoreInput) (StoreResult, error) {
	ext := input.MimeType
	if idx := strings.LastIndex(ext, "/"); idx >= 0 {
		ext = ext[idx+1:]
	}
	objectName := fmt.Sprintf("%s.%s", input.UUID, ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, input.File, input.Size,
		minio.PutObjectOptions{ContentType: input.MimeType})
	if err != nil {
		configslog.Log.Error("StorageService.Store: качването се провали",
			zap.String("object", objectName), zap.Error(err))
		return StoreResult{}, fmt.Errorf("записът не може да бъде качен: %w", err)
	}

	return StoreResult{URL: s.publicBaseURL + "/" + objectName}, nil
}

// Проверка за съответствие с интерфейса
var _ IStorageService = (*MinioStorageService)(nil)
