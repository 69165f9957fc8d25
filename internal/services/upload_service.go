package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"atlasweb_backend/internal/dto"
	"atlasweb_backend/internal/imageprocessor"
	"atlasweb_backend/internal/logger"
	"atlasweb_backend/internal/models"
	"atlasweb_backend/internal/repositories"
	"atlasweb_backend/internal/storage"
	"atlasweb_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadConfig is the upload policy shared by both upload strategies.
type UploadConfig struct {
	MaxSize      int64
	MaxFiles     int
	AllowedTypes []string
	SignTTL      time.Duration
	Provider     string // storage provider name recorded on Media rows
}

// UploadService implements the media upload pipeline. Two strategies
// share one policy:
//
//   - server-mediated: the whole batch is validated before any byte is
//     stored, so one bad file rejects the batch;
//   - client-direct: SignUpload and SaveMedia are per-file calls, so
//     each file succeeds or fails on its own.
type UploadService interface {
	UploadBatch(ctx context.Context, db *gorm.DB, files []*multipart.FileHeader, category string) ([]*dto.MediaResponse, error)
	SignUpload(ctx context.Context, req *dto.SignUploadRequest) (*storage.PresignedUpload, error)
	SaveMedia(ctx context.Context, db *gorm.DB, req *dto.SaveMediaRequest) (*dto.MediaResponse, error)
	DeleteMedia(ctx context.Context, db *gorm.DB, id string) error
}

type uploadService struct {
	mediaRepo repositories.MediaRepository
	store     storage.Storage
	processor *imageprocessor.Processor
	config    UploadConfig
}

func NewUploadService(mediaRepo repositories.MediaRepository, store storage.Storage, processor *imageprocessor.Processor, config UploadConfig) UploadService {
	return &uploadService{
		mediaRepo: mediaRepo,
		store:     store,
		processor: processor,
		config:    config,
	}
}

// UploadBatch stores each file with the external host and persists a
// Media document per file. Validation of the entire batch happens
// before the first upload; a storage failure mid-batch aborts the rest.
func (s *uploadService) UploadBatch(ctx context.Context, db *gorm.DB, files []*multipart.FileHeader, category string) ([]*dto.MediaResponse, error) {
	if len(files) == 0 {
		return nil, apperrors.NewBadRequestError("no files provided")
	}
	if err := s.validateBatch(files); err != nil {
		return nil, err
	}

	category = normalizeCategory(category)

	responses := make([]*dto.MediaResponse, 0, len(files))
	for _, fileHeader := range files {
		media, err := s.uploadOne(ctx, fileHeader, category)
		if err != nil {
			return nil, err
		}
		if err := s.mediaRepo.Create(db, media); err != nil {
			return nil, apperrors.InternalError(err)
		}
		responses = append(responses, dto.NewMediaResponse(media))
	}

	return responses, nil
}

// validateBatch applies the count, size, and MIME policy to every file
// before anything is uploaded.
func (s *uploadService) validateBatch(files []*multipart.FileHeader) error {
	if len(files) > s.config.MaxFiles {
		return apperrors.TooManyFiles(s.config.MaxFiles)
	}
	for _, fileHeader := range files {
		if fileHeader.Size > s.config.MaxSize {
			return apperrors.FileTooLarge(fileHeader.Filename, s.config.MaxSize)
		}
		mimeType := fileHeader.Header.Get("Content-Type")
		if !s.isAllowedType(mimeType) {
			return apperrors.InvalidFileType(fileHeader.Filename, mimeType)
		}
	}
	return nil
}

func (s *uploadService) isAllowedType(mimeType string) bool {
	for _, allowed := range s.config.AllowedTypes {
		if mimeType == allowed {
			return true
		}
	}
	return false
}

func (s *uploadService) uploadOne(ctx context.Context, fileHeader *multipart.FileHeader, category string) (*models.Media, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.NewBadRequestError("failed to open file: " + fileHeader.Filename)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.NewBadRequestError("failed to read file: " + fileHeader.Filename)
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	key := objectKey(category, fileHeader.Filename)

	if err := s.store.Save(ctx, key, bytes.NewReader(data), mimeType); err != nil {
		return nil, apperrors.StorageError(err)
	}

	url, err := s.store.GetURL(ctx, key)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	media := &models.Media{
		Filename:        filepath.Base(key),
		OriginalName:    fileHeader.Filename,
		MimeType:        mimeType,
		Size:            fileHeader.Size,
		URL:             url,
		Category:        category,
		UploadMethod:    models.UploadMethodServer,
		StorageProvider: s.config.Provider,
		StorageKey:      key,
	}

	// Thumbnails are best-effort; an undecodable image still uploads.
	if strings.HasPrefix(mimeType, "image/") {
		s.attachThumbnail(ctx, media, data)
	}

	return media, nil
}

func (s *uploadService) attachThumbnail(ctx context.Context, media *models.Media, data []byte) {
	thumb, err := s.processor.Thumbnail(bytes.NewReader(data))
	if err != nil {
		logger.CtxWarn(ctx, "thumbnail generation failed", "file", media.OriginalName, "error", err.Error())
		return
	}

	thumbKey := thumbnailKey(media.StorageKey)
	if err := s.store.Save(ctx, thumbKey, thumb, media.MimeType); err != nil {
		logger.CtxWarn(ctx, "thumbnail upload failed", "key", thumbKey, "error", err.Error())
		return
	}

	thumbURL, err := s.store.GetURL(ctx, thumbKey)
	if err != nil {
		return
	}
	media.ThumbnailKey = thumbKey
	media.ThumbnailURL = thumbURL
}

// SignUpload validates one file's metadata against the upload policy
// and issues a time-boxed PUT credential for it.
func (s *uploadService) SignUpload(ctx context.Context, req *dto.SignUploadRequest) (*storage.PresignedUpload, error) {
	if req.Size > s.config.MaxSize {
		return nil, apperrors.FileTooLarge(req.Filename, s.config.MaxSize)
	}
	if !s.isAllowedType(req.MimeType) {
		return nil, apperrors.InvalidFileType(req.Filename, req.MimeType)
	}

	key := objectKey(normalizeCategory(req.Category), req.Filename)
	presigned, err := s.store.PresignUpload(ctx, key, req.MimeType, s.config.SignTTL)
	if err != nil {
		if apperrors.Is(err, storage.ErrPresignUnsupported) {
			return nil, apperrors.SignedUploadsUnsupported()
		}
		return nil, apperrors.StorageError(err)
	}

	return presigned, nil
}

// SaveMedia persists metadata for a file the browser already uploaded
// with a signed credential.
func (s *uploadService) SaveMedia(ctx context.Context, db *gorm.DB, req *dto.SaveMediaRequest) (*dto.MediaResponse, error) {
	if !s.isAllowedType(req.MimeType) {
		return nil, apperrors.InvalidFileType(req.OriginalName, req.MimeType)
	}

	media := &models.Media{
		Filename:        filepath.Base(req.Key),
		OriginalName:    req.OriginalName,
		MimeType:        req.MimeType,
		Size:            req.Size,
		URL:             req.URL,
		Category:        normalizeCategory(req.Category),
		UploadMethod:    models.UploadMethodDirect,
		StorageProvider: s.config.Provider,
		StorageKey:      req.Key,
	}

	if err := s.mediaRepo.Create(db, media); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewMediaResponse(media), nil
}

// DeleteMedia removes the library entry and, best-effort, the stored
// object and its thumbnail.
func (s *uploadService) DeleteMedia(ctx context.Context, db *gorm.DB, id string) error {
	media, err := s.mediaRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMediaNotFound) {
			return apperrors.MediaNotFound()
		}
		return apperrors.InternalError(err)
	}

	if err := s.mediaRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}

	if media.StorageKey != "" {
		if err := s.store.Delete(ctx, media.StorageKey); err != nil {
			logger.CtxWarn(ctx, "failed to delete stored object", "key", media.StorageKey, "error", err.Error())
		}
	}
	if media.ThumbnailKey != "" {
		if err := s.store.Delete(ctx, media.ThumbnailKey); err != nil {
			logger.CtxWarn(ctx, "failed to delete thumbnail", "key", media.ThumbnailKey, "error", err.Error())
		}
	}

	return nil
}

// objectKey builds the stored path: <category>/<uuid><ext>. The original
// filename only survives in the Media document.
func objectKey(category, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s%s", category, uuid.NewString(), ext)
}

func thumbnailKey(key string) string {
	ext := filepath.Ext(key)
	return strings.TrimSuffix(key, ext) + "_thumb" + ext
}

func normalizeCategory(category string) string {
	category = strings.Trim(strings.TrimSpace(category), "/")
	if category == "" {
		return "general"
	}
	return category
}
