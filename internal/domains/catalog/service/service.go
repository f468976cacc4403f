package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"roam/config"
	"roam/infras/otel"
	"roam/infras/s3"
	"roam/internal/domains/catalog/model"
	"roam/internal/domains/catalog/model/dto"
	"roam/internal/domains/catalog/repository"
	"roam/shared"
	"roam/shared/cache"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	"roam/shared/failure"
	"roam/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetPackage    = "package:get"
	cacheGetAllPackage = "package:gets"
	cacheCountPackage  = "package:count"

	imageDirectory = "packages"
)

type Catalog interface {
	Create(ctx context.Context, req dto.CreatePackageRequest) (dto.PackageResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPackagesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PackageResponse, error)
	Update(ctx context.Context, req dto.UpdatePackageRequest, id string) error
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id, alt string, file multipart.File, fileHeader *multipart.FileHeader) (dto.UploadImageResponse, error)
	DeleteImage(ctx context.Context, id, objectKey string) error
}

type serviceImpl struct {
	repo    repository.Catalog
	storage s3.S3
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(repo repository.Catalog, storage s3.S3, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePackageRequest) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	pkg := req.ToModel(user)

	if err = s.repo.Insert(ctx, pkg); err != nil {
		log.Error().Err(err).Msg("failed to create tour package")

		return res, fmt.Errorf("failed to create tour package: %w", err)
	}

	res.FromModel(pkg)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPackage)
		shared.InvalidateCaches(c, s.cache, cacheCountPackage)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPackagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPackage, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tour packages")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tour packages")

		return res, fmt.Errorf("failed to count tour packages: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour packages")

		return res, fmt.Errorf("failed to get tour packages: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tour packages to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPackage, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tour package count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tour packages")

		return res, fmt.Errorf("failed to count tour packages: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tour package count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPackage, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tour package")

		return res, nil
	}

	pkg, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour package")

		return res, fmt.Errorf("failed to get tour package: %w", err)
	}

	if pkg.ID == constant.Empty {
		return res, failure.NotFound("tour package not found") // nolint:wrapcheck
	}

	res.FromModel(pkg)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tour package to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePackageRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdatePackageRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if tour package exists")

		return fmt.Errorf("failed to check if tour package exists: %w", err)
	}

	if !exist {
		return failure.NotFound("tour package not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update tour package")

		return fmt.Errorf("failed to update tour package: %w", err)
	}

	s.invalidatePackageCaches(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	pkg, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour package")

		return fmt.Errorf("failed to get tour package: %w", err)
	}

	if pkg.ID == constant.Empty {
		return failure.NotFound("tour package not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete tour package")

		return fmt.Errorf("failed to delete tour package: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		bucket := s.cfg.External.S3.BucketName
		for _, image := range pkg.Images {
			if err := s.storage.DeleteFile(c, bucket, imageDirectory, image.ObjectKey); err != nil {
				log.Warn().Err(err).Str("object_key", image.ObjectKey).Msg("failed to delete tour package image")
			}
		}
	}()

	s.invalidatePackageCaches(ctx, id)

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, id, alt string, file multipart.File, fileHeader *multipart.FileHeader) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	pkg, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour package")

		return res, fmt.Errorf("failed to get tour package: %w", err)
	}

	if pkg.ID == constant.Empty {
		return res, failure.NotFound("tour package not found") // nolint:wrapcheck
	}

	objectKey := uuid.NewString() + filepath.Ext(fileHeader.Filename)

	url, err := s.storage.UploadFile(ctx, s.cfg.External.S3.BucketName, imageDirectory, file, fileHeader, objectKey)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload tour package image")

		return res, fmt.Errorf("failed to upload tour package image: %w", err)
	}

	images := append(pkg.Images, model.Image{
		URL:       url,
		ObjectKey: objectKey,
		Alt:       alt,
	})

	updatedFields := map[string]any{
		model.FieldImages:        images,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to attach image to tour package")

		return res, fmt.Errorf("failed to attach image to tour package: %w", err)
	}

	s.invalidatePackageCaches(ctx, id)

	return dto.UploadImageResponse{URL: url, ObjectKey: objectKey}, nil
}

func (s *serviceImpl) DeleteImage(ctx context.Context, id, objectKey string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	pkg, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour package")

		return fmt.Errorf("failed to get tour package: %w", err)
	}

	if pkg.ID == constant.Empty {
		return failure.NotFound("tour package not found") // nolint:wrapcheck
	}

	images := make(model.ImageList, 0, len(pkg.Images))
	found := false

	for _, image := range pkg.Images {
		if image.ObjectKey == objectKey {
			found = true

			continue
		}

		images = append(images, image)
	}

	if !found {
		return failure.NotFound("tour package image not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldImages:        images,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to detach image from tour package")

		return fmt.Errorf("failed to detach image from tour package: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.storage.DeleteFile(c, s.cfg.External.S3.BucketName, imageDirectory, objectKey); err != nil {
			log.Warn().Err(err).Str("object_key", objectKey).Msg("failed to delete tour package image")
		}
	}()

	s.invalidatePackageCaches(ctx, id)

	return nil
}

func (s *serviceImpl) invalidatePackageCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPackage, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete tour package from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPackage)
		shared.InvalidateCaches(c, s.cache, cacheCountPackage)
	}()
}
