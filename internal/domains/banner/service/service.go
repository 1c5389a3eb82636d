package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/anupam2nd/mylavanya-sub003/config"
	"github.com/anupam2nd/mylavanya-sub003/infras/otel"
	"github.com/anupam2nd/mylavanya-sub003/infras/s3"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/banner/model"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/banner/model/dto"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/banner/repository"
	"github.com/anupam2nd/mylavanya-sub003/shared"
	"github.com/anupam2nd/mylavanya-sub003/shared/cache"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	"github.com/anupam2nd/mylavanya-sub003/shared/failure"
)

const (
	cacheGetBanner    = "banner:get"
	cacheGetAllBanner = "banner:get_all"
	cacheCountBanner  = "banner:count"
)

type Banner interface {
	Create(ctx context.Context, req dto.CreateBannerRequest) (dto.BannerResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBannersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BannerResponse, error)
	Update(ctx context.Context, req dto.UpdateBannerRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Banner
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Banner, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Banner {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBannerRequest) (res dto.BannerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	bucketName := s.cfg.External.S3.BucketName

	imageURL, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, req.Image.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload banner image to S3")

		return res, fmt.Errorf("failed to upload banner image to S3: %w", err)
	}

	banner := req.ToModel(user, imageURL)

	if err = s.repo.Insert(ctx, banner); err != nil {
		log.Error().Err(err).Msg("failed to create banner")

		// uploaded image would be orphaned otherwise
		go func() {
			c := context.WithoutCancel(ctx)

			objectName := s.s3.GetObjectNameFromURL(bucketName, imageURL)
			if objectName == constant.Empty {
				return
			}

			if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
				log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete orphaned banner image from S3")
			}
		}()

		return res, err
	}

	res.FromModel(banner)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBanner)
		shared.InvalidateCaches(c, s.cache, cacheCountBanner)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBannersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBanner, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for banners")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count banners")

		return res, err
	}

	banners, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get banners")

		return res, err
	}

	res.FromModels(banners, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save banners to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBanner, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for banner count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count banners")

		return total, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save banner count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BannerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBanner, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for banner")

		return res, nil
	}

	banner, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get banner")

		return res, fmt.Errorf("failed to get banner: %w", err)
	}

	if banner.ID == constant.Empty {
		return res, failure.NotFound("banner not found")
	}

	res.FromModel(banner)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save banner to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBannerRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check banner existence")

		return err
	}

	if !exist {
		log.Error().Msg("banner not found")

		return failure.NotFound("banner not found")
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update banner")

		return fmt.Errorf("failed to update banner: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBanner, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete banner cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBanner)
		shared.InvalidateCaches(c, s.cache, cacheCountBanner)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	banner, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get banner for deletion")

		return fmt.Errorf("failed to get banner: %w", err)
	}

	if banner.ID == constant.Empty {
		log.Error().Msg("banner not found")

		return failure.NotFound("banner not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete banner")

		return fmt.Errorf("failed to delete banner: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBanner, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete banner cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBanner)
		shared.InvalidateCaches(c, s.cache, cacheCountBanner)

		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, banner.ImageURL)
		if objectName == constant.Empty {
			log.Warn().Str("url", banner.ImageURL).Msg("failed to extract object name from URL")

			return
		}

		if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete banner image from S3")
		}
	}()

	return nil
}
