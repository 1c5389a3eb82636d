package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/anupam2nd/mylavanya-sub003/config"
	"github.com/anupam2nd/mylavanya-sub003/infras/otel"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/artist/model"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/artist/model/dto"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/artist/repository"
	"github.com/anupam2nd/mylavanya-sub003/shared"
	"github.com/anupam2nd/mylavanya-sub003/shared/cache"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	"github.com/anupam2nd/mylavanya-sub003/shared/failure"
	"github.com/anupam2nd/mylavanya-sub003/shared/timezone"
)

const (
	cacheGetArtist    = "artist:get"
	cacheGetAllArtist = "artist:gets"
	cacheCountArtist  = "artist:count"
)

type Artist interface {
	Create(ctx context.Context, req dto.CreateArtistRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetArtistsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ArtistResponse, error)
	Update(ctx context.Context, req dto.UpdateArtistRequest, id string) error
	SetActive(ctx context.Context, req dto.SetArtistActiveRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Artist
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Artist, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Artist {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateArtistRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldEmpCode,
				Operator: gDto.FilterOperatorEq,
				Value:    req.EmpCode,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check if employee code exists")

		return fmt.Errorf("failed to check if employee code exists: %w", err)
	}

	if exists {
		return failure.Conflict("employee code already exists") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create artist")

		return fmt.Errorf("failed to create artist: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetArtistsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllArtist, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for artists")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count artists")

		return res, fmt.Errorf("failed to count artists: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get artists")

		return res, fmt.Errorf("failed to get artists: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save artists to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountArtist, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count artists")

		return res, fmt.Errorf("failed to count artists: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save artist count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ArtistResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetArtist, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	artist, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get artist")

		return res, fmt.Errorf("failed to get artist: %w", err)
	}

	if artist.ID == constant.Empty {
		return res, failure.NotFound("artist not found") // nolint:wrapcheck
	}

	res.FromModel(artist)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save artist to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateArtistRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateArtistRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if artist exists")

		return fmt.Errorf("failed to check if artist exists: %w", err)
	}

	if !exist {
		return failure.NotFound("artist not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update artist")

		return fmt.Errorf("failed to update artist: %w", err)
	}

	s.invalidateOne(ctx, id)

	return nil
}

func (s *serviceImpl) SetActive(ctx context.Context, req dto.SetArtistActiveRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Active == nil {
		return failure.BadRequestFromString("active flag is required") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if artist exists")

		return fmt.Errorf("failed to check if artist exists: %w", err)
	}

	if !exist {
		return failure.NotFound("artist not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldActive:        *req.Active,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to set artist active flag")

		return fmt.Errorf("failed to set artist active flag: %w", err)
	}

	s.invalidateOne(ctx, id)

	return nil
}

// Delete removes an artist. Only superadmins hard delete the row; every other
// role deactivates the artist instead.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if artist exists")

		return fmt.Errorf("failed to check if artist exists: %w", err)
	}

	if !exist {
		return failure.NotFound("artist not found") // nolint:wrapcheck
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role != constant.RoleSuperAdmin {
		user, _ := ctx.Value(constant.ContextKeyUserID).(string)

		updatedFields := map[string]any{
			model.FieldActive:        false,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to deactivate artist")

			return fmt.Errorf("failed to deactivate artist: %w", err)
		}

		s.invalidateOne(ctx, id)

		return nil
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete artist")

		return fmt.Errorf("failed to delete artist: %w", err)
	}

	s.invalidateOne(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllArtist)
		shared.InvalidateCaches(c, s.cache, cacheCountArtist)
	}()
}

func (s *serviceImpl) invalidateOne(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetArtist, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete artist from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllArtist)
		shared.InvalidateCaches(c, s.cache, cacheCountArtist)
	}()
}
