package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/anupam2nd/mylavanya-sub003/config"
	"github.com/anupam2nd/mylavanya-sub003/infras/otel"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/wishlist/model"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/wishlist/model/dto"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/wishlist/repository"
	"github.com/anupam2nd/mylavanya-sub003/shared"
	"github.com/anupam2nd/mylavanya-sub003/shared/cache"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	"github.com/anupam2nd/mylavanya-sub003/shared/failure"
)

const (
	cacheGetAllWishlist = "wishlist:get_all"
	cacheCountWishlist  = "wishlist:count"
)

type Wishlist interface {
	Create(ctx context.Context, req dto.CreateWishlistRequest) (dto.WishlistResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams) (dto.GetWishlistsResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Wishlist
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Wishlist, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Wishlist {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateWishlistRequest) (res dto.WishlistResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, duplicateFilter(userID, req))
	if err != nil {
		log.Error().Err(err).Msg("failed to check wishlist existence")

		return res, err
	}

	if exist {
		log.Warn().Str("serviceName", req.ServiceName).Msg("service already in wishlist")

		// nolint:wrapcheck
		return res, failure.Conflict("service already in wishlist")
	}

	wishlist := req.ToModel(userID)

	if err = s.repo.Insert(ctx, wishlist); err != nil {
		log.Error().Err(err).Msg("failed to create wishlist item")

		return res, err
	}

	res.FromModel(wishlist)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllWishlist)
		shared.InvalidateCaches(c, s.cache, cacheCountWishlist)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res dto.GetWishlistsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := filterByUser(userID)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllWishlist, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for wishlists")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count wishlists")

		return res, err
	}

	wishlists, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get wishlists")

		return res, err
	}

	res.FromModels(wishlists, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save wishlists to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	wishlist, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get wishlist item")

		return fmt.Errorf("failed to get wishlist item: %w", err)
	}

	if wishlist.ID == constant.Empty {
		return failure.NotFound("wishlist item not found")
	}

	if wishlist.UserID != userID {
		log.Warn().Str("id", id).Msg("wishlist item belongs to another user")

		// nolint:wrapcheck
		return failure.ResourceRestrictedError
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete wishlist item")

		return fmt.Errorf("failed to delete wishlist item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllWishlist)
		shared.InvalidateCaches(c, s.cache, cacheCountWishlist)
	}()

	return nil
}

func filterByUser(userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    "user_id",
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
			},
		},
	}
}

func duplicateFilter(userID string, req dto.CreateWishlistRequest) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    "user_id",
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
			},
			gDto.Filter{
				Table:    model.TableName,
				Field:    "service_name",
				Operator: gDto.FilterOperatorEq,
				Value:    req.ServiceName,
			},
			gDto.Filter{
				Table:    model.TableName,
				Field:    "sub_service",
				Operator: gDto.FilterOperatorEq,
				Value:    req.SubService,
			},
		},
	}
}
