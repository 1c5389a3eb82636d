package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Status=MockStatusService

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/anupam2nd/mylavanya-sub003/config"
	"github.com/anupam2nd/mylavanya-sub003/infras/otel"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/status/model"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/status/model/dto"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/status/repository"
	"github.com/anupam2nd/mylavanya-sub003/shared"
	"github.com/anupam2nd/mylavanya-sub003/shared/cache"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	"github.com/anupam2nd/mylavanya-sub003/shared/failure"
)

const (
	cacheGetStatus     = "status:get"
	cacheGetAllStatus  = "status:gets"
	cacheCountStatus   = "status:count"
	cacheDisplayNames  = "status:display_names"
	cacheDisplayColors = "status:display_colors"
)

// defaultStatusColor is served for codes the catalog does not know.
const defaultStatusColor = "#9E9E9E"

type Status interface {
	Create(ctx context.Context, req dto.CreateStatusRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStatusesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.StatusResponse, error)
	Update(ctx context.Context, req dto.UpdateStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
	DisplayNames(ctx context.Context) (map[string]string, error)
	ResolveDisplayName(ctx context.Context, code string) string
	ResolveColor(ctx context.Context, code string) string
}

type serviceImpl struct {
	repo  repository.Status
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Status, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Status {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldStatusCode,
				Operator: gDto.FilterOperatorEq,
				Value:    req.StatusCode,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check if status code exists")

		return fmt.Errorf("failed to check if status code exists: %w", err)
	}

	if exists {
		return failure.Conflict("status code already exists") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create status")

		return fmt.Errorf("failed to create status: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStatusesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStatus, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for statuses")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count statuses")

		return res, fmt.Errorf("failed to count statuses: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get statuses")

		return res, fmt.Errorf("failed to get statuses: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save statuses to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountStatus, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count statuses")

		return res, fmt.Errorf("failed to count statuses: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save status count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetStatus, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	status, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get status")

		return res, fmt.Errorf("failed to get status: %w", err)
	}

	if status.ID == constant.Empty {
		return res, failure.NotFound("status not found") // nolint:wrapcheck
	}

	res.FromModel(status)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save status to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateStatusRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if status exists")

		return fmt.Errorf("failed to check if status exists: %w", err)
	}

	if !exist {
		return failure.NotFound("status not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update status")

		return fmt.Errorf("failed to update status: %w", err)
	}

	s.invalidate(ctx)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetStatus, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete status from cache")
		}
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if status exists")

		return fmt.Errorf("failed to check if status exists: %w", err)
	}

	if !exist {
		return failure.NotFound("status not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete status")

		return fmt.Errorf("failed to delete status: %w", err)
	}

	s.invalidate(ctx)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetStatus, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete status from cache")
		}
	}()

	return nil
}

// DisplayNames returns a status code to display name map of the active catalog.
func (s *serviceImpl) DisplayNames(ctx context.Context) (res map[string]string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DisplayNames")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheDisplayNames, &res)
	if err == nil {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to load status catalog")

		return nil, fmt.Errorf("failed to load status catalog: %w", err)
	}

	res = make(map[string]string, len(models))
	for _, mod := range models {
		res[mod.StatusCode] = mod.StatusName
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheDisplayNames, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save status display names to cache")
		}
	}()

	return res, nil
}

// ResolveDisplayName maps a raw status code to its catalog display name,
// humanizing the code when the catalog has no match.
func (s *serviceImpl) ResolveDisplayName(ctx context.Context, code string) string {
	names, err := s.DisplayNames(ctx)
	if err != nil {
		return shared.HumanizeCode(code)
	}

	if name, ok := names[code]; ok && name != constant.Empty {
		return name
	}

	return shared.HumanizeCode(code)
}

// ResolveColor maps a raw status code to its catalog color, serving a neutral
// color when the catalog has no entry for it.
func (s *serviceImpl) ResolveColor(ctx context.Context, code string) string {
	colors, err := s.displayColors(ctx)
	if err != nil {
		return defaultStatusColor
	}

	if color, ok := colors[code]; ok && color != constant.Empty {
		return color
	}

	return defaultStatusColor
}

func (s *serviceImpl) displayColors(ctx context.Context) (res map[string]string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".displayColors")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheDisplayColors, &res)
	if err == nil {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to load status catalog")

		return nil, fmt.Errorf("failed to load status catalog: %w", err)
	}

	res = make(map[string]string, len(models))
	for _, mod := range models {
		res[mod.StatusCode] = mod.Color
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheDisplayColors, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save status colors to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllStatus)
		shared.InvalidateCaches(c, s.cache, cacheCountStatus)
		shared.InvalidateCaches(c, s.cache, cacheDisplayNames)
		shared.InvalidateCaches(c, s.cache, cacheDisplayColors)
	}()
}
