package wishlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/anupam2nd/mylavanya-sub003/infras/otel"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/wishlist/model/dto"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/wishlist/service"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	"github.com/anupam2nd/mylavanya-sub003/shared/validator"
	"github.com/anupam2nd/mylavanya-sub003/transport/http/response"
)

type Handler struct {
	service service.Wishlist
	otel    otel.Otel
}

func New(service service.Wishlist, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/wishlists", func(r chi.Router) {
		r.Post("/", handler.CreateWishlist)
		r.Get("/", handler.GetWishlists)
		r.Delete("/{id}", handler.DeleteWishlist)
	})
}

// CreateWishlist saves a service to the authenticated member's wishlist.
// @Summary Add a service to the wishlist
// @Description Save a service to the authenticated member's wishlist.
// @Tags Wishlist
// @Accept json
// @Produce json
// @Param request body dto.CreateWishlistRequest true "Create Wishlist Request"
// @Success 201 {object} response.Data[dto.WishlistResponse] "Wishlist item created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wishlists [post]
// @Security BearerAuth
func (handler *Handler) CreateWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateWishlist")
	defer scope.End()

	req := dto.CreateWishlistRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create wishlist item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wishlist item created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetWishlists lists the authenticated member's wishlist.
// @Summary Get the wishlist
// @Description Retrieve the authenticated member's wishlist with pagination.
// @Tags Wishlist
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetWishlistsResponse] "Wishlist items"
// @Failure 500 {object} response.Error
// @Router /v1/wishlists [get]
// @Security BearerAuth
func (handler *Handler) GetWishlists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWishlists")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	wishlists, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get wishlist items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wishlist items retrieved successfully")

	response.WithJSON(w, http.StatusOK, wishlists)
}

// DeleteWishlist removes an item from the authenticated member's wishlist.
// @Summary Delete a wishlist item
// @Description Remove an item from the authenticated member's wishlist.
// @Tags Wishlist
// @Accept json
// @Produce json
// @Param id path string true "Wishlist Item ID"
// @Success 200 {object} response.Message "Wishlist item deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wishlists/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteWishlist")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete wishlist item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wishlist item deleted successfully")

	response.WithMessage(w, http.StatusOK, "Wishlist item deleted successfully")
}
