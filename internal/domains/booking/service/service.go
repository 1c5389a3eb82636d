package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/anupam2nd/mylavanya-sub003/config"
	"github.com/anupam2nd/mylavanya-sub003/infras/otel"
	artistModel "github.com/anupam2nd/mylavanya-sub003/internal/domains/artist/model"
	artistRepo "github.com/anupam2nd/mylavanya-sub003/internal/domains/artist/repository"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/model"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/model/dto"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/repository"
	notificationSvc "github.com/anupam2nd/mylavanya-sub003/internal/domains/notification/service"
	statusSvc "github.com/anupam2nd/mylavanya-sub003/internal/domains/status/service"
	"github.com/anupam2nd/mylavanya-sub003/shared"
	"github.com/anupam2nd/mylavanya-sub003/shared/cache"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	"github.com/anupam2nd/mylavanya-sub003/shared/csvexport"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	"github.com/anupam2nd/mylavanya-sub003/shared/failure"
	gModel "github.com/anupam2nd/mylavanya-sub003/shared/model"
	"github.com/anupam2nd/mylavanya-sub003/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	bookingSeqDigits = 4
	bookingSeqMax    = 10000

	errMsgArtistRequired = "Artist Required"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, bookingNo string) (dto.BookingGroupResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, bookingNo string) error
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, bookingNo string) error
	AssignArtist(ctx context.Context, req dto.AssignArtistRequest, bookingNo string) error
	AddService(ctx context.Context, req dto.AddServiceRequest, bookingNo string) (dto.AddServiceResponse, error)
	Track(ctx context.Context, bookingNo string) (dto.TrackBookingResponse, error)
	ExportCSV(ctx context.Context, filter gDto.FilterGroup) ([]byte, error)
}

type serviceImpl struct {
	repo         repository.Booking
	artistRepo   artistRepo.Artist
	status       statusSvc.Status
	notification notificationSvc.Notification
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	artistRepo artistRepo.Artist,
	status statusSvc.Status,
	notification notificationSvc.Notification,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		artistRepo:   artistRepo,
		status:       status,
		notification: notification,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	bookingNo := s.nextBookingNo(ctx)

	items, err := req.ToModels(bookingNo, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.InsertBulk(ctx, items); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidateLists(ctx)

	return dto.CreateBookingResponse{
		BookingNo:    bookingNo,
		ServiceCount: len(items),
	}, nil
}

// nextBookingNo produces the next reference with the current YYMM prefix by
// incrementing the highest existing suffix. On any query or parse error it
// falls back to a random 4-digit suffix, trading uniqueness for availability.
// The read-then-write window is not locked; see the schema's unique index on
// (booking_no, jobno) for the backstop.
func (s *serviceImpl) nextBookingNo(ctx context.Context) string {
	prefix := timezone.Now().Format(constant.BookingMonthFormat)

	max, err := s.repo.MaxBookingNo(ctx, prefix)
	if err != nil {
		log.Error().Err(err).Msg("failed to query max booking number, falling back to random suffix")

		return prefix + randomSuffix()
	}

	if max == constant.Empty {
		return prefix + fmt.Sprintf("%0*d", bookingSeqDigits, 1)
	}

	seq, err := strconv.Atoi(max[len(prefix):])
	if err != nil {
		log.Error().Err(err).Str("max", max).Msg("failed to parse booking number suffix, falling back to random suffix")

		return prefix + randomSuffix()
	}

	return prefix + fmt.Sprintf("%0*d", bookingSeqDigits, (seq+1)%bookingSeqMax)
}

func randomSuffix() string {
	n, err := rand.Int(rand.Reader, big.NewInt(bookingSeqMax))
	if err != nil {
		return "0000"
	}

	return fmt.Sprintf("%0*d", bookingSeqDigits, n.Int64())
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	statusNames, err := s.status.DisplayNames(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load status display names")

		statusNames = map[string]string{}
	}

	res.FromModels(models, statusNames, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, bookingNo string) (res dto.BookingGroupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, bookingNo)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	group, err := s.getGroup(ctx, bookingNo)
	if err != nil {
		return res, err
	}

	res.FromModels(group, s.status.ResolveDisplayName(ctx, group[0].Status))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// getGroup loads every line item of a booking group in job-number order.
func (s *serviceImpl) getGroup(ctx context.Context, bookingNo string) ([]model.Booking, error) {
	group, err := s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.FieldJobNo,
		SortDir: gDto.SortDirAsc,
	}, filterByBookingNo(bookingNo))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking group")

		return nil, fmt.Errorf("failed to get booking group: %w", err)
	}

	if len(group) == 0 {
		return nil, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return group, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, bookingNo string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getGroup(ctx, bookingNo); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)

	if req.BookingDate != constant.Empty {
		bookingDate, err := time.Parse(constant.DateFormat, req.BookingDate)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
		}

		updatedFields[model.FieldBookingDate] = bookingDate
	}

	if err = s.fanOut(ctx, bookingNo, updatedFields); err != nil {
		return err
	}

	s.invalidateGroup(ctx, bookingNo)

	return nil
}

// UpdateStatus moves every line item of the booking group to the requested
// status. Statuses that presuppose an assigned artist are rejected before any
// write when the group has none.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, bookingNo string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	group, err := s.getGroup(ctx, bookingNo)
	if err != nil {
		return err
	}

	primary := group[0]

	if model.RequiresArtist(req.Status) && primary.ArtistID == nil {
		return failure.BadRequestFromString(errMsgArtistRequired) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.fanOut(ctx, bookingNo, updatedFields); err != nil {
		return err
	}

	s.invalidateGroup(ctx, bookingNo)
	s.notifyCustomer(ctx, primary.CustomerEmail, bookingNo,
		fmt.Sprintf("Your booking %s has been updated to %s", bookingNo, s.status.ResolveDisplayName(ctx, req.Status)))

	return nil
}

// AssignArtist records the artist on every line item of the group together
// with who assigned them and when.
func (s *serviceImpl) AssignArtist(ctx context.Context, req dto.AssignArtistRequest, bookingNo string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignArtist")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	group, err := s.getGroup(ctx, bookingNo)
	if err != nil {
		return err
	}

	artistExists, err := s.artistRepo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    artistModel.TableName,
				Field:    artistModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    req.ArtistID,
			},
			gDto.Filter{
				Table:    artistModel.TableName,
				Field:    artistModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check if artist exists")

		return fmt.Errorf("failed to check if artist exists: %w", err)
	}

	if !artistExists {
		return failure.BadRequestFromString("artist does not exist or is inactive") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldArtistID:      req.ArtistID,
		model.FieldAssignedBy:    user,
		model.FieldAssignedAt:    timezone.Now(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.fanOut(ctx, bookingNo, updatedFields); err != nil {
		return err
	}

	s.invalidateGroup(ctx, bookingNo)
	s.notifyCustomer(ctx, group[0].CustomerEmail, bookingNo,
		fmt.Sprintf("An artist has been assigned to your booking %s", bookingNo))

	return nil
}

// AddService appends a new line item to an existing booking group with the
// next job number, inheriting the group's customer, schedule and status.
func (s *serviceImpl) AddService(ctx context.Context, req dto.AddServiceRequest, bookingNo string) (res dto.AddServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddService")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	group, err := s.getGroup(ctx, bookingNo)
	if err != nil {
		return res, err
	}

	primary := group[0]

	if model.IsTerminal(primary.Status) {
		return res, failure.BadRequestFromString("booking is already closed") // nolint:wrapcheck
	}

	maxJobNo, err := s.repo.MaxJobNo(ctx, bookingNo)
	if err != nil {
		log.Error().Err(err).Msg("failed to get max job number")

		return res, fmt.Errorf("failed to get max job number: %w", err)
	}

	now := timezone.Now()
	item := model.Booking{
		ID:            uuid.NewString(),
		BookingNo:     bookingNo,
		JobNo:         maxJobNo + 1,
		CustomerName:  primary.CustomerName,
		CustomerEmail: primary.CustomerEmail,
		CustomerPhone: primary.CustomerPhone,
		Address:       primary.Address,
		Pincode:       primary.Pincode,
		BookingDate:   primary.BookingDate,
		BookingTime:   primary.BookingTime,
		ServiceName:   req.ServiceName,
		SubService:    req.SubService,
		ProductName:   req.ProductName,
		Price:         req.Price,
		Quantity:      req.Quantity,
		Status:        primary.Status,
		ArtistID:      primary.ArtistID,
		AssignedBy:    primary.AssignedBy,
		AssignedAt:    primary.AssignedAt,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to add service to booking")

		return res, fmt.Errorf("failed to add service to booking: %w", err)
	}

	s.invalidateGroup(ctx, bookingNo)

	return dto.AddServiceResponse{
		BookingNo: bookingNo,
		JobNo:     item.JobNo,
	}, nil
}

// Track is the public booking lookup. It exposes only schedule and status,
// never customer details.
func (s *serviceImpl) Track(ctx context.Context, bookingNo string) (res dto.TrackBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Track")
	defer scope.End()
	defer scope.TraceIfError(err)

	group, err := s.getGroup(ctx, bookingNo)
	if err != nil {
		return res, err
	}

	res.FromModels(group, s.status.ResolveDisplayName(ctx, group[0].Status), s.status.ResolveColor(ctx, group[0].Status))

	return res, nil
}

var exportMappings = []csvexport.Mapping{
	{Field: model.FieldBookingNo, Header: "Booking No"},
	{Field: model.FieldJobNo, Header: "Job No"},
	{Field: model.FieldCustomerName, Header: "Customer Name"},
	{Field: model.FieldCustomerEmail, Header: "Customer Email"},
	{Field: model.FieldCustomerPhone, Header: "Customer Phone"},
	{Field: model.FieldBookingDate, Header: "Booking Date"},
	{Field: model.FieldBookingTime, Header: "Booking Time"},
	{Field: model.FieldServiceName, Header: "Service"},
	{Field: model.FieldSubService, Header: "Sub Service"},
	{Field: model.FieldProductName, Header: "Product"},
	{Field: model.FieldPrice, Header: "Price"},
	{Field: model.FieldQuantity, Header: "Quantity"},
	{Field: model.FieldStatus, Header: "Status"},
	{Field: model.FieldArtistID, Header: "Artist"},
}

// ExportCSV renders the matching line items as a downloadable CSV document.
func (s *serviceImpl) ExportCSV(ctx context.Context, filter gDto.FilterGroup) (res []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportCSV")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.FieldBookingNo,
		SortDir: gDto.SortDirAsc,
	}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for export")

		return nil, fmt.Errorf("failed to get bookings for export: %w", err)
	}

	rows := make([]map[string]any, len(models))
	for i, mod := range models {
		artistID := constant.Empty
		if mod.ArtistID != nil {
			artistID = *mod.ArtistID
		}

		rows[i] = map[string]any{
			model.FieldBookingNo:     mod.BookingNo,
			model.FieldJobNo:         mod.JobNo,
			model.FieldCustomerName:  mod.CustomerName,
			model.FieldCustomerEmail: mod.CustomerEmail,
			model.FieldCustomerPhone: mod.CustomerPhone,
			model.FieldBookingDate:   mod.BookingDate.Format(constant.DateFormat),
			model.FieldBookingTime:   mod.BookingTime,
			model.FieldServiceName:   mod.ServiceName,
			model.FieldSubService:    mod.SubService,
			model.FieldProductName:   mod.ProductName,
			model.FieldPrice:         mod.Price,
			model.FieldQuantity:      mod.Quantity,
			model.FieldStatus:        mod.Status,
			model.FieldArtistID:      artistID,
		}
	}

	var buf bytes.Buffer

	if err = csvexport.Write(&buf, exportMappings, rows); err != nil {
		log.Error().Err(err).Msg("failed to write bookings CSV")

		return nil, fmt.Errorf("failed to write bookings CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// fanOut applies the same update to every line item of the group in a single
// transaction so siblings can never end up in a mixed state.
func (s *serviceImpl) fanOut(ctx context.Context, bookingNo string, updatedFields map[string]any) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin booking update transaction")

		return fmt.Errorf("failed to begin booking update transaction: %w", err)
	}

	if err := s.repo.UpdateTx(ctx, tx, updatedFields, filterByBookingNo(bookingNo)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to roll back booking update")
		}

		log.Error().Err(err).Msg("failed to update booking group")

		return fmt.Errorf("failed to update booking group: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit booking update")

		return fmt.Errorf("failed to commit booking update: %w", err)
	}

	return nil
}

// notifyCustomer records a notification for the customer. Failures are logged
// and never roll back the change that triggered them.
func (s *serviceImpl) notifyCustomer(ctx context.Context, email, bookingNo, message string) {
	if email == constant.Empty {
		return
	}

	if err := s.notification.Notify(ctx, email, bookingNo, message); err != nil {
		log.Error().Err(err).Str("booking_no", bookingNo).Msg("failed to notify customer")
	}
}

func filterByBookingNo(bookingNo string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldBookingNo,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingNo,
			},
		},
	}
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) invalidateGroup(ctx context.Context, bookingNo string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, bookingNo)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
