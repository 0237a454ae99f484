package rooms

import (
	"context"
	"errors"
	"log"
	"time"

	"serenityhaven/internal/domain"
	"serenityhaven/internal/pkg/validator"
	"serenityhaven/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	cacheKeyAll        = "rooms:all"
	cacheKeyTypePrefix = "rooms:type:"
)

type Service struct {
	repo     RoomRepository
	overlaps OverlapChecker
	cache    RoomCache
	cacheTTL time.Duration
}

func NewService(repo RoomRepository, overlaps OverlapChecker, cache RoomCache, cacheTTL time.Duration) *Service {
	return &Service{
		repo:     repo,
		overlaps: overlaps,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	if !domain.ValidRoomType(domain.RoomType(req.RoomType)) {
		return nil, ErrValidation
	}

	room := &domain.Room{
		Name:         req.Name,
		Description:  req.Description,
		RoomType:     domain.RoomType(req.RoomType),
		RoomNumber:   req.RoomNumber,
		Floor:        req.Floor,
		Capacity:     req.Capacity,
		BasePrice:    req.BasePrice,
		DynamicPrice: req.DynamicPrice,
		IsAvailable:  true,
	}

	if errs := validator.Validate(room); errs != nil {
		return nil, ErrValidation
	}

	if err := s.repo.Create(ctx, room); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateNumber
		}
		return nil, err
	}

	s.invalidate(ctx, string(room.RoomType))
	return room, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

// ListRooms serves the full room list through the cache. Cache failures
// degrade to the database, they never fail the request.
func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	var cached []domain.Room
	hit, err := s.cache.Get(ctx, cacheKeyAll, &cached)
	if err != nil {
		log.Printf("room cache read failed key=%s err=%v", cacheKeyAll, err)
	}
	if hit {
		return cached, nil
	}

	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, cacheKeyAll, out, s.cacheTTL); err != nil {
		log.Printf("room cache write failed key=%s err=%v", cacheKeyAll, err)
	}
	return out, nil
}

func (s *Service) ListByType(ctx context.Context, roomType domain.RoomType) ([]domain.Room, error) {
	if !domain.ValidRoomType(roomType) {
		return nil, ErrValidation
	}

	key := cacheKeyTypePrefix + string(roomType)
	var cached []domain.Room
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Printf("room cache read failed key=%s err=%v", key, err)
	}
	if hit {
		return cached, nil
	}

	out, err := s.repo.ListByType(ctx, roomType)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, out, s.cacheTTL); err != nil {
		log.Printf("room cache write failed key=%s err=%v", key, err)
	}
	return out, nil
}

func (s *Service) ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	checkIn = domain.Midnight(checkIn)
	checkOut = domain.Midnight(checkOut)
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDates
	}
	return s.repo.ListAvailable(ctx, checkIn, checkOut)
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	if !domain.ValidRoomType(domain.RoomType(req.RoomType)) {
		return nil, ErrValidation
	}

	room := &domain.Room{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		RoomType:     domain.RoomType(req.RoomType),
		RoomNumber:   req.RoomNumber,
		Floor:        req.Floor,
		Capacity:     req.Capacity,
		BasePrice:    req.BasePrice,
		DynamicPrice: req.DynamicPrice,
	}

	if errs := validator.Validate(room); errs != nil {
		return nil, ErrValidation
	}

	if err := s.repo.Update(ctx, room); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateNumber
		}
		return nil, err
	}

	s.invalidate(ctx, req.RoomType)
	return s.GetByID(ctx, id)
}

func (s *Service) SetAvailability(ctx context.Context, id int64, isAvailable bool) (*domain.Room, error) {
	room, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateAvailability(ctx, id, isAvailable); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	s.invalidate(ctx, string(room.RoomType))
	room.IsAvailable = isAvailable
	return room, nil
}

func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	room, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRoomNotFound
		}
		return err
	}

	s.invalidate(ctx, string(room.RoomType))
	return nil
}

// IsAvailable reports whether a room can take a stay over
// [checkIn, checkOut). The availability flag gates maintenance closures
// independently of booking conflicts.
func (s *Service) IsAvailable(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	room, err := s.repo.GetByID(ctx, roomID)
	if err != nil {
		return false, err
	}
	if !room.IsAvailable {
		return false, nil
	}

	overlap, err := s.overlaps.HasOverlap(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return !overlap, nil
}

// CalculatePrice quotes a stay: nights times the room's current rate.
func (s *Service) CalculatePrice(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (float64, error) {
	checkIn = domain.Midnight(checkIn)
	checkOut = domain.Midnight(checkOut)
	if !checkOut.After(checkIn) {
		return 0, ErrInvalidDates
	}

	room, err := s.GetByID(ctx, roomID)
	if err != nil {
		return 0, err
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	return float64(nights) * room.CurrentPrice(), nil
}

// ValidateCapacity rejects stays whose guest count exceeds the room's
// capacity. Admins may override for exceptional group bookings.
func (s *Service) ValidateCapacity(ctx context.Context, roomID int64, guestCount int, isAdmin bool) error {
	if isAdmin {
		return nil
	}

	room, err := s.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if guestCount > room.Capacity {
		return ErrCapacityExceeded
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context, roomType string) {
	keys := []string{cacheKeyAll}
	if roomType != "" {
		keys = append(keys, cacheKeyTypePrefix+roomType)
	}
	if err := s.cache.Del(ctx, keys...); err != nil {
		log.Printf("room cache invalidation failed err=%v", err)
	}
}
