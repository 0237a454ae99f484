package booking

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"log"
	"sync"
	"time"

	"serenityhaven/internal/domain"
	"serenityhaven/internal/modules/rooms"
	"serenityhaven/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

const referenceRetries = 3

type Service struct {
	bookings  BookingRepository
	rooms     RoomService
	customers CustomerReader
	notifs    Notifier
	policy    Policy

	now func() time.Time

	// Per-room serialization of the check-then-insert window. The
	// database exclusion constraint remains the final arbiter when
	// multiple API instances run against Postgres.
	mu        sync.Mutex
	roomLocks map[int64]*sync.Mutex
}

func NewService(
	bookings BookingRepository,
	rooms RoomService,
	customers CustomerReader,
	notifs Notifier,
	policy Policy,
) *Service {
	return &Service{
		bookings:  bookings,
		rooms:     rooms,
		customers: customers,
		notifs:    notifs,
		policy:    policy,
		now:       time.Now,
		roomLocks: make(map[int64]*sync.Mutex),
	}
}

func (s *Service) roomLock(roomID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.roomLocks[roomID]
	if !ok {
		l = &sync.Mutex{}
		s.roomLocks[roomID] = l
	}
	return l
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest, isAdmin bool) (*domain.Booking, error) {
	checkIn := domain.Midnight(req.CheckInDate)
	checkOut := domain.Midnight(req.CheckOutDate)
	today := domain.Midnight(s.now())

	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDates
	}
	if checkIn.Before(today) {
		return nil, ErrInvalidDates
	}
	if req.GuestCount < 1 || req.ChildrenCount < 0 {
		return nil, ErrValidation
	}

	if err := s.rooms.ValidateCapacity(ctx, req.RoomID, req.GuestCount, isAdmin); err != nil {
		return nil, mapRoomErr(err)
	}

	cust, err := s.customers.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	if cust.IsBlacklisted && !isAdmin {
		return nil, ErrCustomerBlacklisted
	}

	lock := s.roomLock(req.RoomID)
	lock.Lock()
	defer lock.Unlock()

	ok, err := s.rooms.IsAvailable(ctx, req.RoomID, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if !ok {
		return nil, ErrNotAvailable
	}

	total, err := s.rooms.CalculatePrice(ctx, req.RoomID, checkIn, checkOut)
	if err != nil {
		return nil, mapRoomErr(err)
	}

	refundable := true
	if req.IsRefundable != nil {
		refundable = *req.IsRefundable
	}
	source := req.BookingSource
	if source == "" {
		source = "direct"
	}

	b := &domain.Booking{
		RoomID:          req.RoomID,
		CustomerID:      req.CustomerID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Status:          domain.BookingPending,
		TotalPrice:      total,
		GuestCount:      req.GuestCount,
		ChildrenCount:   req.ChildrenCount,
		BookingSource:   source,
		IsRefundable:    refundable,
		SpecialRequests: req.SpecialRequests,
	}

	for attempt := 0; ; attempt++ {
		b.BookingReference = newReference(s.now())

		err = s.bookings.Create(ctx, b)
		if err == nil {
			break
		}
		if errors.Is(err, repository.ErrOverlap) {
			return nil, ErrNotAvailable
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// 23P01 is exclusion_violation, raised by idx_no_overbooking.
			if pgErr.Code == "23P01" && pgErr.ConstraintName == "idx_no_overbooking" {
				return nil, ErrOverbooking
			}
			// Reference collision; pick a new one and retry.
			if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_bookings_reference" && attempt < referenceRetries {
				continue
			}
		}
		return nil, err
	}

	s.notifyConfirmation(ctx, b)

	return b, nil
}

// ConfirmBooking moves a pending booking to confirmed.
func (s *Service) ConfirmBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.transition(ctx, id, domain.BookingPending, domain.BookingConfirmed)
}

// CheckIn moves a confirmed booking to checked_in. A guest cannot be
// checked in before the booked check-in date.
func (s *Service) CheckIn(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if domain.Midnight(s.now()).Before(b.CheckInDate) {
		return nil, ErrCheckInTooEarly
	}
	return s.transition(ctx, id, domain.BookingConfirmed, domain.BookingCheckedIn)
}

// CheckOut moves a checked_in booking to checked_out.
func (s *Service) CheckOut(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.transition(ctx, id, domain.BookingCheckedIn, domain.BookingCheckedOut)
}

// MarkNoShow flags a confirmed booking whose guest never arrived.
func (s *Service) MarkNoShow(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.transition(ctx, id, domain.BookingConfirmed, domain.BookingNoShow)
}

func (s *Service) transition(ctx context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error) {
	updated, err := s.bookings.UpdateStatusIf(ctx, id, from, to)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Distinguish a missing booking from a wrong state.
		if _, err := s.bookings.GetByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, err
		}
		return nil, ErrInvalidTransition
	}
	return s.GetBooking(ctx, id)
}

// PreviewCancellation reports whether a booking may be cancelled right
// now and what refund it would earn, without changing anything.
func (s *Service) PreviewCancellation(ctx context.Context, id int64, isAdmin bool) (*CancellationPreview, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	allowed, pct := s.policy.Evaluate(b, isAdmin, domain.Midnight(s.now()))
	return &CancellationPreview{Allowed: allowed, RefundPercent: pct}, nil
}

func (s *Service) CancelBooking(ctx context.Context, id int64, reason string, isAdmin bool) (*domain.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.CanBeCancelled() {
		return nil, ErrCancellationNotAllowed
	}

	allowed, pct := s.policy.Evaluate(b, isAdmin, domain.Midnight(s.now()))
	if !allowed {
		return nil, ErrCancellationNotAllowed
	}

	cancelled, err := s.bookings.Cancel(ctx, id, pct, reason, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if !cancelled {
		// Lost a race with another transition.
		return nil, ErrCancellationNotAllowed
	}

	b, err = s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifyCancellation(ctx, b)

	return b, nil
}

// UpdateBooking changes guest details on a booking that has not started
// yet. Dates and room are immutable; rebook to move a stay.
func (s *Service) UpdateBooking(ctx context.Context, id int64, req UpdateBookingRequest, isAdmin bool) (*domain.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.CanBeCancelled() {
		return nil, ErrInvalidTransition
	}

	if err := s.rooms.ValidateCapacity(ctx, b.RoomID, req.GuestCount, isAdmin); err != nil {
		return nil, mapRoomErr(err)
	}

	updated, err := s.bookings.UpdateDetails(ctx, id, req.GuestCount, req.ChildrenCount, req.SpecialRequests)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrBookingNotFound
	}
	return s.GetBooking(ctx, id)
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) GetBookingByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	b, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListByCustomer(ctx, customerID, limit, offset)
}

func (s *Service) ListByStatus(ctx context.Context, status domain.BookingStatus, limit, offset int) ([]domain.Booking, error) {
	if !domain.ValidBookingStatus(status) {
		return nil, ErrValidation
	}
	return s.bookings.ListByStatus(ctx, status, limit, offset)
}

func (s *Service) ListByRoom(ctx context.Context, roomID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListByRoom(ctx, roomID, limit, offset)
}

func (s *Service) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	from = domain.Midnight(from)
	to = domain.Midnight(to)
	if to.Before(from) {
		return nil, ErrInvalidDates
	}
	return s.bookings.ListByDateRange(ctx, from, to)
}

func (s *Service) TodaysCheckIns(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.TodaysCheckIns(ctx, domain.Midnight(s.now()))
}

func (s *Service) TodaysCheckOuts(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.TodaysCheckOuts(ctx, domain.Midnight(s.now()))
}

func (s *Service) CurrentGuests(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.CurrentGuests(ctx)
}

func (s *Service) notifyConfirmation(ctx context.Context, b *domain.Booking) {
	if s.notifs == nil {
		return
	}
	recipient, room := s.notificationTargets(ctx, b)
	if recipient == "" {
		return
	}
	if err := s.notifs.SendBookingConfirmation(ctx, recipient, b, room); err != nil {
		log.Printf("booking confirmation notification failed reference=%s err=%v", b.BookingReference, err)
	}
}

func (s *Service) notifyCancellation(ctx context.Context, b *domain.Booking) {
	if s.notifs == nil {
		return
	}
	recipient, room := s.notificationTargets(ctx, b)
	if recipient == "" {
		return
	}
	if err := s.notifs.SendBookingCancellation(ctx, recipient, b, room); err != nil {
		log.Printf("booking cancellation notification failed reference=%s err=%v", b.BookingReference, err)
	}
}

func (s *Service) notificationTargets(ctx context.Context, b *domain.Booking) (string, *domain.Room) {
	cust, err := s.customers.GetByID(ctx, b.CustomerID)
	if err != nil {
		log.Printf("notification recipient lookup failed booking=%d err=%v", b.ID, err)
		return "", nil
	}
	room, err := s.rooms.GetByID(ctx, b.RoomID)
	if err != nil {
		room = nil
	}
	return cust.Email, room
}

// mapRoomErr translates rooms-module sentinels into this module's
// error taxonomy so handlers only deal with one set.
func mapRoomErr(err error) error {
	switch {
	case errors.Is(err, rooms.ErrRoomNotFound), errors.Is(err, repository.ErrNotFound):
		return ErrRoomNotFound
	case errors.Is(err, rooms.ErrCapacityExceeded):
		return ErrCapacityExceeded
	case errors.Is(err, rooms.ErrInvalidDates):
		return ErrInvalidDates
	}
	return err
}

// newReference builds a guest-facing booking code: BK, the booking
// date, and six random bytes in hex, e.g. BK20260829a1b2c3d4e5f6.
func newReference(now time.Time) string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the platform entropy source is
		// broken; fall back to the nanosecond clock rather than abort
		// the booking. The unique column still rejects collisions.
		buf = clockEntropy(now)
	}
	return "BK" + now.UTC().Format("20060102") + hex.EncodeToString(buf)
}

// clockEntropy packs the low six bytes of the nanosecond clock so the
// fallback reference keeps the same length and alphabet.
func clockEntropy(now time.Time) []byte {
	var clock [8]byte
	binary.BigEndian.PutUint64(clock[:], uint64(now.UnixNano()))
	return clock[2:]
}
