package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cadizz/booking/internal/catalog"
	"github.com/cadizz/booking/internal/logger"
)

type catalogReader interface {
	Get(id string) (catalog.RoomType, error)
	List() []catalog.RoomType
}

type store interface {
	Load(ctx context.Context) (Occupancy, error)
	Save(ctx context.Context, occ Occupancy) error
}

// Ledger owns the per-night occupancy counters for every room type. All reads
// and the check-then-increment of a commit run under one lock, so no
// interleaving of commits can push a night past its room type's stock.
type Ledger struct {
	mu        sync.Mutex
	l         *logger.Logger
	catalog   catalogReader
	store     store
	taxRate   float64
	occupancy Occupancy
}

func New(
	ctx context.Context,
	l *logger.Logger,
	catalog catalogReader,
	store store,
	taxRate float64,
) (*Ledger, error) {
	occ, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load occupancy map: %v", ErrPersistence, err)
	}

	if occ == nil {
		occ = make(Occupancy)
	}

	return &Ledger{
		l:         l,
		catalog:   catalog,
		store:     store,
		taxRate:   taxRate,
		occupancy: occ,
	}, nil
}

// RoomTypes re-exports the catalog listing for availability displays.
func (ldg *Ledger) RoomTypes() []catalog.RoomType {
	return ldg.catalog.List()
}

// CheckAvailability reports whether every night of the stay still has at
// least one free unit. Read-only; safe to call concurrently with commits.
func (ldg *Ledger) CheckAvailability(_ context.Context, stay Stay) (Availability, error) {
	room, nights, err := ldg.resolve(stay)
	if err != nil {
		return Availability{}, err
	}

	ldg.mu.Lock()
	defer ldg.mu.Unlock()

	return ldg.verdict(room, nights), nil
}

// CommitReservation re-verifies availability and increments every occupied
// night by one unit as a single atomic step, persisting the updated map before
// it becomes visible. A save failure fails the commit and leaves the in-memory
// map untouched.
func (ldg *Ledger) CommitReservation(
	ctx context.Context,
	stay Stay,
	guest Guest,
) (*Reservation, error) {
	room, nights, err := ldg.resolve(stay)
	if err != nil {
		return nil, err
	}

	if err := guest.validate(); err != nil {
		return nil, err
	}

	ldg.mu.Lock()
	defer ldg.mu.Unlock()

	if v := ldg.verdict(room, nights); !v.Available {
		return nil, fmt.Errorf(
			"room type %q is short %d unit(s) on its tightest night: %w",
			room.ID,
			v.Shortfall,
			ErrCapacityExceeded,
		)
	}

	next := ldg.occupancy.Clone()
	next.add(room.ID, nights)

	if err := ldg.store.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("%w: save occupancy map: %v", ErrPersistence, err)
	}

	ldg.occupancy = next

	ldg.l.LogInfo(
		"Committed reservation: room type %v, %v night(s) from %v",
		room.ID,
		len(nights),
		nights[0],
	)

	subtotal := float64(len(nights)) * room.PricePerNight
	taxes := subtotal * ldg.taxRate

	return &Reservation{
		RoomTypeID:    room.ID,
		CheckIn:       dateOnly(stay.CheckIn),
		CheckOut:      dateOnly(stay.CheckOut),
		Guest:         guest,
		Nights:        len(nights),
		PricePerNight: room.PricePerNight,
		Subtotal:      subtotal,
		TaxRate:       ldg.taxRate,
		Taxes:         taxes,
		Total:         subtotal + taxes,
	}, nil
}

// OccupancyByRoomType returns a copy of the committed per-night counts for one
// room type. Read path for operator stock dashboards.
func (ldg *Ledger) OccupancyByRoomType(roomTypeID string) (map[string]int, error) {
	if _, err := ldg.catalog.Get(roomTypeID); err != nil {
		return nil, fmt.Errorf("room type %q: %w", roomTypeID, ErrRoomTypeUnknown)
	}

	ldg.mu.Lock()
	defer ldg.mu.Unlock()

	out := make(map[string]int, len(ldg.occupancy[roomTypeID]))
	for night, count := range ldg.occupancy[roomTypeID] {
		out[night] = count
	}

	return out, nil
}

// OccupancyOn returns the committed unit count for one room type on one night.
func (ldg *Ledger) OccupancyOn(roomTypeID string, date time.Time) (int, error) {
	if _, err := ldg.catalog.Get(roomTypeID); err != nil {
		return 0, fmt.Errorf("room type %q: %w", roomTypeID, ErrRoomTypeUnknown)
	}

	ldg.mu.Lock()
	defer ldg.mu.Unlock()

	return ldg.occupancy.count(roomTypeID, dateOnly(date).Format(nightKeyLayout)), nil
}

func (ldg *Ledger) resolve(stay Stay) (catalog.RoomType, []string, error) {
	if err := stay.validate(); err != nil {
		return catalog.RoomType{}, nil, err
	}

	room, err := ldg.catalog.Get(stay.RoomTypeID)
	if err != nil {
		if errors.Is(err, catalog.ErrRoomTypeNotFound) {
			return catalog.RoomType{}, nil, fmt.Errorf(
				"room type %q: %w",
				stay.RoomTypeID,
				ErrRoomTypeUnknown,
			)
		}

		return catalog.RoomType{}, nil, fmt.Errorf("look up room type: %w", err)
	}

	return room, stay.nights(), nil
}

// verdict must be called with the lock held. The binding constraint is the
// single worst night in the range.
func (ldg *Ledger) verdict(room catalog.RoomType, nights []string) Availability {
	minRemaining := room.Stock

	for _, night := range nights {
		remaining := room.Stock - ldg.occupancy.count(room.ID, night)
		if remaining < minRemaining {
			minRemaining = remaining
		}
	}

	if minRemaining >= 1 {
		return Availability{Available: true}
	}

	return Availability{Shortfall: 1 - minRemaining}
}
