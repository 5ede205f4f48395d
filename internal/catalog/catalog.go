package catalog

import (
	"errors"
	"fmt"
)

var ErrRoomTypeNotFound = errors.New("room type not found")

// RoomType is one bookable category of room. Stock counts interchangeable
// physical units of the type, independent of date.
type RoomType struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Beds          string   `json:"beds"`
	MaxGuests     int      `json:"max_guests"`
	SquareMeters  int      `json:"square_meters"`
	PricePerNight float64  `json:"price_per_night"`
	Stock         int      `json:"stock"`
	Image         string   `json:"image"`
	Amenities     []string `json:"amenities"`
}

// Catalog is loaded once at startup and immutable afterwards. Listing keeps
// insertion order.
type Catalog struct {
	order []RoomType
	byID  map[string]RoomType
}

func New(types []RoomType) (*Catalog, error) {
	c := &Catalog{
		order: make([]RoomType, 0, len(types)),
		byID:  make(map[string]RoomType, len(types)),
	}

	for _, rt := range types {
		if rt.ID == "" {
			return nil, fmt.Errorf("room type %q has no id", rt.Name)
		}

		if _, ok := c.byID[rt.ID]; ok {
			return nil, fmt.Errorf("duplicate room type id %q", rt.ID)
		}

		if rt.Stock < 0 {
			return nil, fmt.Errorf("room type %q has negative stock %d", rt.ID, rt.Stock)
		}

		if rt.PricePerNight < 0 {
			return nil, fmt.Errorf("room type %q has negative price %v", rt.ID, rt.PricePerNight)
		}

		c.order = append(c.order, rt)
		c.byID[rt.ID] = rt
	}

	return c, nil
}

func (c *Catalog) Get(id string) (RoomType, error) {
	rt, ok := c.byID[id]
	if !ok {
		return RoomType{}, fmt.Errorf("room type %q: %w", id, ErrRoomTypeNotFound)
	}

	return rt, nil
}

func (c *Catalog) List() []RoomType {
	out := make([]RoomType, len(c.order))
	copy(out, c.order)

	return out
}
