package ledger

import (
	"time"
)

// nightKeyLayout is the calendar-date key format used by the occupancy map.
const nightKeyLayout = "2006-01-02"

// Occupancy maps room type id -> night -> count of units already committed.
// Unset keys are implicitly 0. Counts only ever grow; a cancellation flow, if
// the surrounding system adds one, lives outside this package.
type Occupancy map[string]map[string]int

func (o Occupancy) Clone() Occupancy {
	next := make(Occupancy, len(o))

	for roomTypeID, nights := range o {
		next[roomTypeID] = make(map[string]int, len(nights))
		for night, count := range nights {
			next[roomTypeID][night] = count
		}
	}

	return next
}

func (o Occupancy) count(roomTypeID, night string) int {
	return o[roomTypeID][night]
}

func (o Occupancy) add(roomTypeID string, nights []string) {
	perNight, ok := o[roomTypeID]
	if !ok {
		perNight = make(map[string]int, len(nights))
		o[roomTypeID] = perNight
	}

	for _, night := range nights {
		perNight[night]++
	}
}

// Stay is a requested booking: a room type plus a [check-in, check-out) date
// range. The check-out date itself is not occupied.
type Stay struct {
	RoomTypeID string    `json:"room_type_id"`
	CheckIn    time.Time `json:"checkin"`
	CheckOut   time.Time `json:"checkout"`
}

func (s Stay) validate() error {
	inputErr := newInputError()

	if s.RoomTypeID == "" {
		inputErr.addError("room_type_id", "provide a room type")
	}

	if s.CheckIn.IsZero() {
		inputErr.addError("checkin", "provide a check-in date")
	}

	if s.CheckOut.IsZero() {
		inputErr.addError("checkout", "provide a check-out date")
	}

	if !s.CheckIn.IsZero() && !s.CheckOut.IsZero() &&
		!dateOnly(s.CheckOut).After(dateOnly(s.CheckIn)) {
		inputErr.addError("checkout", "check-out must be at least one day after check-in")
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

// nights expands the stay into its occupied calendar dates, check-in inclusive
// and check-out exclusive. A validated stay always yields at least one night.
func (s Stay) nights() []string {
	start := dateOnly(s.CheckIn)
	end := dateOnly(s.CheckOut)

	var nights []string

	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d.Format(nightKeyLayout))
	}

	return nights
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Availability is the verdict for a stay. Shortfall is how many additional
// stock units the single tightest night would need; 0 when available.
type Availability struct {
	Available bool `json:"available"`
	Shortfall int  `json:"shortfall"`
}

// Guest carries the booking form's guest details. Field rules match the
// property's booking form.
type Guest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	DNI     string `json:"dni"     validate:"required,dni"`
	Phone   string `json:"phone"   validate:"required,phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Notes   string `json:"notes"`
}

// Reservation is a committed stay with its derived monetary breakdown. The
// ledger assigns no confirmation code or timestamp; those are presentation
// layer decorations.
type Reservation struct {
	RoomTypeID    string    `json:"room_type_id"`
	CheckIn       time.Time `json:"checkin"`
	CheckOut      time.Time `json:"checkout"`
	Guest         Guest     `json:"guest"`
	Nights        int       `json:"nights"`
	PricePerNight float64   `json:"price_per_night"`
	Subtotal      float64   `json:"subtotal"`
	TaxRate       float64   `json:"tax_rate"`
	Taxes         float64   `json:"taxes"`
	Total         float64   `json:"total"`
}
