package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cadizz/booking/internal/ledger"
	"github.com/cadizz/booking/internal/metrics"
)

const dateLayout = "2006-01-02"

type stayRequest struct {
	RoomTypeID string `json:"room_type_id"`
	CheckIn    string `json:"checkin"`
	CheckOut   string `json:"checkout"`
}

type reservationRequest struct {
	stayRequest
	Guest ledger.Guest `json:"guest"`
}

type reservationResponse struct {
	ConfirmationCode string              `json:"confirmation_code"`
	CreatedAt        time.Time           `json:"created_at"`
	Reservation      *ledger.Reservation `json:"reservation"`
}

type occupancyReportRoom struct {
	RoomTypeID string `json:"room_type_id"`
	Name       string `json:"name"`
	Stock      int    `json:"stock"`
	Occupied   int    `json:"occupied"`
	Remaining  int    `json:"remaining"`
	State      string `json:"state"`
}

type occupancyReport struct {
	Date  string                `json:"date"`
	Rooms []occupancyReportRoom `json:"rooms"`
}

// toStay parses the request dates. Missing fields stay zero so the ledger's
// validation can report them per field; malformed dates are rejected here.
func (r stayRequest) toStay(w http.ResponseWriter) (ledger.Stay, bool) {
	stay := ledger.Stay{RoomTypeID: r.RoomTypeID}

	for _, f := range []struct {
		name  string
		raw   string
		field *time.Time
	}{
		{"checkin", r.CheckIn, &stay.CheckIn},
		{"checkout", r.CheckOut, &stay.CheckOut},
	} {
		if f.raw == "" {
			continue
		}

		d, err := time.Parse(dateLayout, f.raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("%s must be a YYYY-MM-DD date", f.name), http.StatusBadRequest)

			return ledger.Stay{}, false
		}

		*f.field = d
	}

	return stay, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	if inputErr := ledger.IsInputError(err); inputErr != nil {
		s.writeJSON(w, http.StatusBadRequest, inputErr.Fields())

		return
	}

	switch {
	case errors.Is(err, ledger.ErrRoomTypeUnknown):
		http.Error(w, "unknown room type", http.StatusNotFound)
	case errors.Is(err, ledger.ErrCapacityExceeded):
		http.Error(w, "not enough stock for the requested nights", http.StatusPreconditionFailed)
	default:
		s.l.LogErrorf("Could not serve request: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func rejectionReason(err error) string {
	switch {
	case ledger.IsInputError(err) != nil:
		return "invalid_input"
	case errors.Is(err, ledger.ErrRoomTypeUnknown):
		return "unknown_room_type"
	case errors.Is(err, ledger.ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, ledger.ErrPersistence):
		return "persistence"
	default:
		return "internal"
	}
}

func (s *Server) listRoomTypesHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.ledger.RoomTypes())
}

func (s *Server) checkAvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	var req stayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	stay, ok := req.toStay(w)
	if !ok {
		return
	}

	verdict, err := s.ledger.CheckAvailability(r.Context(), stay)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, verdict)
}

func (s *Server) createReservationHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	stay, ok := req.toStay(w)
	if !ok {
		return
	}

	reservation, err := s.ledger.CommitReservation(ctx, stay, req.Guest)
	if err != nil {
		metrics.ReservationsRejected.WithLabelValues(rejectionReason(err)).Inc()
		s.writeError(w, err)

		return
	}

	metrics.ReservationsCommitted.Inc()

	code, err := s.codes.ConfirmationCode(ctx)
	if err != nil {
		s.l.LogErrorf("Could not generate confirmation code: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusCreated, reservationResponse{
		ConfirmationCode: code,
		CreatedAt:        time.Now().UTC(),
		Reservation:      reservation,
	})
}

func (s *Server) occupancyReportHandler(w http.ResponseWriter, r *http.Request) {
	date := time.Now().UTC()

	if raw := r.URL.Query().Get("date"); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			http.Error(w, "date must be a YYYY-MM-DD date", http.StatusBadRequest)

			return
		}

		date = d
	}

	filter := r.URL.Query().Get("room_type_id")

	report := occupancyReport{Date: date.Format(dateLayout)}

	for _, rt := range s.ledger.RoomTypes() {
		if filter != "" && rt.ID != filter {
			continue
		}

		occupied, err := s.ledger.OccupancyOn(rt.ID, date)
		if err != nil {
			s.writeError(w, err)

			return
		}

		report.Rooms = append(report.Rooms, occupancyReportRoom{
			RoomTypeID: rt.ID,
			Name:       rt.Name,
			Stock:      rt.Stock,
			Occupied:   occupied,
			Remaining:  rt.Stock - occupied,
			State:      occupancyState(occupied, rt.Stock),
		})
	}

	if filter != "" && len(report.Rooms) == 0 {
		http.Error(w, "unknown room type", http.StatusNotFound)

		return
	}

	s.writeJSON(w, http.StatusOK, report)
}

// occupancyState labels a room type for the operator stock screen the way the
// property's back office names the states.
func occupancyState(occupied, stock int) string {
	switch {
	case occupied >= stock:
		return "completa"
	case occupied == 0:
		return "libre"
	default:
		return "parcial"
	}
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r *http.ServeMux) {
	r.Handle(
		"GET /api/rooms/v1",
		s.applyMiddlewares(http.HandlerFunc(s.listRoomTypesHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle(
		"POST /api/availability/v1",
		s.applyMiddlewares(http.HandlerFunc(s.checkAvailabilityHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle(
		"POST /api/reservations/v1",
		s.applyMiddlewares(http.HandlerFunc(s.createReservationHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle(
		"GET /api/operator/occupancy/v1",
		s.applyMiddlewares(http.HandlerFunc(s.occupancyReportHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle("GET /metrics", metrics.Handler())
	r.Handle(
		fmt.Sprintf("GET %s", s.conf.LivenessEndpoint),
		s.applyMiddlewares(http.HandlerFunc(s.livenessHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
}
