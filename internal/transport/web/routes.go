package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/mountainmajesty/stays/internal/booking"
)

type searchResponse struct {
	Params searchInfo                 `json:"params"`
	Count  int                        `json:"count"`
	Rooms  []booking.RoomAvailability `json:"rooms"`
}

type searchInfo struct {
	Location string `json:"location,omitempty"`
	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`
	Guests   int    `json:"guests,omitempty"`
	Active   bool   `json:"active"`
}

type rejectionResponse struct {
	Reason  string              `json:"reason"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// parseSearchParams never fails: a malformed criterion is dropped so
// the search still produces a result.
func parseSearchParams(r *http.Request) booking.SearchParams {
	query := r.URL.Query()

	guests := 0
	if raw := strings.TrimSpace(query.Get("guests")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			guests = n
		}
	}

	return booking.SearchParams{
		Location: strings.TrimSpace(query.Get("location")),
		CheckIn:  strings.TrimSpace(query.Get("check_in")),
		CheckOut: strings.TrimSpace(query.Get("check_out")),
		Guests:   guests,
	}
}

func (s *Server) searchRoomsHandler(w http.ResponseWriter, r *http.Request) {
	params := parseSearchParams(r)
	rooms := s.manager.Search(params)

	resp := searchResponse{
		Params: searchInfo{
			Location: params.Location,
			CheckIn:  params.CheckIn,
			CheckOut: params.CheckOut,
			Guests:   params.Guests,
			Active:   !params.IsZero(),
		},
		Count: len(rooms),
		Rooms: rooms,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.l.LogErrorf("Could not encode search result: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) createBookingHandler(w http.ResponseWriter, r *http.Request) {
	var input booking.ConfirmInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	out, err := s.manager.Confirm(r.Context(), input)
	if reject := booking.IsRejectError(err); reject != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rejectionStatus(reject.Reason()))

		resp := rejectionResponse{
			Reason:  string(reject.Reason()),
			Message: reject.Message(),
			Fields:  reject.Fields(),
		}

		if err = json.NewEncoder(w).Encode(resp); err != nil {
			s.l.LogErrorf("Could not encode rejection: %v", err.Error())
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not confirm booking: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err = json.NewEncoder(w).Encode(out); err != nil {
		s.l.LogErrorf("Could not encode confirmation: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func rejectionStatus(reason booking.RejectReason) int {
	switch reason {
	case booking.ReasonRoomNotFound:
		return http.StatusNotFound
	case booking.ReasonDateUnavailable:
		return http.StatusPreconditionFailed
	case booking.ReasonInvalidGuest:
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

func (s *Server) reviewsHandler(w http.ResponseWriter, r *http.Request) {
	place := r.PathValue("place")
	if place == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	result, err := s.reviews.FetchReviews(r.Context(), place)
	if err != nil {
		s.l.LogErrorf("Could not fetch reviews for %v: %v", place, err.Error())
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err = json.NewEncoder(w).Encode(result); err != nil {
		s.l.LogErrorf("Could not encode reviews: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r *http.ServeMux) {
	r.Handle(
		"GET /api/rooms/v1",
		s.applyMiddlewares(http.HandlerFunc(s.searchRoomsHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle(
		"POST /api/bookings/v1",
		s.applyMiddlewares(http.HandlerFunc(s.createBookingHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle(
		"GET /api/reviews/v1/{place}",
		s.applyMiddlewares(http.HandlerFunc(s.reviewsHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle(
		fmt.Sprintf("GET %s", s.conf.LivenessEndpoint),
		s.applyMiddlewares(http.HandlerFunc(s.livenessHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
}
