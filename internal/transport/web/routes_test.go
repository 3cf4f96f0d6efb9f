package web_test

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mountainmajesty/stays/internal/booking"
	"github.com/mountainmajesty/stays/internal/catalog"
	"github.com/mountainmajesty/stays/internal/logger"
	"github.com/mountainmajesty/stays/internal/notify"
	"github.com/mountainmajesty/stays/internal/reviews"
	"github.com/mountainmajesty/stays/internal/transport/web"
)

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, notify.Booking) error { return nil }

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	l := logger.New(log.New(io.Discard, "", 0))

	rooms, err := catalog.New([]catalog.Room{
		{
			ID:           "mm-villa",
			Name:         "Mountain Majesty Villa",
			Location:     "Karjat",
			Region:       "Karjat",
			Guests:       4,
			Price:        9500,
			HostName:     "Anita",
			Availability: []string{"2026-03-10", "2026-03-14"},
		},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}

	store := booking.NewStore(booking.StoreConfig{L: l})
	manager := booking.NewManager(l, rooms, store, noopNotifier{})
	reviewsClient := reviews.NewClient(l, "", "http://unused", time.Second)

	conf := web.Conf{
		L:                 l,
		ServerLogger:      log.New(io.Discard, "", 0),
		Host:              "localhost",
		Port:              "0",
		ReadHeaderTimeout: 5,
		LivenessEndpoint:  "/liveness",
		AllowedOrigins:    []string{"http://localhost:5173"},
	}

	srv, err := web.New(context.Background(), conf, manager, reviewsClient)
	if err != nil {
		t.Fatalf("init server: %v", err)
	}

	return srv.Srv().Handler
}

func TestSearchRoomsEndpoint(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/rooms/v1?location=karjat&guests=2", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Count  int  `json:"count"`
		Params struct {
			Active bool `json:"active"`
		} `json:"params"`
	}

	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Count != 1 || !resp.Params.Active {
		t.Errorf("expected 1 matching room with active search, got %+v", resp)
	}
}

func TestSearchRoomsEndpoint_NoSearch(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/rooms/v1", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	var resp struct {
		Params struct {
			Active bool `json:"active"`
		} `json:"params"`
	}

	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Params.Active {
		t.Error("expected inactive search with no criteria")
	}
}

func TestCreateBookingEndpoint(t *testing.T) {
	h := newTestServer(t)

	body := `{
		"roomId": "mm-villa",
		"date": "2026-03-10",
		"guest": {"name": "Asha Rao", "email": "asha@example.com", "mobile": "9876543210"}
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/v1", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var conf booking.Confirmation
	if err := json.NewDecoder(rec.Body).Decode(&conf); err != nil {
		t.Fatalf("decode confirmation: %v", err)
	}

	if conf.ID == "" || conf.RoomID != "mm-villa" {
		t.Errorf("unexpected confirmation: %+v", conf)
	}

	// Same room and date again must be rejected.
	req = httptest.NewRequest(http.MethodPost, "/api/bookings/v1", strings.NewReader(body))
	rec = httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusPreconditionFailed {
		t.Fatalf("expected 412 on double booking, got %d", rec.Code)
	}

	var reject struct {
		Reason  string `json:"reason"`
		Message string `json:"message"`
	}

	if err := json.NewDecoder(rec.Body).Decode(&reject); err != nil {
		t.Fatalf("decode rejection: %v", err)
	}

	if reject.Reason != "date_unavailable" || reject.Message == "" {
		t.Errorf("unexpected rejection payload: %+v", reject)
	}
}

func TestCreateBookingEndpoint_InvalidGuest(t *testing.T) {
	h := newTestServer(t)

	body := `{
		"roomId": "mm-villa",
		"date": "2026-03-10",
		"guest": {"name": "", "email": "bad", "mobile": "12"}
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/v1", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateBookingEndpoint_UnknownRoom(t *testing.T) {
	h := newTestServer(t)

	body := `{
		"roomId": "no-such-room",
		"date": "2026-03-10",
		"guest": {"name": "Asha Rao", "email": "asha@example.com", "mobile": "9876543210"}
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/v1", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestReviewsEndpoint(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/v1/place-1", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []reviews.Review
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode reviews: %v", err)
	}

	if len(got) == 0 {
		t.Error("expected reviews in response")
	}
}

func TestLivenessEndpoint(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/liveness", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
