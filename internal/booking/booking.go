package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mountainmajesty/stays/internal/catalog"
	"github.com/mountainmajesty/stays/internal/logger"
	"github.com/mountainmajesty/stays/internal/notify"
)

const notifyTimeout = 15 * time.Second

var validateGuest = validator.New()

// Manager ties the catalog, the booking store and the notification
// collaborator together behind the two presentation-facing operations,
// Search and Confirm.
type Manager struct {
	l        *logger.Logger
	catalog  *catalog.Catalog
	store    *Store
	notifier notify.Notifier
}

func NewManager(l *logger.Logger, c *catalog.Catalog, store *Store, notifier notify.Notifier) *Manager {
	return &Manager{
		l:        l,
		catalog:  c,
		store:    store,
		notifier: notifier,
	}
}

func (in *ConfirmInput) validate() error {
	err := validateGuest.Struct(in.Guest)
	if err == nil {
		return nil
	}

	reject := newRejectError(ReasonInvalidGuest)

	var verrs validator.ValidationErrors

	if !errors.As(err, &verrs) {
		reject.addField("guest", "provide guest details")

		return reject
	}

	for _, fe := range verrs {
		switch field := strings.ToLower(fe.Field()); field {
		case "name":
			reject.addField(field, "provide your full name")
		case "email":
			reject.addField(field, "provide a valid email address")
		case "mobile":
			reject.addField(field, "provide a valid 10-digit mobile number")
		default:
			reject.addField(field, "invalid value")
		}
	}

	return reject
}

// Confirm validates a booking request against the room's effective
// availability recomputed at this moment, records the booking and
// dispatches the notification. The notification is detached: its
// outcome is observed only for logging and the fallback link, never to
// gate or roll back the confirmation.
func (m *Manager) Confirm(ctx context.Context, input ConfirmInput) (*Confirmation, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	room, ok := m.catalog.Get(input.RoomID)
	if !ok {
		return nil, newRejectError(ReasonRoomNotFound)
	}

	if !containsDate(EffectiveDates(room, m.store.BookedDates(room.ID)), input.Date) {
		return nil, newRejectError(ReasonDateUnavailable)
	}

	b := Booking{
		RoomID: room.ID,
		Date:   input.Date,
		Guest:  input.Guest,
	}

	if err := m.store.Add(b); err != nil {
		if errors.Is(err, ErrAlreadyBooked) {
			return nil, newRejectError(ReasonDateUnavailable)
		}

		return nil, err
	}

	conf := &Confirmation{
		ID:       uuid.New().String(),
		RoomID:   room.ID,
		RoomName: room.Name,
		Date:     input.Date,
		Guest:    input.Guest,
		BookedAt: time.Now().UTC(),
	}

	m.dispatchNotification(ctx, room, conf)

	return conf, nil
}

func (m *Manager) dispatchNotification(ctx context.Context, room catalog.Room, conf *Confirmation) {
	n := notify.Booking{
		RoomName:     room.Name,
		RoomLocation: room.Location,
		Price:        room.Price,
		Date:         conf.Date,
		GuestName:    conf.Guest.Name,
		GuestEmail:   conf.Guest.Email,
		GuestMobile:  conf.Guest.Mobile,
		BookedAt:     conf.BookedAt,
	}

	// The task outlives the request on purpose; it must not inherit
	// the caller's cancellation.
	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		if err := m.notifier.Notify(ctx, n); err != nil {
			m.l.LogErrorf("Could not send notification for booking %v: %v", conf.ID, err)

			return
		}

		m.l.LogInfo("Notification sent for booking %v", conf.ID)
	}()
}
