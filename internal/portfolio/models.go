package portfolio

import (
	"sync/atomic"
	"time"
)

// Content is the public portfolio document edited through the admin panel.
// It is replaced wholesale on every save and its exact shape belongs to the
// presentation layer, so it is kept as raw JSON structure here — the store
// must round-trip whatever fields the admin submits without loss.
type Content map[string]any

// Booking types accepted by the booking endpoint.
const (
	BookingService      = "Service"
	BookingConsultation = "Consultation"
)

// Message is a stored contact-form submission. Append-only: once recorded it
// is never updated or deleted.
type Message struct {
	ID      int64  `json:"id" bson:"id"`
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Message string `json:"message" bson:"message"`
	Date    string `json:"date" bson:"date"`
}

// Booking is a stored service/consultation request. Same lifecycle as Message.
type Booking struct {
	ID        int64  `json:"id" bson:"id"`
	Type      string `json:"type" bson:"type"`
	Title     string `json:"title" bson:"title"`
	Price     string `json:"price" bson:"price"`
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Date      string `json:"date" bson:"date"`
	Notes     string `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
}

// Document is the entire persisted store: the portfolio content plus the two
// append-only logs. All three fields always exist after a load.
type Document struct {
	PortfolioContent Content   `json:"portfolioContent" bson:"portfolioContent"`
	Messages         []Message `json:"messages" bson:"messages"`
	Bookings         []Booking `json:"bookings" bson:"bookings"`
}

// NewDocument returns the seed document written on first load.
func NewDocument() *Document {
	return &Document{
		PortfolioContent: Content{},
		Messages:         []Message{},
		Bookings:         []Booking{},
	}
}

// displayTimeLayout matches the locale-style timestamps the store has always
// recorded (e.g. "1/2/2006, 3:04:05 PM").
const displayTimeLayout = "1/2/2006, 3:04:05 PM"

var lastID atomic.Int64

// NextID returns a millisecond-timestamp identifier that is unique and
// strictly increasing within the process, even when two submissions land in
// the same millisecond.
func NextID() int64 {
	for {
		id := time.Now().UnixMilli()
		last := lastID.Load()
		if id <= last {
			id = last + 1
		}
		if lastID.CompareAndSwap(last, id) {
			return id
		}
	}
}

// NewMessage builds a contact-form entry with a fresh id and timestamp.
func NewMessage(name, email, body string) Message {
	return Message{
		ID:      NextID(),
		Name:    name,
		Email:   email,
		Message: body,
		Date:    time.Now().Format(displayTimeLayout),
	}
}

// NewBooking builds a booking entry with a fresh id and timestamp.
func NewBooking(kind, title, price, name, email, date, notes string) Booking {
	return Booking{
		ID:        NextID(),
		Type:      kind,
		Title:     title,
		Price:     price,
		Name:      name,
		Email:     email,
		Date:      date,
		Notes:     notes,
		CreatedAt: time.Now().Format(displayTimeLayout),
	}
}
