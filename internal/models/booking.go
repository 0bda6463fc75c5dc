package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Booking is one attendee's reservation for an Event. The reference is
// non-owning: deleting the Event does not cascade to its bookings.
type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;index" json:"eventId" validate:"required"`
	Event     Event     `json:"-" validate:"-"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	loaded *bookingSnapshot
}

type bookingSnapshot struct {
	eventID uuid.UUID
}

func (booking *Booking) AfterFind(tx *gorm.DB) error {
	booking.loaded = &bookingSnapshot{eventID: booking.EventID}
	return nil
}

func (booking *Booking) BeforeCreate(tx *gorm.DB) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	return nil
}

// BeforeSave normalizes and validates the email, then verifies the
// referenced Event exists whenever the record is new or eventId changed.
// The existence check and the write are two independent statements; a
// concurrent Event deletion between them is an accepted window.
func (booking *Booking) BeforeSave(tx *gorm.DB) error {
	booking.Email = strings.ToLower(strings.TrimSpace(booking.Email))

	if err := validateStruct(booking); err != nil {
		return err
	}

	if !emailPattern.MatchString(booking.Email) {
		return ValidationErrors{{
			Field:   "email",
			Message: fmt.Sprintf("%q is not a valid email address", booking.Email),
		}}
	}

	if booking.loaded == nil || booking.EventID != booking.loaded.eventID {
		var count int64
		if err := tx.Model(&Event{}).Where("id = ?", booking.EventID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return &ReferenceError{EventID: booking.EventID}
		}
	}

	return nil
}
