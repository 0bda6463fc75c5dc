package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"evently/internal/helpers"
)

// Event is one published event. Slug, date and time are managed by the
// pre-save pipeline; callers never set slug directly, and date/time are
// always stored in their canonical forms (YYYY-MM-DD, 24-hour HH:MM).
type Event struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Title       string         `gorm:"not null" json:"title" validate:"required,min=3"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Description string         `gorm:"not null" json:"description" validate:"required"`
	Overview    string         `gorm:"not null" json:"overview" validate:"required"`
	Image       string         `gorm:"not null" json:"image" validate:"required"`
	Venue       string         `gorm:"not null" json:"venue" validate:"required"`
	Location    string         `gorm:"not null" json:"location" validate:"required"`
	Date        string         `gorm:"not null" json:"date" validate:"required"`
	Time        string         `gorm:"not null" json:"time" validate:"required"`
	Mode        string         `gorm:"type:varchar(16);not null" json:"mode" validate:"required,oneof=online offline hybrid"`
	Audience    string         `gorm:"not null" json:"audience" validate:"required"`
	Agenda      pq.StringArray `gorm:"type:text[];not null" json:"agenda" validate:"required,min=1"`
	Organizer   string         `gorm:"not null" json:"organizer" validate:"required"`
	Tags        pq.StringArray `gorm:"type:text[];not null" json:"tags" validate:"required,min=1"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`

	// Values as loaded from the store; nil for records that were never
	// loaded. Drives the "new or changed" checks in BeforeSave.
	loaded *eventSnapshot
}

type eventSnapshot struct {
	title string
	date  string
	time  string
}

// AfterFind snapshots the source fields of the derivation steps so a later
// save can tell which of them actually changed.
func (event *Event) AfterFind(tx *gorm.DB) error {
	event.loaded = &eventSnapshot{title: event.Title, date: event.Date, time: event.Time}
	return nil
}

func (event *Event) BeforeCreate(tx *gorm.DB) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return nil
}

// BeforeSave is the pre-persist pipeline: field validation, then slug
// derivation, date normalization and time normalization, each derivation
// running only when the record is new or its source field changed. Any
// failure aborts the write.
func (event *Event) BeforeSave(tx *gorm.DB) error {
	event.trimFields()

	if err := validateStruct(event); err != nil {
		return err
	}

	if event.loaded == nil || event.Title != event.loaded.title {
		event.Slug = helpers.ToSlug(event.Title)
	}

	if event.loaded == nil || event.Date != event.loaded.date {
		normalized, err := helpers.NormalizeDate(event.Date)
		if err != nil {
			return &NormalizationError{Field: "date", Err: err}
		}
		event.Date = normalized
	}

	if event.loaded == nil || event.Time != event.loaded.time {
		normalized, err := helpers.NormalizeTime(event.Time)
		if err != nil {
			return &NormalizationError{Field: "time", Err: err}
		}
		event.Time = normalized
	}

	return nil
}

func (event *Event) trimFields() {
	event.Title = strings.TrimSpace(event.Title)
	event.Description = strings.TrimSpace(event.Description)
	event.Overview = strings.TrimSpace(event.Overview)
	event.Image = strings.TrimSpace(event.Image)
	event.Venue = strings.TrimSpace(event.Venue)
	event.Location = strings.TrimSpace(event.Location)
	event.Audience = strings.TrimSpace(event.Audience)
	event.Organizer = strings.TrimSpace(event.Organizer)
}
