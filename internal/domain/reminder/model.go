package reminder

import (
	"time"

	"github.com/google/uuid"
)

// Kind discriminates the two sources an occurrence can come from.
type Kind string

const (
	KindAppointment Kind = "appointment"
	KindMedication  Kind = "medication"
)

// Occurrence is a single point-in-time event in the feed: an appointment
// instant or a projected medication dose. It is rebuilt on every request and
// never persisted.
type Occurrence struct {
	SourceID uuid.UUID `json:"source_id"`
	Kind     Kind      `json:"kind"`
	Title    string    `json:"title"`
	When     time.Time `json:"when"`
	Attended *bool     `json:"attended,omitempty"`
}

// Feed buckets occurrences by calendar day relative to the evaluation
// instant. Today, Tomorrow and Upcoming are ascending; History is
// descending.
type Feed struct {
	Today    []Occurrence `json:"today"`
	Tomorrow []Occurrence `json:"tomorrow"`
	Upcoming []Occurrence `json:"upcoming"`
	History  []Occurrence `json:"history"`
}

// Summary is the landing-view reduction: today's counts and the next item of
// each kind, if any.
type Summary struct {
	ApptCountToday int         `json:"appointment_count_today"`
	NextAppt       *Occurrence `json:"next_appointment,omitempty"`
	MedCountToday  int         `json:"medication_count_today"`
	NextMed        *Occurrence `json:"next_medication,omitempty"`
}
