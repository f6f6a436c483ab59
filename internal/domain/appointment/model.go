package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Appointment maps to the appointments table. Attended is tri-state: nil
// means not yet recorded, true/false is the outcome the user entered after
// the scheduled time passed.
type Appointment struct {
	ID          uuid.UUID `db:"id" json:"id"`
	OwnerID     uuid.UUID `db:"owner_id" json:"owner_id"`
	PatientName string    `db:"patient_name" json:"patient_name"`
	Specialty   string    `db:"specialty" json:"specialty"`
	DoctorName  *string   `db:"doctor_name" json:"doctor_name,omitempty"`
	ScheduledAt time.Time `db:"scheduled_at" json:"scheduled_at"`
	Location    string    `db:"location" json:"location"`
	Attended    *bool     `db:"attended" json:"attended,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
