package medication

import (
	"time"

	"github.com/google/uuid"
)

// Medication maps to the medications table. StartTime is the fixed anchor of
// the dosing series; the next dose is always derived from it, never stored.
type Medication struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	OwnerID       uuid.UUID  `db:"owner_id" json:"owner_id"`
	Name          string     `db:"name" json:"name"`
	Dosage        string     `db:"dosage" json:"dosage"`
	FrequencyText string     `db:"frequency_text" json:"frequency_text"`
	StartTime     time.Time  `db:"start_time" json:"start_time"`
	EndDate       *time.Time `db:"end_date" json:"end_date,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// NextDose computes the next administration time relative to now. The second
// return value is false once the treatment has concluded.
func (m *Medication) NextDose(now time.Time) (time.Time, bool) {
	return NextDose(m.StartTime, m.FrequencyText, m.EndDate, now)
}
