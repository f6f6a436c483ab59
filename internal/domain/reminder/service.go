package reminder

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lembra/lembra/internal/domain/appointment"
	"github.com/lembra/lembra/internal/domain/medication"
)

// fetchLimit bounds how many records feed a single aggregation. A personal
// account stays far below this.
const fetchLimit = 1000

// Service derives the notification feed and the dashboard summary. It owns no
// state of its own; everything is recomputed from the two source domains on
// each call.
type Service struct {
	appointments appointment.Repository
	medications  medication.Repository
	loc          *time.Location
	now          func() time.Time
}

func NewService(appointments appointment.Repository, medications medication.Repository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		appointments: appointments,
		medications:  medications,
		loc:          loc,
		now:          time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

func (s *Service) Feed(ctx context.Context, ownerID uuid.UUID) (*Feed, error) {
	appts, meds, err := s.fetch(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return BuildFeed(appts, meds, s.now(), s.loc), nil
}

func (s *Service) Summary(ctx context.Context, ownerID uuid.UUID) (*Summary, error) {
	appts, meds, err := s.fetch(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return Summarize(appts, meds, s.now(), s.loc), nil
}

func (s *Service) fetch(ctx context.Context, ownerID uuid.UUID) ([]*appointment.Appointment, []*medication.Medication, error) {
	appts, _, err := s.appointments.ListByOwner(ctx, ownerID, fetchLimit, 0)
	if err != nil {
		return nil, nil, err
	}
	meds, _, err := s.medications.ListByOwner(ctx, ownerID, fetchLimit, 0)
	if err != nil {
		return nil, nil, err
	}
	return appts, meds, nil
}

// BuildFeed projects appointments and medications onto the four feed buckets.
// Every appointment appears exactly once: past ones in History, future ones
// bucketed by calendar day. A medication contributes at most its single next
// dose and never shows up in History.
func BuildFeed(appts []*appointment.Appointment, meds []*medication.Medication, now time.Time, loc *time.Location) *Feed {
	feed := &Feed{}
	today := dayOf(now, loc)
	tomorrow := today.AddDate(0, 0, 1)

	place := func(o Occurrence) {
		switch {
		case o.When.Before(now):
			feed.History = append(feed.History, o)
		case dayOf(o.When, loc).Equal(today):
			feed.Today = append(feed.Today, o)
		case dayOf(o.When, loc).Equal(tomorrow):
			feed.Tomorrow = append(feed.Tomorrow, o)
		default:
			feed.Upcoming = append(feed.Upcoming, o)
		}
	}

	for _, a := range appts {
		place(apptOccurrence(a))
	}
	for _, m := range meds {
		if o, ok := medOccurrence(m, now); ok {
			place(o)
		}
	}

	ascending := func(b []Occurrence) {
		sort.Slice(b, func(i, j int) bool { return b[i].When.Before(b[j].When) })
	}
	ascending(feed.Today)
	ascending(feed.Tomorrow)
	ascending(feed.Upcoming)
	sort.Slice(feed.History, func(i, j int) bool {
		return feed.History[j].When.Before(feed.History[i].When)
	})
	return feed
}

// Summarize reduces the same inputs to the dashboard card: how many items
// fall on today's calendar day, and the nearest future item of each kind.
func Summarize(appts []*appointment.Appointment, meds []*medication.Medication, now time.Time, loc *time.Location) *Summary {
	sum := &Summary{}
	today := dayOf(now, loc)

	for _, a := range appts {
		if !dayOf(a.ScheduledAt, loc).Equal(today) {
			continue
		}
		sum.ApptCountToday++
		if !a.ScheduledAt.After(now) {
			continue
		}
		if sum.NextAppt == nil || a.ScheduledAt.Before(sum.NextAppt.When) {
			o := apptOccurrence(a)
			sum.NextAppt = &o
		}
	}

	for _, m := range meds {
		o, ok := medOccurrence(m, now)
		if !ok {
			continue
		}
		if !dayOf(o.When, loc).Equal(today) {
			continue
		}
		sum.MedCountToday++
		if sum.NextMed == nil || o.When.Before(sum.NextMed.When) {
			next := o
			sum.NextMed = &next
		}
	}
	return sum
}

func apptOccurrence(a *appointment.Appointment) Occurrence {
	return Occurrence{
		SourceID: a.ID,
		Kind:     KindAppointment,
		Title:    "Consulta " + a.Specialty,
		When:     a.ScheduledAt,
		Attended: a.Attended,
	}
}

func medOccurrence(m *medication.Medication, now time.Time) (Occurrence, bool) {
	next, ok := m.NextDose(now)
	if !ok {
		return Occurrence{}, false
	}
	return Occurrence{
		SourceID: m.ID,
		Kind:     KindMedication,
		Title:    "Tomar " + m.Name,
		When:     next,
	}, true
}

// dayOf truncates an instant to its calendar day in loc.
func dayOf(t time.Time, loc *time.Location) time.Time {
	y, mo, d := t.In(loc).Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, loc)
}
