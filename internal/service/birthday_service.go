// internal/service/birthday_service.go
package service

import (
    "math"
    "time"

    "github.com/unclebandit/outreachly-backend/internal/model"
    "github.com/unclebandit/outreachly-backend/internal/repository"
)

// windowDays is the width of the upcoming/recent windows and the reminder
// lead time.
const windowDays = 7

type BirthdayService struct {
    ContactRepo repository.ContactRepositoryInterface
}

type BirthdayEntry struct {
    Contact   model.BirthdayContact `json:"contact"`
    DaysUntil int                   `json:"days_until,omitempty"`
    DaysSince int                   `json:"days_since,omitempty"`
}

type BirthdayStats struct {
    Today     int `json:"today"`
    ThisWeek  int `json:"this_week"`
    ThisMonth int `json:"this_month"`
}

type BirthdayBuckets struct {
    Today    []BirthdayEntry `json:"today"`
    Upcoming []BirthdayEntry `json:"upcoming"`
    Recent   []BirthdayEntry `json:"recent"`
    Reminder []BirthdayEntry `json:"reminder"`
    Stats    BirthdayStats   `json:"stats"`
}

// BucketsFor loads the birthday campaign contacts and classifies them
// against the given reference date.
func (s *BirthdayService) BucketsFor(today time.Time) (*BirthdayBuckets, error) {
    contacts, err := s.ContactRepo.ListBirthdayContacts()
    if err != nil {
        return nil, err
    }
    return Classify(contacts, today), nil
}

// Classify partitions contacts into the recurring-birthday windows.
// Buckets are computed independently: a contact exactly windowDays out
// lands in both Upcoming and Reminder, and that overlap is intentional.
// Anchors are built with time.Date, so day 29-31 birthdays roll over into
// the next month in years where the anchored month is shorter.
func Classify(contacts []model.BirthdayContact, today time.Time) *BirthdayBuckets {
    b := &BirthdayBuckets{
        Today:    []BirthdayEntry{},
        Upcoming: []BirthdayEntry{},
        Recent:   []BirthdayEntry{},
        Reminder: []BirthdayEntry{},
    }

    day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

    for _, c := range contacts {
        if c.Birthday == nil {
            continue
        }
        bMonth, bDay := c.Birthday.Month(), c.Birthday.Day()

        if bMonth == day.Month() {
            b.Stats.ThisMonth++
        }

        if bMonth == day.Month() && bDay == day.Day() {
            b.Today = append(b.Today, BirthdayEntry{Contact: c})
            continue
        }

        thisYear := time.Date(day.Year(), bMonth, bDay, 0, 0, 0, 0, day.Location())
        nextYear := time.Date(day.Year()+1, bMonth, bDay, 0, 0, 0, 0, day.Location())
        lastYear := time.Date(day.Year()-1, bMonth, bDay, 0, 0, 0, 0, day.Location())

        if du, ok := pickWindow(daysBetween(day, thisYear), daysBetween(day, nextYear)); ok {
            b.Upcoming = append(b.Upcoming, BirthdayEntry{Contact: c, DaysUntil: du})
        }

        if ds, ok := pickWindow(daysBetween(thisYear, day), daysBetween(lastYear, day)); ok {
            b.Recent = append(b.Recent, BirthdayEntry{Contact: c, DaysSince: ds})
        }

        // Reminder fires on exactly one day, windowDays before the next
        // occurrence.
        remThisYear := thisYear.AddDate(0, 0, -windowDays)
        remNextYear := nextYear.AddDate(0, 0, -windowDays)
        if sameDate(remThisYear, day) || sameDate(remNextYear, day) {
            b.Reminder = append(b.Reminder, BirthdayEntry{Contact: c, DaysUntil: windowDays})
        }
    }

    b.Stats.Today = len(b.Today)
    b.Stats.ThisWeek = len(b.Today) + len(b.Upcoming)

    return b
}

// daysBetween is ceil((to - from) / 1 day); negative when to is in the past.
func daysBetween(from, to time.Time) int {
    return int(math.Ceil(to.Sub(from).Hours() / 24))
}

// pickWindow checks both anchors and returns whichever distance falls in
// [1, windowDays]. Normally only the first fires; the second guards the
// year boundary.
func pickWindow(primary, secondary int) (int, bool) {
    if primary >= 1 && primary <= windowDays {
        return primary, true
    }
    if secondary >= 1 && secondary <= windowDays {
        return secondary, true
    }
    return 0, false
}

func sameDate(a, b time.Time) bool {
    return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
