// internal/model/birthday_contact.go
package model

import "time"

// BirthdayContact lives in the birthday campaign table. Only the month and
// day of Birthday are meaningful; the year is whatever the upload carried.
type BirthdayContact struct {
    ID          int        `db:"id" json:"id"`
    PhoneNumber string     `db:"phone_number" json:"phone_number"`
    PersonName  string     `db:"person_name" json:"person_name"`
    Birthday    *time.Time `db:"birthday" json:"birthday,omitempty"`
    Status      string     `db:"status" json:"status"` // pending, done
    CreatedAt   time.Time  `db:"created_at" json:"created_at"`
    UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
