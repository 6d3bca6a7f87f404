// internal/model/moderator.go
package model

// Moderator rows are managed externally; this service only reads them.
type Moderator struct {
    ID     int    `db:"id" json:"id"`
    Name   string `db:"name" json:"name"`
    Status string `db:"status" json:"status"` // active, inactive
}
