// internal/model/contact.go
package model

import "time"

// Campaign namespaces. A contact's campaign type never changes after creation.
const (
    CampaignStandard = "standard"
    CampaignBirthday = "birthday"
)

// Contact statuses
const (
    StatusPending = "pending"
    StatusDone    = "done"
)

type Contact struct {
    ID                int        `db:"id" json:"id"`
    PhoneNumber       string     `db:"phone_number" json:"phone_number"`
    Status            string     `db:"status" json:"status"` // pending, done
    HasWhatsapp       *bool      `db:"has_whatsapp" json:"has_whatsapp,omitempty"`
    CampaignType      string     `db:"campaign_type" json:"campaign_type"`
    AssignedModerator *int       `db:"assigned_moderator" json:"assigned_moderator,omitempty"`
    AssignedAt        *time.Time `db:"assigned_at" json:"assigned_at,omitempty"`
    CreatedAt         time.Time  `db:"created_at" json:"created_at"`
}
