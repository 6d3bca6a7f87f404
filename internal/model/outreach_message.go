// internal/model/outreach_message.go
package model

import "time"

// Outbound channels
const (
    ChannelWhatsApp = "whatsapp"
    ChannelSMS      = "sms"
    ChannelCall     = "call"
)

type OutreachMessage struct {
    ID              int       `db:"id" json:"id"`
    ContactID       int       `db:"contact_id" json:"contact_id"`
    Channel         string    `db:"channel" json:"channel"` // whatsapp, sms, call
    Status          string    `db:"status" json:"status"`   // pending, sent, failed
    RenderedContent string    `db:"rendered_content" json:"rendered_content"`
    LastError       string    `db:"last_error" json:"last_error,omitempty"`
    RetryCount      int       `db:"retry_count" json:"retry_count"`
    CreatedAt       time.Time `db:"created_at" json:"created_at"`
    UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
