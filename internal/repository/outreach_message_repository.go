package repository

import (
    "database/sql"
    "time"

    "github.com/unclebandit/outreachly-backend/internal/model"
)

type OutreachMessageRepositoryInterface interface {
    CreateForContact(contactID int, channel string) (*model.OutreachMessage, error)
    GetByContactAndChannel(contactID int, channel string) (*model.OutreachMessage, error)
    GetByID(id int) (*model.OutreachMessage, error)
    Update(msg *model.OutreachMessage) error
    UpdateContent(id int, content string) error
    UpdateStatus(id int, status, lastError string) error
    StatsByStatus() (map[string]int, error)
}

type OutreachMessageRepository struct {
    DB *sql.DB
}

// CreateForContact is an idempotent insert: one message per contact and
// channel, returning the existing row if there is one.
func (r *OutreachMessageRepository) CreateForContact(contactID int, channel string) (*model.OutreachMessage, error) {
    existing, err := r.GetByContactAndChannel(contactID, channel)
    if err != nil {
        return nil, err
    }
    if existing != nil {
        return existing, nil
    }

    query := `
        INSERT INTO outreach_messages (contact_id, channel, status, rendered_content, retry_count, created_at, updated_at)
        VALUES ($1, $2, 'pending', '', 0, NOW(), NOW())
        RETURNING id, status, retry_count, created_at, updated_at
    `
    var msg model.OutreachMessage
    err = r.DB.QueryRow(query, contactID, channel).Scan(&msg.ID, &msg.Status, &msg.RetryCount, &msg.CreatedAt, &msg.UpdatedAt)
    if err != nil {
        return nil, err
    }

    msg.ContactID = contactID
    msg.Channel = channel
    return &msg, nil
}

func (r *OutreachMessageRepository) GetByContactAndChannel(contactID int, channel string) (*model.OutreachMessage, error) {
    query := `SELECT id, contact_id, channel, status, rendered_content, last_error, retry_count, created_at, updated_at
              FROM outreach_messages
              WHERE contact_id=$1 AND channel=$2`
    var msg model.OutreachMessage
    err := r.DB.QueryRow(query, contactID, channel).Scan(
        &msg.ID, &msg.ContactID, &msg.Channel, &msg.Status,
        &msg.RenderedContent, &msg.LastError, &msg.RetryCount,
        &msg.CreatedAt, &msg.UpdatedAt,
    )
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, nil
        }
        return nil, err
    }
    return &msg, nil
}

// GetByID fetches an outreach message by its ID
func (r *OutreachMessageRepository) GetByID(id int) (*model.OutreachMessage, error) {
    query := `
        SELECT id, contact_id, channel, status, rendered_content, last_error, retry_count, created_at, updated_at
        FROM outreach_messages
        WHERE id=$1
    `
    var msg model.OutreachMessage
    err := r.DB.QueryRow(query, id).Scan(
        &msg.ID, &msg.ContactID, &msg.Channel, &msg.Status,
        &msg.RenderedContent, &msg.LastError, &msg.RetryCount,
        &msg.CreatedAt, &msg.UpdatedAt,
    )
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, nil
        }
        return nil, err
    }
    return &msg, nil
}

// Update rewrites the mutable fields (status, last_error, retry_count)
func (r *OutreachMessageRepository) Update(msg *model.OutreachMessage) error {
    msg.UpdatedAt = time.Now()
    query := `
        UPDATE outreach_messages
        SET status=$1, rendered_content=$2, last_error=$3, retry_count=$4, updated_at=$5
        WHERE id=$6
    `
    _, err := r.DB.Exec(query, msg.Status, msg.RenderedContent, msg.LastError, msg.RetryCount, msg.UpdatedAt, msg.ID)
    return err
}

func (r *OutreachMessageRepository) UpdateContent(id int, content string) error {
    query := `UPDATE outreach_messages SET rendered_content=$1, updated_at=NOW() WHERE id=$2`
    _, err := r.DB.Exec(query, content, id)
    return err
}

func (r *OutreachMessageRepository) UpdateStatus(id int, status, lastError string) error {
    query := `UPDATE outreach_messages SET status=$1, last_error=$2, retry_count=retry_count+1, updated_at=NOW() WHERE id=$3`
    _, err := r.DB.Exec(query, status, lastError, id)
    return err
}

// StatsByStatus counts outreach messages per delivery status.
func (r *OutreachMessageRepository) StatsByStatus() (map[string]int, error) {
    query := `SELECT status, COUNT(*) FROM outreach_messages GROUP BY status`
    rows, err := r.DB.Query(query)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    stats := map[string]int{"pending": 0, "sent": 0, "failed": 0}
    for rows.Next() {
        var status string
        var count int
        if err := rows.Scan(&status, &count); err != nil {
            return nil, err
        }
        stats[status] = count
    }
    return stats, nil
}

var _ OutreachMessageRepositoryInterface = (*OutreachMessageRepository)(nil)
