package repository

import (
    "database/sql"
    "fmt"
    "strings"
    "time"

    appErrors "github.com/unclebandit/outreachly-backend/internal/errors"
    "github.com/unclebandit/outreachly-backend/internal/model"
)

type ContactRepositoryInterface interface {
    // Ingestion
    InsertBatch(contacts []*model.Contact) error
    InsertBirthdayBatch(contacts []*model.BirthdayContact) error

    // Assignment
    ListUnassignedPending() ([]*model.Contact, error)
    Assign(contactID, moderatorID int, at time.Time) error
    ListAssignedBetween(moderatorID int, from, to time.Time) ([]*model.Contact, error)

    // Reads / lifecycle
    GetByID(id int) (*model.Contact, error)
    UpdateStatus(contactID int, status string) error
    ListBirthdayContacts() ([]model.BirthdayContact, error)
}

type ContactRepository struct {
    DB *sql.DB
}

// ====================== Ingestion ======================

// InsertBatch writes one multi-row INSERT into the generic contacts table.
// The whole batch succeeds or fails together.
func (r *ContactRepository) InsertBatch(contacts []*model.Contact) error {
    if len(contacts) == 0 {
        return nil
    }

    query := `INSERT INTO contacts (phone_number, status, has_whatsapp, campaign_type, created_at) VALUES `
    args := []interface{}{}
    values := make([]string, 0, len(contacts))
    argPos := 1

    for _, c := range contacts {
        values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)",
            argPos, argPos+1, argPos+2, argPos+3, argPos+4))
        args = append(args, c.PhoneNumber, c.Status, c.HasWhatsapp, c.CampaignType, c.CreatedAt)
        argPos += 5
    }

    query += strings.Join(values, ", ")
    _, err := r.DB.Exec(query, args...)
    return err
}

// InsertBirthdayBatch writes one multi-row INSERT into the birthday table.
func (r *ContactRepository) InsertBirthdayBatch(contacts []*model.BirthdayContact) error {
    if len(contacts) == 0 {
        return nil
    }

    query := `INSERT INTO birthday_contacts (phone_number, person_name, birthday, status, created_at) VALUES `
    args := []interface{}{}
    values := make([]string, 0, len(contacts))
    argPos := 1

    for _, c := range contacts {
        values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)",
            argPos, argPos+1, argPos+2, argPos+3, argPos+4))
        args = append(args, c.PhoneNumber, c.PersonName, c.Birthday, c.Status, c.CreatedAt)
        argPos += 5
    }

    query += strings.Join(values, ", ")
    _, err := r.DB.Exec(query, args...)
    return err
}

// ====================== Assignment ======================

// ListUnassignedPending fetches distribution candidates in stable id order.
func (r *ContactRepository) ListUnassignedPending() ([]*model.Contact, error) {
    query := `
        SELECT id, phone_number, status, has_whatsapp, campaign_type, assigned_moderator, assigned_at, created_at
        FROM contacts
        WHERE status = 'pending' AND assigned_moderator IS NULL
        ORDER BY id ASC
    `
    rows, err := r.DB.Query(query)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    return scanContacts(rows)
}

// Assign sets the moderator on a still-unassigned contact. The IS NULL guard
// keeps a later distribution cycle from overwriting an earlier one.
func (r *ContactRepository) Assign(contactID, moderatorID int, at time.Time) error {
    query := `
        UPDATE contacts
        SET assigned_moderator=$1, assigned_at=$2
        WHERE id=$3 AND assigned_moderator IS NULL
    `
    _, err := r.DB.Exec(query, moderatorID, at, contactID)
    return err
}

// ListAssignedBetween returns a moderator's pending contacts assigned inside
// the window, ordered by assignment time ascending.
func (r *ContactRepository) ListAssignedBetween(moderatorID int, from, to time.Time) ([]*model.Contact, error) {
    query := `
        SELECT id, phone_number, status, has_whatsapp, campaign_type, assigned_moderator, assigned_at, created_at
        FROM contacts
        WHERE assigned_moderator=$1 AND status='pending' AND assigned_at BETWEEN $2 AND $3
        ORDER BY assigned_at ASC
    `
    rows, err := r.DB.Query(query, moderatorID, from, to)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    return scanContacts(rows)
}

// ====================== Reads / lifecycle ======================

func (r *ContactRepository) GetByID(id int) (*model.Contact, error) {
    query := `
        SELECT id, phone_number, status, has_whatsapp, campaign_type, assigned_moderator, assigned_at, created_at
        FROM contacts WHERE id=$1
    `
    var c model.Contact
    err := r.DB.QueryRow(query, id).Scan(
        &c.ID, &c.PhoneNumber, &c.Status, &c.HasWhatsapp,
        &c.CampaignType, &c.AssignedModerator, &c.AssignedAt, &c.CreatedAt,
    )
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewContactNotFound(id)
        }
        return nil, err
    }
    return &c, nil
}

// UpdateStatus flips a contact's processing status. Contacts are retired by
// setting status to done, never deleted.
func (r *ContactRepository) UpdateStatus(contactID int, status string) error {
    query := `UPDATE contacts SET status=$1 WHERE id=$2`
    _, err := r.DB.Exec(query, status, contactID)
    return err
}

// ListBirthdayContacts fetches all non-retired birthday campaign contacts.
func (r *ContactRepository) ListBirthdayContacts() ([]model.BirthdayContact, error) {
    query := `
        SELECT id, phone_number, person_name, birthday, status, created_at, updated_at
        FROM birthday_contacts
        WHERE status='pending'
        ORDER BY id ASC
    `
    rows, err := r.DB.Query(query)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    contacts := []model.BirthdayContact{}
    for rows.Next() {
        var c model.BirthdayContact
        if err := rows.Scan(&c.ID, &c.PhoneNumber, &c.PersonName, &c.Birthday, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
            return nil, err
        }
        contacts = append(contacts, c)
    }
    return contacts, rows.Err()
}

func scanContacts(rows *sql.Rows) ([]*model.Contact, error) {
    contacts := []*model.Contact{}
    for rows.Next() {
        c := &model.Contact{}
        if err := rows.Scan(
            &c.ID, &c.PhoneNumber, &c.Status, &c.HasWhatsapp,
            &c.CampaignType, &c.AssignedModerator, &c.AssignedAt, &c.CreatedAt,
        ); err != nil {
            return nil, err
        }
        contacts = append(contacts, c)
    }
    return contacts, rows.Err()
}

var _ ContactRepositoryInterface = (*ContactRepository)(nil)
