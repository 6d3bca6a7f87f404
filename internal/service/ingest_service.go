// internal/service/ingest_service.go
package service

import (
    "log"
    "math"
    "strings"
    "time"

    "github.com/google/uuid"

    "github.com/unclebandit/outreachly-backend/internal/model"
    "github.com/unclebandit/outreachly-backend/internal/phone"
    "github.com/unclebandit/outreachly-backend/internal/repository"
    "github.com/unclebandit/outreachly-backend/internal/spreadsheet"
)

// insertBatchSize bounds each store write; batches go out strictly one at
// a time.
const insertBatchSize = 1000

type IngestService struct {
    ContactRepo repository.ContactRepositoryInterface

    // Progress, when set, receives the percentage after every batch.
    Progress func(percent int)
}

// IngestResult counts sum up: Total = Unique + Duplicates, and
// Unique = Inserted + Errors.
type IngestResult struct {
    ImportID   string `json:"import_id"`
    Total      int    `json:"total"`
    Unique     int    `json:"unique"`
    Inserted   int    `json:"inserted"`
    Errors     int    `json:"errors"`
    Duplicates int    `json:"duplicates"`
}

type ingestRow struct {
    phone    string
    name     string
    birthday *time.Time
}

// Ingest runs uploaded rows through canonicalization, stable first-wins
// dedup, and batched inserts. Row 0 is the header. A failed batch counts
// fully as errors and never aborts the batches after it.
func (s *IngestService) Ingest(rows [][]string, campaignType string) (*IngestResult, error) {
    result := &IngestResult{ImportID: uuid.NewString()}
    if len(rows) <= 1 {
        return result, nil
    }

    parsed := make([]ingestRow, 0, len(rows)-1)
    for _, row := range rows[1:] {
        if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
            continue
        }
        p := ingestRow{phone: phone.Canonicalize(row[0])}
        if campaignType == model.CampaignBirthday {
            if len(row) > 1 {
                if bd, ok := spreadsheet.ParseBirthday(row[1]); ok {
                    p.birthday = &bd
                }
            }
            if len(row) > 2 {
                p.name = strings.TrimSpace(row[2])
            }
        }
        parsed = append(parsed, p)
    }

    result.Total = len(parsed)

    seen := make(map[string]bool, len(parsed))
    unique := make([]ingestRow, 0, len(parsed))
    for _, p := range parsed {
        if seen[p.phone] {
            continue
        }
        seen[p.phone] = true
        unique = append(unique, p)
    }
    result.Unique = len(unique)
    result.Duplicates = result.Total - result.Unique

    now := time.Now()
    processed := 0
    for start := 0; start < len(unique); start += insertBatchSize {
        end := start + insertBatchSize
        if end > len(unique) {
            end = len(unique)
        }
        batch := unique[start:end]

        var err error
        if campaignType == model.CampaignBirthday {
            err = s.ContactRepo.InsertBirthdayBatch(shapeBirthdayBatch(batch, now))
        } else {
            err = s.ContactRepo.InsertBatch(shapeContactBatch(batch, campaignType, now))
        }

        if err != nil {
            log.Println("⚠️ import", result.ImportID, "batch insert failed:", err)
            result.Errors += len(batch)
        } else {
            result.Inserted += len(batch)
        }

        processed += len(batch)
        percent := int(math.Ceil(float64(processed) / float64(len(unique)) * 100))
        log.Printf("📦 import %s: %d%% (%d/%d)", result.ImportID, percent, processed, len(unique))
        if s.Progress != nil {
            s.Progress(percent)
        }
    }

    return result, nil
}

func shapeContactBatch(rows []ingestRow, campaignType string, now time.Time) []*model.Contact {
    contacts := make([]*model.Contact, 0, len(rows))
    for _, p := range rows {
        contacts = append(contacts, &model.Contact{
            PhoneNumber:  p.phone,
            Status:       model.StatusPending,
            HasWhatsapp:  nil,
            CampaignType: campaignType,
            CreatedAt:    now,
        })
    }
    return contacts
}

func shapeBirthdayBatch(rows []ingestRow, now time.Time) []*model.BirthdayContact {
    contacts := make([]*model.BirthdayContact, 0, len(rows))
    for _, p := range rows {
        contacts = append(contacts, &model.BirthdayContact{
            PhoneNumber: p.phone,
            PersonName:  p.name,
            Birthday:    p.birthday,
            Status:      model.StatusPending,
            CreatedAt:   now,
        })
    }
    return contacts
}
