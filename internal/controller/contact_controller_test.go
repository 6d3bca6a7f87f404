package controller_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/unclebandit/outreachly-backend/internal/controller"
	"github.com/unclebandit/outreachly-backend/internal/model"
	"github.com/unclebandit/outreachly-backend/internal/service"
)

// --- Mock Repositories ---

type MockModeratorRepo struct {
	moderators []model.Moderator
}

func (m *MockModeratorRepo) ListActive() ([]model.Moderator, error) { return m.moderators, nil }
func (m *MockModeratorRepo) GetByID(id int) (*model.Moderator, error) {
	return &model.Moderator{ID: id, Name: "Mock", Status: "active"}, nil
}

type MockContactRepo struct {
	unassigned []*model.Contact
	birthdays  []model.BirthdayContact
	assigned   int
}

func (m *MockContactRepo) InsertBatch([]*model.Contact) error                 { return nil }
func (m *MockContactRepo) InsertBirthdayBatch([]*model.BirthdayContact) error { return nil }
func (m *MockContactRepo) ListUnassignedPending() ([]*model.Contact, error)   { return m.unassigned, nil }
func (m *MockContactRepo) Assign(contactID, moderatorID int, at time.Time) error {
	m.assigned++
	return nil
}
func (m *MockContactRepo) ListAssignedBetween(int, time.Time, time.Time) ([]*model.Contact, error) {
	return []*model.Contact{}, nil
}
func (m *MockContactRepo) GetByID(id int) (*model.Contact, error) {
	return &model.Contact{ID: id, PhoneNumber: "01712345678", Status: model.StatusPending}, nil
}
func (m *MockContactRepo) UpdateStatus(int, string) error { return nil }
func (m *MockContactRepo) ListBirthdayContacts() ([]model.BirthdayContact, error) {
	return m.birthdays, nil
}

type envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

// --- Test Functions ---

func TestDistributeHandler(t *testing.T) {
	contactRepo := &MockContactRepo{unassigned: []*model.Contact{
		{ID: 1, PhoneNumber: "01711111111", Status: model.StatusPending},
		{ID: 2, PhoneNumber: "01722222222", Status: model.StatusPending},
		{ID: 3, PhoneNumber: "01733333333", Status: model.StatusPending},
	}}
	modRepo := &MockModeratorRepo{moderators: []model.Moderator{
		{ID: 1, Status: "active"},
		{ID: 2, Status: "active"},
	}}

	ctrl := &controller.ContactController{
		AssignmentService: &service.AssignmentService{ContactRepo: contactRepo, ModeratorRepo: modRepo},
	}

	req := httptest.NewRequest(http.MethodPost, "/assignments/distribute", nil)
	rec := httptest.NewRecorder()
	ctrl.Distribute(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp envelope
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success {
		t.Errorf("expected success envelope, got %+v", resp)
	}
	if got := resp.Data["assigned_count"].(float64); got != 3 {
		t.Errorf("expected 3 assigned, got %v", got)
	}
	if got := resp.Data["moderator_count"].(float64); got != 2 {
		t.Errorf("expected 2 moderators, got %v", got)
	}
	if contactRepo.assigned != 3 {
		t.Errorf("expected 3 assignment writes, got %d", contactRepo.assigned)
	}
}

func TestBirthdaysHandlerWithDate(t *testing.T) {
	bd := time.Date(1990, time.June, 10, 0, 0, 0, 0, time.UTC)
	contactRepo := &MockContactRepo{birthdays: []model.BirthdayContact{
		{ID: 1, PhoneNumber: "01711111111", Birthday: &bd, Status: model.StatusPending},
	}}

	ctrl := &controller.ContactController{
		BirthdayService: &service.BirthdayService{ContactRepo: contactRepo},
	}

	req := httptest.NewRequest(http.MethodGet, "/birthdays?date=2024-06-10", nil)
	rec := httptest.NewRecorder()
	ctrl.Birthdays(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp envelope
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success {
		t.Fatalf("expected success envelope, got %+v", resp)
	}

	stats := resp.Data["stats"].(map[string]interface{})
	if got := stats["today"].(float64); got != 1 {
		t.Errorf("expected 1 birthday today, got %v", got)
	}
}

func TestBirthdaysHandlerRejectsBadDate(t *testing.T) {
	ctrl := &controller.ContactController{
		BirthdayService: &service.BirthdayService{ContactRepo: &MockContactRepo{}},
	}

	req := httptest.NewRequest(http.MethodGet, "/birthdays?date=junk", nil)
	rec := httptest.NewRecorder()
	ctrl.Birthdays(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp envelope
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Success {
		t.Errorf("expected failure envelope, got %+v", resp)
	}
}

func TestUploadRejectsUnknownCampaign(t *testing.T) {
	ctrl := &controller.ContactController{}

	req := httptest.NewRequest(http.MethodPost, "/contacts/upload?campaign=nonsense", nil)
	rec := httptest.NewRecorder()
	ctrl.UploadContacts(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown campaign, got %d", rec.Code)
	}
}

func TestUploadRejectsNonSpreadsheet(t *testing.T) {
	ctrl := &controller.ContactController{}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "contacts.txt")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte("not a spreadsheet"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/contacts/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	ctrl.UploadContacts(rec, req)

	// rejected before any row processing starts
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-spreadsheet upload, got %d", rec.Code)
	}

	var resp envelope
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Success {
		t.Errorf("expected failure envelope, got %+v", resp)
	}
}
