package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/outreachly-backend/internal/model"
	"github.com/unclebandit/outreachly-backend/internal/service"
)

type memOutreachRepo struct {
	nextID   int
	byKey    map[[2]any]*model.OutreachMessage
	contents map[int]string
}

func newMemOutreachRepo() *memOutreachRepo {
	return &memOutreachRepo{
		nextID:   1,
		byKey:    map[[2]any]*model.OutreachMessage{},
		contents: map[int]string{},
	}
}

func (r *memOutreachRepo) CreateForContact(contactID int, channel string) (*model.OutreachMessage, error) {
	key := [2]any{contactID, channel}
	if existing, ok := r.byKey[key]; ok {
		return existing, nil
	}
	msg := &model.OutreachMessage{
		ID:        r.nextID,
		ContactID: contactID,
		Channel:   channel,
		Status:    model.StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.nextID++
	r.byKey[key] = msg
	return msg, nil
}

func (r *memOutreachRepo) GetByContactAndChannel(contactID int, channel string) (*model.OutreachMessage, error) {
	return r.byKey[[2]any{contactID, channel}], nil
}

func (r *memOutreachRepo) GetByID(id int) (*model.OutreachMessage, error) {
	for _, msg := range r.byKey {
		if msg.ID == id {
			return msg, nil
		}
	}
	return nil, nil
}

func (r *memOutreachRepo) Update(msg *model.OutreachMessage) error { return nil }

func (r *memOutreachRepo) UpdateContent(id int, content string) error {
	r.contents[id] = content
	return nil
}

func (r *memOutreachRepo) UpdateStatus(id int, status, lastError string) error { return nil }

func (r *memOutreachRepo) StatsByStatus() (map[string]int, error) {
	return map[string]int{}, nil
}

type fakeQueue struct {
	published []any
}

func (q *fakeQueue) Publish(topic string, payload any) error {
	q.published = append(q.published, payload)
	return nil
}

func (q *fakeQueue) Subscribe(topic string, handler func(payload any) error) error { return nil }

type outreachContactRepo struct {
	stubContactRepo
}

func (outreachContactRepo) GetByID(id int) (*model.Contact, error) {
	return &model.Contact{ID: id, PhoneNumber: "01712345678", CampaignType: model.CampaignStandard}, nil
}

func TestQueueOutreach(t *testing.T) {
	repo := newMemOutreachRepo()
	q := &fakeQueue{}
	svc := &service.OutreachService{
		ContactRepo:  outreachContactRepo{},
		OutreachRepo: repo,
		Queue:        q,
	}

	result, err := svc.QueueOutreach([]int{1, 2}, model.ChannelWhatsApp, "Hello {phone}!")
	require.NoError(t, err)

	assert.Equal(t, 2, result.MessagesQueued)
	assert.Len(t, q.published, 2)
	assert.Equal(t, "Hello 01712345678!", repo.contents[result.MessageIDs[0]])
}

func TestQueueOutreachIsIdempotentPerChannel(t *testing.T) {
	repo := newMemOutreachRepo()
	q := &fakeQueue{}
	svc := &service.OutreachService{
		ContactRepo:  outreachContactRepo{},
		OutreachRepo: repo,
		Queue:        q,
	}

	first, err := svc.QueueOutreach([]int{1}, model.ChannelSMS, "hi")
	require.NoError(t, err)
	second, err := svc.QueueOutreach([]int{1}, model.ChannelSMS, "hi")
	require.NoError(t, err)

	// the same underlying message is re-queued, not duplicated
	assert.Equal(t, first.MessageIDs, second.MessageIDs)
	assert.Len(t, repo.byKey, 1)
}

func TestQueueOutreachRejectsUnknownChannel(t *testing.T) {
	svc := &service.OutreachService{
		ContactRepo:  outreachContactRepo{},
		OutreachRepo: newMemOutreachRepo(),
		Queue:        &fakeQueue{},
	}

	_, err := svc.QueueOutreach([]int{1}, "pigeon", "hi")
	assert.Error(t, err)
}

func TestRenderGreeting(t *testing.T) {
	got := service.RenderGreeting("Hi {name}, {name} from {place}!", map[string]string{
		"name":  "Rahim",
		"place": "",
	})
	assert.Equal(t, "Hi Rahim, Rahim from <unknown>!", got)
}
