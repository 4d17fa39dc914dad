package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-hris-leave/internal/events"
	notificationMock "go-hris-leave/internal/notification/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// fakeReader serves queued messages, then cancels the consumer's context.
type fakeReader struct {
	queue     []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.queue) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

type fakeProvisioner struct {
	calls []string
	err   error
}

func (p *fakeProvisioner) ProvisionEmployee(_ context.Context, companyID, employeeID string) (int, error) {
	p.calls = append(p.calls, companyID+"/"+employeeID)
	return 2, p.err
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestConsumeEmployeeLifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reader := &fakeReader{cancel: cancel, queue: []kafkago.Message{
		{Offset: 1, Value: mustJSON(t, events.EmployeeCreatedEvent{EventType: events.EventEmployeeCreated, CompanyID: "c-1", EmployeeID: "e-1"})},
		{Offset: 2, Value: []byte("not json")},
		{Offset: 3, Value: mustJSON(t, events.EmployeeCreatedEvent{EventType: "employee_terminated", CompanyID: "c-1", EmployeeID: "e-2"})},
	}}
	provisioner := &fakeProvisioner{}

	ConsumeEmployeeLifecycle(ctx, reader, provisioner, zap.NewNop())

	assert.Equal(t, []string{"c-1/e-1"}, provisioner.calls)
	assert.Len(t, reader.committed, 3)
}

func TestConsumeEmployeeLifecycle_FailureLeavesUncommitted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reader := &fakeReader{cancel: cancel, queue: []kafkago.Message{
		{Value: mustJSON(t, events.EmployeeCreatedEvent{CompanyID: "c-1", EmployeeID: "e-1"})},
	}}

	ConsumeEmployeeLifecycle(ctx, reader, &fakeProvisioner{err: errors.New("db down")}, zap.NewNop())

	assert.Empty(t, reader.committed)
}

func TestConsumeLeaveNotifications(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ctrl := gomock.NewController(t)
	notifier := notificationMock.NewMockService(ctrl)

	submitted := events.LeaveApplicationSubmittedEvent{ReferenceNo: "LV-000001", CompanyID: "c-1"}
	decided := events.LeaveApplicationDecidedEvent{ReferenceNo: "LV-000002", CompanyID: "c-1", Status: "Approved"}

	reader := &fakeReader{cancel: cancel, queue: []kafkago.Message{
		{Topic: events.LeaveApplicationSubmittedTopic, Value: mustJSON(t, submitted)},
		{
			Topic:   events.LeaveApplicationDecidedTopic,
			Value:   mustJSON(t, decided),
			Headers: []kafkago.Header{{Key: "request_id", Value: []byte("req-9")}},
		},
		{Topic: events.LeaveApplicationDecidedTopic, Value: mustJSON(t, decided)},
	}}

	notifier.EXPECT().LeaveSubmitted(gomock.Any(), submitted).Return(nil)
	notifier.EXPECT().LeaveDecided(gomock.Any(), decided).Return(nil)
	notifier.EXPECT().LeaveDecided(gomock.Any(), decided).Return(errors.New("smtp down"))

	ConsumeLeaveNotifications(ctx, reader, notifier, zap.NewNop())

	assert.Len(t, reader.committed, 2)
}
