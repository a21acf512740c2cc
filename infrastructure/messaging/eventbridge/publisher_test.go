package eventbridge

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"commerce-backend/domain/events"
)

type fakeEventBridge struct {
	inputs []*eventbridge.PutEventsInput
	out    *eventbridge.PutEventsOutput
	err    error
}

func (f *fakeEventBridge) PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	if f.out == nil {
		return &eventbridge.PutEventsOutput{}, nil
	}
	return f.out, nil
}

func TestPublishSendsEntry(t *testing.T) {
	fake := &fakeEventBridge{}
	publisher := NewPublisher(fake, "commerce-events", zap.NewNop())

	err := publisher.Publish(context.Background(), events.ReferentialGapDetected{
		OrderID:           "order-1",
		MissingCustomerID: "cust-gone",
	})

	require.NoError(t, err)
	require.Len(t, fake.inputs, 1)
	require.Len(t, fake.inputs[0].Entries, 1)

	entry := fake.inputs[0].Entries[0]
	assert.Equal(t, "commerce-events", *entry.EventBusName)
	assert.Equal(t, EventSource, *entry.Source)
	assert.Equal(t, "ReferentialGapDetected", *entry.DetailType)
	assert.Contains(t, *entry.Detail, "cust-gone")
}

func TestPublishReturnsTransportError(t *testing.T) {
	fake := &fakeEventBridge{err: errors.New("bus unavailable")}
	publisher := NewPublisher(fake, "commerce-events", zap.NewNop())

	err := publisher.Publish(context.Background(), events.OrderCreated{OrderID: "order-1"})

	assert.Error(t, err)
}

func TestPublishToleratesFailedEntries(t *testing.T) {
	fake := &fakeEventBridge{out: &eventbridge.PutEventsOutput{FailedEntryCount: 1}}
	publisher := NewPublisher(fake, "commerce-events", zap.NewNop())

	err := publisher.Publish(context.Background(), events.OrderCreated{OrderID: "order-1"})

	assert.NoError(t, err, "a rejected entry is logged, not surfaced")
}
