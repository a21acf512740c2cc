package eventbridge

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"

	"commerce-backend/application/ports"
	"commerce-backend/domain/events"
)

// EventSource identifies this service on the event bus
const EventSource = "commerce.backend"

// EventBridgeAPI is the subset of the EventBridge client the publisher uses
type EventBridgeAPI interface {
	PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error)
}

// Publisher implements ports.EventPublisher using AWS EventBridge.
// Publishing is best-effort: failures are logged and reported to the caller,
// which by contract must not fail the originating request over them.
type Publisher struct {
	client       EventBridgeAPI
	eventBusName string
	logger       *zap.Logger
}

// NewPublisher creates a new EventBridge publisher
func NewPublisher(client EventBridgeAPI, eventBusName string, logger *zap.Logger) ports.EventPublisher {
	return &Publisher{
		client:       client,
		eventBusName: eventBusName,
		logger:       logger,
	}
}

// Publish sends a single event to EventBridge
func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	detail, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event",
			zap.String("detailType", event.DetailType()),
			zap.Error(err),
		)
		return err
	}

	input := &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{
			{
				EventBusName: aws.String(p.eventBusName),
				Source:       aws.String(EventSource),
				DetailType:   aws.String(event.DetailType()),
				Detail:       aws.String(string(detail)),
			},
		},
	}

	out, err := p.client.PutEvents(ctx, input)
	if err != nil {
		p.logger.Error("Failed to publish event",
			zap.String("detailType", event.DetailType()),
			zap.Error(err),
		)
		return err
	}

	if out.FailedEntryCount > 0 {
		p.logger.Warn("Event bus rejected event",
			zap.String("detailType", event.DetailType()),
			zap.Int32("failedEntryCount", out.FailedEntryCount),
		)
	}

	return nil
}
