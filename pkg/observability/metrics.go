package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// CloudWatchAPI is the subset of the CloudWatch client the metrics sink uses
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Metrics publishes operational metrics to CloudWatch. All publishing is
// best-effort; failures are logged and swallowed. A nil *Metrics is valid
// and drops every datum, so call sites need no feature-flag checks.
type Metrics struct {
	client    CloudWatchAPI
	namespace string
	logger    *zap.Logger
}

// NewMetrics creates a CloudWatch metrics sink
func NewMetrics(client CloudWatchAPI, namespace string, logger *zap.Logger) *Metrics {
	return &Metrics{
		client:    client,
		namespace: namespace,
		logger:    logger,
	}
}

// RecordDuration publishes a millisecond timing metric
func (m *Metrics) RecordDuration(ctx context.Context, name string, d time.Duration, dims map[string]string) {
	if m == nil {
		return
	}
	m.put(ctx, types.MetricDatum{
		MetricName: aws.String(name),
		Unit:       types.StandardUnitMilliseconds,
		Value:      aws.Float64(float64(d.Milliseconds())),
		Dimensions: toDimensions(dims),
		Timestamp:  aws.Time(time.Now()),
	})
}

// Increment publishes a count metric with value 1
func (m *Metrics) Increment(ctx context.Context, name string, dims map[string]string) {
	if m == nil {
		return
	}
	m.put(ctx, types.MetricDatum{
		MetricName: aws.String(name),
		Unit:       types.StandardUnitCount,
		Value:      aws.Float64(1),
		Dimensions: toDimensions(dims),
		Timestamp:  aws.Time(time.Now()),
	})
}

func (m *Metrics) put(ctx context.Context, datum types.MetricDatum) {
	input := &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(m.namespace),
		MetricData: []types.MetricDatum{datum},
	}

	if _, err := m.client.PutMetricData(ctx, input); err != nil {
		m.logger.Warn("Failed to publish metric",
			zap.String("metric", aws.ToString(datum.MetricName)),
			zap.Error(err),
		)
	}
}

func toDimensions(dims map[string]string) []types.Dimension {
	if len(dims) == 0 {
		return nil
	}
	out := make([]types.Dimension, 0, len(dims))
	for k, v := range dims {
		out = append(out, types.Dimension{
			Name:  aws.String(k),
			Value: aws.String(v),
		})
	}
	return out
}
