package sns

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/nexus-dashboard/internal/config"
	"github.com/nexus-dashboard/internal/domain"
)

const eventOrderPlaced = "order.placed"

// PublishAPI is the subset of the SNS client the publisher uses.
type PublishAPI interface {
	Publish(ctx context.Context, in *sns.PublishInput, opts ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// OrderPublisher announces newly placed orders on an SNS topic.
type OrderPublisher struct {
	client   PublishAPI
	topicARN string
}

// NewClient creates an SNS client for cfg.SNSRegion, honoring the LocalStack endpoint.
func NewClient(ctx context.Context, cfg *config.Config) (*sns.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.SNSRegion))
	if err != nil {
		return nil, fmt.Errorf("load AWS config for SNS: %w", err)
	}
	var opts []func(*sns.Options)
	if cfg.AWSEndpointURL != "" {
		opts = append(opts, func(o *sns.Options) { o.BaseEndpoint = aws.String(cfg.AWSEndpointURL) })
	}
	return sns.NewFromConfig(awsCfg, opts...), nil
}

func NewOrderPublisher(client PublishAPI, topicARN string) *OrderPublisher {
	return &OrderPublisher{client: client, topicARN: topicARN}
}

// PublishOrderPlaced sends the order as a JSON message with an "event" attribute
// so subscribers can filter on it.
func (p *OrderPublisher) PublishOrderPlaced(ctx context.Context, o *domain.Order) error {
	body, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}
	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"event": {DataType: aws.String("String"), StringValue: aws.String(eventOrderPlaced)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish order %s: %w", o.ID, err)
	}
	return nil
}
