package events

import (
	"context"

	awspkg "github.com/yaksha-ameet-khemani/e-mall-pro-connect/pkg/aws"
)

type SNSPublisher struct {
	client   awspkg.SNSPublisher
	topicArn string
}

func NewSNSPublisher(client awspkg.SNSPublisher, topicArn string) *SNSPublisher {
	return &SNSPublisher{client: client, topicArn: topicArn}
}

func (p *SNSPublisher) PublishOrderEvent(ctx context.Context, evt OrderEvent) error {
	data, err := encode(evt)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, p.topicArn, data)
}

func (p *SNSPublisher) Close() error { return nil }
