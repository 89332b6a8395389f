package services

import (
	"context"
	"time"

	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/events"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	awspkg "github.com/yaksha-ameet-khemani/e-mall-pro-connect/pkg/aws"
	"go.uber.org/zap"
)

// ProductCache is the read-through cache consulted for product reads.
type ProductCache interface {
	GetProduct(ctx context.Context, id string) (*models.Product, bool)
	SetProduct(ctx context.Context, product *models.Product)
	GetProductList(ctx context.Context) ([]models.Product, bool)
	SetProductList(ctx context.Context, products []models.Product)
	InvalidateProduct(ctx context.Context, id string)
	InvalidateList(ctx context.Context)
}

// ImagePresigner issues upload URLs for product images.
type ImagePresigner interface {
	PresignPut(ctx context.Context, key, contentType string) (string, map[string]string, error)
}

// infra holds the optional collaborators shared by the services.
type infra struct {
	cache       ProductCache
	presigner   ImagePresigner
	imagePrefix string
	publisher   events.Publisher
	metrics     awspkg.MetricsRecorder
	logger      *zap.Logger
}

type Option func(*infra)

func WithProductCache(c ProductCache) Option {
	return func(i *infra) { i.cache = c }
}

func WithImagePresigner(p ImagePresigner, prefix string) Option {
	return func(i *infra) {
		i.presigner = p
		i.imagePrefix = prefix
	}
}

func WithEventPublisher(p events.Publisher) Option {
	return func(i *infra) { i.publisher = p }
}

func WithMetrics(m awspkg.MetricsRecorder) Option {
	return func(i *infra) { i.metrics = m }
}

func newInfra(logger *zap.Logger, opts []Option) infra {
	if logger == nil {
		logger = zap.NewNop()
	}
	i := infra{publisher: events.NoopPublisher{}, logger: logger}
	for _, opt := range opts {
		opt(&i)
	}
	return i
}

// publish sends evt and logs delivery failures; order state is already committed.
func (i *infra) publish(ctx context.Context, evt events.OrderEvent) {
	if err := i.publisher.PublishOrderEvent(ctx, evt); err != nil {
		i.logger.Warn("Failed to publish order event",
			zap.String("type", evt.Type),
			zap.String("order_id", evt.OrderID.Hex()),
			zap.Error(err),
		)
	}
}

func (i *infra) count(metric string) {
	if i.metrics == nil || !i.metrics.IsEnabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := i.metrics.RecordCount(ctx, metric, nil); err != nil {
			i.logger.Debug("Failed to record metric", zap.String("metric", metric), zap.Error(err))
		}
	}()
}
