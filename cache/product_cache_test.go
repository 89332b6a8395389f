package cache

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// unreachableClient fails every command without touching the network.
func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:       "redis.invalid:6379",
		MaxRetries: -1,
		Dialer: func(context.Context, string, string) (net.Conn, error) {
			return nil, errors.New("dial refused")
		},
	})
}

func TestProductCache_UnavailableRedisIsAMiss(t *testing.T) {
	client := unreachableClient()
	defer client.Close()
	core, logs := observer.New(zapcore.WarnLevel)
	pc := NewProductCache(client, time.Minute, zap.New(core))
	ctx := context.Background()
	product := &models.Product{ID: primitive.NewObjectID(), Name: "Pen", Price: 10}

	pc.SetProduct(ctx, product)
	pc.SetProductList(ctx, []models.Product{*product})

	got, ok := pc.GetProduct(ctx, product.ID.Hex())
	assert.False(t, ok)
	assert.Nil(t, got)

	list, ok := pc.GetProductList(ctx)
	assert.False(t, ok)
	assert.Nil(t, list)

	pc.InvalidateProduct(ctx, product.ID.Hex())
	assert.NotZero(t, logs.FilterMessage("Failed to delete cached product").Len())
	assert.NotZero(t, logs.FilterMessage("Failed to invalidate product list cache").Len())
}

func TestNewRedisClient(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not a url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse redis url")
}
