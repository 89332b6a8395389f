package aws

import (
	"context"
	"strings"
	"testing"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticConfig() sdkaws.Config {
	return sdkaws.Config{
		Region: "us-east-1",
		Credentials: sdkaws.CredentialsProviderFunc(func(context.Context) (sdkaws.Credentials, error) {
			return sdkaws.Credentials{AccessKeyID: "AKIDEXAMPLE", SecretAccessKey: "secret"}, nil
		}),
	}
}

func TestS3Presigner_PresignPut(t *testing.T) {
	p := NewS3Presigner(staticConfig(), "product-images", 15*time.Minute)

	url, headers, err := p.PresignPut(context.Background(), "products/abc/photo.png", "image/png")

	require.NoError(t, err)
	assert.Contains(t, url, "/product-images/products/abc/photo.png")
	assert.Contains(t, url, "X-Amz-Expires=900")
	assert.Contains(t, url, "X-Amz-Signature=")
	found := false
	for k, v := range headers {
		if strings.EqualFold(k, "Content-Type") {
			found = true
			assert.Equal(t, "image/png", v)
		}
	}
	assert.True(t, found, "content type must be part of the signed headers")
}

func TestMetricsClient_DisabledIsNoop(t *testing.T) {
	m := NewMetricsClient(staticConfig(), "Test", false)

	assert.False(t, m.IsEnabled())
	assert.NoError(t, m.RecordCount(context.Background(), MetricOrdersCreated, nil))
	assert.NoError(t, m.RecordLatency(context.Background(), MetricHTTPLatency, time.Second, map[string]string{"Path": "/"}))
}
