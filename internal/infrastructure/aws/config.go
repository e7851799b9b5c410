package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

type AWSConfig struct {
	Region string
	Lambda *lambda.Client
}

// NewAWSConfig resolves credentials the standard SDK way (env, shared files, role)
func NewAWSConfig(ctx context.Context, region string) (*AWSConfig, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return &AWSConfig{
		Region: region,
		Lambda: lambda.NewFromConfig(cfg),
	}, nil
}
