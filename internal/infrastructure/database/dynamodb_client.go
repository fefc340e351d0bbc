package database

import (
	"context"
	"log"

	appconfig "estimaciones_obra/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client for cfg.
//
// When DYNAMODB_ENDPOINT is set (DynamoDB Local, LocalStack) the client talks to that endpoint
// with static "local" credentials. Otherwise the default AWS credential chain applies.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.Config) (*dynamodb.Client, error) {
	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("[database][dynamodb] client ready region=%s endpoint=%q", cfg.AWSRegion, cfg.DynamoDBEndpoint)
	return dynamodb.NewFromConfig(awsCfg), nil
}

func NewDynamoDBConfig(ctx context.Context, cfg appconfig.Config) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.AWSRegion),
	}

	if endpoint := cfg.DynamoDBEndpoint; endpoint != "" {
		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
