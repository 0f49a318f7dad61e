package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB builds the DynamoDB client backing the grant tables
// (budget_requests, fund_requests, utilizations, projects).
//
// Env vars:
//   - AWS_REGION (default: us-east-1)
//   - DYNAMODB_ENDPOINT: when set (e.g. http://dynamodb:8000) the client
//     targets a local DynamoDB with static placeholder credentials;
//     otherwise the SDK's default credential chain applies.
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (local default: local)
func ConnectDynamoDB() *dynamodb.Client {
	ctx := context.Background()
	region := envOr("AWS_REGION", "us-east-1")
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if endpoint != "" {
		// Local DynamoDB does not validate credentials, but the SDK
		// requires some to sign with.
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				envOr("AWS_ACCESS_KEY_ID", "local"),
				envOr("AWS_SECRET_ACCESS_KEY", "local"),
				"",
			),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Fatalf("[storage][database] failed to load aws config: %v", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
