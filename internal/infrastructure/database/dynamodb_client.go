package database

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"
)

const (
	DefaultRegion    = "us-east-1"
	defaultLocalCred = "local"
)

var log = logrus.WithField("component", "database")

// DynamoDBConfig selects the DynamoDB the service talks to.
//
// Endpoint is optional and points the client at a local DynamoDB
// (e.g. http://dynamodb:8000). Static credentials are only used when both
// keys are set or when Endpoint is set; otherwise the default AWS chain
// applies.
type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// ConnectDynamoDB creates a DynamoDB client from cfg.
func ConnectDynamoDB(ctx context.Context, cfg DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	log.Infof("[database][dynamodb] client ready region=%s endpoint=%q", awsCfg.Region, endpoint)
	return client, nil
}

func NewAWSConfig(ctx context.Context, cfg DynamoDBConfig) (aws.Config, error) {
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = DefaultRegion
	}
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	key, secret := cfg.AccessKeyID, cfg.SecretAccessKey
	if strings.TrimSpace(cfg.Endpoint) != "" {
		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		if key == "" {
			key = defaultLocalCred
		}
		if secret == "" {
			secret = defaultLocalCred
		}
	}
	if key != "" && secret != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, ""),
		))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
