package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// API is the subset of the DynamoDB client used for candidate lookups
type API interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
}

// Client wraps the DynamoDB client with helper methods
type Client struct {
	db       API
	endpoint string
	region   string
}

// ConnectionConfig holds connection settings
type ConnectionConfig struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	UseLocal  bool
}

// NewClient creates a new DynamoDB client
func NewClient(ctx context.Context, cfg ConnectionConfig) (*Client, error) {
	var opts []func(*config.LoadOptions) error

	opts = append(opts, config.WithRegion(cfg.Region))

	if cfg.UseLocal {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var dbOpts []func(*dynamodb.Options)
	if cfg.Endpoint != "" {
		dbOpts = append(dbOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	return &Client{
		db:       dynamodb.NewFromConfig(awsCfg, dbOpts...),
		endpoint: cfg.Endpoint,
		region:   cfg.Region,
	}, nil
}

// NewClientWithAPI wraps an existing API implementation
func NewClientWithAPI(api API, region string) *Client {
	return &Client{db: api, region: region}
}

// Region returns the region the client talks to
func (c *Client) Region() string {
	return c.region
}

// HasTable reports whether tableName exists
func (c *Client) HasTable(ctx context.Context, tableName string) (bool, error) {
	var lastEvaluatedTableName *string

	for {
		output, err := c.db.ListTables(ctx, &dynamodb.ListTablesInput{
			ExclusiveStartTableName: lastEvaluatedTableName,
		})
		if err != nil {
			return false, fmt.Errorf("failed to list tables: %w", err)
		}

		for _, name := range output.TableNames {
			if name == tableName {
				return true, nil
			}
		}

		if output.LastEvaluatedTableName == nil {
			return false, nil
		}
		lastEvaluatedTableName = output.LastEvaluatedTableName
	}
}

// ScanStrings scans the whole table and collects the string values of one
// attribute in scan order. Items without a string value are skipped.
func (c *Client) ScanStrings(ctx context.Context, tableName, attribute string) ([]string, error) {
	var values []string
	var lastKey map[string]types.AttributeValue
	batchSize := int32(500)

	for {
		input := &dynamodb.ScanInput{
			TableName:                aws.String(tableName),
			Limit:                    aws.Int32(batchSize),
			ProjectionExpression:     aws.String("#attr"),
			ExpressionAttributeNames: map[string]string{"#attr": attribute},
		}
		if lastKey != nil {
			input.ExclusiveStartKey = lastKey
		}

		output, err := c.db.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}

		for _, item := range output.Items {
			values = append(values, stringValues(item[attribute])...)
		}

		lastKey = output.LastEvaluatedKey
		if len(lastKey) == 0 {
			break
		}
	}

	return values, nil
}

// stringValues extracts display strings from S and SS attributes
func stringValues(av types.AttributeValue) []string {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return []string{v.Value}
	case *types.AttributeValueMemberSS:
		return v.Value
	default:
		return nil
	}
}
