/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/appdata/container"
	apperrors "github.com/suparena/appdata/errors"
)

// defaultOpTimeout bounds every container operation; the Container interface
// is synchronous, so each call carries its own deadline internally.
const defaultOpTimeout = 15 * time.Second

// Container implements container.Container by keeping application settings
// in a shared DynamoDB table. Each top-level settings key is one item; the
// scalar/composite kind is stored explicitly so the discrimination survives
// the wire format.
type Container struct {
	client    *sdk.Client
	tableName string
	namespace string
	opTimeout time.Duration
}

// settingsItem is the DynamoDB shape of one settings entry. Composite groups
// are stored as a native map attribute, scalars as a string attribute.
type settingsItem struct {
	PK        string            `dynamodbav:"PK"`
	Kind      string            `dynamodbav:"Kind"`
	Scalar    string            `dynamodbav:"Scalar,omitempty"`
	Composite map[string]string `dynamodbav:"Composite,omitempty"`
}

const (
	kindScalar    = "scalar"
	kindComposite = "composite"
)

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// New constructs a settings container over a DynamoDB table. The namespace
// isolates one application's settings inside a shared table; items are keyed
// as APPDATA#<namespace>#<key>.
func New(awsAccessKey, awsSecretKey, awsRegion, tableName, namespace string) (*Container, error) {
	if tableName == "" {
		return nil, apperrors.NewArgumentError("tableName", "must not be empty")
	}
	if namespace == "" {
		return nil, apperrors.NewArgumentError("namespace", "must not be empty")
	}
	client, err := NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewWithClient(client, tableName, namespace)
}

// NewWithClient constructs a settings container over an existing client,
// which lets callers share a client or point it at a local endpoint.
func NewWithClient(client *sdk.Client, tableName, namespace string) (*Container, error) {
	if client == nil {
		return nil, apperrors.NewArgumentError("client", "must not be nil")
	}
	if tableName == "" {
		return nil, apperrors.NewArgumentError("tableName", "must not be empty")
	}
	if namespace == "" {
		return nil, apperrors.NewArgumentError("namespace", "must not be empty")
	}
	return &Container{
		client:    client,
		tableName: tableName,
		namespace: namespace,
		opTimeout: defaultOpTimeout,
	}, nil
}

// WithTimeout overrides the per-operation deadline.
func (c *Container) WithTimeout(d time.Duration) *Container {
	c.opTimeout = d
	return c
}

func (c *Container) pk(key string) string {
	return fmt.Sprintf("APPDATA#%s#%s", c.namespace, key)
}

func (c *Container) prefix() string {
	return fmt.Sprintf("APPDATA#%s#", c.namespace)
}

func (c *Container) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.opTimeout)
}

func (c *Container) Get(key string) (container.Value, bool, error) {
	ctx, cancel := c.opContext()
	defer cancel()

	out, err := c.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &c.tableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: c.pk(key)},
		},
	})
	if err != nil {
		return container.Value{}, false, apperrors.NewCollaboratorError("ddb.Get", err)
	}
	if out.Item == nil {
		return container.Value{}, false, nil
	}

	var item settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return container.Value{}, false, apperrors.NewCollaboratorError("ddb.Get",
			fmt.Errorf("failed to unmarshal item: %w", err))
	}
	return itemToValue(item), true, nil
}

func (c *Container) Set(key string, value container.Value) error {
	ctx, cancel := c.opContext()
	defer cancel()

	item := settingsItem{PK: c.pk(key)}
	if value.IsComposite() {
		item.Kind = kindComposite
		item.Composite = value.Composite()
	} else {
		item.Kind = kindScalar
		item.Scalar = value.Scalar()
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return apperrors.NewCollaboratorError("ddb.Set",
			fmt.Errorf("failed to marshal item: %w", err))
	}
	if _, err := c.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &c.tableName,
		Item:      av,
	}); err != nil {
		return apperrors.NewCollaboratorError("ddb.Set", err)
	}
	return nil
}

func (c *Container) Remove(key string) (bool, error) {
	ctx, cancel := c.opContext()
	defer cancel()

	out, err := c.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &c.tableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: c.pk(key)},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, apperrors.NewCollaboratorError("ddb.Remove", err)
	}
	return len(out.Attributes) > 0, nil
}

func (c *Container) ContainsKey(key string) (bool, error) {
	ctx, cancel := c.opContext()
	defer cancel()

	out, err := c.client.GetItem(ctx, &sdk.GetItemInput{
		TableName:            &c.tableName,
		Key:                  map[string]types.AttributeValue{"PK": &types.AttributeValueMemberS{Value: c.pk(key)}},
		ProjectionExpression: aws.String("PK"),
	})
	if err != nil {
		return false, apperrors.NewCollaboratorError("ddb.ContainsKey", err)
	}
	return out.Item != nil, nil
}

func (c *Container) Keys() ([]string, error) {
	pks, err := c.scanKeys("ddb.Keys")
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(pks))
	for _, pk := range pks {
		keys = append(keys, strings.TrimPrefix(pk, c.prefix()))
	}
	return keys, nil
}

func (c *Container) Clear() error {
	pks, err := c.scanKeys("ddb.Clear")
	if err != nil {
		return err
	}

	ctx, cancel := c.opContext()
	defer cancel()
	for _, pk := range pks {
		if _, err := c.client.DeleteItem(ctx, &sdk.DeleteItemInput{
			TableName: &c.tableName,
			Key: map[string]types.AttributeValue{
				"PK": &types.AttributeValueMemberS{Value: pk},
			},
		}); err != nil {
			return apperrors.NewCollaboratorError("ddb.Clear", err)
		}
	}
	return nil
}

// scanKeys pages through the table collecting the partition keys of every
// item in this container's namespace.
func (c *Container) scanKeys(op string) ([]string, error) {
	ctx, cancel := c.opContext()
	defer cancel()

	var (
		pks      []string
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := c.client.Scan(ctx, &sdk.ScanInput{
			TableName:            &c.tableName,
			FilterExpression:     aws.String("begins_with(PK, :prefix)"),
			ProjectionExpression: aws.String("PK"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":prefix": &types.AttributeValueMemberS{Value: c.prefix()},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, apperrors.NewCollaboratorError(op, err)
		}
		for _, item := range out.Items {
			if pk, ok := item["PK"].(*types.AttributeValueMemberS); ok {
				pks = append(pks, pk.Value)
			}
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return pks, nil
}

func itemToValue(item settingsItem) container.Value {
	if item.Kind == kindComposite {
		return container.CompositeValue(item.Composite)
	}
	return container.ScalarValue(item.Scalar)
}
