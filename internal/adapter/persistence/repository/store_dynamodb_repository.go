package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"storeledger/internal/domain/entities"
	"storeledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStoresTableName = "stores"

type storeItem struct {
	ID               string `dynamodbav:"id"`
	Name             string `dynamodbav:"name"`
	FeeRate          string `dynamodbav:"fee_rate"`
	AvailableBalance string `dynamodbav:"available_balance"`
	BlockedBalance   string `dynamodbav:"blocked_balance"`
	LastPayoutAt     string `dynamodbav:"last_payout_at,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// StoreDynamoRepository persists Store entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Balance fields are stored as decimal strings so the persisted state
// round-trips without float formatting drift.

type StoreDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStoreRepository = (*StoreDynamoRepository)(nil)

func NewStoreDynamoRepository(ddb *dynamodb.Client) *StoreDynamoRepository {
	return &StoreDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STORES_TABLE", defaultStoresTableName),
	}
}

func (r *StoreDynamoRepository) Create(ctx context.Context, s entities.Store) (entities.Store, error) {
	it := toStoreItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Store{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Store{}, err
	}
	return s, nil
}

func (r *StoreDynamoRepository) GetByID(ctx context.Context, id string) (entities.Store, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Store{}, err
	}
	if len(out.Item) == 0 {
		return entities.Store{}, nil
	}

	var it storeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Store{}, err
	}
	return fromStoreItem(it), nil
}

func (r *StoreDynamoRepository) List(ctx context.Context) ([]entities.Store, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Store, 0, len(out.Items))
	for _, raw := range out.Items {
		var it storeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromStoreItem(it))
	}
	return items, nil
}

// Update replaces the stored record wholesale. Returns the zero value when
// the store does not exist.
func (r *StoreDynamoRepository) Update(ctx context.Context, s entities.Store) (entities.Store, error) {
	it := toStoreItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Store{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Store{}, nil
		}
		return entities.Store{}, err
	}
	return s, nil
}

func toStoreItem(s entities.Store) storeItem {
	it := storeItem{
		ID:               s.ID,
		Name:             s.Name,
		FeeRate:          floatToString(s.FeeRate),
		AvailableBalance: floatToString(s.AvailableBalance),
		BlockedBalance:   floatToString(s.BlockedBalance),
		CreatedAt:        s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.LastPayoutAt != nil {
		it.LastPayoutAt = s.LastPayoutAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromStoreItem(it storeItem) entities.Store {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	feeRate, _ := strconv.ParseFloat(it.FeeRate, 64)
	available, _ := strconv.ParseFloat(it.AvailableBalance, 64)
	blocked, _ := strconv.ParseFloat(it.BlockedBalance, 64)

	s := entities.Store{
		ID:               it.ID,
		Name:             it.Name,
		FeeRate:          feeRate,
		AvailableBalance: available,
		BlockedBalance:   blocked,
		CreatedAt:        createdAt,
	}
	if it.LastPayoutAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.LastPayoutAt); err == nil {
			s.LastPayoutAt = &t
		}
	}
	return s
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
