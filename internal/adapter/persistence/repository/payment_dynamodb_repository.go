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

const (
	defaultPaymentsTableName = "payments"
	paymentsStoreIDIndex     = "store_id-index"
)

type paymentItem struct {
	ID               string `dynamodbav:"id"`
	StoreID          string `dynamodbav:"store_id"`
	Amount           string `dynamodbav:"amount"`
	FixedFee         string `dynamodbav:"fixed_fee"`
	SystemFee        string `dynamodbav:"system_fee"`
	StoreFee         string `dynamodbav:"store_fee"`
	AmountAfterFee   string `dynamodbav:"amount_after_fee"`
	BlockedAmount    string `dynamodbav:"blocked_amount"`
	AvailableBalance string `dynamodbav:"available_balance"`
	Status           string `dynamodbav:"status"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: store_id-index (PK: store_id)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByIDAndStoreID(ctx context.Context, paymentID, storeID string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: paymentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	if it.StoreID != storeID {
		return entities.Payment{}, nil
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByStoreID(ctx context.Context, storeID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsStoreIDIndex),
		KeyConditionExpression: aws.String("store_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: storeID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

// Update replaces the stored record wholesale. Returns the zero value when
// the payment does not exist.
func (r *PaymentDynamoRepository) Update(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
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
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:               p.ID,
		StoreID:          p.StoreID,
		Amount:           floatToString(p.Amount),
		FixedFee:         floatToString(p.FeeAmounts.Fixed),
		SystemFee:        floatToString(p.FeeAmounts.System),
		StoreFee:         floatToString(p.FeeAmounts.Store),
		AmountAfterFee:   floatToString(p.AmountAfterFee),
		BlockedAmount:    floatToString(p.BlockedAmount),
		AvailableBalance: floatToString(p.AvailableBalance),
		Status:           string(p.Status),
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	fixedFee, _ := strconv.ParseFloat(it.FixedFee, 64)
	systemFee, _ := strconv.ParseFloat(it.SystemFee, 64)
	storeFee, _ := strconv.ParseFloat(it.StoreFee, 64)
	amountAfterFee, _ := strconv.ParseFloat(it.AmountAfterFee, 64)
	blockedAmount, _ := strconv.ParseFloat(it.BlockedAmount, 64)
	available, _ := strconv.ParseFloat(it.AvailableBalance, 64)

	return entities.Payment{
		ID:      it.ID,
		StoreID: it.StoreID,
		Amount:  amount,
		FeeAmounts: entities.FeeAmounts{
			Fixed:  fixedFee,
			System: systemFee,
			Store:  storeFee,
		},
		AmountAfterFee:   amountAfterFee,
		BlockedAmount:    blockedAmount,
		AvailableBalance: available,
		Status:           entities.PaymentStatus(it.Status),
		CreatedAt:        createdAt,
	}
}
