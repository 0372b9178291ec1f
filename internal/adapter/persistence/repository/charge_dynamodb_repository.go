package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/andressagonsalvespereira/0504MINE/internal/domain/entities"
	"github.com/andressagonsalvespereira/0504MINE/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultChargesTableName = "charges"
	chargesOrderIDIndex     = "order_id-index"
	chargesIdempotencyIndex = "idempotency_key-index"
)

type chargeItem struct {
	ID             string `dynamodbav:"id"`
	OrderID        string `dynamodbav:"order_id,omitempty"`
	IdempotencyKey string `dynamodbav:"idempotency_key"`
	Amount         string `dynamodbav:"amount"`
	Method         string `dynamodbav:"payment_method"`
	Status         string `dynamodbav:"status"`
	RawStatus      string `dynamodbav:"raw_status,omitempty"`
	QRCode         string `dynamodbav:"qr_code"`
	QRCodeImage    string `dynamodbav:"qr_code_image,omitempty"`
	ExpirationDate string `dynamodbav:"expiration_date,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// ChargeDynamoRepository persists Charge entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//   - GSI: idempotency_key-index (PK: idempotency_key)

type ChargeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChargeRepository = (*ChargeDynamoRepository)(nil)

func NewChargeDynamoRepository(ddb *dynamodb.Client) *ChargeDynamoRepository {
	return &ChargeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHARGES_TABLE", defaultChargesTableName),
	}
}

func (r *ChargeDynamoRepository) Create(ctx context.Context, c entities.Charge) (entities.Charge, error) {
	it := toChargeItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Charge{}, err
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
		return entities.Charge{}, err
	}
	return c, nil
}

func (r *ChargeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Charge, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Charge{}, err
	}
	if len(out.Item) == 0 {
		return entities.Charge{}, nil
	}

	var it chargeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Charge{}, err
	}
	return fromChargeItem(it), nil
}

func (r *ChargeDynamoRepository) GetByIdempotencyKey(ctx context.Context, key string) (entities.Charge, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(chargesIdempotencyIndex),
		KeyConditionExpression: aws.String("idempotency_key = :key"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":key": &types.AttributeValueMemberS{Value: key},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Charge{}, err
	}
	if len(out.Items) == 0 {
		return entities.Charge{}, nil
	}

	var it chargeItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Charge{}, err
	}
	return fromChargeItem(it), nil
}

func (r *ChargeDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Charge, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(chargesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Charge, 0, len(out.Items))
	for _, raw := range out.Items {
		var it chargeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromChargeItem(it))
	}
	return items, nil
}

func toChargeItem(c entities.Charge) chargeItem {
	return chargeItem{
		ID:             c.ID,
		OrderID:        c.OrderID,
		IdempotencyKey: c.IdempotencyKey,
		Amount:         floatToString(c.Amount),
		Method:         string(c.Method),
		Status:         string(c.Status),
		RawStatus:      c.RawStatus,
		QRCode:         c.QRCode,
		QRCodeImage:    c.QRCodeImage,
		ExpirationDate: c.ExpirationDate,
		CreatedAt:      c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromChargeItem(it chargeItem) entities.Charge {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Charge{
		ID:             it.ID,
		OrderID:        it.OrderID,
		IdempotencyKey: it.IdempotencyKey,
		Amount:         amount,
		Method:         entities.PaymentMethod(it.Method),
		Status:         entities.NormalizeStatus(it.Status),
		RawStatus:      it.RawStatus,
		QRCode:         it.QRCode,
		QRCodeImage:    it.QRCodeImage,
		ExpirationDate: it.ExpirationDate,
		CreatedAt:      createdAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
