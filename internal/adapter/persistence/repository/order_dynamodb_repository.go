package repository

import (
	"context"
	"errors"
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
	defaultOrdersTableName = "orders"
	ordersChargeIDIndex    = "charge_id-index"
)

type orderItem struct {
	ID              string `dynamodbav:"id"`
	CustomerName    string `dynamodbav:"customer_name"`
	CustomerEmail   string `dynamodbav:"customer_email"`
	CustomerCpfCnpj string `dynamodbav:"customer_cpf_cnpj"`
	CustomerPhone   string `dynamodbav:"customer_phone,omitempty"`
	ProductName     string `dynamodbav:"product_name"`
	Price           string `dynamodbav:"price"`
	PaymentMethod   string `dynamodbav:"payment_method"`
	ChargeID        string `dynamodbav:"charge_id,omitempty"`
	Status          string `dynamodbav:"status"`
	RawStatus       string `dynamodbav:"raw_status,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: charge_id-index (PK: charge_id)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByChargeID(ctx context.Context, chargeID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersChargeIDIndex),
		KeyConditionExpression: aws.String("charge_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: chargeID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) AttachCharge(ctx context.Context, orderID, chargeID string) (entities.Order, error) {
	return r.update(ctx, orderID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #charge_id = :charge_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":charge_id":  &types.AttributeValueMemberS{Value: chargeID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#charge_id":  "charge_id",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, orderID string, status entities.PaymentStatus, rawStatus string) (entities.Order, error) {
	return r.update(ctx, orderID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #raw_status = :raw_status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":raw_status": &types.AttributeValueMemberS{Value: rawStatus},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#raw_status": "raw_status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerCpfCnpj: o.CustomerCpfCnpj,
		CustomerPhone:   o.CustomerPhone,
		ProductName:     o.ProductName,
		Price:           floatToString(o.Price),
		PaymentMethod:   string(o.PaymentMethod),
		ChargeID:        o.ChargeID,
		Status:          string(o.Status),
		RawStatus:       o.RawStatus,
		CreatedAt:       o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Order{
		ID:              it.ID,
		CustomerName:    it.CustomerName,
		CustomerEmail:   it.CustomerEmail,
		CustomerCpfCnpj: it.CustomerCpfCnpj,
		CustomerPhone:   it.CustomerPhone,
		ProductName:     it.ProductName,
		Price:           price,
		PaymentMethod:   entities.PaymentMethod(it.PaymentMethod),
		ChargeID:        it.ChargeID,
		Status:          entities.NormalizeStatus(it.Status),
		RawStatus:       it.RawStatus,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
