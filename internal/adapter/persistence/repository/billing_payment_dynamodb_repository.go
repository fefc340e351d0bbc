package repository

import (
	"context"

	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName  = "payments"
	paymentsEstimationIDIndex = "estimation_id-index"
)

type billingPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	EstimationID string                 `dynamodbav:"estimation_id"`
	Amount       string                 `dynamodbav:"amount"`
	PaidBy       string                 `dynamodbav:"paid_by,omitempty"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// BillingPaymentDynamoRepository persists BillingPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimation_id-index (PK: estimation_id)
type BillingPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentDynamoRepository)(nil)

func NewBillingPaymentDynamoRepository(ddb DynamoAPI, tableName string) *BillingPaymentDynamoRepository {
	return &BillingPaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultPaymentsTableName),
	}
}

func (r *BillingPaymentDynamoRepository) Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	it := toBillingPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BillingPayment{}, err
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
		if isConditionalCheckFailed(err) {
			return entities.BillingPayment{}, interfaces.ErrAlreadyExists
		}
		return entities.BillingPayment{}, err
	}
	return p, nil
}

func (r *BillingPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingPayment{}, nil
	}

	var it billingPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingPayment{}, err
	}
	return fromBillingPaymentItem(it), nil
}

func (r *BillingPaymentDynamoRepository) ListByEstimationID(ctx context.Context, estimationID string) ([]entities.BillingPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsEstimationIDIndex),
		KeyConditionExpression: aws.String("estimation_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimationID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.BillingPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it billingPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBillingPaymentItem(it))
	}
	return items, nil
}

func toBillingPaymentItem(p entities.BillingPayment) billingPaymentItem {
	return billingPaymentItem{
		ID:           p.ID,
		EstimationID: p.EstimationID,
		Amount:       floatToString(p.Amount),
		PaidBy:       p.PaidBy,
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromBillingPaymentItem(it billingPaymentItem) entities.BillingPayment {
	return entities.BillingPayment{
		ID:           it.ID,
		EstimationID: it.EstimationID,
		Amount:       parseFloat(it.Amount),
		PaidBy:       it.PaidBy,
		Date:         parseTime(it.Date),
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
