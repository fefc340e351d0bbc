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
	defaultHistoryTableName = "approval_history"
	// Fixed width so that sort keys order chronologically.
	sortKeyLayout = "2006-01-02T15:04:05.000000000Z"
)

type historyItem struct {
	EstimationID string `dynamodbav:"estimation_id"`
	SortKey      string `dynamodbav:"sort_key"`
	ID           string `dynamodbav:"id"`
	Status       string `dynamodbav:"status"`
	Role         string `dynamodbav:"role"`
	UserID       string `dynamodbav:"user_id"`
	UserName     string `dynamodbav:"user_name"`
	Timestamp    string `dynamodbav:"timestamp"`
}

// ApprovalHistoryDynamoRepository reads the approval history written by
// EstimationDynamoRepository.Save.
//
// Table requirements:
//   - PK: estimation_id (string)
//   - SK: sort_key (string, fixed-width UTC timestamp + "#" + entry id)
type ApprovalHistoryDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IApprovalHistoryRepository = (*ApprovalHistoryDynamoRepository)(nil)

func NewApprovalHistoryDynamoRepository(ddb DynamoAPI, tableName string) *ApprovalHistoryDynamoRepository {
	return &ApprovalHistoryDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultHistoryTableName),
	}
}

func (r *ApprovalHistoryDynamoRepository) ListByEstimationID(ctx context.Context, estimationID string) ([]entities.ApprovalHistoryEntry, error) {
	var (
		entries   []entities.ApprovalHistoryEntry
		startFrom map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("estimation_id = :eid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":eid": &types.AttributeValueMemberS{Value: estimationID},
			},
			ScanIndexForward:  aws.Bool(true),
			ConsistentRead:    aws.Bool(true),
			ExclusiveStartKey: startFrom,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it historyItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			entries = append(entries, fromHistoryItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startFrom = out.LastEvaluatedKey
	}
	return entries, nil
}

func toHistoryItem(h entities.ApprovalHistoryEntry) historyItem {
	ts := formatTime(h.Timestamp)
	return historyItem{
		EstimationID: h.EstimationID,
		SortKey:      h.Timestamp.UTC().Format(sortKeyLayout) + "#" + h.ID,
		ID:           h.ID,
		Status:       string(h.Status),
		Role:         string(h.Role),
		UserID:       h.UserID,
		UserName:     h.UserName,
		Timestamp:    ts,
	}
}

func fromHistoryItem(it historyItem) entities.ApprovalHistoryEntry {
	return entities.ApprovalHistoryEntry{
		ID:           it.ID,
		EstimationID: it.EstimationID,
		Status:       entities.EstimationStatus(it.Status),
		Role:         entities.Role(it.Role),
		UserID:       it.UserID,
		UserName:     it.UserName,
		Timestamp:    parseTime(it.Timestamp),
	}
}
