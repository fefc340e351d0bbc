package repository

import (
	"context"
	"fmt"
	"time"

	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimationsTableName = "estimations"
	estimationsProjectIDIndex   = "project_id-index"
	folioGuardPrefix            = "folio#"
)

type estimationItem struct {
	ID             string `dynamodbav:"id"`
	ProjectID      string `dynamodbav:"project_id"`
	Folio          string `dynamodbav:"folio"`
	ContractorName string `dynamodbav:"contractor_name,omitempty"`
	Amount         string `dynamodbav:"amount"`
	Status         string `dynamodbav:"status"`

	ResidentActive       bool `dynamodbav:"is_resident_active"`
	SuperintendentActive bool `dynamodbav:"is_superintendent_active"`
	LeaderActive         bool `dynamodbav:"is_leader_active"`

	ResidentApprovedAt       string `dynamodbav:"resident_approved_at,omitempty"`
	ResidentSignedBy         string `dynamodbav:"resident_signed_by,omitempty"`
	ResidentInherited        bool   `dynamodbav:"resident_inherited"`
	SuperintendentApprovedAt string `dynamodbav:"superintendent_approved_at,omitempty"`
	SuperintendentSignedBy   string `dynamodbav:"superintendent_signed_by,omitempty"`
	SuperintendentInherited  bool   `dynamodbav:"superintendent_inherited"`
	LeaderApprovedAt         string `dynamodbav:"leader_approved_at,omitempty"`
	LeaderSignedBy           string `dynamodbav:"leader_signed_by,omitempty"`
	LeaderInherited          bool   `dynamodbav:"leader_inherited"`

	ComprasApprovedAt  string `dynamodbav:"compras_approved_at,omitempty"`
	InvoiceUploadedAt  string `dynamodbav:"invoice_uploaded_at,omitempty"`
	FinanzasApprovedAt string `dynamodbav:"finanzas_approved_at,omitempty"`
	PaidAt             string `dynamodbav:"paid_at,omitempty"`

	InvoicePDFRef string `dynamodbav:"invoice_pdf_ref,omitempty"`
	InvoiceXMLRef string `dynamodbav:"invoice_xml_ref,omitempty"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// folioGuardItem reserves a folio within a project. It shares the estimations table and has no
// project_id, so it never shows up in the project index.
type folioGuardItem struct {
	ID           string `dynamodbav:"id"`
	EstimationID string `dynamodbav:"estimation_id"`
}

// EstimationDynamoRepository persists Estimation entities in DynamoDB.
//
// Table requirements:
//   - estimations: PK id (string); GSI project_id-index (PK: project_id)
//   - approval_history: PK estimation_id, SK sort_key
//
// Every status change is a TransactWriteItems call: the estimation Put is conditioned on the
// stored version and the history entry Put on its key being new.
type EstimationDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	historyTable string
}

var _ interfaces.IEstimationRepository = (*EstimationDynamoRepository)(nil)

func NewEstimationDynamoRepository(ddb DynamoAPI, tableName, historyTable string) *EstimationDynamoRepository {
	return &EstimationDynamoRepository{
		ddb:          ddb,
		tableName:    tableOrDefault(tableName, defaultEstimationsTableName),
		historyTable: tableOrDefault(historyTable, defaultHistoryTableName),
	}
}

func (r *EstimationDynamoRepository) Create(ctx context.Context, e entities.Estimation) (entities.Estimation, error) {
	av, err := attributevalue.MarshalMap(toEstimationItem(e))
	if err != nil {
		return entities.Estimation{}, err
	}
	guard, err := attributevalue.MarshalMap(folioGuardItem{ID: folioGuardKey(e.ProjectID, e.Folio), EstimationID: e.ID})
	if err != nil {
		return entities.Estimation{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     guard,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		if transactionConditionFailed(err, 0) || transactionConditionFailed(err, 1) {
			return entities.Estimation{}, interfaces.ErrAlreadyExists
		}
		return entities.Estimation{}, err
	}
	return e, nil
}

func (r *EstimationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimation{}, nil
	}

	var it estimationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimation{}, err
	}
	return fromEstimationItem(it), nil
}

func (r *EstimationDynamoRepository) GetByFolio(ctx context.Context, projectID, folio string) (entities.Estimation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: folioGuardKey(projectID, folio)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimation{}, nil
	}

	var guard folioGuardItem
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return entities.Estimation{}, err
	}
	return r.GetByID(ctx, guard.EstimationID)
}

func (r *EstimationDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimation, error) {
	var (
		items     []entities.Estimation
		startFrom map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(estimationsProjectIDIndex),
			KeyConditionExpression: aws.String("project_id = :pid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pid": &types.AttributeValueMemberS{Value: projectID},
			},
			ExclusiveStartKey: startFrom,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it estimationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromEstimationItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startFrom = out.LastEvaluatedKey
	}
	return items, nil
}

// Save writes e and entry in one transaction. It fails with ErrConcurrentModification when
// the stored version is not expectedVersion.
func (r *EstimationDynamoRepository) Save(ctx context.Context, e entities.Estimation, expectedVersion int64, entry entities.ApprovalHistoryEntry) (entities.Estimation, error) {
	av, err := attributevalue.MarshalMap(toEstimationItem(e))
	if err != nil {
		return entities.Estimation{}, err
	}
	hist, err := attributevalue.MarshalMap(toHistoryItem(entry))
	if err != nil {
		return entities.Estimation{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("#version = :expected"),
				ExpressionAttributeNames: map[string]string{
					"#version": "version",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":expected": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expectedVersion)},
				},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.historyTable),
				Item:                     hist,
				ConditionExpression:      aws.String("attribute_not_exists(#sk)"),
				ExpressionAttributeNames: map[string]string{"#sk": "sort_key"},
			}},
		},
	})
	if err != nil {
		if transactionConditionFailed(err, 0) {
			return entities.Estimation{}, interfaces.ErrConcurrentModification
		}
		return entities.Estimation{}, err
	}
	return e, nil
}

func (r *EstimationDynamoRepository) UpdateActivation(ctx context.Context, id string, activation entities.RoleActivation, expectedVersion int64) (entities.Estimation, error) {
	now := formatTime(time.Now())
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression: aws.String("SET #ra = :ra, #sa = :sa, #la = :la, #updated_at = :updated_at " +
			"ADD #version :one"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#version":    "version",
			"#ra":         "is_resident_active",
			"#sa":         "is_superintendent_active",
			"#la":         "is_leader_active",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expectedVersion)},
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":ra":         &types.AttributeValueMemberBOOL{Value: activation.ResidentActive},
			":sa":         &types.AttributeValueMemberBOOL{Value: activation.SuperintendentActive},
			":la":         &types.AttributeValueMemberBOOL{Value: activation.LeaderActive},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Estimation{}, interfaces.ErrConcurrentModification
		}
		return entities.Estimation{}, err
	}

	var it estimationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimation{}, err
	}
	return fromEstimationItem(it), nil
}

func folioGuardKey(projectID, folio string) string {
	return folioGuardPrefix + projectID + "#" + folio
}

func toEstimationItem(e entities.Estimation) estimationItem {
	return estimationItem{
		ID:             e.ID,
		ProjectID:      e.ProjectID,
		Folio:          e.Folio,
		ContractorName: e.ContractorName,
		Amount:         floatToString(e.Amount),
		Status:         string(e.Status),

		ResidentActive:       e.Activation.ResidentActive,
		SuperintendentActive: e.Activation.SuperintendentActive,
		LeaderActive:         e.Activation.LeaderActive,

		ResidentApprovedAt:       formatTimePtr(e.Resident.ApprovedAt),
		ResidentSignedBy:         derefString(e.Resident.SignedBy),
		ResidentInherited:        e.Resident.Inherited,
		SuperintendentApprovedAt: formatTimePtr(e.Superintendent.ApprovedAt),
		SuperintendentSignedBy:   derefString(e.Superintendent.SignedBy),
		SuperintendentInherited:  e.Superintendent.Inherited,
		LeaderApprovedAt:         formatTimePtr(e.Leader.ApprovedAt),
		LeaderSignedBy:           derefString(e.Leader.SignedBy),
		LeaderInherited:          e.Leader.Inherited,

		ComprasApprovedAt:  formatTimePtr(e.ComprasApprovedAt),
		InvoiceUploadedAt:  formatTimePtr(e.InvoiceUploadedAt),
		FinanzasApprovedAt: formatTimePtr(e.FinanzasApprovedAt),
		PaidAt:             formatTimePtr(e.PaidAt),

		InvoicePDFRef: e.Invoice.PDFRef,
		InvoiceXMLRef: e.Invoice.XMLRef,

		Version:   e.Version,
		CreatedAt: formatTime(e.CreatedAt),
		UpdatedAt: formatTime(e.UpdatedAt),
	}
}

func fromEstimationItem(it estimationItem) entities.Estimation {
	return entities.Estimation{
		ID:             it.ID,
		ProjectID:      it.ProjectID,
		Folio:          it.Folio,
		ContractorName: it.ContractorName,
		Amount:         parseFloat(it.Amount),
		Status:         entities.EstimationStatus(it.Status),
		Activation: entities.RoleActivation{
			ResidentActive:       it.ResidentActive,
			SuperintendentActive: it.SuperintendentActive,
			LeaderActive:         it.LeaderActive,
		},
		Resident: entities.Signature{
			ApprovedAt: parseTimePtr(it.ResidentApprovedAt),
			SignedBy:   stringPtrOrNil(it.ResidentSignedBy),
			Inherited:  it.ResidentInherited,
		},
		Superintendent: entities.Signature{
			ApprovedAt: parseTimePtr(it.SuperintendentApprovedAt),
			SignedBy:   stringPtrOrNil(it.SuperintendentSignedBy),
			Inherited:  it.SuperintendentInherited,
		},
		Leader: entities.Signature{
			ApprovedAt: parseTimePtr(it.LeaderApprovedAt),
			SignedBy:   stringPtrOrNil(it.LeaderSignedBy),
			Inherited:  it.LeaderInherited,
		},
		ComprasApprovedAt:  parseTimePtr(it.ComprasApprovedAt),
		InvoiceUploadedAt:  parseTimePtr(it.InvoiceUploadedAt),
		FinanzasApprovedAt: parseTimePtr(it.FinanzasApprovedAt),
		PaidAt:             parseTimePtr(it.PaidAt),
		Invoice:            entities.Invoice{PDFRef: it.InvoicePDFRef, XMLRef: it.InvoiceXMLRef},
		Version:            it.Version,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
