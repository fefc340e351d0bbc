package repository

import (
	"context"
	"time"

	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProjectsTableName = "projects"

type projectItem struct {
	ID                   string `dynamodbav:"id"`
	Name                 string `dynamodbav:"name"`
	ResidentActive       bool   `dynamodbav:"is_resident_active"`
	SuperintendentActive bool   `dynamodbav:"is_superintendent_active"`
	LeaderActive         bool   `dynamodbav:"is_leader_active"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ProjectDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb DynamoAPI, tableName string) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
			return entities.Project{}, interfaces.ErrAlreadyExists
		}
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

// UpdateDefaults returns a zero Project when id does not exist.
func (r *ProjectDynamoRepository) UpdateDefaults(ctx context.Context, id string, activation entities.RoleActivation) (entities.Project, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #ra = :ra, #sa = :sa, #la = :la, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#ra":         "is_resident_active",
			"#sa":         "is_superintendent_active",
			"#la":         "is_leader_active",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ra":         &types.AttributeValueMemberBOOL{Value: activation.ResidentActive},
			":sa":         &types.AttributeValueMemberBOOL{Value: activation.SuperintendentActive},
			":la":         &types.AttributeValueMemberBOOL{Value: activation.LeaderActive},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:                   p.ID,
		Name:                 p.Name,
		ResidentActive:       p.DefaultActivation.ResidentActive,
		SuperintendentActive: p.DefaultActivation.SuperintendentActive,
		LeaderActive:         p.DefaultActivation.LeaderActive,
		CreatedAt:            formatTime(p.CreatedAt),
		UpdatedAt:            formatTime(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:   it.ID,
		Name: it.Name,
		DefaultActivation: entities.RoleActivation{
			ResidentActive:       it.ResidentActive,
			SuperintendentActive: it.SuperintendentActive,
			LeaderActive:         it.LeaderActive,
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
