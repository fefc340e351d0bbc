package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	appconfig "estimaciones_obra/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableCreator is the subset of the DynamoDB client used to bootstrap tables.
type TableCreator interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var _ TableCreator = (*dynamodb.Client)(nil)

// TableDefinitions returns the CreateTable inputs for every table the service uses.
func TableDefinitions(cfg appconfig.Config) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		hashTable(cfg.EstimationsTable, "id", &secondaryIndex{name: "project_id-index", key: "project_id"}),
		{
			TableName:   aws.String(cfg.ApprovalHistoryTable),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("estimation_id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("sort_key"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("estimation_id"), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String("sort_key"), KeyType: types.KeyTypeRange},
			},
		},
		hashTable(cfg.ProjectsTable, "id", nil),
		hashTable(cfg.PaymentsTable, "id", &secondaryIndex{name: "estimation_id-index", key: "estimation_id"}),
	}
}

// EnsureTables creates missing tables. Tables that already exist are left untouched.
func EnsureTables(ctx context.Context, ddb TableCreator, cfg appconfig.Config) error {
	for _, def := range TableDefinitions(cfg) {
		name := aws.ToString(def.TableName)
		_, err := ddb.CreateTable(ctx, def)
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				log.Printf("[database][dynamodb] table exists table=%s", name)
				continue
			}
			return fmt.Errorf("create table %s: %w", name, err)
		}
		log.Printf("[database][dynamodb] table created table=%s", name)
	}
	return nil
}

type secondaryIndex struct {
	name string
	key  string
}

func hashTable(name, key string, gsi *secondaryIndex) *dynamodb.CreateTableInput {
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
		},
	}
	if gsi != nil {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(gsi.key), AttributeType: types.ScalarAttributeTypeS,
		})
		in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
			IndexName: aws.String(gsi.name),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(gsi.key), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}}
	}
	return in
}
