package repository

import (
	"context"
	"fmt"

	"marblecraft/internal/domain/entities"
	"marblecraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServicesTableName = "services"
	defaultDesignsTableName  = "designs"
)

// DynamoScanAPI is the part of *dynamodb.Client used by the catalog source.
type DynamoScanAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// serviceItem mirrors entities.Service; the catalog tables carry an explicit
// position so declaration order survives the unordered scan.
type serviceItem struct {
	entities.Service
	Position int `dynamodbav:"position"`
}

type designItem struct {
	entities.MarbleDesign
	Position int `dynamodbav:"position"`
}

// CatalogDynamoSource reads the catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - position (number): catalog declaration order
//
// The tables are scanned once at start-up; the result is frozen into a
// catalog.Store, so nothing is read from DynamoDB while serving quotes.
type CatalogDynamoSource struct {
	ddb           DynamoScanAPI
	servicesTable string
	designsTable  string
}

var _ interfaces.ICatalogSource = (*CatalogDynamoSource)(nil)

func NewCatalogDynamoSource(ddb DynamoScanAPI, servicesTable, designsTable string) *CatalogDynamoSource {
	if servicesTable == "" {
		servicesTable = defaultServicesTableName
	}
	if designsTable == "" {
		designsTable = defaultDesignsTableName
	}
	return &CatalogDynamoSource{ddb: ddb, servicesTable: servicesTable, designsTable: designsTable}
}

func (r *CatalogDynamoSource) LoadServices(ctx context.Context) ([]entities.Service, error) {
	var items []serviceItem
	if err := r.scanAll(ctx, r.servicesTable, func(page []map[string]types.AttributeValue) error {
		var batch []serviceItem
		if err := attributevalue.UnmarshalListOfMaps(page, &batch); err != nil {
			return err
		}
		items = append(items, batch...)
		return nil
	}); err != nil {
		return nil, err
	}

	sortByPosition(items, func(it serviceItem) int { return it.Position })
	out := make([]entities.Service, 0, len(items))
	for _, it := range items {
		out = append(out, it.Service)
	}
	return out, nil
}

func (r *CatalogDynamoSource) LoadDesigns(ctx context.Context) ([]entities.MarbleDesign, error) {
	var items []designItem
	if err := r.scanAll(ctx, r.designsTable, func(page []map[string]types.AttributeValue) error {
		var batch []designItem
		if err := attributevalue.UnmarshalListOfMaps(page, &batch); err != nil {
			return err
		}
		items = append(items, batch...)
		return nil
	}); err != nil {
		return nil, err
	}

	sortByPosition(items, func(it designItem) int { return it.Position })
	out := make([]entities.MarbleDesign, 0, len(items))
	for _, it := range items {
		out = append(out, it.MarbleDesign)
	}
	return out, nil
}

func (r *CatalogDynamoSource) scanAll(
	ctx context.Context,
	table string,
	consume func(page []map[string]types.AttributeValue) error,
) error {
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
			ConsistentRead:    aws.Bool(true),
		})
		if err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		if err := consume(out.Items); err != nil {
			return fmt.Errorf("decode %s: %w", table, err)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return nil
		}
		startKey = out.LastEvaluatedKey
	}
}
