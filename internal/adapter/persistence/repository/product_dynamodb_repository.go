package repository

import (
	"context"
	"errors"

	"printfarm_ops/internal/domain/entities"
	"printfarm_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type usageItem struct {
	FilamentID string  `dynamodbav:"filament_id"`
	GramsUsed  float64 `dynamodbav:"grams_used"`
}

type plateItem struct {
	Name         string      `dynamodbav:"name"`
	Quantity     int         `dynamodbav:"quantity"`
	PrintTimeHrs float64     `dynamodbav:"print_time_hrs"`
	Usages       []usageItem `dynamodbav:"usages,omitempty"`
}

type productItem struct {
	ID                  string      `dynamodbav:"id"`
	SKU                 string      `dynamodbav:"sku"`
	Name                string      `dynamodbav:"name"`
	PrintTimeHrs        string      `dynamodbav:"print_time_hrs"`
	COP                 string      `dynamodbav:"cop"`
	AdditionalPartsCost string      `dynamodbav:"additional_parts_cost"`
	LicenseID           *string     `dynamodbav:"license_id,omitempty"`
	Usages              []usageItem `dynamodbav:"usages,omitempty"`
	Plates              []plateItem `dynamodbav:"plates,omitempty"`
	CreatedAt           string      `dynamodbav:"created_at"`
	UpdatedAt           string      `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
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
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	var items []productItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	products := make([]entities.Product, 0, len(items))
	for _, it := range items {
		products = append(products, fromProductItem(it))
	}
	return products, nil
}

func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
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
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toUsageItems(us []entities.FilamentUsage) []usageItem {
	if len(us) == 0 {
		return nil
	}
	out := make([]usageItem, 0, len(us))
	for _, u := range us {
		out = append(out, usageItem{FilamentID: u.FilamentID, GramsUsed: u.GramsUsed})
	}
	return out
}

func fromUsageItems(items []usageItem) []entities.FilamentUsage {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.FilamentUsage, 0, len(items))
	for _, it := range items {
		out = append(out, entities.FilamentUsage{FilamentID: it.FilamentID, GramsUsed: it.GramsUsed})
	}
	return out
}

func toProductItem(p entities.Product) productItem {
	it := productItem{
		ID:                  p.ID,
		SKU:                 p.SKU,
		Name:                p.Name,
		PrintTimeHrs:        floatToString(p.PrintTimeHrs),
		COP:                 floatToString(p.COP),
		AdditionalPartsCost: floatToString(p.AdditionalPartsCost),
		LicenseID:           p.LicenseID,
		Usages:              toUsageItems(p.Usages),
		CreatedAt:           timeToString(p.CreatedAt),
		UpdatedAt:           timeToString(p.UpdatedAt),
	}
	for _, plate := range p.Plates {
		it.Plates = append(it.Plates, plateItem{
			Name:         plate.Name,
			Quantity:     plate.Quantity,
			PrintTimeHrs: plate.PrintTimeHrs,
			Usages:       toUsageItems(plate.Usages),
		})
	}
	return it
}

func fromProductItem(it productItem) entities.Product {
	p := entities.Product{
		ID:                  it.ID,
		SKU:                 it.SKU,
		Name:                it.Name,
		PrintTimeHrs:        stringToFloat(it.PrintTimeHrs),
		COP:                 stringToFloat(it.COP),
		AdditionalPartsCost: stringToFloat(it.AdditionalPartsCost),
		LicenseID:           it.LicenseID,
		Usages:              fromUsageItems(it.Usages),
		CreatedAt:           stringToTime(it.CreatedAt),
		UpdatedAt:           stringToTime(it.UpdatedAt),
	}
	for _, plate := range it.Plates {
		p.Plates = append(p.Plates, entities.Plate{
			Name:         plate.Name,
			Quantity:     plate.Quantity,
			PrintTimeHrs: plate.PrintTimeHrs,
			Usages:       fromUsageItems(plate.Usages),
		})
	}
	return p
}
