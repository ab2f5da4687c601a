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

const defaultPrinterTypesTableName = "printer_types"

type printerTypeItem struct {
	ID                string `dynamodbav:"id"`
	Brand             string `dynamodbav:"brand"`
	Model             string `dynamodbav:"model"`
	ExpectedLifeHours string `dynamodbav:"expected_life_hours"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// PrinterTypeDynamoRepository persists PrinterType entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PrinterTypeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPrinterTypeRepository = (*PrinterTypeDynamoRepository)(nil)

func NewPrinterTypeDynamoRepository(ddb *dynamodb.Client) *PrinterTypeDynamoRepository {
	return &PrinterTypeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRINTER_TYPES_TABLE", defaultPrinterTypesTableName),
	}
}

func (r *PrinterTypeDynamoRepository) Create(ctx context.Context, pt entities.PrinterType) (entities.PrinterType, error) {
	av, err := attributevalue.MarshalMap(toPrinterTypeItem(pt))
	if err != nil {
		return entities.PrinterType{}, err
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
		return entities.PrinterType{}, err
	}
	return pt, nil
}

func (r *PrinterTypeDynamoRepository) GetByID(ctx context.Context, id string) (entities.PrinterType, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PrinterType{}, err
	}
	if len(out.Item) == 0 {
		return entities.PrinterType{}, nil
	}

	var it printerTypeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PrinterType{}, err
	}
	return fromPrinterTypeItem(it), nil
}

func (r *PrinterTypeDynamoRepository) List(ctx context.Context) ([]entities.PrinterType, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	var items []printerTypeItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	pts := make([]entities.PrinterType, 0, len(items))
	for _, it := range items {
		pts = append(pts, fromPrinterTypeItem(it))
	}
	return pts, nil
}

func (r *PrinterTypeDynamoRepository) Update(ctx context.Context, pt entities.PrinterType) (entities.PrinterType, error) {
	av, err := attributevalue.MarshalMap(toPrinterTypeItem(pt))
	if err != nil {
		return entities.PrinterType{}, err
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
			return entities.PrinterType{}, nil
		}
		return entities.PrinterType{}, err
	}
	return pt, nil
}

func (r *PrinterTypeDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPrinterTypeItem(pt entities.PrinterType) printerTypeItem {
	return printerTypeItem{
		ID:                pt.ID,
		Brand:             pt.Brand,
		Model:             pt.Model,
		ExpectedLifeHours: floatToString(pt.ExpectedLifeHours),
		CreatedAt:         timeToString(pt.CreatedAt),
		UpdatedAt:         timeToString(pt.UpdatedAt),
	}
}

func fromPrinterTypeItem(it printerTypeItem) entities.PrinterType {
	return entities.PrinterType{
		ID:                it.ID,
		Brand:             it.Brand,
		Model:             it.Model,
		ExpectedLifeHours: stringToFloat(it.ExpectedLifeHours),
		CreatedAt:         stringToTime(it.CreatedAt),
		UpdatedAt:         stringToTime(it.UpdatedAt),
	}
}
