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

const defaultPrintersTableName = "printers"

type printerItem struct {
	ID               string `dynamodbav:"id"`
	PrinterTypeID    string `dynamodbav:"printer_type_id"`
	Name             string `dynamodbav:"name"`
	PurchasePriceEUR string `dynamodbav:"purchase_price_eur"`
	Status           string `dynamodbav:"status"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// PrinterDynamoRepository persists Printer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// ListByTypeID scans with a filter on printer_type_id. Fleets are small
// (single/double digits per type), so a scan is fine and we avoid imposing a
// GSI on local DynamoDB setups.

type PrinterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPrinterRepository = (*PrinterDynamoRepository)(nil)

func NewPrinterDynamoRepository(ddb *dynamodb.Client) *PrinterDynamoRepository {
	return &PrinterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRINTERS_TABLE", defaultPrintersTableName),
	}
}

func (r *PrinterDynamoRepository) Create(ctx context.Context, p entities.Printer) (entities.Printer, error) {
	av, err := attributevalue.MarshalMap(toPrinterItem(p))
	if err != nil {
		return entities.Printer{}, err
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
		return entities.Printer{}, err
	}
	return p, nil
}

func (r *PrinterDynamoRepository) GetByID(ctx context.Context, id string) (entities.Printer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Printer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Printer{}, nil
	}

	var it printerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Printer{}, err
	}
	return fromPrinterItem(it), nil
}

func (r *PrinterDynamoRepository) List(ctx context.Context) ([]entities.Printer, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPrinters(out.Items)
}

func (r *PrinterDynamoRepository) ListByTypeID(ctx context.Context, printerTypeID string) ([]entities.Printer, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#ptid = :ptid"),
		ExpressionAttributeNames: map[string]string{
			"#ptid": "printer_type_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ptid": &types.AttributeValueMemberS{Value: printerTypeID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPrinters(out.Items)
}

func (r *PrinterDynamoRepository) Update(ctx context.Context, p entities.Printer) (entities.Printer, error) {
	av, err := attributevalue.MarshalMap(toPrinterItem(p))
	if err != nil {
		return entities.Printer{}, err
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
			return entities.Printer{}, nil
		}
		return entities.Printer{}, err
	}
	return p, nil
}

func (r *PrinterDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func unmarshalPrinters(avs []map[string]types.AttributeValue) ([]entities.Printer, error) {
	var items []printerItem
	if err := attributevalue.UnmarshalListOfMaps(avs, &items); err != nil {
		return nil, err
	}
	printers := make([]entities.Printer, 0, len(items))
	for _, it := range items {
		printers = append(printers, fromPrinterItem(it))
	}
	return printers, nil
}

func toPrinterItem(p entities.Printer) printerItem {
	return printerItem{
		ID:               p.ID,
		PrinterTypeID:    p.PrinterTypeID,
		Name:             p.Name,
		PurchasePriceEUR: floatToString(p.PurchasePriceEUR),
		Status:           string(p.Status),
		CreatedAt:        timeToString(p.CreatedAt),
		UpdatedAt:        timeToString(p.UpdatedAt),
	}
}

func fromPrinterItem(it printerItem) entities.Printer {
	return entities.Printer{
		ID:               it.ID,
		PrinterTypeID:    it.PrinterTypeID,
		Name:             it.Name,
		PurchasePriceEUR: stringToFloat(it.PurchasePriceEUR),
		Status:           entities.PrinterStatus(it.Status),
		CreatedAt:        stringToTime(it.CreatedAt),
		UpdatedAt:        stringToTime(it.UpdatedAt),
	}
}
