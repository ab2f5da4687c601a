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

const defaultPrintJobsTableName = "print_jobs"

type jobProductItem struct {
	ProductID string `dynamodbav:"product_id"`
	ItemsQty  int    `dynamodbav:"items_qty"`
}

type printJobItem struct {
	ID                string           `dynamodbav:"id"`
	Products          []jobProductItem `dynamodbav:"products"`
	PrinterTypeID     string           `dynamodbav:"printer_type_id"`
	PackagingCostEUR  string           `dynamodbav:"packaging_cost_eur"`
	CalculatedCOGSEUR string           `dynamodbav:"calculated_cogs_eur"`
	TotalPrintTimeHrs string           `dynamodbav:"total_print_time_hrs"`
	Status            string           `dynamodbav:"status"`
	CreatedAt         string           `dynamodbav:"created_at"`
	UpdatedAt         string           `dynamodbav:"updated_at"`
}

// PrintJobDynamoRepository persists PrintJob entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PrintJobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPrintJobRepository = (*PrintJobDynamoRepository)(nil)

func NewPrintJobDynamoRepository(ddb *dynamodb.Client) *PrintJobDynamoRepository {
	return &PrintJobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRINT_JOBS_TABLE", defaultPrintJobsTableName),
	}
}

func (r *PrintJobDynamoRepository) Create(ctx context.Context, j entities.PrintJob) (entities.PrintJob, error) {
	av, err := attributevalue.MarshalMap(toPrintJobItem(j))
	if err != nil {
		return entities.PrintJob{}, err
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
		return entities.PrintJob{}, err
	}
	return j, nil
}

func (r *PrintJobDynamoRepository) GetByID(ctx context.Context, id string) (entities.PrintJob, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PrintJob{}, err
	}
	if len(out.Item) == 0 {
		return entities.PrintJob{}, nil
	}

	var it printJobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PrintJob{}, err
	}
	return fromPrintJobItem(it), nil
}

func (r *PrintJobDynamoRepository) List(ctx context.Context) ([]entities.PrintJob, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	var items []printJobItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	jobs := make([]entities.PrintJob, 0, len(items))
	for _, it := range items {
		jobs = append(jobs, fromPrintJobItem(it))
	}
	return jobs, nil
}

func (r *PrintJobDynamoRepository) Update(ctx context.Context, j entities.PrintJob) (entities.PrintJob, error) {
	av, err := attributevalue.MarshalMap(toPrintJobItem(j))
	if err != nil {
		return entities.PrintJob{}, err
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
			return entities.PrintJob{}, nil
		}
		return entities.PrintJob{}, err
	}
	return j, nil
}

func (r *PrintJobDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPrintJobItem(j entities.PrintJob) printJobItem {
	it := printJobItem{
		ID:                j.ID,
		PrinterTypeID:     j.PrinterTypeID,
		PackagingCostEUR:  floatToString(j.PackagingCostEUR),
		CalculatedCOGSEUR: floatToString(j.CalculatedCOGSEUR),
		TotalPrintTimeHrs: floatToString(j.TotalPrintTimeHrs),
		Status:            string(j.Status),
		CreatedAt:         timeToString(j.CreatedAt),
		UpdatedAt:         timeToString(j.UpdatedAt),
	}
	for _, p := range j.Products {
		it.Products = append(it.Products, jobProductItem{ProductID: p.ProductID, ItemsQty: p.ItemsQty})
	}
	return it
}

func fromPrintJobItem(it printJobItem) entities.PrintJob {
	j := entities.PrintJob{
		ID:                it.ID,
		PrinterTypeID:     it.PrinterTypeID,
		PackagingCostEUR:  stringToFloat(it.PackagingCostEUR),
		CalculatedCOGSEUR: stringToFloat(it.CalculatedCOGSEUR),
		TotalPrintTimeHrs: stringToFloat(it.TotalPrintTimeHrs),
		Status:            entities.PrintJobStatus(it.Status),
		CreatedAt:         stringToTime(it.CreatedAt),
		UpdatedAt:         stringToTime(it.UpdatedAt),
	}
	for _, p := range it.Products {
		j.Products = append(j.Products, entities.JobProduct{ProductID: p.ProductID, ItemsQty: p.ItemsQty})
	}
	return j
}
