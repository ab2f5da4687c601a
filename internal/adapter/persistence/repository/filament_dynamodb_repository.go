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

const defaultFilamentsTableName = "filaments"

type filamentItem struct {
	ID             string   `dynamodbav:"id"`
	Color          string   `dynamodbav:"color"`
	Brand          string   `dynamodbav:"brand"`
	Material       string   `dynamodbav:"material"`
	PricePerKg     string   `dynamodbav:"price_per_kg"`
	TotalQtyKg     string   `dynamodbav:"total_qty_kg"`
	MinFilamentsKg *string  `dynamodbav:"min_filaments_kg,omitempty"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

// FilamentDynamoRepository persists Filament entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type FilamentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFilamentRepository = (*FilamentDynamoRepository)(nil)

func NewFilamentDynamoRepository(ddb *dynamodb.Client) *FilamentDynamoRepository {
	return &FilamentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FILAMENTS_TABLE", defaultFilamentsTableName),
	}
}

func (r *FilamentDynamoRepository) Create(ctx context.Context, f entities.Filament) (entities.Filament, error) {
	av, err := attributevalue.MarshalMap(toFilamentItem(f))
	if err != nil {
		return entities.Filament{}, err
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
		return entities.Filament{}, err
	}
	return f, nil
}

func (r *FilamentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Filament, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Filament{}, err
	}
	if len(out.Item) == 0 {
		return entities.Filament{}, nil
	}

	var it filamentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Filament{}, err
	}
	return fromFilamentItem(it), nil
}

func (r *FilamentDynamoRepository) List(ctx context.Context) ([]entities.Filament, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	var items []filamentItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	filaments := make([]entities.Filament, 0, len(items))
	for _, it := range items {
		filaments = append(filaments, fromFilamentItem(it))
	}
	return filaments, nil
}

func (r *FilamentDynamoRepository) Update(ctx context.Context, f entities.Filament) (entities.Filament, error) {
	av, err := attributevalue.MarshalMap(toFilamentItem(f))
	if err != nil {
		return entities.Filament{}, err
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
			return entities.Filament{}, nil
		}
		return entities.Filament{}, err
	}
	return f, nil
}

func (r *FilamentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toFilamentItem(f entities.Filament) filamentItem {
	it := filamentItem{
		ID:         f.ID,
		Color:      f.Color,
		Brand:      f.Brand,
		Material:   f.Material,
		PricePerKg: floatToString(f.PricePerKg),
		TotalQtyKg: floatToString(f.TotalQtyKg),
		CreatedAt:  timeToString(f.CreatedAt),
		UpdatedAt:  timeToString(f.UpdatedAt),
	}
	if f.MinFilamentsKg != nil {
		s := floatToString(*f.MinFilamentsKg)
		it.MinFilamentsKg = &s
	}
	return it
}

func fromFilamentItem(it filamentItem) entities.Filament {
	f := entities.Filament{
		ID:         it.ID,
		Color:      it.Color,
		Brand:      it.Brand,
		Material:   it.Material,
		PricePerKg: stringToFloat(it.PricePerKg),
		TotalQtyKg: stringToFloat(it.TotalQtyKg),
		CreatedAt:  stringToTime(it.CreatedAt),
		UpdatedAt:  stringToTime(it.UpdatedAt),
	}
	if it.MinFilamentsKg != nil {
		v := stringToFloat(*it.MinFilamentsKg)
		f.MinFilamentsKg = &v
	}
	return f
}
