package storage

import (
	"context"
	"errors"

	"github.com/Dailong90/fanta-claus/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type GiftCategoryStorage interface {
	Get(ctx context.Context, id string) (*GiftCategory, error)
	GetAll(ctx context.Context) ([]*GiftCategory, error)
	Create(ctx context.Context, category *GiftCategory) error
	Update(ctx context.Context, category *GiftCategory) error
	Delete(ctx context.Context, id string) error
}

type DynamoGiftCategoryStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoGiftCategoryStorage) Get(ctx context.Context, id string) (*GiftCategory, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("CATEGORY: failed to marshal key for %s: %v", id, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("CATEGORY: GetItem for %s failed: %v", id, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var category GiftCategory
	if err := attributevalue.UnmarshalMap(out.Item, &category); err != nil {
		logging.Log.Errorf("CATEGORY: failed to unmarshal category: %v", err)
		return nil, err
	}
	return &category, nil
}

func (s *DynamoGiftCategoryStorage) GetAll(ctx context.Context) ([]*GiftCategory, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("CATEGORY: scan failed: %v", err)
		return nil, err
	}

	var categories []*GiftCategory
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &categories); err != nil {
		logging.Log.Errorf("CATEGORY: failed to unmarshal list: %v", err)
		return nil, err
	}
	return categories, nil
}

func (s *DynamoGiftCategoryStorage) Create(ctx context.Context, category *GiftCategory) error {
	item, err := attributevalue.MarshalMap(category)
	if err != nil {
		logging.Log.Errorf("CATEGORY: failed to marshal category: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("CATEGORY: item with ID %s already exists", category.ID)
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("CATEGORY: failed to create category: %v", err)
		return err
	}
	return nil
}

func (s *DynamoGiftCategoryStorage) Update(ctx context.Context, category *GiftCategory) error {
	item, err := attributevalue.MarshalMap(category)
	if err != nil {
		logging.Log.Errorf("CATEGORY: failed to marshal updated category: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("CATEGORY: failed to update category: %v", err)
		return err
	}
	return nil
}

func (s *DynamoGiftCategoryStorage) Delete(ctx context.Context, id string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("CATEGORY: failed to marshal delete key for %s: %v", id, err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("CATEGORY: failed to delete category %s: %v", id, err)
		return err
	}
	logging.Log.Infof("CATEGORY: deleted category %s", id)
	return nil
}
