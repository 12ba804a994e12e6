package storage

import (
	"context"

	"github.com/Dailong90/fanta-claus/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type GiftStorage interface {
	Get(ctx context.Context, santaOwnerID string) (*Gift, error)
	GetAll(ctx context.Context) ([]*Gift, error)
	Put(ctx context.Context, gift *Gift) error
	AnyWithCategory(ctx context.Context, categoryID string) (bool, error)
}

type DynamoGiftStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoGiftStorage) Get(ctx context.Context, santaOwnerID string) (*Gift, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": santaOwnerID})
	if err != nil {
		logging.Log.Errorf("GIFT: failed to marshal key for %s: %v", santaOwnerID, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("GIFT: GetItem for %s failed: %v", santaOwnerID, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var gift Gift
	if err := attributevalue.UnmarshalMap(out.Item, &gift); err != nil {
		logging.Log.Errorf("GIFT: failed to unmarshal gift: %v", err)
		return nil, err
	}
	return &gift, nil
}

func (s *DynamoGiftStorage) GetAll(ctx context.Context) ([]*Gift, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("GIFT: scan failed: %v", err)
		return nil, err
	}

	var gifts []*Gift
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &gifts); err != nil {
		logging.Log.Errorf("GIFT: failed to unmarshal gift list: %v", err)
		return nil, err
	}
	return gifts, nil
}

// Put upserts the single gift record of a santa.
func (s *DynamoGiftStorage) Put(ctx context.Context, gift *Gift) error {
	item, err := attributevalue.MarshalMap(gift)
	if err != nil {
		logging.Log.Errorf("GIFT: failed to marshal gift: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("GIFT: failed to put gift for %s: %v", gift.SantaOwnerID, err)
		return err
	}
	return nil
}

// AnyWithCategory reports whether at least one gift references the category,
// which blocks category deletion.
func (s *DynamoGiftStorage) AnyWithCategory(ctx context.Context, categoryID string) (bool, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        &s.TableName,
		FilterExpression: aws.String("CategoryID = :cat"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cat": &types.AttributeValueMemberS{Value: categoryID},
		},
	})
	if err != nil {
		logging.Log.Errorf("GIFT: scan by category failed: %v", err)
		return false, err
	}
	return len(out.Items) > 0, nil
}
