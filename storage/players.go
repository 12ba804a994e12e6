package storage

import (
	"context"

	"github.com/Dailong90/fanta-claus/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type PlayerStorage interface {
	Get(ctx context.Context, ownerID string) (*Player, error)
	GetByAccessCode(ctx context.Context, code string) (*Player, error)
	GetAll(ctx context.Context) ([]*Player, error)
	Put(ctx context.Context, player *Player) error
}

type DynamoPlayerStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoPlayerStorage) Get(ctx context.Context, ownerID string) (*Player, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": ownerID})
	if err != nil {
		logging.Log.Errorf("PLAYER: failed to marshal key for %s: %v", ownerID, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("PLAYER: GetItem for %s failed: %v", ownerID, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var player Player
	if err := attributevalue.UnmarshalMap(out.Item, &player); err != nil {
		logging.Log.Errorf("PLAYER: failed to unmarshal player: %v", err)
		return nil, err
	}
	return &player, nil
}

// GetByAccessCode scans for the player holding a login code. Codes are unique
// by construction (see the admin provisioning endpoint), so the first match
// wins.
func (s *DynamoPlayerStorage) GetByAccessCode(ctx context.Context, code string) (*Player, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        &s.TableName,
		FilterExpression: aws.String("AccessCode = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
	})
	if err != nil {
		logging.Log.Errorf("PLAYER: scan by access code failed: %v", err)
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, ErrNotFound
	}

	var player Player
	if err := attributevalue.UnmarshalMap(out.Items[0], &player); err != nil {
		logging.Log.Errorf("PLAYER: failed to unmarshal player: %v", err)
		return nil, err
	}
	return &player, nil
}

func (s *DynamoPlayerStorage) GetAll(ctx context.Context) ([]*Player, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("PLAYER: scan failed: %v", err)
		return nil, err
	}

	var players []*Player
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &players); err != nil {
		logging.Log.Errorf("PLAYER: failed to unmarshal player list: %v", err)
		return nil, err
	}
	return players, nil
}

func (s *DynamoPlayerStorage) Put(ctx context.Context, player *Player) error {
	item, err := attributevalue.MarshalMap(player)
	if err != nil {
		logging.Log.Errorf("PLAYER: failed to marshal player: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("PLAYER: failed to put player %s: %v", player.OwnerID, err)
		return err
	}
	return nil
}
