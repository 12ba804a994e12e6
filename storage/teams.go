package storage

import (
	"context"

	"github.com/Dailong90/fanta-claus/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type TeamStorage interface {
	Get(ctx context.Context, ownerID string) (*Team, error)
	GetAll(ctx context.Context) ([]*Team, error)
	Put(ctx context.Context, team *Team) error
	DeleteAll(ctx context.Context) error
}

type DynamoTeamStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoTeamStorage) Get(ctx context.Context, ownerID string) (*Team, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": ownerID})
	if err != nil {
		logging.Log.Errorf("TEAM: failed to marshal key for %s: %v", ownerID, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("TEAM: GetItem for %s failed: %v", ownerID, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var team Team
	if err := attributevalue.UnmarshalMap(out.Item, &team); err != nil {
		logging.Log.Errorf("TEAM: failed to unmarshal team: %v", err)
		return nil, err
	}
	return &team, nil
}

func (s *DynamoTeamStorage) GetAll(ctx context.Context) ([]*Team, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("TEAM: scan failed: %v", err)
		return nil, err
	}

	var teams []*Team
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &teams); err != nil {
		logging.Log.Errorf("TEAM: failed to unmarshal team list: %v", err)
		return nil, err
	}
	return teams, nil
}

// Put upserts the roster for one owner, last writer wins.
func (s *DynamoTeamStorage) Put(ctx context.Context, team *Team) error {
	item, err := attributevalue.MarshalMap(team)
	if err != nil {
		logging.Log.Errorf("TEAM: failed to marshal team: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("TEAM: failed to put team for %s: %v", team.OwnerID, err)
		return err
	}
	return nil
}

func (s *DynamoTeamStorage) DeleteAll(ctx context.Context) error {
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		scanOutput, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:            &s.TableName,
			ExclusiveStartKey:    lastEvaluatedKey,
			ProjectionExpression: aws.String("PK"),
		})
		if err != nil {
			logging.Log.Errorf("TEAM: scan for delete failed: %v", err)
			return err
		}

		var writeRequests []types.WriteRequest
		for _, item := range scanOutput.Items {
			writeRequests = append(writeRequests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{"PK": item["PK"]},
				},
			})
		}

		for i := 0; i < len(writeRequests); i += 25 {
			end := i + 25
			if end > len(writeRequests) {
				end = len(writeRequests)
			}
			_, err := s.Client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					s.TableName: writeRequests[i:end],
				},
			})
			if err != nil {
				logging.Log.Errorf("TEAM: batch delete failed: %v", err)
				return err
			}
		}

		if scanOutput.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = scanOutput.LastEvaluatedKey
	}

	return nil
}
