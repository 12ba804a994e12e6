package storage

import (
	"context"

	"github.com/Dailong90/fanta-claus/logging"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	SettingLeaderboardPublished = "leaderboard_published"
	SettingVotePoints           = "vote_points"
	SettingTeamLockDeadline     = "team_lock_deadline"
)

type GameSettingStorage interface {
	Get(ctx context.Context, key string) (*GameSetting, error)
	Put(ctx context.Context, setting *GameSetting) error
	Delete(ctx context.Context, key string) error
}

type DynamoGameSettingStorage struct {
	Client    *dynamodb.Client
	TableName string
}

// Get returns nil without error when the setting was never written; callers
// fall back to their documented defaults.
func (s *DynamoGameSettingStorage) Get(ctx context.Context, settingKey string) (*GameSetting, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": settingKey})
	if err != nil {
		logging.Log.Errorf("SETTINGS: failed to marshal key for %s: %v", settingKey, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SETTINGS: GetItem for %s failed: %v", settingKey, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var setting GameSetting
	if err := attributevalue.UnmarshalMap(out.Item, &setting); err != nil {
		logging.Log.Errorf("SETTINGS: failed to unmarshal setting: %v", err)
		return nil, err
	}
	return &setting, nil
}

func (s *DynamoGameSettingStorage) Put(ctx context.Context, setting *GameSetting) error {
	item, err := attributevalue.MarshalMap(setting)
	if err != nil {
		logging.Log.Errorf("SETTINGS: failed to marshal setting %s: %v", setting.Key, err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("SETTINGS: failed to put setting %s: %v", setting.Key, err)
		return err
	}
	return nil
}

func (s *DynamoGameSettingStorage) Delete(ctx context.Context, settingKey string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": settingKey})
	if err != nil {
		logging.Log.Errorf("SETTINGS: failed to marshal delete key for %s: %v", settingKey, err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SETTINGS: failed to delete setting %s: %v", settingKey, err)
		return err
	}
	return nil
}
