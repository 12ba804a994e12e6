package controllers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Dailong90/fanta-claus/api/session"
	"github.com/Dailong90/fanta-claus/logging"
	"github.com/Dailong90/fanta-claus/storage"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	testTablePlayers    = "Players"
	testTableTeams      = "Teams"
	testTableGifts      = "Gifts"
	testTableCategories = "GiftCategories"
	testTableVotes      = "PackageVotes"
	testTableSettings   = "GameSettings"
)

//nolint:staticcheck
func newLocalstackClient(t *testing.T) *dynamodb.Client {
	t.Helper()
	logging.Log = logrus.New()

	// Load localstack config
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion("us-east-1"),
		config.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{URL: "http://localhost:4566", HostnameImmutable: true}, nil
			}),
		),
	)
	if err != nil {
		t.Fatalf("failed to load AWS config: %v", err)
	}

	return dynamodb.NewFromConfig(cfg)
}

func newTestSessions() *session.Manager {
	return session.NewManager("test-secret", time.Hour)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// loginCookie issues a real session token for ownerID.
func loginCookie(t *testing.T, sessions *session.Manager, ownerID string) *http.Cookie {
	t.Helper()
	token, err := sessions.IssueToken(ownerID)
	if err != nil {
		t.Fatalf("failed to issue session token: %v", err)
	}
	return &http.Cookie{Name: session.CookieName, Value: token, Path: "/"}
}

func seedPlayer(t *testing.T, s storage.PlayerStorage, ownerID, name, code string, isAdmin bool) {
	t.Helper()
	if err := s.Put(context.TODO(), &storage.Player{
		OwnerID:    ownerID,
		Name:       name,
		AccessCode: code,
		IsAdmin:    isAdmin,
	}); err != nil {
		t.Fatalf("failed to seed player %s: %v", ownerID, err)
	}
}

func cleanupTable(t *testing.T, client *dynamodb.Client, tableName string) {
	t.Helper()

	out, err := client.Scan(context.TODO(), &dynamodb.ScanInput{
		TableName: aws.String(tableName),
	})
	if err != nil {
		t.Fatalf("cleanup failed to scan %s: %v", tableName, err)
	}

	for _, item := range out.Items {
		key := map[string]types.AttributeValue{
			"PK": item["PK"],
		}
		_, err := client.DeleteItem(context.TODO(), &dynamodb.DeleteItemInput{
			TableName: aws.String(tableName),
			Key:       key,
		})
		if err != nil {
			t.Fatalf("cleanup failed to delete item: %v", err)
		}
	}
}

// cleanupVoteTable handles the composite voter+type key.
func cleanupVoteTable(t *testing.T, client *dynamodb.Client) {
	t.Helper()

	out, err := client.Scan(context.TODO(), &dynamodb.ScanInput{
		TableName: aws.String(testTableVotes),
	})
	if err != nil {
		t.Fatalf("cleanup failed to scan %s: %v", testTableVotes, err)
	}

	for _, item := range out.Items {
		key := make(map[string]types.AttributeValue)
		if pk, ok := item["PK"]; ok {
			key["PK"] = pk
		}
		if sk, ok := item["SK"]; ok {
			key["SK"] = sk
		}

		_, err := client.DeleteItem(context.TODO(), &dynamodb.DeleteItemInput{
			TableName: aws.String(testTableVotes),
			Key:       key,
		})
		if err != nil {
			t.Fatalf("cleanup failed to delete item from %s: %v", testTableVotes, err)
		}
	}
}
