package api

import (
	"context"
	"fmt"
	"os"

	"github.com/Dailong90/fanta-claus/api/controllers"
	"github.com/Dailong90/fanta-claus/api/session"
	"github.com/Dailong90/fanta-claus/api/transport"
	"github.com/Dailong90/fanta-claus/logging"
	"github.com/Dailong90/fanta-claus/storage"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	// Create storage
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to load AWS config: %v", err)
		panic("failed to load AWS config")
	}

	dynamoClient := dynamodb.NewFromConfig(cfg)

	playerStorage := &storage.DynamoPlayerStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNamePlayers,
	}
	teamStorage := &storage.DynamoTeamStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameTeams,
	}
	giftStorage := &storage.DynamoGiftStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameGifts,
	}
	categoryStorage := &storage.DynamoGiftCategoryStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameGiftCategories,
	}
	voteStorage := &storage.DynamoPackageVoteStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNamePackageVotes,
	}
	settingStorage := &storage.DynamoGameSettingStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameGameSettings,
	}

	sessions := session.NewManager(s.config.Secret, s.config.TTL)

	//Register controllers
	authController := controllers.NewAuthController(playerStorage, sessions)
	authController.RegisterRoutes(r)
	leaderboardController := controllers.NewLeaderboardController(playerStorage, teamStorage, giftStorage, categoryStorage, voteStorage, settingStorage, sessions)
	leaderboardController.RegisterRoutes(r)
	votingController := controllers.NewVotingController(voteStorage, playerStorage, sessions)
	votingController.RegisterRoutes(r)
	teamController := controllers.NewTeamController(teamStorage, playerStorage, settingStorage, sessions)
	teamController.RegisterRoutes(r)
	categoryController := controllers.NewCategoryController(categoryStorage, giftStorage, playerStorage, sessions)
	categoryController.RegisterRoutes(r)
	adminController := controllers.NewAdminController(playerStorage, giftStorage, categoryStorage, teamStorage, voteStorage, settingStorage, sessions)
	adminController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

// StartLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
