package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/prognoshealth/todolambda/config"
	"github.com/prognoshealth/todolambda/todo"
	"github.com/prognoshealth/todolambda/todo/dynamostore"
)

var handler *todo.Handler

func init() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed loading configuration")
	}

	logger := cfg.NewLogger()

	store, err := dynamostore.New(cfg.Region, cfg.TableName, cfg.DynamoDBEndpoint)
	if err != nil {
		logger.WithError(err).Fatal("failed creating dynamodb store")
	}

	logger.WithFields(logrus.Fields{
		"table":  cfg.TableName,
		"region": cfg.Region,
	}).Debug("todo handler ready")

	handler = todo.NewHandler(store, logger)
}

func main() {
	lambda.Start(handler.Handle)
}
