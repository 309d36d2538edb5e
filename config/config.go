// Package config loads the lambda's settings from the environment once at cold
// start.
package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Environment variable names.
const (
	KeyTableName        = "TABLE_NAME"
	KeyRegion           = "AWS_REGION"
	KeyDynamoDBEndpoint = "DYNAMODB_ENDPOINT"
	KeyLogLevel         = "LOG_LEVEL"
)

// Config holds everything the handler needs from its environment.
//
// TableName is not validated, an empty name only fails once the store is
// called.
type Config struct {
	TableName        string
	Region           string
	DynamoDBEndpoint string
	LogLevel         logrus.Level
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(KeyTableName, "")
	v.SetDefault(KeyRegion, "us-east-1")
	v.SetDefault(KeyDynamoDBEndpoint, "")
	v.SetDefault(KeyLogLevel, "info")

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	level, err := logrus.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", KeyLogLevel)
	}

	return &Config{
		TableName:        v.GetString(KeyTableName),
		Region:           v.GetString(KeyRegion),
		DynamoDBEndpoint: v.GetString(KeyDynamoDBEndpoint),
		LogLevel:         level,
	}, nil
}

// NewLogger returns a json logger writing to stderr at the configured level.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(c.LogLevel)
	return logger
}
