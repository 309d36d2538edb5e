// Package dynamostore keeps to-do items in a dynamodb table keyed by the
// string attribute "id".
package dynamostore

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/pkg/errors"

	"github.com/prognoshealth/todolambda/todo"
)

var _ todo.Store = (*Store)(nil)

// Store implements todo.Store. The client is created once and reused for
// every call.
type Store struct {
	Region   string
	Table    string
	Endpoint string

	svc     dynamodbiface.DynamoDBAPI
	svcFunc func(client.ConfigProvider) dynamodbiface.DynamoDBAPI
}

// New returns a store for table in region. A non empty endpoint replaces the
// regional dynamodb endpoint, e.g. for localstack.
func New(region string, table string, endpoint string) (*Store, error) {
	s := &Store{
		Region:   region,
		Table:    table,
		Endpoint: endpoint,
	}

	if err := s.connect(); err != nil {
		return nil, err
	}

	return s, nil
}

// awsConfig disables sdk retries, a failed call fails the request.
func (s *Store) awsConfig() *aws.Config {
	cfg := &aws.Config{
		Region:     aws.String(s.Region),
		MaxRetries: aws.Int(0),
	}

	if s.Endpoint != "" {
		cfg.Endpoint = aws.String(s.Endpoint)
	}

	return cfg
}

func (s *Store) connect() error {
	sess, err := session.NewSession(s.awsConfig())
	if err != nil {
		return errors.Wrap(err, "failed getting session")
	}

	if s.svcFunc != nil {
		s.svc = s.svcFunc(sess)
	} else {
		s.svc = dynamodb.New(sess)
	}

	return nil
}

// List scans every page of the table.
func (s *Store) List(ctx context.Context) ([]todo.Item, error) {
	items := []todo.Item{}

	input := &dynamodb.ScanInput{
		TableName: aws.String(s.Table),
	}

	var uerr error
	err := s.svc.ScanPagesWithContext(ctx, input, func(page *dynamodb.ScanOutput, lastPage bool) bool {
		var batch []todo.Item
		if uerr = dynamodbattribute.UnmarshalListOfMaps(page.Items, &batch); uerr != nil {
			return false
		}

		items = append(items, batch...)
		return true
	})

	if err != nil {
		return nil, errors.Wrapf(err, "failed scanning %v", s.Table)
	}

	if uerr != nil {
		return nil, errors.Wrapf(uerr, "failed unmarshalling items from %v", s.Table)
	}

	return items, nil
}

// Put writes item, replacing any item with the same id.
func (s *Store) Put(ctx context.Context, item todo.Item) error {
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		return errors.Wrapf(err, "failed marshalling %v", item.ID)
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(s.Table),
	}

	if _, err := s.svc.PutItemWithContext(ctx, input); err != nil {
		return errors.Wrapf(err, "failed put %v to %v", item.ID, s.Table)
	}

	return nil
}

// Delete removes the item keyed by id. Deleting a missing id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.svc.DeleteItemWithContext(ctx, s.deleteItemInput(id)); err != nil {
		return errors.Wrapf(err, "failed delete %v from %v", id, s.Table)
	}

	return nil
}

func (s *Store) deleteItemInput(id string) *dynamodb.DeleteItemInput {
	return &dynamodb.DeleteItemInput{
		Key: map[string]*dynamodb.AttributeValue{
			"id": {
				S: aws.String(id),
			},
		},
		TableName: aws.String(s.Table),
	}
}
