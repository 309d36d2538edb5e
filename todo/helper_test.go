package todo

import (
	"context"
	"sort"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// memoryStore records every call and keeps items in a map.
type memoryStore struct {
	items   map[string]Item
	puts    []Item
	deletes []string
	lists   int
	err     error
}

func newMemoryStore(items ...Item) *memoryStore {
	s := &memoryStore{items: map[string]Item{}}
	for _, item := range items {
		s.items[item.ID] = item
	}
	return s
}

func (s *memoryStore) List(ctx context.Context) ([]Item, error) {
	s.lists++
	if s.err != nil {
		return nil, s.err
	}

	var items []Item
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return items, nil
}

func (s *memoryStore) Put(ctx context.Context, item Item) error {
	s.puts = append(s.puts, item)
	if s.err != nil {
		return s.err
	}

	s.items[item.ID] = item
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, id string) error {
	s.deletes = append(s.deletes, id)
	if s.err != nil {
		return s.err
	}

	delete(s.items, id)
	return nil
}

func (s *memoryStore) calls() int {
	return s.lists + len(s.puts) + len(s.deletes)
}

func testHandler(store Store) (*Handler, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewHandler(store, logger), hook
}

func testRequest(method, body string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod: method,
		Path:       "/todos",
		Body:       body,
	}
}
