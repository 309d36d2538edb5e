// Package todo serves list, create and delete of to-do items over an api
// gateway proxy integration.
package todo

import (
	"context"

	"github.com/google/uuid"
)

// Item is a single to-do record. Every stored item has a non empty ID and
// Todo.
type Item struct {
	ID   string `json:"id" dynamodbav:"id"`
	Todo string `json:"todo" dynamodbav:"todo"`
}

// Request is the json body accepted by POST and DELETE. POST reads Todo and
// an optional ID, DELETE reads ID.
type Request struct {
	ID   string `json:"id,omitempty"`
	Todo string `json:"todo,omitempty"`
}

// Store is the table holding all items.
type Store interface {
	// List returns every item, an empty slice when there are none.
	List(ctx context.Context) ([]Item, error)
	// Put creates the item or replaces the one with the same ID.
	Put(ctx context.Context, item Item) error
	// Delete removes the item with the given ID.
	Delete(ctx context.Context, id string) error
}

// NewID returns a random (version 4) uuid.
func NewID() string {
	return uuid.NewString()
}
