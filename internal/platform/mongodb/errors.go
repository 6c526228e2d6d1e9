package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phrazzld/task-api/internal/store"
)

// MapError converts driver errors into store errors for the given operation.
func MapError(operation string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return store.ErrTaskNotFound
	case mongo.IsDuplicateKeyError(err):
		return store.NewStoreError("task", operation, "duplicate key", err)
	case mongo.IsTimeout(err), mongo.IsNetworkError(err):
		return store.NewStoreError("task", operation, "database unavailable", err)
	default:
		return store.NewStoreError("task", operation, "database error", err)
	}
}

// parseObjectID converts a hex identifier, reporting malformed input as
// store.ErrInvalidID.
func parseObjectID(operation, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, store.NewStoreError("task", operation, "malformed id",
			fmt.Errorf("%w: %w", store.ErrInvalidID, err))
	}
	return oid, nil
}
