package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/store"
)

// CollectionName is the collection holding tasks.
const CollectionName = "tasks"

// taskDocument is the stored shape of a task.
type taskDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Completed bool               `bson:"completed"`
}

func (d taskDocument) toDomain() *domain.Task {
	return &domain.Task{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Completed: d.Completed,
	}
}

// TaskStore implements store.TaskStore using MongoDB.
type TaskStore struct {
	db     *mongo.Database
	coll   *mongo.Collection
	logger *slog.Logger
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a TaskStore on the tasks collection of db.
func NewTaskStore(db *mongo.Database, logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{
		db:     db,
		coll:   db.Collection(CollectionName),
		logger: logger.With(slog.String("component", "mongodb_task_store")),
	}
}

// List implements store.TaskStore. Documents come back in natural order.
func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, MapError("list", err)
	}

	docs := make([]taskDocument, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, MapError("list", err)
	}

	tasks := make([]*domain.Task, 0, len(docs))
	for _, d := range docs {
		tasks = append(tasks, d.toDomain())
	}
	return tasks, nil
}

// GetByID implements store.TaskStore.
func (s *TaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	oid, err := parseObjectID("get", id)
	if err != nil {
		return nil, err
	}

	var doc taskDocument
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, MapError("get", err)
	}
	return doc.toDomain(), nil
}

// Create implements store.TaskStore.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return store.NewStoreError("task", "create", "validation failed",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	doc := taskDocument{
		ID:        primitive.NewObjectID(),
		Title:     task.Title,
		Completed: task.Completed,
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return MapError("create", err)
	}

	task.ID = doc.ID.Hex()
	s.logger.DebugContext(ctx, "task inserted", slog.String("task_id", task.ID))
	return nil
}

// Update implements store.TaskStore. Both fields are written; the stored
// document after the update is returned.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	oid, err := parseObjectID("update", task.ID)
	if err != nil {
		return nil, err
	}
	if err := task.Validate(); err != nil {
		return nil, store.NewStoreError("task", "update", "validation failed",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	update := bson.M{"$set": bson.M{
		"title":     task.Title,
		"completed": task.Completed,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc taskDocument
	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		return nil, MapError("update", err)
	}
	return doc.toDomain(), nil
}

// Delete implements store.TaskStore.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID("delete", id)
	if err != nil {
		return err
	}

	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return MapError("delete", err)
	}
	if result.DeletedCount == 0 {
		return store.ErrTaskNotFound
	}
	return nil
}

// Ping implements store.TaskStore.
func (s *TaskStore) Ping(ctx context.Context) error {
	return Ping(ctx, s.db)
}

// Close disconnects the underlying client.
func (s *TaskStore) Close(ctx context.Context) error {
	return Disconnect(ctx, s.db)
}
