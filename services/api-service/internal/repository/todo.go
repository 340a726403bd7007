package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/store"
)

type TodoRepository interface {
	ListTodos(ctx context.Context) ([]model.Todo, error)
	GetTodo(ctx context.Context, id string) (*model.Todo, error)
	CreateTodo(ctx context.Context, todo *model.Todo) (*model.Todo, error)
	SetTodoCompleted(ctx context.Context, id string, completed bool) error
	DeleteTodo(ctx context.Context, id string) (int64, error)
}

type todoRepository struct {
	store store.Store
}

func NewTodoRepository(s store.Store) TodoRepository {
	return &todoRepository{store: s}
}

func (r *todoRepository) ListTodos(ctx context.Context) ([]model.Todo, error) {
	var todos []model.Todo
	err := r.store.Get(ctx, TodoCollection, store.Query{Sort: bson.D{{Key: "createdAt", Value: 1}}}, &todos)
	if err != nil {
		return nil, err
	}

	return todos, nil
}

func (r *todoRepository) GetTodo(ctx context.Context, id string) (*model.Todo, error) {
	return findByID[model.Todo](ctx, r.store, TodoCollection, id)
}

func (r *todoRepository) CreateTodo(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	todo.ID = bson.NilObjectID
	todo.CreatedAt = time.Now()

	id, err := saveDocument(ctx, r.store, TodoCollection, todo)
	if err != nil {
		return nil, err
	}

	todo.ID = id
	return todo, nil
}

func (r *todoRepository) SetTodoCompleted(ctx context.Context, id string, completed bool) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	matched, err := r.store.Update(ctx, TodoCollection,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"completed": completed}},
	)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *todoRepository) DeleteTodo(ctx context.Context, id string) (int64, error) {
	return removeByID(ctx, r.store, TodoCollection, id)
}
