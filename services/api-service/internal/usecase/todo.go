package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/payload"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/repository"
	"github.com/vasapolrittideah/streamhub-api/shared/apperror"
)

var ErrTodoTextEmpty = apperror.Validation("Todo text cannot be empty")

type TodoUsecase interface {
	ListTodos(ctx context.Context) ([]model.Todo, error)
	AddTodo(ctx context.Context, req *payload.AddTodoRequest) (*model.Todo, error)
	ToggleTodo(ctx context.Context, req *payload.ToggleTodoRequest) (*model.Todo, error)
	DeleteTodo(ctx context.Context, req *payload.IDRequest) (*payload.DeletedResponse, error)
}

type todoUsecase struct {
	todoRepo repository.TodoRepository
}

func NewTodoUsecase(todoRepo repository.TodoRepository) TodoUsecase {
	return &todoUsecase{todoRepo: todoRepo}
}

func (u *todoUsecase) ListTodos(ctx context.Context) ([]model.Todo, error) {
	todos, err := u.todoRepo.ListTodos(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, "get todos")
	}

	return orEmpty(todos), nil
}

func (u *todoUsecase) AddTodo(ctx context.Context, req *payload.AddTodoRequest) (*model.Todo, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrTodoTextEmpty
	}

	todo, err := u.todoRepo.CreateTodo(ctx, &model.Todo{Text: text})
	if err != nil {
		return nil, apperror.Wrap(err, "add todo")
	}

	return todo, nil
}

func (u *todoUsecase) ToggleTodo(ctx context.Context, req *payload.ToggleTodoRequest) (*model.Todo, error) {
	if req.ID == "" {
		return nil, apperror.Validation("Todo id is required")
	}

	todo, err := u.todoRepo.GetTodo(ctx, req.ID)
	if err != nil {
		return nil, todoError(err, "toggle todo")
	}

	todo.Completed = !todo.Completed
	if err := u.todoRepo.SetTodoCompleted(ctx, req.ID, todo.Completed); err != nil {
		return nil, todoError(err, "toggle todo")
	}

	return todo, nil
}

func (u *todoUsecase) DeleteTodo(ctx context.Context, req *payload.IDRequest) (*payload.DeletedResponse, error) {
	if req.ID == "" {
		return nil, apperror.Validation("Todo id is required")
	}

	deleted, err := u.todoRepo.DeleteTodo(ctx, req.ID)
	if err != nil {
		return nil, todoError(err, "delete todo")
	}
	if deleted == 0 {
		return nil, ErrTodoNotFound
	}

	return &payload.DeletedResponse{Deleted: deleted}, nil
}

func todoError(err error, action string) error {
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
		return ErrTodoNotFound
	}
	return apperror.Wrap(err, action)
}
