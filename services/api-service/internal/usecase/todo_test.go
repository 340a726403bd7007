package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/payload"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/repository"
	repomocks "github.com/vasapolrittideah/streamhub-api/services/api-service/internal/repository/mocks"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/usecase"
	"github.com/vasapolrittideah/streamhub-api/shared/apperror"
)

func TestTodoUsecase_AddTodo(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		mockCall func(r *repomocks.TodoRepository)
		wantErr  string
	}{
		{name: "empty text", text: "", mockCall: func(r *repomocks.TodoRepository) {}, wantErr: "Todo text cannot be empty"},
		{name: "whitespace only", text: "   ", mockCall: func(r *repomocks.TodoRepository) {}, wantErr: "Todo text cannot be empty"},
		{
			name: "trimmed text is stored",
			text: "  write tests ",
			mockCall: func(r *repomocks.TodoRepository) {
				r.On("CreateTodo", mock.Anything, &model.Todo{Text: "write tests"}).
					Return(&model.Todo{ID: bson.NewObjectID(), Text: "write tests"}, nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todoRepo := repomocks.NewTodoRepository(t)
			tt.mockCall(todoRepo)

			got, err := usecase.NewTodoUsecase(todoRepo).AddTodo(context.Background(), &payload.AddTodoRequest{Text: tt.text})
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "write tests", got.Text)
		})
	}
}

func TestTodoUsecase_ToggleTodo(t *testing.T) {
	id := bson.NewObjectID()

	t.Run("flips completion", func(t *testing.T) {
		todoRepo := repomocks.NewTodoRepository(t)
		todoRepo.On("GetTodo", mock.Anything, id.Hex()).Return(&model.Todo{ID: id, Text: "a"}, nil).Once()
		todoRepo.On("SetTodoCompleted", mock.Anything, id.Hex(), true).Return(nil).Once()

		got, err := usecase.NewTodoUsecase(todoRepo).ToggleTodo(context.Background(), &payload.ToggleTodoRequest{ID: id.Hex()})
		require.NoError(t, err)
		assert.True(t, got.Completed)
	})

	t.Run("missing todo", func(t *testing.T) {
		todoRepo := repomocks.NewTodoRepository(t)
		todoRepo.On("GetTodo", mock.Anything, id.Hex()).Return(nil, repository.ErrNotFound).Once()

		_, err := usecase.NewTodoUsecase(todoRepo).ToggleTodo(context.Background(), &payload.ToggleTodoRequest{ID: id.Hex()})
		assert.ErrorIs(t, err, usecase.ErrTodoNotFound)
	})
}

func TestTodoUsecase_ListTodos_NeverNull(t *testing.T) {
	todoRepo := repomocks.NewTodoRepository(t)
	todoRepo.On("ListTodos", mock.Anything).Return(nil, nil).Once()

	got, err := usecase.NewTodoUsecase(todoRepo).ListTodos(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
}
