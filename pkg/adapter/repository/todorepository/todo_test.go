package todorepository_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/adapter/repository/todorepository"
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/testutil"
)

func TestTodoRepository_Create(t *testing.T) {
	db := testutil.NewDBClient(t)
	repo := todorepository.NewTodoRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, model.CreateTodoInput{Title: "Buy milk"})
	require.NoError(t, err)
	require.NotZero(t, first.ID)
	require.False(t, first.Completed)

	second, err := repo.Create(ctx, model.CreateTodoInput{Title: "Walk the dog", Description: "Morning"})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID, "ids must be newly assigned")
}

func TestTodoRepository_List(t *testing.T) {
	db := testutil.NewDBClient(t)
	repo := todorepository.NewTodoRepository(db)
	ctx := context.Background()

	todos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, todos)

	_, err = repo.Create(ctx, model.CreateTodoInput{Title: "One"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.CreateTodoInput{Title: "Two"})
	require.NoError(t, err)

	todos, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)
}

func TestTodoRepository_Complete(t *testing.T) {
	db := testutil.NewDBClient(t)
	repo := todorepository.NewTodoRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateTodoInput{Title: "Buy milk"})
	require.NoError(t, err)

	done, err := repo.Complete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, done.Completed)

	// Completing again is a no-op, not an error.
	done, err = repo.Complete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, done.Completed)

	_, err = repo.Complete(ctx, created.ID+1000)
	require.Error(t, err)
	require.Equal(t, http.StatusNotFound, model.StatusCode(err))
}

func TestTodoRepository_Delete(t *testing.T) {
	db := testutil.NewDBClient(t)
	repo := todorepository.NewTodoRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateTodoInput{Title: "Buy milk"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	err = repo.Delete(ctx, created.ID)
	require.Error(t, err, "deleting twice must report not found")
	require.Equal(t, http.StatusNotFound, model.StatusCode(err))

	todos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, todos)
}
