package database

import (
	"testing"

	"collegeblog/internal/domain/entity"
	"collegeblog/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogRepository_CreateAndFindByID(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "ada@college.edu", "Ada", "Lovelace")
	repo := NewBlogRepository(db)

	blog := &entity.Blog{Title: "Engines", Content: "Notes on the analytical engine", AuthorID: author.ID}
	require.NoError(t, repo.Create(t.Context(), blog))
	assert.Positive(t, blog.ID)

	view, err := repo.FindByID(t.Context(), blog.ID)
	require.NoError(t, err)
	assert.Equal(t, blog.ID, view.ID)
	assert.Equal(t, "Engines", view.Title)
	assert.Equal(t, "Notes on the analytical engine", view.Content)
	assert.Equal(t, author.ID, view.AuthorID)
	assert.Equal(t, "Ada", view.AuthorFirstName)
	assert.Equal(t, "Lovelace", view.AuthorLastName)
}

func TestBlogRepository_FindByID_NotFound(t *testing.T) {
	repo := NewBlogRepository(newTestDB(t))

	view, err := repo.FindByID(t.Context(), 999)

	assert.Nil(t, view)
	assert.ErrorIs(t, err, repository.ErrBlogNotFound)
}

func TestBlogRepository_List_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	ada := seedUser(t, db, "ada@college.edu", "Ada", "Lovelace")
	alan := seedUser(t, db, "alan@college.edu", "Alan", "Turing")
	repo := NewBlogRepository(db)

	older := &entity.Blog{Title: "First", Content: "a", AuthorID: ada.ID, CreatedAt: at(1)}
	newer := &entity.Blog{Title: "Second", Content: "b", AuthorID: alan.ID, CreatedAt: at(2)}
	require.NoError(t, repo.Create(t.Context(), older))
	require.NoError(t, repo.Create(t.Context(), newer))

	views, err := repo.List(t.Context())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, newer.ID, views[0].ID)
	assert.Equal(t, "Alan", views[0].AuthorFirstName)
	assert.Equal(t, older.ID, views[1].ID)
	assert.Equal(t, "Ada", views[1].AuthorFirstName)
}

func TestBlogRepository_List_Empty(t *testing.T) {
	views, err := NewBlogRepository(newTestDB(t)).List(t.Context())

	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}
