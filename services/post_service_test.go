package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"soa/post-service/config"
	"soa/post-service/database"
	"soa/post-service/models"
)

func ptr(s string) *string { return &s }

func newTestService(t *testing.T) (*PostService, *gorm.DB) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	db, err := database.Open(config.Database{
		Driver:       config.DriverSQLite,
		URL:          filepath.Join(t.TempDir(), "posts.db"),
		MaxOpenConns: 1,
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return NewPostService(db, logger), db
}

func TestCreatePost(t *testing.T) {
	svc, db := newTestService(t)

	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		Title:       ptr("Hello"),
		Email:       ptr("jane@example.com"),
		Description: ptr("first post"),
	})
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.NotEqual(t, uuid.Nil, post.ID)
	assert.Equal(t, "Hello", *post.Title)
	assert.Equal(t, "jane@example.com", *post.Email)
	assert.Equal(t, "first post", *post.Description)
	assert.False(t, post.CreatedAt.IsZero())

	var stored models.Post
	require.NoError(t, db.First(&stored, "id = ?", post.ID).Error)
	assert.Equal(t, "Hello", *stored.Title)
}

func TestCreatePostKeepsValuesUnmodified(t *testing.T) {
	svc, _ := newTestService(t)

	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		Title:       ptr("  <b>spaced</b>  "),
		Email:       ptr("not-an-email"),
		Description: ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "  <b>spaced</b>  ", *post.Title)
	assert.Equal(t, "not-an-email", *post.Email)
	assert.Equal(t, "", *post.Description)
}

func TestCreatePostDuplicateEmail(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	in := CreatePostInput{Title: ptr("a"), Email: ptr("dup@example.com"), Description: ptr("d")}
	_, err := svc.CreatePost(ctx, in)
	require.NoError(t, err)

	post, err := svc.CreatePost(ctx, in)
	assert.Nil(t, post)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.ErrorIs(t, err, database.ErrDuplicateKey)

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreatePostMissingField(t *testing.T) {
	svc, _ := newTestService(t)

	tests := map[string]CreatePostInput{
		"title":       {Email: ptr("a@example.com"), Description: ptr("d")},
		"email":       {Title: ptr("t"), Description: ptr("d")},
		"description": {Title: ptr("t"), Email: ptr("b@example.com")},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			post, err := svc.CreatePost(context.Background(), in)
			assert.Nil(t, post)
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestCreatePostCanceledContext(t *testing.T) {
	svc, _ := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreatePost(ctx, CreatePostInput{Title: ptr("t"), Email: ptr("c@example.com"), Description: ptr("d")})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrDuplicateEmail))
	assert.False(t, errors.Is(err, ErrMissingField))
}
