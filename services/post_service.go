package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"soa/post-service/database"
	"soa/post-service/models"
)

var (
	ErrDuplicateEmail = errors.New("a post with this email already exists")
	ErrMissingField   = errors.New("title, email and description are required")
)

// CreatePostInput carries the request fields as received. Nil means the
// client did not send the field.
type CreatePostInput struct {
	Title       *string `json:"title"`
	Email       *string `json:"email"`
	Description *string `json:"description"`
}

type PostService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewPostService(db *gorm.DB, logger *zap.Logger) *PostService {
	return &PostService{db: db, logger: logger.Named("posts")}
}

// CreatePost inserts the post unmodified. Constraint violations come back as
// ErrDuplicateEmail or ErrMissingField.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	post := models.Post{
		Title:       in.Title,
		Email:       in.Email,
		Description: in.Description,
	}

	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		err = database.ClassifyError(err)
		s.logger.Error("Error creating post", zap.Stringp("email", in.Email), zap.Error(err))

		switch {
		case errors.Is(err, database.ErrDuplicateKey):
			return nil, fmt.Errorf("%w: %w", ErrDuplicateEmail, err)
		case errors.Is(err, database.ErrNotNull):
			return nil, fmt.Errorf("%w: %w", ErrMissingField, err)
		}
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.logger.Info("Post created", zap.String("id", post.ID.String()))
	return &post, nil
}
