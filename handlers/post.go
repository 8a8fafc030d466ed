package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"soa/post-service/models"
	"soa/post-service/services"
)

const maxBodySize = 1 << 20

type PostCreator interface {
	CreatePost(ctx context.Context, in services.CreatePostInput) (*models.Post, error)
}

type PostHandler struct {
	posts  PostCreator
	logger *zap.Logger
}

func NewPostHandler(posts PostCreator, logger *zap.Logger) *PostHandler {
	return &PostHandler{posts: posts, logger: logger}
}

// CreatePost handles POST /posts/create.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var in services.CreatePostInput

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	h.logger.Debug("create post request",
		zap.Stringp("title", in.Title),
		zap.Stringp("email", in.Email),
		zap.Stringp("description", in.Description),
	)

	post, err := h.posts.CreatePost(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateEmail):
			writeError(w, http.StatusConflict, services.ErrDuplicateEmail.Error())
		case errors.Is(err, services.ErrMissingField):
			writeError(w, http.StatusBadRequest, services.ErrMissingField.Error())
		case errors.Is(err, context.Canceled):
			// client went away; nothing useful to send
		default:
			writeError(w, http.StatusInternalServerError, "failed to create post")
		}
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
