package service

import (
	"context"

	"github.com/MKhiriev/go-social-hub/internal/logger"
	"github.com/MKhiriev/go-social-hub/internal/store"
	"github.com/MKhiriev/go-social-hub/models"
)

// postService is the concrete implementation of PostService. Mutations on
// existing posts go through an ownership check: the post is loaded first and
// the authenticated user must match its author before the repository is
// touched.
type postService struct {
	postRepository store.PostRepository
	logger         *logger.Logger
}

func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

// CreatePost persists a new post authored by authorID. When the request does
// not carry an explicit published flag the post defaults to unpublished.
func (p *postService) CreatePost(ctx context.Context, authorID int64, request models.CreatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	post := models.Post{
		AuthorID: authorID,
		Title:    request.Title,
		Content:  request.Content,
	}
	if request.Published != nil {
		post.Published = *request.Published
	}

	createdPost, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Int64("authorID", authorID).Msg("post creation ended with error")
		return models.Post{}, err
	}

	return createdPost, nil
}

// GetAllPosts returns every post, newest first.
func (p *postService) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	return p.postRepository.GetAllPosts(ctx)
}

// GetPostByID returns a single post or [store.ErrPostNotFound].
func (p *postService) GetPostByID(ctx context.Context, postID int64) (models.Post, error) {
	return p.postRepository.GetPostByID(ctx, postID)
}

// UpdatePost applies a partial update to the post identified by postID on
// behalf of actorID.
//
// Returns:
//   - [store.ErrPostNotFound] if the post does not exist.
//   - ErrNotOwner if actorID is not the post's author; the post is left
//     untouched.
func (p *postService) UpdatePost(ctx context.Context, postID, actorID int64, request models.UpdatePostRequest) (models.Post, error) {
	if err := p.checkOwnership(ctx, postID, actorID); err != nil {
		return models.Post{}, err
	}

	return p.postRepository.UpdatePost(ctx, postID, request)
}

// DeletePost removes the post identified by postID on behalf of actorID.
//
// Returns:
//   - [store.ErrPostNotFound] if the post does not exist.
//   - ErrNotOwner if actorID is not the post's author; the post is left
//     untouched.
func (p *postService) DeletePost(ctx context.Context, postID, actorID int64) error {
	if err := p.checkOwnership(ctx, postID, actorID); err != nil {
		return err
	}

	return p.postRepository.DeletePost(ctx, postID)
}

// checkOwnership loads the post and verifies that actorID authored it.
// Existence is checked before ownership so that a missing post never reports
// an ownership failure.
func (p *postService) checkOwnership(ctx context.Context, postID, actorID int64) error {
	log := logger.FromContext(ctx)

	post, err := p.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != actorID {
		log.Warn().
			Int64("postID", postID).
			Int64("authorID", post.AuthorID).
			Int64("actorID", actorID).
			Msg("post mutation denied: actor is not the author")
		return ErrNotOwner
	}

	return nil
}
