package service

import (
	"context"

	"github.com/MKhiriev/go-social-hub/internal/logger"
	"github.com/MKhiriev/go-social-hub/internal/store"
	"github.com/MKhiriev/go-social-hub/models"
)

// commentService is the concrete implementation of CommentService. Like
// postService, mutations on existing comments verify ownership before any
// storage write.
type commentService struct {
	commentRepository store.CommentRepository
	logger            *logger.Logger
}

func NewCommentService(commentRepository store.CommentRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		logger:            logger,
	}
}

// CreateComment persists a new comment by authorID on the post named in the
// request. Returns [store.ErrPostNotFound] when the post does not exist.
func (c *commentService) CreateComment(ctx context.Context, authorID int64, request models.CreateCommentRequest) (models.Comment, error) {
	log := logger.FromContext(ctx)

	comment := models.Comment{
		PostID:   request.PostID,
		AuthorID: authorID,
		Content:  request.Content,
	}

	createdComment, err := c.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		log.Err(err).Int64("postID", request.PostID).Int64("authorID", authorID).Msg("comment creation ended with error")
		return models.Comment{}, err
	}

	return createdComment, nil
}

// GetCommentsByPostID returns every comment on the given post, newest first.
func (c *commentService) GetCommentsByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	return c.commentRepository.GetCommentsByPostID(ctx, postID)
}

// UpdateComment applies a partial update to the comment identified by
// commentID on behalf of actorID. An update carrying no fields is a
// no-op: the current comment is returned without a storage write.
//
// Returns:
//   - [store.ErrCommentNotFound] if the comment does not exist.
//   - ErrNotOwner if actorID did not author the comment.
func (c *commentService) UpdateComment(ctx context.Context, commentID, actorID int64, request models.UpdateCommentRequest) (models.Comment, error) {
	comment, err := c.checkOwnership(ctx, commentID, actorID)
	if err != nil {
		return models.Comment{}, err
	}

	if request.Content == nil {
		return comment, nil
	}

	return c.commentRepository.UpdateComment(ctx, commentID, request)
}

// DeleteComment removes the comment identified by commentID on behalf of
// actorID.
//
// Returns:
//   - [store.ErrCommentNotFound] if the comment does not exist.
//   - ErrNotOwner if actorID did not author the comment; the comment is left
//     untouched.
func (c *commentService) DeleteComment(ctx context.Context, commentID, actorID int64) error {
	if _, err := c.checkOwnership(ctx, commentID, actorID); err != nil {
		return err
	}

	return c.commentRepository.DeleteComment(ctx, commentID)
}

// checkOwnership loads the comment and verifies that actorID authored it.
// Existence is checked before ownership so that a missing comment never
// reports an ownership failure. The loaded comment is returned so callers
// do not have to fetch it again.
func (c *commentService) checkOwnership(ctx context.Context, commentID, actorID int64) (models.Comment, error) {
	log := logger.FromContext(ctx)

	comment, err := c.commentRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		return models.Comment{}, err
	}

	if comment.AuthorID != actorID {
		log.Warn().
			Int64("commentID", commentID).
			Int64("authorID", comment.AuthorID).
			Int64("actorID", actorID).
			Msg("comment mutation denied: actor is not the author")
		return models.Comment{}, ErrNotOwner
	}

	return comment, nil
}
