package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/request"
	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
	"github.com/ndewijer/VibeInvestor-Backend/internal/repository"
)

// FeedService handles the social feed: posts, comments, reactions and saved ideas.
type FeedService struct {
	db            *sql.DB
	postRepo      *repository.PostRepository
	reactionRepo  *repository.ReactionRepository
	savedIdeaRepo *repository.SavedIdeaRepository
}

// NewFeedService creates a new FeedService with the provided repository dependencies.
func NewFeedService(
	db *sql.DB,
	postRepo *repository.PostRepository,
	reactionRepo *repository.ReactionRepository,
	savedIdeaRepo *repository.SavedIdeaRepository,
) *FeedService {
	return &FeedService{
		db:            db,
		postRepo:      postRepo,
		reactionRepo:  reactionRepo,
		savedIdeaRepo: savedIdeaRepo,
	}
}

// GetFeed assembles the feed for viewerID, newest first. filter
// "subscriptions" restricts it to followed authors; any other value means all.
// Every post carries its comments (oldest first), a reaction summary with all
// three types in fixed order and the viewer's saved flag.
func (s *FeedService) GetFeed(ctx context.Context, viewerID int64, filter string) ([]model.FeedPost, error) {
	posts, err := s.postRepo.GetFeedPosts(ctx, viewerID, filter == model.FeedFilterSubscriptions)
	if err != nil {
		return nil, err
	}

	postIDs := make([]int64, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	comments, err := s.postRepo.GetCommentsForPosts(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	stats, err := s.reactionRepo.GetReactionStats(ctx, postIDs, viewerID)
	if err != nil {
		return nil, err
	}
	saved, err := s.savedIdeaRepo.GetSavedPostIDs(ctx, viewerID, postIDs)
	if err != nil {
		return nil, err
	}

	feed := make([]model.FeedPost, len(posts))
	for i, p := range posts {
		postComments := comments[p.ID]
		if postComments == nil {
			postComments = []model.Comment{}
		}
		feed[i] = model.FeedPost{
			Post:      p,
			Comments:  postComments,
			Reactions: completeReactions(stats[p.ID]),
			Saved:     saved[p.ID],
		}
	}
	return feed, nil
}

// completeReactions returns like, handshake, horror in that order, filling
// types without rows with a zero count.
func completeReactions(stats []model.ReactionSummary) []model.ReactionSummary {
	byType := make(map[string]model.ReactionSummary, len(stats))
	for _, s := range stats {
		byType[s.Type] = s
	}

	out := make([]model.ReactionSummary, len(model.ReactionTypes))
	for i, t := range model.ReactionTypes {
		if s, ok := byType[t]; ok {
			out[i] = s
			continue
		}
		out[i] = model.ReactionSummary{Type: t}
	}
	return out
}

// CreatePost publishes a post for userID.
func (s *FeedService) CreatePost(ctx context.Context, userID int64, req request.CreatePostRequest) (model.Post, error) {
	post := model.Post{
		UserID:       userID,
		Content:      req.Content,
		IsTradeShare: req.IsTradeShare,
		TradeID:      req.TradeID,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	if err := s.postRepo.InsertPost(ctx, &post); err != nil {
		return model.Post{}, err
	}
	return post, nil
}

// CreateComment adds a comment by userID to postID.
// Returns ErrPostNotFound if the post does not exist.
func (s *FeedService) CreateComment(ctx context.Context, userID, postID int64, req request.CreateCommentRequest) (model.Comment, error) {
	comment := model.Comment{
		PostID:    postID,
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		postRepo := s.postRepo.WithTx(tx)
		if err := postRepo.EnsurePost(ctx, postID); err != nil {
			return err
		}
		return postRepo.InsertComment(ctx, &comment)
	})
	if err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

// ToggleReaction adds the reaction if absent, otherwise removes it, in one
// transaction. Returns ErrPostNotFound if the post does not exist.
func (s *FeedService) ToggleReaction(ctx context.Context, userID, postID int64, reactionType string) (model.ToggleResult, error) {
	result := model.ToggleResult{Success: true}

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.postRepo.WithTx(tx).EnsurePost(ctx, postID); err != nil {
			return err
		}
		reactionRepo := s.reactionRepo.WithTx(tx)

		removed, err := reactionRepo.DeleteReaction(ctx, postID, userID, reactionType)
		if err != nil {
			return err
		}
		if removed {
			result.Action = model.ActionRemoved
			return nil
		}

		if err := reactionRepo.InsertReaction(ctx, postID, userID, reactionType); err != nil {
			return err
		}
		result.Action = model.ActionAdded
		return nil
	})
	if err != nil {
		return model.ToggleResult{}, err
	}
	return result, nil
}

// ToggleSavedIdea bookmarks postID for userID, or removes the bookmark.
// Returns ErrPostNotFound if the post does not exist.
func (s *FeedService) ToggleSavedIdea(ctx context.Context, userID, postID int64) (model.ToggleResult, error) {
	result := model.ToggleResult{Success: true}

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.postRepo.WithTx(tx).EnsurePost(ctx, postID); err != nil {
			return err
		}
		savedRepo := s.savedIdeaRepo.WithTx(tx)

		removed, err := savedRepo.DeleteSavedIdea(ctx, userID, postID)
		if err != nil {
			return err
		}
		if removed {
			result.Action = model.ActionUnsaved
			return nil
		}

		if err := savedRepo.InsertSavedIdea(ctx, userID, postID, time.Now()); err != nil {
			return err
		}
		result.Action = model.ActionSaved
		return nil
	})
	if err != nil {
		return model.ToggleResult{}, err
	}
	return result, nil
}

// GetSavedIdeas lists the posts userID bookmarked, most recently saved first.
func (s *FeedService) GetSavedIdeas(ctx context.Context, userID int64) ([]model.SavedIdea, error) {
	return s.savedIdeaRepo.GetSavedIdeas(ctx, userID)
}
