package service

import (
	"context"
	"database/sql"

	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
	"github.com/ndewijer/VibeInvestor-Backend/internal/repository"
)

// UserService handles profiles and subscriptions.
type UserService struct {
	db               *sql.DB
	userRepo         *repository.UserRepository
	assetRepo        *repository.AssetRepository
	postRepo         *repository.PostRepository
	subscriptionRepo *repository.SubscriptionRepository
}

// NewUserService creates a new UserService with the provided repository dependencies.
func NewUserService(
	db *sql.DB,
	userRepo *repository.UserRepository,
	assetRepo *repository.AssetRepository,
	postRepo *repository.PostRepository,
	subscriptionRepo *repository.SubscriptionRepository,
) *UserService {
	return &UserService{
		db:               db,
		userRepo:         userRepo,
		assetRepo:        assetRepo,
		postRepo:         postRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// EnsureUser returns ErrUserNotFound if userID does not exist.
func (s *UserService) EnsureUser(ctx context.Context, userID int64) error {
	_, err := s.userRepo.GetUser(ctx, userID)
	return err
}

// GetProfile returns targetID's public profile as seen by viewerID.
// Returns ErrUserNotFound if the target does not exist.
func (s *UserService) GetProfile(ctx context.Context, viewerID, targetID int64) (model.UserProfile, error) {
	user, err := s.userRepo.GetUser(ctx, targetID)
	if err != nil {
		return model.UserProfile{}, err
	}

	assets, err := s.assetRepo.GetAssets(ctx, targetID)
	if err != nil {
		return model.UserProfile{}, err
	}
	posts, err := s.postRepo.GetPostsByUser(ctx, targetID)
	if err != nil {
		return model.UserProfile{}, err
	}
	subscribed, err := s.subscriptionRepo.IsSubscribed(ctx, viewerID, targetID)
	if err != nil {
		return model.UserProfile{}, err
	}

	return model.UserProfile{
		ID:           user.ID,
		Username:     user.Username,
		Assets:       assets,
		Posts:        posts,
		IsSubscribed: subscribed,
	}, nil
}

// ToggleSubscription makes followerID follow followingID, or stops following.
// Returns ErrUserNotFound if followingID does not exist.
func (s *UserService) ToggleSubscription(ctx context.Context, followerID, followingID int64) (model.ToggleResult, error) {
	if _, err := s.userRepo.GetUser(ctx, followingID); err != nil {
		return model.ToggleResult{}, err
	}

	result := model.ToggleResult{Success: true}
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		subRepo := s.subscriptionRepo.WithTx(tx)

		removed, err := subRepo.DeleteSubscription(ctx, followerID, followingID)
		if err != nil {
			return err
		}
		if removed {
			result.Action = model.ActionUnsubscribed
			return nil
		}

		if err := subRepo.InsertSubscription(ctx, followerID, followingID); err != nil {
			return err
		}
		result.Action = model.ActionSubscribed
		return nil
	})
	if err != nil {
		return model.ToggleResult{}, err
	}
	return result, nil
}
