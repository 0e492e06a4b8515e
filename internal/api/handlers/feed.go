package handlers

import (
	"net/http"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/request"
	"github.com/ndewijer/VibeInvestor-Backend/internal/api/response"
	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/service"
	"github.com/ndewijer/VibeInvestor-Backend/internal/validation"
)

// FeedHandler handles social feed HTTP requests: posts, comments, reactions
// and saved ideas.
type FeedHandler struct {
	feedService *service.FeedService
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
	}
}

// Feed returns the assembled feed, newest first.
//
// Endpoint: GET /api/feed?filter=all|subscriptions
// Response: 200 OK with array of FeedPost. Each post carries exactly one
// reaction summary per type in the order like, handshake, horror.
func (h *FeedHandler) Feed(w http.ResponseWriter, r *http.Request) {
	posts, err := h.feedService.GetFeed(r.Context(), currentUser(r), r.URL.Query().Get("filter"))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveFeed)
		return
	}
	response.RespondJSON(w, http.StatusOK, posts)
}

// CreatePost publishes a post.
//
// Endpoint: POST /api/posts
// Request Body: request.CreatePostRequest
// Response: 201 Created with {"id": <post id>}
func (h *FeedHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePostRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := validation.ValidateCreatePost(req); err != nil {
		respondValidation(w, err)
		return
	}

	post, err := h.feedService.CreatePost(r.Context(), currentUser(r), req)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToCreatePost)
		return
	}
	response.RespondJSON(w, http.StatusCreated, map[string]int64{"id": post.ID})
}

// CreateComment adds a comment to a post.
//
// Endpoint: POST /api/posts/{id}/comments
// Response: 201 Created with {"id": <comment id>}
// Error: 404 Not Found if the post does not exist
func (h *FeedHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidID.Error(), err.Error())
		return
	}
	req, err := parseJSON[request.CreateCommentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := validation.ValidateCreateComment(req); err != nil {
		respondValidation(w, err)
		return
	}

	comment, err := h.feedService.CreateComment(r.Context(), currentUser(r), postID, req)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToCreateComment)
		return
	}
	response.RespondJSON(w, http.StatusCreated, map[string]int64{"id": comment.ID})
}

// ToggleReaction adds the viewer's reaction of the given type or removes it
// if present.
//
// Endpoint: POST /api/posts/{id}/reactions
// Request Body: {"type": "like"|"handshake"|"horror"}
// Response: 200 OK with {"success": true, "action": "added"|"removed"}
func (h *FeedHandler) ToggleReaction(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidID.Error(), err.Error())
		return
	}
	req, err := parseJSON[request.ToggleReactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := validation.ValidateReaction(req); err != nil {
		respondValidation(w, err)
		return
	}

	result, err := h.feedService.ToggleReaction(r.Context(), currentUser(r), postID, req.Type)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToToggleReaction)
		return
	}
	response.RespondJSON(w, http.StatusOK, result)
}

// ToggleSave bookmarks a post or removes the bookmark.
//
// Endpoint: POST /api/posts/{id}/save
// Response: 200 OK with {"success": true, "action": "saved"|"unsaved"}
func (h *FeedHandler) ToggleSave(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidID.Error(), err.Error())
		return
	}

	result, err := h.feedService.ToggleSavedIdea(r.Context(), currentUser(r), postID)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToToggleSavedIdea)
		return
	}
	response.RespondJSON(w, http.StatusOK, result)
}

// SavedIdeas lists bookmarked posts, most recently saved first.
//
// Endpoint: GET /api/saved-ideas
func (h *FeedHandler) SavedIdeas(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.feedService.GetSavedIdeas(r.Context(), currentUser(r))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveSavedIdeas)
		return
	}
	response.RespondJSON(w, http.StatusOK, ideas)
}
