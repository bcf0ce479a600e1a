package http

import (
	"context"
	"net/http"

	"publisher-gateway/domain/dto"
	"publisher-gateway/domain/model"
	"publisher-gateway/usecase"

	"github.com/gin-gonic/gin"
)

// IFacebookHandler defines the /api/facebook HTTP handlers
type IFacebookHandler interface {
	// Publishing
	PostText(ctx *gin.Context)
	PostPhoto(ctx *gin.Context)
	PostVideo(ctx *gin.Context)
	PostVideoWithThumbnail(ctx *gin.Context)
	PostMedia(ctx *gin.Context)

	// Analytics
	GetPostIDs(ctx *gin.Context)
	GetPostAnalytics(ctx *gin.Context)
	GetPostsAnalytics(ctx *gin.Context)
}

type FacebookHandler struct {
	publishUsecase   usecase.IFacebookPublishUsecase
	analyticsUsecase usecase.IFacebookAnalyticsUsecase
}

func NewFacebookHandler(publishUsecase usecase.IFacebookPublishUsecase, analyticsUsecase usecase.IFacebookAnalyticsUsecase) IFacebookHandler {
	return &FacebookHandler{
		publishUsecase:   publishUsecase,
		analyticsUsecase: analyticsUsecase,
	}
}

// publishSingle binds T, performs one upstream call and forwards its result.
func publishSingle[T any](ctx *gin.Context, call func(context.Context, *T) (*model.UpstreamResult, error)) {
	var req T
	if err := bindJSON(ctx, &req); err != nil {
		respondBindError(ctx, err)
		return
	}
	res, err := call(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondUpstream(ctx, res)
}

// PostText handles POST /api/facebook/post
func (h *FacebookHandler) PostText(ctx *gin.Context) {
	publishSingle(ctx, h.publishUsecase.PostText)
}

// PostPhoto handles POST /api/facebook/post-photo
func (h *FacebookHandler) PostPhoto(ctx *gin.Context) {
	publishSingle(ctx, h.publishUsecase.PostPhoto)
}

// PostVideo handles POST /api/facebook/post-video
func (h *FacebookHandler) PostVideo(ctx *gin.Context) {
	publishSingle(ctx, h.publishUsecase.PostVideo)
}

// PostVideoWithThumbnail handles POST /api/facebook/post-video-thumbnail
func (h *FacebookHandler) PostVideoWithThumbnail(ctx *gin.Context) {
	publishSingle(ctx, h.publishUsecase.PostVideoWithThumbnail)
}

// PostMedia handles POST /api/facebook/post-media
func (h *FacebookHandler) PostMedia(ctx *gin.Context) {
	var req dto.MediaPostRequest
	if err := bindJSON(ctx, &req); err != nil {
		respondBindError(ctx, err)
		return
	}
	result, err := h.publishUsecase.PostMedia(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	res := result.Result
	switch result.PostType {
	case model.MediaTypeVideo, model.MediaTypePhoto:
		ctx.JSON(res.StatusCode, gin.H{
			"success":   res.OK(),
			"post_type": result.PostType,
			"data":      res.Body,
		})
	case model.MediaTypeCarousel:
		ctx.JSON(res.StatusCode, gin.H{
			"success":      res.OK(),
			"post_type":    result.PostType,
			"photos_count": result.PhotosCount,
			"data":         res.Body,
		})
	case model.MediaTypeVideoWithPhoto:
		if !res.OK() {
			ctx.JSON(res.StatusCode, gin.H{
				"success": false,
				"error":   "Failed to post video",
				"data":    res.Body,
			})
			return
		}
		var comment interface{}
		if result.Comment != nil {
			comment = result.Comment.Body
		}
		ctx.JSON(http.StatusOK, gin.H{
			"success":       true,
			"post_type":     result.PostType,
			"video_post":    res.Body,
			"photo_comment": comment,
		})
	}
}

// GetPostIDs handles GET /api/facebook/post-ids
func (h *FacebookHandler) GetPostIDs(ctx *gin.Context) {
	limit := ctx.DefaultQuery("limit", usecase.DefaultPostIDsLimit)
	list, err := h.analyticsUsecase.ListPostIDs(ctx.Request.Context(), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"total":    len(list.IDs),
		"post_ids": list.IDs,
	})
}

// GetPostAnalytics handles GET /api/facebook/post-analytics/:postId
func (h *FacebookHandler) GetPostAnalytics(ctx *gin.Context) {
	postID := ctx.Param("postId")
	m, err := h.analyticsUsecase.GetPostMetrics(ctx.Request.Context(), postID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"post_id": postID,
		"metrics": gin.H{
			"likes":      m.Likes,
			"comments":   m.Comments,
			"reactions":  m.Reactions,
			"shares":     m.Shares,
			"engagement": m.Engagement,
		},
	})
}

// GetPostsAnalytics handles GET /api/facebook/posts-analytics
func (h *FacebookHandler) GetPostsAnalytics(ctx *gin.Context) {
	limit := ctx.DefaultQuery("limit", usecase.DefaultAnalyticsSize)
	posts, err := h.analyticsUsecase.RankPosts(ctx.Request.Context(), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "posts": posts})
}
