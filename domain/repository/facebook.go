package repository

import (
	"context"

	"publisher-gateway/domain/dto"
	"publisher-gateway/domain/model"
)

// IFacebookGraph defines the Graph API calls the gateway makes. Every method
// returns the upstream status and body as-is; only transport failures surface
// as errors.
type IFacebookGraph interface {
	// Page publishing
	CreateFeedPost(ctx context.Context, payload *dto.GraphFeedPayload) (*model.UpstreamResult, error)
	CreatePhoto(ctx context.Context, payload *dto.GraphPhotoPayload) (*model.UpstreamResult, error)
	CreateVideo(ctx context.Context, payload *dto.GraphVideoPayload) (*model.UpstreamResult, error)
	CreateComment(ctx context.Context, objectID string, payload *dto.GraphCommentPayload) (*model.UpstreamResult, error)

	// Reads
	ListPagePosts(ctx context.Context, limit string) (*model.UpstreamResult, error)
	GetPostEngagement(ctx context.Context, postID string) (*model.UpstreamResult, error)
}
