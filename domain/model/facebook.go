package model

import "encoding/json"

// UpstreamResult is the outcome of a single Graph API call.
type UpstreamResult struct {
	StatusCode int
	// Body is the upstream JSON verbatim, or the raw body encoded as a JSON
	// string when the upstream did not answer with JSON.
	Body json.RawMessage
}

func (r *UpstreamResult) OK() bool {
	return r != nil && r.StatusCode == 200
}

// PostMetrics holds engagement counts for one post.
type PostMetrics struct {
	PostID     string `json:"post_id"`
	Likes      int64  `json:"likes"`
	Comments   int64  `json:"comments"`
	Reactions  int64  `json:"reactions"`
	Shares     int64  `json:"shares"`
	Engagement int64  `json:"engagement"`
}

// NewPostMetrics computes engagement from the four counters.
func NewPostMetrics(postID string, likes, comments, reactions, shares int64) PostMetrics {
	return PostMetrics{
		PostID:     postID,
		Likes:      likes,
		Comments:   comments,
		Reactions:  reactions,
		Shares:     shares,
		Engagement: likes + comments + reactions + shares,
	}
}

type MediaType string

const (
	MediaTypeVideo          MediaType = "video"
	MediaTypePhoto          MediaType = "photo"
	MediaTypeCarousel       MediaType = "carousel"
	MediaTypeVideoWithPhoto MediaType = "video_with_photo"
)

// MediaPostResult carries what the composite media endpoint needs to build
// its envelope.
type MediaPostResult struct {
	PostType MediaType
	// Result is the single call for video/photo, the feed call for carousel,
	// and the video call for video_with_photo.
	Result      *UpstreamResult
	PhotosCount int
	// Comment is nil when no comment was attempted or the comment failed.
	Comment *UpstreamResult
}

// PostIDList is a single page of post identifiers.
type PostIDList struct {
	IDs []string
}
