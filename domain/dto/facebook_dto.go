package dto

// TextPostRequest is the body of POST /api/facebook/post.
type TextPostRequest struct {
	Message string `json:"message" binding:"required"`
	Link    string `json:"link"`
}

// PhotoPostRequest is the body of POST /api/facebook/post-photo.
type PhotoPostRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
	Message  string `json:"message"`
}

// VideoPostRequest is the body of POST /api/facebook/post-video.
type VideoPostRequest struct {
	VideoURL    string `json:"video_url" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// VideoThumbnailPostRequest is the body of POST /api/facebook/post-video-thumbnail.
type VideoThumbnailPostRequest struct {
	VideoURL string `json:"video_url" binding:"required"`
	ThumbURL string `json:"thumb_url"`
	Caption  string `json:"caption"`
}

// MediaPostRequest is the body of POST /api/facebook/post-media. A nil
// PostType means the key was absent and resolves to "auto".
type MediaPostRequest struct {
	VideoURL  string   `json:"video_url"`
	ImageURLs []string `json:"image_urls"`
	Caption   string   `json:"caption"`
	PostType  *string  `json:"post_type"`
}

// Graph API payloads. Optional fields are pointers so that an absent value is
// omitted from the request rather than sent empty.

type GraphFeedPayload struct {
	Message       string               `json:"message"`
	Link          string               `json:"link,omitempty"`
	// AttachedMedia is set only for carousels, where it is sent even when empty.
	AttachedMedia *[]GraphAttachedMedia `json:"attached_media,omitempty"`
}

type GraphAttachedMedia struct {
	MediaFBID string `json:"media_fbid"`
}

type GraphPhotoPayload struct {
	URL       string  `json:"url"`
	Message   *string `json:"message,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

type GraphVideoPayload struct {
	FileURL     string  `json:"file_url"`
	Title       *string `json:"title,omitempty"`
	Description string  `json:"description"`
	Thumb       string  `json:"thumb,omitempty"`
}

type GraphCommentPayload struct {
	Message string `json:"message"`
}

// GraphFieldsQuery selects fields on a node read.
type GraphFieldsQuery struct {
	Fields string `url:"fields"`
}

// GraphListQuery selects fields on an edge read. Limit is sent even when empty.
type GraphListQuery struct {
	Fields string `url:"fields"`
	Limit  string `url:"limit"`
}

// GraphCreatedObject is the part of a create response the gateway reads.
type GraphCreatedObject struct {
	ID string `json:"id"`
}

// GraphPostList is the page of posts returned by /{page}/posts.
type GraphPostList struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

type graphSummaryEdge struct {
	Summary struct {
		TotalCount int64 `json:"total_count"`
	} `json:"summary"`
}

// GraphPostEngagement is the field-selected read of a post's counters.
type GraphPostEngagement struct {
	Likes     graphSummaryEdge `json:"likes"`
	Comments  graphSummaryEdge `json:"comments"`
	Reactions graphSummaryEdge `json:"reactions"`
	Shares    struct {
		Count int64 `json:"count"`
	} `json:"shares"`
}
