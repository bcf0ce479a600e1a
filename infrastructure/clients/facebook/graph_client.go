package facebook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"publisher-gateway/domain/dto"
	"publisher-gateway/domain/model"
	"publisher-gateway/domain/repository"
	"publisher-gateway/infrastructure/logger"
	"publisher-gateway/infrastructure/metrics"

	"github.com/goccy/go-json"
	"github.com/google/go-querystring/query"
	"golang.org/x/oauth2"
)

// EngagementFields requests only the summary counters of each edge.
const EngagementFields = "likes.limit(0).summary(true)," +
	"comments.limit(0).summary(true)," +
	"reactions.limit(0).summary(true)," +
	"shares"

// Config represents Graph API client configuration
type Config struct {
	PageID      string
	AccessToken string
	APIVersion  string
	BaseURL     string
	Timeout     time.Duration
}

// Client calls the Graph API on behalf of a single page.
type Client struct {
	httpClient *http.Client
	baseURL    string
	pageID     string
}

// NewGraphClient creates a Graph API client that authorizes every call with
// the page access token as a bearer token.
func NewGraphClient(ctx context.Context, config *Config) repository.IFacebookGraph {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: config.AccessToken,
		TokenType:   "Bearer",
	})
	httpClient := oauth2.NewClient(ctx, tokenSource)
	httpClient.Timeout = config.Timeout

	return &Client{
		httpClient: httpClient,
		baseURL:    fmt.Sprintf("%s/%s", config.BaseURL, config.APIVersion),
		pageID:     config.PageID,
	}
}

func (c *Client) CreateFeedPost(ctx context.Context, payload *dto.GraphFeedPayload) (*model.UpstreamResult, error) {
	return c.invoke(ctx, "create_feed_post", http.MethodPost, c.pagePath("feed"), nil, payload)
}

func (c *Client) CreatePhoto(ctx context.Context, payload *dto.GraphPhotoPayload) (*model.UpstreamResult, error) {
	return c.invoke(ctx, "create_photo", http.MethodPost, c.pagePath("photos"), nil, payload)
}

func (c *Client) CreateVideo(ctx context.Context, payload *dto.GraphVideoPayload) (*model.UpstreamResult, error) {
	return c.invoke(ctx, "create_video", http.MethodPost, c.pagePath("videos"), nil, payload)
}

func (c *Client) CreateComment(ctx context.Context, objectID string, payload *dto.GraphCommentPayload) (*model.UpstreamResult, error) {
	path := fmt.Sprintf("/%s/comments", url.PathEscape(objectID))
	return c.invoke(ctx, "create_comment", http.MethodPost, path, nil, payload)
}

// ListPagePosts reads one page of post ids. limit is forwarded untouched.
func (c *Client) ListPagePosts(ctx context.Context, limit string) (*model.UpstreamResult, error) {
	q := &dto.GraphListQuery{Fields: "id", Limit: limit}
	return c.invoke(ctx, "list_page_posts", http.MethodGet, c.pagePath("posts"), q, nil)
}

func (c *Client) GetPostEngagement(ctx context.Context, postID string) (*model.UpstreamResult, error) {
	q := &dto.GraphFieldsQuery{Fields: EngagementFields}
	return c.invoke(ctx, "get_post_engagement", http.MethodGet, "/"+url.PathEscape(postID), q, nil)
}

func (c *Client) pagePath(edge string) string {
	return fmt.Sprintf("/%s/%s", url.PathEscape(c.pageID), edge)
}

// invoke performs one Graph API call. Non-2xx statuses are not errors; they
// are returned to the caller to forward.
func (c *Client) invoke(ctx context.Context, operation, method, path string, q interface{}, payload interface{}) (*model.UpstreamResult, error) {
	endpoint := c.baseURL + path
	if q != nil {
		values, err := query.Values(q)
		if err != nil {
			return nil, fmt.Errorf("encode %s query: %w", operation, err)
		}
		endpoint += "?" + values.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", operation, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(operation, 0, time.Since(start))
		return nil, fmt.Errorf("%s request: %w", operation, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	metrics.RecordUpstreamRequest(operation, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", operation, err)
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"operation": operation,
		"method":    method,
		"path":      path,
		"status":    resp.StatusCode,
	}).Debug("Graph API call completed")

	return &model.UpstreamResult{StatusCode: resp.StatusCode, Body: normalizeBody(respBody)}, nil
}

func normalizeBody(raw []byte) []byte {
	if json.Valid(raw) {
		return raw
	}
	wrapped, _ := json.Marshal(string(raw))
	return wrapped
}
