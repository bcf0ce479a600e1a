package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"publisher-gateway/domain/dto"
	"publisher-gateway/domain/model"
	"publisher-gateway/domain/repository"
	"publisher-gateway/infrastructure/logger"
	"publisher-gateway/infrastructure/metrics"

	gojson "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

// Defaults applied by the handlers when the limit query parameter is absent.
// A present limit, even an empty one, is forwarded untouched.
const (
	DefaultPostIDsLimit  = "50"
	DefaultAnalyticsSize = "10"
)

// IFacebookAnalyticsUsecase defines the read-side analytics operations
type IFacebookAnalyticsUsecase interface {
	ListPostIDs(ctx context.Context, limit string) (*model.PostIDList, error)
	GetPostMetrics(ctx context.Context, postID string) (*model.PostMetrics, error)
	RankPosts(ctx context.Context, limit string) ([]model.PostMetrics, error)
}

type facebookAnalyticsUsecase struct {
	graph       repository.IFacebookGraph
	concurrency int
}

// NewFacebookAnalyticsUsecase creates the analytics use case. concurrency
// bounds the per-post metric fetches of RankPosts; 1 keeps them sequential.
func NewFacebookAnalyticsUsecase(graph repository.IFacebookGraph, concurrency int) IFacebookAnalyticsUsecase {
	if concurrency < 1 {
		concurrency = 1
	}
	return &facebookAnalyticsUsecase{graph: graph, concurrency: concurrency}
}

func (u *facebookAnalyticsUsecase) ListPostIDs(ctx context.Context, limit string) (*model.PostIDList, error) {
	res, err := u.graph.ListPagePosts(ctx, limit)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, &GraphAPIError{StatusCode: res.StatusCode, Payload: res.Body}
	}

	var page dto.GraphPostList
	if err := gojson.Unmarshal(res.Body, &page); err != nil {
		return nil, fmt.Errorf("decode post list: %w", err)
	}
	ids := make([]string, 0, len(page.Data))
	for _, p := range page.Data {
		ids = append(ids, p.ID)
	}
	return &model.PostIDList{IDs: ids}, nil
}

// GetPostMetrics fails with a 400 GraphAPIError when the upstream body
// carries an "error" member. Any other non-200 answer yields zero counts.
func (u *facebookAnalyticsUsecase) GetPostMetrics(ctx context.Context, postID string) (*model.PostMetrics, error) {
	res, err := u.graph.GetPostEngagement(ctx, postID)
	if err != nil {
		return nil, err
	}
	if upstreamErr, ok := errorMember(res.Body); ok {
		return nil, &GraphAPIError{StatusCode: 400, Payload: upstreamErr}
	}
	m := metricsFromResult(postID, res)
	return &m, nil
}

// RankPosts lists one page of posts and returns their metrics ordered by
// engagement, highest first. Posts whose metrics cannot be read count as zero.
// Equal engagement keeps the listing order.
func (u *facebookAnalyticsUsecase) RankPosts(ctx context.Context, limit string) ([]model.PostMetrics, error) {
	list, err := u.ListPostIDs(ctx, limit)
	if err != nil {
		return nil, err
	}

	results := make([]model.PostMetrics, len(list.IDs))
	g := new(errgroup.Group)
	g.SetLimit(u.concurrency)
	for i, id := range list.IDs {
		i, id := i, id
		g.Go(func() error {
			results[i] = u.fetchOrZero(ctx, id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Engagement > results[j].Engagement
	})
	return results, nil
}

func (u *facebookAnalyticsUsecase) fetchOrZero(ctx context.Context, postID string) model.PostMetrics {
	res, err := u.graph.GetPostEngagement(ctx, postID)
	if err == nil && res.OK() {
		if _, failed := errorMember(res.Body); !failed {
			return metricsFromResult(postID, res)
		}
	}

	entry := logger.GetLogger().WithField("post_id", postID)
	if err != nil {
		entry = entry.WithField("error", err)
	} else {
		entry = entry.WithField("status", res.StatusCode)
	}
	entry.Warn("Post metrics unavailable, counting as zero")
	metrics.RecordDropped("post_metrics")
	return model.NewPostMetrics(postID, 0, 0, 0, 0)
}

// metricsFromResult reads the counters of a successful engagement read;
// missing edges count as zero.
func metricsFromResult(postID string, res *model.UpstreamResult) model.PostMetrics {
	if !res.OK() {
		return model.NewPostMetrics(postID, 0, 0, 0, 0)
	}
	var e dto.GraphPostEngagement
	if err := gojson.Unmarshal(res.Body, &e); err != nil {
		return model.NewPostMetrics(postID, 0, 0, 0, 0)
	}
	return model.NewPostMetrics(postID,
		e.Likes.Summary.TotalCount,
		e.Comments.Summary.TotalCount,
		e.Reactions.Summary.TotalCount,
		e.Shares.Count,
	)
}

func errorMember(body []byte) (json.RawMessage, bool) {
	var members map[string]json.RawMessage
	if err := gojson.Unmarshal(body, &members); err != nil {
		return nil, false
	}
	v, ok := members["error"]
	return v, ok
}
