package usecase_test

import (
	"context"
	"encoding/json"

	"publisher-gateway/domain/dto"
	"publisher-gateway/domain/model"

	"github.com/stretchr/testify/mock"
)

// MockGraph is a call-recording stand-in for the Graph API client.
type MockGraph struct {
	mock.Mock
}

func (m *MockGraph) CreateFeedPost(ctx context.Context, payload *dto.GraphFeedPayload) (*model.UpstreamResult, error) {
	args := m.Called(ctx, payload)
	return resultArg(args), args.Error(1)
}

func (m *MockGraph) CreatePhoto(ctx context.Context, payload *dto.GraphPhotoPayload) (*model.UpstreamResult, error) {
	args := m.Called(ctx, payload)
	return resultArg(args), args.Error(1)
}

func (m *MockGraph) CreateVideo(ctx context.Context, payload *dto.GraphVideoPayload) (*model.UpstreamResult, error) {
	args := m.Called(ctx, payload)
	return resultArg(args), args.Error(1)
}

func (m *MockGraph) CreateComment(ctx context.Context, objectID string, payload *dto.GraphCommentPayload) (*model.UpstreamResult, error) {
	args := m.Called(ctx, objectID, payload)
	return resultArg(args), args.Error(1)
}

func (m *MockGraph) ListPagePosts(ctx context.Context, limit string) (*model.UpstreamResult, error) {
	args := m.Called(ctx, limit)
	return resultArg(args), args.Error(1)
}

func (m *MockGraph) GetPostEngagement(ctx context.Context, postID string) (*model.UpstreamResult, error) {
	args := m.Called(ctx, postID)
	return resultArg(args), args.Error(1)
}

func resultArg(args mock.Arguments) *model.UpstreamResult {
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.UpstreamResult)
}

func upstream(status int, body string) *model.UpstreamResult {
	return &model.UpstreamResult{StatusCode: status, Body: json.RawMessage(body)}
}
