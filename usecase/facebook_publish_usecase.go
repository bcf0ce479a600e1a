package usecase

import (
	"context"
	"fmt"
	"strings"

	"publisher-gateway/domain/dto"
	"publisher-gateway/domain/model"
	"publisher-gateway/domain/repository"
	"publisher-gateway/infrastructure/logger"
	"publisher-gateway/infrastructure/metrics"

	gojson "github.com/goccy/go-json"
)

const (
	// MaxCarouselPhotos caps how many images are uploaded for one carousel.
	MaxCarouselPhotos = 10
	// MaxCommentPhotos caps how many image URLs are listed in the photo comment.
	MaxCommentPhotos = 3
)

// IFacebookPublishUsecase defines the page publishing operations
type IFacebookPublishUsecase interface {
	PostText(ctx context.Context, req *dto.TextPostRequest) (*model.UpstreamResult, error)
	PostPhoto(ctx context.Context, req *dto.PhotoPostRequest) (*model.UpstreamResult, error)
	PostVideo(ctx context.Context, req *dto.VideoPostRequest) (*model.UpstreamResult, error)
	PostVideoWithThumbnail(ctx context.Context, req *dto.VideoThumbnailPostRequest) (*model.UpstreamResult, error)
	PostMedia(ctx context.Context, req *dto.MediaPostRequest) (*model.MediaPostResult, error)
}

type facebookPublishUsecase struct {
	graph        repository.IFacebookGraph
	commentLabel string
}

// NewFacebookPublishUsecase creates the publishing use case. commentLabel is
// the first line of the comment attached to video_with_photo posts.
func NewFacebookPublishUsecase(graph repository.IFacebookGraph, commentLabel string) IFacebookPublishUsecase {
	return &facebookPublishUsecase{graph: graph, commentLabel: commentLabel}
}

func (u *facebookPublishUsecase) PostText(ctx context.Context, req *dto.TextPostRequest) (*model.UpstreamResult, error) {
	return u.graph.CreateFeedPost(ctx, &dto.GraphFeedPayload{Message: req.Message, Link: req.Link})
}

func (u *facebookPublishUsecase) PostPhoto(ctx context.Context, req *dto.PhotoPostRequest) (*model.UpstreamResult, error) {
	message := req.Message
	return u.graph.CreatePhoto(ctx, &dto.GraphPhotoPayload{URL: req.ImageURL, Message: &message})
}

func (u *facebookPublishUsecase) PostVideo(ctx context.Context, req *dto.VideoPostRequest) (*model.UpstreamResult, error) {
	title := req.Title
	return u.graph.CreateVideo(ctx, &dto.GraphVideoPayload{
		FileURL:     req.VideoURL,
		Title:       &title,
		Description: req.Description,
	})
}

func (u *facebookPublishUsecase) PostVideoWithThumbnail(ctx context.Context, req *dto.VideoThumbnailPostRequest) (*model.UpstreamResult, error) {
	return u.graph.CreateVideo(ctx, &dto.GraphVideoPayload{
		FileURL:     req.VideoURL,
		Description: req.Caption,
		Thumb:       req.ThumbURL,
	})
}

func (u *facebookPublishUsecase) PostMedia(ctx context.Context, req *dto.MediaPostRequest) (*model.MediaPostResult, error) {
	plan, err := ResolveMediaPlan(req)
	if err != nil {
		return nil, err
	}

	switch p := plan.(type) {
	case VideoPlan:
		res, err := u.createVideo(ctx, p.VideoURL, req.Caption)
		if err != nil {
			return nil, err
		}
		return &model.MediaPostResult{PostType: model.MediaTypeVideo, Result: res}, nil
	case PhotoPlan:
		caption := req.Caption
		res, err := u.graph.CreatePhoto(ctx, &dto.GraphPhotoPayload{URL: p.ImageURL, Message: &caption})
		if err != nil {
			return nil, err
		}
		return &model.MediaPostResult{PostType: model.MediaTypePhoto, Result: res}, nil
	case CarouselPlan:
		return u.postCarousel(ctx, p, req.Caption)
	case VideoWithPhotoPlan:
		return u.postVideoWithPhoto(ctx, p, req.Caption)
	default:
		return nil, fmt.Errorf("unhandled media plan %T", plan)
	}
}

func (u *facebookPublishUsecase) createVideo(ctx context.Context, videoURL, caption string) (*model.UpstreamResult, error) {
	return u.graph.CreateVideo(ctx, &dto.GraphVideoPayload{FileURL: videoURL, Description: caption})
}

// postCarousel uploads up to MaxCarouselPhotos unpublished photos, then
// publishes one feed post attaching every photo that uploaded successfully.
// Failed uploads are skipped.
func (u *facebookPublishUsecase) postCarousel(ctx context.Context, p CarouselPlan, caption string) (*model.MediaPostResult, error) {
	images := p.ImageURLs
	if len(images) > MaxCarouselPhotos {
		images = images[:MaxCarouselPhotos]
	}

	unpublished := false
	attached := make([]dto.GraphAttachedMedia, 0, len(images))
	for _, imageURL := range images {
		res, err := u.graph.CreatePhoto(ctx, &dto.GraphPhotoPayload{URL: imageURL, Published: &unpublished})
		if err != nil || !res.OK() {
			u.dropCarouselPhoto(imageURL, res, err)
			continue
		}
		var created dto.GraphCreatedObject
		if err := gojson.Unmarshal(res.Body, &created); err != nil || created.ID == "" {
			u.dropCarouselPhoto(imageURL, res, err)
			continue
		}
		attached = append(attached, dto.GraphAttachedMedia{MediaFBID: created.ID})
	}

	res, err := u.graph.CreateFeedPost(ctx, &dto.GraphFeedPayload{Message: caption, AttachedMedia: &attached})
	if err != nil {
		return nil, err
	}
	return &model.MediaPostResult{
		PostType:    model.MediaTypeCarousel,
		Result:      res,
		PhotosCount: len(attached),
	}, nil
}

func (u *facebookPublishUsecase) dropCarouselPhoto(imageURL string, res *model.UpstreamResult, err error) {
	entry := logger.GetLogger().WithField("image_url", imageURL)
	if res != nil {
		entry = entry.WithField("status", res.StatusCode)
	}
	if err != nil {
		entry = entry.WithField("error", err)
	}
	entry.Warn("Carousel photo upload failed, skipping")
	metrics.RecordDropped("carousel_photo")
}

// postVideoWithPhoto publishes the video and, when it succeeded, comments the
// first MaxCommentPhotos image URLs under it. The comment outcome never
// changes the overall result.
func (u *facebookPublishUsecase) postVideoWithPhoto(ctx context.Context, p VideoWithPhotoPlan, caption string) (*model.MediaPostResult, error) {
	video, err := u.createVideo(ctx, p.VideoURL, caption)
	if err != nil {
		return nil, err
	}
	if !video.OK() {
		return &model.MediaPostResult{PostType: model.MediaTypeVideoWithPhoto, Result: video}, nil
	}
	if len(p.ImageURLs) == 0 {
		return &model.MediaPostResult{PostType: model.MediaTypeVideo, Result: video}, nil
	}

	result := &model.MediaPostResult{PostType: model.MediaTypeVideoWithPhoto, Result: video}

	var created dto.GraphCreatedObject
	if err := gojson.Unmarshal(video.Body, &created); err != nil || created.ID == "" {
		logger.GetLogger().WithField("error", err).Warn("Video response has no id, skipping photo comment")
		metrics.RecordDropped("photo_comment")
		return result, nil
	}

	comment, err := u.graph.CreateComment(ctx, created.ID, &dto.GraphCommentPayload{
		Message: BuildPhotoComment(u.commentLabel, p.ImageURLs),
	})
	if err != nil || !comment.OK() {
		entry := logger.GetLogger().WithField("video_id", created.ID)
		if err != nil {
			entry = entry.WithField("error", err)
		}
		entry.Warn("Photo comment failed")
		metrics.RecordDropped("photo_comment")
		return result, nil
	}
	result.Comment = comment
	return result, nil
}

// BuildPhotoComment renders the label followed by up to MaxCommentPhotos
// image URLs, one per line.
func BuildPhotoComment(label string, imageURLs []string) string {
	if len(imageURLs) > MaxCommentPhotos {
		imageURLs = imageURLs[:MaxCommentPhotos]
	}
	return label + "\n" + strings.Join(imageURLs, "\n")
}
