package usecase

import (
	"publisher-gateway/domain/dto"
	"publisher-gateway/domain/model"
)

const postTypeAuto = "auto"

// MediaPlan is the resolved shape of a composite media post. The concrete
// types below are the only implementations.
type MediaPlan interface {
	Type() model.MediaType
	isMediaPlan()
}

type VideoPlan struct {
	VideoURL string
}

type PhotoPlan struct {
	ImageURL string
}

type CarouselPlan struct {
	ImageURLs []string
}

type VideoWithPhotoPlan struct {
	VideoURL  string
	ImageURLs []string
}

func (VideoPlan) Type() model.MediaType          { return model.MediaTypeVideo }
func (PhotoPlan) Type() model.MediaType          { return model.MediaTypePhoto }
func (CarouselPlan) Type() model.MediaType       { return model.MediaTypeCarousel }
func (VideoWithPhotoPlan) Type() model.MediaType { return model.MediaTypeVideoWithPhoto }

func (VideoPlan) isMediaPlan()          {}
func (PhotoPlan) isMediaPlan()          {}
func (CarouselPlan) isMediaPlan()       {}
func (VideoWithPhotoPlan) isMediaPlan() {}

// ResolveMediaPlan picks the sub-flow for a composite media request. With
// post_type "auto" (or absent) the priority is video+images, video, two or
// more images, one image. An explicit empty post_type is invalid.
func ResolveMediaPlan(req *dto.MediaPostRequest) (MediaPlan, error) {
	postType := postTypeAuto
	if req.PostType != nil {
		postType = *req.PostType
	}
	hasVideo := req.VideoURL != ""
	images := req.ImageURLs

	if postType == postTypeAuto {
		switch {
		case hasVideo && len(images) > 0:
			return VideoWithPhotoPlan{VideoURL: req.VideoURL, ImageURLs: images}, nil
		case hasVideo:
			return VideoPlan{VideoURL: req.VideoURL}, nil
		case len(images) > 1:
			return CarouselPlan{ImageURLs: images}, nil
		case len(images) == 1:
			return PhotoPlan{ImageURL: images[0]}, nil
		default:
			return nil, newValidationError("No media provided")
		}
	}

	switch model.MediaType(postType) {
	case model.MediaTypeVideo:
		if !hasVideo {
			return nil, newValidationError("video_url required")
		}
		return VideoPlan{VideoURL: req.VideoURL}, nil
	case model.MediaTypePhoto:
		if len(images) == 0 {
			return nil, newValidationError("image_urls required")
		}
		return PhotoPlan{ImageURL: images[0]}, nil
	case model.MediaTypeCarousel:
		if len(images) == 0 {
			return nil, newValidationError("image_urls required")
		}
		return CarouselPlan{ImageURLs: images}, nil
	case model.MediaTypeVideoWithPhoto:
		if !hasVideo {
			return nil, newValidationError("video_url required")
		}
		return VideoWithPhotoPlan{VideoURL: req.VideoURL, ImageURLs: images}, nil
	default:
		return nil, newValidationError("Invalid post_type")
	}
}
