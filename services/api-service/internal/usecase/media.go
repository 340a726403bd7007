package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/payload"
	"github.com/vasapolrittideah/streamhub-api/shared/apperror"
	"github.com/vasapolrittideah/streamhub-api/shared/provider"
	"github.com/vasapolrittideah/streamhub-api/shared/validation"
)

const defaultImageFolder = "uploads"

// MediaUsecase uploads and deletes assets on the image and video CDNs.
type MediaUsecase interface {
	UploadImage(ctx context.Context, req *payload.UploadImageRequest) (*provider.UploadedImage, error)
	DeleteImage(ctx context.Context, req *payload.DeleteImageRequest) (*payload.MessageResponse, error)
	CreateVideo(ctx context.Context, req *payload.CreateVideoRequest) (*payload.VideoResponse, error)
	DeleteVideo(ctx context.Context, req *payload.DeleteVideoRequest) (*payload.MessageResponse, error)
}

type mediaUsecase struct {
	images    ImageStore
	videos    VideoHost
	validator *validation.Validator
}

func NewMediaUsecase(images ImageStore, videos VideoHost, validator *validation.Validator) MediaUsecase {
	return &mediaUsecase{images: images, videos: videos, validator: validator}
}

func (u *mediaUsecase) UploadImage(ctx context.Context, req *payload.UploadImageRequest) (*provider.UploadedImage, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	if u.images == nil {
		return nil, apperror.Wrap(ErrImageStoreDisabled, "upload image")
	}

	folder := req.Folder
	if folder == "" {
		folder = defaultImageFolder
	}

	image, err := u.images.Upload(ctx, req.File, folder)
	if err != nil {
		return nil, apperror.Wrap(err, "upload image")
	}

	return image, nil
}

func (u *mediaUsecase) DeleteImage(ctx context.Context, req *payload.DeleteImageRequest) (*payload.MessageResponse, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	if u.images == nil {
		return nil, apperror.Wrap(ErrImageStoreDisabled, "delete image")
	}

	if err := u.images.Destroy(ctx, req.PublicID); err != nil {
		return nil, apperror.Wrap(err, "delete image")
	}

	return &payload.MessageResponse{Message: "Image deleted"}, nil
}

// CreateVideo registers an empty video; the client uploads the file directly to the CDN.
func (u *mediaUsecase) CreateVideo(ctx context.Context, req *payload.CreateVideoRequest) (*payload.VideoResponse, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	if u.videos == nil {
		return nil, apperror.Wrap(ErrVideoHostDisabled, "create video")
	}

	title := req.Title
	if title == "" {
		title = "video-" + uuid.NewString()
	}

	video, err := u.videos.CreateVideo(ctx, title)
	if err != nil {
		return nil, apperror.Wrap(err, "create video")
	}

	return &payload.VideoResponse{
		VideoID:   video.GUID,
		LibraryID: video.LibraryID,
		EmbedURL:  u.videos.EmbedURL(video.GUID),
	}, nil
}

func (u *mediaUsecase) DeleteVideo(ctx context.Context, req *payload.DeleteVideoRequest) (*payload.MessageResponse, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	if u.videos == nil {
		return nil, apperror.Wrap(ErrVideoHostDisabled, "delete video")
	}

	if err := u.videos.DeleteVideo(ctx, req.VideoID); err != nil {
		return nil, apperror.Wrap(err, "delete video")
	}

	return &payload.MessageResponse{Message: "Video deleted"}, nil
}
