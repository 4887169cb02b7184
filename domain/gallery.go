package domain

import "mime/multipart"

var (
	MessageFailedAddGalleryPost = "failed to add gallery post"
	MessageFailedGetGallery     = "failed to retrieve gallery"
	MessageFailedUploadImage    = "failed to upload gallery image"
)

type (
	UploadGalleryImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UploadGalleryImageResponse struct {
		ImageURL string `json:"image_url"`
	}
)
