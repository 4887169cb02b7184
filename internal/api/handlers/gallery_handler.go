package handlers

import (
	"Restaurant-Management-Backend/domain"
	"Restaurant-Management-Backend/entities"
	"Restaurant-Management-Backend/internal/api/presenters"
	"Restaurant-Management-Backend/pkg/gallery"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GalleryHandler interface {
		AddPost(c *fiber.Ctx) error
		GetPosts(c *fiber.Ctx) error
		UploadImage(c *fiber.Ctx) error
	}

	galleryHandler struct {
		galleryService gallery.GalleryService
		validator      *validator.Validate
	}
)

func NewGalleryHandler(galleryService gallery.GalleryService, validator *validator.Validate) GalleryHandler {
	return &galleryHandler{
		galleryService: galleryService,
		validator:      validator,
	}
}

func (h *galleryHandler) AddPost(c *fiber.Ctx) error {
	req := new(entities.GalleryPost)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.galleryService.AddPost(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddGalleryPost, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *galleryHandler) GetPosts(c *fiber.Ctx) error {
	posts, err := h.galleryService.GetPosts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetGallery, err)
	}
	return presenters.SuccessResponse(c, posts, fiber.StatusOK)
}

func (h *galleryHandler) UploadImage(c *fiber.Ctx) error {
	req := new(domain.UploadGalleryImageRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	imageURL, err := h.galleryService.UploadImage(c.Context(), req.Image)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, domain.UploadGalleryImageResponse{ImageURL: imageURL}, fiber.StatusOK)
}
