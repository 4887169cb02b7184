package gallery

import (
	"context"
	"mime/multipart"

	"Restaurant-Management-Backend/entities"
	"Restaurant-Management-Backend/internal/utils/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	GalleryService interface {
		AddPost(ctx context.Context, post *entities.GalleryPost) (*mongo.InsertOneResult, error)
		GetPosts(ctx context.Context) ([]entities.GalleryPost, error)
		UploadImage(ctx context.Context, image *multipart.FileHeader) (string, error)
	}

	galleryService struct {
		galleryRepository GalleryRepository
		s3                storage.AwsS3
	}
)

func NewGalleryService(galleryRepository GalleryRepository, s3 storage.AwsS3) GalleryService {
	return &galleryService{
		galleryRepository: galleryRepository,
		s3:                s3,
	}
}

func (s *galleryService) AddPost(ctx context.Context, post *entities.GalleryPost) (*mongo.InsertOneResult, error) {
	return s.galleryRepository.Insert(ctx, post)
}

func (s *galleryService) GetPosts(ctx context.Context) ([]entities.GalleryPost, error) {
	return s.galleryRepository.FindAll(ctx)
}

// UploadImage stores a gallery image in S3 and returns its public URL,
// which the client then embeds in a gallery post.
func (s *galleryService) UploadImage(_ context.Context, image *multipart.FileHeader) (string, error) {
	fileName := uuid.New().String()
	objectKey, err := s.s3.UploadFile(fileName, image, "gallery", storage.AllowImage...)
	if err != nil {
		return "", err
	}
	return s.s3.GetPublicLinkKey(objectKey), nil
}
