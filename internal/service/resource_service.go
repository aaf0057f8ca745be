package service

import (
	"Orion/internal/api/dto"
	"Orion/internal/model"
	"Orion/internal/pkg/minio"
	"Orion/internal/pkg/util"
	"Orion/internal/repository"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
)

type ResourceService interface {
	ListResources(ctx context.Context) ([]*dto.ResourceCategoryDTO, error)
	UploadResource(ctx context.Context, categoryID uint64, title, fileName string, reader io.Reader, size int64) (*dto.ResourceFileDTO, error)
}

type resourceServiceImpl struct {
	resourceRepo repository.ResourceRepo
}

func NewResourceService(resourceRepo repository.ResourceRepo) ResourceService {
	return &resourceServiceImpl{resourceRepo: resourceRepo}
}

func (s *resourceServiceImpl) ListResources(ctx context.Context) ([]*dto.ResourceCategoryDTO, error) {
	categories, err := s.resourceRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ResourceCategoryDTO, 0, len(categories))
	for _, c := range categories {
		d := &dto.ResourceCategoryDTO{
			ID:    c.ID,
			Title: c.Title,
			Files: make([]*dto.ResourceFileDTO, 0, len(c.Files)),
		}
		for _, f := range c.Files {
			d.Files = append(d.Files, &dto.ResourceFileDTO{
				ID:       f.ID,
				Title:    f.Title,
				FileName: f.FileName,
				URL:      f.URL,
			})
		}
		res = append(res, d)
	}
	return res, nil
}

// UploadResource 上传文件到对象存储并登记到分类下。
// 对象名用 UUID 重命名避免覆盖，原始文件名只做展示用。
func (s *resourceServiceImpl) UploadResource(ctx context.Context, categoryID uint64, title, fileName string, reader io.Reader, size int64) (*dto.ResourceFileDTO, error) {
	contentType, reader, err := util.DetectContentType(fileName, reader)
	if err != nil {
		return nil, err
	}
	if !util.IsAllowedResourceType(contentType) {
		return nil, ErrFileNotSupported
	}

	objectName := fmt.Sprintf("resources/%s%s", uuid.NewString(), filepath.Ext(fileName))
	if _, err = minio.UploadFile(ctx, objectName, reader, size, contentType); err != nil {
		return nil, err
	}

	file := &model.ResourceFile{
		CategoryID: categoryID,
		Title:      title,
		FileName:   fileName,
		URL:        minio.GetPublicURL(objectName),
	}
	if err = s.resourceRepo.CreateFile(ctx, file); err != nil {
		return nil, err
	}

	return &dto.ResourceFileDTO{
		ID:       file.ID,
		Title:    file.Title,
		FileName: file.FileName,
		URL:      file.URL,
	}, nil
}
