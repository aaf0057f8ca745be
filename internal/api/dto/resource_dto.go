package dto

// ResourceCategoryDTO 融资资源分类及其文件
type ResourceCategoryDTO struct {
	ID    uint64             `json:"id"`
	Title string             `json:"title"`
	Files []*ResourceFileDTO `json:"files"`
}

type ResourceFileDTO struct {
	ID       uint64 `json:"id"`
	Title    string `json:"title"`
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}

// UploadResultDTO 上传结果
type UploadResultDTO struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}
