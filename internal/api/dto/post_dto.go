package dto

import "time"

// CreatePostDTO 发帖
type CreatePostDTO struct {
	Text      string   `json:"text" binding:"required"`
	Images    []string `json:"images"`
	Documents []string `json:"documents"`
}

// UpdatePostDTO 改帖
type UpdatePostDTO struct {
	Text      string   `json:"text" binding:"required"`
	Images    []string `json:"images"`
	Documents []string `json:"documents"`
	Published *bool    `json:"published"`
}

// PostDTO 信息流中的一条帖子
type PostDTO struct {
	ID        uint64    `json:"id"`
	Text      string    `json:"text"`
	Images    []string  `json:"images"`
	Documents []string  `json:"documents"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author       *AuthorDTO    `json:"author"`
	LikeCount    int           `json:"like_count"`
	LikedUserIds []uint64      `json:"liked_user_ids"`
	Comments     []*CommentDTO `json:"comments,omitempty"`
}

// AuthorDTO 展示用作者信息
type AuthorDTO struct {
	ID       uint64 `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// PostListDTO 帖子分页
type PostListDTO struct {
	Posts      []*PostDTO     `json:"posts"`
	Pagination *PaginationDTO `json:"pagination"`
}

// CreateCommentDTO 评论
type CreateCommentDTO struct {
	Text string `json:"text" binding:"required"`
}

type CommentDTO struct {
	ID        uint64     `json:"id"`
	PostID    uint64     `json:"post_id"`
	Text      string     `json:"text"`
	CreatedAt time.Time  `json:"created_at"`
	Author    *AuthorDTO `json:"author"`
}
