package dto

// ExploreQueryDTO explore 列表的查询参数
type ExploreQueryDTO struct {
	Page         int    `form:"page"`
	Limit        int    `form:"limit"`
	Industry     string `form:"industry"`
	FundingStage string `form:"funding_stage"`
	Location     string `form:"location"`
	Search       string `form:"search"`
}

type SocialLinksDTO struct {
	Linkedin string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

// StartupCardDTO explore 卡片：缺失字段按公司资料 -> 个人资料 -> 账号信息逐级兜底
type StartupCardDTO struct {
	ID             uint64             `json:"id"` // 对外标识用 user_id
	Name           string             `json:"name"`
	Status         string             `json:"status"`
	Description    string             `json:"description"`
	Funding        string             `json:"funding"`
	Team           string             `json:"team"`
	Founded        string             `json:"founded"`
	Location       string             `json:"location"`
	Website        string             `json:"website"`
	Email          string             `json:"email"`
	Phone          string             `json:"phone"`
	Industry       string             `json:"industry"`
	Mission        string             `json:"mission"`
	Vision         string             `json:"vision"`
	Logo           string             `json:"logo"`
	ProfilePicture string             `json:"profile_picture"`
	Products       []string           `json:"products"`
	Services       []string           `json:"services"`
	SocialLinks    *SocialLinksDTO    `json:"social_links"`
	FullProfile    *StartupProfileDTO `json:"full_profile,omitempty"` // 仅单查时带上
}

type ExploreListDTO struct {
	Startups   []*StartupCardDTO `json:"startups"`
	Pagination *PaginationDTO    `json:"pagination"`
}
