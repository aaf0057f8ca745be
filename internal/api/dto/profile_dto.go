package dto

import (
	"Orion/internal/model"
	"time"
)

// StudentProfileDTO 学生资料全量视图
type StudentProfileDTO struct {
	ID                   uint64                     `json:"id"`
	UserID               uint64                     `json:"user_id"`
	CompletionPercentage int                        `json:"completion_percentage"`
	IsComplete           bool                       `json:"is_complete"`
	PersonalInfo         *model.StudentPersonalInfo `json:"personal_info"`
	Skills               *model.StudentSkills       `json:"skills"`
	EducationRecords     []model.EducationRecord    `json:"education_records"`
	WorkExperiences      []model.WorkExperience     `json:"work_experiences"`
	Certificates         []model.Certificate        `json:"certificates"`
	CreatedAt            time.Time                  `json:"created_at"`
	UpdatedAt            time.Time                  `json:"updated_at"`
}

// StartupProfileDTO 创业公司资料全量视图（私有，给本人编辑页用）
type StartupProfileDTO struct {
	ID                   uint64                      `json:"id"`
	UserID               uint64                      `json:"user_id"`
	CompletionPercentage int                         `json:"completion_percentage"`
	IsComplete           bool                        `json:"is_complete"`
	IsTrending           bool                        `json:"is_trending"`
	IsStartupOfTheWeek   bool                        `json:"is_startup_of_the_week"`
	PersonalInfo         *model.StartupPersonalInfo  `json:"personal_info"`
	BusinessDetails      *model.BusinessDetails      `json:"business_details"`
	CompanyDetails       *model.CompanyDetails       `json:"company_details"`
	Offerings            *model.Offerings            `json:"offerings"`
	Interests            *model.Interests            `json:"interests"`
	TechnologyInterests  *model.TechnologyInterests  `json:"technology_interests"`
	PartnershipInterests *model.PartnershipInterests `json:"partnership_interests"`
	InnovationFocus      *model.InnovationFocus      `json:"innovation_focus"`
	CreatedAt            time.Time                   `json:"created_at"`
	UpdatedAt            time.Time                   `json:"updated_at"`
}

// CompletionDTO 资料完整度
type CompletionDTO struct {
	CompletionPercentage int  `json:"completion_percentage"`
	IsComplete           bool `json:"is_complete"`
}

type EducationRecordDTO struct {
	School       string `json:"school" binding:"required,max=255"`
	Degree       string `json:"degree" binding:"max=100"`
	FieldOfStudy string `json:"field_of_study" binding:"max=100"`
	StartYear    int    `json:"start_year"`
	EndYear      int    `json:"end_year"`
	Description  string `json:"description"`
}

type WorkExperienceDTO struct {
	Company     string `json:"company" binding:"required,max=255"`
	Title       string `json:"title" binding:"max=100"`
	Location    string `json:"location" binding:"max=100"`
	StartDate   string `json:"start_date" binding:"max=20"`
	EndDate     string `json:"end_date" binding:"max=20"`
	Description string `json:"description"`
}

type CertificateDTO struct {
	Name          string `json:"name" binding:"required,max=255"`
	Issuer        string `json:"issuer" binding:"max=255"`
	IssueDate     string `json:"issue_date" binding:"max=20"`
	CredentialURL string `json:"credential_url" binding:"omitempty,url"`
}
