package model

import (
	"time"
)

// StudentPersonalInfo 学生资料的个人信息分区，整体以 JSON 列存储
type StudentPersonalInfo struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Website        string `json:"website"`
	ProfilePicture string `json:"profile_picture"`
}

// StudentSkills 技能分区
type StudentSkills struct {
	SelectedSkills []string `json:"selected_skills"`
}

// StudentProfile 学生资料主表。一对一分区存 JSON 列，
// 教育/工作/证书这类多条目分区单独建表，支持按条目增删改。
type StudentProfile struct {
	ID                   uint64               `gorm:"primaryKey"`
	UserID               uint64               `gorm:"not null;uniqueIndex:idx_user_id" json:"user_id"`
	CompletionPercentage int                  `gorm:"not null;default:0" json:"completion_percentage"`
	IsComplete           bool                 `gorm:"type:tinyint(1);not null;default:0" json:"is_complete"`
	PersonalInfo         *StudentPersonalInfo `gorm:"serializer:json;type:json" json:"personal_info"`
	Skills               *StudentSkills       `gorm:"serializer:json;type:json" json:"skills"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`

	User             User              `gorm:"foreignKey:UserID;references:ID"`
	EducationRecords []EducationRecord `gorm:"foreignKey:StudentProfileID;references:ID" json:"education_records"`
	WorkExperiences  []WorkExperience  `gorm:"foreignKey:StudentProfileID;references:ID" json:"work_experiences"`
	Certificates     []Certificate     `gorm:"foreignKey:StudentProfileID;references:ID" json:"certificates"`
}

func (StudentProfile) TableName() string {
	return "student_profiles"
}

type EducationRecord struct {
	ID               uint64    `gorm:"primaryKey" json:"id"`
	StudentProfileID uint64    `gorm:"not null;index:idx_student_profile_id" json:"-"`
	School           string    `gorm:"type:varchar(255);not null" json:"school"`
	Degree           string    `gorm:"type:varchar(100)" json:"degree"`
	FieldOfStudy     string    `gorm:"type:varchar(100)" json:"field_of_study"`
	StartYear        int       `json:"start_year"`
	EndYear          int       `json:"end_year"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (EducationRecord) TableName() string {
	return "education_records"
}

type WorkExperience struct {
	ID               uint64    `gorm:"primaryKey" json:"id"`
	StudentProfileID uint64    `gorm:"not null;index:idx_student_profile_id" json:"-"`
	Company          string    `gorm:"type:varchar(255);not null" json:"company"`
	Title            string    `gorm:"type:varchar(100)" json:"title"`
	Location         string    `gorm:"type:varchar(100)" json:"location"`
	StartDate        string    `gorm:"type:varchar(20)" json:"start_date"`
	EndDate          string    `gorm:"type:varchar(20)" json:"end_date"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (WorkExperience) TableName() string {
	return "work_experiences"
}

type Certificate struct {
	ID               uint64    `gorm:"primaryKey" json:"id"`
	StudentProfileID uint64    `gorm:"not null;index:idx_student_profile_id" json:"-"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	Issuer           string    `gorm:"type:varchar(255)" json:"issuer"`
	IssueDate        string    `gorm:"type:varchar(20)" json:"issue_date"`
	CredentialURL    string    `gorm:"type:varchar(512)" json:"credential_url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Certificate) TableName() string {
	return "certificates"
}
