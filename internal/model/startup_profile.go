package model

import (
	"time"
)

// 创业公司资料的各分区。每个分区整体以 JSON 列存储，
// explore 的筛选字段通过 MySQL 的 JSON 路径表达式查询。

type StartupPersonalInfo struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	Location       string `json:"location"`
	Website        string `json:"website"`
	ProfilePicture string `json:"profile_picture"`
}

type BusinessDetails struct {
	JobTitle        string `json:"job_title"`
	Industry        string `json:"industry"`
	TeamSize        string `json:"team_size"`
	Revenue         string `json:"revenue"`
	FundingStage    string `json:"funding_stage"`
	Experience      string `json:"experience"`
	LinkedinProfile string `json:"linkedin_profile"`
	TwitterProfile  string `json:"twitter_profile"`
}

type CompanyDetails struct {
	CompanyName        string `json:"company_name"`
	CompanyLogo        string `json:"company_logo"`
	CompanyDescription string `json:"company_description"`
	CompanyLocation    string `json:"company_location"`
	CompanyEmail       string `json:"company_email"`
	CompanyPhone       string `json:"company_phone"`
	CompanyWebsite     string `json:"company_website"`
	FoundedYear        int    `json:"founded_year"`
	Industry           string `json:"industry"`
	Vision             string `json:"vision"`
	Mission            string `json:"mission"`
	TeamSize           string `json:"team_size"`
}

type Offerings struct {
	Products             []string `json:"products"`
	Services             []string `json:"services"`
	RevenueStreams       []string `json:"revenue_streams"`
	Partnerships         []string `json:"partnerships"`
	Certifications       []string `json:"certifications"`
	PricingModel         string   `json:"pricing_model"`
	TargetMarket         string   `json:"target_market"`
	CompetitiveAdvantage string   `json:"competitive_advantage"`
	ValueProposition     string   `json:"value_proposition"`
	BusinessModel        string   `json:"business_model"`
}

type Interests struct {
	PrimaryIndustry       string `json:"primary_industry"`
	SecondaryIndustry     string `json:"secondary_industry"`
	PrimaryTargetMarket   string `json:"primary_target_market"`
	GeographicFocus       string `json:"geographic_focus"`
	MarketDescription     string `json:"market_description"`
	PartnershipGoals      string `json:"partnership_goals"`
	InnovationDescription string `json:"innovation_description"`
	FutureGoals           string `json:"future_goals"`
}

type TechnologyInterests struct {
	AiMl               bool   `json:"ai_ml"`
	Blockchain         bool   `json:"blockchain"`
	CloudComputing     bool   `json:"cloud_computing"`
	Cybersecurity      bool   `json:"cybersecurity"`
	Iot                bool   `json:"iot"`
	Fintech            bool   `json:"fintech"`
	Healthtech         bool   `json:"healthtech"`
	Edtech             bool   `json:"edtech"`
	SustainabilityTech bool   `json:"sustainability_tech"`
	OtherTech          string `json:"other_tech"`
}

type PartnershipInterests struct {
	StartupPartnerships     bool `json:"startup_partnerships"`
	EnterprisePartnerships  bool `json:"enterprise_partnerships"`
	ResearchCollaborations  bool `json:"research_collaborations"`
	AcademicPartnerships    bool `json:"academic_partnerships"`
	GovernmentContracts     bool `json:"government_contracts"`
	NonprofitCollaborations bool `json:"nonprofit_collaborations"`
}

type InnovationFocus struct {
	ProductDevelopment       bool `json:"product_development"`
	ProcessInnovation        bool `json:"process_innovation"`
	BusinessModelInnovation  bool `json:"business_model_innovation"`
	SustainabilityInnovation bool `json:"sustainability_innovation"`
	SocialImpact             bool `json:"social_impact"`
	DisruptiveTechnology     bool `json:"disruptive_technology"`
}

type StartupProfile struct {
	ID                   uint64                `gorm:"primaryKey"`
	UserID               uint64                `gorm:"not null;uniqueIndex:idx_user_id" json:"user_id"`
	CompletionPercentage int                   `gorm:"not null;default:0" json:"completion_percentage"`
	IsComplete           bool                  `gorm:"type:tinyint(1);not null;default:0" json:"is_complete"`
	IsTrending           bool                  `gorm:"type:tinyint(1);not null;default:0" json:"is_trending"`
	IsStartupOfTheWeek   bool                  `gorm:"type:tinyint(1);not null;default:0" json:"is_startup_of_the_week"`
	PersonalInfo         *StartupPersonalInfo  `gorm:"serializer:json;type:json" json:"personal_info"`
	BusinessDetails      *BusinessDetails      `gorm:"serializer:json;type:json" json:"business_details"`
	CompanyDetails       *CompanyDetails       `gorm:"serializer:json;type:json" json:"company_details"`
	Offerings            *Offerings            `gorm:"serializer:json;type:json" json:"offerings"`
	Interests            *Interests            `gorm:"serializer:json;type:json" json:"interests"`
	TechnologyInterests  *TechnologyInterests  `gorm:"serializer:json;type:json" json:"technology_interests"`
	PartnershipInterests *PartnershipInterests `gorm:"serializer:json;type:json" json:"partnership_interests"`
	InnovationFocus      *InnovationFocus      `gorm:"serializer:json;type:json" json:"innovation_focus"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (StartupProfile) TableName() string {
	return "startup_profiles"
}
