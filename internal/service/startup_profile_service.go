package service

import (
	"Orion/internal/api/dto"
	"Orion/internal/model"
	"Orion/internal/repository"
	"context"
	"math"

	"github.com/goccy/go-json"
)

// 创业公司资料的分区名（PATCH 路径参数）
const (
	SectionPersonalInfo         = "personal-info"
	SectionBusinessDetails      = "business-details"
	SectionCompanyDetails       = "company-details"
	SectionOfferings            = "offerings"
	SectionInterests            = "interests"
	SectionTechnologyInterests  = "technology-interests"
	SectionPartnershipInterests = "partnership-interests"
	SectionInnovationFocus      = "innovation-focus"
)

type StartupProfileService interface {
	GetProfile(ctx context.Context, userID uint64) (*dto.StartupProfileDTO, error)
	CreateProfile(ctx context.Context, userID uint64) (*dto.StartupProfileDTO, error)
	DeleteProfile(ctx context.Context, userID uint64) error
	GetCompletion(ctx context.Context, userID uint64) (*dto.CompletionDTO, error)
	UpdateSection(ctx context.Context, userID uint64, section string, raw json.RawMessage) (*dto.StartupProfileDTO, error)
}

type startupProfileServiceImpl struct {
	profileRepo repository.StartupProfileRepo
}

func NewStartupProfileService(profileRepo repository.StartupProfileRepo) StartupProfileService {
	return &startupProfileServiceImpl{profileRepo: profileRepo}
}

func (s *startupProfileServiceImpl) GetProfile(ctx context.Context, userID uint64) (*dto.StartupProfileDTO, error) {
	profile, err := s.profileRepo.GetByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return toStartupProfileDTO(profile), nil
}

func (s *startupProfileServiceImpl) CreateProfile(ctx context.Context, userID uint64) (*dto.StartupProfileDTO, error) {
	profile, err := s.ensureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toStartupProfileDTO(profile), nil
}

func (s *startupProfileServiceImpl) DeleteProfile(ctx context.Context, userID uint64) error {
	profile, err := s.profileRepo.GetByUserId(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}
	rows, err := s.profileRepo.Delete(ctx, profile.ID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (s *startupProfileServiceImpl) GetCompletion(ctx context.Context, userID uint64) (*dto.CompletionDTO, error) {
	profile, err := s.profileRepo.GetByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return &dto.CompletionDTO{
		CompletionPercentage: profile.CompletionPercentage,
		IsComplete:           profile.IsComplete,
	}, nil
}

// UpdateSection 按分区名部分更新，未知分区视为参数错误
func (s *startupProfileServiceImpl) UpdateSection(ctx context.Context, userID uint64, section string, raw json.RawMessage) (*dto.StartupProfileDTO, error) {
	profile, err := s.ensureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch section {
	case SectionPersonalInfo:
		profile.PersonalInfo, err = mergeSection(profile.PersonalInfo, raw)
	case SectionBusinessDetails:
		profile.BusinessDetails, err = mergeSection(profile.BusinessDetails, raw)
	case SectionCompanyDetails:
		profile.CompanyDetails, err = mergeSection(profile.CompanyDetails, raw)
	case SectionOfferings:
		profile.Offerings, err = mergeSection(profile.Offerings, raw)
	case SectionInterests:
		profile.Interests, err = mergeSection(profile.Interests, raw)
	case SectionTechnologyInterests:
		profile.TechnologyInterests, err = mergeSection(profile.TechnologyInterests, raw)
	case SectionPartnershipInterests:
		profile.PartnershipInterests, err = mergeSection(profile.PartnershipInterests, raw)
	case SectionInnovationFocus:
		profile.InnovationFocus, err = mergeSection(profile.InnovationFocus, raw)
	default:
		return nil, ErrParamInvalid
	}
	if err != nil {
		return nil, err
	}

	profile.CompletionPercentage = startupCompletion(profile)
	profile.IsComplete = profile.CompletionPercentage == 100
	if err = s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return toStartupProfileDTO(profile), nil
}

func (s *startupProfileServiceImpl) ensureProfile(ctx context.Context, userID uint64) (*model.StartupProfile, error) {
	profile, err := s.profileRepo.GetByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}
	profile = &model.StartupProfile{UserID: userID}
	if err = s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// startupCompletion 五个核心分区（个人/业务/公司/方向/产品服务）填过即计入
func startupCompletion(profile *model.StartupProfile) int {
	sections := []bool{
		profile.PersonalInfo != nil,
		profile.BusinessDetails != nil,
		profile.CompanyDetails != nil,
		profile.Interests != nil,
		profile.Offerings != nil,
	}
	completed := 0
	for _, ok := range sections {
		if ok {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(sections)) * 100))
}

func toStartupProfileDTO(m *model.StartupProfile) *dto.StartupProfileDTO {
	return &dto.StartupProfileDTO{
		ID:                   m.ID,
		UserID:               m.UserID,
		CompletionPercentage: m.CompletionPercentage,
		IsComplete:           m.IsComplete,
		IsTrending:           m.IsTrending,
		IsStartupOfTheWeek:   m.IsStartupOfTheWeek,
		PersonalInfo:         m.PersonalInfo,
		BusinessDetails:      m.BusinessDetails,
		CompanyDetails:       m.CompanyDetails,
		Offerings:            m.Offerings,
		Interests:            m.Interests,
		TechnologyInterests:  m.TechnologyInterests,
		PartnershipInterests: m.PartnershipInterests,
		InnovationFocus:      m.InnovationFocus,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}
