package service

import (
	"Orion/internal/api/dto"
	"Orion/internal/model"
	"Orion/internal/repository"
	"context"
	"strconv"
	"strings"
)

// ExploreService 创业公司对外展示页：列表卡片 + 单家全量公开资料
type ExploreService interface {
	ListStartups(ctx context.Context, query *dto.ExploreQueryDTO) (*dto.ExploreListDTO, error)
	GetStartup(ctx context.Context, userID uint64) (*dto.StartupCardDTO, error)
}

type exploreServiceImpl struct {
	profileRepo repository.StartupProfileRepo
}

func NewExploreService(profileRepo repository.StartupProfileRepo) ExploreService {
	return &exploreServiceImpl{profileRepo: profileRepo}
}

func (s *exploreServiceImpl) ListStartups(ctx context.Context, query *dto.ExploreQueryDTO) (*dto.ExploreListDTO, error) {
	page := query.Page
	limit := query.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	filter := &repository.ExploreFilter{
		Industry:     query.Industry,
		FundingStage: query.FundingStage,
		Location:     query.Location,
		Search:       query.Search,
	}
	profiles, total, err := s.profileRepo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}

	cards := make([]*dto.StartupCardDTO, 0, len(profiles))
	for _, p := range profiles {
		cards = append(cards, toStartupCardDTO(p, false))
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return &dto.ExploreListDTO{
		Startups: cards,
		Pagination: &dto.PaginationDTO{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *exploreServiceImpl) GetStartup(ctx context.Context, userID uint64) (*dto.StartupCardDTO, error) {
	profile, err := s.profileRepo.GetByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrStartupNotFound
	}
	return toStartupCardDTO(profile, true), nil
}

// toStartupCardDTO 卡片字段按 公司资料 -> 个人资料 -> 账号信息 逐级兜底
func toStartupCardDTO(p *model.StartupProfile, withFullProfile bool) *dto.StartupCardDTO {
	company := p.CompanyDetails
	if company == nil {
		company = &model.CompanyDetails{}
	}
	business := p.BusinessDetails
	if business == nil {
		business = &model.BusinessDetails{}
	}
	personal := p.PersonalInfo
	if personal == nil {
		personal = &model.StartupPersonalInfo{}
	}

	card := &dto.StartupCardDTO{
		ID:             p.UserID,
		Name:           firstNonEmpty(company.CompanyName, p.User.FullName),
		Status:         startupStatus(p),
		Description:    company.CompanyDescription,
		Funding:        firstNonEmpty(business.FundingStage, "Bootstrapped"),
		Team:           firstNonEmpty(business.TeamSize, company.TeamSize, "1-10"),
		Location:       firstNonEmpty(company.CompanyLocation, personal.Location, "Remote"),
		Website:        firstNonEmpty(company.CompanyWebsite, personal.Website),
		Email:          firstNonEmpty(company.CompanyEmail, p.User.Email),
		Phone:          company.CompanyPhone,
		Industry:       firstNonEmpty(company.Industry, business.Industry, "Technology"),
		Mission:        company.Mission,
		Vision:         company.Vision,
		Logo:           company.CompanyLogo,
		ProfilePicture: personal.ProfilePicture,
		Products:       []string{},
		Services:       []string{},
		SocialLinks: &dto.SocialLinksDTO{
			Linkedin: business.LinkedinProfile,
			Twitter:  business.TwitterProfile,
		},
	}

	if company.FoundedYear > 0 {
		card.Founded = strconv.Itoa(company.FoundedYear)
	} else {
		card.Founded = strconv.Itoa(p.CreatedAt.Year())
	}
	if p.Offerings != nil {
		if card.Description == "" {
			card.Description = p.Offerings.ValueProposition
		}
		if p.Offerings.Products != nil {
			card.Products = p.Offerings.Products
		}
		if p.Offerings.Services != nil {
			card.Services = p.Offerings.Services
		}
	}

	if withFullProfile {
		card.FullProfile = toStartupProfileDTO(p)
	}
	return card
}

// startupStatus 展示标签：运营位优先，其次按融资阶段分档
func startupStatus(p *model.StartupProfile) string {
	if p.IsStartupOfTheWeek {
		return "Startup of the Week"
	}
	if p.IsTrending {
		return "Trending"
	}

	stage := ""
	if p.BusinessDetails != nil {
		stage = strings.ToLower(p.BusinessDetails.FundingStage)
	}
	switch {
	case strings.Contains(stage, "series") || strings.Contains(stage, "unicorn"):
		return "Growth Stage"
	case strings.Contains(stage, "pre-seed"):
		return "Seed Funded"
	case strings.Contains(stage, "seed"):
		return "Early Stage"
	}
	return "Rising Star"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
