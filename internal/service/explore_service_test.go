package service

import (
	"Orion/internal/api/dto"
	"Orion/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 状态标签：运营位压过融资档位，pre-seed 不落进 seed 档
func TestStartupStatusBuckets(t *testing.T) {
	stage := func(s string) *model.StartupProfile {
		return &model.StartupProfile{BusinessDetails: &model.BusinessDetails{FundingStage: s}}
	}

	assert.Equal(t, "Startup of the Week", startupStatus(&model.StartupProfile{
		IsStartupOfTheWeek: true,
		IsTrending:         true,
	}))
	assert.Equal(t, "Trending", startupStatus(&model.StartupProfile{IsTrending: true}))
	assert.Equal(t, "Growth Stage", startupStatus(stage("Series A")))
	assert.Equal(t, "Growth Stage", startupStatus(stage("Unicorn")))
	assert.Equal(t, "Seed Funded", startupStatus(stage("Pre-Seed")))
	assert.Equal(t, "Early Stage", startupStatus(stage("Seed")))
	assert.Equal(t, "Rising Star", startupStatus(stage("")))
	assert.Equal(t, "Rising Star", startupStatus(&model.StartupProfile{}))
}

// 分区全空时卡片从账号信息和默认值兜底，切片字段保持非 nil
func TestStartupCardFallbacks(t *testing.T) {
	repo := newFakeStartupProfileRepo()
	require.NoError(t, repo.Create(context.Background(), &model.StartupProfile{
		UserID:    7,
		CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		User:      model.User{FullName: "Grace Hopper", Email: "grace@example.com"},
	}))
	svc := NewExploreService(repo)

	card, err := svc.GetStartup(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), card.ID)
	assert.Equal(t, "Grace Hopper", card.Name)
	assert.Equal(t, "grace@example.com", card.Email)
	assert.Equal(t, "Bootstrapped", card.Funding)
	assert.Equal(t, "1-10", card.Team)
	assert.Equal(t, "Remote", card.Location)
	assert.Equal(t, "Technology", card.Industry)
	assert.Equal(t, "2024", card.Founded)
	assert.Equal(t, "Rising Star", card.Status)
	assert.NotNil(t, card.Products)
	assert.NotNil(t, card.Services)
	require.NotNil(t, card.FullProfile)
	assert.Equal(t, uint64(7), card.FullProfile.UserID)
}

// 公司资料优先，缺口由描述/价值主张补位
func TestStartupCardCompanyFieldsWin(t *testing.T) {
	repo := newFakeStartupProfileRepo()
	require.NoError(t, repo.Create(context.Background(), &model.StartupProfile{
		UserID: 7,
		User:   model.User{FullName: "Grace Hopper", Email: "grace@example.com"},
		CompanyDetails: &model.CompanyDetails{
			CompanyName: "Orion Labs",
			FoundedYear: 2019,
			Industry:    "Aerospace",
		},
		BusinessDetails: &model.BusinessDetails{FundingStage: "Series B", TeamSize: "11-50"},
		Offerings:       &model.Offerings{ValueProposition: "ship faster", Products: []string{"telemetry"}},
	}))
	svc := NewExploreService(repo)

	card, err := svc.GetStartup(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Orion Labs", card.Name)
	assert.Equal(t, "Series B", card.Funding)
	assert.Equal(t, "11-50", card.Team)
	assert.Equal(t, "Aerospace", card.Industry)
	assert.Equal(t, "2019", card.Founded)
	assert.Equal(t, "ship faster", card.Description)
	assert.Equal(t, []string{"telemetry"}, card.Products)
	assert.Equal(t, "Growth Stage", card.Status)
}

// 越界分页参数收敛到默认值
func TestExploreListClampsPagination(t *testing.T) {
	repo := newFakeStartupProfileRepo()
	require.NoError(t, repo.Create(context.Background(), &model.StartupProfile{UserID: 1}))
	svc := NewExploreService(repo)

	list, err := svc.ListStartups(context.Background(), &dto.ExploreQueryDTO{Page: 0, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.lastPage)
	assert.Equal(t, 20, repo.lastLimit)
	assert.Equal(t, int64(1), list.Pagination.Total)
	assert.Equal(t, int64(1), list.Pagination.TotalPages)
	require.Len(t, list.Startups, 1)
	// 列表卡片不带全量资料
	assert.Nil(t, list.Startups[0].FullProfile)
}

func TestExploreGetStartupNotFound(t *testing.T) {
	svc := NewExploreService(newFakeStartupProfileRepo())

	_, err := svc.GetStartup(context.Background(), 42)
	assert.ErrorIs(t, err, ErrStartupNotFound)
}
