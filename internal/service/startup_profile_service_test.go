package service

import (
	"Orion/internal/model"
	"Orion/internal/repository"
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStartupProfileRepo 内存版创业公司资料仓储，List 记录收到的分页参数
type fakeStartupProfileRepo struct {
	mu        sync.Mutex
	profiles  map[uint64]*model.StartupProfile
	nextID    uint64
	lastPage  int
	lastLimit int
}

func newFakeStartupProfileRepo() *fakeStartupProfileRepo {
	return &fakeStartupProfileRepo{profiles: make(map[uint64]*model.StartupProfile)}
}

func (f *fakeStartupProfileRepo) GetByUserId(_ context.Context, userID uint64) (*model.StartupProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeStartupProfileRepo) Create(_ context.Context, profile *model.StartupProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	profile.ID = f.nextID
	stored := *profile
	f.profiles[profile.UserID] = &stored
	return nil
}

func (f *fakeStartupProfileRepo) Save(_ context.Context, profile *model.StartupProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.profiles {
		if p.ID == profile.ID {
			p.PersonalInfo = profile.PersonalInfo
			p.BusinessDetails = profile.BusinessDetails
			p.CompanyDetails = profile.CompanyDetails
			p.Offerings = profile.Offerings
			p.Interests = profile.Interests
			p.TechnologyInterests = profile.TechnologyInterests
			p.PartnershipInterests = profile.PartnershipInterests
			p.InnovationFocus = profile.InnovationFocus
			p.CompletionPercentage = profile.CompletionPercentage
			p.IsComplete = profile.IsComplete
			return nil
		}
	}
	return nil
}

func (f *fakeStartupProfileRepo) Delete(_ context.Context, profileID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for userID, p := range f.profiles {
		if p.ID == profileID {
			delete(f.profiles, userID)
			return 1, nil
		}
	}
	return 0, nil
}

// List 不做真实过滤，只记录分页参数并按建档时间倒序返回全部
func (f *fakeStartupProfileRepo) List(_ context.Context, _ *repository.ExploreFilter, page, limit int) ([]*model.StartupProfile, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPage = page
	f.lastLimit = limit

	profiles := make([]*model.StartupProfile, 0, len(f.profiles))
	for _, p := range f.profiles {
		clone := *p
		profiles = append(profiles, &clone)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].CreatedAt.After(profiles[j].CreatedAt)
	})
	return profiles, int64(len(profiles)), nil
}

// 首次 PATCH 任意分区自动补建主档，并写入该分区
func TestStartupSectionPatchAutoCreatesProfile(t *testing.T) {
	repo := newFakeStartupProfileRepo()
	svc := NewStartupProfileService(repo)
	ctx := context.Background()

	updated, err := svc.UpdateSection(ctx, 1, SectionCompanyDetails, json.RawMessage(`{"company_name":"Orion Labs"}`))
	require.NoError(t, err)
	require.NotNil(t, updated.CompanyDetails)
	assert.Equal(t, "Orion Labs", updated.CompanyDetails.CompanyName)
	assert.Equal(t, 20, updated.CompletionPercentage)
}

// 分区部分更新不抹掉同分区的已有字段
func TestStartupSectionPartialMerge(t *testing.T) {
	repo := newFakeStartupProfileRepo()
	svc := NewStartupProfileService(repo)
	ctx := context.Background()

	_, err := svc.UpdateSection(ctx, 1, SectionBusinessDetails, json.RawMessage(`{"industry":"Fintech","funding_stage":"Seed"}`))
	require.NoError(t, err)

	updated, err := svc.UpdateSection(ctx, 1, SectionBusinessDetails, json.RawMessage(`{"team_size":"11-50"}`))
	require.NoError(t, err)
	assert.Equal(t, "Fintech", updated.BusinessDetails.Industry)
	assert.Equal(t, "Seed", updated.BusinessDetails.FundingStage)
	assert.Equal(t, "11-50", updated.BusinessDetails.TeamSize)
}

func TestStartupSectionUnknownName(t *testing.T) {
	svc := NewStartupProfileService(newFakeStartupProfileRepo())

	_, err := svc.UpdateSection(context.Background(), 1, "no-such-section", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrParamInvalid)
}

// 五个核心分区全部填过才算 100%
func TestStartupCompletionAllCoreSections(t *testing.T) {
	repo := newFakeStartupProfileRepo()
	svc := NewStartupProfileService(repo)
	ctx := context.Background()

	sections := []string{
		SectionPersonalInfo,
		SectionBusinessDetails,
		SectionCompanyDetails,
		SectionInterests,
	}
	for _, section := range sections {
		_, err := svc.UpdateSection(ctx, 1, section, json.RawMessage(`{}`))
		require.NoError(t, err)
	}
	completion, err := svc.GetCompletion(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 80, completion.CompletionPercentage)
	assert.False(t, completion.IsComplete)

	updated, err := svc.UpdateSection(ctx, 1, SectionOfferings, json.RawMessage(`{"value_proposition":"ship faster"}`))
	require.NoError(t, err)
	assert.Equal(t, 100, updated.CompletionPercentage)
	assert.True(t, updated.IsComplete)
}

func TestStartupProfileNotFound(t *testing.T) {
	svc := NewStartupProfileService(newFakeStartupProfileRepo())
	ctx := context.Background()

	_, err := svc.GetProfile(ctx, 9)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	err = svc.DeleteProfile(ctx, 9)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
