package service

import (
	"Orion/internal/api/dto"
	"Orion/internal/model"
	"context"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStudentProfileRepo 内存版学生资料仓储，条目按所属资料分桶存放
type fakeStudentProfileRepo struct {
	mu        sync.Mutex
	profiles  map[uint64]*model.StudentProfile
	education map[uint64][]model.EducationRecord
	work      map[uint64][]model.WorkExperience
	certs     map[uint64][]model.Certificate
	nextID    uint64
}

func newFakeStudentProfileRepo() *fakeStudentProfileRepo {
	return &fakeStudentProfileRepo{
		profiles:  make(map[uint64]*model.StudentProfile),
		education: make(map[uint64][]model.EducationRecord),
		work:      make(map[uint64][]model.WorkExperience),
		certs:     make(map[uint64][]model.Certificate),
	}
}

func (f *fakeStudentProfileRepo) GetByUserId(_ context.Context, userID uint64) (*model.StudentProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	clone := *p
	clone.EducationRecords = append([]model.EducationRecord(nil), f.education[p.ID]...)
	clone.WorkExperiences = append([]model.WorkExperience(nil), f.work[p.ID]...)
	clone.Certificates = append([]model.Certificate(nil), f.certs[p.ID]...)
	return &clone, nil
}

func (f *fakeStudentProfileRepo) Create(_ context.Context, profile *model.StudentProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	profile.ID = f.nextID
	stored := *profile
	f.profiles[profile.UserID] = &stored
	return nil
}

func (f *fakeStudentProfileRepo) Save(_ context.Context, profile *model.StudentProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.profiles {
		if p.ID == profile.ID {
			p.PersonalInfo = profile.PersonalInfo
			p.Skills = profile.Skills
			p.CompletionPercentage = profile.CompletionPercentage
			p.IsComplete = profile.IsComplete
			return nil
		}
	}
	return nil
}

func (f *fakeStudentProfileRepo) Delete(_ context.Context, profileID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for userID, p := range f.profiles {
		if p.ID == profileID {
			delete(f.profiles, userID)
			delete(f.education, profileID)
			delete(f.work, profileID)
			delete(f.certs, profileID)
			return nil
		}
	}
	return nil
}

func (f *fakeStudentProfileRepo) AddEducation(_ context.Context, record *model.EducationRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	record.ID = f.nextID
	f.education[record.StudentProfileID] = append(f.education[record.StudentProfileID], *record)
	return nil
}

func (f *fakeStudentProfileRepo) UpdateEducation(_ context.Context, record *model.EducationRecord) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	records := f.education[record.StudentProfileID]
	for i := range records {
		if records[i].ID == record.ID {
			records[i] = *record
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStudentProfileRepo) DeleteEducation(_ context.Context, id, profileID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	records := f.education[profileID]
	for i := range records {
		if records[i].ID == id {
			f.education[profileID] = append(records[:i], records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStudentProfileRepo) AddWorkExperience(_ context.Context, record *model.WorkExperience) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	record.ID = f.nextID
	f.work[record.StudentProfileID] = append(f.work[record.StudentProfileID], *record)
	return nil
}

func (f *fakeStudentProfileRepo) UpdateWorkExperience(_ context.Context, record *model.WorkExperience) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	records := f.work[record.StudentProfileID]
	for i := range records {
		if records[i].ID == record.ID {
			records[i] = *record
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStudentProfileRepo) DeleteWorkExperience(_ context.Context, id, profileID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	records := f.work[profileID]
	for i := range records {
		if records[i].ID == id {
			f.work[profileID] = append(records[:i], records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStudentProfileRepo) AddCertificate(_ context.Context, record *model.Certificate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	record.ID = f.nextID
	f.certs[record.StudentProfileID] = append(f.certs[record.StudentProfileID], *record)
	return nil
}

func (f *fakeStudentProfileRepo) UpdateCertificate(_ context.Context, record *model.Certificate) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	records := f.certs[record.StudentProfileID]
	for i := range records {
		if records[i].ID == record.ID {
			records[i] = *record
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStudentProfileRepo) DeleteCertificate(_ context.Context, id, profileID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	records := f.certs[profileID]
	for i := range records {
		if records[i].ID == id {
			f.certs[profileID] = append(records[:i], records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// 分区接口不要求先显式创建主档，首次 PATCH 自动补建
func TestStudentSectionPatchAutoCreatesProfile(t *testing.T) {
	repo := newFakeStudentProfileRepo()
	svc := NewStudentProfileService(repo)
	ctx := context.Background()

	merged, err := svc.UpdatePersonalInfo(ctx, 1, json.RawMessage(`{"first_name":"Ada","phone":"13800000000"}`))
	require.NoError(t, err)
	assert.Equal(t, "Ada", merged.FirstName)
	assert.Equal(t, "13800000000", merged.Phone)

	profile, err := svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 25, profile.CompletionPercentage)
	assert.False(t, profile.IsComplete)
}

// 部分更新只覆盖请求里出现的字段，已有字段保持不变
func TestStudentPersonalInfoPartialMerge(t *testing.T) {
	repo := newFakeStudentProfileRepo()
	svc := NewStudentProfileService(repo)
	ctx := context.Background()

	_, err := svc.UpdatePersonalInfo(ctx, 1, json.RawMessage(`{"first_name":"Ada","phone":"13800000000","bio":"builder"}`))
	require.NoError(t, err)

	merged, err := svc.UpdatePersonalInfo(ctx, 1, json.RawMessage(`{"location":"Berlin"}`))
	require.NoError(t, err)
	assert.Equal(t, "Ada", merged.FirstName)
	assert.Equal(t, "13800000000", merged.Phone)
	assert.Equal(t, "builder", merged.Bio)
	assert.Equal(t, "Berlin", merged.Location)
}

func TestStudentSectionPatchMalformedBody(t *testing.T) {
	svc := NewStudentProfileService(newFakeStudentProfileRepo())

	_, err := svc.UpdatePersonalInfo(context.Background(), 1, json.RawMessage(`not json`))
	assert.ErrorIs(t, err, ErrParamInvalid)
}

// 完整度随分区填写逐级上升，删掉条目后回落
func TestStudentCompletionProgression(t *testing.T) {
	repo := newFakeStudentProfileRepo()
	svc := NewStudentProfileService(repo)
	ctx := context.Background()

	_, err := svc.UpdatePersonalInfo(ctx, 1, json.RawMessage(`{"first_name":"Ada","phone":"13800000000"}`))
	require.NoError(t, err)

	edu, err := svc.AddEducation(ctx, 1, &dto.EducationRecordDTO{School: "MIT", StartYear: 2020})
	require.NoError(t, err)

	_, err = svc.AddWorkExperience(ctx, 1, &dto.WorkExperienceDTO{Company: "Acme", Title: "Intern"})
	require.NoError(t, err)

	_, err = svc.UpdateSkills(ctx, 1, json.RawMessage(`{"selected_skills":["Go","SQL"]}`))
	require.NoError(t, err)

	completion, err := svc.GetCompletion(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 100, completion.CompletionPercentage)
	assert.True(t, completion.IsComplete)

	require.NoError(t, svc.DeleteEducation(ctx, 1, edu.ID))
	completion, err = svc.GetCompletion(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 75, completion.CompletionPercentage)
	assert.False(t, completion.IsComplete)
}

// 条目更新带属主条件，拿别人的条目 ID 改不动
func TestStudentRecordUpdateScopedToOwner(t *testing.T) {
	repo := newFakeStudentProfileRepo()
	svc := NewStudentProfileService(repo)
	ctx := context.Background()

	edu, err := svc.AddEducation(ctx, 1, &dto.EducationRecordDTO{School: "MIT"})
	require.NoError(t, err)

	_, err = svc.CreateProfile(ctx, 2)
	require.NoError(t, err)

	err = svc.UpdateEducation(ctx, 2, edu.ID, &dto.EducationRecordDTO{School: "Stolen"})
	assert.ErrorIs(t, err, ErrProfileItemNotFound)

	err = svc.DeleteEducation(ctx, 2, edu.ID)
	assert.ErrorIs(t, err, ErrProfileItemNotFound)

	// 属主自己仍可正常更新
	require.NoError(t, svc.UpdateEducation(ctx, 1, edu.ID, &dto.EducationRecordDTO{School: "CMU"}))
}

func TestStudentProfileNotFound(t *testing.T) {
	svc := NewStudentProfileService(newFakeStudentProfileRepo())
	ctx := context.Background()

	_, err := svc.GetProfile(ctx, 9)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = svc.GetCompletion(ctx, 9)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	err = svc.DeleteProfile(ctx, 9)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
