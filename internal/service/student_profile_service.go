package service

import (
	"Orion/internal/api/dto"
	"Orion/internal/model"
	"Orion/internal/repository"
	"context"
	"math"

	"github.com/goccy/go-json"
)

// StudentProfileService 学生的多分区资料表单。
// 分区接口自动补建主档（前端可以直接从任意分区开始填），
// 每次变更后重算完整度。
type StudentProfileService interface {
	GetProfile(ctx context.Context, userID uint64) (*dto.StudentProfileDTO, error)
	CreateProfile(ctx context.Context, userID uint64) (*dto.StudentProfileDTO, error)
	DeleteProfile(ctx context.Context, userID uint64) error
	GetCompletion(ctx context.Context, userID uint64) (*dto.CompletionDTO, error)

	UpdatePersonalInfo(ctx context.Context, userID uint64, raw json.RawMessage) (*model.StudentPersonalInfo, error)
	UpdateSkills(ctx context.Context, userID uint64, raw json.RawMessage) (*model.StudentSkills, error)

	AddEducation(ctx context.Context, userID uint64, req *dto.EducationRecordDTO) (*model.EducationRecord, error)
	UpdateEducation(ctx context.Context, userID, recordID uint64, req *dto.EducationRecordDTO) error
	DeleteEducation(ctx context.Context, userID, recordID uint64) error

	AddWorkExperience(ctx context.Context, userID uint64, req *dto.WorkExperienceDTO) (*model.WorkExperience, error)
	UpdateWorkExperience(ctx context.Context, userID, recordID uint64, req *dto.WorkExperienceDTO) error
	DeleteWorkExperience(ctx context.Context, userID, recordID uint64) error

	AddCertificate(ctx context.Context, userID uint64, req *dto.CertificateDTO) (*model.Certificate, error)
	UpdateCertificate(ctx context.Context, userID, recordID uint64, req *dto.CertificateDTO) error
	DeleteCertificate(ctx context.Context, userID, recordID uint64) error
}

type studentProfileServiceImpl struct {
	profileRepo repository.StudentProfileRepo
}

func NewStudentProfileService(profileRepo repository.StudentProfileRepo) StudentProfileService {
	return &studentProfileServiceImpl{profileRepo: profileRepo}
}

func (s *studentProfileServiceImpl) GetProfile(ctx context.Context, userID uint64) (*dto.StudentProfileDTO, error) {
	profile, err := s.profileRepo.GetByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return toStudentProfileDTO(profile), nil
}

func (s *studentProfileServiceImpl) CreateProfile(ctx context.Context, userID uint64) (*dto.StudentProfileDTO, error) {
	profile, err := s.ensureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toStudentProfileDTO(profile), nil
}

func (s *studentProfileServiceImpl) DeleteProfile(ctx context.Context, userID uint64) error {
	profile, err := s.profileRepo.GetByUserId(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}
	return s.profileRepo.Delete(ctx, profile.ID)
}

func (s *studentProfileServiceImpl) GetCompletion(ctx context.Context, userID uint64) (*dto.CompletionDTO, error) {
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

func (s *studentProfileServiceImpl) UpdatePersonalInfo(ctx context.Context, userID uint64, raw json.RawMessage) (*model.StudentPersonalInfo, error) {
	profile, err := s.ensureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	merged, err := mergeSection(profile.PersonalInfo, raw)
	if err != nil {
		return nil, err
	}
	profile.PersonalInfo = merged
	if err = s.saveWithCompletion(ctx, profile); err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *studentProfileServiceImpl) UpdateSkills(ctx context.Context, userID uint64, raw json.RawMessage) (*model.StudentSkills, error) {
	profile, err := s.ensureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	merged, err := mergeSection(profile.Skills, raw)
	if err != nil {
		return nil, err
	}
	profile.Skills = merged
	if err = s.saveWithCompletion(ctx, profile); err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *studentProfileServiceImpl) AddEducation(ctx context.Context, userID uint64, req *dto.EducationRecordDTO) (*model.EducationRecord, error) {
	profile, err := s.ensureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	record := &model.EducationRecord{
		StudentProfileID: profile.ID,
		School:           req.School,
		Degree:           req.Degree,
		FieldOfStudy:     req.FieldOfStudy,
		StartYear:        req.StartYear,
		EndYear:          req.EndYear,
		Description:      req.Description,
	}
	if err = s.profileRepo.AddEducation(ctx, record); err != nil {
		return nil, err
	}
	profile.EducationRecords = append(profile.EducationRecords, *record)
	if err = s.saveWithCompletion(ctx, profile); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *studentProfileServiceImpl) UpdateEducation(ctx context.Context, userID, recordID uint64, req *dto.EducationRecordDTO) error {
	profile, err := s.profileRepo.GetByUserId(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}
	record := &model.EducationRecord{
		ID:               recordID,
		StudentProfileID: profile.ID,
		School:           req.School,
		Degree:           req.Degree,
		FieldOfStudy:     req.FieldOfStudy,
		StartYear:        req.StartYear,
		EndYear:          req.EndYear,
		Description:      req.Description,
	}
	rows, err := s.profileRepo.UpdateEducation(ctx, record)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProfileItemNotFound
	}
	return nil
}

func (s *studentProfileServiceImpl) DeleteEducation(ctx context.Context, userID, recordID uint64) error {
	profile, err := s.profileRepo.GetByUserId(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}
	rows, err := s.profileRepo.DeleteEducation(ctx, recordID, profile.ID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProfileItemNotFound
	}
	return s.refreshCompletion(ctx, userID)
}

func (s *studentProfileServiceImpl) AddWorkExperience(ctx context.Context, userID uint64, req *dto.WorkExperienceDTO) (*model.WorkExperience, error) {
	profile, err := s.ensureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	record := &model.WorkExperience{
		StudentProfileID: profile.ID,
		Company:          req.Company,
		Title:            req.Title,
		Location:         req.Location,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Description:      req.Description,
	}
	if err = s.profileRepo.AddWorkExperience(ctx, record); err != nil {
		return nil, err
	}
	profile.WorkExperiences = append(profile.WorkExperiences, *record)
	if err = s.saveWithCompletion(ctx, profile); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *studentProfileServiceImpl) UpdateWorkExperience(ctx context.Context, userID, recordID uint64, req *dto.WorkExperienceDTO) error {
	profile, err := s.profileRepo.GetByUserId(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}
	record := &model.WorkExperience{
		ID:               recordID,
		StudentProfileID: profile.ID,
		Company:          req.Company,
		Title:            req.Title,
		Location:         req.Location,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Description:      req.Description,
	}
	rows, err := s.profileRepo.UpdateWorkExperience(ctx, record)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProfileItemNotFound
	}
	return nil
}

func (s *studentProfileServiceImpl) DeleteWorkExperience(ctx context.Context, userID, recordID uint64) error {
	profile, err := s.profileRepo.GetByUserId(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}
	rows, err := s.profileRepo.DeleteWorkExperience(ctx, recordID, profile.ID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProfileItemNotFound
	}
	return s.refreshCompletion(ctx, userID)
}

func (s *studentProfileServiceImpl) AddCertificate(ctx context.Context, userID uint64, req *dto.CertificateDTO) (*model.Certificate, error) {
	profile, err := s.ensureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	record := &model.Certificate{
		StudentProfileID: profile.ID,
		Name:             req.Name,
		Issuer:           req.Issuer,
		IssueDate:        req.IssueDate,
		CredentialURL:    req.CredentialURL,
	}
	if err = s.profileRepo.AddCertificate(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *studentProfileServiceImpl) UpdateCertificate(ctx context.Context, userID, recordID uint64, req *dto.CertificateDTO) error {
	profile, err := s.profileRepo.GetByUserId(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}
	record := &model.Certificate{
		ID:               recordID,
		StudentProfileID: profile.ID,
		Name:             req.Name,
		Issuer:           req.Issuer,
		IssueDate:        req.IssueDate,
		CredentialURL:    req.CredentialURL,
	}
	rows, err := s.profileRepo.UpdateCertificate(ctx, record)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProfileItemNotFound
	}
	return nil
}

func (s *studentProfileServiceImpl) DeleteCertificate(ctx context.Context, userID, recordID uint64) error {
	profile, err := s.profileRepo.GetByUserId(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}
	rows, err := s.profileRepo.DeleteCertificate(ctx, recordID, profile.ID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProfileItemNotFound
	}
	return nil
}

// ensureProfile 拿不到就补建，分区接口不要求先显式创建主档
func (s *studentProfileServiceImpl) ensureProfile(ctx context.Context, userID uint64) (*model.StudentProfile, error) {
	profile, err := s.profileRepo.GetByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}
	profile = &model.StudentProfile{UserID: userID}
	if err = s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *studentProfileServiceImpl) refreshCompletion(ctx context.Context, userID uint64) error {
	profile, err := s.profileRepo.GetByUserId(ctx, userID)
	if err != nil || profile == nil {
		return err
	}
	return s.saveWithCompletion(ctx, profile)
}

func (s *studentProfileServiceImpl) saveWithCompletion(ctx context.Context, profile *model.StudentProfile) error {
	profile.CompletionPercentage = studentCompletion(profile)
	profile.IsComplete = profile.CompletionPercentage == 100
	return s.profileRepo.Save(ctx, profile)
}

// studentCompletion 四个分区各占一份：个人信息要有姓名和电话才算填过，
// 教育/工作至少一条，技能至少选一项。
func studentCompletion(profile *model.StudentProfile) int {
	const totalSections = 4
	completed := 0

	if profile.PersonalInfo != nil && profile.PersonalInfo.FirstName != "" && profile.PersonalInfo.Phone != "" {
		completed++
	}
	if len(profile.EducationRecords) > 0 {
		completed++
	}
	if len(profile.WorkExperiences) > 0 {
		completed++
	}
	if profile.Skills != nil && len(profile.Skills.SelectedSkills) > 0 {
		completed++
	}

	return int(math.Round(float64(completed) / totalSections * 100))
}

func toStudentProfileDTO(m *model.StudentProfile) *dto.StudentProfileDTO {
	return &dto.StudentProfileDTO{
		ID:                   m.ID,
		UserID:               m.UserID,
		CompletionPercentage: m.CompletionPercentage,
		IsComplete:           m.IsComplete,
		PersonalInfo:         m.PersonalInfo,
		Skills:               m.Skills,
		EducationRecords:     m.EducationRecords,
		WorkExperiences:      m.WorkExperiences,
		Certificates:         m.Certificates,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}
