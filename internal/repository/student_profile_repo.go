package repository

import (
	"Orion/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type StudentProfileRepo interface {
	GetByUserId(ctx context.Context, userID uint64) (*model.StudentProfile, error)
	Create(ctx context.Context, profile *model.StudentProfile) error
	Save(ctx context.Context, profile *model.StudentProfile) error
	Delete(ctx context.Context, profileID uint64) error

	AddEducation(ctx context.Context, record *model.EducationRecord) error
	UpdateEducation(ctx context.Context, record *model.EducationRecord) (int64, error)
	DeleteEducation(ctx context.Context, id, profileID uint64) (int64, error)

	AddWorkExperience(ctx context.Context, record *model.WorkExperience) error
	UpdateWorkExperience(ctx context.Context, record *model.WorkExperience) (int64, error)
	DeleteWorkExperience(ctx context.Context, id, profileID uint64) (int64, error)

	AddCertificate(ctx context.Context, record *model.Certificate) error
	UpdateCertificate(ctx context.Context, record *model.Certificate) (int64, error)
	DeleteCertificate(ctx context.Context, id, profileID uint64) (int64, error)
}

type StudentProfileRepoImpl struct {
	db *gorm.DB
}

func NewStudentProfileRepo(db *gorm.DB) StudentProfileRepo {
	return &StudentProfileRepoImpl{db: db}
}

func (s *StudentProfileRepoImpl) GetByUserId(ctx context.Context, userID uint64) (*model.StudentProfile, error) {
	profile := &model.StudentProfile{}
	result := s.db.WithContext(ctx).
		Preload("EducationRecords").
		Preload("WorkExperiences").
		Preload("Certificates").
		Where("user_id = ?", userID).
		First(profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return profile, nil
}

func (s *StudentProfileRepoImpl) Create(ctx context.Context, profile *model.StudentProfile) error {
	return s.db.WithContext(ctx).Create(profile).Error
}

// Save 只回写分区列与完整度，不触碰关联条目
func (s *StudentProfileRepoImpl) Save(ctx context.Context, profile *model.StudentProfile) error {
	return s.db.WithContext(ctx).
		Model(&model.StudentProfile{}).
		Where("id = ?", profile.ID).
		Select("personal_info", "skills", "completion_percentage", "is_complete").
		Updates(profile).Error
}

// Delete 主表与全部条目一起删，保持一致性
func (s *StudentProfileRepoImpl) Delete(ctx context.Context, profileID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_profile_id = ?", profileID).Delete(&model.EducationRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_profile_id = ?", profileID).Delete(&model.WorkExperience{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_profile_id = ?", profileID).Delete(&model.Certificate{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.StudentProfile{}, profileID).Error
	})
}

func (s *StudentProfileRepoImpl) AddEducation(ctx context.Context, record *model.EducationRecord) error {
	return s.db.WithContext(ctx).Create(record).Error
}

// UpdateEducation 带属主（所属资料）条件更新，返回受影响行数
func (s *StudentProfileRepoImpl) UpdateEducation(ctx context.Context, record *model.EducationRecord) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.EducationRecord{}).
		Where("id = ? AND student_profile_id = ?", record.ID, record.StudentProfileID).
		Select("school", "degree", "field_of_study", "start_year", "end_year", "description").
		Updates(record)
	return result.RowsAffected, result.Error
}

func (s *StudentProfileRepoImpl) DeleteEducation(ctx context.Context, id, profileID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND student_profile_id = ?", id, profileID).
		Delete(&model.EducationRecord{})
	return result.RowsAffected, result.Error
}

func (s *StudentProfileRepoImpl) AddWorkExperience(ctx context.Context, record *model.WorkExperience) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *StudentProfileRepoImpl) UpdateWorkExperience(ctx context.Context, record *model.WorkExperience) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.WorkExperience{}).
		Where("id = ? AND student_profile_id = ?", record.ID, record.StudentProfileID).
		Select("company", "title", "location", "start_date", "end_date", "description").
		Updates(record)
	return result.RowsAffected, result.Error
}

func (s *StudentProfileRepoImpl) DeleteWorkExperience(ctx context.Context, id, profileID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND student_profile_id = ?", id, profileID).
		Delete(&model.WorkExperience{})
	return result.RowsAffected, result.Error
}

func (s *StudentProfileRepoImpl) AddCertificate(ctx context.Context, record *model.Certificate) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *StudentProfileRepoImpl) UpdateCertificate(ctx context.Context, record *model.Certificate) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Certificate{}).
		Where("id = ? AND student_profile_id = ?", record.ID, record.StudentProfileID).
		Select("name", "issuer", "issue_date", "credential_url").
		Updates(record)
	return result.RowsAffected, result.Error
}

func (s *StudentProfileRepoImpl) DeleteCertificate(ctx context.Context, id, profileID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND student_profile_id = ?", id, profileID).
		Delete(&model.Certificate{})
	return result.RowsAffected, result.Error
}
