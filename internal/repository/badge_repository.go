package repository

import (
	"learning_platform_backend/internal/model"

	"gorm.io/gorm"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

func (r *BadgeRepository) FindAll() ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Find(&badges).Error
	if err != nil {
		return nil, err
	}
	return badges, nil
}

func (r *BadgeRepository) FindByName(name string) (*model.Badge, error) {
	var badge model.Badge
	err := r.DB.Where("name = ?", name).First(&badge).Error
	if err != nil {
		return nil, err
	}
	return &badge, nil
}

func (r *BadgeRepository) FindUserBadge(userID, badgeID uint) (*model.UserBadge, error) {
	var userBadge model.UserBadge
	err := r.DB.Where("user_id = ? AND badge_id = ?", userID, badgeID).First(&userBadge).Error
	if err != nil {
		return nil, err
	}
	return &userBadge, nil
}

func (r *BadgeRepository) FindUserBadges(userID uint) ([]model.UserBadge, error) {
	var userBadges []model.UserBadge
	err := r.DB.Preload("Badge").Where("user_id = ?", userID).
		Order("earned_at desc").Find(&userBadges).Error
	if err != nil {
		return nil, err
	}
	return userBadges, nil
}

func (r *BadgeRepository) CountUserBadges(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserBadge{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CreateUserBadge 依赖 (user_id, badge_id) 唯一索引兜底并发重复发放，
// 重复插入返回 gorm.ErrDuplicatedKey，由调用方按"已发放"处理
func (r *BadgeRepository) CreateUserBadge(userBadge *model.UserBadge) error {
	return r.DB.Create(userBadge).Error
}
