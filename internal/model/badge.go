package model

import "time"

type BadgeType string

const (
	BadgeChapterCompletion BadgeType = "CHAPTER_COMPLETION"
	BadgeQuizMaster        BadgeType = "QUIZ_MASTER"
	BadgeExerciseMaster    BadgeType = "EXERCISE_MASTER"
	BadgeStreak            BadgeType = "STREAK"
	BadgeSpecial           BadgeType = "SPECIAL"
)

type Badge struct {
	BaseModel
	Name           string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description    string    `gorm:"size:255;not null" json:"description"`
	IconURL        string    `gorm:"size:255" json:"iconUrl"`
	Type           BadgeType `gorm:"size:30;not null" json:"type"`
	PointsRequired int       `gorm:"default:0" json:"pointsRequired"`
}

func (Badge) TableName() string {
	return "badges"
}

// UserBadge 用户获得的徽章，(user_id, badge_id) 唯一索引保证同一徽章最多发放一次
type UserBadge struct {
	BaseModel
	UserID   uint      `gorm:"uniqueIndex:idx_user_badge;not null" json:"userId"`
	BadgeID  uint      `gorm:"uniqueIndex:idx_user_badge;not null" json:"badgeId"`
	Badge    Badge     `gorm:"foreignKey:BadgeID" json:"badge"`
	EarnedAt time.Time `json:"earnedAt"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
