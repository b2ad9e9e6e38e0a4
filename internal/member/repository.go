package member

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Sheddybata/sdp.app/internal/model"
	"gorm.io/gorm"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (r *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

func (r *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, id string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByVoterID looks up by the canonical voter registration number.
func (r *MemberRepository) FindByVoterID(ctx context.Context, db *gorm.DB, voterID string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("voter_registration_number = ?", voterID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByMembershipID tries an exact match on the indexed column, then a
// case-insensitive match for rows stored before IDs were upper-cased.
func (r *MemberRepository) FindByMembershipID(ctx context.Context, db *gorm.DB, membershipID string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("membership_id = ?", membershipID).First(&member).Error
	if err == nil {
		return &member, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = db.WithContext(ctx).Where("UPPER(membership_id) = UPPER(?)", membershipID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// List returns every member, newest first.
func (r *MemberRepository) List(ctx context.Context, db *gorm.DB) ([]model.Member, error) {
	var members []model.Member
	err := db.WithContext(ctx).Order("created_at DESC").Find(&members).Error
	return members, err
}

// Delete removes a member and reports how many rows were deleted.
func (r *MemberRepository) Delete(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&model.Member{})
	return result.RowsAffected, result.Error
}

func (r *MemberRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Member{}).Count(&count).Error
	return count, err
}

// CountCreatedSince counts members created at or after since.
func (r *MemberRepository) CountCreatedSince(ctx context.Context, db *gorm.DB, since time.Time) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Member{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}

// GroupCount is one row of a GROUP BY count.
type GroupCount struct {
	Key   string `gorm:"column:group_key"`
	Count int64  `gorm:"column:total"`
}

// UnspecifiedGender is the group key for members without a recorded gender.
const UnspecifiedGender = "unspecified"

// CountByGender counts members per lower-cased gender. Missing values
// (NULL on Oracle, '' elsewhere) are reported as UnspecifiedGender.
func (r *MemberRepository) CountByGender(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	var rows []struct {
		Gender *string `gorm:"column:gender"`
		Total  int64   `gorm:"column:total"`
	}
	err := db.WithContext(ctx).Model(&model.Member{}).
		Select("gender, COUNT(*) AS total").
		Group("gender").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		key := UnspecifiedGender
		if row.Gender != nil && strings.TrimSpace(*row.Gender) != "" {
			key = strings.ToLower(strings.TrimSpace(*row.Gender))
		}
		counts[key] += row.Total
	}
	return counts, nil
}

// CountByState groups members by state id, largest first.
func (r *MemberRepository) CountByState(ctx context.Context, db *gorm.DB) ([]GroupCount, error) {
	var rows []GroupCount
	err := db.WithContext(ctx).Model(&model.Member{}).
		Select("state AS group_key, COUNT(*) AS total").
		Group("state").
		Order("total DESC").
		Order("state ASC").
		Scan(&rows).Error
	return rows, err
}
