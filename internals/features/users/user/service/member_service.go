// internals/features/users/user/service/member_service.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"masjidcare_backend/internals/apperr"
	"masjidcare_backend/internals/constants"
	"masjidcare_backend/internals/features/users/user/dto"
	"masjidcare_backend/internals/features/users/user/model"
	helper "masjidcare_backend/internals/helpers"
)

// DefaultMemberPassword is assigned to admin-created members; it is stored
// only as a bcrypt hash and must never appear in logs or responses.
const DefaultMemberPassword = "Masjid#1446"

/* ==========================
   Username derivation
========================== */

// DeriveUsername builds a username from the email local-part: lowercased,
// restricted to [a-z0-9._-], "member" as last resort.
func DeriveUsername(email string) string {
	local := email
	if i := strings.Index(email, "@"); i >= 0 {
		local = email[:i]
	}
	local = strings.ToLower(strings.TrimSpace(local))

	var b strings.Builder
	for _, r := range local {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		out = "member"
	}
	if len(out) > 50 {
		out = out[:50]
	}
	return out
}

// EnsureUniqueUsername appends a numeric suffix until the name is free.
func EnsureUniqueUsername(db *gorm.DB, base string) (string, error) {
	candidate := base
	for i := 2; ; i++ {
		var count int64
		if err := db.Model(&model.UserModel{}).
			Where("user_name = ?", candidate).
			Count(&count).Error; err != nil {
			return "", apperr.From(err)
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
		if i > 200 {
			return "", apperr.Conflict("Could not derive a unique username")
		}
	}
}

/* ==========================
   Lifecycle
========================== */

// CreateMember is the Founder/SuperAdmin path. A founder always creates into
// their own area; a superadmin may target any area.
func CreateMember(db *gorm.DB, actor helper.Principal, req dto.CreateMemberRequest) (*model.UserModel, error) {
	areaID := req.UserAreaID
	if actor.IsFounder() {
		areaID = actor.AreaID
	}

	username := strings.TrimSpace(req.UserName)
	if username == "" {
		username = DeriveUsername(req.UserEmail)
	}
	username, err := EnsureUniqueUsername(db, strings.ToLower(username))
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultMemberPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Infra(err)
	}

	user := &model.UserModel{
		UserName:     username,
		UserEmail:    strings.ToLower(strings.TrimSpace(req.UserEmail)),
		UserFullName: req.FullName(),
		UserPhone:    strings.TrimSpace(req.UserPhone),
		UserAddress:  strings.TrimSpace(req.UserAddress),
		UserPassword: string(hash),
		UserRole:     constants.RoleMember,
		UserIsActive: true,
		UserAreaID:   areaID,
	}
	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("A member with this email or username already exists")
		}
		return nil, apperr.From(err)
	}
	return user, nil
}

// GetMember enforces the same scope rule as listing.
func GetMember(db *gorm.DB, actor helper.Principal, userID uuid.UUID) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, apperr.From(err)
	}
	if !actor.IsSuperAdmin() && !actor.CanManageArea(user.UserAreaID) {
		return nil, apperr.NotFound("Member not found")
	}
	return &user, nil
}

// ListMembers: founder sees their area, superadmin everyone (optional area
// filter). Paging is bound, never concatenated.
func ListMembers(db *gorm.DB, actor helper.Principal, q dto.ListMemberQuery, paging helper.Paging) ([]model.UserModel, int64, error) {
	tx := db.Model(&model.UserModel{})

	switch {
	case actor.IsSuperAdmin():
		if q.AreaID != nil {
			tx = tx.Where("user_area_id = ?", *q.AreaID)
		}
	case actor.IsFounder():
		if actor.AreaID == nil {
			return nil, 0, apperr.Authorization("Founder account has no area assigned")
		}
		tx = tx.Where("user_area_id = ?", *actor.AreaID)
	default:
		return nil, 0, apperr.Authorization("Members cannot list other members")
	}

	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(user_full_name) LIKE ? OR LOWER(user_email) LIKE ? OR LOWER(user_name) LIKE ?", like, like, like)
	}
	if q.IsActive != nil {
		tx = tx.Where("user_is_active = ?", *q.IsActive)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, apperr.From(err)
	}

	var rows []model.UserModel
	if err := tx.Order("user_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return nil, 0, apperr.From(err)
	}
	return rows, total, nil
}

// UpdateMemberStatus toggles active/inactive. Inactive members stop counting
// toward attendance aggregates; their history stays.
func UpdateMemberStatus(db *gorm.DB, actor helper.Principal, userID uuid.UUID, isActive bool) (*model.UserModel, error) {
	user, err := GetMember(db, actor, userID)
	if err != nil {
		return nil, err
	}
	if err := db.Model(user).Update("user_is_active", isActive).Error; err != nil {
		return nil, apperr.From(err)
	}
	user.UserIsActive = isActive
	return user, nil
}

// DeleteMember is a hard delete. Dependent rows go with the user in one
// transaction, standing in for ON DELETE CASCADE across both DB drivers.
func DeleteMember(db *gorm.DB, actor helper.Principal, userID uuid.UUID) error {
	user, err := GetMember(db, actor, userID)
	if err != nil {
		return err
	}
	if user.UserRole == constants.RoleSuperAdmin && !actor.IsSuperAdmin() {
		return apperr.Authorization("Only a superadmin may delete a superadmin")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM prayer_records WHERE prayer_record_user_id = ?", userID).Error; err != nil {
			return apperr.From(err)
		}
		if err := tx.Exec("DELETE FROM daily_activities WHERE daily_activity_user_id = ?", userID).Error; err != nil {
			return apperr.From(err)
		}
		if err := tx.Exec("DELETE FROM pickup_request_histories WHERE pickup_request_history_request_id IN (SELECT pickup_request_id FROM pickup_requests WHERE pickup_request_user_id = ?)", userID).Error; err != nil {
			return apperr.From(err)
		}
		if err := tx.Exec("DELETE FROM pickup_requests WHERE pickup_request_user_id = ?", userID).Error; err != nil {
			return apperr.From(err)
		}
		if err := tx.Unscoped().Delete(&model.UserModel{}, "user_id = ?", userID).Error; err != nil {
			return apperr.From(err)
		}
		return nil
	})
}
