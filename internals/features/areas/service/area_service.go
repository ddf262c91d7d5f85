// internals/features/areas/service/area_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjidcare_backend/internals/apperr"
	"masjidcare_backend/internals/constants"
	"masjidcare_backend/internals/features/areas/dto"
	"masjidcare_backend/internals/features/areas/model"
	userModel "masjidcare_backend/internals/features/users/user/model"
	helper "masjidcare_backend/internals/helpers"
)

// validClock checks "HH:MM" 24h format.
func validClock(v string) bool {
	_, err := time.Parse("15:04", v)
	return err == nil
}

func validatePrayerTimes(values ...*string) error {
	for _, v := range values {
		if v == nil {
			continue
		}
		if !validClock(*v) {
			return apperr.Validation(fmt.Sprintf("Invalid prayer time %q, expected HH:MM", *v))
		}
	}
	return nil
}

// CreateArea is superadmin only (enforced at the route).
func CreateArea(db *gorm.DB, req dto.CreateAreaRequest) (*model.AreaModel, error) {
	for _, v := range []string{req.AreaFajrTime, req.AreaDhuhrTime, req.AreaAsrTime, req.AreaMaghribTime, req.AreaIshaTime} {
		if v != "" && !validClock(v) {
			return nil, apperr.Validation(fmt.Sprintf("Invalid prayer time %q, expected HH:MM", v))
		}
	}

	area := req.ToModel()
	if err := db.Create(area).Error; err != nil {
		return nil, apperr.From(err)
	}
	return area, nil
}

func GetArea(db *gorm.DB, areaID uuid.UUID) (*model.AreaModel, error) {
	var area model.AreaModel
	if err := db.Where("area_id = ?", areaID).First(&area).Error; err != nil {
		return nil, apperr.From(err)
	}
	return &area, nil
}

// ListActiveAreas backs the public area picker at registration.
func ListActiveAreas(db *gorm.DB) ([]model.AreaModel, error) {
	var rows []model.AreaModel
	if err := db.Where("area_is_active = ?", true).
		Order("area_name ASC").
		Find(&rows).Error; err != nil {
		return nil, apperr.From(err)
	}
	return rows, nil
}

// ListAreas is the superadmin view, inactive areas included.
func ListAreas(db *gorm.DB, search string, paging helper.Paging) ([]model.AreaModel, int64, error) {
	tx := db.Model(&model.AreaModel{})
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(area_name) LIKE ? OR LOWER(area_city) LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, apperr.From(err)
	}

	var rows []model.AreaModel
	if err := tx.Order("area_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return nil, 0, apperr.From(err)
	}
	return rows, total, nil
}

// UpdateArea applies only the fields present in the request.
func UpdateArea(db *gorm.DB, areaID uuid.UUID, req dto.UpdateAreaRequest) (*model.AreaModel, error) {
	if err := validatePrayerTimes(req.AreaFajrTime, req.AreaDhuhrTime, req.AreaAsrTime, req.AreaMaghribTime, req.AreaIshaTime); err != nil {
		return nil, err
	}

	area, err := GetArea(db, areaID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.AreaName != nil {
		updates["area_name"] = strings.TrimSpace(*req.AreaName)
	}
	if req.AreaCity != nil {
		updates["area_city"] = strings.TrimSpace(*req.AreaCity)
	}
	if req.AreaMosqueName != nil {
		updates["area_mosque_name"] = *req.AreaMosqueName
	}
	if req.AreaIsActive != nil {
		updates["area_is_active"] = *req.AreaIsActive
	}
	if req.AreaFajrTime != nil {
		updates["area_fajr_time"] = *req.AreaFajrTime
	}
	if req.AreaDhuhrTime != nil {
		updates["area_dhuhr_time"] = *req.AreaDhuhrTime
	}
	if req.AreaAsrTime != nil {
		updates["area_asr_time"] = *req.AreaAsrTime
	}
	if req.AreaMaghribTime != nil {
		updates["area_maghrib_time"] = *req.AreaMaghribTime
	}
	if req.AreaIshaTime != nil {
		updates["area_isha_time"] = *req.AreaIshaTime
	}
	if len(updates) == 0 {
		return area, nil
	}

	if err := db.Model(area).Updates(updates).Error; err != nil {
		return nil, apperr.From(err)
	}
	return GetArea(db, areaID)
}

// UpdatePrayerTimes is the founder path: schedule changes for their own area
// only. A superadmin may adjust any area through the same call.
func UpdatePrayerTimes(db *gorm.DB, actor helper.Principal, areaID uuid.UUID, req dto.UpdatePrayerTimesRequest) (*model.AreaModel, error) {
	if !actor.CanManageArea(&areaID) {
		return nil, apperr.Authorization("You may only change prayer times for your own area")
	}
	return UpdateArea(db, areaID, dto.UpdateAreaRequest{
		AreaFajrTime:    req.AreaFajrTime,
		AreaDhuhrTime:   req.AreaDhuhrTime,
		AreaAsrTime:     req.AreaAsrTime,
		AreaMaghribTime: req.AreaMaghribTime,
		AreaIshaTime:    req.AreaIshaTime,
	})
}

// AssignFounder promotes a user to founder of the area. The previous founder,
// if any, drops back to member. One transaction keeps role and assignment in
// step.
func AssignFounder(db *gorm.DB, areaID, userID uuid.UUID) (*model.AreaModel, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var area model.AreaModel
		if err := tx.Where("area_id = ?", areaID).First(&area).Error; err != nil {
			return apperr.From(err)
		}

		var user userModel.UserModel
		if err := tx.Where("user_id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("User not found")
			}
			return apperr.From(err)
		}
		if user.UserRole == constants.RoleSuperAdmin {
			return apperr.Validation("A superadmin cannot be assigned as an area founder")
		}

		if area.AreaFounderUserID != nil && *area.AreaFounderUserID != userID {
			if err := tx.Model(&userModel.UserModel{}).
				Where("user_id = ? AND user_role = ?", *area.AreaFounderUserID, constants.RoleFounder).
				Update("user_role", constants.RoleMember).Error; err != nil {
				return apperr.From(err)
			}
		}

		if err := tx.Model(&userModel.UserModel{}).
			Where("user_id = ?", userID).
			Updates(map[string]any{
				"user_role":    constants.RoleFounder,
				"user_area_id": areaID,
			}).Error; err != nil {
			return apperr.From(err)
		}

		if err := tx.Model(&area).
			Update("area_founder_user_id", userID).Error; err != nil {
			return apperr.From(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GetArea(db, areaID)
}

// DeleteArea soft-deletes. An area with active users keeps its members'
// history, so deletion is refused until they are moved out.
func DeleteArea(db *gorm.DB, areaID uuid.UUID) error {
	if _, err := GetArea(db, areaID); err != nil {
		return err
	}

	var users int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_area_id = ?", areaID).
		Count(&users).Error; err != nil {
		return apperr.From(err)
	}
	if users > 0 {
		return apperr.Conflict("Area still has members assigned")
	}

	if err := db.Where("area_id = ?", areaID).Delete(&model.AreaModel{}).Error; err != nil {
		return apperr.From(err)
	}
	return nil
}
