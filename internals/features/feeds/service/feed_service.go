// internals/features/feeds/service/feed_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjidcare_backend/internals/apperr"
	"masjidcare_backend/internals/features/feeds/dto"
	"masjidcare_backend/internals/features/feeds/model"
	helper "masjidcare_backend/internals/helpers"
)

// CreateFeed: founders publish into their own area only; a superadmin may
// target any area or broadcast everywhere (nil area).
func CreateFeed(db *gorm.DB, actor helper.Principal, req dto.CreateFeedRequest) (*model.FeedModel, error) {
	if !actor.IsFounder() && !actor.IsSuperAdmin() {
		return nil, apperr.Authorization("Only a founder or superadmin may publish announcements")
	}

	feed := req.ToModel(actor.UserID)
	if actor.IsFounder() {
		if actor.AreaID == nil {
			return nil, apperr.Authorization("Founder account has no area assigned")
		}
		feed.FeedAreaID = actor.AreaID
	}

	if err := db.Create(feed).Error; err != nil {
		return nil, apperr.From(err)
	}
	return feed, nil
}

// visibleScope narrows to feeds the caller may see: area-local ones for
// their own area plus global broadcasts, active and not yet expired.
func visibleScope(tx *gorm.DB, actor helper.Principal) *gorm.DB {
	tx = tx.Where("feed_is_active = ?", true).
		Where("feed_expires_at IS NULL OR feed_expires_at > ?", time.Now().UTC())
	if actor.IsSuperAdmin() {
		return tx
	}
	if actor.AreaID != nil {
		return tx.Where("feed_area_id IS NULL OR feed_area_id = ?", *actor.AreaID)
	}
	return tx.Where("feed_area_id IS NULL")
}

// ListFeeds is the member timeline, urgent first then newest.
func ListFeeds(db *gorm.DB, actor helper.Principal, q dto.ListFeedQuery, paging helper.Paging) ([]model.FeedModel, int64, error) {
	tx := visibleScope(db.Model(&model.FeedModel{}), actor)

	if q.Priority != "" {
		if !model.ValidFeedPriority(model.FeedPriority(q.Priority)) {
			return nil, 0, apperr.Validation("Unknown feed priority")
		}
		tx = tx.Where("feed_priority = ?", q.Priority)
	}
	if actor.IsSuperAdmin() && q.AreaID != nil {
		tx = tx.Where("feed_area_id = ?", *q.AreaID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, apperr.From(err)
	}

	var rows []model.FeedModel
	if err := tx.
		Order("CASE feed_priority WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 ELSE 2 END").
		Order("feed_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return nil, 0, apperr.From(err)
	}
	return rows, total, nil
}

// GetFeed returns one feed and bumps its view counter atomically. Feeds
// outside the caller's scope read as not found.
func GetFeed(db *gorm.DB, actor helper.Principal, feedID uuid.UUID) (*model.FeedModel, error) {
	var feed model.FeedModel
	if err := visibleScope(db.Model(&model.FeedModel{}), actor).
		Where("feed_id = ?", feedID).
		First(&feed).Error; err != nil {
		return nil, apperr.From(err)
	}

	if err := db.Model(&model.FeedModel{}).
		Where("feed_id = ?", feedID).
		UpdateColumn("feed_view_count", gorm.Expr("feed_view_count + 1")).Error; err != nil {
		return nil, apperr.From(err)
	}
	feed.FeedViewCount++
	return &feed, nil
}

// getManaged loads a feed the actor may edit: the author, the founder of the
// feed's area, or any superadmin.
func getManaged(db *gorm.DB, actor helper.Principal, feedID uuid.UUID) (*model.FeedModel, error) {
	var feed model.FeedModel
	if err := db.Where("feed_id = ?", feedID).First(&feed).Error; err != nil {
		return nil, apperr.From(err)
	}
	if actor.IsSuperAdmin() || feed.FeedAuthorUserID == actor.UserID {
		return &feed, nil
	}
	if actor.IsFounder() && feed.FeedAreaID != nil && actor.CanManageArea(feed.FeedAreaID) {
		return &feed, nil
	}
	return nil, apperr.Authorization("You may not modify this announcement")
}

func UpdateFeed(db *gorm.DB, actor helper.Principal, feedID uuid.UUID, req dto.UpdateFeedRequest) (*model.FeedModel, error) {
	feed, err := getManaged(db, actor, feedID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.FeedTitle != nil {
		updates["feed_title"] = *req.FeedTitle
	}
	if req.FeedContent != nil {
		updates["feed_content"] = *req.FeedContent
	}
	if req.FeedImageURL != nil {
		updates["feed_image_url"] = *req.FeedImageURL
	}
	if req.FeedVideoURL != nil {
		updates["feed_video_url"] = *req.FeedVideoURL
	}
	if req.FeedPriority != nil {
		updates["feed_priority"] = *req.FeedPriority
	}
	if req.FeedIsActive != nil {
		updates["feed_is_active"] = *req.FeedIsActive
	}
	if req.FeedExpiresAt != nil {
		updates["feed_expires_at"] = *req.FeedExpiresAt
	}
	if len(updates) == 0 {
		return feed, nil
	}

	if err := db.Model(feed).Updates(updates).Error; err != nil {
		return nil, apperr.From(err)
	}
	if err := db.Where("feed_id = ?", feedID).First(feed).Error; err != nil {
		return nil, apperr.From(err)
	}
	return feed, nil
}

// DeleteFeed soft-deletes so the timeline keeps no hole a restore could not
// fill.
func DeleteFeed(db *gorm.DB, actor helper.Principal, feedID uuid.UUID) error {
	feed, err := getManaged(db, actor, feedID)
	if err != nil {
		return err
	}
	if err := db.Delete(feed).Error; err != nil {
		return apperr.From(err)
	}
	return nil
}
