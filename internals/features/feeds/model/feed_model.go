// internals/features/feeds/model/feed_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedPriority string

const (
	FeedPriorityNormal FeedPriority = "normal"
	FeedPriorityHigh   FeedPriority = "high"
	FeedPriorityUrgent FeedPriority = "urgent"
)

func ValidFeedPriority(p FeedPriority) bool {
	return p == FeedPriorityNormal || p == FeedPriorityHigh || p == FeedPriorityUrgent
}

// FeedModel is a broadcast announcement. A nil area id means the feed is
// visible in every area.
type FeedModel struct {
	FeedID uuid.UUID `gorm:"column:feed_id;type:uuid;default:gen_random_uuid();primaryKey" json:"feed_id"`

	FeedAuthorUserID uuid.UUID  `gorm:"column:feed_author_user_id;type:uuid;not null" json:"feed_author_user_id"`
	FeedAreaID       *uuid.UUID `gorm:"column:feed_area_id;type:uuid;index" json:"feed_area_id,omitempty"`

	FeedTitle   string `gorm:"column:feed_title;size:200;not null" json:"feed_title"`
	FeedContent string `gorm:"column:feed_content;type:text;not null" json:"feed_content"`

	FeedImageURL *string `gorm:"column:feed_image_url;type:text" json:"feed_image_url,omitempty"`
	FeedVideoURL *string `gorm:"column:feed_video_url;type:text" json:"feed_video_url,omitempty"`

	FeedPriority  FeedPriority `gorm:"column:feed_priority;type:varchar(10);not null;default:'normal'" json:"feed_priority"`
	FeedViewCount int64        `gorm:"column:feed_view_count;not null;default:0" json:"feed_view_count"`
	FeedIsActive  bool         `gorm:"column:feed_is_active;not null;default:true" json:"feed_is_active"`

	FeedExpiresAt *time.Time `gorm:"column:feed_expires_at" json:"feed_expires_at,omitempty"`

	FeedCreatedAt time.Time      `gorm:"column:feed_created_at;autoCreateTime" json:"feed_created_at"`
	FeedUpdatedAt time.Time      `gorm:"column:feed_updated_at;autoUpdateTime" json:"feed_updated_at"`
	FeedDeletedAt gorm.DeletedAt `gorm:"column:feed_deleted_at;index" json:"-"`
}

func (FeedModel) TableName() string { return "feeds" }

func (f *FeedModel) BeforeCreate(tx *gorm.DB) error {
	if f.FeedID == uuid.Nil {
		f.FeedID = uuid.New()
	}
	return nil
}
