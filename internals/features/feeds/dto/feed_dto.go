// internals/features/feeds/dto/feed_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"masjidcare_backend/internals/features/feeds/model"
)

/* ===================== REQUESTS ===================== */

type CreateFeedRequest struct {
	FeedTitle   string `json:"feed_title" validate:"required,min=3,max=200"`
	FeedContent string `json:"feed_content" validate:"required,min=3"`

	FeedImageURL *string `json:"feed_image_url" validate:"omitempty,url"`
	FeedVideoURL *string `json:"feed_video_url" validate:"omitempty,url"`

	FeedPriority string `json:"feed_priority" validate:"omitempty,oneof=normal high urgent"`

	// Nil targets every area; founders are forced onto their own area.
	FeedAreaID    *uuid.UUID `json:"feed_area_id" validate:"omitempty"`
	FeedExpiresAt *time.Time `json:"feed_expires_at" validate:"omitempty"`
}

func (r CreateFeedRequest) ToModel(authorID uuid.UUID) *model.FeedModel {
	priority := model.FeedPriority(r.FeedPriority)
	if priority == "" {
		priority = model.FeedPriorityNormal
	}
	return &model.FeedModel{
		FeedAuthorUserID: authorID,
		FeedAreaID:       r.FeedAreaID,
		FeedTitle:        strings.TrimSpace(r.FeedTitle),
		FeedContent:      strings.TrimSpace(r.FeedContent),
		FeedImageURL:     r.FeedImageURL,
		FeedVideoURL:     r.FeedVideoURL,
		FeedPriority:     priority,
		FeedIsActive:     true,
		FeedExpiresAt:    r.FeedExpiresAt,
	}
}

type UpdateFeedRequest struct {
	FeedTitle   *string `json:"feed_title" validate:"omitempty,min=3,max=200"`
	FeedContent *string `json:"feed_content" validate:"omitempty,min=3"`

	FeedImageURL *string `json:"feed_image_url" validate:"omitempty,url"`
	FeedVideoURL *string `json:"feed_video_url" validate:"omitempty,url"`

	FeedPriority  *string    `json:"feed_priority" validate:"omitempty,oneof=normal high urgent"`
	FeedIsActive  *bool      `json:"feed_is_active"`
	FeedExpiresAt *time.Time `json:"feed_expires_at"`
}

type ListFeedQuery struct {
	Priority string     `query:"priority"`
	AreaID   *uuid.UUID `query:"area_id"` // superadmin only
}

/* ===================== RESPONSES ===================== */

type FeedResponse struct {
	FeedID           uuid.UUID  `json:"feed_id"`
	FeedAuthorUserID uuid.UUID  `json:"feed_author_user_id"`
	FeedAreaID       *uuid.UUID `json:"feed_area_id,omitempty"`

	FeedTitle   string `json:"feed_title"`
	FeedContent string `json:"feed_content"`

	FeedImageURL *string `json:"feed_image_url,omitempty"`
	FeedVideoURL *string `json:"feed_video_url,omitempty"`

	FeedPriority  model.FeedPriority `json:"feed_priority"`
	FeedViewCount int64              `json:"feed_view_count"`
	FeedIsActive  bool               `json:"feed_is_active"`

	FeedExpiresAt *time.Time `json:"feed_expires_at,omitempty"`
	FeedCreatedAt time.Time  `json:"feed_created_at"`
}

func NewFeedResponse(f *model.FeedModel) *FeedResponse {
	if f == nil {
		return nil
	}
	return &FeedResponse{
		FeedID:           f.FeedID,
		FeedAuthorUserID: f.FeedAuthorUserID,
		FeedAreaID:       f.FeedAreaID,
		FeedTitle:        f.FeedTitle,
		FeedContent:      f.FeedContent,
		FeedImageURL:     f.FeedImageURL,
		FeedVideoURL:     f.FeedVideoURL,
		FeedPriority:     f.FeedPriority,
		FeedViewCount:    f.FeedViewCount,
		FeedIsActive:     f.FeedIsActive,
		FeedExpiresAt:    f.FeedExpiresAt,
		FeedCreatedAt:    f.FeedCreatedAt,
	}
}

func NewFeedResponses(fs []model.FeedModel) []*FeedResponse {
	out := make([]*FeedResponse, 0, len(fs))
	for i := range fs {
		out = append(out, NewFeedResponse(&fs[i]))
	}
	return out
}
