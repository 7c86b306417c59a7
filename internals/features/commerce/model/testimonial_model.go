// file: internals/features/commerce/model/testimonial_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestimonialModel struct {
	TestimonialID uuid.UUID `gorm:"column:testimonial_id;type:uuid;default:gen_random_uuid();primaryKey" json:"testimonial_id"`

	TestimonialAuthorName string `gorm:"column:testimonial_author_name;type:varchar(120);not null" json:"testimonial_author_name"`
	// e.g. "AIR 45, CSE 2024"
	TestimonialAuthorTitle *string `gorm:"column:testimonial_author_title;type:varchar(120)" json:"testimonial_author_title,omitempty"`

	TestimonialQuote     string  `gorm:"column:testimonial_quote;type:text;not null" json:"testimonial_quote"`
	TestimonialAvatarURL *string `gorm:"column:testimonial_avatar_url;type:text" json:"testimonial_avatar_url,omitempty"`

	TestimonialRating int16 `gorm:"column:testimonial_rating;type:smallint;not null;default:5" json:"testimonial_rating"`

	TestimonialIsPublished bool `gorm:"column:testimonial_is_published;not null;default:false" json:"testimonial_is_published"`
	TestimonialPosition    int  `gorm:"column:testimonial_position;not null;default:0" json:"testimonial_position"`

	TestimonialCreatedAt time.Time `gorm:"column:testimonial_created_at;autoCreateTime" json:"testimonial_created_at"`
	TestimonialUpdatedAt time.Time `gorm:"column:testimonial_updated_at;autoUpdateTime" json:"testimonial_updated_at"`
}

func (TestimonialModel) TableName() string { return "testimonials" }

func (m *TestimonialModel) BeforeSave(tx *gorm.DB) error {
	m.TestimonialAuthorName = strings.TrimSpace(m.TestimonialAuthorName)
	m.TestimonialQuote = strings.TrimSpace(m.TestimonialQuote)
	m.TestimonialUpdatedAt = time.Now()
	return nil
}
