// file: internals/features/commerce/model/pricing_plan_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================
   Enums
======================= */

type PlanPeriod string

const (
	PeriodMonthly   PlanPeriod = "monthly"
	PeriodQuarterly PlanPeriod = "quarterly"
	PeriodYearly    PlanPeriod = "yearly"
	PeriodOneTime   PlanPeriod = "one_time"
)

func (p PlanPeriod) String() string { return string(p) }

func (p PlanPeriod) Valid() bool {
	switch p {
	case PeriodMonthly, PeriodQuarterly, PeriodYearly, PeriodOneTime:
		return true
	}
	return false
}

func (p *PlanPeriod) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*p = PlanPeriod(strings.ToLower(v))
	case []byte:
		*p = PlanPeriod(strings.ToLower(string(v)))
	case nil:
		*p = PeriodMonthly
	default:
		return fmt.Errorf("unsupported type for PlanPeriod: %T", value)
	}
	return nil
}

func (p PlanPeriod) Value() (driver.Value, error) { return string(p), nil }

/* =======================
   Model
======================= */

// PricingPlanModel is display-only plan data; checkout happens through
// mentor bookings, not through plan purchase.
type PricingPlanModel struct {
	PricingPlanID uuid.UUID `gorm:"column:pricing_plan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"pricing_plan_id"`

	PricingPlanName string `gorm:"column:pricing_plan_name;type:varchar(120);not null" json:"pricing_plan_name"`
	PricingPlanSlug string `gorm:"column:pricing_plan_slug;type:varchar(160);not null;uniqueIndex:uq_pricing_plans_slug,where:pricing_plan_deleted_at IS NULL" json:"pricing_plan_slug"`

	// 0 means free
	PricingPlanPriceINR int        `gorm:"column:pricing_plan_price_inr;not null;default:0" json:"pricing_plan_price_inr"`
	PricingPlanPeriod   PlanPeriod `gorm:"column:pricing_plan_period;type:varchar(12);not null;default:'monthly'" json:"pricing_plan_period"`

	PricingPlanFeatures datatypes.JSON `gorm:"column:pricing_plan_features;type:jsonb" json:"pricing_plan_features,omitempty"`

	PricingPlanIsPopular bool `gorm:"column:pricing_plan_is_popular;not null;default:false" json:"pricing_plan_is_popular"`
	PricingPlanIsActive  bool `gorm:"column:pricing_plan_is_active;not null;default:true" json:"pricing_plan_is_active"`
	PricingPlanPosition  int  `gorm:"column:pricing_plan_position;not null;default:0" json:"pricing_plan_position"`

	PricingPlanCreatedAt time.Time      `gorm:"column:pricing_plan_created_at;autoCreateTime" json:"pricing_plan_created_at"`
	PricingPlanUpdatedAt time.Time      `gorm:"column:pricing_plan_updated_at;autoUpdateTime" json:"pricing_plan_updated_at"`
	PricingPlanDeletedAt gorm.DeletedAt `gorm:"column:pricing_plan_deleted_at;index" json:"-"`
}

func (PricingPlanModel) TableName() string { return "pricing_plans" }

func (m *PricingPlanModel) BeforeSave(tx *gorm.DB) error {
	m.PricingPlanName = strings.TrimSpace(m.PricingPlanName)
	m.PricingPlanSlug = strings.ToLower(strings.TrimSpace(m.PricingPlanSlug))
	if m.PricingPlanPeriod == "" {
		m.PricingPlanPeriod = PeriodMonthly
	}
	if !m.PricingPlanPeriod.Valid() {
		return fmt.Errorf("invalid plan period: %q", m.PricingPlanPeriod)
	}
	m.PricingPlanUpdatedAt = time.Now()
	return nil
}
