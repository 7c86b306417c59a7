// file: internals/seeds/commerce/seed_plans.go
package commerce

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sarathi_backend/internals/features/commerce/model"
	helper "sarathi_backend/internals/helpers"
)

type PlanSeed struct {
	PricingPlanName      string   `json:"pricing_plan_name"`
	PricingPlanPriceINR  int      `json:"pricing_plan_price_inr"`
	PricingPlanPeriod    string   `json:"pricing_plan_period"`
	PricingPlanFeatures  []string `json:"pricing_plan_features"`
	PricingPlanIsPopular bool     `json:"pricing_plan_is_popular"`
	PricingPlanPosition  int      `json:"pricing_plan_position"`
}

func SeedPlansFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading plan seed file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var seeds []PlanSeed
	if err := json.Unmarshal(content, &seeds); err != nil {
		log.Fatalf("❌ Failed to decode seed file: %v", err)
	}

	for _, seed := range seeds {
		slug := helper.GenerateSlug(seed.PricingPlanName)

		var existing model.PricingPlanModel
		if err := db.Where("pricing_plan_slug = ?", slug).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Plan '%s' already seeded, skipping.", seed.PricingPlanName)
			continue
		}

		features, _ := json.Marshal(seed.PricingPlanFeatures)
		plan := model.PricingPlanModel{
			PricingPlanName:      seed.PricingPlanName,
			PricingPlanSlug:      slug,
			PricingPlanPriceINR:  seed.PricingPlanPriceINR,
			PricingPlanPeriod:    model.PlanPeriod(seed.PricingPlanPeriod),
			PricingPlanFeatures:  datatypes.JSON(features),
			PricingPlanIsPopular: seed.PricingPlanIsPopular,
			PricingPlanIsActive:  true,
			PricingPlanPosition:  seed.PricingPlanPosition,
		}

		if err := db.Create(&plan).Error; err != nil {
			log.Printf("❌ Failed to insert plan '%s': %v", seed.PricingPlanName, err)
		} else {
			log.Printf("✅ Seeded plan '%s'", seed.PricingPlanName)
		}
	}
}
