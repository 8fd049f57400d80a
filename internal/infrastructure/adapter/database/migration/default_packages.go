package migration

import (
	"context"

	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Default purchasable credit packages seeded on first boot
var defaultPackages = []model.CreditPackage{
	{ID: "starter", Name: "Starter Pack", PriceCents: 299, Credits: 100, BonusCredits: 0, Active: true},
	{ID: "creator", Name: "Creator Pack", PriceCents: 999, Credits: 400, BonusCredits: 50, Active: true},
	{ID: "studio", Name: "Studio Pack", PriceCents: 2499, Credits: 1200, BonusCredits: 300, Active: true},
}

// SeedDefaultPackages inserts the default credit packages if they are missing
func SeedDefaultPackages(ctx context.Context, db *gorm.DB) error {
	for _, pkg := range defaultPackages {
		var count int64
		if err := db.WithContext(ctx).Model(&model.CreditPackage{}).
			Where("id = ?", pkg.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.WithContext(ctx).Create(&pkg).Error; err != nil {
			return err
		}
	}
	return nil
}
