package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"medbot/internal/models"
)

var sampleDrugs = []models.Drug{
	{
		ID:           "aspirin-001",
		BrandName:    "Aspirin",
		GenericName:  "Acetylsalicylic acid",
		Manufacturer: "Bayer",
		Indications:  "Pain reliever and fever reducer. Used for headaches, muscle aches, and reducing fever.",
	},
	{
		ID:           "ibuprofen-001",
		BrandName:    "Advil",
		GenericName:  "Ibuprofen",
		Manufacturer: "Pfizer",
		Indications:  "Nonsteroidal anti-inflammatory drug (NSAID) used to reduce fever and treat pain or inflammation.",
	},
	{
		ID:           "acetaminophen-001",
		BrandName:    "Tylenol",
		GenericName:  "Acetaminophen",
		Manufacturer: "Johnson & Johnson",
		Indications:  "Pain reliever and fever reducer used to treat mild to moderate pain.",
	},
	{
		ID:           "amoxicillin-001",
		BrandName:    "Amoxil",
		GenericName:  "Amoxicillin",
		Manufacturer: "GlaxoSmithKline",
		Indications:  "Antibiotic used to treat bacterial infections including pneumonia, bronchitis, and infections of ear, nose, throat, skin, or urinary tract.",
	},
}

// Seed inserts the demo drugs when the cache table is empty and reports how
// many rows it wrote.
func Seed(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.Drug{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count cached drugs: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	drugs := make([]models.Drug, len(sampleDrugs))
	copy(drugs, sampleDrugs)
	for i := range drugs {
		drugs[i].FetchedAt = now
	}

	if err := db.Create(&drugs).Error; err != nil {
		return 0, fmt.Errorf("insert sample drugs: %w", err)
	}
	return len(drugs), nil
}
