package clients

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"

	"medbot/internal/models"
)

type labelItem struct {
	OpenFDA struct {
		BrandName        []string `json:"brand_name"`
		GenericName      []string `json:"generic_name"`
		ManufacturerName []string `json:"manufacturer_name"`
	} `json:"openfda"`
	IndicationsAndUsage []string `json:"indications_and_usage"`
}

type enforcementItem struct {
	RecallNumber       string `json:"recall_number"`
	ProductDescription string `json:"product_description"`
	ReasonForRecall    string `json:"reason_for_recall"`
	Classification     string `json:"classification"`
	ReportDate         string `json:"report_date"`
}

func parseDrug(raw json.RawMessage) (models.Drug, error) {
	var item labelItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return models.Drug{}, fmt.Errorf("%w: %v", ErrMalformedItem, err)
	}

	return models.Drug{
		BrandName:    first(item.OpenFDA.BrandName),
		GenericName:  first(item.OpenFDA.GenericName),
		Manufacturer: first(item.OpenFDA.ManufacturerName),
		Indications:  first(item.IndicationsAndUsage),
		Raw:          datatypes.JSON(raw),
	}, nil
}

func parseRecall(raw json.RawMessage) (models.Recall, error) {
	var item enforcementItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return models.Recall{}, fmt.Errorf("%w: %v", ErrMalformedItem, err)
	}

	return models.Recall{
		RecallID:           item.RecallNumber,
		ProductDescription: item.ProductDescription,
		ReasonForRecall:    item.ReasonForRecall,
		Classification:     item.Classification,
		RecallDate:         item.ReportDate,
	}, nil
}

// first keeps only the primary entry of a multi-valued upstream field.
func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}
