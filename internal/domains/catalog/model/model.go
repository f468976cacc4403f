package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"roam/shared/model"
)

const (
	TableName  = "tour_packages"
	EntityName = "tour_package"

	FieldID           = "id"
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldLocation     = "location"
	FieldPrice        = "price"
	FieldDurationDays = "duration_days"
	FieldMaxGroupSize = "max_group_size"
	FieldImages       = "images"
	FieldAvailable    = "available"
)

// Image is one catalog picture stored alongside the package row.
type Image struct {
	URL       string `json:"url"`
	ObjectKey string `json:"object_key"`
	Alt       string `json:"alt,omitempty"`
}

// ImageList is stored as a JSONB column.
type ImageList []Image

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal image list: %w", err)
	}

	return string(data), nil
}

func (l *ImageList) Scan(src any) error {
	if src == nil {
		*l = ImageList{}

		return nil
	}

	var data []byte

	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported source type for image list")
	}

	if err := json.Unmarshal(data, l); err != nil {
		return fmt.Errorf("failed to unmarshal image list: %w", err)
	}

	return nil
}

// TourPackage is a bookable catalog entry. Price is in whole rupees; the
// payment layer converts to paise when talking to the gateway.
type TourPackage struct {
	ID           string    `db:"id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	Location     string    `db:"location"`
	Price        int64     `db:"price"`
	DurationDays int       `db:"duration_days"`
	MaxGroupSize int       `db:"max_group_size"`
	Images       ImageList `db:"images"`
	Available    bool      `db:"available"`
	model.Metadata
}
