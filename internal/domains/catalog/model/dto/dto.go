package dto

import (
	"roam/internal/domains/catalog/model"
	"roam/shared"
	gDto "roam/shared/dto"
	gModel "roam/shared/model"
	"roam/shared/timezone"

	"github.com/google/uuid"
)

type CreatePackageRequest struct {
	Title        string `json:"title"          validate:"required,max=150"`
	Description  string `json:"description"    validate:"required"`
	Location     string `json:"location"       validate:"required,max=100"`
	Price        int64  `json:"price"          validate:"required,gt=0"`
	DurationDays int    `json:"duration_days"  validate:"required,gt=0"`
	MaxGroupSize int    `json:"max_group_size" validate:"omitempty,gt=0"`
	Available    *bool  `json:"available,omitempty"`
}

func (c *CreatePackageRequest) ToModel(user string) model.TourPackage {
	available := true
	if c.Available != nil {
		available = *c.Available
	}

	return model.TourPackage{
		ID:           uuid.NewString(),
		Title:        c.Title,
		Description:  c.Description,
		Location:     c.Location,
		Price:        c.Price,
		DurationDays: c.DurationDays,
		MaxGroupSize: c.MaxGroupSize,
		Images:       model.ImageList{},
		Available:    available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePackageRequest struct {
	Title        *string `db:"title"          json:"title,omitempty"          validate:"omitempty,max=150"`
	Description  *string `db:"description"    json:"description,omitempty"`
	Location     *string `db:"location"       json:"location,omitempty"       validate:"omitempty,max=100"`
	Price        *int64  `db:"price"          json:"price,omitempty"          validate:"omitempty,gt=0"`
	DurationDays *int    `db:"duration_days"  json:"duration_days,omitempty"  validate:"omitempty,gt=0"`
	MaxGroupSize *int    `db:"max_group_size" json:"max_group_size,omitempty" validate:"omitempty,gt=0"`
	Available    *bool   `db:"available"      json:"available,omitempty"`
}

type PackageResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Location     string          `json:"location"`
	Price        int64           `json:"price"`
	DurationDays int             `json:"duration_days"`
	MaxGroupSize int             `json:"max_group_size"`
	Images       model.ImageList `json:"images"`
	Available    bool            `json:"available"`
	gDto.Metadata
}

func (r *PackageResponse) FromModel(model model.TourPackage) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Location = model.Location
	r.Price = model.Price
	r.DurationDays = model.DurationDays
	r.MaxGroupSize = model.MaxGroupSize
	r.Images = model.Images
	r.Available = model.Available
	r.Metadata.FromModel(model.Metadata)
}

type GetPackagesResponse struct {
	Packages  []PackageResponse `json:"packages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPackagesResponse) FromModels(models []model.TourPackage, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Packages = make([]PackageResponse, len(models))
	for i, mod := range models {
		r.Packages[i].FromModel(mod)
	}
}

type UploadImageResponse struct {
	URL       string `json:"url"`
	ObjectKey string `json:"object_key"`
}
