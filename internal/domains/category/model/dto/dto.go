package dto

import (
	"campground/internal/domains/category/model"
	"campground/shared"
	gDto "campground/shared/dto"
	gModel "campground/shared/model"
	"campground/shared/timezone"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name            string `json:"name"              validate:"required,max=100"`
	MaxStayNights   int    `json:"max_stay_nights"   validate:"required,min=1"`
	NightlyFeeCents int64  `json:"nightly_fee_cents" validate:"min=0"`
}

func (c *CreateCategoryRequest) ToModel(user string) model.Category {
	return model.Category{
		ID:              uuid.NewString(),
		Name:            c.Name,
		MaxStayNights:   c.MaxStayNights,
		NightlyFeeCents: c.NightlyFeeCents,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCategoryRequest struct {
	Name            string `db:"name"              json:"name"              validate:"omitempty,max=100"`
	MaxStayNights   int    `db:"max_stay_nights"   json:"max_stay_nights"   validate:"omitempty,min=1"`
	NightlyFeeCents int64  `db:"nightly_fee_cents" json:"nightly_fee_cents" validate:"omitempty,min=0"`
}

type CategoryResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	MaxStayNights   int    `json:"max_stay_nights"`
	NightlyFeeCents int64  `json:"nightly_fee_cents"`
	gDto.Metadata
}

func (r *CategoryResponse) FromModel(model model.Category) {
	r.ID = model.ID
	r.Name = model.Name
	r.MaxStayNights = model.MaxStayNights
	r.NightlyFeeCents = model.NightlyFeeCents
	r.Metadata.FromModel(model.Metadata)
}

type GetCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetCategoriesResponse) FromModels(models []model.Category, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Categories = make([]CategoryResponse, len(models))
	for i, mod := range models {
		r.Categories[i].FromModel(mod)
	}
}
