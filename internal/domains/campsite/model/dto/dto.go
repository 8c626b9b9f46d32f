package dto

import (
	"campground/internal/domains/campsite/model"
	"campground/shared"
	gDto "campground/shared/dto"
	gModel "campground/shared/model"
	"campground/shared/timezone"

	"github.com/google/uuid"
)

type CreateCampsiteRequest struct {
	Name       string `json:"name"        validate:"required,max=100"`
	CategoryID string `json:"category_id" validate:"required,uuid"`
	Active     bool   `json:"active"`
}

func (c *CreateCampsiteRequest) ToModel(user string) model.Campsite {
	return model.Campsite{
		ID:         uuid.NewString(),
		Name:       c.Name,
		CategoryID: c.CategoryID,
		Active:     c.Active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCampsiteRequest struct {
	Name       string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	CategoryID string `db:"category_id" json:"category_id" validate:"omitempty,uuid"`
	Active     *bool  `db:"active"      json:"active"      validate:"omitempty"`
}

type CampsiteResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CategoryID      string `json:"category_id"`
	CategoryName    string `json:"category_name"`
	MaxStayNights   int    `json:"max_stay_nights"`
	NightlyFeeCents int64  `json:"nightly_fee_cents"`
	Active          bool   `json:"active"`
	gDto.Metadata
}

func (r *CampsiteResponse) FromModel(model model.Campsite) {
	r.ID = model.ID
	r.Name = model.Name
	r.CategoryID = model.CategoryID
	r.CategoryName = model.CategoryName
	r.MaxStayNights = model.MaxStayNights
	r.NightlyFeeCents = model.NightlyFeeCents
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetCampsitesResponse struct {
	Campsites []CampsiteResponse `json:"campsites"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCampsitesResponse) FromModels(models []model.Campsite, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Campsites = make([]CampsiteResponse, len(models))
	for i, mod := range models {
		r.Campsites[i].FromModel(mod)
	}
}
