package model

import (
	categoryModel "campground/internal/domains/category/model"
	"campground/shared/model"
)

const (
	TableName  = "campsites"
	EntityName = "campsite"

	FieldID         = "id"
	FieldName       = "name"
	FieldCategoryID = "category_id"
	FieldActive     = "active"
)

// Campsite is a bookable unit belonging to exactly one category. Reads join
// the category row so admission always sees the policy currently in effect.
type Campsite struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	CategoryID string `db:"category_id"`
	Active     bool   `db:"active"`

	CategoryName    string `db:"category_name"     table:"campsite_categories" column:"name"`
	MaxStayNights   int    `db:"max_stay_nights"   table:"campsite_categories"`
	NightlyFeeCents int64  `db:"nightly_fee_cents" table:"campsite_categories"`

	model.Metadata
}

func (Campsite) GetJoinQuery() string {
	return "JOIN " + categoryModel.TableName + " ON " + categoryModel.TableName + ".id = " + TableName + ".category_id"
}
