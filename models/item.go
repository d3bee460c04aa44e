package models

import "time"

// Item quality levels (exact match with items.quality enum values)
const (
	QualityNew         = "new"
	QualityUsedLikeNew = "used_like_new"
	QualityUsedGood    = "used_good"
	QualityUsedFair    = "used_fair"
)

type Item struct {
	ItemID       int        `gorm:"primaryKey;column:item_id" json:"item_id"`
	Name         string     `gorm:"column:name" json:"name"`
	Price        float64    `gorm:"column:price" json:"price"`
	Description  string     `gorm:"column:description" json:"description"`
	Quality      string     `gorm:"column:quality" json:"quality"`
	Category     string     `gorm:"column:category" json:"category"`
	MeetupPlace  string     `gorm:"column:meetup_place" json:"meetup_place"`
	SellerPhone  string     `gorm:"column:seller_phone" json:"seller_phone"`
	GridImage    *string    `gorm:"column:grid_image" json:"grid_image,omitempty"`
	DetailImages *string    `gorm:"column:detail_images" json:"detail_images,omitempty"`
	UserID       int        `gorm:"column:user_id" json:"user_id"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	Seller User `gorm:"foreignKey:UserID" json:"seller,omitempty"`
}

// SavedItem links a user to a listing they bookmarked.
type SavedItem struct {
	SavedID  int       `gorm:"primaryKey;column:saved_id" json:"saved_id"`
	UserID   int       `gorm:"column:user_id" json:"user_id"`
	ItemID   int       `gorm:"column:item_id" json:"item_id"`
	CreateAt time.Time `gorm:"column:create_at" json:"create_at"`

	Item Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

func (Item) TableName() string {
	return "items"
}

func (SavedItem) TableName() string {
	return "saved_items"
}

// ValidQuality reports whether q is one of the allowed quality levels.
func ValidQuality(q string) bool {
	switch q {
	case QualityNew, QualityUsedLikeNew, QualityUsedGood, QualityUsedFair:
		return true
	}
	return false
}
