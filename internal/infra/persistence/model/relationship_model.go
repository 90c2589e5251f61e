package model

import "time"

// RelationshipModel is the GORM-specific struct for the 'product_interest_relationships' table.
// One row per (product, customer) subscription.
type RelationshipModel struct {
	RelationshipID int64     `gorm:"column:relationship_id;primaryKey;autoIncrement"`
	ProductID      int64     `gorm:"not null;uniqueIndex:idx_interest_product_customer;index"`
	CustomerID     int64     `gorm:"not null;uniqueIndex:idx_interest_product_customer;index"`
	Created        time.Time `gorm:"not null;autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (RelationshipModel) TableName() string {
	return "product_interest_relationships"
}
