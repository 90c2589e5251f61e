package model

// ProductModel mirrors the 'products' table owned by the catalog.
type ProductModel struct {
	ID    int64  `gorm:"primaryKey"`
	Title string `gorm:"type:varchar(255);not null"`
	Slug  string `gorm:"type:varchar(255);not null;uniqueIndex"`

	Meta []ProductMetaModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductMetaModel mirrors the 'product_meta' key-value table.
type ProductMetaModel struct {
	MetaID    int64  `gorm:"primaryKey;autoIncrement"`
	ProductID int64  `gorm:"not null;index:idx_product_meta_product_key"`
	MetaKey   string `gorm:"type:varchar(255);not null;index:idx_product_meta_product_key"`
	MetaValue string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ProductMetaModel) TableName() string {
	return "product_meta"
}
