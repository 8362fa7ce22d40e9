package model

// Category groups questions under a label such as "Science".
type Category struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Type string `gorm:"column:type;not null" json:"type"`
}

// DefaultCategories is the seed set used when the categories table is empty.
var DefaultCategories = []Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}
