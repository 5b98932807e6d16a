package model

// Category is a per-user labeling scheme (work, health, study, etc.).
// Tasks reference it by name only, so deleting a category leaves task
// labels untouched.
type Category struct {
	ID     string `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"index;index:idx_user_category_name,unique" json:"userId"`
	Name   string `gorm:"index:idx_user_category_name,unique" json:"name"`
	Color  string `json:"color"`
}
