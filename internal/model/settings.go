package model

// View selects how the task list is presented.
type View string

const (
	ViewList     View = "list"
	ViewKanban   View = "kanban"
	ViewCalendar View = "calendar"
)

// ValidViews returns all valid view values.
func ValidViews() []View {
	return []View{ViewList, ViewKanban, ViewCalendar}
}

// IsValid reports whether the view is a known value.
func (v View) IsValid() bool {
	for _, valid := range ValidViews() {
		if v == valid {
			return true
		}
	}
	return false
}

// AppSettings holds application-level preferences, one record per user,
// keyed by the owning user's ID.
type AppSettings struct {
	UserID              string `gorm:"primaryKey" json:"userId"`
	Theme               Theme  `json:"theme"`
	EnableNotifications bool   `json:"enableNotifications"`
	DefaultView         View   `json:"defaultView"`
}

// DefaultAppSettings returns the settings a user starts with.
func DefaultAppSettings(userID string) AppSettings {
	return AppSettings{
		UserID:              userID,
		Theme:               ThemeLight,
		EnableNotifications: true,
		DefaultView:         ViewList,
	}
}

// TableName keeps the collection name stable across gorm pluralization.
func (AppSettings) TableName() string {
	return "app_settings"
}
