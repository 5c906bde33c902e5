package model

// Category — пользовательская метка для группировки записей.
type Category struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	UserID int64  `gorm:"not null;index" json:"userId"`
	Name   string `gorm:"not null" json:"name"`
}

type InsertCategory struct {
	UserID int64
	Name   string
}

type CategoryPatch struct {
	Name *string
}

func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
}

func (p CategoryPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	return cols
}
