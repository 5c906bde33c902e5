package model

// Contact — получатель, которому может быть доставлена запись по расписанию.
type Contact struct {
	ID          int64   `gorm:"primaryKey" json:"id"`
	UserID      int64   `gorm:"not null;index" json:"userId"`
	Name        string  `gorm:"not null" json:"name"`
	PhoneNumber *string `gorm:"column:phone_number" json:"phoneNumber"`
	Email       *string `json:"email"`
}

type InsertContact struct {
	UserID      int64
	Name        string
	PhoneNumber *string
	Email       *string
}

type ContactPatch struct {
	Name        *string
	PhoneNumber Nullable[string]
	Email       Nullable[string]
}

func (p ContactPatch) Apply(c *Contact) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	p.PhoneNumber.ApplyTo(&c.PhoneNumber)
	p.Email.ApplyTo(&c.Email)
}

func (p ContactPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	p.PhoneNumber.Column(cols, "phone_number")
	p.Email.Column(cols, "email")
	return cols
}
