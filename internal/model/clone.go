package model

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone возвращает копию без общих указателей с исходной записью.
func (u User) Clone() User {
	u.DisplayName = clonePtr(u.DisplayName)
	u.Email = clonePtr(u.Email)
	return u
}

func (e Entry) Clone() Entry {
	e.Content = clonePtr(e.Content)
	e.MediaURL = clonePtr(e.MediaURL)
	e.CategoryID = clonePtr(e.CategoryID)
	e.Metadata = clonePtr(e.Metadata)
	return e
}

func (c Contact) Clone() Contact {
	c.PhoneNumber = clonePtr(c.PhoneNumber)
	c.Email = clonePtr(c.Email)
	return c
}
