package domain

// User represents a registered user of the service
type User struct {
	ID    int64
	Name  string
	Email string
}

// UserUpdate частичное обновление пользователя; nil-поля не меняются
type UserUpdate struct {
	Name  *string
	Email *string
}

// Apply накладывает обновление на пользователя
func (u *User) Apply(upd UserUpdate) {
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
}
