package domain

// Item represents a listed item available for rent
type Item struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64 // ссылка на запрос, по которому вещь была добавлена (опционально)
}

// ItemUpdate частичное обновление вещи; nil-поля не меняются
type ItemUpdate struct {
	Name        *string
	Description *string
	Available   *bool
}

// Apply накладывает обновление на вещь
func (i *Item) Apply(upd ItemUpdate) {
	if upd.Name != nil {
		i.Name = *upd.Name
	}
	if upd.Description != nil {
		i.Description = *upd.Description
	}
	if upd.Available != nil {
		i.Available = *upd.Available
	}
}
