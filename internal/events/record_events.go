package events

// RecordChangedEventName - имя события для подписки в шине.
const RecordChangedEventName = "record.changed"

// RecordChangedEvent - возникает после успешного коммита любого изменения данных.
type RecordChangedEvent struct {
	Table     string
	Action    string
	RecordID  string
	OldValue  interface{} // состояние до изменения, nil при создании
	NewValue  interface{} // состояние после изменения, nil при удалении
	Actor     string
	RequestID string // X-Request-ID запроса, вызвавшего изменение
}

// Name - реализуем интерфейс eventbus.Event
func (e RecordChangedEvent) Name() string {
	return RecordChangedEventName
}
