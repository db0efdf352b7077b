package models

// Имена коллекций документного хранилища.
// Совпадают с именами моделей в нижнем регистре.
const (
	CollectionContactMessages = "contactmessage"
	CollectionChatMessages    = "chatmessage"
	CollectionVideoItems      = "videoitem"
)

// ContactMessage - сообщение из контактной формы.
// Создается один раз, обратно через API не читается.
type ContactMessage struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=5,max=2000"`
}

// ChatMessage - сообщение публичного чата (без авторизации).
type ChatMessage struct {
	Name    string `json:"name" validate:"required,min=2,max=60"`
	Content string `json:"content" validate:"required,min=1,max=500"`
}

// VideoItem - элемент видео галереи. URL указывает либо на внешний
// хостинг (создание через метаданные), либо на файл под /uploads
// (создание через загрузку).
type VideoItem struct {
	Title       string  `json:"title" validate:"required,min=2,max=140"`
	URL         string  `json:"url" validate:"required"`
	Thumbnail   *string `json:"thumbnail"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	CreatedAt   *string `json:"created_at"` // ISO-8601, заполняется при чтении
}
