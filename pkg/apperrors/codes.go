package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// Коды ошибок, сгруппированные по категориям:
// валидация входа, хранилища, системные.
const (
	// Валидация входных данных
	CodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	CodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"

	// Хранилища
	CodeDocstoreError ErrorCode = "DOCSTORE_ERROR"
	CodeStorageError  ErrorCode = "STORAGE_ERROR"

	// Системные и неизвестные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeNotFound      ErrorCode = "NOT_FOUND"
)
