package contextkeys

type contextKey string

const (
	ActorKey     contextKey = "Actor"
	RequestIDKey contextKey = "RequestID"
)

// Ключ echo.Context для логгера запроса.
const LoggerKey = "logger"
