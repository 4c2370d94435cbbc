package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamPage      = "page"
	RequestParamLimit     = "limit"
	RequestParamID        = "id"
	RequestParamCategoria = "categoria"
	RequestParamActivo    = "activo"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseWelcome                   = "Bienvenido al API del CRM de Turismo"
	ResponseErrorInternal             = "Error interno del servidor"
	ResponseErrorInvalidID            = "id inválido"
	ResponseErrorPrepareShutdown      = "El servidor se está deteniendo"
	ResponseErrorUnhealthy            = "Servicio no disponible"
	ResponseErrorRequestLimitExceeded = "Límite de solicitudes excedido"
	ResponseErrorNotFoundRoute        = "Ruta no encontrada"
	ResponseErrorMethodNotAllowed     = "Método no permitido"
	ResponseHealthy                   = "OK"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
