package constant

import (
	"time"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortDir = "sort_dir"
	RequestParamDate    = "date"
)

const (
	RequestParamID      = "id"
	RequestParamOrderID = "orderID"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortDir = "DESC"
)

const (
	DateFormat    = time.RFC3339
	DayFormat     = "2006-01-02"
	SlotKeyFormat = "2006-01-02-15"
	ClockFormat   = "15:04"
	HoursPerDay   = 24
)

const (
	OtelServiceScopeName  = "service"
	OtelHandlerScopeName  = "handler"
	OtelExternalScopeName = "external"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseOK                        = "OK"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
