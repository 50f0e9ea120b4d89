package constants

import "time"

const (
	DefaultRequestTimeout = 10 * time.Second

	DatabaseSSLMode         = "require"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 10
	DatabaseConnMaxLifetime = 30 // minutes

	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
)

// Auth
const (
	ContextTokenData = "token_data"

	ScopeTokenAccess = "access"

	AccessTokenDuration = time.Hour
	MaxLoginAttempts    = 5
	BlockDuration       = 15 * time.Minute

	RoleAdmin  = "admin"
	RoleClient = "cliente"
)

// Cache keys
const (
	CacheKeyTokenBlacklist = "blacklist:"
	CacheKeyLoginAttempt   = "login:"
	CacheKeyCourtList      = "courts:all"
	CourtListTTL           = 5 * time.Minute
)

// Domain status values stored in the database.
const (
	ReservationStatusPending   = "pendiente"
	ReservationStatusConfirmed = "confirmada"
	ReservationStatusCancelled = "cancelada"

	PaymentStatusPending   = "pendiente"
	PaymentStatusProcessed = "procesado"
	PaymentStatusFailed    = "fallido"
	PaymentStatusRefunded  = "reembolsado"

	RequestStatusPending  = "pendiente"
	RequestStatusApproved = "aprobada"
	RequestStatusRejected = "rechazada"

	UserStatusActive   = "Activo"
	UserStatusInactive = "Inactivo"
)

// Worker task types
const (
	TaskEarningRecalculate = "earning:recalculate"
	TaskReportExport       = "report:export"
)

const (
	DateLayout     = "2006-01-02"
	DateLayoutDMY  = "02-01-2006"
	TimeLayout     = "15:04:05"
	PeriodLayout   = "2006-01"
	DefaultTZ      = "America/Santiago"
	OpeningHour    = 16
	HoursPerDay    = 24
	StatsMonths    = 6
	DaysPerMonth   = 30
	LegacyAmountLT = 1000
)
