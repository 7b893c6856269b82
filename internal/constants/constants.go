package constants

// Centralized constants for routes, headers, env keys and shared strings.
const (
	// Environment variable keys
	EnvConfigPath = "COMBAT_CONFIG"
	EnvDBPath     = "COMBAT_DB"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"

	// JSON keys used across API responses
	JSONKeyError = "error"
)

// Routes used by the backend router
const (
	RouteAPIPrefix        = "/api"
	RouteVersion          = "/version"
	RouteEncounters       = "/encounters"
	RouteEncounterByUUID  = "/encounters/:uuid"
	RouteEncounterActions = "/encounters/:uuid/actions"
	RouteEncounterFlee    = "/encounters/:uuid/flee"
	RouteEncounterTime    = "/encounters/:uuid/time"
	RouteEncounterVoid    = "/encounters/:uuid/void"
)

// API error messages
const (
	ErrInvalidEncounterID   = "Invalid encounter id"
	ErrEncounterNotFound    = "Encounter not found"
	ErrInvalidRequestBody   = "Invalid request body"
	ErrFailedCreate         = "Failed to create encounter"
	ErrFailedPersist        = "Failed to persist encounter"
	ErrFailedFetchEncounter = "Failed to fetch encounter"
)

// Logging field names
const (
	LogFieldUUID   = "uuid"
	LogFieldAction = "action"
	LogFieldAddr   = "addr"
)
