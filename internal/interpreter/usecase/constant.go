package usecase

import "time"

const (
	defaultSessionCacheSize = 1000
	defaultSessionTTL       = 12 * time.Hour
)

// Log prefixes
const (
	LogPrefixLoadDocument = "internal.interpreter.LoadDocument"
	LogPrefixInterpret    = "internal.interpreter.Interpret"
	LogPrefixConfirm      = "internal.interpreter.Confirm"
	LogPrefixCancel       = "internal.interpreter.Cancel"
	LogPrefixHistory      = "internal.interpreter.History"
	LogPrefixPushPatches  = "internal.interpreter.PushPatches"
)
