package common

// UnknownStr is the display value for enum values without a name.
const UnknownStr = "unknown"
