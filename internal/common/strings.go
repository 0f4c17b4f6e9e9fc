package common

// UnknownStr is the fallback name for unrecognized enum values.
const UnknownStr = "unknown"
