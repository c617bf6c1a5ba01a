package exported

const (
	// ModuleName is the name of the xcv core module used throughout the system
	ModuleName = "xcv"

	// StoreKey is the string store representation used by the xcv core module
	StoreKey = ModuleName
)
