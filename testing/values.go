package xcvtesting

// client identifiers a freshly initialized registry allocates first
const (
	FirstClientID  uint64 = 0
	SecondClientID uint64 = 1
)

// InvalidClientID is an identifier no test registry ever allocates
const InvalidClientID uint64 = 100
