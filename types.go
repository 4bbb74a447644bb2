package partgen

import "github.com/arloliu/partgen/types"

// Re-export interfaces from the types subpackage.
//
// Interfaces live in `types` so that internal packages can implement them
// without importing the root package, while users still get the convenient
// partgen.Logger, partgen.MetricsCollector names.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)
