package market

import (
	"fmt"
	"strings"
)

// NotFoundError is returned when every search strategy, including the text
// fallback, produced zero valid candidates. It carries the best-known product
// name so the caller can tell the user what was searched for.
type NotFoundError struct {
	ProductName string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("we searched the globe but couldn't find %q, try a clearer image", e.ProductName)
}

// ConfigError reports missing provider credentials. It is surfaced before
// any network call since no pipeline stage can proceed without them.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required config: %s", strings.Join(e.Missing, ", "))
}
