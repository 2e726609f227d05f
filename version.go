package typedef

import (
	_ "embed"
)

// Version is the release of this module.
//
//go:embed VERSION
var Version string
