//go:build (!amd64 && !arm64) || purego

package lanes

import (
	_ "github.com/cwbudde/algo-synthfilter/dsp/lanes/internal/arch/generic"
	_ "github.com/cwbudde/algo-synthfilter/dsp/lanes/internal/arch/registry"
)
