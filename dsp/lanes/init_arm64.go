//go:build arm64 && !purego

package lanes

import (
	_ "github.com/cwbudde/algo-synthfilter/dsp/lanes/internal/arch/arm64/neon"
	_ "github.com/cwbudde/algo-synthfilter/dsp/lanes/internal/arch/generic"
	_ "github.com/cwbudde/algo-synthfilter/dsp/lanes/internal/arch/registry"
)
