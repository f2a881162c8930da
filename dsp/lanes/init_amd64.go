//go:build amd64 && !purego

package lanes

import (
	_ "github.com/cwbudde/algo-synthfilter/dsp/lanes/internal/arch/amd64/sse2" // register SSE2 backend
	_ "github.com/cwbudde/algo-synthfilter/dsp/lanes/internal/arch/generic"    // register generic backend
	_ "github.com/cwbudde/algo-synthfilter/dsp/lanes/internal/arch/registry"   // initialize backend registry
)
