package waveshaper

import (
	"math"
	"sync"
)

const (
	tableSize   = 1024
	tableCenter = tableSize / 2
	tableScale  = 32.0
)

var (
	sineTable  [tableSize + 1]float64
	asymTable  [tableSize + 1]float64
	tablesOnce sync.Once
)

// InitTables builds the fold tables. Safe to call more than once and from
// several goroutines.
func InitTables() {
	tablesOnce.Do(buildTables)
}

func buildTables() {
	offset := shaftedTanh(0.5)

	for i := range sineTable {
		x := float64(i-tableCenter) / tableScale
		sineTable[i] = math.Sin(x)
		asymTable[i] = shaftedTanh(x+0.5) - offset
	}
}

func shaftedTanh(x float64) float64 {
	return (math.Exp(x) - math.Exp(-1.2*x)) / (math.Exp(x) + math.Exp(-x))
}

// SineFold reads sin(x) from the table for x in ±16, holding the edge value
// outside.
func SineFold(x float64) float64 {
	InitTables()
	return lookup(&sineTable, x)
}

// AsymFold is an asymmetric tanh-like curve with zero output at x = 0.
func AsymFold(x float64) float64 {
	InitTables()
	return lookup(&asymTable, x)
}

func lookup(table *[tableSize + 1]float64, x float64) float64 {
	pos := x*tableScale + tableCenter
	if pos <= 0 {
		return table[0]
	}

	if pos >= tableSize {
		return table[tableSize]
	}

	idx := int(pos)
	frac := pos - float64(idx)

	return table[idx] + frac*(table[idx+1]-table[idx])
}
