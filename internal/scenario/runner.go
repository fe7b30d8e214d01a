package scenario

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/rawbytedev/fixedcstr"
	"github.com/rawbytedev/fixedcstr/pkg/cmem"
)

// Result is the measurement of one Case.
type Result struct {
	Name        string
	Storage     fixedcstr.Storage
	Length      int
	AllocsPerOp float64
	BytesPerOp  float64
}

// Allocator resolves the configured allocator name.
func Allocator(name string) (fixedcstr.Allocator, error) {
	switch name {
	case AllocatorGo, "":
		return nil, nil
	case AllocatorC:
		if !cmem.Available {
			return nil, cmem.ErrUnavailable
		}
		return cmem.Malloc{}, nil
	default:
		return nil, fmt.Errorf("%w: allocator %q", ErrInvalid, name)
	}
}

// Run builds and releases every case cfg.Iterations times and reports the
// mallocs and bytes it took per construction.
func Run(cfg *Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a, err := Allocator(cfg.Allocator)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(cfg.Cases))
	for _, cs := range cfg.Cases {
		results = append(results, runCase(a, cs, cfg.Iterations))
	}
	return results, nil
}

func runCase(a fixedcstr.Allocator, cs Case, iterations int) Result {
	var text string
	if cs.Kind == KindText {
		text = strings.Repeat("x", cs.Length)
	}
	res := Result{Name: cs.Name}

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	for i := 0; i < iterations; i++ {
		var c *fixedcstr.FixedCString
		if cs.Kind == KindFormat {
			c = fixedcstr.FormatWith(a, cs.Format, cs.Args...)
		} else {
			c = fixedcstr.NewWith(a, text)
		}
		if i == 0 {
			res.Storage, res.Length = c.Storage(), c.Len()
		}
		c.Release()
	}
	runtime.ReadMemStats(&after)

	res.AllocsPerOp = float64(after.Mallocs-before.Mallocs) / float64(iterations)
	res.BytesPerOp = float64(after.TotalAlloc-before.TotalAlloc) / float64(iterations)
	return res
}
