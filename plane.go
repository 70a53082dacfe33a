// Package mandelsurf computes the Mandelbrot escape-time surface over a
// rectangular region of the complex plane and exposes it, together with a
// rotating camera schedule, to a rendering collaborator.
package mandelsurf

import "fmt"

// Plane is a rectangular region of the complex plane to sample.
type Plane struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// FullView covers the whole Mandelbrot set (containment disk of radius 2).
var FullView = Plane{
	Xmin: -2,
	Xmax: 2,
	Ymin: -2,
	Ymax: 2,
}

// Well-known close-ups. The full view gives the classic surface; these give
// narrower, spikier ones.
var (
	// Seahorse Valley, between the main cardioid and the period-2 bulb
	SeahorseValley = Plane{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley, trunk-like tendrils off the large western bulb
	ElephantValley = Plane{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Small self-similar copy of the set with tight spiral arms
	SpiralMinibrot = Plane{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Threefold symmetric spiral structure
	TripleSpiral = Plane{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Deep, highly detailed spiral filaments
	ValleyOfTheDragon = Plane{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot sitting inside a spiral arm
	MinibrotInMiniSpiral = Plane{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

var planesByName = map[string]Plane{
	"full":               FullView,
	"seahorse":           SeahorseValley,
	"elephant":           ElephantValley,
	"spiral-minibrot":    SpiralMinibrot,
	"triple-spiral":      TripleSpiral,
	"dragon":             ValleyOfTheDragon,
	"minibrot-in-spiral": MinibrotInMiniSpiral,
}

// LookupPlane resolves a named view. The empty name means FullView.
func LookupPlane(name string) (Plane, error) {
	if name == "" {
		return FullView, nil
	}
	p, ok := planesByName[name]
	if !ok {
		return Plane{}, fmt.Errorf("unknown plane region %q", name)
	}
	return p, nil
}
