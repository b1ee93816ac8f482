package domain

// Quadrant is a categorical label derived from a donor's energy and
// structure scores. It is computed on demand, never persisted.
type Quadrant string

const (
	QuadrantCultivate Quadrant = "cultivate" // low energy, low structure
	QuadrantMaintain  Quadrant = "maintain"  // high energy, low structure
	QuadrantSteward   Quadrant = "steward"   // low energy, high structure
	QuadrantPartner   Quadrant = "partner"   // high energy, high structure
)

const (
	// scoreThreshold splits each axis into its low/high half.
	scoreThreshold = 50

	canvasSize    = 1000.0
	canvasPadding = 40.0
)

// Placement is a donor's position on the segmentation canvas.
type Placement struct {
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Quadrant Quadrant `json:"quadrant"`
}

// Place maps an energy/structure score pair (0-100 each) onto the canvas.
// Structure runs left to right, energy bottom to top; the y axis is
// inverted because screen coordinates grow downward.
func Place(energy, structure int) Placement {
	inner := canvasSize - 2*canvasPadding
	x := canvasPadding + float64(structure)/100*inner
	y := canvasPadding + float64(100-energy)/100*inner

	return Placement{
		X:        x,
		Y:        y,
		Quadrant: quadrantFor(energy, structure),
	}
}

func quadrantFor(energy, structure int) Quadrant {
	highEnergy := energy >= scoreThreshold
	highStructure := structure >= scoreThreshold

	switch {
	case highEnergy && highStructure:
		return QuadrantPartner
	case highEnergy:
		return QuadrantMaintain
	case highStructure:
		return QuadrantSteward
	default:
		return QuadrantCultivate
	}
}

// ValidScore reports whether s is inside the 0-100 score range.
func ValidScore(s int) bool {
	return s >= 0 && s <= 100
}
