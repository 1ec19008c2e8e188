package benchmarks

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/constraints"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

const gravity = 9.8

// Projectile maximizes the horizontal range of a frictionless projectile
// launched from height y0 with speed v0 at angle ang (degrees). The apex
// must stay below MaxHeight.
type Projectile struct {
	MaxHeight float64
}

func NewProjectile(maxHeight float64) *Projectile {
	return &Projectile{MaxHeight: maxHeight}
}

func (p *Projectile) Name() string {
	return "Projectile"
}

func (p *Projectile) Variables() []string {
	return []string{"v0", "ang", "y0"}
}

func (p *Projectile) Bounds() []framework.Bounds {
	return []framework.Bounds{
		{L: 1, H: 30},
		{L: 5, H: 85},
		{L: 0, H: 5},
	}
}

// ObjectiveFuncs minimizes the negated range.
func (p *Projectile) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{func(x framework.Chromosome) float64 {
		return -Range(x[0], x[1], x[2])
	}}
}

func (p *Projectile) Constraints() []framework.Constraint {
	return []framework.Constraint{
		constraints.BoundsConstraint(p.Bounds()),
		constraints.FunctionConstraint(func(x framework.Chromosome) float64 {
			return p.MaxHeight - Apex(x[0], x[1], x[2])
		}),
	}
}

func (p *Projectile) Initialize(rng *rand.Rand, popSize int) []framework.Chromosome {
	return monteCarlo(rng, p.Bounds(), popSize)
}

func (p *Projectile) TrueParetoFront(int) []framework.ObjectiveSpacePoint {
	return nil
}

// Range is the horizontal distance travelled before landing at y = 0.
func Range(v0, angDeg, y0 float64) float64 {
	th := angDeg * math.Pi / 180
	return v0*v0*math.Sin(2*th)/2/gravity +
		v0*math.Cos(th)/gravity*math.Sqrt(v0*v0*math.Pow(math.Sin(th), 2)+2*gravity*y0)
}

// Apex is the highest point of the trajectory.
func Apex(v0, angDeg, y0 float64) float64 {
	vy := v0 * math.Sin(angDeg*math.Pi/180)
	return y0 + vy*vy/2/gravity
}
