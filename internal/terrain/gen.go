package terrain

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/kvat/celldrift/internal/vec"
)

// Flat returns a grid with ground layers of solid below z index
// groundLevel and air above, the usual test bed for drop scenarios.
func Flat(origin vec.Vec3, cellSize float64, nx, ny, nz, groundLevel int) *Grid {
	g := NewGrid(origin, cellSize, nx, ny, nz)
	for k := 0; k < groundLevel && k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				g.mats[g.index(i, j, k)] = Solid
			}
		}
	}
	return g
}

// NoiseOptions shape the heightmap terrain generator.
type NoiseOptions struct {
	// Frequency scales cell coordinates before sampling the noise;
	// smaller values give smoother terrain.
	Frequency float64
	// Amplitude is the height swing of the surface, in cells.
	Amplitude float64
	// Base is the mean surface height, in cells.
	Base float64
	// SeaLevel floods every non-solid cell below this z index with water.
	SeaLevel int
}

// DefaultNoiseOptions returns options producing rolling hills with a
// shallow sea for a grid around 64 cells across.
func DefaultNoiseOptions(nz int) NoiseOptions {
	return NoiseOptions{
		Frequency: 0.07,
		Amplitude: float64(nz) / 4,
		Base:      float64(nz) / 3,
		SeaLevel:  nz / 3,
	}
}

// Noise returns a grid whose surface height follows OpenSimplex noise:
// solid below the surface, water below sea level, air above.
func Noise(origin vec.Vec3, cellSize float64, nx, ny, nz int, seed int64, opt NoiseOptions) *Grid {
	g := NewGrid(origin, cellSize, nx, ny, nz)
	noise := opensimplex.New(seed)

	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			h := opt.Base + opt.Amplitude*noise.Eval2(float64(i)*opt.Frequency, float64(j)*opt.Frequency)
			surface := int(h)
			for k := 0; k < nz; k++ {
				switch {
				case k < surface:
					g.mats[g.index(i, j, k)] = Solid
				case k < opt.SeaLevel:
					g.mats[g.index(i, j, k)] = Water
				}
			}
		}
	}
	return g
}
