package imaging

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/ironsheep/sobel-edge-mcp/internal/sobel"
)

// GradientStatsResult summarizes the gradient field of an image.
type GradientStatsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Magnitude statistics over the clamped 8-bit magnitudes.
	MeanMagnitude   float64 `json:"mean_magnitude"`
	StdDevMagnitude float64 `json:"stddev_magnitude"`
	MedianMagnitude float64 `json:"median_magnitude"`
	MaxMagnitude    int     `json:"max_magnitude"`

	// Threshold is the magnitude at or above which a pixel counts as an edge.
	Threshold    int     `json:"threshold"`
	EdgePixels   int     `json:"edge_pixels"`
	EdgeFraction float64 `json:"edge_fraction"`

	// DominantDirection is the magnitude-weighted circular mean of theta in
	// radians, or 0 when the image has no gradient.
	DominantDirection float64 `json:"dominant_direction"`

	// DominantDirectionDegrees is DominantDirection in degrees.
	DominantDirectionDegrees float64 `json:"dominant_direction_degrees"`
}

// GradientStats computes summary statistics of a Sobel result.
//
// Parameters:
//   - res: Output of the Sobel pass for a width x height image.
//   - threshold: Edge threshold (0-255) for EdgePixels and EdgeFraction.
//
// Returns an error if res does not describe a width x height image.
func GradientStats(res sobel.Result, width, height, threshold int) (*GradientStatsResult, error) {
	n := width * height
	if n <= 0 || len(res.Thetas) != n || len(res.ImageData) != n*4 {
		return nil, fmt.Errorf("result does not match %dx%d image", width, height)
	}

	mags := make([]float64, n)
	thetas := make([]float64, n)
	out := &GradientStatsResult{
		Width:     width,
		Height:    height,
		Threshold: threshold,
	}

	var total float64
	for i, m := range sobel.Magnitudes(res.ImageData) {
		mags[i] = float64(m)
		thetas[i] = res.Thetas[i].Theta
		total += mags[i]
		if int(m) > out.MaxMagnitude {
			out.MaxMagnitude = int(m)
		}
		if int(m) >= threshold {
			out.EdgePixels++
		}
	}

	out.MeanMagnitude, out.StdDevMagnitude = stat.MeanStdDev(mags, nil)
	if n == 1 {
		out.StdDevMagnitude = 0
	}
	out.EdgeFraction = float64(out.EdgePixels) / float64(n)

	if total > 0 {
		out.DominantDirection = stat.CircularMean(thetas, mags)
		out.DominantDirectionDegrees = out.DominantDirection * 180 / math.Pi
	}

	sorted := append([]float64(nil), mags...)
	sort.Float64s(sorted)
	out.MedianMagnitude = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	return out, nil
}
