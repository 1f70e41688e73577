// Package ngm computes the spectral radius of a two-group next-generation
// matrix — the structured-population analogue of R₀.
//
// Given a 2×2 contact matrix C and group populations N₁, N₂, the
// next-generation matrix is C rescaled by the population ratios:
//
//	A = | C₀₀            (N₁/N₂)·C₀₁ |
//	    | (N₂/N₁)·C₁₀    C₁₁         |
//
// and the threshold quantity is ρ(A) = max |λ| over the eigenvalues of A:
// the epidemic grows iff ρ(A) > 1.
package ngm

import (
	"errors"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrBadDimensions indicates the contact matrix is not 2×2.
	ErrBadDimensions = errors.New("ngm: contact matrix must be 2x2")
	// ErrNonPositivePopulation indicates a group population ≤ 0.
	ErrNonPositivePopulation = errors.New("ngm: group populations must be positive")
	// ErrEigenFailed indicates the eigendecomposition did not converge.
	ErrEigenFailed = errors.New("ngm: eigendecomposition failed to converge")
)

// SpectralRadius returns the largest eigenvalue magnitude of the
// population-scaled next-generation matrix built from contact and the
// group sizes n1, n2.
func SpectralRadius(contact mat.Matrix, n1, n2 float64) (float64, error) {
	rows, cols := contact.Dims()
	if rows != 2 || cols != 2 {
		return 0, ErrBadDimensions
	}
	if n1 <= 0 || n2 <= 0 {
		return 0, ErrNonPositivePopulation
	}

	scaled := mat.NewDense(2, 2, []float64{
		contact.At(0, 0), (n1 / n2) * contact.At(0, 1),
		(n2 / n1) * contact.At(1, 0), contact.At(1, 1),
	})

	var eig mat.Eigen
	if ok := eig.Factorize(scaled, mat.EigenNone); !ok {
		return 0, ErrEigenFailed
	}

	var radius float64
	for _, v := range eig.Values(nil) {
		if abs := cmplx.Abs(v); abs > radius {
			radius = abs
		}
	}
	return radius, nil
}
