// Package surface builds the multi-sheet geometry of the complex root
// w = z^(1/n).
//
// Each branch of the root is one [Sheet]: a grid of 3D points sampled on a
// disk in polar coordinates. The planar position of a sample is the same on
// every sheet; only the height differs:
//
//	H(θ, k) = (θ + 2πk) / n
//	z       = H(θ, k) + k·VerticalOffsetUnit
//
// so walking once around the origin on sheet k climbs onto sheet k+1, which
// is how analytic continuation moves between branches of the n-th root.
//
//   - [BuildSheets]: the sheet grids for an order and a resolution
//   - [Build]: the same driven by an explicit [Options] value
//   - [RootLabel], [Title]: human-readable names for an order
//
// # Branch cut
//
// The cut sits on the positive real axis. Angles are sampled on
// [GapAngle, 2π − GapAngle] so neighbouring sheets never touch across the
// cut when drawn. The gap is a presentation aid and carries no meaning
// beyond visual separation.
//
// # Example
//
//	sheets, err := surface.BuildSheets(4, 32, 128, 1.0)
//	if err != nil {
//		return err
//	}
//	for _, s := range sheets {
//		draw(s.Points)
//	}
package surface
