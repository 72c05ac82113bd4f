// Package metrics derives quantitative edge metrics from operator output.
//
// Three metrics are computed per edge map:
//
//   - edge density: percentage of nonzero pixels, always in [0, 100]
//   - edge strength: mean value of the nonzero pixels, 0 when none exist
//   - edge continuity: number of connected boundary contours, defined only
//     for binary maps (Canny); absent for continuous maps
//
// Continuity is reported as a pointer that is nil when not applicable, so
// "not applicable" and "zero contours" remain distinguishable through JSON
// serialization and beyond.
package metrics
