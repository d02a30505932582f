// Package interp converts sampled 2D data points into smooth vector paths.
/*

Four interpolation algorithms are provided, each in a continuous-path and a
per-segment flavor:

  - uniform cubic B-spline, converted window-wise to Bezier form
    (BasisSpline),
  - cardinal/Catmull-Rom splines with a tension parameter (Cardinal),
  - monotone cubic interpolation after Fritsch & Carlson (Monotone),
  - generic cubic Hermite evaluation from explicit tangents (Hermite).

The monotone algorithm follows

   F.N. Fritsch, R.E. Carlson: Monotone Piecewise Cubic Interpolation.
   SIAM Journal on Numerical Analysis 17 (1980), pp. 238-246.

It guarantees that the interpolated curve is monotonic wherever the data
is, which keeps line charts from overshooting their samples.

Clients wrap their sample slice into a Points window, optionally narrowed
to an inclusive index range, and hand it to one of the drivers:

   ps := interp.Samples(points)
   path := interp.Monotone(ps)
   svg := path.SVG()

Continuous paths omit the initial move command, so a renderer prepends a
move to the first sample and may concatenate several generated paths. The
segment flavors return one small standalone path per curve segment, for
callers that style segments independently.

All drivers degrade silently: too few points, a malformed tangent count or
an inverted window yield an empty result rather than an error, so a bad
series never aborts a chart draw. Points.Validate is available to callers
that want a diagnosis.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package interp
