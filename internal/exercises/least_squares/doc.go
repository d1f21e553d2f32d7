package least_squares

// Package least_squares documents the IO contract for the regression fit.
//
// Required inputs:
//   - `data`: a TSV file of x/y pairs, resolved against the project's
//     data directory unless the path is absolute.
//
// Configuration:
//   - `method`: "direct" (closed-form sums, the default) or "normal"
//     (build [AtA | Atb] and row reduce). Both produce the same line on
//     well-conditioned data; the normal route exists so the matrix path
//     gets exercised on real numbers.
//
// Outputs:
//   - A report in the project's reports directory with the fitted line,
//     a per-point residual table, and the sum of squared residuals.
