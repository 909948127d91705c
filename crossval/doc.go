// Package crossval flags spurious regressions by rolling-origin
// cross-validation.
//
// At each origin t the training window [0,t) is used to fit two one-step
// (or h-step) forecasters: an OLS regression of the response on the
// predictor, and a drift-naive line through the response's own first and
// last training observations. The squared forecast errors are averaged over
// all origins where both models produced a forecast, and the regression is
// classified spurious when it fails to beat the naive benchmark:
//
//	result, err := crossval.Detect(response, predictor, nil)
//	if err != nil { ... }
//	fmt.Printf("reg=%.3f naive=%.3f spurious=%v\n",
//	    result.MSERegression, result.MSENaive, result.Spurious)
//
// Masking is symmetric: an origin missing a residual for either model is
// excluded from both MSEs, so the comparison always covers an identical
// origin set. When no origin survives, Detect returns ErrInsufficientData.
//
// The lower-level pieces are exported for callers that want the per-origin
// residuals: RollingOrigin produces the two residual sequences and Compare
// applies the masking and comparison.
package crossval
