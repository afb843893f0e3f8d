// Package domain contains the entities shared across the prediction pipeline
// and its outer surfaces: per-domain predictions, the fixed decision
// threshold, and persisted prediction jobs. The types carry no infrastructure
// concerns.
package domain
