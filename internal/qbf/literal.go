package qbf

import "github.com/rhartert/qbfprep/qbf"

// Literal is re-exported from the public qbf package so that engine internals
// and the embedder-facing API share one representation without a conversion
// at every boundary.
type Literal = qbf.Literal

func PositiveLiteral(v int) Literal { return qbf.PositiveLiteral(v) }
func NegativeLiteral(v int) Literal { return qbf.NegativeLiteral(v) }
func FromSigned(lit int) Literal    { return qbf.FromSigned(lit) }
