// SPDX-License-Identifier: MIT

// Package companion computes the real roots of a polynomial as eigenvalues of
// its Frobenius companion matrix and compares them with roots found elsewhere.
//
// It is an independent reference for the Newton-based rootfind package: the
// eigenvalue route finds every root at once (complex ones included, which are
// filtered out here), at the price of O(n³) work and weaker accuracy for
// clustered roots. Use Compare to list the roots one method found and the
// other did not.
//
//	ref, err := companion.Roots(p, companion.DefaultImagTolerance)
//	rep := companion.Compare(rootfind.FindRoots(p), ref, 1e-6)
//	if !rep.OK() {
//	  fmt.Println("missed:", rep.Missing)
//	}
package companion
