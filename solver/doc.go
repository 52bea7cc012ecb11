// Package solver assembles and solves the network equations, and
// orchestrates the full analysis pipeline from a validated circuit to
// labeled transform-domain and time-domain results.
//
// What & Why
//
//   - The unknowns are the 2·b branch variables [V_1..V_b, I_1..I_b]. The
//     equations are: one KCL row per twig (Q·I = 0), one KVL row per link
//     (B·V = 0), and one branch relation per branch (package laplace).
//     That is (n−1) + (b−n+1) + b = 2·b rows, square by construction
//     whenever the spanning-tree priority policy was honored.
//
//   - The solve is exact Gauss–Jordan elimination over the field of
//     rational functions ℚ(s) (package rational): no numeric iteration, no
//     truncation, and the solution per unknown is a canonical closed-form
//     rational function. A pivotless column means the system is rank
//     deficient (degenerate source placement such as a voltage-source
//     loop or a current-source cut-set) and fails with ErrSingular naming
//     the first unknown that lost its pivot. The condition is a property
//     of the input circuit, so it is reported, not recovered.
//
//   - Solve runs the whole chain: spanning tree → Q/B matrices → assembly
//     → elimination → inverse transform → sampling. Everything before
//     sampling is fatal on error; per-sample evaluation failures degrade
//     gracefully (the affected label simply has fewer samples, recorded in
//     Solution.SampleFailures).
//
// One Solve call is single-threaded and shares no state with other calls;
// callers that need a bound on pathological symbolic growth should wrap
// Solve with their own timeout at the process level.
//
// Classify maps any pipeline error onto the external taxonomy kind
// (ValidationError, ConnectivityError, UnsupportedComponentError,
// SingularSystemError, InversionError, EvaluationError) for the result
// contract.
package solver
