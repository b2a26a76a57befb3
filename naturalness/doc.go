// Package naturalness scores text against reference English
// letter-frequency statistics.
//
// Two forms are exposed on the same Evaluator:
//
//   - Accept(text) — the encoder's retry gate. Builds a case-folded
//     histogram over a–z and requires every "key letter" (high-frequency
//     e,t,a,o,i,n,s and low-frequency z,q,x) to sit within ±50% of its
//     expected relative frequency. Texts with fewer than 20 alphabetic
//     characters are always accepted: the sample is too small to judge.
//
//   - Score(text) — the detector's continuous diagnostic in [0,1].
//     Averages absolute deviation across the full 26-letter reference
//     table and maps it through 1 − min(avg/0.05, 1). The 0.05 constant
//     is calibrated so typical natural English (avg deviation ≈0.01–0.02)
//     scores high while degenerate repetitive text scores near zero.
//
// This is a heuristic plausibility check, not steganalysis resistance.
package naturalness
