package naturalness

import "math"

// histogram counts case-folded ASCII letters in text and returns the
// counts plus the total alphabetic sample size.
func histogram(text string) ([26]int, int) {
	var counts [26]int
	total := 0
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			counts[r-'a']++
			total++
		case r >= 'A' && r <= 'Z':
			counts[r-'A']++
			total++
		}
	}
	return counts, total
}

// Accept reports whether text passes the key-letter frequency gate.
// Texts shorter than MinSample alphabetic characters always pass.
//
// Complexity: O(len(text)).
func (e *Evaluator) Accept(text string) bool {
	counts, total := histogram(text)
	if total < e.opts.MinSample {
		return true
	}
	for _, letter := range keyLetters {
		expected := englishFreq[letter-'a']
		observed := float64(counts[letter-'a']) / float64(total)
		if math.Abs(observed-expected) > e.opts.Tolerance*expected {
			return false
		}
	}
	return true
}

// Score returns the continuous naturality of text in [0,1]: the mean
// absolute deviation across all 26 reference letters mapped through
// 1 − min(avg/Calibration, 1). Texts shorter than MinSample alphabetic
// characters score 1.0.
//
// Complexity: O(len(text)).
func (e *Evaluator) Score(text string) float64 {
	counts, total := histogram(text)
	if total < e.opts.MinSample {
		return 1.0
	}
	sum := 0.0
	for i := 0; i < 26; i++ {
		observed := float64(counts[i]) / float64(total)
		sum += math.Abs(observed - englishFreq[i])
	}
	avg := sum / 26
	return 1.0 - math.Min(avg/e.opts.Calibration, 1.0)
}
