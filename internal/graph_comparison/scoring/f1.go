// Package scoring holds the ratio helpers shared by the comparators and the
// metrics aggregator.
package scoring

// F1 scores a prediction against expected items. predicted counts the items
// matched against the expected ones and spurious the extra predicted items.
// Nothing expected scores 1; nothing predicted scores 0.
func F1(expected, predicted, spurious float64) float64 {
	if expected == 0 {
		return 1.0
	}
	if predicted == 0 && spurious == 0 {
		return 0.0
	}
	return Harmonic(predicted/(predicted+spurious), predicted/expected)
}

// Ratio divides num by den, treating an empty denominator as a perfect score.
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 1.0
	}
	return num / den
}

// Harmonic is the harmonic mean of two ratios, 0 when both are 0.
func Harmonic(a, b float64) float64 {
	if a+b == 0 {
		return 0.0
	}
	return 2 * a * b / (a + b)
}
