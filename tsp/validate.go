// SPDX-License-Identifier: MIT

package tsp

// Validate checks every parameter against its domain. Each failure wraps
// ErrInvalidParameters together with the specific cause.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.PopulationSize < 2 {
		return invalidParameters(ErrPopulationSize, "got %d", o.PopulationSize)
	}
	if o.Generations < 1 {
		return invalidParameters(ErrGenerations, "got %d", o.Generations)
	}
	if o.EliteCount < 0 || o.EliteCount > o.PopulationSize {
		return invalidParameters(ErrEliteCount, "elite %d, population %d", o.EliteCount, o.PopulationSize)
	}
	// Written as !(in range) so NaN is rejected too.
	if !(o.CrossoverRate >= 0 && o.CrossoverRate <= 1) {
		return invalidParameters(ErrRateOutOfRange, "crossover rate %v", o.CrossoverRate)
	}
	if !(o.MutationRate >= 0 && o.MutationRate <= 1) {
		return invalidParameters(ErrRateOutOfRange, "mutation rate %v", o.MutationRate)
	}

	return nil
}
