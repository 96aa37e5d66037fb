// Package emissions projects completed-task delays into illustrative
// emission figures under a fixed set of grid scenarios.
package emissions

// BaseGramsPerSecond is the assumed emission rate of one second of task delay.
const BaseGramsPerSecond = 50.0

// Scenario names a grid carbon intensity assumption.
type Scenario string

const (
	ScenarioLow      Scenario = "low"
	ScenarioModerate Scenario = "moderate"
	ScenarioHigh     Scenario = "high"
)

// Scenarios is the fixed scenario order used for display.
var Scenarios = []Scenario{ScenarioLow, ScenarioModerate, ScenarioHigh}

var multipliers = map[Scenario]float64{
	ScenarioLow:      1.0,
	ScenarioModerate: 1.5,
	ScenarioHigh:     2.3,
}

// Multiplier returns the projection factor for a scenario, 0 for unknown names.
func Multiplier(s Scenario) float64 {
	return multipliers[s]
}

// Estimate holds gCO2-equivalent figures per scenario.
type Estimate map[Scenario]float64

// Values returns the estimate in Scenarios order.
func (e Estimate) Values() []float64 {
	values := make([]float64, len(Scenarios))
	for i, s := range Scenarios {
		values[i] = e[s]
	}
	return values
}

// Simulate computes BaseGramsPerSecond * sum(delays) * multiplier for every
// scenario. An empty input yields zero for every scenario.
func Simulate(delays []float64) Estimate {
	var total float64
	for _, d := range delays {
		total += d
	}

	estimate := make(Estimate, len(Scenarios))
	for _, s := range Scenarios {
		estimate[s] = BaseGramsPerSecond * total * multipliers[s]
	}
	return estimate
}
