package service

import (
	"github.com/etlab/etlab/internal/domain/model"
)

// Interpretation text shown alongside a classification. One block per
// status, one closing line per limiter, matching the lab tool's wording.

var statusInterpretation = map[model.Status][]string{
	model.StatusGreen: {
		"ET depression is mild: biological time is largely preserved across the protocol.",
		"Metabolic and autonomic systems buffer the incremental load with adequate reserve.",
		"This pattern is compatible with sustainable training for most well-conditioned athletes.",
	},
	model.StatusYellow: {
		"ET shows moderate contraction: regulation works harder to stabilise the internal milieu.",
		"Recurrent YELLOW patterns may accumulate hidden fatigue (\"time debt\") if recovery is suboptimal.",
		"Suitable for overload blocks, but training density and recovery windows must be tightly controlled.",
	},
	model.StatusRed: {
		"ET exhibits marked contraction, indicating high integrated stress on metabolic and autonomic systems.",
		"Such responses are close to or beyond individual thresholds; frequent repetition increases risk of maladaptation.",
		"This zone should be reserved for controlled testing or occasional peak sessions under professional supervision.",
	},
}

var limiterInterpretation = map[model.Limiter]string{
	model.LimiterAutonomic: "Autonomic ET drops earlier and deeper than metabolic ET: autonomic regulation is the primary limiting factor in this test.",
	model.LimiterMetabolic: "Metabolic ET drops earlier and deeper than autonomic ET: peripheral/metabolic capacity is the main limiter.",
	model.LimiterBalanced:  "Both layers contract in parallel: metabolic and autonomic loads are well coupled in this protocol.",
}

// Interpret returns the scientific-interpretation bullets for a
// classification: the status block followed by the limiter line.
func Interpret(c model.TestClassification) []string {
	lines := make([]string, 0, 4)
	lines = append(lines, statusInterpretation[c.Status]...)
	lines = append(lines, limiterInterpretation[c.Limiter])
	return lines
}
