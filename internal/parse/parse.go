// Package parse turns pasted free-text step data into StepRecords.
//
// The accepted grammar is one step per line: VO2 then HRV, separated by
// spaces, tabs, or commas. Malformed lines are skipped rather than failing
// the whole batch; callers decide whether zero usable lines is an error.
package parse

import (
	"strconv"
	"strings"

	"github.com/etlab/etlab/internal/domain/model"
)

// Result carries the parsed steps plus how many lines were skipped, so
// callers can surface lenient-parse losses to the user.
type Result struct {
	Steps        []model.StepRecord
	SkippedLines int
}

// Steps parses free-text step data. Step indices are the 1-based source
// line numbers, so a skipped line leaves a gap rather than renumbering
// the steps that follow it. Blank lines do not count as skipped.
func Steps(text string) Result {
	var res Result
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rec, ok := parseLine(i+1, line)
		if !ok {
			res.SkippedLines++
			continue
		}
		res.Steps = append(res.Steps, rec)
	}
	return res
}

// parseLine reads one "VO2 HRV" pair. Extra fields are ignored.
func parseLine(index int, line string) (model.StepRecord, bool) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) < 2 {
		return model.StepRecord{}, false
	}
	vo2, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return model.StepRecord{}, false
	}
	hrv, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return model.StepRecord{}, false
	}
	return model.StepRecord{
		StepIndex: index,
		VO2:       vo2,
		HRV:       hrv,
	}, true
}
