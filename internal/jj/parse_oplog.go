package jj

import "strings"

// ParseOpLog converts templated operation log output into Operation
// records. Short lines are skipped individually.
func ParseOpLog(output string) []Operation {
	var ops []Operation
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 4 {
			continue
		}
		ops = append(ops, Operation{
			ID:          fields[0],
			Description: fields[1],
			Tags:        fields[2],
			Time:        fields[3],
		})
	}
	return ops
}
