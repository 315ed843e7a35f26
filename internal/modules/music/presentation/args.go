package presentation

import (
	"strconv"
	"strings"
)

// firstArg returns the first whitespace separated word of args.
func firstArg(args string) string {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// parseIndex parses a non-negative queue index as shown by the queue command.
func parseIndex(args string) (int, bool) {
	index, err := strconv.Atoi(firstArg(args))
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}

// parseVolume parses a volume between 1 and 100.
func parseVolume(args string) (int, bool) {
	volume, err := strconv.Atoi(strings.TrimSuffix(firstArg(args), "%"))
	if err != nil || volume < 1 || volume > 100 {
		return 0, false
	}
	return volume, true
}
