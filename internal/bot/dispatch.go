package bot

import (
	"strings"
	"unicode"
)

// ParseCommand splits a message into a command name and its arguments.
// The name is lowercased. ok is false when content does not start with
// prefix or no name follows it.
func ParseCommand(content, prefix string) (name, args string, ok bool) {
	rest, found := strings.CutPrefix(content, prefix)
	if !found {
		return "", "", false
	}

	// "! play" is not a command
	if rest == "" || unicode.IsSpace(rune(rest[0])) {
		return "", "", false
	}

	end := strings.IndexFunc(rest, unicode.IsSpace)
	if end < 0 {
		return strings.ToLower(rest), "", true
	}

	return strings.ToLower(rest[:end]), strings.TrimSpace(rest[end:]), true
}

// commandIndex resolves command names and aliases to their canonical command.
type commandIndex struct {
	byName   map[string]Command
	commands []Command
}

func newCommandIndex() *commandIndex {
	return &commandIndex{byName: make(map[string]Command)}
}

// add indexes cmd under its name and aliases. It reports the first key that
// was already taken, leaving the earlier registration in place.
func (c *commandIndex) add(cmd Command) (conflict string, ok bool) {
	keys := append([]string{cmd.Name}, cmd.Aliases...)
	for _, key := range keys {
		if _, taken := c.byName[strings.ToLower(key)]; taken {
			return key, false
		}
	}
	for _, key := range keys {
		c.byName[strings.ToLower(key)] = cmd
	}
	c.commands = append(c.commands, cmd)
	return "", true
}

func (c *commandIndex) lookup(name string) (Command, bool) {
	cmd, ok := c.byName[name]
	return cmd, ok
}
