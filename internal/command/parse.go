package command

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotCommand is returned by Parse for lines that are not workflow commands.
var ErrNotCommand = errors.New("not a workflow command")

// Parse decodes a line produced by Command.String. The payload is returned
// as an unescaped string.
func Parse(line string) (Command, error) {
	line = strings.TrimRight(line, "\r\n")
	if !strings.HasPrefix(line, cmdString) {
		return Command{}, fmt.Errorf("%w: missing %q prefix", ErrNotCommand, cmdString)
	}
	rest := line[len(cmdString):]

	end := strings.Index(rest, cmdString)
	if end < 0 {
		return Command{}, fmt.Errorf("%w: missing %q separator", ErrNotCommand, cmdString)
	}
	head, payload := rest[:end], rest[end+len(cmdString):]

	cmd := Command{Payload: UnescapeData(payload)}
	name, props, hasProps := strings.Cut(head, " ")
	cmd.Name = name
	if !hasProps || props == "" {
		return cmd, nil
	}

	for _, pair := range strings.Split(props, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return Command{}, fmt.Errorf("%w: malformed property %q", ErrNotCommand, pair)
		}
		cmd.Properties = append(cmd.Properties, Property{Key: key, Value: UnescapeProperty(value)})
	}
	return cmd, nil
}
