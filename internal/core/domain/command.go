package domain

import "github.com/kballard/go-shellquote"

// Command is a fully resolved external process invocation.
type Command struct {
	// Name is the executable as it should be invoked, e.g. "./gradlew".
	Name string
	// Args are passed to the executable in order.
	Args []string
	// Dir is the working directory of the process.
	Dir string
}

// String renders the command as a single shell-quoted line.
func (c Command) String() string {
	words := make([]string, 0, len(c.Args)+1)
	words = append(words, c.Name)
	words = append(words, c.Args...)
	return shellquote.Join(words...)
}

// ShellLine renders the command prefixed by a change into Dir, when Dir is set.
func (c Command) ShellLine() string {
	if c.Dir == "" {
		return c.String()
	}
	return "cd " + shellquote.Join(c.Dir) + " && " + c.String()
}
