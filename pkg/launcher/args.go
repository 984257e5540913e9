package launcher

import "fmt"

// Arg is one option handed to the server runtime. Args are kept in a slice
// rather than a map so that marshalled output preserves assembly order.
type Arg struct {
	Name  string
	Value any
}

// MarshalArgs converts runtime options into command-line flag tokens.
//
// A true boolean becomes a bare "--name" token and a false boolean is omitted
// entirely. A string slice becomes one "--name=item" token per element. Any
// other value becomes a single "--name=value" token. Output order follows
// input order. No validation happens here; invalid combinations are caught
// upstream.
func MarshalArgs(args []Arg) []string {
	var tokens []string
	for _, a := range args {
		switch v := a.Value.(type) {
		case bool:
			if v {
				tokens = append(tokens, "--"+a.Name)
			}
		case []string:
			for _, item := range v {
				tokens = append(tokens, fmt.Sprintf("--%s=%s", a.Name, item))
			}
		default:
			tokens = append(tokens, fmt.Sprintf("--%s=%v", a.Name, v))
		}
	}
	return tokens
}
