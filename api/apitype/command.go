package apitype

import "fmt"

// Command is anything that travels through the event broker.
type Command interface {
	fmt.Stringer
}
