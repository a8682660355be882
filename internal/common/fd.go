package common

import (
	"fmt"
)

// FD is a raw operating system file descriptor. Ownership always stays with the caller.
type FD int

func (f FD) String() string {
	return fmt.Sprintf("%d", int(f))
}
