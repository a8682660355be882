package common

import (
	"fmt"
)

type PID int

func (p PID) String() string {
	return fmt.Sprintf("%d", int(p))
}
