package state

import (
	"fmt"

	"github.com/google/uuid"
)

// StrokeClock hands out stroke ids for log correlation. Ids are the session
// id plus a sequence number, e.g. "5f0c9a1e-17". Strokes are not stored, so
// the id only ties the begin/end log lines of one stroke together.
type StrokeClock struct {
	session string
	seq     uint64
}

func NewStrokeClock() *StrokeClock {
	return &StrokeClock{session: uuid.NewString()}
}

func (c *StrokeClock) Session() string { return c.session }

func (c *StrokeClock) Next() string {
	c.seq++
	return fmt.Sprintf("%s-%d", c.session[:8], c.seq)
}
