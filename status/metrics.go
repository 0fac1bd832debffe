package status

import (
	"math"
	"strconv"
	"sync/atomic"
)

type metric interface {
	resetSession()
	format() string
}

// Counter counts events for the current session and since process start
// Written by the tick goroutine, read from any goroutine
type Counter struct {
	session atomic.Int64
	total   atomic.Int64
}

// Add counts n events
func (c *Counter) Add(n int64) {
	if n == 0 {
		return
	}
	c.session.Add(n)
	c.total.Add(n)
}

// Inc counts one event
func (c *Counter) Inc() { c.Add(1) }

// Session returns the count since the last session reset
func (c *Counter) Session() int64 { return c.session.Load() }

// Total returns the count since the counter was created
func (c *Counter) Total() int64 { return c.total.Load() }

func (c *Counter) resetSession() { c.session.Store(0) }

func (c *Counter) format() string {
	return strconv.FormatInt(c.Session(), 10) + " " + strconv.FormatInt(c.Total(), 10)
}

// Gauge holds the latest float sample, a session reset zeroes it
type Gauge struct {
	bits atomic.Uint64
}

// Set stores the sample
func (g *Gauge) Set(v float64) { g.bits.Store(math.Float64bits(v)) }

// Get loads the sample
func (g *Gauge) Get() float64 { return math.Float64frombits(g.bits.Load()) }

func (g *Gauge) resetSession() { g.bits.Store(0) }

func (g *Gauge) format() string {
	return strconv.FormatFloat(g.Get(), 'g', 6, 64)
}
