// FILE: msglog/src/cmd/msglog/demo.go
package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"msglog/src/internal/core"
	"msglog/src/internal/msglog"
	"msglog/src/internal/sink"
)

type demoMessage struct {
	severity core.Severity
	text     string
}

var demoScript = []demoMessage{
	{core.Info, "Hello msg 1."},
	{core.Warning, "Boom"},
	{core.Info, "Ywag"},
}

var demoPool = []demoMessage{
	{core.Info, "Worker started"},
	{core.Info, "Request processed"},
	{core.Warning, "Queue is getting long"},
	{core.Warning, "Retrying connection"},
	{core.Error, "Checksum mismatch"},
	{core.Error, "Child process exited with status 1"},
}

// demoRunner replays a scripted session against a store
type demoRunner struct {
	store    *msglog.Store
	savePath string
	sleep    time.Duration
	count    int
	out      io.Writer
	rng      *rand.Rand
	sleepFn  func(time.Duration)
}

func newDemoRunner(store *msglog.Store, savePath string, sleepSeconds float64, count int, out io.Writer) *demoRunner {
	return &demoRunner{
		store:    store,
		savePath: savePath,
		sleep:    time.Duration(sleepSeconds * float64(time.Second)),
		count:    count,
		out:      out,
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		sleepFn:  time.Sleep,
	}
}

// Run appends the scripted and random messages, saves, shows and clears the log
func (d *demoRunner) Run() error {
	defer d.store.Clear()

	err := d.store.Persist(d.savePath)
	fmt.Fprintf(d.out, "Save before any message: %v\n", err)
	if err != nil && !errors.Is(err, core.ErrEmptyLog) {
		return err
	}

	messages := append([]demoMessage{}, demoScript...)
	for i := 0; i < d.count; i++ {
		messages = append(messages, demoPool[d.rng.IntN(len(demoPool))])
	}

	for i, m := range messages {
		if i > 0 {
			d.pause()
		}
		if err := d.store.Append(m.severity, m.text); err != nil {
			return fmt.Errorf("append %q: %w", m.text, err)
		}
		logger.Debug("msg", "Demo message appended",
			"component", "demo",
			"severity", m.severity.String(),
			"index", i)
	}

	if err := d.store.Persist(d.savePath); err != nil {
		return fmt.Errorf("save log: %w", err)
	}
	fmt.Fprintf(d.out, "Saved %d messages to %s\n", d.store.Len(), d.savePath)

	return d.store.RenderTo(sink.NewWriterSink("stdout", d.out))
}

// pause sleeps a random duration in [0, 2*sleep)
func (d *demoRunner) pause() {
	if d.sleep <= 0 {
		return
	}
	d.sleepFn(time.Duration(d.rng.Int64N(int64(2 * d.sleep))))
}
