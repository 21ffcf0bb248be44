package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// headless runs the logger without a window: samples and character echoes
// go to out, and lines read from in are dispatched as commands.
type headless struct {
	link     *SerialLink
	commands *CommandSet
	monitor  *Monitor
	interval time.Duration
}

func newHeadless(link *SerialLink, commands *CommandSet) *headless {
	return &headless{
		link:     link,
		commands: commands,
		monitor:  NewMonitor(link, SampleWindow),
		interval: PollInterval,
	}
}

func (h *headless) run(ctx context.Context, portName string, in io.Reader, out io.Writer) error {
	if err := h.link.Connect(portName); err != nil {
		return err
	}
	defer h.link.Disconnect()

	if err := h.link.StartReading(ctx); err != nil {
		return err
	}

	if in != nil {
		go h.dispatchInput(in)
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	var lastChar uint64
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-h.link.Errors():
			if errors.Is(err, ErrDevice) {
				return err
			}
			log.Warn().Err(err).Msg("serial read")
		case <-ticker.C:
			fresh, err := h.monitor.Tick()
			if err != nil {
				if fresh {
					log.Warn().Err(err).Msg("ignoring data line")
				}
			} else if fresh {
				h.printSample(out)
			}

			if c, ok := h.link.LatestCharacter(); ok && c.Seq != lastChar {
				lastChar = c.Seq
				fmt.Fprintf(out, "%s,char,%s\n", c.Timestamp.Format(timestampLayout), c.Data)
			}
		}
	}
}

func (h *headless) printSample(out io.Writer) {
	history := h.monitor.History()
	if len(history) == 0 {
		return
	}
	line := history[len(history)-1]
	sample, err := ParseSample(line.Data)
	if err != nil {
		return
	}
	fmt.Fprintf(out, "%s,%s,%s\n", line.Timestamp.Format(timestampLayout),
		formatFloat(sample.Signal1), formatFloat(sample.Signal2))
}

// dispatchInput treats each input line as a command label, or as a raw byte
// when it is a single character that is not a label.
func (h *headless) dispatchInput(in io.Reader) {
	s := bufio.NewScanner(in)
	for s.Scan() {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}
		err := h.commands.Dispatch(text)
		if errors.Is(err, ErrUnknownCommand) && len(text) == 1 {
			err = h.link.Send(text)
		}
		if err != nil {
			log.Error().Err(err).Str("input", text).Msg("send command")
		}
	}
}
