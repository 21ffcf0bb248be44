package main

import (
	"errors"
	"fmt"
)

// ErrUnknownCommand is returned by Dispatch for a label that is not configured.
var ErrUnknownCommand = errors.New("unknown command")

// Command maps a button label to the single byte sent to the device.
type Command struct {
	Label   string `yaml:"label"`
	Payload string `yaml:"payload"`
}

// DefaultCommands drive the three LEDs of the reference firmware.
var DefaultCommands = []Command{
	{Label: "LED 1", Payload: "A"},
	{Label: "LED 2", Payload: "B"},
	{Label: "LED 3", Payload: "C"},
}

// Sender writes a raw payload to the device.
type Sender interface {
	Send(payload string) error
}

// CommandSet dispatches labelled commands to a Sender.
type CommandSet struct {
	sender   Sender
	commands []Command
	byLabel  map[string]Command
}

func NewCommandSet(sender Sender, commands []Command) (*CommandSet, error) {
	if err := validateCommands(commands); err != nil {
		return nil, err
	}
	cs := &CommandSet{
		sender:   sender,
		commands: append([]Command(nil), commands...),
		byLabel:  make(map[string]Command, len(commands)),
	}
	for _, c := range commands {
		cs.byLabel[c.Label] = c
	}
	return cs, nil
}

func validateCommands(commands []Command) error {
	seen := make(map[string]bool, len(commands))
	for _, c := range commands {
		if c.Label == "" {
			return fmt.Errorf("%w: command with empty label", ErrInvalidParameter)
		}
		if seen[c.Label] {
			return fmt.Errorf("%w: duplicate command %q", ErrInvalidParameter, c.Label)
		}
		seen[c.Label] = true
		if len(c.Payload) != 1 || c.Payload[0] > 0x7f {
			return fmt.Errorf("%w: command %q payload must be a single ASCII byte", ErrInvalidParameter, c.Label)
		}
	}
	return nil
}

// Commands returns the configured commands in order.
func (cs *CommandSet) Commands() []Command {
	return append([]Command(nil), cs.commands...)
}

// Dispatch sends the payload bound to label.
func (cs *CommandSet) Dispatch(label string) error {
	c, ok := cs.byLabel[label]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, label)
	}
	return cs.sender.Send(c.Payload)
}
