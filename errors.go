package main

import "errors"

var (
	// ErrInvalidParameter is returned for an unsupported baud rate, an empty
	// port name or a malformed command.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDevice is returned when an open device rejects an operation.
	ErrDevice = errors.New("device error")
	// ErrConnection is returned when a port cannot be opened.
	ErrConnection = errors.New("connection error")
	// ErrNotConnected is returned for I/O on a closed link.
	ErrNotConnected = errors.New("not connected")
	// ErrDecode is reported when a received line is not ASCII text.
	ErrDecode = errors.New("decode error")
)
