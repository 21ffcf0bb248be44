package main

import (
	"fmt"
	"sort"

	"go.bug.st/serial/enumerator"
)

// PortInfo describes an attached serial device.
type PortInfo struct {
	Name         string
	IsUSB        bool
	VID          string
	PID          string
	SerialNumber string
	Product      string
}

func (p PortInfo) String() string {
	switch {
	case p.Product != "" && p.IsUSB:
		return fmt.Sprintf("%s - %s (%s:%s)", p.Name, p.Product, p.VID, p.PID)
	case p.Product != "":
		return fmt.Sprintf("%s - %s", p.Name, p.Product)
	case p.IsUSB:
		return fmt.Sprintf("%s (%s:%s)", p.Name, p.VID, p.PID)
	}
	return p.Name
}

type portEnumerator func() ([]*enumerator.PortDetails, error)

// listPorts converts the enumerator output into PortInfo values sorted by name.
func listPorts(enumerate portEnumerator) ([]PortInfo, error) {
	details, err := enumerate()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate ports: %w", err)
	}

	ports := make([]PortInfo, 0, len(details))
	for _, d := range details {
		if d == nil {
			continue
		}
		ports = append(ports, PortInfo{
			Name:         d.Name,
			IsUSB:        d.IsUSB,
			VID:          d.VID,
			PID:          d.PID,
			SerialNumber: d.SerialNumber,
			Product:      d.Product,
		})
	}
	sort.Slice(ports, func(i, j int) bool { return ports[i].Name < ports[j].Name })
	return ports, nil
}
