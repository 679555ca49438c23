// This file is part of gxplay.
//
// gxplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gxplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gxplay.  If not, see <https://www.gnu.org/licenses/>.

package userinput

import (
	"strings"

	"github.com/gxplay/gxplay/curated"
	"github.com/gxplay/gxplay/emulation"
)

// MaxPorts is the maximum number of ports a Mux can drive.
const MaxPorts = 8

// Mux routes host input to the device bound to the active port. All other
// ports are given the neutral state of their device. Not safe for concurrent
// use.
type Mux struct {
	devices []Device
	active  int

	viewport emulation.Rect

	// returned by Sample(). reused every frame
	ports []emulation.PortState
}

// ParseBindings parses a comma separated list of device names, one per port.
// For example, "pad6,mouse".
func ParseBindings(s string) ([]Kind, error) {
	var kinds []Kind
	for _, n := range strings.Split(s, ",") {
		k, err := ParseKind(n)
		if err != nil {
			return nil, curated.Errorf("userinput: bindings: %v", err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// NewMux is the preferred method of initialisation for the Mux type. There is
// one port for each Kind. The first port with a device is made active.
func NewMux(kinds ...Kind) (*Mux, error) {
	if len(kinds) == 0 || len(kinds) > MaxPorts {
		return nil, curated.Errorf("userinput: illegal number of ports (%d)", len(kinds))
	}

	mx := &Mux{
		devices: make([]Device, len(kinds)),
		ports:   make([]emulation.PortState, len(kinds)),
	}

	for i, k := range kinds {
		d, err := NewDevice(k)
		if err != nil {
			return nil, err
		}
		mx.devices[i] = d
	}

	// searching from the last port finds the first port with a device
	mx.active = mx.next(len(kinds) - 1)
	if mx.devices[mx.active].Kind() == None {
		mx.active = 0
	}

	return mx, nil
}

// String returns the bindings in the format accepted by ParseBindings().
func (mx *Mux) String() string {
	s := make([]string, len(mx.devices))
	for i, d := range mx.devices {
		s[i] = d.Kind().String()
	}
	return strings.Join(s, ",")
}

// Bind replaces the device on a port. The active port is not changed unless
// it is left with no device.
func (mx *Mux) Bind(port int, kind Kind) error {
	if port < 0 || port >= len(mx.devices) {
		return curated.Errorf("userinput: no port %d", port)
	}
	d, err := NewDevice(kind)
	if err != nil {
		return err
	}
	mx.devices[port] = d
	if port == mx.active && kind == None {
		mx.active = mx.next(mx.active)
	}
	return nil
}

// Device returns the device bound to the port.
func (mx *Mux) Device(port int) Device {
	if port < 0 || port >= len(mx.devices) {
		return nil
	}
	return mx.devices[port]
}

// Active returns the index of the port receiving host input.
func (mx *Mux) Active() int {
	return mx.active
}

// the index of the first port after from with a device. returns from if there
// is no other port with a device
func (mx *Mux) next(from int) int {
	for i := 1; i <= len(mx.devices); i++ {
		p := (from + i) % len(mx.devices)
		if mx.devices[p].Kind() != None {
			return p
		}
	}
	return from
}

// Cycle moves host input to the next port with a device. Returns the new
// active port.
func (mx *Mux) Cycle() int {
	mx.active = mx.next(mx.active)
	return mx.active
}

// SetViewport is called whenever the area of the window containing the visible
// frame changes.
func (mx *Mux) SetViewport(viewport emulation.Rect) {
	mx.viewport = viewport
}

// Viewport returns the most recent value given to SetViewport().
func (mx *Mux) Viewport() emulation.Rect {
	return mx.viewport
}

// Sample the devices and return the state of every port. The returned slice
// is only valid until the next call to Sample().
func (mx *Mux) Sample(host HostState) []emulation.PortState {
	for i, d := range mx.devices {
		if i == mx.active {
			mx.ports[i] = d.Sample(host, mx.viewport)
		} else {
			mx.ports[i] = d.Neutral()
		}
	}

	if aux, ok := mx.devices[mx.active].(auxiliary); ok && mx.active+1 < len(mx.ports) {
		mx.ports[mx.active+1].Axes[0] = aux.Auxiliary()
	}

	return mx.ports
}
