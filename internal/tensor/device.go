package tensor

import "fmt"

// DeviceKind enumerates the localities tensor memory can live in.
type DeviceKind int

// Supported device kinds. Only CPU allocation is implemented;
// Accelerator is a reserved extension point whose allocation fails
// with ErrNotImplemented.
const (
	CPU DeviceKind = iota
	Accelerator
)

// String returns a human-readable kind name.
func (k DeviceKind) String() string {
	switch k {
	case CPU:
		return "cpu"
	case Accelerator:
		return "accelerator"
	default:
		return "unknown"
	}
}

// Device describes where a tensor's memory lives. It is a pure
// descriptor: construction always succeeds, and it is buffer
// allocation that rejects unsupported kinds.
type Device struct {
	Kind  DeviceKind
	Index int // for multi-device systems, default 0
}

// DefaultDevice returns CPU device 0.
func DefaultDevice() Device {
	return Device{Kind: CPU}
}

// String returns the device as "kind:index".
func (d Device) String() string {
	return fmt.Sprintf("%s:%d", d.Kind, d.Index)
}
