// Package sysfs reads and writes Linux backlight and LED class devices
// through their sysfs attribute files.
package sysfs

//go:generate mockgen -source=device.go -destination=mocks/device_mock.go -package=mocks

// Class identifies the sysfs device class a light belongs to.
type Class string

const (
	// ClassBacklight is the sysfs class for backlight panels.
	ClassBacklight Class = "backlight"

	// ClassLED is the sysfs class for LED devices.
	ClassLED Class = "leds"
)

// DeviceInfo describes a discovered light device.
type DeviceInfo struct {
	Name  string
	Class Class
	Path  string
}

// Device is the attribute-file surface of a single light device.
// This interface allows for mocking in tests.
type Device interface {
	// ReadBrightness returns the current raw brightness.
	ReadBrightness() (int, error)

	// ReadMaxBrightness returns the device's hardware ceiling.
	ReadMaxBrightness() (int, error)

	// WriteBrightness persists a new raw brightness value.
	WriteBrightness(value int) error

	// Info returns information about the device.
	Info() DeviceInfo
}

// BrightnessSetter is an alternate write path used when the brightness
// attribute is not writable by the current user.
type BrightnessSetter interface {
	SetBrightness(subsystem, name string, value uint32) error
}
