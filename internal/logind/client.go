// SPDX-License-Identifier: GPL-3.0-only

// Package logind writes brightness through the systemd-logind D-Bus API,
// which allows unprivileged writes for devices belonging to the caller's
// active session.
package logind

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	// BusName is the logind D-Bus service name.
	BusName = "org.freedesktop.login1"

	// SessionPath resolves to the caller's own session object.
	SessionPath dbus.ObjectPath = "/org/freedesktop/login1/session/auto"

	// SetBrightnessMethod is the session method that writes a sysfs
	// brightness attribute on the caller's behalf.
	SetBrightnessMethod = "org.freedesktop.login1.Session.SetBrightness"
)

// Caller is the slice of a D-Bus object the client uses. dbus.BusObject
// satisfies it.
type Caller interface {
	Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// Client calls SetBrightness on the caller's logind session.
type Client struct {
	conn    *dbus.Conn
	session Caller
}

// Connect opens a connection to the system bus.
func Connect() (*Client, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to system bus: %w", err)
	}
	return &Client{conn: conn, session: conn.Object(BusName, SessionPath)}, nil
}

// NewClient wraps an existing session object. Connect is the production
// path; this one exists for callers that manage the bus themselves.
func NewClient(session Caller) *Client {
	return &Client{session: session}
}

// SetBrightness asks logind to write the brightness attribute of the
// named device. subsystem is the sysfs class, "backlight" or "leds".
func (c *Client) SetBrightness(subsystem, name string, value uint32) error {
	if call := c.session.Call(SetBrightnessMethod, 0, subsystem, name, value); call.Err != nil {
		return fmt.Errorf("logind SetBrightness failed for %s/%s: %w", subsystem, name, call.Err)
	}
	return nil
}

// Close disconnects from the system bus.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
