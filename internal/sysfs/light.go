// SPDX-License-Identifier: GPL-3.0-only

package sysfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultRoot is the sysfs class registry on a standard Linux system.
const DefaultRoot = "/sys/class"

const (
	brightnessAttr    = "brightness"
	maxBrightnessAttr = "max_brightness"
)

// Light is a sysfs-backed Device.
type Light struct {
	info   DeviceInfo
	setter BrightnessSetter
}

// Verify Light implements Device interface.
var _ Device = (*Light)(nil)

// Option configures Open, OpenByName, and Discover.
type Option func(*options)

type options struct {
	root   string
	setter BrightnessSetter
}

// WithRoot points the class registry at an alternate sysfs root.
// Primarily used by tests.
func WithRoot(root string) Option {
	return func(o *options) {
		o.root = root
	}
}

// WithSetter installs a fallback write path, typically a logind client,
// used when the brightness attribute itself is not writable.
func WithSetter(setter BrightnessSetter) Option {
	return func(o *options) {
		o.setter = setter
	}
}

func newOptions(opts []Option) options {
	o := options{root: DefaultRoot}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Open returns the named device from the given class. Both brightness
// attributes are probed so a bad name fails here rather than mid-run.
func Open(class Class, name string, opts ...Option) (*Light, error) {
	return open(class, name, newOptions(opts))
}

func open(class Class, name string, o options) (*Light, error) {
	l := &Light{
		info: DeviceInfo{
			Name:  name,
			Class: class,
			Path:  filepath.Join(o.root, string(class), name),
		},
		setter: o.setter,
	}
	if _, err := l.ReadBrightness(); err != nil {
		return nil, err
	}
	if _, err := l.ReadMaxBrightness(); err != nil {
		return nil, err
	}
	return l, nil
}

// OpenByName looks the name up in the backlight class first, then the
// LED class.
func OpenByName(name string, opts ...Option) (*Light, error) {
	o := newOptions(opts)

	l, backlightErr := open(ClassBacklight, name, o)
	if backlightErr == nil {
		return l, nil
	}
	l, ledErr := open(ClassLED, name, o)
	if ledErr == nil {
		return l, nil
	}
	return nil, fmt.Errorf("no device named %q in %s or %s: %w", name, ClassBacklight, ClassLED, backlightErr)
}

// Discover enumerates all readable devices across both classes. Entries
// that cannot be opened are skipped so one broken driver does not hide
// the rest.
func Discover(opts ...Option) []*Light {
	o := newOptions(opts)

	var lights []*Light
	for _, class := range []Class{ClassBacklight, ClassLED} {
		entries, err := os.ReadDir(filepath.Join(o.root, string(class)))
		if err != nil {
			log.Debug().Err(err).Str("class", string(class)).Msg("Skipping unreadable device class")
			continue
		}
		for _, entry := range entries {
			l, err := open(class, entry.Name(), o)
			if err != nil {
				log.Debug().Err(err).Str("name", entry.Name()).Msg("Skipping device")
				continue
			}
			lights = append(lights, l)
		}
	}
	return lights
}

// readAttr parses a sysfs attribute as a non-negative integer.
func (l *Light) readAttr(attr string) (int, error) {
	path := filepath.Join(l.info.Path, attr)

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}
	value, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("failed to parse %s: negative value %d", path, value)
	}
	return value, nil
}

// ReadBrightness returns the current raw brightness.
func (l *Light) ReadBrightness() (int, error) {
	return l.readAttr(brightnessAttr)
}

// ReadMaxBrightness returns the device's hardware ceiling.
func (l *Light) ReadMaxBrightness() (int, error) {
	return l.readAttr(maxBrightnessAttr)
}

// WriteBrightness writes the brightness attribute directly, falling back
// to the configured setter when the file is not writable by the current
// user.
func (l *Light) WriteBrightness(value int) error {
	path := filepath.Join(l.info.Path, brightnessAttr)

	err := os.WriteFile(path, []byte(strconv.Itoa(value)), 0o644)
	if err == nil {
		return nil
	}
	if l.setter != nil && errors.Is(err, os.ErrPermission) {
		log.Debug().Str("device", l.info.Name).Msg("Direct write not permitted, delegating to setter")
		// #nosec G115 -- value is clamped into [0, max] upstream, safe for uint32
		return l.setter.SetBrightness(string(l.info.Class), l.info.Name, uint32(value))
	}
	return fmt.Errorf("failed to write brightness: %w", err)
}

// Info returns information about the device.
func (l *Light) Info() DeviceInfo {
	return l.info
}
