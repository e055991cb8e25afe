package logind_test

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/licht-go/licht/internal/logind"
	"github.com/licht-go/licht/internal/sysfs"
)

var _ sysfs.BrightnessSetter = (*logind.Client)(nil)

type fakeSession struct {
	method string
	flags  dbus.Flags
	args   []interface{}
	err    error
}

func (f *fakeSession) Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call {
	f.method = method
	f.flags = flags
	f.args = args
	return &dbus.Call{Err: f.err}
}

func TestSetBrightness(t *testing.T) {
	session := &fakeSession{}
	client := logind.NewClient(session)

	require.NoError(t, client.SetBrightness("backlight", "intel_backlight", 500))

	assert.Equal(t, logind.SetBrightnessMethod, session.method)
	assert.Equal(t, dbus.Flags(0), session.flags)
	assert.Equal(t, []interface{}{"backlight", "intel_backlight", uint32(500)}, session.args)
}

func TestSetBrightness_CallError(t *testing.T) {
	session := &fakeSession{err: errors.New("Permission denied")}
	client := logind.NewClient(session)

	err := client.SetBrightness("leds", "kbd_backlight", 1)
	require.ErrorIs(t, err, session.err)
	assert.ErrorContains(t, err, "leds/kbd_backlight")
}

func TestClose_WithoutConnection(t *testing.T) {
	var c logind.Client
	assert.NoError(t, c.Close())
}

func TestConstants(t *testing.T) {
	assert.Equal(t, "org.freedesktop.login1", logind.BusName)
	assert.Equal(t, "org.freedesktop.login1.Session.SetBrightness", logind.SetBrightnessMethod)
	assert.True(t, logind.SessionPath.IsValid())
}
