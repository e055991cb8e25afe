package control_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/licht-go/licht/internal/control"
	"github.com/licht-go/licht/internal/stepping"
	"github.com/licht-go/licht/internal/sysfs"
	"github.com/licht-go/licht/internal/sysfs/mocks"
)

func newDevice(ctrl *gomock.Controller, name string, current, max int) *mocks.MockDevice {
	dev := mocks.NewMockDevice(ctrl)
	dev.EXPECT().Info().Return(sysfs.DeviceInfo{Name: name, Class: sysfs.ClassBacklight}).AnyTimes()
	dev.EXPECT().ReadBrightness().Return(current, nil).AnyTimes()
	dev.EXPECT().ReadMaxBrightness().Return(max, nil).AnyTimes()
	return dev
}

func TestApply_ComputesAndWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// 50/100 on x^2: sqrt(0.5)+0.1 squared is ~0.6514, so 65 after rounding.
	dev := newDevice(ctrl, "panel", 50, 100)
	dev.EXPECT().WriteBrightness(65).Return(nil).Times(1)

	strat, err := stepping.NewParabolic(10, 2)
	require.NoError(t, err)

	res, err := control.Apply(dev, strat, control.Options{})
	require.NoError(t, err)
	assert.Equal(t, 50, res.Current)
	assert.Equal(t, 100, res.Max)
	assert.Equal(t, 65, res.New)
	assert.Equal(t, "panel", res.Info.Name)
}

func TestApply_DryRunSkipsWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No WriteBrightness expectation: a write would fail the test.
	dev := newDevice(ctrl, "panel", 50, 100)

	strat, err := stepping.NewParabolic(10, 2)
	require.NoError(t, err)

	res, err := control.Apply(dev, strat, control.Options{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 65, res.New)
}

func TestApply_RespectsMinBrightness(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dev := newDevice(ctrl, "panel", 50, 100)
	dev.EXPECT().WriteBrightness(20).Return(nil).Times(1)

	res, err := control.Apply(dev, stepping.Linear{Step: -200}, control.Options{MinBrightness: 20})
	require.NoError(t, err)
	assert.Equal(t, 20, res.New)
}

func TestApply_FloorCannotExceedMax(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dev := newDevice(ctrl, "panel", 50, 100)
	dev.EXPECT().WriteBrightness(100).Return(nil).Times(1)

	res, err := control.Apply(dev, stepping.Linear{Step: 0}, control.Options{MinBrightness: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, res.New)
}

func TestApply_ClampsOverMaxReading(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dev := newDevice(ctrl, "panel", 120, 100)
	dev.EXPECT().WriteBrightness(100).Return(nil).Times(1)

	res, err := control.Apply(dev, stepping.Linear{Step: 0}, control.Options{})
	require.NoError(t, err)
	assert.Equal(t, 100, res.Current)
	assert.Equal(t, 100, res.New)
}

func TestApply_ReadErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dev := mocks.NewMockDevice(ctrl)
	dev.EXPECT().Info().Return(sysfs.DeviceInfo{Name: "panel"}).AnyTimes()
	dev.EXPECT().ReadBrightness().Return(0, errors.New("attribute unreadable"))

	_, err := control.Apply(dev, stepping.Linear{Step: 10}, control.Options{})
	assert.ErrorContains(t, err, "attribute unreadable")
}

func TestApply_ZeroMaxIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dev := newDevice(ctrl, "panel", 0, 0)

	_, err := control.Apply(dev, stepping.Linear{Step: 10}, control.Options{})
	assert.ErrorContains(t, err, "max brightness")
}

func TestApply_StrategyErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dev := newDevice(ctrl, "panel", 50, 100)

	// Bypassing NewBlend lets malformed parameters reach Calculate, which
	// must surface divergence instead of writing a stale value.
	bad := stepping.Blend{Step: 10, Ratio: 0.5, A: -1, B: 1}
	_, err := control.Apply(dev, bad, control.Options{})
	assert.ErrorIs(t, err, stepping.ErrDiverged)
}

func TestApply_WriteErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dev := newDevice(ctrl, "panel", 50, 100)
	dev.EXPECT().WriteBrightness(60).Return(errors.New("write rejected"))

	_, err := control.Apply(dev, stepping.Linear{Step: 10}, control.Options{})
	assert.ErrorContains(t, err, "write rejected")
}

func TestApplyAll_ContinuesPastFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broken := mocks.NewMockDevice(ctrl)
	broken.EXPECT().Info().Return(sysfs.DeviceInfo{Name: "broken"}).AnyTimes()
	broken.EXPECT().ReadBrightness().Return(0, errors.New("gone"))

	healthy := newDevice(ctrl, "healthy", 50, 100)
	healthy.EXPECT().WriteBrightness(60).Return(nil).Times(1)

	results, err := control.ApplyAll(
		[]sysfs.Device{broken, healthy},
		stepping.Linear{Step: 10},
		control.Options{},
	)

	require.Error(t, err)
	assert.ErrorContains(t, err, "broken")
	require.Len(t, results, 1)
	assert.Equal(t, "healthy", results[0].Info.Name)
	assert.Equal(t, 60, results[0].New)
}

func TestApplyAll_AllHealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := newDevice(ctrl, "first", 50, 100)
	first.EXPECT().WriteBrightness(60).Return(nil).Times(1)
	second := newDevice(ctrl, "second", 200, 255)
	second.EXPECT().WriteBrightness(210).Return(nil).Times(1)

	results, err := control.ApplyAll(
		[]sysfs.Device{first, second},
		stepping.Linear{Step: 10},
		control.Options{},
	)

	require.NoError(t, err)
	assert.Len(t, results, 2)
}
