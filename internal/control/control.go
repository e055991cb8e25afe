// SPDX-License-Identifier: GPL-3.0-only

// Package control runs brightness adjustments: it reads a device, applies
// a stepping strategy, clamps the result, and writes it back.
package control

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/licht-go/licht/internal/brightness"
	"github.com/licht-go/licht/internal/stepping"
	"github.com/licht-go/licht/internal/sysfs"
)

// Result is the before/after record of a single adjustment, returned for
// the caller to report.
type Result struct {
	Info    sysfs.DeviceInfo
	Current int
	Max     int
	New     int
}

// Options controls how an adjustment is applied.
type Options struct {
	// MinBrightness is the floor the clamped result may not go below.
	MinBrightness int

	// DryRun computes and reports without writing to the device.
	DryRun bool
}

// Apply computes and persists a new brightness for one device.
func Apply(dev sysfs.Device, strat stepping.Strategy, opts Options) (Result, error) {
	info := dev.Info()

	current, err := dev.ReadBrightness()
	if err != nil {
		return Result{}, err
	}
	max, err := dev.ReadMaxBrightness()
	if err != nil {
		return Result{}, err
	}
	if max <= 0 {
		return Result{}, fmt.Errorf("device %s reports max brightness %d", info.Name, max)
	}
	if current > max {
		// Some drivers briefly report above the ceiling.
		current = max
	}

	floor := opts.MinBrightness
	if floor > max {
		floor = max
	}

	raw, err := strat.Calculate(current, max)
	if err != nil {
		return Result{}, err
	}
	newValue := brightness.Clamp(raw, floor, max)

	res := Result{Info: info, Current: current, Max: max, New: newValue}
	log.Debug().
		Str("device", info.Name).
		Int("current", current).
		Int("max", max).
		Float64("raw", raw).
		Int("new", newValue).
		Bool("dryRun", opts.DryRun).
		Msg("Computed brightness")

	if opts.DryRun {
		return res, nil
	}
	if err := dev.WriteBrightness(newValue); err != nil {
		return res, err
	}
	return res, nil
}

// ApplyAll adjusts every device independently and sequentially. A failing
// device is logged and skipped so the rest still get adjusted; the joined
// error reports every failure once the batch is done.
func ApplyAll(devs []sysfs.Device, strat stepping.Strategy, opts Options) ([]Result, error) {
	var results []Result
	var errs []error
	for _, dev := range devs {
		res, err := Apply(dev, strat, opts)
		if err != nil {
			log.Error().Err(err).Str("device", dev.Info().Name).Msg("Adjustment failed")
			errs = append(errs, fmt.Errorf("%s: %w", dev.Info().Name, err))
			continue
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}
