package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sweep "github.com/tphakala/go-audio-sweep"
)

func defaultOptions() *options {
	return &options{
		output:     "out.wav",
		duration:   defaultDuration,
		format:     "wav",
		leftStart:  defaultStartFreq,
		leftEnd:    defaultEndFreq,
		rightStart: inheritFreq,
		rightEnd:   inheritFreq,
		rate:       defaultRate,
		bits:       defaultBitDepth,
		volume:     defaultVolume,
	}
}

func TestConfigRightChannelInheritsLeft(t *testing.T) {
	o := defaultOptions()
	o.leftStart = 100
	o.leftEnd = 8000

	cfg, format, err := o.config()
	require.NoError(t, err)

	assert.Equal(t, sweep.FormatWAV, format)
	assert.Equal(t, cfg.Left, cfg.Right)
}

func TestConfigRightChannelOverride(t *testing.T) {
	o := defaultOptions()
	o.rightStart = 15000
	o.rightEnd = 200

	cfg, _, err := o.config()
	require.NoError(t, err)

	assert.Equal(t, sweep.ChannelSweep{StartFreq: 15000, EndFreq: 200}, cfg.Right)
	assert.Equal(t, sweep.ChannelSweep{StartFreq: defaultStartFreq, EndFreq: defaultEndFreq}, cfg.Left)
}

func TestConfigFormats(t *testing.T) {
	o := defaultOptions()
	o.format = "pcm"

	_, format, err := o.config()
	require.NoError(t, err)
	assert.Equal(t, sweep.FormatRaw, format)

	o.format = "mp3"
	_, _, err = o.config()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestConfigLogSweepKind(t *testing.T) {
	o := defaultOptions()
	o.logSweep = true

	cfg, _, err := o.config()
	require.NoError(t, err)
	assert.Equal(t, sweep.Logarithmic, cfg.Kind)
}

func TestConfigRejectsInvalidParameters(t *testing.T) {
	o := defaultOptions()
	o.volume = 2.0

	_, _, err := o.config()
	require.ErrorIs(t, err, sweep.ErrInvalidConfig)
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "up", direction(sweep.ChannelSweep{StartFreq: 20, EndFreq: 20000}))
	assert.Equal(t, "down", direction(sweep.ChannelSweep{StartFreq: 20000, EndFreq: 20}))
}
