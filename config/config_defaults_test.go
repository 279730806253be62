package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPinsOrDefault(t *testing.T) {
	empty := &Config{}
	pins := empty.PinsOrDefault()
	assert.Equal(t, DefaultMaxFuturePins, pins.MaxFuturePins)
	assert.Equal(t, DefaultHorizonDays, pins.DefaultHorizonDays)
	assert.Equal(t, DefaultMaxHorizonDays, pins.MaxHorizonDays)

	configured := &Config{Pins: &PinsConfig{MaxFuturePins: 10, DefaultHorizonDays: 3, MaxHorizonDays: 14}}
	assert.Equal(t, 10, configured.PinsOrDefault().MaxFuturePins)
	assert.Equal(t, 14, configured.PinsOrDefault().MaxHorizonDays)
}

func TestClusteringOrDefault(t *testing.T) {
	empty := &Config{}
	clustering := empty.ClusteringOrDefault()
	assert.Equal(t, DefaultClusterRadiusPx, clustering.RadiusPx)
	assert.Equal(t, DefaultClusterMaxZoom, clustering.MaxZoom)

	configured := &Config{Clustering: &ClusteringConfig{RadiusPx: 40.0, MaxZoom: 12}}
	assert.Equal(t, 40.0, configured.ClusteringOrDefault().RadiusPx)
	assert.Equal(t, 12, configured.ClusteringOrDefault().MaxZoom)
}
