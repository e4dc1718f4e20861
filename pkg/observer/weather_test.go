package observer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatisticsAccumulate(t *testing.T) {
	var buf bytes.Buffer
	station := NewWeatherStation()
	station.Attach(&Statistics{Out: &buf})

	station.SetMeasurements(25.0, 65.0, 1013.2)
	station.SetMeasurements(27.5, 70.0, 1012.8)
	station.SetMeasurements(30.0, 75.0, 1010.5)

	out := buf.String()
	assert.Contains(t, out, "Max Temperature: 30.0°C")
	assert.Contains(t, out, "Min Temperature: 25.0°C")
	assert.Contains(t, out, "Average Temperature: 27.5°C")
	assert.Contains(t, out, "Total Readings: 3")
}

func TestForecastFollowsPressureTrend(t *testing.T) {
	var buf bytes.Buffer
	station := NewWeatherStation()
	station.Attach(&Forecast{Out: &buf})

	station.SetMeasurements(25.0, 65.0, 1013.2)
	assert.Contains(t, buf.String(), "Waiting for more data")

	buf.Reset()
	station.SetMeasurements(25.0, 65.0, 1010.0)
	assert.Contains(t, buf.String(), "cooler, rainy weather")

	buf.Reset()
	station.SetMeasurements(25.0, 65.0, 1015.0)
	assert.Contains(t, buf.String(), "Improving weather")
}

func TestAlertsFireOnExtremes(t *testing.T) {
	tests := []struct {
		name        string
		temperature float64
		humidity    float64
		want        []string
	}{
		{name: "heat and humidity", temperature: 38.0, humidity: 85.0, want: []string{"HIGH TEMPERATURE", "HIGH HUMIDITY"}},
		{name: "freeze and dry", temperature: -2.0, humidity: 15.0, want: []string{"FREEZE ALERT", "LOW HUMIDITY"}},
		{name: "normal conditions are silent", temperature: 25.0, humidity: 65.0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			station := NewWeatherStation()
			station.Attach(&Alerts{Out: &buf})

			station.SetMeasurements(tt.temperature, tt.humidity, 1013.0)
			if tt.want == nil {
				assert.Empty(t, buf.String())
				return
			}
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestWeatherStationDetach(t *testing.T) {
	var buf bytes.Buffer
	station := NewWeatherStation()
	display := &CurrentConditions{Out: &buf}
	station.Attach(display)

	station.SetMeasurements(25.0, 65.0, 1013.2)
	assert.Contains(t, buf.String(), "Temperature: 25.0°C")

	buf.Reset()
	station.Detach(display)
	station.SetMeasurements(30.0, 70.0, 1012.0)
	assert.Empty(t, buf.String())
}
