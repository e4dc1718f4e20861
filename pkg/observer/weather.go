package observer

import (
	"fmt"
	"io"
)

// Reading is the snapshot delivered to weather observers.
type Reading struct {
	Temperature float64 // °C
	Humidity    float64 // %
	Pressure    float64 // hPa
}

// ReadingObserver receives weather station updates.
type ReadingObserver interface {
	Update(r Reading)
}

// WeatherStation is the weather subject.
type WeatherStation struct {
	current   Reading
	observers []ReadingObserver
}

// NewWeatherStation returns an empty station.
func NewWeatherStation() *WeatherStation {
	return &WeatherStation{}
}

// Attach subscribes o in attachment order, suppressing duplicates.
func (w *WeatherStation) Attach(o ReadingObserver) bool {
	for _, existing := range w.observers {
		if existing == o {
			return false
		}
	}
	w.observers = append(w.observers, o)
	return true
}

// Detach unsubscribes o; a no-op when absent.
func (w *WeatherStation) Detach(o ReadingObserver) bool {
	for i, existing := range w.observers {
		if existing == o {
			w.observers = append(w.observers[:i], w.observers[i+1:]...)
			return true
		}
	}
	return false
}

// Notify delivers the current reading to every attached observer.
func (w *WeatherStation) Notify() {
	for _, o := range w.observers {
		o.Update(w.current)
	}
}

// SetMeasurements records a new reading and notifies observers.
func (w *WeatherStation) SetMeasurements(temperature, humidity, pressure float64) {
	w.current = Reading{Temperature: temperature, Humidity: humidity, Pressure: pressure}
	w.Notify()
}

// CurrentConditions shows the latest temperature and humidity.
type CurrentConditions struct {
	Out io.Writer
}

func (c *CurrentConditions) Update(r Reading) {
	fmt.Fprintln(c.Out, "  📺 Current Conditions Display:")
	fmt.Fprintf(c.Out, "     Temperature: %.1f°C\n", r.Temperature)
	fmt.Fprintf(c.Out, "     Humidity: %.1f%%\n", r.Humidity)
}

// Statistics accumulates temperature min/max/average over all readings.
type Statistics struct {
	Out      io.Writer
	readings []float64
}

func (s *Statistics) Update(r Reading) {
	s.readings = append(s.readings, r.Temperature)

	minT, maxT, sum := s.readings[0], s.readings[0], 0.0
	for _, t := range s.readings {
		if t < minT {
			minT = t
		}
		if t > maxT {
			maxT = t
		}
		sum += t
	}
	fmt.Fprintln(s.Out, "  📊 Statistics Display:")
	fmt.Fprintf(s.Out, "     Max Temperature: %.1f°C\n", maxT)
	fmt.Fprintf(s.Out, "     Min Temperature: %.1f°C\n", minT)
	fmt.Fprintf(s.Out, "     Average Temperature: %.1f°C\n", sum/float64(len(s.readings)))
	fmt.Fprintf(s.Out, "     Total Readings: %d\n", len(s.readings))
}

// Forecast predicts from the pressure trend between the last two readings.
type Forecast struct {
	Out      io.Writer
	last     float64
	haveLast bool
}

func (f *Forecast) Update(r Reading) {
	if !f.haveLast {
		f.last = r.Pressure
		f.haveLast = true
		fmt.Fprintln(f.Out, "  🌤️  Forecast Display: Waiting for more data...")
		return
	}

	forecast := "More of the same"
	switch {
	case r.Pressure > f.last:
		forecast = "Improving weather on the way!"
	case r.Pressure < f.last:
		forecast = "Watch out for cooler, rainy weather"
	}
	fmt.Fprintf(f.Out, "  🌤️  Forecast Display: %s\n", forecast)
	fmt.Fprintf(f.Out, "     Pressure trend: %.1f → %.1f hPa\n", f.last, r.Pressure)
	f.last = r.Pressure
}

// Alert thresholds for extreme conditions.
const (
	alertHighTemp     = 35.0
	alertFreezeTemp   = 0.0
	alertHighHumidity = 80.0
	alertLowHumidity  = 20.0
)

// Alerts reports extreme temperature and humidity conditions.
type Alerts struct {
	Out io.Writer
}

func (a *Alerts) Update(r Reading) {
	var lines []string
	if r.Temperature > alertHighTemp {
		lines = append(lines, "🔥 HIGH TEMPERATURE ALERT: Above 35°C!")
	} else if r.Temperature < alertFreezeTemp {
		lines = append(lines, "❄️  FREEZE ALERT: Temperature below freezing!")
	}
	if r.Humidity > alertHighHumidity {
		lines = append(lines, "💧 HIGH HUMIDITY ALERT: Above 80%!")
	} else if r.Humidity < alertLowHumidity {
		lines = append(lines, "🌵 LOW HUMIDITY ALERT: Below 20%!")
	}
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(a.Out, "  🚨 Alert System:")
	for _, line := range lines {
		fmt.Fprintf(a.Out, "     %s\n", line)
	}
}
