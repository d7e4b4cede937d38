package api

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/openvoiceos/mk2fan/internal/sensors"
	"github.com/qdm12/reprint"
)

type SensorView struct {
	Id     string                     `json:"id"`
	Config configuration.SensorConfig `json:"config"`
	// Value is the current temperature in °C, nil if the sensor could not be read
	Value *float64 `json:"value"`
	Error string   `json:"error,omitempty"`
}

func newSensorView(sensor sensors.Sensor) SensorView {
	view := SensorView{
		Id:     sensor.GetId(),
		Config: reprint.This(sensor.GetConfig()).(configuration.SensorConfig),
	}
	value, err := sensor.GetValue()
	if err != nil {
		view.Error = err.Error()
	} else {
		view.Value = &value
	}
	return view
}

func registerSensorEndpoints(rest *echo.Echo) {
	group := rest.Group("/sensor")

	group.GET("/", getSensors)
	group.GET("/:"+urlParamId+"/", getSensor)
}

func getSensors(c echo.Context) error {
	ids := sensors.SensorMap.Keys()
	sort.Strings(ids)

	data := make([]SensorView, 0, len(ids))
	for _, id := range ids {
		sensor, exists := sensors.SensorMap.Get(id)
		if exists {
			data = append(data, newSensorView(sensor))
		}
	}
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getSensor(c echo.Context) error {
	id := c.Param(urlParamId)

	sensor, exists := sensors.SensorMap.Get(id)
	if !exists {
		return returnNotFound(c, id)
	}
	return c.JSONPretty(http.StatusOK, newSensorView(sensor), indentationChar)
}
