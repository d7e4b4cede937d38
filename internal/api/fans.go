package api

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/openvoiceos/mk2fan/internal/controller"
	"github.com/openvoiceos/mk2fan/internal/fans"
	"github.com/qdm12/reprint"
)

type FanView struct {
	Id     string                  `json:"id"`
	Config configuration.FanConfig `json:"config"`
	Pwm    int                     `json:"pwm"`
	Speed  int                     `json:"speed"`
}

func newFanView(control controller.FanControl) FanView {
	fan := control.GetFan()
	return FanView{
		Id:     fan.GetId(),
		Config: reprint.This(fan.GetConfig()).(configuration.FanConfig),
		Pwm:    control.GetPwm(),
		Speed:  control.GetFanSpeed(),
	}
}

func registerFanEndpoints(rest *echo.Echo, backend Backend) {
	group := rest.Group("/fan")

	group.GET("/", func(c echo.Context) error {
		ids := fans.FanMap.Keys()
		sort.Strings(ids)

		data := make([]FanView, 0, len(ids))
		for _, id := range ids {
			control, exists := backend.findControl(id)
			if exists {
				data = append(data, newFanView(control))
			}
		}
		return c.JSONPretty(http.StatusOK, data, indentationChar)
	})
	group.GET("/:"+urlParamId+"/", func(c echo.Context) error {
		id := c.Param(urlParamId)
		control, exists := backend.findControl(id)
		if !exists {
			return returnNotFound(c, id)
		}
		return c.JSONPretty(http.StatusOK, newFanView(control), indentationChar)
	})
}
