package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openvoiceos/mk2fan/internal/bands"
	"github.com/openvoiceos/mk2fan/internal/controller"
	"github.com/openvoiceos/mk2fan/internal/fans"
)

const (
	urlParamId      = "id"
	indentationChar = "  "
)

type (
	Result struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
)

// Backend holds the running objects exposed by the rest api.
type Backend struct {
	Controls    []controller.FanControl
	Controllers []controller.ThermalController
	Table       *bands.Table
}

// findControl resolves a fan registered in fans.FanMap to the control driving it.
func (b Backend) findControl(fanId string) (controller.FanControl, bool) {
	fan, exists := fans.FanMap.Get(fanId)
	if !exists {
		return nil, false
	}
	for _, control := range b.Controls {
		if control.GetFan().GetId() == fan.GetId() {
			return control, true
		}
	}
	return nil, false
}

func (b Backend) findController(fanId string) (controller.ThermalController, bool) {
	for _, contr := range b.Controllers {
		if contr.GetFanId() == fanId {
			return contr, true
		}
	}
	return nil, false
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// return a "not found" message
func returnNotFound(c echo.Context, id string) (err error) {
	return c.JSONPretty(http.StatusNotFound, &Result{
		Name:    "Not found",
		Message: "No item with id '" + id + "' found",
	}, indentationChar)
}
