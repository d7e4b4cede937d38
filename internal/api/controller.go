package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openvoiceos/mk2fan/internal/controller"
)

type ControllerView struct {
	FanId      string                `json:"fanId"`
	Statistics controller.Statistics `json:"statistics"`
}

func registerControllerEndpoints(rest *echo.Echo, backend Backend) {
	group := rest.Group("/controller")

	group.GET("/", func(c echo.Context) error {
		data := make([]ControllerView, 0, len(backend.Controllers))
		for _, contr := range backend.Controllers {
			data = append(data, ControllerView{FanId: contr.GetFanId(), Statistics: contr.GetStatistics()})
		}
		return c.JSONPretty(http.StatusOK, data, indentationChar)
	})
	group.GET("/:"+urlParamId+"/", func(c echo.Context) error {
		id := c.Param(urlParamId)
		contr, exists := backend.findController(id)
		if !exists {
			return returnNotFound(c, id)
		}
		return c.JSONPretty(http.StatusOK, ControllerView{FanId: id, Statistics: contr.GetStatistics()}, indentationChar)
	})
}
