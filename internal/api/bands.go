package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type BandView struct {
	Index    int    `json:"index"`
	Interval string `json:"interval"`
	Speed    int    `json:"speed"`
}

func registerBandEndpoints(rest *echo.Echo, backend Backend) {
	group := rest.Group("/band")

	group.GET("/", func(c echo.Context) error {
		var data []BandView
		if backend.Table != nil {
			for i, band := range backend.Table.Bands() {
				data = append(data, BandView{
					Index:    i,
					Interval: backend.Table.Describe(i),
					Speed:    band.Speed,
				})
			}
		}
		return c.JSONPretty(http.StatusOK, data, indentationChar)
	})
}
