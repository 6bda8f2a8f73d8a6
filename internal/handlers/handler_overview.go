package handlers

import (
	"net/http"
	"supplier-admin/internal/i18n"
	"supplier-admin/internal/middlewares"
	"supplier-admin/internal/web"
)

const OverviewPath = "/overview"

func GETRootHandler(ctx *middlewares.AppContext) {
	ctx.Redirect(OverviewPath, http.StatusFound)
}

func GETOverviewHandler(ctx *middlewares.AppContext) {
	ctx.RenderPage(http.StatusOK, web.PageOverview, web.PageData{
		Title: ctx.T(i18n.KeyOverviewTitle),
	})
}
