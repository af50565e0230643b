package web

import (
	"net/http"
	"strconv"

	"plume/config"
	"plume/models"
	"plume/web/api"
	"plume/web/pages"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// writePage sends a rendered HTML document
func writePage(ctx rweb.Context, html string) error {
	ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.WriteHTML(html)
}

// redirect sends a 302 to the given location
func redirect(ctx rweb.Context, location string) error {
	ctx.Response().SetHeader("Location", location)
	ctx.SetStatus(http.StatusFound)
	return nil
}

// setupRoutes configures all application routes
func setupRoutes(s *rweb.Server, cfg *config.Config) {
	base := pages.Site{Title: cfg.Title, Scheme: cfg.Scheme}

	// siteFor copies the base site data and adds the signed-in admin
	siteFor := func(ctx rweb.Context) pages.Site {
		site := base
		if username, ok := requireAdmin(ctx); ok {
			site.Admin = username
		}
		return site
	}

	// Page routes - HTML responses

	s.Get("/", func(ctx rweb.Context) error {
		summaries, err := models.ListRatingSummaries()
		if err != nil {
			logger.LogErr(serr.Wrap(err, "failed to load rating summaries"))
		}
		return writePage(ctx, pages.Catalog{Site: siteFor(ctx), Summaries: summaries}.Render())
	})

	s.Get("/components/:name", func(ctx rweb.Context) error {
		name := ctx.Request().Param("name")
		if !pages.KnownComponent(name) {
			ctx.SetStatus(http.StatusNotFound)
			return writePage(ctx, pages.NotFound{Site: siteFor(ctx), Path: ctx.Request().Path()}.Render())
		}

		summary, err := models.GetRatingSummary(name)
		if err != nil {
			logger.LogErr(serr.Wrap(err, "failed to load rating summary"), "component", name)
		}
		return writePage(ctx, pages.Component{Site: siteFor(ctx), Name: name, Summary: summary}.Render())
	})

	// HTMX endpoint: records a score and swaps the rating widget in place
	s.Post("/components/:name/rate", func(ctx rweb.Context) error {
		name := ctx.Request().Param("name")
		if !pages.KnownComponent(name) {
			ctx.SetStatus(http.StatusNotFound)
			return nil
		}

		score, err := strconv.Atoi(ctx.Request().FormValue("score"))
		if err != nil {
			ctx.SetStatus(http.StatusBadRequest)
			return writePage(ctx, pages.RatingWidget(name, models.RatingSummary{}, "Pick a star first"))
		}

		if _, err := models.SaveRating(name, score); err != nil {
			logger.LogErr(serr.Wrap(err, "failed to save rating"), "component", name)
			ctx.SetStatus(http.StatusInternalServerError)
			return writePage(ctx, pages.RatingWidget(name, models.RatingSummary{}, "Could not save your rating"))
		}

		summary, err := models.GetRatingSummary(name)
		if err != nil {
			logger.LogErr(serr.Wrap(err, "failed to reload rating summary"), "component", name)
		}
		return writePage(ctx, pages.RatingWidget(name, summary, ""))
	})

	s.Get("/compare", func(ctx rweb.Context) error {
		cmp := pages.Compare{
			Site:         siteFor(ctx),
			Component:    ctx.Request().QueryParam("component"),
			LeftVariant:  ctx.Request().QueryParam("lv"),
			LeftColor:    ctx.Request().QueryParam("lc"),
			RightVariant: ctx.Request().QueryParam("rv"),
			RightColor:   ctx.Request().QueryParam("rc"),
		}
		return writePage(ctx, cmp.Render())
	})

	s.Get("/playground", func(ctx rweb.Context) error {
		pg := pages.Playground{
			Site:      siteFor(ctx),
			Component: ctx.Request().QueryParam("component"),
			Attrs:     pages.PlaygroundAttrs(ctx.Request().QueryParam("variant"), ctx.Request().QueryParam("color"), ctx.Request().QueryParam("size")),
			Saved:     ctx.Request().QueryParam("saved") != "",
		}

		// A snapshot guid preloads its stored configuration
		if guid := ctx.Request().QueryParam("snapshot"); guid != "" {
			snap, err := models.GetSnapshotByGUID(guid)
			if err != nil {
				logger.LogErr(serr.Wrap(err, "failed to load snapshot"), "guid", guid)
			}
			if snap != nil {
				pg.Component = snap.Component
				pg.Attrs = snap.Attrs
				pg.SnapshotName = snap.Name
			}
		}

		snapshots, err := models.ListSnapshots()
		if err != nil {
			logger.LogErr(serr.Wrap(err, "failed to list snapshots"))
		}
		pg.Snapshots = snapshots

		return writePage(ctx, pg.Render())
	})

	s.Post("/playground/save", func(ctx rweb.Context) error {
		input := models.SnapshotInput{
			Name:      ctx.Request().FormValue("name"),
			Component: ctx.Request().FormValue("component"),
			Attrs: pages.PlaygroundAttrs(
				ctx.Request().FormValue("variant"),
				ctx.Request().FormValue("color"),
				ctx.Request().FormValue("size"),
			),
		}

		snap, err := models.CreateSnapshot(input)
		if err != nil {
			logger.LogErr(serr.Wrap(err, "failed to save snapshot"), "name", input.Name)
			return redirect(ctx, "/playground")
		}
		return redirect(ctx, "/playground?snapshot="+snap.GUID+"&saved=1")
	})

	// Admin routes

	s.Get("/admin/login", func(ctx rweb.Context) error {
		if _, ok := requireAdmin(ctx); ok {
			return redirect(ctx, "/admin")
		}
		return writePage(ctx, pages.AdminLogin{Site: siteFor(ctx)}.Render())
	})

	s.Post("/admin/login", func(ctx rweb.Context) error {
		username := ctx.Request().FormValue("username")
		password := ctx.Request().FormValue("password")

		token, err := models.AuthenticateAdmin(username, password)
		if err != nil {
			login := pages.AdminLogin{Site: siteFor(ctx), Username: username, Failed: true}
			ctx.SetStatus(http.StatusUnauthorized)
			return writePage(ctx, login.Render())
		}

		if err := ctx.SetCookie(SessionCookie, token); err != nil {
			logger.LogErr(err, "failed to set session cookie")
		}
		logger.Info("Admin signed in", "username", username)
		return redirect(ctx, "/admin")
	})

	s.Post("/admin/logout", func(ctx rweb.Context) error {
		if err := ctx.SetCookie(SessionCookie, ""); err != nil {
			logger.LogErr(err, "failed to clear session cookie")
		}
		return redirect(ctx, "/")
	})

	s.Get("/admin", func(ctx rweb.Context) error {
		username, ok := requireAdmin(ctx)
		if !ok {
			return redirectToLogin(ctx)
		}

		summaries, err := models.ListRatingSummaries()
		if err != nil {
			logger.LogErr(serr.Wrap(err, "failed to load rating summaries"))
		}
		snapshots, err := models.ListSnapshots()
		if err != nil {
			logger.LogErr(serr.Wrap(err, "failed to list snapshots"))
		}

		dash := pages.AdminDashboard{
			Site:      siteFor(ctx),
			Username:  username,
			Summaries: summaries,
			Snapshots: snapshots,
		}
		return writePage(ctx, dash.Render())
	})

	// API v1 routes - JSON responses

	s.Get("/api/v1/health", api.Health)

	s.Get("/api/v1/ratings", api.ListRatings)
	s.Get("/api/v1/ratings/:component", api.GetRating)
	s.Post("/api/v1/ratings/:component", api.SubmitRating)

	s.Get("/api/v1/snapshots", api.ListSnapshots)
	s.Post("/api/v1/snapshots", api.CreateSnapshot)
	s.Get("/api/v1/snapshots/:guid", api.GetSnapshot)
	s.Put("/api/v1/snapshots/:guid", api.UpdateSnapshot)
	s.Delete("/api/v1/snapshots/:guid", api.DeleteSnapshot)
}
