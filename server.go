package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/kjcma/portfolio/internal/config"
	"github.com/kjcma/portfolio/internal/portfolio"
)

const shutdownTimeout = 10 * time.Second

func newRouter(conf *config.Config, site *portfolio.Site, logger *log.Logger) (*gin.Engine, error) {
	gin.SetMode(conf.GinMode)

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestIDMiddleware(), requestLogMiddleware(logger))
	r.SetHTMLTemplate(tmpl)

	r.Static("/static", conf.StaticDir)
	r.StaticFile("/resume.pdf", conf.ResumePath)

	for _, page := range site.Pages() {
		r.GET(page.Route, pageHandler(page))
	}

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "not-found.html", gin.H{
			"path": c.Request.URL.Path,
		})
	})

	return r, nil
}

// pageData is what page.html and projects.html render: the page view plus an
// optional notice shown above the engagement list.
type pageData struct {
	portfolio.View
	Error string
}

// isFragmentRequest reports whether htmx wants only the engagement list.
// History restores after a cache miss carry HX-Request too but need the
// whole document.
func isFragmentRequest(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true" && c.GetHeader("HX-History-Restore-Request") != "true"
}

// pageHandler renders a portfolio page with the tab named in ?tab=. HTMX
// requests get only the engagement list so the tabs can swap it in place.
func pageHandler(page *portfolio.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Vary", "HX-Request, HX-History-Restore-Request")

		tab := portfolio.ParseTab(c.Query("tab"))
		state, err := page.Policy.Reduce(portfolio.NewFilterState(), portfolio.SelectTab{Tab: tab})
		if err != nil {
			msg := fmt.Sprintf("There is no %q tab on this page.", tab)
			if isFragmentRequest(c) {
				c.HTML(http.StatusBadRequest, "tab-error.html", gin.H{
					"error": msg,
					"route": page.Route,
				})
				return
			}
			// Full page on the all tab, with the error above the list.
			c.HTML(http.StatusBadRequest, "page.html", pageData{View: page.View(state), Error: msg})
			return
		}

		data := pageData{View: page.View(state)}
		if isFragmentRequest(c) {
			c.HTML(http.StatusOK, "projects.html", data)
			return
		}
		c.HTML(http.StatusOK, "page.html", data)
	}
}

// serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests.
func serve(ctx context.Context, conf *config.Config, handler http.Handler, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              conf.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "mode", conf.GinMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
