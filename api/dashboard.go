package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/wirvsvirus/measures-dashboard/consts"
	"github.com/wirvsvirus/measures-dashboard/loader"
	"github.com/wirvsvirus/measures-dashboard/pipeline"
	"github.com/wirvsvirus/measures-dashboard/schema"
	"github.com/wirvsvirus/measures-dashboard/series"
	"github.com/wirvsvirus/measures-dashboard/timeline"
	"github.com/wirvsvirus/measures-dashboard/utils"
)

type timelineQueryParams struct {
	Region     string   `form:"region" binding:"required"`
	Categories []string `form:"category"`
	Cumulative bool     `form:"cumulative"`
	Normalized bool     `form:"normalized"`
	LogScale   bool     `form:"log"`
	Lang       string   `form:"lang"`
}

// selection turns the query into a pipeline selection. Categories may be
// repeated or given as a comma separated list.
func (p timelineQueryParams) selection() pipeline.Selection {
	categories := []string{}
	for _, raw := range p.Categories {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				categories = append(categories, c)
			}
		}
	}

	return pipeline.Selection{
		Region:     consts.CanonicalRegion(p.Region),
		Categories: categories,
		Cumulative: p.Cumulative,
		LogScale:   p.LogScale,
		Normalized: p.Normalized,
	}
}

type mapQueryParams struct {
	Level string `form:"level"`
}

// abortWithDataError maps the errors of the data pipeline to responses.
func abortWithDataError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, loader.ErrDataUnavailable):
		abortWithEncoding(c, http.StatusServiceUnavailable, errorDataUnavailable, err)
	case errors.Is(err, timeline.ErrEmptyTimeline):
		abortWithEncoding(c, http.StatusNotFound, errorEmptyTimeline, err)
	case errors.Is(err, series.ErrUnknownPopulation):
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownPopulation, err)
	case errors.Is(err, pipeline.ErrNoRegion):
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
	default:
		shouldInterupt(err, c)
	}
}

func (s *Server) snapshot(c *gin.Context) (*schema.Snapshot, bool) {
	snapshot, err := s.snapshots.Snapshot(c.Request.Context())
	if err != nil {
		abortWithDataError(c, err)
		return nil, false
	}
	return snapshot, true
}

func (s *Server) getRegions(c *gin.Context) {
	snapshot, ok := s.snapshot(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"version": snapshot.Version,
		"regions": snapshot.Regions(),
	})
}

func (s *Server) getCategories(c *gin.Context) {
	snapshot, ok := s.snapshot(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"version":    snapshot.Version,
		"categories": snapshot.Categories(),
	})
}

func (s *Server) getTimeline(c *gin.Context) {
	var params timelineQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	snapshot, ok := s.snapshot(c)
	if !ok {
		return
	}

	opts := pipeline.Options{
		Population: s.population,
		Localizer:  utils.NewLocalizer(params.Lang, c.GetHeader("Accept-Language"), viper.GetString("i18n.default")),
	}
	result, err := pipeline.Run(snapshot, params.selection(), opts)
	if err != nil {
		abortWithDataError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) getMap(c *gin.Context) {
	var params mapQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	level := schema.LevelCounty
	if params.Level != "" {
		level = loader.ParseLevel(params.Level)
	}
	if level != schema.LevelState && level != schema.LevelCounty {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownLevel)
		return
	}

	resolver, ok := s.centroids[level]
	if !ok || resolver == nil {
		abortWithEncoding(c, http.StatusNotFound, errorMapLayerUnavailable)
		return
	}

	snapshot, ok := s.snapshot(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, pipeline.Map(snapshot, level, resolver))
}

func (s *Server) invalidateDataset(c *gin.Context) {
	s.snapshots.Invalidate()

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
