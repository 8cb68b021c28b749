package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/wirvsvirus/measures-dashboard/geo"
	"github.com/wirvsvirus/measures-dashboard/loader"
	"github.com/wirvsvirus/measures-dashboard/pipeline"
	"github.com/wirvsvirus/measures-dashboard/schema"
	"github.com/wirvsvirus/measures-dashboard/store/mocks"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var testSnapshot = &schema.Snapshot{
	Version: "v1",
	Cases: []schema.CaseRecord{
		{Region: "Bayern", Subregion: "SK München", CountyID: "09162", ReportDate: date(2020, 3, 1), NewInfected: 5},
		{Region: "Bayern", Subregion: "SK München", CountyID: "09162", ReportDate: date(2020, 3, 3), NewInfected: 3},
	},
	Actions: []schema.ActionRecord{
		{
			Location:   "Bayern",
			Label:      "Veranstaltungsverbot",
			StartDate:  date(2020, 3, 1),
			EndDate:    date(2020, 3, 20),
			Categories: []string{"Versammlungen", "Schulen"},
		},
		{
			Location:   "Hamburg",
			Label:      "Schulschließung",
			StartDate:  date(2020, 3, 16),
			EndDate:    date(2020, 4, 19),
			Categories: []string{"Schulen"},
		},
	},
}

type DashboardTestSuite struct {
	suite.Suite
	ctl       *gomock.Controller
	snapshots *mocks.MockSnapshotProvider
	server    *Server
	router    *gin.Engine
}

func (s *DashboardTestSuite) SetupTest() {
	s.ctl = gomock.NewController(s.T())
	s.snapshots = mocks.NewMockSnapshotProvider(s.ctl)
	s.server = NewServer(s.snapshots, nil, map[string]int64{"Bayern": 13000000}, map[schema.GeographicLevel]geo.CentroidResolver{
		schema.LevelCounty: geo.NewIndex(schema.LevelCounty, map[string]schema.Coordinate{
			"09162": {Latitude: 48.14, Longitude: 11.58},
		}),
	})

	gin.SetMode(gin.TestMode)
	s.router = s.server.setupRouter()
}

func (s *DashboardTestSuite) TearDownTest() {
	s.ctl.Finish()
}

func (s *DashboardTestSuite) request(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *DashboardTestSuite) errorCode(w *httptest.ResponseRecorder) int64 {
	var resp ErrorResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Code
}

func (s *DashboardTestSuite) TestPing() {
	w := s.request("GET", "/api/ping")
	s.Equal(http.StatusOK, w.Code)
	s.Equal("PONG", w.Body.String())
}

func (s *DashboardTestSuite) TestHealthz() {
	w := s.request("GET", "/healthz")
	s.Equal(http.StatusOK, w.Code)
}

func (s *DashboardTestSuite) TestRegions() {
	s.snapshots.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot, nil).Times(1)

	w := s.request("GET", "/api/regions")
	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Version string   `json:"version"`
		Regions []string `json:"regions"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("v1", resp.Version)
	s.Equal([]string{"Bayern", "Hamburg"}, resp.Regions)
}

func (s *DashboardTestSuite) TestCategories() {
	s.snapshots.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot, nil).Times(1)

	w := s.request("GET", "/api/categories")
	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Categories []string `json:"categories"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal([]string{"Schulen", "Versammlungen"}, resp.Categories)
}

func (s *DashboardTestSuite) TestTimeline() {
	s.snapshots.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot, nil).Times(1)

	w := s.request("GET", "/api/timeline?region=Bayern&category=Schulen&cumulative=true")
	s.Equal(http.StatusOK, w.Code)

	var result pipeline.Result
	s.NoError(json.Unmarshal(w.Body.Bytes(), &result))
	s.Equal(schema.Cumulative, result.Mode)
	s.Len(result.Timeline, 20)
	s.Equal(float64(8), result.Series[19].Infected)
	s.Len(result.Markers, 1)
	s.Equal("Veranstaltungsverbot<br>Beginn", result.Markers[0].SegmentText[0])
}

func (s *DashboardTestSuite) TestTimelineCommaSeparatedCategories() {
	s.snapshots.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot, nil).Times(1)

	w := s.request("GET", "/api/timeline?region=Hamburg&category=Versammlungen,Schulen&lang=en")
	s.Equal(http.StatusOK, w.Code)

	var result pipeline.Result
	s.NoError(json.Unmarshal(w.Body.Bytes(), &result))
	s.Len(result.Markers, 1)
	s.Equal("Schulschließung<br>Start", result.Markers[0].SegmentText[0])
}

func (s *DashboardTestSuite) TestTimelineRegionAlias() {
	s.snapshots.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot, nil).Times(1)

	w := s.request("GET", "/api/timeline?region=%20BY%20&category=Schulen")
	s.Equal(http.StatusOK, w.Code)

	var result pipeline.Result
	s.NoError(json.Unmarshal(w.Body.Bytes(), &result))
	s.Equal("Bayern", result.Region)
	s.Len(result.Markers, 1)
}

func (s *DashboardTestSuite) TestTimelineWithoutRegion() {
	w := s.request("GET", "/api/timeline?category=Schulen")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(errorInvalidParameters.Code, s.errorCode(w))
}

func (s *DashboardTestSuite) TestTimelineEmpty() {
	s.snapshots.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot, nil).Times(1)

	w := s.request("GET", "/api/timeline?region=Bremen&category=all")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(errorEmptyTimeline.Code, s.errorCode(w))
}

func (s *DashboardTestSuite) TestTimelineUnknownPopulation() {
	s.snapshots.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot, nil).Times(1)

	w := s.request("GET", "/api/timeline?region=Hamburg&category=Schulen&normalized=true")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(errorUnknownPopulation.Code, s.errorCode(w))
}

func (s *DashboardTestSuite) TestDataUnavailable() {
	s.snapshots.EXPECT().Snapshot(gomock.Any()).Return(nil, fmt.Errorf("%w: cases.csv", loader.ErrDataUnavailable)).Times(1)

	w := s.request("GET", "/api/regions")
	s.Equal(http.StatusServiceUnavailable, w.Code)
	s.Equal(errorDataUnavailable.Code, s.errorCode(w))
}

func (s *DashboardTestSuite) TestMap() {
	s.snapshots.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot, nil).Times(1)

	w := s.request("GET", "/api/map?level=county")
	s.Equal(http.StatusOK, w.Code)

	var result pipeline.MapResult
	s.NoError(json.Unmarshal(w.Body.Bytes(), &result))
	s.Equal(schema.LevelCounty, result.Level)
	s.Len(result.Rows, 2)
	s.Equal(int64(8), result.Rows[1].CumulativeInfected)
	s.Equal(48.14, result.Rows[1].Latitude)
}

func (s *DashboardTestSuite) TestMapUnknownLevel() {
	w := s.request("GET", "/api/map?level=planet")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(errorUnknownLevel.Code, s.errorCode(w))

	w = s.request("GET", "/api/map?level=state")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(errorMapLayerUnavailable.Code, s.errorCode(w))
}

func (s *DashboardTestSuite) TestInvalidateRequiresToken() {
	w := s.request("POST", "/secret/datasets/invalidate")
	s.Equal(http.StatusForbidden, w.Code)
}

func TestDashboardTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardTestSuite))
}

func TestInvalidateDataset(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	snapshots := mocks.NewMockSnapshotProvider(ctl)
	snapshots.EXPECT().Invalidate().Times(1)

	s := NewServer(snapshots, nil, nil, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.apikeyAuthentication("secret"))
	router.POST("/", s.invalidateDataset)

	req := httptest.NewRequest("POST", "/", nil)
	req.Header.Set("Api-Token", "secret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestHealthzPingsDatabase(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := mocks.NewMockPinger(ctl)
	db.EXPECT().Ping().Return(fmt.Errorf("connection refused")).Times(1)

	s := NewServer(nil, db, nil, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/healthz", s.healthz)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")
}
