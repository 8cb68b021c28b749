package arcgis

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/wirvsvirus/measures-dashboard/schema"
)

const (
	logPrefix       = "arcgis"
	defaultPageSize = 1000
	maxPages        = 100
)

var (
	ErrResponseStatus = fmt.Errorf("response status not ok")
	ErrTooManyPages   = fmt.Errorf("feature layer exceeds page limit")
)

// FeatureSource - fetch the polygon outlines of a feature layer
type FeatureSource interface {
	Features(ctx context.Context) ([]schema.Feature, error)
}

type client struct {
	url        string
	pageSize   int
	httpClient *http.Client
}

type errorResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Features queries every feature of the layer with all attributes, page by
// page until the server reports no more records.
func (c client) Features(ctx context.Context) ([]schema.Feature, error) {
	features := []schema.Feature{}
	for page := 0; page < maxPages; page++ {
		set, err := c.query(ctx, page*c.pageSize)
		if err != nil {
			return nil, err
		}
		features = append(features, set.Features...)

		log.WithFields(log.Fields{"prefix": logPrefix, "page": page, "features": len(set.Features)}).Debug("feature page fetched")
		if !set.ExceededTransferLimit || len(set.Features) == 0 {
			return features, nil
		}
	}
	return nil, ErrTooManyPages
}

func (c client) query(ctx context.Context, offset int) (*schema.FeatureSet, error) {
	params := url.Values{}
	params.Set("where", "1=1")
	params.Set("outFields", "*")
	params.Set("outSR", "4326")
	params.Set("f", "json")
	params.Set("resultOffset", strconv.Itoa(offset))
	params.Set("resultRecordCount", strconv.Itoa(c.pageSize))

	req, err := http.NewRequest(http.MethodGet, c.url+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req.WithContext(ctx))
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": c.url, "error": err}).Error("query feature layer")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrResponseStatus, resp.StatusCode)
	}

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("read feature layer response")
		return nil, err
	}

	// the service reports query errors with status 200
	var e errorResponse
	if err := json.Unmarshal(data, &e); err == nil && e.Error != nil {
		return nil, fmt.Errorf("%w: %d %s", ErrResponseStatus, e.Error.Code, e.Error.Message)
	}

	var set schema.FeatureSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

// New - new feature layer client for the query endpoint at url
func New(url string, httpClient *http.Client) FeatureSource {
	return &client{
		url:        url,
		pageSize:   defaultPageSize,
		httpClient: httpClient,
	}
}
