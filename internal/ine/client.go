package ine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"lusolens/server/internal/models"
)

// Indicator codes for real estate analysis.
const (
	IndicatorPopulation         = "0002044" // População residente
	IndicatorHouseholds         = "0002046" // Famílias clássicas
	IndicatorBuildings          = "0002048" // Edifícios
	IndicatorDwellings          = "0002049" // Alojamentos
	IndicatorConstructionPermit = "0008862" // Licenças de construção
	IndicatorHousePrices        = "0008873" // Preços da habitação
	IndicatorConstructionCosts  = "0008874" // Custos de construção
)

// Endpoints holds the three logical INE API surfaces. Tests point these at
// an httptest server.
type Endpoints struct {
	Indicator string
	Metadata  string
	Catalog   string
}

// DefaultEndpoints are the public INE JSON services.
var DefaultEndpoints = Endpoints{
	Indicator: "https://www.ine.pt/ine/json_indicador",
	Metadata:  "https://www.ine.pt/ine/json_metadata",
	Catalog:   "https://www.ine.pt/ine/json_indicador",
}

// QueryOptions narrows an indicator query. GeoIDs filters to specific
// geographic codes; Lang defaults to PT.
type QueryOptions struct {
	GeoIDs    []string
	StartDate string
	EndDate   string
	Lang      string
}

// Client wraps the INE statistics API. Read paths with safe empty defaults
// recover from failures locally and log a warning instead of propagating.
type Client struct {
	endpoints Endpoints
	apiKey    string
	client    *http.Client
	logger    *logrus.Logger
}

func NewClient(endpoints Endpoints, apiKey string, timeout time.Duration, logger *logrus.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoints: endpoints,
		apiKey:    apiKey,
		client:    &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]models.IndicatorRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("INE request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("INE API error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	var rows []models.IndicatorRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}
	return rows, nil
}

// IndicatorData fetches raw rows for one indicator.
func (c *Client) IndicatorData(ctx context.Context, indicatorID string, opts QueryOptions) ([]models.IndicatorRow, error) {
	lang := opts.Lang
	if lang == "" {
		lang = "PT"
	}

	params := url.Values{
		"indic": []string{indicatorID},
		"lang":  []string{lang},
	}
	if opts.StartDate != "" {
		params.Set("startDate", opts.StartDate)
	}
	if opts.EndDate != "" {
		params.Set("endDate", opts.EndDate)
	}
	if len(opts.GeoIDs) > 0 {
		params.Set("geo", strings.Join(opts.GeoIDs, ","))
	}

	return c.get(ctx, c.endpoints.Indicator, params)
}

// Metadata fetches descriptive rows for one indicator.
func (c *Client) Metadata(ctx context.Context, indicatorID string) ([]models.IndicatorRow, error) {
	params := url.Values{"indic": []string{indicatorID}}
	return c.get(ctx, c.endpoints.Metadata, params)
}

// CatalogData fetches the full indicator catalog.
func (c *Client) CatalogData(ctx context.Context) ([]models.IndicatorRow, error) {
	return c.get(ctx, c.endpoints.Catalog, nil)
}

// IsIndicatorValid reports whether an indicator's metadata can be fetched
// and is non-empty.
func (c *Client) IsIndicatorValid(ctx context.Context, indicatorID string) bool {
	metadata, err := c.Metadata(ctx, indicatorID)
	if err != nil {
		c.logger.WithError(err).WithField("indicator", indicatorID).Warn("Indicator validation failed")
		return false
	}
	return len(metadata) > 0
}

// codeAliases and friends are the ordered candidate keys the INE API has
// been observed to use for the same concept; the first present key wins.
var (
	codeAliases   = []string{"dim_3", "codigo", "geo_cod"}
	nameAliases   = []string{"dim_3_t", "nome", "geo_name"}
	valueAliases  = []string{"valor", "value"}
	periodAliases = []string{"periodo", "period"}
)

// PopulationData fetches and normalizes resident-population rows. Failures
// degrade to an empty result.
func (c *Client) PopulationData(ctx context.Context, municipalityCode string) []models.INEData {
	opts := QueryOptions{}
	if municipalityCode != "" {
		opts.GeoIDs = []string{municipalityCode}
	}

	rows, err := c.IndicatorData(ctx, IndicatorPopulation, opts)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to fetch population data")
		return []models.INEData{}
	}

	out := make([]models.INEData, 0, len(rows))
	for _, row := range rows {
		code := probeString(row, codeAliases)
		out = append(out, models.INEData{
			Code:       code,
			Name:       probeString(row, nameAliases),
			Level:      LevelFromCode(code),
			Population: probeInt(row, valueAliases),
			LastCensus: probeStringDefault(row, periodAliases, "2021"),
		})
	}
	return out
}

// HousePriceData fetches housing-price rows. Errors propagate for the
// facade to map to its empty default.
func (c *Client) HousePriceData(ctx context.Context, municipalityCode string) ([]models.IndicatorRow, error) {
	opts := QueryOptions{}
	if municipalityCode != "" {
		opts.GeoIDs = []string{municipalityCode}
	}
	return c.IndicatorData(ctx, IndicatorHousePrices, opts)
}

// ConstructionData fetches permit and cost rows concurrently.
func (c *Client) ConstructionData(ctx context.Context, municipalityCode string) (models.ConstructionData, error) {
	opts := QueryOptions{}
	if municipalityCode != "" {
		opts.GeoIDs = []string{municipalityCode}
	}

	var permits, costs []models.IndicatorRow
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		permits, err = c.IndicatorData(ctx, IndicatorConstructionPermit, opts)
		return err
	})
	g.Go(func() error {
		var err error
		costs, err = c.IndicatorData(ctx, IndicatorConstructionCosts, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.ConstructionData{}, err
	}

	if permits == nil {
		permits = []models.IndicatorRow{}
	}
	if costs == nil {
		costs = []models.IndicatorRow{}
	}
	return models.ConstructionData{Permits: permits, Costs: costs}, nil
}

// MunicipalityData fans out the population, housing and construction calls
// concurrently and joins them. Any sub-call failure propagates; the facade
// catches it and substitutes an all-empty composite.
func (c *Client) MunicipalityData(ctx context.Context, municipalityCode string) (models.MunicipalityData, error) {
	var (
		population   []models.INEData
		housing      []models.IndicatorRow
		construction models.ConstructionData
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		population = c.PopulationData(ctx, municipalityCode)
		return nil
	})
	g.Go(func() error {
		var err error
		housing, err = c.HousePriceData(ctx, municipalityCode)
		return err
	})
	g.Go(func() error {
		var err error
		construction, err = c.ConstructionData(ctx, municipalityCode)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.MunicipalityData{}, err
	}

	if housing == nil {
		housing = []models.IndicatorRow{}
	}
	return models.MunicipalityData{
		Population:   population,
		Housing:      housing,
		Construction: construction,
	}, nil
}

// SearchIndicators filters the catalog by a case-insensitive topic match
// over the theme, name and designation fields. Failures degrade to an empty
// result.
func (c *Client) SearchIndicators(ctx context.Context, topic string) []models.IndicatorRow {
	catalog, err := c.CatalogData(ctx)
	if err != nil {
		c.logger.WithError(err).WithField("topic", topic).Warn("Failed to fetch INE catalog")
		return []models.IndicatorRow{}
	}

	q := strings.ToLower(topic)
	out := make([]models.IndicatorRow, 0)
	for _, row := range catalog {
		for _, key := range []string{"tema", "nome", "designacao"} {
			if s, ok := row[key].(string); ok && strings.Contains(strings.ToLower(s), q) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

func probeString(row models.IndicatorRow, keys []string) string {
	return probeStringDefault(row, keys, "")
}

func probeStringDefault(row models.IndicatorRow, keys []string, fallback string) string {
	for _, key := range keys {
		if s, ok := row[key].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

func probeInt(row models.IndicatorRow, keys []string) int {
	for _, key := range keys {
		switch v := row[key].(type) {
		case string:
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		case float64:
			return int(v)
		}
	}
	return 0
}
