package tubedata

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"transit-route-service/internal/adapters/cache"
	"transit-route-service/internal/domain"
	"transit-route-service/internal/platform/obs"
	"transit-route-service/internal/ports"
)

// Client implements NetworkDataProvider against the tube data web service.
//
// It coordinates:
//   - Index, per-line connectivity, disruption and station directory fetches
//   - Redis caching of line connectivity and historical disruption feeds
//   - External API calls with retry/backoff
//
// The client is safe for concurrent use.
type Client struct {
	session         *http.Client
	baseURL         string
	lineCache       *cache.RedisLineCache
	disruptionCache *cache.RedisDisruptionCache
}

func NewClient(
	baseURL string,
	lineCache *cache.RedisLineCache,
	disruptionCache *cache.RedisDisruptionCache,
) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("tube data base URL is empty")
	}

	client := &Client{
		session:         &http.Client{Timeout: 10 * time.Second},
		baseURL:         baseURL,
		lineCache:       lineCache,
		disruptionCache: disruptionCache,
	}

	return client, nil
}

// Ping verifies the data service is reachable before any query work starts.
func (c *Client) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, c.baseURL+"/index")
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		if errors.Is(err, ports.ErrUnavailable) {
			return fmt.Errorf("ping tube data service: %w", err)
		}
		// Bad responses from the index endpoint also count as unreachable.
		return fmt.Errorf("ping tube data service: %w: %v", ports.ErrUnavailable, err)
	}
	resp.Body.Close()
	return nil
}

type indexResponse struct {
	NStations int               `json:"n_stations"`
	NLines    int               `json:"n_lines"`
	Lines     map[string]string `json:"lines"`
}

// FetchNetworkInfo returns the system-wide station and line counts.
func (c *Client) FetchNetworkInfo(ctx context.Context) (ports.NetworkInfo, error) {
	resp, err := c.doWithRetry(ctx, c.baseURL+"/index")
	if err != nil {
		return ports.NetworkInfo{}, fmt.Errorf("fetch network info: %w", err)
	}
	defer resp.Body.Close()

	var idx indexResponse
	if err := json.NewDecoder(resp.Body).Decode(&idx); err != nil {
		return ports.NetworkInfo{}, fmt.Errorf("fetch network info: decode index: %w", err)
	}

	if idx.NStations <= 0 || idx.NLines <= 0 {
		return ports.NetworkInfo{}, fmt.Errorf(
			"fetch network info: implausible index n_stations=%d n_lines=%d",
			idx.NStations, idx.NLines,
		)
	}

	names := make(map[int]string, len(idx.Lines))
	for id, name := range idx.Lines {
		lineID, err := strconv.Atoi(id)
		if err != nil {
			return ports.NetworkInfo{}, fmt.Errorf("fetch network info: line id %q: %w", id, err)
		}
		names[lineID] = name
	}

	return ports.NetworkInfo{
		NStations: idx.NStations,
		NLines:    idx.NLines,
		LineNames: names,
	}, nil
}

// FetchLineConnectivity returns the connectivity rows for one line as
// station1,station2,travel_time CSV parsed into LineConnection values.
func (c *Client) FetchLineConnectivity(ctx context.Context, line int) (_ []ports.LineConnection, err error) {
	defer obs.Time(ctx, "tubedata.FetchLineConnectivity")(&err)

	if line < 0 {
		return nil, fmt.Errorf("fetch line connectivity: line %d must be non-negative", line)
	}

	// Check the line cache before issuing an upstream request.
	if c.lineCache != nil {
		connections, found, err := c.lineCache.Get(ctx, line)
		if err != nil {
			log.Printf("line cache read failed: %v", err)
		} else if found {
			return connections, nil
		}
	}

	url := fmt.Sprintf("%s/line/%d", c.baseURL, line)
	resp, err := c.doWithRetry(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch line connectivity: line %d: %w", line, err)
	}
	defer resp.Body.Close()

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("fetch line connectivity: parse line %d csv: %w", line, err)
	}

	connections := make([]ports.LineConnection, 0, len(rows))
	for i, row := range rows {
		from, err1 := strconv.Atoi(strings.TrimSpace(row[0]))
		to, err2 := strconv.Atoi(strings.TrimSpace(row[1]))
		travelTime, err3 := strconv.Atoi(strings.TrimSpace(row[2]))
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("fetch line connectivity: line %d row %d: non-integer field in %v", line, i+1, row)
		}
		connections = append(connections, ports.LineConnection{From: from, To: to, TravelTime: travelTime})
	}

	if c.lineCache != nil {
		if err := c.lineCache.Put(ctx, line, connections); err != nil {
			log.Printf("line cache write failed: %v", err)
		}
	}

	return connections, nil
}

// flexFloat tolerates numbers that the feed quotes as strings.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse number %q: %w", s, err)
	}
	*f = flexFloat(v)
	return nil
}

// flexInt tolerates integers that the feed quotes as strings.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("parse integer %q: %w", s, err)
	}
	*f = flexInt(v)
	return nil
}

type disruptionDTO struct {
	Delay    flexFloat `json:"delay"`
	Line     *flexInt  `json:"line"`
	Stations []flexInt `json:"stations"`
}

// FetchDisruptions returns the disruption records for a date (YYYY-MM-DD).
// An empty date requests today's feed, which is never cached because it keeps
// changing through the day.
func (c *Client) FetchDisruptions(ctx context.Context, date string) (_ []domain.Disruption, err error) {
	defer obs.Time(ctx, "tubedata.FetchDisruptions")(&err)

	cacheable := date != "" && c.disruptionCache != nil
	if cacheable {
		disruptions, found, err := c.disruptionCache.Get(ctx, date)
		if err != nil {
			log.Printf("disruption cache read failed: %v", err)
		} else if found {
			return disruptions, nil
		}
	}

	url := c.baseURL + "/disruptions"
	if date != "" {
		url += "?date=" + date
	}

	resp, err := c.doWithRetry(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch disruptions: date %q: %w", date, err)
	}
	defer resp.Body.Close()

	var dtos []disruptionDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("fetch disruptions: decode feed: %w", err)
	}

	disruptions := make([]domain.Disruption, 0, len(dtos))
	for _, dto := range dtos {
		d := domain.Disruption{Delay: float64(dto.Delay)}
		if dto.Line != nil {
			line := int(*dto.Line)
			d.Line = &line
		}
		for _, s := range dto.Stations {
			d.Stations = append(d.Stations, int(s))
		}
		disruptions = append(disruptions, d)
	}

	if cacheable {
		if err := c.disruptionCache.Put(ctx, date, disruptions); err != nil {
			log.Printf("disruption cache write failed: %v", err)
		}
	}

	return disruptions, nil
}

// FetchStationDirectory returns the station directory as
// index,name,latitude,longitude CSV parsed into StationRecord values.
// A header row is skipped when present.
func (c *Client) FetchStationDirectory(ctx context.Context) ([]ports.StationRecord, error) {
	resp, err := c.doWithRetry(ctx, c.baseURL+"/stations")
	if err != nil {
		return nil, fmt.Errorf("fetch station directory: %w", err)
	}
	defer resp.Body.Close()

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = 4
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("fetch station directory: parse csv: %w", err)
	}

	records := make([]ports.StationRecord, 0, len(rows))
	for i, row := range rows {
		index, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("fetch station directory: row %d index %q: %w", i+1, row[0], err)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("fetch station directory: row %d latitude %q: %w", i+1, row[2], err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("fetch station directory: row %d longitude %q: %w", i+1, row[3], err)
		}

		records = append(records, ports.StationRecord{
			Index:     index,
			Name:      strings.TrimSpace(row[1]),
			Latitude:  lat,
			Longitude: lon,
		})
	}

	return records, nil
}
