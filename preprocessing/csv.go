package preprocessing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/codepictor/metro/models"
)

// LoadNetworkFromCSV reads a network from a directory holding
// stations.txt (station_id, station_name, line), links.txt
// (from_station_id, to_station_id, time) and optionally lines.txt
// (line_number, line_name, line_color).
func LoadNetworkFromCSV(dir string) (*models.Network, error) {
	net := &models.Network{Name: filepath.Base(dir)}

	if err := loadLines(filepath.Join(dir, "lines.txt"), net); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err := loadStations(filepath.Join(dir, "stations.txt"), net); err != nil {
		return nil, err
	}
	if err := loadLinks(filepath.Join(dir, "links.txt"), net); err != nil {
		return nil, err
	}
	if len(net.Stations) == 0 {
		return nil, fmt.Errorf("%w: %s has no stations", models.ErrInvalidNetwork, dir)
	}
	return net, nil
}

func loadLines(path string, net *models.Network) error {
	return readTable(path, []string{"line_number", "line_name"}, func(row func(string) string) error {
		number, err := strconv.Atoi(row("line_number"))
		if err != nil {
			return fmt.Errorf("bad line_number %q: %w", row("line_number"), err)
		}
		net.Lines = append(net.Lines, models.Line{
			Number: number,
			Name:   row("line_name"),
			Color:  row("line_color"),
		})
		return nil
	})
}

func loadStations(path string, net *models.Network) error {
	return readTable(path, []string{"station_id", "station_name", "line"}, func(row func(string) string) error {
		id, err := strconv.ParseInt(row("station_id"), 10, 64)
		if err != nil {
			return fmt.Errorf("bad station_id %q: %w", row("station_id"), err)
		}
		line, err := strconv.Atoi(row("line"))
		if err != nil {
			return fmt.Errorf("bad line %q: %w", row("line"), err)
		}
		net.Stations = append(net.Stations, models.StationRecord{
			ID:   models.StationID(id),
			Name: row("station_name"),
			Line: line,
		})
		return nil
	})
}

func loadLinks(path string, net *models.Network) error {
	return readTable(path, []string{"from_station_id", "to_station_id", "time"}, func(row func(string) string) error {
		from, err := strconv.ParseInt(row("from_station_id"), 10, 64)
		if err != nil {
			return fmt.Errorf("bad from_station_id %q: %w", row("from_station_id"), err)
		}
		to, err := strconv.ParseInt(row("to_station_id"), 10, 64)
		if err != nil {
			return fmt.Errorf("bad to_station_id %q: %w", row("to_station_id"), err)
		}
		t, err := strconv.ParseFloat(row("time"), 64)
		if err != nil {
			return fmt.Errorf("bad time %q: %w", row("time"), err)
		}
		net.Links = append(net.Links, models.Link{
			From: models.StationID(from),
			To:   models.StationID(to),
			Time: t,
		})
		return nil
	})
}

// readTable calls fn for every data row of a CSV file with a header.
// row returns the trimmed value of a column, or "" when the column is
// absent.
func readTable(path string, required []string, fn func(row func(string) string) error) error {
	name := filepath.Base(path)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("read %s header: %w", name, err)
	}
	h := headerIndex(header)
	for _, col := range required {
		if _, ok := h[col]; !ok {
			return fmt.Errorf("%s: missing column %s", name, col)
		}
	}

	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		row := func(col string) string {
			i, ok := h[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		if err := fn(row); err != nil {
			return fmt.Errorf("%s line %d: %w", name, line, err)
		}
	}
}

func headerIndex(header []string) map[string]int {
	m := make(map[string]int, len(header))
	for i, col := range header {
		col = strings.TrimPrefix(col, "\ufeff")
		m[strings.TrimSpace(strings.ToLower(col))] = i
	}
	return m
}
