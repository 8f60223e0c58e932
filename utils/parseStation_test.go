package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/codepictor/metro/models"
)

func TestParseStationRef(t *testing.T) {
	tests := []struct {
		input    string
		wantID   int64
		wantName string
		wantLine int
		wantErr  bool
	}{
		{input: "1003", wantID: 1003},
		{input: "  907 ", wantID: 907},
		{input: "Бутырская", wantName: "Бутырская"},
		{input: "Парк культуры", wantName: "Парк культуры"},
		{input: "Окружная@10", wantName: "Окружная", wantLine: 10},
		{input: " Окружная @ 14 ", wantName: "Окружная", wantLine: 14},
		{input: "", wantErr: true},
		{input: "   ", wantErr: true},
		{input: "Окружная@", wantErr: true},
		{input: "@10", wantErr: true},
		{input: "Окружная@ten", wantErr: true},
		{input: "=1905", wantName: "1905"},
		{input: "= Окружная@ten ", wantName: "Окружная@ten"},
		{input: "=Окружная@10", wantName: "Окружная@10"},
		{input: "1905@3", wantName: "1905", wantLine: 3},
		{input: "=", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ref, err := ParseStationRef(tt.input)
			if tt.wantErr {
				if !errors.Is(err, models.ErrInvalidQuery) {
					t.Errorf("error = %v, want %v", err, models.ErrInvalidQuery)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.wantID != 0 {
				if ref.ID == nil || int64(*ref.ID) != tt.wantID || ref.Name != "" || ref.Line != nil {
					t.Errorf("got %+v, want id %d", ref, tt.wantID)
				}
				return
			}
			if ref.ID != nil || ref.Name != tt.wantName {
				t.Errorf("got %+v, want name %q", ref, tt.wantName)
			}
			switch {
			case tt.wantLine == 0 && ref.Line != nil:
				t.Errorf("unexpected line %d", *ref.Line)
			case tt.wantLine != 0 && (ref.Line == nil || *ref.Line != tt.wantLine):
				t.Errorf("line = %v, want %d", ref.Line, tt.wantLine)
			}
		})
	}
}

func TestFormatStationRef(t *testing.T) {
	for _, in := range []string{"1003", "Бутырская", "Окружная@10", "=1905", "1905@3", "=Окружная@ten", "==x"} {
		ref, err := ParseStationRef(in)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatStationRef(ref); got != in {
			t.Errorf("FormatStationRef(ParseStationRef(%q)) = %q", in, got)
		}
	}
}

func TestFormatStationRefRoundTripsAwkwardNames(t *testing.T) {
	line := 7
	refs := []models.StationRef{
		{Name: "1905"},
		{Name: "Name@"},
		{Name: "A@10"},
		{Name: "=x"},
		{Name: "1905", Line: &line},
		{Name: "A@10", Line: &line},
	}
	for _, want := range refs {
		text := FormatStationRef(want)
		got, err := ParseStationRef(text)
		if err != nil {
			t.Errorf("ParseStationRef(%q) returned error: %v", text, err)
			continue
		}
		if got.ID != nil || got.Name != want.Name || (got.Line == nil) != (want.Line == nil) ||
			(got.Line != nil && *got.Line != *want.Line) {
			t.Errorf("%+v formatted as %q parses back as %+v", want, text, got)
		}
	}
}

func TestParseRouteRequest(t *testing.T) {
	req, err := ParseRouteRequest("907", "Бутырская@10", []string{"Петровско-Разумовская@9", "=1905"})
	if err != nil {
		t.Fatalf("ParseRouteRequest returned error: %v", err)
	}
	if req.From.ID == nil || *req.From.ID != 907 || req.To.Name != "Бутырская" || len(req.Via) != 2 || req.Via[1].Name != "1905" {
		t.Errorf("got %+v", req)
	}

	tests := map[string][3]string{
		"from: ":   {"", "907", ""},
		"to: ":     {"907", " ", ""},
		"via[1]: ": {"907", "1006", "@"},
	}
	for prefix, in := range tests {
		via := []string{"1004"}
		if in[2] != "" {
			via = append(via, in[2])
		}
		_, err := ParseRouteRequest(in[0], in[1], via)
		if !errors.Is(err, models.ErrInvalidQuery) || !strings.HasPrefix(err.Error(), prefix) {
			t.Errorf("error = %v, want %s prefix", err, prefix)
		}
	}
}
