package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/codepictor/metro/preprocessing"
	"github.com/codepictor/metro/routing"
	"github.com/codepictor/metro/stations"
)

func moscow(t *testing.T) *routing.Router {
	t.Helper()
	net, err := preprocessing.DefaultNetwork()
	if err != nil {
		t.Fatal(err)
	}
	r, err := routing.NewRouter(net)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestWriteDOTWithoutRoute(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDOT(&buf, moscow(t), nil); err != nil {
		t.Fatalf("WriteDOT returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "graph metro {") {
		t.Errorf("missing graph header in %.60q", out)
	}
	if !strings.Contains(out, "Дмитровская (9)") {
		t.Error("station label missing")
	}
	if strings.Contains(out, "penwidth") {
		t.Error("nothing should be highlighted without a route")
	}
}

func TestWriteDOTHighlightsRoute(t *testing.T) {
	r := moscow(t)
	from, err := r.Resolve(stations.ByID(907))
	if err != nil {
		t.Fatal(err)
	}
	to, err := r.Resolve(stations.ByID(1006))
	if err != nil {
		t.Fatal(err)
	}
	route, err := r.MakeShortestRoute(from, to)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteDOT(&buf, r, &route); err != nil {
		t.Fatalf("WriteDOT returned error: %v", err)
	}
	out := buf.String()
	if got := strings.Count(out, "penwidth=4"); got != len(route.Segments) {
		t.Errorf("%d highlighted links, want %d", got, len(route.Segments))
	}
	if got := strings.Count(out, "penwidth=3"); got != len(route.Segments)+1 {
		t.Errorf("%d highlighted stations, want %d", got, len(route.Segments)+1)
	}
}
