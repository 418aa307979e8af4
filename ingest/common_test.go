package ingest

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
)

func zipOf(t *testing.T, files map[string]string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

type fakeGeocoder map[string][2]float64

func (g fakeGeocoder) Locate(_ context.Context, address string) (float64, float64, error) {
	c, ok := g[address]
	if !ok {
		return 0, 0, ErrGeolocation.New(address, "unknown address")
	}
	return c[0], c[1], nil
}

func indexHTML(buildings ...[3]string) string {
	var rows bytes.Buffer
	for _, b := range buildings {
		fmt.Fprintf(&rows, `
<tr class="odd">
  <td class="views-field views-field-field-building-image"><img src="x.jpg"></td>
  <td class="views-field views-field-field-building-code"> %s </td>
  <td class="views-field views-field-title">
    <a href="./campus/discover/buildings-and-classrooms/%s" title="Building Details and Map">%s</a>
  </td>
  <td class="views-field views-field-field-building-address"> %s </td>
</tr>`, b[0], b[0], b[1], b[2])
	}

	return `<!DOCTYPE html><html><body><div>
<table class="views-table cols-5 table">
<thead><tr><th>Code</th><th>Building</th><th>Address</th></tr></thead>
<tbody>` + rows.String() + `</tbody>
</table></div></body></html>`
}

func buildingHTML(rooms ...[4]string) string {
	var rows bytes.Buffer
	for _, r := range rooms {
		fmt.Fprintf(&rows, `
<tr>
  <td class="views-field views-field-field-room-number">
    <a href="http://students.ubc.ca/room/%s" title="Room Details">%s</a>
  </td>
  <td class="views-field views-field-field-room-capacity"> %s </td>
  <td class="views-field views-field-field-room-furniture"> %s </td>
  <td class="views-field views-field-field-room-type"> %s </td>
</tr>`, r[0], r[0], r[1], r[2], r[3])
	}

	return `<html><body><section>
<table class="views-table cols-5 table">
<thead><tr><th>Room</th><th>Capacity</th><th>Furniture</th><th>Type</th></tr></thead>
<tbody>` + rows.String() + `</tbody>
</table></section></body></html>`
}
