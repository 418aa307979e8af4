package ingest

import (
	"bytes"
	"path"
	"sync"

	"github.com/klauspost/compress/zip"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"golang.org/x/net/html"

	"github.com/campusdata/insight/sql"
)

const (
	roomsDir  = "rooms"
	indexFile = "index.htm"
)

type building struct {
	fullname  string
	shortname string
	address   string
	href      string
	lat, lon  float64
}

func (l *Loader) loadRooms(ctx *sql.Context, id string, archive *zip.Reader) ([]sql.Row, error) {
	index := findFile(archive, path.Join(roomsDir, indexFile))
	if index == nil {
		return nil, sql.ErrInvalidDataset.New(id, "no "+path.Join(roomsDir, indexFile)+" file")
	}

	data, err := readFile(index)
	if err != nil {
		return nil, sql.ErrInvalidDataset.Wrap(err, id, err.Error())
	}

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, sql.ErrInvalidDataset.Wrap(err, id, err.Error())
	}

	trs, ok := tableRows(doc)
	if !ok {
		return nil, sql.ErrInvalidDataset.New(id, "no buildings table")
	}

	buildings := make([]building, len(trs))
	for i, tr := range trs {
		buildings[i] = parseBuilding(tr)
	}

	pool, err := ants.NewPool(l.Workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	// Each building writes to its own slot so the rows keep the order of
	// the index.
	results := make([][]sql.Row, len(buildings))
	var wg sync.WaitGroup
	for i := range buildings {
		i := i
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			results[i] = l.buildingRooms(ctx, archive, &buildings[i])
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()

	var rows []sql.Row
	for _, r := range results {
		rows = append(rows, r...)
	}
	return rows, nil
}

func parseBuilding(tr *html.Node) building {
	var b building
	for _, td := range children(tr, "td") {
		switch {
		case hasClass(td, "views-field-field-building-code"):
			b.shortname = text(td)
		case hasClass(td, "views-field-field-building-address"):
			b.address = text(td)
		case hasClass(td, "views-field-title"):
			if a := find(td, "a"); a != nil {
				b.fullname = text(a)
				b.href = attr(a, "href")
			}
		}
	}
	return b
}

// buildingRooms geocodes the building and reads its rooms. Buildings
// that cannot be located or have no rooms table contribute no rows.
func (l *Loader) buildingRooms(ctx *sql.Context, archive *zip.Reader, b *building) []sql.Row {
	logger := ctx.GetLogger().WithFields(logrus.Fields{
		"building": b.shortname,
		"address":  b.address,
	})

	lat, lon, err := l.Geocoder.Locate(ctx, b.address)
	if err != nil {
		logger.WithError(err).Warn("skipping building without geolocation")
		return nil
	}
	b.lat, b.lon = lat, lon

	f := findFile(archive, path.Join(roomsDir, b.href))
	if f == nil {
		logger.WithField("href", b.href).Warn("skipping building without file")
		return nil
	}

	data, err := readFile(f)
	if err != nil {
		logger.WithError(err).Warn("skipping unreadable building file")
		return nil
	}

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		logger.WithError(err).Warn("skipping invalid building file")
		return nil
	}

	trs, ok := tableRows(doc)
	if !ok {
		logger.Debug("building has no rooms")
		return nil
	}

	rows := make([]sql.Row, 0, len(trs))
	for _, tr := range trs {
		rows = append(rows, roomRow(tr, b))
	}
	return rows
}

// roomRow builds a row following sql.RoomsSchema.
func roomRow(tr *html.Node, b *building) sql.Row {
	var number, href, seats, furniture, kind string
	for _, td := range children(tr, "td") {
		switch {
		case hasClass(td, "views-field-field-room-number"):
			if a := find(td, "a"); a != nil {
				number = text(a)
				href = attr(a, "href")
			}
		case hasClass(td, "views-field-field-room-capacity"):
			seats = text(td)
		case hasClass(td, "views-field-field-room-furniture"):
			furniture = text(td)
		case hasClass(td, "views-field-field-room-type"):
			kind = text(td)
		}
	}

	return sql.NewRow(
		b.fullname,
		b.shortname,
		number,
		b.shortname+sql.KeySeparator+number,
		b.address,
		kind,
		furniture,
		href,
		b.lat,
		b.lon,
		cast.ToFloat64(seats),
	)
}
