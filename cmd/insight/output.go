package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cast"

	"github.com/campusdata/insight"
	"github.com/campusdata/insight/sql"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

func checkFormat(format string) error {
	switch format {
	case formatJSON, formatTable:
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(rows)
	table.Render()
}

func writeIDs(w io.Writer, format string, ids []string) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	if format == formatJSON {
		return writeJSON(w, ids)
	}

	rows := make([][]string, len(ids))
	for i, id := range ids {
		rows[i] = []string{id}
	}
	writeTable(w, []string{"id"}, rows)
	return nil
}

func writeDatasets(w io.Writer, format string, infos []sql.DatasetInfo) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	if format == formatJSON {
		type dataset struct {
			ID      string `json:"id"`
			Kind    string `json:"kind"`
			NumRows int    `json:"numRows"`
		}

		out := make([]dataset, len(infos))
		for i, info := range infos {
			out[i] = dataset{info.ID, info.Kind.String(), info.NumRows}
		}
		return writeJSON(w, out)
	}

	rows := make([][]string, len(infos))
	for i, info := range infos {
		rows[i] = []string{info.ID, info.Kind.String(), strconv.Itoa(info.NumRows)}
	}
	writeTable(w, []string{"id", "kind", "rows"}, rows)
	return nil
}

func writeResult(w io.Writer, format string, r *insight.Result) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	if format == formatJSON {
		return writeJSON(w, r)
	}

	rows := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = cast.ToString(v)
		}
	}
	writeTable(w, r.Columns(), rows)
	return nil
}
