package tool

import (
	"fmt"
	"strings"

	"github.com/liushuochen/gotable"
	"github.com/liushuochen/gotable/cell"

	"github.com/allen1211/kvput/pkg/common"
	"github.com/allen1211/kvput/pkg/record"
)

func formatTTL(ttl int32) string {
	if ttl < 0 {
		return "never"
	}
	return fmt.Sprintf("%ds", ttl)
}

// formatRecord renders one bin per row followed by the record metadata.
func formatRecord(rec record.Record, meta common.RecordMeta) (string, error) {
	cols := []string{"Bin", "Type", "Value"}
	table, err := gotable.Create(cols...)
	if err != nil {
		return "", err
	}
	for _, col := range cols {
		table.Align(col, cell.AlignLeft)
	}
	for _, name := range rec.BinNames() {
		v := rec[name]
		kind := record.KindNil
		if v != nil {
			kind = v.Kind()
		}
		if err := table.AddRow([]string{name, kind.String(), record.Format(v)}); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	b.WriteString(table.String())
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "gen: %d\nttl: %s\n", meta.Gen, formatTTL(meta.TTL))
	return b.String(), nil
}
