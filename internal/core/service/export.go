package service

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/leadcrm/crm-system/internal/core/domain"
)

// csvHeaders is the fixed 9-column header row of the export, in the order
// the original report used.
var csvHeaders = []string{
	"No.",
	"Cliente",
	"Número",
	"Notas",
	"Tipificación",
	"Estado",
	"Último Contacto",
	"Hora Contacto",
	"Asesor Asignado",
}

// renderCustomersCSV renders records as UTF-8 CSV with a leading byte-order
// mark so spreadsheet applications pick up the encoding. Fields containing a
// comma or quote are quote-wrapped with inner quotes doubled (csv.Writer
// semantics).
func renderCustomersCSV(customers []domain.Customer) []byte {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	_ = w.Write(csvHeaders)
	for i, c := range customers {
		_ = w.Write([]string{
			strconv.Itoa(i + 1),
			c.Name,
			c.PhoneNumber,
			c.Notes,
			string(c.StatusTag),
			string(c.LifecycleState),
			c.LastContactDate,
			c.LastContactTime,
			c.AssignedAdvisorName,
		})
	}
	w.Flush()
	return buf.Bytes()
}

// exportFilename builds clientes[_<activefilter>]_<YYYY-MM-DD>_<HH-MM-SS>.csv.
// The status filter wins over the lifecycle filter when both are active.
func exportFilename(f domain.Filter, now time.Time) string {
	base := "clientes_export"
	if f.Status != domain.FilterAll {
		base = "clientes_" + strings.ReplaceAll(strings.ToLower(f.Status), " ", "_")
	} else if f.Lifecycle != domain.FilterAll {
		base = "clientes_" + f.Lifecycle
	}
	return base + "_" + now.Format("2006-01-02") + "_" + now.Format("15-04-05") + ".csv"
}
