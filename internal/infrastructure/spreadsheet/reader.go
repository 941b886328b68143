// Package spreadsheet simulates spreadsheet ingestion. The source system
// never parsed uploaded files: any upload with a spreadsheet extension
// produced the same fixed sample set. That behavior is reproduced here
// verbatim; replacing it with a real parser is a scope decision, not a fix.
package spreadsheet

import (
	"path/filepath"
	"strings"

	"github.com/leadcrm/crm-system/internal/core/domain"
	"github.com/leadcrm/crm-system/internal/core/ports"
)

var allowedExtensions = map[string]struct{}{
	".xlsx": {},
	".xls":  {},
	".csv":  {},
}

// sampleRows is the canned output every accepted upload yields.
var sampleRows = []ports.ImportRow{
	{
		Name:        "Juan Carlos Pérez",
		PhoneNumber: "+34 600 111 222",
		Notes:       "Cliente potencial importado desde Excel. Interesado en servicios básicos.",
	},
	{
		Name:        "María Elena Rodríguez",
		PhoneNumber: "+34 600 333 444",
		Notes:       "Prospecto de campaña digital. Requiere seguimiento telefónico.",
	},
	{
		Name:        "Antonio García López",
		PhoneNumber: "+34 600 555 666",
		Notes:       "Lead generado por marketing. Mostró interés en productos premium.",
	},
	{
		Name:        "Carmen Martínez Silva",
		PhoneNumber: "+34 600 777 888",
		Notes:       "Cliente referido por socio comercial. Alta probabilidad de conversión.",
	},
}

// Reader implements ports.SpreadsheetReader with simulated parsing.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Read validates the extension and returns the fixed sample rows. The file
// content is deliberately never opened.
func (r *Reader) Read(filename string) ([]ports.ImportRow, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, domain.ErrUnsupportedUpload
	}

	rows := make([]ports.ImportRow, len(sampleRows))
	copy(rows, sampleRows)
	return rows, nil
}
