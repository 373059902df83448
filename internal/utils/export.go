package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// EncodeCSV writes headers and rows as CSV prefixed with a UTF-8 BOM so spreadsheets detect the encoding
func EncodeCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	writer := csv.NewWriter(&buf)
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// Attachment writes data as a file download
func Attachment(c *gin.Context, filename, contentType string, data []byte) {
	encoded := url.PathEscape(filename)
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"; filename*=UTF-8''"+encoded)
	c.Data(200, contentType, data)
}
