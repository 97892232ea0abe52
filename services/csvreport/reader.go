package csvreport

import (
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"betenlace/errors"
)

const maxSuggestionDistance = 4

// Record là một dòng dữ liệu đã gắn với tên field nội bộ
type Record struct {
	Line   int
	values []string
	index  map[string]int
}

// Get trả về giá trị đã trim của field; "" nếu cột không có trong file
func (r Record) Get(field string) string {
	i, ok := r.index[field]
	if !ok || i >= len(r.values) {
		return ""
	}
	return strings.TrimSpace(r.values[i])
}

// Has cho biết file có cột tương ứng field hay không
func (r Record) Has(field string) bool {
	_, ok := r.index[field]
	return ok
}

// Table là nội dung file CSV sau khi kiểm tra header
type Table struct {
	Schema  Schema
	Records []Record
}

// CheckFileName chỉ chấp nhận file .csv
func CheckFileName(name string) error {
	if !strings.EqualFold(filepath.Ext(name), ".csv") {
		return errors.NewAppError(errors.ErrCodeSchema, fmt.Sprintf("file %q không phải .csv", name), nil)
	}
	return nil
}

// Read đọc CSV, kiểm tra header đúng bộ cột của schema (trừ các cột optional)
func Read(r io.Reader, schema Schema, optional ...string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if stderrors.Is(err, io.EOF) {
		return nil, errors.NewAppError(errors.ErrCodeSchema, fmt.Sprintf("file %s rỗng, thiếu header", schema.Name), nil)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeSchema, fmt.Sprintf("không đọc được header file %s", schema.Name), err)
	}

	index, err := checkHeader(header, schema, optional)
	if err != nil {
		return nil, err
	}

	table := &Table{Schema: schema}
	for {
		values, err := reader.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeSchema, fmt.Sprintf("file %s lỗi định dạng", schema.Name), err)
		}
		if isBlank(values) {
			continue
		}
		line, _ := reader.FieldPos(0)
		table.Records = append(table.Records, Record{Line: line, values: values, index: index})
	}
	return table, nil
}

func checkHeader(header []string, schema Schema, optional []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	var problems []string

	for i, raw := range header {
		name := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
		field, ok := schema.fieldOf(name)
		if !ok {
			msg := fmt.Sprintf("cột không hợp lệ %q", name)
			if suggestion := suggestHeader(name, schema.Headers()); suggestion != "" {
				msg += fmt.Sprintf(" (có phải %q?)", suggestion)
			}
			problems = append(problems, msg)
			continue
		}
		if _, dup := index[field]; dup {
			problems = append(problems, fmt.Sprintf("cột bị trùng %q", name))
			continue
		}
		index[field] = i
	}

	for _, col := range schema.Columns {
		if _, ok := index[col.Field]; ok || contains(optional, col.Header) {
			continue
		}
		problems = append(problems, fmt.Sprintf("thiếu cột %q", col.Header))
	}

	if len(problems) > 0 {
		return nil, errors.NewAppError(errors.ErrCodeSchema,
			fmt.Sprintf("header file %s không hợp lệ: %s", schema.Name, strings.Join(problems, "; ")), nil)
	}
	return index, nil
}

func suggestHeader(name string, candidates []string) string {
	best, bestDistance := "", maxSuggestionDistance+1
	for _, candidate := range candidates {
		d := levenshtein.DistanceForStrings([]rune(strings.ToLower(name)), []rune(strings.ToLower(candidate)), levenshtein.DefaultOptions)
		if d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

func isBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
