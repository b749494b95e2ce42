package db

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Row 以关联数组形式表示的一行结果，键为小写列名。
//
// Row 只在物化过程中短暂存在：读取后立即交给存储模型的 Assign 使用。
type Row map[string]any

// 支持解析的时间格式，依次尝试
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02",
}

// FetchAll 以关联模式读取全部结果行并关闭结果集。
//
// 驱动返回的 []byte 会被复制为 string，避免底层缓冲区在下一次 Next 时被复用。
func FetchAll(rows IRows) ([]Row, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(columns))
	for i, c := range columns {
		keys[i] = strings.ToLower(c)
	}

	result := make([]Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(columns))
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[keys[i]] = v
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Has 判断行中是否包含指定列
func (r Row) Has(column string) bool {
	_, ok := r[strings.ToLower(column)]
	return ok
}

func (r Row) value(column string) any {
	return r[strings.ToLower(column)]
}

// String 以字符串读取列值；NULL 与缺失列返回空串
func (r Row) String(column string) string {
	s, _ := r.NullString(column)
	return s
}

// NullString 以字符串读取列值，第二个返回值表示是否非 NULL
func (r Row) NullString(column string) (string, bool) {
	switch v := r.value(column).(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []byte:
		return string(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	case time.Time:
		return v.Format(timeLayouts[0]), true
	default:
		return fmt.Sprint(v), true
	}
}

// Int64 以整数读取列值；NULL 返回 0
func (r Row) Int64(column string) (int64, error) {
	switch v := r.value(column).(type) {
	case nil:
		return 0, nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		return parseInt(column, v)
	case []byte:
		return parseInt(column, string(v))
	default:
		return 0, fmt.Errorf("db: column %q: cannot convert %T to int64", column, v)
	}
}

// Float64 以浮点数读取列值；NULL 返回 0
func (r Row) Float64(column string) (float64, error) {
	switch v := r.value(column).(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	case string:
		return parseFloat(column, v)
	case []byte:
		return parseFloat(column, string(v))
	default:
		return 0, fmt.Errorf("db: column %q: cannot convert %T to float64", column, v)
	}
}

// Bool 以布尔值读取列值，兼容 0/1 整数列与 true/false 文本
func (r Row) Bool(column string) (bool, error) {
	switch v := r.value(column).(type) {
	case bool:
		return v, nil
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b, nil
		}
	}
	n, err := r.Int64(column)
	if err != nil {
		return false, err
	}
	return n != 0, nil
}

// Time 以时间读取列值；NULL、空串以及 MySQL 风格的零日期返回零值
func (r Row) Time(column string) (time.Time, error) {
	switch v := r.value(column).(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return v, nil
	case string:
		return parseTime(column, v)
	case []byte:
		return parseTime(column, string(v))
	default:
		return time.Time{}, fmt.Errorf("db: column %q: cannot convert %T to time", column, v)
	}
}

func parseInt(column, s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0, fmt.Errorf("db: column %q: %w", column, err)
		}
		return int64(f), nil
	}
	return n, nil
}

func parseFloat(column, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("db: column %q: %w", column, err)
	}
	return f, nil
}

func parseTime(column, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "0000-00-00") {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("db: column %q: unrecognised time %q", column, s)
}
