package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonScan декодирует JSONB колонку в указанное значение.
// NULL в базе превращается в нулевое значение, а не в ошибку.
func jsonScan(src interface{}, dst interface{}) error {
	if src == nil {
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("models: неподдерживаемый тип JSONB колонки %T", src)
	}

	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// jsonValue кодирует значение в JSONB для записи в базу.
func jsonValue(v interface{}) (driver.Value, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("models: не удалось сериализовать JSONB: %w", err)
	}
	return raw, nil
}

// StringList хранится в базе как JSONB массив строк.
type StringList []string

func (l *StringList) Scan(src interface{}) error { return jsonScan(src, l) }

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return jsonValue([]string{})
	}
	return jsonValue([]string(l))
}

// TechnologyList хранится в базе как JSONB.
type TechnologyList []Technology

func (l *TechnologyList) Scan(src interface{}) error { return jsonScan(src, l) }

func (l TechnologyList) Value() (driver.Value, error) {
	if l == nil {
		return jsonValue([]Technology{})
	}
	return jsonValue([]Technology(l))
}

// FeatureList хранится в базе как JSONB.
type FeatureList []Feature

func (l *FeatureList) Scan(src interface{}) error { return jsonScan(src, l) }

func (l FeatureList) Value() (driver.Value, error) {
	if l == nil {
		return jsonValue([]Feature{})
	}
	return jsonValue([]Feature(l))
}

// CodeSnippetList хранится в базе как JSONB.
type CodeSnippetList []CodeSnippet

func (l *CodeSnippetList) Scan(src interface{}) error { return jsonScan(src, l) }

func (l CodeSnippetList) Value() (driver.Value, error) {
	if l == nil {
		return jsonValue([]CodeSnippet{})
	}
	return jsonValue([]CodeSnippet(l))
}

// ChapterList хранится в базе как JSONB.
type ChapterList []Chapter

func (l *ChapterList) Scan(src interface{}) error { return jsonScan(src, l) }

func (l ChapterList) Value() (driver.Value, error) {
	if l == nil {
		return jsonValue([]Chapter{})
	}
	return jsonValue([]Chapter(l))
}
