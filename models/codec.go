package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// EncodeList serializes a record list as a JSON array. A nil list is written
// as [] rather than null.
func EncodeList[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode list: %w", err)
	}
	return string(data), nil
}

// DecodeList parses a JSON array written by EncodeList. A stored null decodes
// to an empty list.
func DecodeList[T any](raw string) ([]T, error) {
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// EncodeBool writes a boolean as the literal "true" or "false".
func EncodeBool(b bool) string {
	return strconv.FormatBool(b)
}

// DecodeBool is true only for the exact text "true".
func DecodeBool(raw string) bool {
	return raw == "true"
}
