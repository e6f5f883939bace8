package util

import (
	"strconv"
)

// MustParseUint 将路径参数解析为无符号ID，解析失败时返回 0
func MustParseUint(s string) uint {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// ParseIntOrDefault 解析查询参数里的整数，空串或非法值返回默认值
func ParseIntOrDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
