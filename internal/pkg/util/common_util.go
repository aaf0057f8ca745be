package util

import "strconv"

// StrSliceToUInt64Slice 字符串切片批量转 uint64，任一元素非法即报错
func StrSliceToUInt64Slice(in []string) ([]uint64, error) {
	out := make([]uint64, 0, len(in))
	for _, s := range in {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// PtrUint64 取 uint64 的指针
func PtrUint64(v uint64) *uint64 {
	return &v
}
