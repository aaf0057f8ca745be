package service

import (
	"github.com/goccy/go-json"
)

// mergeSection 把一次 PATCH 的原始 JSON 合并进已有分区：
// 请求里出现的键覆盖旧值，没出现的键原样保留（原接口就是部分更新语义）。
func mergeSection[T any](existing *T, raw json.RawMessage) (*T, error) {
	base := make(map[string]any)
	if existing != nil {
		buf, err := json.Marshal(existing)
		if err != nil {
			return nil, err
		}
		if err = json.Unmarshal(buf, &base); err != nil {
			return nil, err
		}
	}

	patch := make(map[string]any)
	if err := json.Unmarshal(raw, &patch); err != nil {
		return nil, ErrParamInvalid
	}
	for k, v := range patch {
		base[k] = v
	}

	buf, err := json.Marshal(base)
	if err != nil {
		return nil, err
	}
	merged := new(T)
	if err = json.Unmarshal(buf, merged); err != nil {
		return nil, ErrParamInvalid
	}
	return merged, nil
}
