package util

import (
	"Orion/internal/pkg/consts"
	"bytes"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// DetectContentType 探测文件类型：优先看扩展名，认不出再嗅探前 512 字节。
// 嗅探消耗的字节会拼回去，返回的 reader 从头开始读。
func DetectContentType(fileName string, reader io.Reader) (string, io.Reader, error) {
	if ext := filepath.Ext(fileName); ext != "" {
		if ct := mime.TypeByExtension(ext); ct != "" {
			return ct, reader, nil
		}
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(reader, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", nil, err
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	return contentType, io.MultiReader(bytes.NewReader(head), reader), nil
}

// IsAllowedResourceType 资源库只收文档和图片
func IsAllowedResourceType(contentType string) bool {
	if strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return true
	}
	switch {
	case strings.HasPrefix(contentType, consts.MimeTypePDF),
		strings.HasPrefix(contentType, "application/msword"),
		strings.HasPrefix(contentType, "application/vnd.openxmlformats-officedocument"),
		strings.HasPrefix(contentType, "application/vnd.ms-excel"),
		strings.HasPrefix(contentType, "application/vnd.ms-powerpoint"),
		strings.HasPrefix(contentType, "text/"):
		return true
	}
	return false
}
