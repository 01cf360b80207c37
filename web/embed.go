// Package web 內嵌瀏覽器使用的頁面與靜態檔案
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed index.html static
var files embed.FS

// IndexHTML 首頁內容
func IndexHTML() []byte {
	b, err := files.ReadFile("index.html")
	if err != nil {
		panic(err)
	}
	return b
}

// Static 靜態檔案（/static 下）
func Static() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
