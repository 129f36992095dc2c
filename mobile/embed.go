//go:build mobile

// embed.go - 移动端配置嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把 data/carousels.yaml 复制到 mobile/data/：
//
//	mkdir -p mobile/data && cp data/carousels.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/carousels.yaml
var dataFS embed.FS
