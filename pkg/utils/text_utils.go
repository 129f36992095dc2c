package utils

import (
	"bytes"
	"log"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontSourceOnce sync.Once
	fontSource     *text.GoTextFaceSource
	fontFaces      = map[float64]*text.GoTextFace{}
)

// DefaultFace 返回内置无衬线字体的指定字号，按字号缓存
// 字体数据无法解析时返回 nil，调用方应跳过文字绘制
func DefaultFace(size float64) *text.GoTextFace {
	fontSourceOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("[Font] failed to load built-in font: %v", err)
			return
		}
		fontSource = src
	})
	if fontSource == nil {
		return nil
	}
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: fontSource, Size: size}
	fontFaces[size] = face
	return face
}

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 在空格处断行
//   - 如果单词太长超过最大宽度，按字符强制断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	// 如果文本宽度小于最大宽度，直接返回
	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(textStr) {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}
		if measureTextWidth(testLine, font) <= maxWidth {
			currentLine = testLine
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}
		if measureTextWidth(word, font) <= maxWidth {
			currentLine = word
			continue
		}

		// 单词本身超宽，按字符切开，最后一段留给下一个单词拼接
		pieces := breakWord(word, font, maxWidth)
		lines = append(lines, pieces[:len(pieces)-1]...)
		currentLine = pieces[len(pieces)-1]
	}

	// 添加最后一行
	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

// breakWord 按字符切分超宽的单词，至少返回一段
func breakWord(word string, font *text.GoTextFace, maxWidth float64) []string {
	var pieces []string
	current := ""
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		char := string(r)
		word = word[size:]

		if current != "" && measureTextWidth(current+char, font) > maxWidth {
			pieces = append(pieces, current)
			current = char
			continue
		}
		current += char
	}
	return append(pieces, current)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	// 使用 Measure 方法测量文本尺寸
	width, _ := text.Measure(textStr, font, 0)
	return width
}
