package rendering

import (
	"hash/fnv"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// topPalette é a paleta fixa do gráfico de top famílias, indexada pela
// posição no ranking. Com mais famílias que cores, a paleta recicla.
var topPalette = []drawing.Color{
	{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}, // red
	{R: 0x00, G: 0x8B, B: 0x8B, A: 0xFF}, // darkcyan
	{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}, // black
	{R: 0xFF, G: 0x8C, B: 0x00, A: 0xFF}, // darkorange
	{R: 0x1E, G: 0x90, B: 0xFF, A: 0xFF}, // dodgerblue
	{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF}, // magenta
	{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}, // gold
	{R: 0x32, G: 0xCD, B: 0x32, A: 0xFF}, // limegreen
	{R: 0x8A, G: 0x2B, B: 0xE2, A: 0xFF}, // blueviolet
	{R: 0xD2, G: 0x69, B: 0x1E, A: 0xFF}, // chocolate
	{R: 0x6B, G: 0x8E, B: 0x23, A: 0xFF}, // olivedrab
	{R: 0x7C, G: 0xFC, B: 0x00, A: 0xFF}, // lawngreen
	{R: 0x00, G: 0x64, B: 0x00, A: 0xFF}, // darkgreen
	{R: 0x20, G: 0xB2, B: 0xAA, A: 0xFF}, // lightseagreen
	{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}, // silver
	{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF}, // blue
	{R: 0x80, G: 0x80, B: 0x00, A: 0xFF}, // olive
	{R: 0xEE, G: 0x82, B: 0xEE, A: 0xFF}, // violet
	{R: 0xD2, G: 0xB4, B: 0x8C, A: 0xFF}, // tan
	{R: 0x8B, G: 0x00, B: 0x00, A: 0xFF}, // darkred
	{R: 0xFF, G: 0x69, B: 0xB4, A: 0xFF}, // hotpink
	{R: 0xF0, G: 0xE6, B: 0x8C, A: 0xFF}, // khaki
	{R: 0x69, G: 0x69, B: 0x69, A: 0xFF}, // dimgrey
	{R: 0xFA, G: 0x80, B: 0x72, A: 0xFF}, // salmon
	{R: 0xF4, G: 0xA4, B: 0x60, A: 0xFF}, // sandybrown
}

// rankColor retorna a cor da paleta fixa para a posição no ranking,
// com transparência para sobreposição de linhas.
func rankColor(rank int) drawing.Color {
	color := topPalette[rank%len(topPalette)]
	color.A = 0xB2 // alpha 0.7
	return color
}

// familyColor deriva uma cor determinística do nome da família, no lugar
// da cor aleatória por família do gráfico original.
func familyColor(name string) drawing.Color {
	h := fnv.New32a()
	h.Write([]byte(name))
	sum := h.Sum32()

	r := uint8(sum >> 16)
	g := uint8(sum >> 8)
	b := uint8(sum)

	// Escurecer cores quase brancas, que somem no fundo do gráfico
	if int(r)+int(g)+int(b) > 600 {
		r /= 2
		g /= 2
		b /= 2
	}

	return drawing.Color{R: r, G: g, B: b, A: 0xFF}
}
