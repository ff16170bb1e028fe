package rendering

// PeakIndexes retorna os índices dos picos locais da série: pontos
// interiores cujo valor supera ambos os vizinhos por mais que epsilon.
// O primeiro e o último ponto nunca são picos; eles recebem rótulo
// próprio no gráfico mensal.
func PeakIndexes(values []float64, epsilon float64) []int {
	var peaks []int

	for i := 1; i < len(values)-1; i++ {
		if values[i] > values[i-1]+epsilon && values[i] > values[i+1]+epsilon {
			peaks = append(peaks, i)
		}
	}

	return peaks
}
