package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeakIndexes(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		epsilon  float64
		expected []int
	}{
		{
			name:     "pico interior acima do epsilon nos dois lados",
			values:   []float64{10, 200, 10},
			epsilon:  75,
			expected: []int{1},
		},
		{
			name:     "vizinho dentro do epsilon não é pico",
			values:   []float64{10, 80, 10},
			epsilon:  75,
			expected: nil,
		},
		{
			name:    "exatamente epsilon acima não é pico",
			values:  []float64{10, 85, 10},
			epsilon: 75,
			// 85 > 10+75 é falso: a comparação é estrita
			expected: nil,
		},
		{
			name:     "extremos nunca são picos",
			values:   []float64{500, 10, 10, 500},
			epsilon:  75,
			expected: nil,
		},
		{
			name:     "múltiplos picos",
			values:   []float64{0, 100, 0, 100, 0},
			epsilon:  50,
			expected: []int{1, 3},
		},
		{
			name:     "série curta não tem pontos interiores",
			values:   []float64{10, 20},
			epsilon:  1,
			expected: nil,
		},
		{
			name:     "série vazia",
			values:   nil,
			epsilon:  1,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PeakIndexes(tt.values, tt.epsilon))
		})
	}
}
