package domain

// Bucket identifica um dos três grupos de famílias por valor máximo
// mensal em USD.
type Bucket string

const (
	BucketSmall  Bucket = "small"
	BucketMedium Bucket = "medium"
	BucketLarge  Bucket = "large"
)

// Buckets lista os grupos na ordem em que são plotados.
func Buckets() []Bucket {
	return []Bucket{BucketSmall, BucketMedium, BucketLarge}
}

// BucketPartition é a partição estrita das famílias nos três grupos.
// Cada família aparece em exatamente um grupo.
type BucketPartition struct {
	Small  []string
	Medium []string
	Large  []string
}

// Group retorna as famílias do grupo informado.
func (p *BucketPartition) Group(bucket Bucket) []string {
	switch bucket {
	case BucketSmall:
		return p.Small
	case BucketMedium:
		return p.Medium
	default:
		return p.Large
	}
}

// Len retorna o total de famílias particionadas.
func (p *BucketPartition) Len() int {
	return len(p.Small) + len(p.Medium) + len(p.Large)
}
